// Command ignitedb is a small interactive driver over a single Ignite
// database directory.
//
// Usage:
//
//	ignitedb --dir <path> [--sync] [--index btree|skiplist]
//
// Commands (in the REPL):
//
//	put <key> <value>   Insert or overwrite a key
//	get <key>           Retrieve the current value for a key
//	del <key>           Delete a key
//	keys                List every live key
//	fold                Print every live key/value pair in key order
//	help                Show this help
//	exit / quit / q     Exit
package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/iamNilotpal/ignite/pkg/ignite"
	"github.com/iamNilotpal/ignite/pkg/logger"
	"github.com/iamNilotpal/ignite/pkg/options"
	"github.com/peterh/liner"
	"github.com/spf13/pflag"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	dir := pflag.String("dir", "", "database directory (created if missing)")
	sync := pflag.Bool("sync", false, "fsync every write")
	indexType := pflag.String("index", string(options.IndexTypeBTree), "index backend: btree or skiplist")
	repair := pflag.Bool("repair", false, "truncate a corrupted trailing record found on open")

	pflag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: ignitedb --dir <path> [flags]\n\nFlags:\n")
		pflag.PrintDefaults()
	}
	pflag.Parse()

	if strings.TrimSpace(*dir) == "" {
		pflag.Usage()
		return fmt.Errorf("missing required --dir")
	}

	var idxType options.IndexType
	switch strings.ToUpper(strings.TrimSpace(*indexType)) {
	case string(options.IndexTypeSkipList), "SKIPLIST":
		idxType = options.IndexTypeSkipList
	default:
		idxType = options.IndexTypeBTree
	}

	db, err := ignite.Open(
		"ignitedb",
		options.WithDefaultOptions(),
		options.WithDirPath(*dir),
		options.WithSyncWrites(*sync),
		options.WithIndexType(idxType),
		options.WithRepairOnOpen(*repair),
	)
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer db.Close()

	repl := &REPL{db: db, dir: *dir}
	return repl.Run()
}

// REPL is the interactive command loop over an open database.
type REPL struct {
	db    *ignite.Instance
	dir   string
	liner *liner.State
}

func historyFile() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".ignitedb_history")
}

// Run starts the REPL loop, reading commands until exit/quit/q or EOF.
func (r *REPL) Run() error {
	r.liner = liner.NewLiner()
	defer r.liner.Close()

	r.liner.SetCtrlCAborts(true)
	r.liner.SetCompleter(r.completer)

	if f, err := os.Open(historyFile()); err == nil {
		r.liner.ReadHistory(f)
		f.Close()
	}

	fmt.Printf("ignitedb - %s\n", r.dir)
	fmt.Println("Type 'help' for available commands.")
	fmt.Println()

	for {
		line, err := r.liner.Prompt("ignitedb> ")
		if err != nil {
			if err == liner.ErrPromptAborted || err == io.EOF {
				fmt.Println("\nBye!")
				break
			}
			return fmt.Errorf("reading input: %w", err)
		}

		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		r.liner.AppendHistory(line)

		parts := strings.Fields(line)
		cmd := strings.ToLower(parts[0])
		args := parts[1:]

		switch cmd {
		case "exit", "quit", "q":
			fmt.Println("Bye!")
			r.saveHistory()
			return nil

		case "help", "?":
			r.printHelp()

		case "put":
			r.cmdPut(args)

		case "get":
			r.cmdGet(args)

		case "del", "delete":
			r.cmdDelete(args)

		case "keys":
			r.cmdKeys()

		case "fold":
			r.cmdFold()

		default:
			fmt.Printf("Unknown command: %s (type 'help' for commands)\n", cmd)
		}
	}

	r.saveHistory()
	return nil
}

func (r *REPL) saveHistory() {
	if path := historyFile(); path != "" {
		if f, err := os.Create(path); err == nil {
			r.liner.WriteHistory(f)
			f.Close()
		}
	}
}

func (r *REPL) completer(line string) []string {
	commands := []string{"put", "get", "del", "delete", "keys", "fold", "help", "exit", "quit", "q"}

	var completions []string
	lower := strings.ToLower(line)
	for _, cmd := range commands {
		if strings.HasPrefix(cmd, lower) {
			completions = append(completions, cmd)
		}
	}
	return completions
}

func (r *REPL) printHelp() {
	fmt.Println("Commands:")
	fmt.Println("  put <key> <value>   Insert or overwrite a key")
	fmt.Println("  get <key>           Retrieve the current value for a key")
	fmt.Println("  del <key>           Delete a key")
	fmt.Println("  keys                List every live key")
	fmt.Println("  fold                Print every live key/value pair in key order")
	fmt.Println("  help                Show this help")
	fmt.Println("  exit / quit / q     Exit")
}

func (r *REPL) cmdPut(args []string) {
	if len(args) < 2 {
		fmt.Println("Usage: put <key> <value>")
		return
	}

	key := args[0]
	value := strings.Join(args[1:], " ")

	if err := r.db.Put([]byte(key), []byte(value)); err != nil {
		fmt.Printf("Error: %v\n", err)
		return
	}
	fmt.Printf("OK: put %q\n", key)
}

func (r *REPL) cmdGet(args []string) {
	if len(args) < 1 {
		fmt.Println("Usage: get <key>")
		return
	}

	value, err := r.db.Get([]byte(args[0]))
	if err != nil {
		fmt.Println("(not found)")
		return
	}
	fmt.Printf("%s\n", value)
}

func (r *REPL) cmdDelete(args []string) {
	if len(args) < 1 {
		fmt.Println("Usage: del <key>")
		return
	}

	if err := r.db.Delete([]byte(args[0])); err != nil {
		fmt.Printf("Error: %v\n", err)
		return
	}
	fmt.Printf("OK: deleted %q\n", args[0])
}

func (r *REPL) cmdKeys() {
	keys := r.db.ListKeys()
	if len(keys) == 0 {
		fmt.Println("(empty)")
		return
	}
	for _, k := range keys {
		fmt.Println(string(k))
	}
}

func (r *REPL) cmdFold() {
	count := 0
	err := r.db.Fold(func(key, value []byte) bool {
		fmt.Printf("%s = %s\n", key, value)
		count++
		return true
	})
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		return
	}
	if count == 0 {
		fmt.Println("(empty)")
	}
}
