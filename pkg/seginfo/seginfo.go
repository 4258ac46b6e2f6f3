// Package seginfo provides utilities for naming and discovering data files
// in the engine's append-only log.
//
// Filename format: NNNNNNNNN.data
//
// Where NNNNNNNNN is a zero-padded, 9-digit, monotonically non-decreasing
// file id. File ids start at 0 for a freshly created database and increase
// by one every time the active file rolls over.
//
// Example filenames:
//
//	000000000.data
//	000000001.data
//	000000042.data
package seginfo

import (
	"fmt"
	"path/filepath"
	"slices"
	"strconv"
	"strings"

	"github.com/iamNilotpal/ignite/pkg/filesys"
)

// Extension is the fixed suffix every data file carries.
const Extension = ".data"

// width is the fixed zero-padded digit count a file id is formatted to.
const width = 9

// GenerateName formats a data file name for the given file id.
func GenerateName(fileID uint32) string {
	return fmt.Sprintf("%0*d%s", width, fileID, Extension)
}

// ParseFileID extracts the file id from a data file name or full path.
func ParseFileID(path string) (uint32, error) {
	_, name := filepath.Split(path)

	if !strings.HasSuffix(name, Extension) {
		return 0, fmt.Errorf("filename %s does not end in %s", name, Extension)
	}

	digits := strings.TrimSuffix(name, Extension)
	id, err := strconv.ParseUint(digits, 10, 32)
	if err != nil {
		return 0, fmt.Errorf("failed to parse file id from %s: %w", name, err)
	}

	return uint32(id), nil
}

// ListDataFiles returns every data file path under dirPath, sorted
// ascending by file id. Lexicographic sort on the glob matches is enough
// on its own since file ids are zero-padded to a fixed width, but callers
// that also need the parsed ids should use ListFileIDs.
func ListDataFiles(dirPath string) ([]string, error) {
	pattern := filepath.Join(dirPath, "*"+Extension)

	matches, err := filesys.ReadDir(pattern)
	if err != nil {
		return nil, fmt.Errorf("failed to read data directory with pattern %s: %w", pattern, err)
	}

	slices.Sort(matches)
	return matches, nil
}

// ListFileIDs returns the file ids of every data file under dirPath,
// sorted ascending. It is the caller's job to verify the resulting sequence
// is contiguous if that invariant matters to them.
func ListFileIDs(dirPath string) ([]uint32, error) {
	paths, err := ListDataFiles(dirPath)
	if err != nil {
		return nil, err
	}

	ids := make([]uint32, 0, len(paths))
	for _, path := range paths {
		id, err := ParseFileID(path)
		if err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}

	return ids, nil
}

// DataFilePath joins dirPath with the formatted name for fileID.
func DataFilePath(dirPath string, fileID uint32) string {
	return filepath.Join(dirPath, GenerateName(fileID))
}
