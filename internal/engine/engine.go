// Package engine provides the core database engine implementation for the
// Ignite storage system.
//
// The engine is the central coordinator for every database operation. It
// owns the active and older data files, the in-memory index built on top of
// them, and the sequence counter and batch-commit mutex write batches
// synchronize on. On Open it replays every data file to rebuild the index
// before accepting new operations.
package engine

import (
	"errors"
	"path/filepath"
	"strings"
	"sync"
	"sync/atomic"

	"github.com/iamNilotpal/ignite/internal/datafile"
	"github.com/iamNilotpal/ignite/internal/index"
	pkgerrors "github.com/iamNilotpal/ignite/pkg/errors"
	"github.com/iamNilotpal/ignite/pkg/filesys"
	"github.com/iamNilotpal/ignite/pkg/logger"
	"github.com/iamNilotpal/ignite/pkg/options"
	"github.com/iamNilotpal/ignite/pkg/seginfo"
	"go.uber.org/multierr"
	"go.uber.org/zap"
)

// ErrEngineClosed is returned when attempting to perform operations on a closed engine.
var ErrEngineClosed = errors.New("operation failed: cannot access closed engine")

// Engine coordinates the data files and index that back an open database.
type Engine struct {
	opts    options.Options
	dirPath string
	log     *zap.SugaredLogger
	closed  atomic.Bool

	activeMu sync.RWMutex
	active   *datafile.DataFile

	olderMu sync.RWMutex
	older   map[uint32]*datafile.DataFile

	idx index.Index

	seqNum  atomic.Uint64
	batchMu sync.Mutex
}

// Config holds the parameters needed to open an Engine.
type Config struct {
	Options *options.Options
	Logger  *zap.SugaredLogger
}

// Open opens (creating if necessary) the database directory named by
// cfg.Options.DirPath, loads every data file it contains, rebuilds the
// in-memory index by replaying them, and returns a ready-to-use Engine.
func Open(cfg *Config) (*Engine, error) {
	if cfg == nil || cfg.Options == nil {
		return nil, pkgerrors.NewInvalidDBDirError("")
	}
	opts := *cfg.Options

	dirPath := strings.TrimSpace(opts.DirPath)
	if dirPath == "" {
		return nil, pkgerrors.NewInvalidDBDirError(opts.DirPath)
	}
	if opts.DataFileSize < options.MinDataFileSize || opts.DataFileSize > options.MaxDataFileSize {
		return nil, pkgerrors.NewInvalidFileSizeError(opts.DataFileSize, options.MinDataFileSize, options.MaxDataFileSize)
	}

	log := cfg.Logger
	if log == nil {
		log = logger.Nop()
	}

	if err := filesys.CreateDir(dirPath, 0755, true); err != nil {
		return nil, pkgerrors.ClassifyDirectoryCreationError(err, dirPath)
	}

	paths, err := seginfo.ListDataFiles(dirPath)
	if err != nil {
		return nil, pkgerrors.NewReadDirFailedError(err, dirPath)
	}

	fileIDs := make([]uint32, 0, len(paths))
	for _, path := range paths {
		id, err := seginfo.ParseFileID(path)
		if err != nil {
			return nil, pkgerrors.NewParseFileIDError(filepath.Base(path), err)
		}
		fileIDs = append(fileIDs, id)
	}

	older := make(map[uint32]*datafile.DataFile, len(fileIDs))
	var active *datafile.DataFile

	if len(fileIDs) == 0 {
		active, err = datafile.Open(dirPath, 0)
		if err != nil {
			return nil, err
		}
	} else {
		for i, id := range fileIDs {
			df, err := datafile.Open(dirPath, id)
			if err != nil {
				return nil, err
			}
			if i == len(fileIDs)-1 {
				active = df
			} else {
				older[id] = df
			}
		}
	}

	eng := &Engine{
		opts:    opts,
		dirPath: dirPath,
		log:     log,
		active:  active,
		older:   older,
		idx:     index.New(opts.IndexType),
	}
	eng.seqNum.Store(1)

	if err := eng.recover(); err != nil {
		_ = active.Close()
		for _, df := range older {
			_ = df.Close()
		}
		return nil, err
	}

	log.Infow(
		"engine opened",
		"dirPath", dirPath, "activeFileID", active.FileID(), "olderFiles", len(older), "keys", eng.idx.Len(),
	)
	return eng, nil
}

// Close flushes and closes every open data file. It is idempotent past the
// first call, returning ErrEngineClosed on subsequent calls.
func (e *Engine) Close() error {
	if !e.closed.CompareAndSwap(false, true) {
		return ErrEngineClosed
	}

	e.activeMu.Lock()
	defer e.activeMu.Unlock()
	e.olderMu.Lock()
	defer e.olderMu.Unlock()

	var errs error
	errs = multierr.Append(errs, e.active.Sync())
	errs = multierr.Append(errs, e.active.Close())
	for _, df := range e.older {
		errs = multierr.Append(errs, df.Close())
	}

	if errs != nil {
		e.log.Errorw("engine closed with errors", "dirPath", e.dirPath, "error", errs)
		return errs
	}

	e.log.Infow("engine closed", "dirPath", e.dirPath)
	return nil
}

// Sync fsyncs the active data file.
func (e *Engine) Sync() error {
	if e.closed.Load() {
		return ErrEngineClosed
	}
	e.activeMu.RLock()
	defer e.activeMu.RUnlock()
	return e.active.Sync()
}

// Len returns the number of live keys in the index.
func (e *Engine) Len() int {
	return e.idx.Len()
}

// syncWrites reports opts.SyncWrites, the default sync behavior new
// non-batch writes use.
func (e *Engine) syncWrites() bool {
	return e.opts.SyncWrites
}

func (e *Engine) fileByID(id uint32) *datafile.DataFile {
	if id == e.active.FileID() {
		return e.active
	}
	return e.older[id]
}
