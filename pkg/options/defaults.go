package options

const (
	// DefaultDirPath is used only as a documentation anchor; callers are
	// expected to always supply an explicit DirPath, since the default
	// would otherwise silently collide across instances. Open rejects a
	// blank DirPath rather than falling back to this value.
	DefaultDirPath = "/var/lib/ignitedb"

	// MinDataFileSize is the smallest allowed active-file rollover threshold (1MB).
	MinDataFileSize uint64 = 1 * 1024 * 1024

	// MaxDataFileSize is the largest allowed active-file rollover threshold (4GB).
	MaxDataFileSize uint64 = 4 * 1024 * 1024 * 1024

	// DefaultDataFileSize is the rollover threshold used when none is
	// supplied (256MB).
	DefaultDataFileSize uint64 = 256 * 1024 * 1024

	// DefaultSyncWrites is the default durability mode: rely on the OS
	// page cache rather than fsyncing every write.
	DefaultSyncWrites = false

	// DefaultIndexType is the index backend used when none is selected.
	DefaultIndexType = IndexTypeBTree

	// DefaultMaxBatchSize caps the number of writes a single WriteBatch
	// may stage before Commit refuses it.
	DefaultMaxBatchSize uint = 10000
)

// defaultOptions holds the package defaults for Options.
var defaultOptions = Options{
	DirPath:      "",
	DataFileSize: DefaultDataFileSize,
	SyncWrites:   DefaultSyncWrites,
	IndexType:    DefaultIndexType,
}

// NewDefaultOptions returns a copy of the package's default Options.
func NewDefaultOptions() Options {
	return defaultOptions
}
