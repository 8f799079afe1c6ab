package progress

import (
	"context"
	"fmt"
	"io"

	"github.com/iwvelando/finance-literacy/pkg/constants"
)

// Options selects and configures a store backend.
type Options struct {
	Driver string
	// Path is the file of the file and sqlite backends. Empty selects DefaultPath.
	Path string
	// DSN is the connection string of the postgres backend.
	DSN string
}

// Open creates the store described by opts. The returned closer releases the
// backend and is never nil.
func Open(ctx context.Context, opts Options) (Store, io.Closer, error) {
	path := opts.Path
	if path == "" {
		path = DefaultPath(opts.Driver)
	}

	switch opts.Driver {
	case constants.StorageDriverMemory:
		return NewMemoryStore(), nopCloser{}, nil
	case "", constants.StorageDriverFile:
		return NewFileStore(path), nopCloser{}, nil
	case constants.StorageDriverSQLite:
		store, err := OpenSQLite(ctx, path)
		if err != nil {
			return nil, nil, err
		}
		return store, store, nil
	case constants.StorageDriverPostgres:
		if opts.DSN == "" {
			return nil, nil, fmt.Errorf("storage driver %s requires a dsn", opts.Driver)
		}
		store, err := OpenPostgres(ctx, opts.DSN)
		if err != nil {
			return nil, nil, err
		}
		return store, store, nil
	default:
		return nil, nil, fmt.Errorf("unknown storage driver %q", opts.Driver)
	}
}

// DefaultPath returns the file a driver uses when no path is configured, or ""
// for drivers that keep nothing on local disk.
func DefaultPath(driver string) string {
	switch driver {
	case "", constants.StorageDriverFile:
		return constants.DefaultFileStoragePath
	case constants.StorageDriverSQLite:
		return constants.DefaultSQLiteStoragePath
	default:
		return ""
	}
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }
