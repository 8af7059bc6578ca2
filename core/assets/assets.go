package assets

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"path/filepath"

	"envserve/core/server"
	"envserve/core/storage"

	"github.com/spf13/afero"
)

// ErrUnknownSource is returned when server.source names no supported backend.
var ErrUnknownSource = errors.New("unknown file source")

// NewLocal serves files from dir on the given filesystem.
// Request paths are resolved inside dir and cannot escape it. dir must be
// absolute: afero's BasePathFs rejects every path under a relative base.
func NewLocal(base afero.Fs, dir string) http.FileSystem {
	return afero.NewHttpFs(afero.NewBasePathFs(base, dir))
}

// New builds the serving root selected by cfg.Source.
// A relative cfg.Root is resolved against the working directory.
// The storage client is only created for the s3 source.
func New(ctx context.Context, cfg server.Config, storeCfg storage.Config) (http.FileSystem, error) {
	if !cfg.IsValidSource() {
		return nil, fmt.Errorf("%w: %q", ErrUnknownSource, cfg.Source)
	}

	if cfg.Source == server.SourceS3 {
		client, err := storage.NewClient(storeCfg)
		if err != nil {
			return nil, err
		}
		return NewBucket(ctx, client, storeCfg)
	}

	dir, err := filepath.Abs(cfg.Root)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve root %q: %w", cfg.Root, err)
	}
	return NewLocal(afero.NewOsFs(), dir), nil
}

// NewBucket serves files from the configured bucket after checking it exists.
func NewBucket(ctx context.Context, client storage.Client, cfg storage.Config) (http.FileSystem, error) {
	ctx, cancel := context.WithTimeout(ctx, cfg.Timeout())
	defer cancel()

	if err := storage.VerifyBucket(ctx, client, cfg.Bucket); err != nil {
		return nil, err
	}
	return storage.NewFileSystem(client, cfg.Bucket, cfg.Prefix, cfg.Timeout()), nil
}
