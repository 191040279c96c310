// Package storage opens the persistent key/value backend selected in the
// config and hands it out as a metadata.TxRepository.
package storage

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"

	"github.com/dmitrijs2005/gophsocial/internal/client/config"
	"github.com/dmitrijs2005/gophsocial/internal/client/repositories/metadata"
	"github.com/dmitrijs2005/gophsocial/internal/filex"
)

var (
	ErrUnknownBackend  = errors.New("unknown storage backend")
	ErrRedisNotDefined = errors.New("redis backend selected but no redis address configured")
)

// Handle owns the opened backend. Close releases it.
type Handle struct {
	Backend string
	Repo    metadata.TxRepository
	closeFn func() error
}

func (h *Handle) Close() error {
	if h.closeFn == nil {
		return nil
	}
	return h.closeFn()
}

// Open connects to the backend named by cfg.StorageBackend.
func Open(ctx context.Context, cfg *config.Config) (*Handle, error) {
	switch cfg.StorageBackend {
	case config.BackendSQLite:
		dir, err := filex.EnsureDir(cfg.DataDir)
		if err != nil {
			return nil, err
		}
		db, err := InitDatabase(ctx, filepath.Join(dir, cfg.DatabaseFile))
		if err != nil {
			return nil, err
		}
		return &Handle{Backend: cfg.StorageBackend, Repo: metadata.NewSQLiteRepository(db), closeFn: db.Close}, nil

	case config.BackendRedis:
		rdb := ConnectRedis(cfg)
		if rdb == nil {
			return nil, ErrRedisNotDefined
		}
		if err := rdb.Ping(ctx).Err(); err != nil {
			_ = rdb.Close()
			return nil, fmt.Errorf("redis ping %s: %w", cfg.RedisAddr, err)
		}
		return &Handle{Backend: cfg.StorageBackend, Repo: metadata.NewRedisRepository(rdb, cfg.RedisPrefix), closeFn: rdb.Close}, nil

	case config.BackendMemory:
		return &Handle{Backend: cfg.StorageBackend, Repo: metadata.NewMemoryRepository()}, nil

	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownBackend, cfg.StorageBackend)
	}
}
