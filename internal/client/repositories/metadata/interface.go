package metadata

import (
	"context"
	"errors"
)

// ErrReadInTx is returned by reads issued through a repository handed to
// InTx by a backend that queues writes until commit (Redis MULTI/EXEC).
var ErrReadInTx = errors.New("metadata: reads are not available inside a queued transaction")

// Repository is a flat string-keyed byte store. Get returns (nil, nil) for a
// missing key and Delete of a missing key is not an error.
type Repository interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
	List(ctx context.Context) (map[string][]byte, error)
	Clear(ctx context.Context) error
}

// TxRepository is a Repository that can apply a group of writes atomically.
// The Repository passed to fn is only valid for the duration of fn; its
// writes become visible together when fn returns nil and are discarded when
// it returns an error.
type TxRepository interface {
	Repository
	InTx(ctx context.Context, fn func(ctx context.Context, r Repository) error) error
}
