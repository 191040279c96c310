package session

import (
	"context"

	"github.com/dmitrijs2005/gophsocial/internal/client/repositories/metadata"
)

// Field names a persisted session key.
type Field string

const (
	FieldName  Field = "userName"
	FieldEmail Field = "userEmail"
	FieldID    Field = "userId"
	FieldPhoto Field = "profilePhoto"
)

// Fields lists every key the session owns; Logout clears all of them.
var Fields = []Field{FieldName, FieldEmail, FieldID, FieldPhoto}

// Persistence is what the Store needs from durable storage. Atomically
// groups several Save/Clear calls so that either all of them land or none.
type Persistence interface {
	Load(ctx context.Context) (map[Field]string, error)
	Save(ctx context.Context, field Field, value string) error
	Clear(ctx context.Context, field Field) error
	Atomically(ctx context.Context, fn func(ctx context.Context, p Persistence) error) error
}

type storagePersistence struct {
	repo metadata.Repository
	tx   metadata.TxRepository
}

// NewStoragePersistence adapts any metadata backend to Persistence.
func NewStoragePersistence(repo metadata.TxRepository) Persistence {
	return &storagePersistence{repo: repo, tx: repo}
}

func (s *storagePersistence) Load(ctx context.Context) (map[Field]string, error) {
	out := make(map[Field]string, len(Fields))
	for _, f := range Fields {
		v, err := s.repo.Get(ctx, string(f))
		if err != nil {
			return nil, err
		}
		if v != nil {
			out[f] = string(v)
		}
	}
	return out, nil
}

func (s *storagePersistence) Save(ctx context.Context, field Field, value string) error {
	return s.repo.Set(ctx, string(field), []byte(value))
}

func (s *storagePersistence) Clear(ctx context.Context, field Field) error {
	return s.repo.Delete(ctx, string(field))
}

func (s *storagePersistence) Atomically(ctx context.Context, fn func(ctx context.Context, p Persistence) error) error {
	if s.tx == nil {
		// already inside a transaction
		return fn(ctx, s)
	}
	return s.tx.InTx(ctx, func(ctx context.Context, r metadata.Repository) error {
		return fn(ctx, &storagePersistence{repo: r})
	})
}
