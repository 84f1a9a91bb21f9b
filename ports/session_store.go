package ports

import (
	"context"

	"semdiff/domain/scale"
)

// SessionStore persists a finished dataset so it can be exported again later
type SessionStore interface {
	Save(ctx context.Context, path string, ds *scale.Dataset) error
	Load(ctx context.Context, path string) (*scale.Dataset, error)
}
