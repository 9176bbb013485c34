package ports

import (
	"context"

	"github.com/freeboard/board-client/internal/core/domain"
)

// SessionStore persists sessions between requests. Implementations must
// return domain.ErrSessionNotFound for unknown or expired ids.
type SessionStore interface {
	Save(ctx context.Context, sess *domain.Session) error
	Get(ctx context.Context, id string) (*domain.Session, error)
	Delete(ctx context.Context, id string) error
}
