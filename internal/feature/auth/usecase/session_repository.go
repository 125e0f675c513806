package usecase

import (
	"context"

	"stockoracle_backend/internal/feature/auth/domain/entity"
)

// SessionRepository abstracts the persistence layer for session entities.
// Following Go convention: interfaces are defined by the consumer (usecase), not the provider (adapters).
type SessionRepository interface {
	// Create persists a new session to the storage.
	Create(ctx context.Context, session *entity.Session) error

	// FindByID retrieves a session by its ID.
	FindByID(ctx context.Context, id string) (*entity.Session, error)

	// FindByUserID retrieves all currently valid sessions for a user.
	FindByUserID(ctx context.Context, userID uint) ([]*entity.Session, error)

	// Revoke marks a session as revoked by setting RevokedAt.
	Revoke(ctx context.Context, id string) error

	// RevokeAllByUserID revokes every session of a user.
	RevokeAllByUserID(ctx context.Context, userID uint) error

	// CountByUserID returns the number of valid sessions for a user.
	CountByUserID(ctx context.Context, userID uint) (int64, error)

	// DeleteOldestByUserID deletes the oldest valid session for a user.
	// Used to enforce the per-user session cap.
	DeleteOldestByUserID(ctx context.Context, userID uint) error

	// DeleteExpired removes expired sessions and returns how many were deleted.
	DeleteExpired(ctx context.Context) (int64, error)
}
