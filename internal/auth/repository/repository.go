package repository

import (
	"context"

	authdomain "handoff-backend/internal/auth/domain"
)

// IdentityRepository wraps the managed identity provider's administrative
// operations.
type IdentityRepository interface {
	// CreateUser creates a new identity and returns its assigned uid
	CreateUser(ctx context.Context, email, password string) (string, error)

	// SetDisplayName updates the display name of an existing identity
	SetDisplayName(ctx context.Context, uid, displayName string) error

	// GetUser fetches the provider's live view of an identity
	GetUser(ctx context.Context, uid string) (*authdomain.Session, error)

	// VerifyIDToken verifies a token against the provider and returns the uid.
	// Rejected tokens yield domain.ErrInvalidToken; any other error means the
	// provider could not be consulted.
	VerifyIDToken(ctx context.Context, idToken string) (string, error)

	// RevokeRefreshTokens invalidates all refresh tokens issued to the identity
	RevokeRefreshTokens(ctx context.Context, uid string) error
}

// SessionMirror persists the last-known session snapshot per uid. It is a
// cache, not a source of truth: the provider's live state always wins.
type SessionMirror interface {
	// Save stores the snapshot without expiry
	Save(ctx context.Context, session *authdomain.Session) error

	// Load returns the stored snapshot, or nil if none exists
	Load(ctx context.Context, uid string) (*authdomain.Session, error)

	// Clear removes the snapshot, called on sign-out
	Clear(ctx context.Context, uid string) error
}
