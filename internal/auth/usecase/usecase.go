package usecase

import (
	"context"

	authdomain "handoff-backend/internal/auth/domain"
	authdto "handoff-backend/internal/auth/dto"
)

// AuthUsecase defines the interface for authentication business logic
type AuthUsecase interface {
	// SignUp creates a new identity and returns provider session tokens.
	// The display name is set in a second step after creation; a failure
	// between the two leaves an identity without a display name.
	SignUp(ctx context.Context, req *authdto.RegisterRequest) (*authdto.TokenResponse, error)

	// SignIn verifies the password against the identity provider
	SignIn(ctx context.Context, req *authdto.LoginRequest) (*authdto.TokenResponse, error)

	// SignOut revokes the provider session and clears the mirrored snapshot
	SignOut(ctx context.Context, uid string) error

	// Resolve turns a bearer token into a session. When the provider is
	// reachable the result is Confirmed; when it is not, the mirrored
	// snapshot (or the token's own unverified claims) produce a Placeholder
	// that must not be used for authorization.
	Resolve(ctx context.Context, idToken string) (*authdomain.ResolvedSession, error)
}
