package repository

import (
	"context"
	"fmt"

	"firebase.google.com/go/v4/auth"

	authdomain "handoff-backend/internal/auth/domain"
)

// identityRepository implements IdentityRepository on the Firebase Auth client
type identityRepository struct {
	client *auth.Client
}

// NewIdentityRepository creates a new instance of identityRepository
func NewIdentityRepository(client *auth.Client) IdentityRepository {
	return &identityRepository{
		client: client,
	}
}

func (r *identityRepository) CreateUser(ctx context.Context, email, password string) (string, error) {
	params := (&auth.UserToCreate{}).
		Email(email).
		Password(password)

	record, err := r.client.CreateUser(ctx, params)
	if err != nil {
		if auth.IsEmailAlreadyExists(err) {
			return "", authdomain.ErrStudentIDTaken
		}
		return "", fmt.Errorf("failed to create user: %w", err)
	}

	return record.UID, nil
}

func (r *identityRepository) SetDisplayName(ctx context.Context, uid, displayName string) error {
	params := (&auth.UserToUpdate{}).DisplayName(displayName)
	if _, err := r.client.UpdateUser(ctx, uid, params); err != nil {
		return fmt.Errorf("failed to set display name: %w", err)
	}
	return nil
}

func (r *identityRepository) GetUser(ctx context.Context, uid string) (*authdomain.Session, error) {
	record, err := r.client.GetUser(ctx, uid)
	if err != nil {
		if auth.IsUserNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}

	return &authdomain.Session{
		UID:           record.UID,
		DisplayName:   record.DisplayName,
		Email:         record.Email,
		PhotoURL:      record.PhotoURL,
		EmailVerified: record.EmailVerified,
	}, nil
}

func (r *identityRepository) VerifyIDToken(ctx context.Context, idToken string) (string, error) {
	token, err := r.client.VerifyIDToken(ctx, idToken)
	if err != nil {
		if auth.IsIDTokenExpired(err) || auth.IsIDTokenInvalid(err) || auth.IsIDTokenRevoked(err) {
			return "", authdomain.ErrInvalidToken
		}
		return "", fmt.Errorf("failed to verify token: %w", err)
	}
	return token.UID, nil
}

func (r *identityRepository) RevokeRefreshTokens(ctx context.Context, uid string) error {
	if err := r.client.RevokeRefreshTokens(ctx, uid); err != nil {
		return fmt.Errorf("failed to revoke refresh tokens: %w", err)
	}
	return nil
}
