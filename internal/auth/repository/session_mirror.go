package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"

	authdomain "handoff-backend/internal/auth/domain"
)

const sessionKeyPrefix = "session:"

// sessionMirror implements SessionMirror on Redis. Snapshots carry no TTL:
// they are cleared on sign-out and otherwise never expire.
type sessionMirror struct {
	client *redis.Client
}

// NewSessionMirror creates a new instance of sessionMirror
func NewSessionMirror(client *redis.Client) SessionMirror {
	return &sessionMirror{
		client: client,
	}
}

func (m *sessionMirror) Save(ctx context.Context, session *authdomain.Session) error {
	data, err := json.Marshal(session)
	if err != nil {
		return fmt.Errorf("failed to serialize session: %w", err)
	}
	if err := m.client.Set(ctx, sessionKeyPrefix+session.UID, data, 0).Err(); err != nil {
		return fmt.Errorf("failed to mirror session: %w", err)
	}
	return nil
}

func (m *sessionMirror) Load(ctx context.Context, uid string) (*authdomain.Session, error) {
	data, err := m.client.Get(ctx, sessionKeyPrefix+uid).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to load mirrored session: %w", err)
	}

	var session authdomain.Session
	if err := json.Unmarshal(data, &session); err != nil {
		return nil, fmt.Errorf("failed to decode mirrored session: %w", err)
	}
	return &session, nil
}

func (m *sessionMirror) Clear(ctx context.Context, uid string) error {
	if err := m.client.Del(ctx, sessionKeyPrefix+uid).Err(); err != nil {
		return fmt.Errorf("failed to clear mirrored session: %w", err)
	}
	return nil
}
