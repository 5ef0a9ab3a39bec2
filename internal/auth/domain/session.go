package domain

import "errors"

// ResolutionState tells how much trust a resolved session deserves.
type ResolutionState string

const (
	// StatePlaceholder means the session came from a locally decoded token
	// plus the mirrored snapshot, without the provider confirming it. It is
	// good enough to render "logged in" UI but must never pass an
	// authorization check.
	StatePlaceholder ResolutionState = "placeholder"

	// StateConfirmed means the identity provider verified the token.
	StateConfirmed ResolutionState = "confirmed"
)

// Session is the current authenticated identity as reported by the provider.
type Session struct {
	UID           string `json:"uid"`
	DisplayName   string `json:"display_name"`
	Email         string `json:"email"`
	PhotoURL      string `json:"photo_url,omitempty"`
	EmailVerified bool   `json:"email_verified"`
}

// ResolvedSession pairs a session with the trust state it was resolved under.
type ResolvedSession struct {
	Session
	State ResolutionState `json:"state"`
}

func (r *ResolvedSession) Confirmed() bool {
	return r.State == StateConfirmed
}

var (
	ErrInvalidCredentials = errors.New("invalid student ID or password")
	ErrStudentIDTaken     = errors.New("student ID already registered")
	ErrInvalidToken       = errors.New("invalid or expired token")
)
