package identitytoolkit

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

const defaultBaseURL = "https://identitytoolkit.googleapis.com/v1"

// Client calls the Identity Toolkit REST API. The Admin SDK cannot verify
// passwords, so email/password sign-in goes through this endpoint using the
// project's web API key.
type Client struct {
	apiKey     string
	baseURL    string
	httpClient *http.Client
}

func NewClient(apiKey string) *Client {
	return &Client{
		apiKey:     apiKey,
		baseURL:    defaultBaseURL,
		httpClient: &http.Client{Timeout: 10 * time.Second},
	}
}

// NewClientWithBaseURL is used by tests to point the client at a local server.
func NewClientWithBaseURL(apiKey, baseURL string) *Client {
	c := NewClient(apiKey)
	c.baseURL = baseURL
	return c
}

// SignInResult represents the response from accounts:signInWithPassword
type SignInResult struct {
	IDToken      string `json:"idToken"`
	RefreshToken string `json:"refreshToken"`
	LocalID      string `json:"localId"`
	Email        string `json:"email"`
	DisplayName  string `json:"displayName"`
	ExpiresIn    string `json:"expiresIn"`
}

// APIError is the decoded Identity Toolkit error envelope.
type APIError struct {
	StatusCode int
	Code       string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("identitytoolkit: %s (status %d)", e.Code, e.StatusCode)
}

// IsCredentialFailure reports whether the error code means the email/password
// pair was rejected, as opposed to a transport or configuration problem.
func (e *APIError) IsCredentialFailure() bool {
	switch e.Code {
	case "EMAIL_NOT_FOUND", "INVALID_PASSWORD", "INVALID_LOGIN_CREDENTIALS", "USER_DISABLED":
		return true
	}
	return false
}

type signInRequest struct {
	Email             string `json:"email"`
	Password          string `json:"password"`
	ReturnSecureToken bool   `json:"returnSecureToken"`
}

type errorEnvelope struct {
	Error struct {
		Message string `json:"message"`
	} `json:"error"`
}

// SignInWithPassword exchanges an email/password pair for the provider's
// session tokens.
func (c *Client) SignInWithPassword(ctx context.Context, email, password string) (*SignInResult, error) {
	payload, err := json.Marshal(signInRequest{
		Email:             email,
		Password:          password,
		ReturnSecureToken: true,
	})
	if err != nil {
		return nil, err
	}

	url := fmt.Sprintf("%s/accounts:signInWithPassword?key=%s", c.baseURL, c.apiKey)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(payload))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to reach identity provider: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		var envelope errorEnvelope
		if err := json.Unmarshal(body, &envelope); err != nil || envelope.Error.Message == "" {
			return nil, &APIError{StatusCode: resp.StatusCode, Code: "UNKNOWN"}
		}
		return nil, &APIError{StatusCode: resp.StatusCode, Code: envelope.Error.Message}
	}

	var result SignInResult
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, fmt.Errorf("failed to decode sign-in response: %w", err)
	}

	return &result, nil
}
