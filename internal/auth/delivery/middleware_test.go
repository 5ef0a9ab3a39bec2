package delivery

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	authdomain "handoff-backend/internal/auth/domain"
	authdto "handoff-backend/internal/auth/dto"
)

type stubAuthUsecase struct {
	resolved *authdomain.ResolvedSession
	err      error
}

func (s *stubAuthUsecase) SignUp(ctx context.Context, req *authdto.RegisterRequest) (*authdto.TokenResponse, error) {
	return nil, nil
}

func (s *stubAuthUsecase) SignIn(ctx context.Context, req *authdto.LoginRequest) (*authdto.TokenResponse, error) {
	return nil, nil
}

func (s *stubAuthUsecase) SignOut(ctx context.Context, uid string) error {
	return nil
}

func (s *stubAuthUsecase) Resolve(ctx context.Context, idToken string) (*authdomain.ResolvedSession, error) {
	return s.resolved, s.err
}

func protectedRouter(uc *stubAuthUsecase) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/protected", AuthMiddleware(uc), func(c *gin.Context) {
		session, ok := SessionFrom(c)
		if !ok {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "session missing"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"uid": session.UID})
	})
	return r
}

func doRequest(r *gin.Engine, header string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	if header != "" {
		req.Header.Set("Authorization", header)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestAuthMiddleware_PassesConfirmedSession(t *testing.T) {
	uc := &stubAuthUsecase{resolved: &authdomain.ResolvedSession{
		Session: authdomain.Session{UID: "uid-1"},
		State:   authdomain.StateConfirmed,
	}}

	w := doRequest(protectedRouter(uc), "Bearer some-token")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "uid-1")
}

func TestAuthMiddleware_RejectsPlaceholderSession(t *testing.T) {
	uc := &stubAuthUsecase{resolved: &authdomain.ResolvedSession{
		Session: authdomain.Session{UID: "uid-1"},
		State:   authdomain.StatePlaceholder,
	}}

	w := doRequest(protectedRouter(uc), "Bearer some-token")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAuthMiddleware_RejectsMissingOrMalformedHeader(t *testing.T) {
	uc := &stubAuthUsecase{resolved: &authdomain.ResolvedSession{
		Session: authdomain.Session{UID: "uid-1"},
		State:   authdomain.StateConfirmed,
	}}
	r := protectedRouter(uc)

	assert.Equal(t, http.StatusUnauthorized, doRequest(r, "").Code)
	assert.Equal(t, http.StatusUnauthorized, doRequest(r, "some-token").Code)
	assert.Equal(t, http.StatusUnauthorized, doRequest(r, "Basic some-token").Code)
}

func TestAuthMiddleware_RejectsInvalidToken(t *testing.T) {
	uc := &stubAuthUsecase{err: authdomain.ErrInvalidToken}

	w := doRequest(protectedRouter(uc), "Bearer garbage")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}
