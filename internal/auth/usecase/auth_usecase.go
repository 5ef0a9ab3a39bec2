package usecase

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"

	"github.com/golang-jwt/jwt/v5"

	authdomain "handoff-backend/internal/auth/domain"
	authdto "handoff-backend/internal/auth/dto"
	"handoff-backend/internal/auth/repository"
	"handoff-backend/pkg/identitytoolkit"
)

// PasswordVerifier is the slice of the Identity Toolkit client the usecase
// needs; the REST client satisfies it.
type PasswordVerifier interface {
	SignInWithPassword(ctx context.Context, email, password string) (*identitytoolkit.SignInResult, error)
}

// authUsecase implements AuthUsecase interface
type authUsecase struct {
	identityRepo      repository.IdentityRepository
	mirror            repository.SessionMirror
	verifier          PasswordVerifier
	institutionDomain string
}

// NewAuthUsecase creates a new instance of authUsecase
func NewAuthUsecase(identityRepo repository.IdentityRepository, mirror repository.SessionMirror, verifier PasswordVerifier, institutionDomain string) AuthUsecase {
	return &authUsecase{
		identityRepo:      identityRepo,
		mirror:            mirror,
		verifier:          verifier,
		institutionDomain: institutionDomain,
	}
}

// SynthesizeEmail builds the provider email from a student ID. There is no
// separate username field at the provider: "191" becomes "191@bubt.edu".
// Values already containing "@" are passed through untouched.
func SynthesizeEmail(studentID, institutionDomain string) string {
	if strings.Contains(studentID, "@") {
		return studentID
	}
	return fmt.Sprintf("%s@%s", studentID, institutionDomain)
}

func (u *authUsecase) SignUp(ctx context.Context, req *authdto.RegisterRequest) (*authdto.TokenResponse, error) {
	email := SynthesizeEmail(req.StudentID, u.institutionDomain)

	uid, err := u.identityRepo.CreateUser(ctx, email, req.Password)
	if err != nil {
		return nil, err
	}

	// Second round trip; not atomic with the creation above. If it fails the
	// identity exists without a display name and the caller sees the error.
	if err := u.identityRepo.SetDisplayName(ctx, uid, req.DisplayName); err != nil {
		return nil, err
	}

	result, err := u.verifier.SignInWithPassword(ctx, email, req.Password)
	if err != nil {
		return nil, u.mapSignInError(err)
	}

	session := &authdomain.Session{
		UID:         uid,
		DisplayName: req.DisplayName,
		Email:       email,
	}
	u.mirrorSession(ctx, session)

	return &authdto.TokenResponse{
		IDToken:      result.IDToken,
		RefreshToken: result.RefreshToken,
		ExpiresIn:    result.ExpiresIn,
		Session:      session,
	}, nil
}

func (u *authUsecase) SignIn(ctx context.Context, req *authdto.LoginRequest) (*authdto.TokenResponse, error) {
	email := SynthesizeEmail(req.StudentID, u.institutionDomain)

	result, err := u.verifier.SignInWithPassword(ctx, email, req.Password)
	if err != nil {
		return nil, u.mapSignInError(err)
	}

	// Prefer the provider's full user record; fall back to the sign-in
	// response fields if the lookup fails.
	session, err := u.identityRepo.GetUser(ctx, result.LocalID)
	if err != nil || session == nil {
		if err != nil {
			log.Printf("[Auth] Failed to fetch user record after sign-in: %v", err)
		}
		session = &authdomain.Session{
			UID:         result.LocalID,
			DisplayName: result.DisplayName,
			Email:       result.Email,
		}
	}
	u.mirrorSession(ctx, session)

	return &authdto.TokenResponse{
		IDToken:      result.IDToken,
		RefreshToken: result.RefreshToken,
		ExpiresIn:    result.ExpiresIn,
		Session:      session,
	}, nil
}

func (u *authUsecase) SignOut(ctx context.Context, uid string) error {
	if err := u.identityRepo.RevokeRefreshTokens(ctx, uid); err != nil {
		return err
	}
	if err := u.mirror.Clear(ctx, uid); err != nil {
		return err
	}
	return nil
}

func (u *authUsecase) Resolve(ctx context.Context, idToken string) (*authdomain.ResolvedSession, error) {
	uid, err := u.identityRepo.VerifyIDToken(ctx, idToken)
	if err == nil {
		session, lookupErr := u.identityRepo.GetUser(ctx, uid)
		if lookupErr != nil {
			log.Printf("[Auth] Provider unreachable after token verification: %v", lookupErr)
			return u.resolvePlaceholder(ctx, idToken)
		}
		if session == nil {
			// Token verified but the identity no longer exists
			return nil, authdomain.ErrInvalidToken
		}
		u.mirrorSession(ctx, session)
		return &authdomain.ResolvedSession{Session: *session, State: authdomain.StateConfirmed}, nil
	}

	if errors.Is(err, authdomain.ErrInvalidToken) {
		return nil, err
	}

	log.Printf("[Auth] Token verification unavailable, falling back to mirror: %v", err)
	return u.resolvePlaceholder(ctx, idToken)
}

// resolvePlaceholder builds an untrusted session from the token's unverified
// claims and the mirrored snapshot. The snapshot wins when present since it
// was written from provider-confirmed state.
func (u *authUsecase) resolvePlaceholder(ctx context.Context, idToken string) (*authdomain.ResolvedSession, error) {
	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(idToken, claims); err != nil {
		return nil, authdomain.ErrInvalidToken
	}

	uid, _ := claims["sub"].(string)
	if uid == "" {
		return nil, authdomain.ErrInvalidToken
	}

	if snapshot, err := u.mirror.Load(ctx, uid); err == nil && snapshot != nil {
		return &authdomain.ResolvedSession{Session: *snapshot, State: authdomain.StatePlaceholder}, nil
	} else if err != nil {
		log.Printf("[Auth] Failed to load mirrored session: %v", err)
	}

	session := authdomain.Session{UID: uid}
	session.DisplayName, _ = claims["name"].(string)
	session.Email, _ = claims["email"].(string)
	session.PhotoURL, _ = claims["picture"].(string)
	session.EmailVerified, _ = claims["email_verified"].(bool)

	return &authdomain.ResolvedSession{Session: session, State: authdomain.StatePlaceholder}, nil
}

// mirrorSession writes the snapshot best-effort; the mirror is a cache and
// never blocks the main flow.
func (u *authUsecase) mirrorSession(ctx context.Context, session *authdomain.Session) {
	if err := u.mirror.Save(ctx, session); err != nil {
		log.Printf("[Auth] Failed to mirror session for %s: %v", session.UID, err)
	}
}

func (u *authUsecase) mapSignInError(err error) error {
	var apiErr *identitytoolkit.APIError
	if errors.As(err, &apiErr) && apiErr.IsCredentialFailure() {
		return authdomain.ErrInvalidCredentials
	}
	return err
}
