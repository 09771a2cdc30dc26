// Copyright (c) 2026 Volare Charters. All rights reserved.

package auth

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/volarecharters/volare/internal/platform/apperr"
	"github.com/volarecharters/volare/internal/platform/i18n"
	"github.com/volarecharters/volare/internal/platform/sec"
)

// # Contracts & Types

// TokenProvider defines the contract for minting and verifying access tokens.
type TokenProvider interface {
	// GenerateAccessToken creates a signed JWT string for the given account.
	GenerateAccessToken(userID, email, role string, timeToLive time.Duration) (string, error)

	// VerifyToken validates a JWT and returns its claims.
	VerifyToken(tokenStr string) (*sec.AuthClaims, error)
}

// Service implements staff authentication use cases. It is the session
// guard's [middleware.SessionResolver].
//
// # Review Process
//
// This service gates the entire back office. Changes to credential
// checking, rotation, or the fail-closed paths need a second reviewer.
type Service struct {
	users    UserRepository
	sessions SessionRepository
	tokens   TokenProvider
	logger   *slog.Logger
}

// NewService constructs a new auth [Service].
func NewService(users UserRepository, sessions SessionRepository, tokens TokenProvider, logger *slog.Logger) *Service {
	return &Service{
		users:    users,
		sessions: sessions,
		tokens:   tokens,
		logger:   logger,
	}
}

// # Sign-in Flow

/*
SignIn checks credentials and opens a session.

Description: Bad email, bad password, and deactivated accounts all produce
the same translated credential error so the response does not reveal which
part failed. Backend failures keep their own shape and never leak to the
form.

Parameters:
  - context: context.Context
  - email, password: string (Submitted form values)
  - locale: i18n.Locale (For the credential-error message)

Returns:
  - *User: Authenticated account
  - string: Signed access token
  - string: Opaque refresh token (plain; only its hash is stored)
  - error: Unauthorized with translated message, or backend failures
*/
func (service *Service) SignIn(context context.Context, email, password string, locale i18n.Locale) (*User, string, string, error) {
	credentialErr := apperr.Unauthorized(i18n.CredentialError(locale))

	user, err := service.users.FindByEmail(context, email)
	if err != nil {
		if apperr.IsNotFound(err) {
			return nil, "", "", credentialErr
		}
		return nil, "", "", err
	}

	if !user.IsActive || !sec.CheckPasswordHash(password, user.PasswordHash) {
		return nil, "", "", credentialErr
	}

	accessToken, refreshToken, err := service.openSession(context, user)
	if err != nil {
		return nil, "", "", err
	}

	// Best effort; a failed stamp must not fail the login.
	if err := service.users.TouchLastLogin(context, user.ID); err != nil {
		service.logger.WarnContext(context, "last_login_stamp_failed",
			slog.String("user_id", user.ID),
			slog.String("error", err.Error()),
		)
	}

	service.logger.Info("staff_signed_in", slog.String("user_id", user.ID))

	return user, accessToken, refreshToken, nil
}

// openSession mints an access token and stores a fresh refresh session.
func (service *Service) openSession(context context.Context, user *User) (string, string, error) {
	accessToken, err := service.tokens.GenerateAccessToken(user.ID, user.Email, string(user.Role), AccessTokenTTL)
	if err != nil {
		return "", "", apperr.Internal(err)
	}

	refreshToken, err := sec.GenerateSecureToken(RefreshTokenLength)
	if err != nil {
		return "", "", apperr.Internal(err)
	}

	session := &Session{
		UserID:    user.ID,
		Email:     user.Email,
		Role:      string(user.Role),
		CreatedAt: time.Now(),
	}
	if err := service.sessions.Create(context, sec.HashToken(refreshToken), session, RefreshTokenTTL); err != nil {
		return "", "", err
	}

	return accessToken, refreshToken, nil
}

// SignOut closes the session behind a refresh token. Unknown tokens are a
// no-op: signing out twice is not an error.
func (service *Service) SignOut(context context.Context, refreshToken string) error {
	if refreshToken == "" {
		return nil
	}
	return service.sessions.Delete(context, sec.HashToken(refreshToken))
}

// # Cookie Resolution

/*
CurrentUser resolves the identity behind the session cookies, rotating the
session transparently when the access token is expired or about to be.

Description: This is the guard's [middleware.SessionResolver]. The outcomes:

 1. Valid access token outside the refresh window: stateless accept.
 2. Valid-but-expiring or expired access token, valid refresh token:
    rotate — new refresh session, new access token, replacement cookies.
 3. No usable token: anonymous (nil claims, nil error).
 4. Session store unreachable: the error is returned unclassified so the
    guard fails closed rather than treating an outage as a logout.

Parameters:
  - ctx: context.Context
  - accessToken: string (Raw cookie value, may be empty)
  - refreshToken: string (Raw cookie value, may be empty)

Returns:
  - *sec.AuthClaims: Resolved identity, nil for anonymous
  - []*http.Cookie: Replacement cookies after rotation, nil otherwise
  - error: Backend failures only
*/
func (service *Service) CurrentUser(ctx context.Context, accessToken, refreshToken string) (*sec.AuthClaims, []*http.Cookie, error) {
	if accessToken != "" {
		claims, err := service.tokens.VerifyToken(accessToken)
		if err == nil && !claims.ExpiresWithin(RefreshWindow) {
			return claims, nil, nil
		}
		// Expired or expiring: fall through to the refresh path.
	}

	if refreshToken == "" {
		return nil, nil, nil
	}

	return service.refresh(ctx, refreshToken)
}

// refresh rotates the session behind a refresh token.
func (service *Service) refresh(ctx context.Context, refreshToken string) (*sec.AuthClaims, []*http.Cookie, error) {
	oldHash := sec.HashToken(refreshToken)

	session, err := service.sessions.Find(ctx, oldHash)
	if err != nil {
		if apperr.IsNotFound(err) {
			// Stale cookie. Anonymous, not an outage.
			return nil, nil, nil
		}
		return nil, nil, err
	}

	// Re-check the account: deactivated staff lose their session on the
	// next rotation, not in 30 days.
	user, err := service.users.FindByID(ctx, session.UserID)
	if err != nil || !user.IsActive {
		_ = service.sessions.Delete(ctx, oldHash)
		if err != nil && !apperr.IsNotFound(err) {
			return nil, nil, err
		}
		return nil, nil, nil
	}

	accessToken, newRefreshToken, err := service.openSession(ctx, user)
	if err != nil {
		return nil, nil, err
	}

	// Old session dies only after the new one exists, so a crash between
	// the two steps cannot strand the browser without any valid token.
	if err := service.sessions.Delete(ctx, oldHash); err != nil {
		service.logger.WarnContext(ctx, "stale_session_delete_failed",
			slog.String("user_id", user.ID),
			slog.String("error", err.Error()),
		)
	}

	claims, err := service.tokens.VerifyToken(accessToken)
	if err != nil {
		return nil, nil, apperr.Internal(err)
	}

	service.logger.Info("session_rotated", slog.String("user_id", user.ID))

	return claims, SessionCookies(accessToken, newRefreshToken), nil
}
