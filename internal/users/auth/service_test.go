// Copyright (c) 2026 Volare Charters. All rights reserved.

package auth

import (
	"context"
	"errors"
	"log/slog"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/volarecharters/volare/internal/platform/apperr"
	"github.com/volarecharters/volare/internal/platform/constants"
	"github.com/volarecharters/volare/internal/platform/i18n"
	"github.com/volarecharters/volare/internal/platform/sec"
)

// # Test Doubles

type fakeUsers struct {
	byEmail map[string]*User
	byID    map[string]*User
}

func (f *fakeUsers) FindByEmail(_ context.Context, email string) (*User, error) {
	if u, ok := f.byEmail[email]; ok {
		return u, nil
	}
	return nil, apperr.NotFound("Account")
}

func (f *fakeUsers) FindByID(_ context.Context, id string) (*User, error) {
	if u, ok := f.byID[id]; ok {
		return u, nil
	}
	return nil, apperr.NotFound("Account")
}

func (f *fakeUsers) Create(_ context.Context, _ *User) error        { return nil }
func (f *fakeUsers) TouchLastLogin(_ context.Context, _ string) error { return nil }

type fakeSessions struct {
	byHash  map[string]*Session
	findErr error

	created []string
	deleted []string
}

func (f *fakeSessions) Create(_ context.Context, tokenHash string, session *Session, _ time.Duration) error {
	if f.byHash == nil {
		f.byHash = map[string]*Session{}
	}
	f.byHash[tokenHash] = session
	f.created = append(f.created, tokenHash)
	return nil
}

func (f *fakeSessions) Find(_ context.Context, tokenHash string) (*Session, error) {
	if f.findErr != nil {
		return nil, f.findErr
	}
	if s, ok := f.byHash[tokenHash]; ok {
		return s, nil
	}
	return nil, apperr.NotFound("Session")
}

func (f *fakeSessions) Delete(_ context.Context, tokenHash string) error {
	delete(f.byHash, tokenHash)
	f.deleted = append(f.deleted, tokenHash)
	return nil
}

// stubTokens mints recognizable tokens and verifies whatever it minted.
type stubTokens struct {
	claims map[string]*sec.AuthClaims
}

func (s *stubTokens) GenerateAccessToken(userID, email, role string, ttl time.Duration) (string, error) {
	token := "minted-" + userID + "-" + time.Now().Format("150405.000000000")
	if s.claims == nil {
		s.claims = map[string]*sec.AuthClaims{}
	}
	s.claims[token] = &sec.AuthClaims{
		UserID: userID,
		Email:  email,
		Role:   role,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(ttl)),
		},
	}
	return token, nil
}

func (s *stubTokens) VerifyToken(tokenStr string) (*sec.AuthClaims, error) {
	if claims, ok := s.claims[tokenStr]; ok {
		return claims, nil
	}
	return nil, apperr.Unauthorized("Invalid token")
}

// register adds a pre-existing token with the given remaining lifetime.
func (s *stubTokens) register(token, userID string, remaining time.Duration) {
	if s.claims == nil {
		s.claims = map[string]*sec.AuthClaims{}
	}
	s.claims[token] = &sec.AuthClaims{
		UserID: userID,
		Role:   "admin",
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(remaining)),
		},
	}
}

func seededFixtures(t *testing.T) (*Service, *fakeUsers, *fakeSessions, *stubTokens) {
	t.Helper()

	hash, err := sec.HashPassword("correct-horse")
	require.NoError(t, err)

	staff := &User{
		ID:           "u1",
		Email:        "ops@volarecharters.com",
		PasswordHash: hash,
		Role:         sec.RoleAdmin,
		IsActive:     true,
	}
	users := &fakeUsers{
		byEmail: map[string]*User{staff.Email: staff},
		byID:    map[string]*User{staff.ID: staff},
	}
	sessions := &fakeSessions{}
	tokens := &stubTokens{}

	return NewService(users, sessions, tokens, slog.Default()), users, sessions, tokens
}

// # Sign-in

func TestSignIn(t *testing.T) {
	service, _, sessions, _ := seededFixtures(t)

	// 1. Valid credentials open a session
	user, accessToken, refreshToken, err := service.SignIn(context.Background(), "ops@volarecharters.com", "correct-horse", i18n.LocaleES)
	require.NoError(t, err)
	assert.Equal(t, "u1", user.ID)
	assert.NotEmpty(t, accessToken)
	assert.NotEmpty(t, refreshToken)
	assert.Len(t, sessions.created, 1)

	// The stored key is the hash, never the token itself.
	_, stored := sessions.byHash[refreshToken]
	assert.False(t, stored)
	_, stored = sessions.byHash[sec.HashToken(refreshToken)]
	assert.True(t, stored)
}

/*
TestSignIn_CredentialErrors: wrong email, wrong password, and a
deactivated account must be indistinguishable, translated, and 401.
*/
func TestSignIn_CredentialErrors(t *testing.T) {
	service, users, _, _ := seededFixtures(t)
	users.byEmail["former@volarecharters.com"] = &User{
		ID: "u2", Email: "former@volarecharters.com", PasswordHash: "x", IsActive: false,
	}

	tests := []struct {
		name   string
		email  string
		pass   string
		locale i18n.Locale
	}{
		{"unknown_email", "nobody@volarecharters.com", "correct-horse", i18n.LocaleES},
		{"wrong_password", "ops@volarecharters.com", "wrong", i18n.LocaleES},
		{"deactivated_account", "former@volarecharters.com", "whatever", i18n.LocaleEN},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, _, err := service.SignIn(context.Background(), tt.email, tt.pass, tt.locale)

			appError := apperr.As(err)
			require.NotNil(t, appError)
			assert.Equal(t, 401, appError.HTTPStatus)
			assert.Equal(t, i18n.CredentialError(tt.locale), appError.Message)
		})
	}
}

// # Cookie Resolution

func TestCurrentUser_FreshAccessToken(t *testing.T) {
	service, _, sessions, tokens := seededFixtures(t)
	tokens.register("fresh", "u1", time.Hour)

	claims, cookies, err := service.CurrentUser(context.Background(), "fresh", "")
	require.NoError(t, err)
	require.NotNil(t, claims)
	assert.Equal(t, "u1", claims.UserID)

	// No rotation: stateless accept, the store is never touched.
	assert.Nil(t, cookies)
	assert.Empty(t, sessions.created)
}

func TestCurrentUser_ExpiredAccessRotates(t *testing.T) {
	service, _, sessions, tokens := seededFixtures(t)

	// Seed an existing session behind a refresh token.
	refreshToken := "old-refresh-token"
	oldHash := sec.HashToken(refreshToken)
	require.NoError(t, sessions.Create(context.Background(), oldHash,
		&Session{UserID: "u1", Email: "ops@volarecharters.com", Role: "admin"}, RefreshTokenTTL))

	tokens.register("expired", "u1", -time.Minute)

	claims, cookies, err := service.CurrentUser(context.Background(), "expired", refreshToken)
	require.NoError(t, err)
	require.NotNil(t, claims)
	assert.Equal(t, "u1", claims.UserID)

	// Rotation: replacement cookies and a new session, old one gone.
	require.Len(t, cookies, 2)
	assert.Equal(t, constants.AccessTokenCookieName, cookies[0].Name)
	assert.Equal(t, constants.RefreshTokenCookieName, cookies[1].Name)
	assert.Contains(t, sessions.deleted, oldHash)
	_, oldAlive := sessions.byHash[oldHash]
	assert.False(t, oldAlive)
	newHash := sec.HashToken(cookies[1].Value)
	_, newAlive := sessions.byHash[newHash]
	assert.True(t, newAlive)
}

// A token inside the refresh window is still valid but triggers rotation.
func TestCurrentUser_ExpiringAccessRotatesEarly(t *testing.T) {
	service, _, sessions, tokens := seededFixtures(t)

	refreshToken := "near-expiry-refresh"
	require.NoError(t, sessions.Create(context.Background(), sec.HashToken(refreshToken),
		&Session{UserID: "u1", Email: "ops@volarecharters.com", Role: "admin"}, RefreshTokenTTL))

	tokens.register("expiring", "u1", RefreshWindow/2)

	claims, cookies, err := service.CurrentUser(context.Background(), "expiring", refreshToken)
	require.NoError(t, err)
	require.NotNil(t, claims)
	assert.Len(t, cookies, 2)
}

func TestCurrentUser_Anonymous(t *testing.T) {
	service, _, _, tokens := seededFixtures(t)
	tokens.register("expired", "u1", -time.Minute)

	tests := []struct {
		name    string
		access  string
		refresh string
	}{
		{"no_cookies", "", ""},
		{"garbage_access_only", "not-a-token", ""},
		{"expired_access_no_refresh", "expired", ""},
		{"stale_refresh", "", "never-issued"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			claims, cookies, err := service.CurrentUser(context.Background(), tt.access, tt.refresh)
			require.NoError(t, err)
			assert.Nil(t, claims)
			assert.Nil(t, cookies)
		})
	}
}

// A deactivated account loses its session on the next rotation.
func TestCurrentUser_DeactivatedAccountDropped(t *testing.T) {
	service, users, sessions, _ := seededFixtures(t)
	users.byID["u1"].IsActive = false

	refreshToken := "refresh-of-former-staff"
	hash := sec.HashToken(refreshToken)
	require.NoError(t, sessions.Create(context.Background(), hash,
		&Session{UserID: "u1", Email: "ops@volarecharters.com", Role: "admin"}, RefreshTokenTTL))

	claims, cookies, err := service.CurrentUser(context.Background(), "", refreshToken)
	require.NoError(t, err)
	assert.Nil(t, claims)
	assert.Nil(t, cookies)
	assert.Contains(t, sessions.deleted, hash)
}

/*
TestCurrentUser_StoreOutageSurfaces: a Redis outage must come back as an
error, not as anonymous — the guard turns it into a redirect, keeping the
admin area fail-closed.
*/
func TestCurrentUser_StoreOutageSurfaces(t *testing.T) {
	service, _, sessions, _ := seededFixtures(t)
	sessions.findErr = errors.New("redis: connection refused")

	claims, cookies, err := service.CurrentUser(context.Background(), "", "some-refresh")
	require.Error(t, err)
	assert.Nil(t, claims)
	assert.Nil(t, cookies)
}

// # Sign-out

func TestSignOut(t *testing.T) {
	service, _, sessions, _ := seededFixtures(t)

	refreshToken := "to-be-closed"
	hash := sec.HashToken(refreshToken)
	require.NoError(t, sessions.Create(context.Background(), hash, &Session{UserID: "u1"}, RefreshTokenTTL))

	require.NoError(t, service.SignOut(context.Background(), refreshToken))
	assert.Contains(t, sessions.deleted, hash)

	// Idempotent: a second sign-out is a no-op.
	require.NoError(t, service.SignOut(context.Background(), refreshToken))
	require.NoError(t, service.SignOut(context.Background(), ""))
}
