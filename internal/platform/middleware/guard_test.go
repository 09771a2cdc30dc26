// Copyright (c) 2026 Volare Charters. All rights reserved.

package middleware_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/volarecharters/volare/internal/platform/constants"
	"github.com/volarecharters/volare/internal/platform/ctxutil"
	"github.com/volarecharters/volare/internal/platform/middleware"
	"github.com/volarecharters/volare/internal/platform/sec"
)

// fakeResolver is a scriptable SessionResolver for middleware tests.
type fakeResolver struct {
	claims  *sec.AuthClaims
	cookies []*http.Cookie
	err     error

	calls int
}

func (f *fakeResolver) CurrentUser(_ context.Context, _, _ string) (*sec.AuthClaims, []*http.Cookie, error) {
	f.calls++
	return f.claims, f.cookies, f.err
}

var staffClaims = &sec.AuthClaims{UserID: "u1", Email: "ops@volarecharters.com", Role: "admin"}

/*
TestDecide covers the full guard decision table: admin paths require a
session, the login page bounces signed-in users to the dashboard, and
public paths never redirect regardless of session state.
*/
func TestDecide(t *testing.T) {
	tests := []struct {
		name          string
		path          string
		authenticated bool
		want          middleware.Action
	}{
		{"admin_root_anonymous", "/admin", false, middleware.ActionRedirectLogin},
		{"admin_page_anonymous", "/admin/dashboard", false, middleware.ActionRedirectLogin},
		{"admin_nested_anonymous", "/admin/destinations/los-roques", false, middleware.ActionRedirectLogin},
		{"admin_page_authenticated", "/admin/dashboard", true, middleware.ActionPass},
		{"login_anonymous", "/admin/login", false, middleware.ActionPass},
		{"login_authenticated", "/admin/login", true, middleware.ActionRedirectDashboard},
		{"public_home_anonymous", "/es", false, middleware.ActionPass},
		{"public_home_authenticated", "/es", true, middleware.ActionPass},
		{"public_tour_anonymous", "/en/tours/canaima", false, middleware.ActionPass},
		{"sitemap_anonymous", "/sitemap.xml", false, middleware.ActionPass},
		{"prefix_lookalike_anonymous", "/administrador", false, middleware.ActionPass},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, middleware.Decide(tt.path, tt.authenticated))
		})
	}
}

// runGuard sends one request through the SessionGuard middleware and
// returns the recorder plus whether the inner handler ran.
func runGuard(t *testing.T, resolver *fakeResolver, path string, cookies ...*http.Cookie) (*httptest.ResponseRecorder, bool, *sec.AuthClaims) {
	t.Helper()

	var handlerRan bool
	var seenClaims *sec.AuthClaims

	inner := http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		handlerRan = true
		seenClaims = ctxutil.GetAuthUser(request.Context())
		writer.WriteHeader(http.StatusOK)
	})

	request := httptest.NewRequest(http.MethodGet, path, nil)
	for _, cookie := range cookies {
		request.AddCookie(cookie)
	}

	recorder := httptest.NewRecorder()
	middleware.SessionGuard(resolver)(inner).ServeHTTP(recorder, request)

	return recorder, handlerRan, seenClaims
}

func TestSessionGuard_AdminWithoutSessionRedirectsToLogin(t *testing.T) {
	resolver := &fakeResolver{}

	recorder, handlerRan, _ := runGuard(t, resolver, "/admin/dashboard")

	assert.False(t, handlerRan)
	assert.Equal(t, http.StatusSeeOther, recorder.Code)
	assert.Equal(t, constants.AdminLoginPath, recorder.Header().Get("Location"))
	// No cookies arrived, so the store must not have been consulted.
	assert.Zero(t, resolver.calls)
}

func TestSessionGuard_LoginWithSessionRedirectsToDashboard(t *testing.T) {
	resolver := &fakeResolver{claims: staffClaims}

	recorder, handlerRan, _ := runGuard(t, resolver, "/admin/login",
		&http.Cookie{Name: constants.AccessTokenCookieName, Value: "token"})

	assert.False(t, handlerRan)
	assert.Equal(t, http.StatusSeeOther, recorder.Code)
	assert.Equal(t, constants.AdminDashboardPath, recorder.Header().Get("Location"))
}

func TestSessionGuard_AdminWithSessionPassesAndInjectsClaims(t *testing.T) {
	resolver := &fakeResolver{claims: staffClaims}

	recorder, handlerRan, seenClaims := runGuard(t, resolver, "/admin/dashboard",
		&http.Cookie{Name: constants.AccessTokenCookieName, Value: "token"})

	assert.True(t, handlerRan)
	assert.Equal(t, http.StatusOK, recorder.Code)
	require.NotNil(t, seenClaims)
	assert.Equal(t, "u1", seenClaims.UserID)
}

func TestSessionGuard_PublicPathNeverRedirects(t *testing.T) {
	for name, resolver := range map[string]*fakeResolver{
		"anonymous":     {},
		"authenticated": {claims: staffClaims},
		"store_down":    {err: errors.New("redis: connection refused")},
	} {
		t.Run(name, func(t *testing.T) {
			recorder, handlerRan, _ := runGuard(t, resolver, "/es/destinations",
				&http.Cookie{Name: constants.AccessTokenCookieName, Value: "token"})

			assert.True(t, handlerRan)
			assert.Equal(t, http.StatusOK, recorder.Code)
		})
	}
}

/*
TestSessionGuard_StoreErrorFailsClosed: a session-store failure must be
indistinguishable from "no user" — the admin area stays protected and no
error leaks to the client.
*/
func TestSessionGuard_StoreErrorFailsClosed(t *testing.T) {
	resolver := &fakeResolver{err: errors.New("redis: connection refused")}

	recorder, handlerRan, _ := runGuard(t, resolver, "/admin/dashboard",
		&http.Cookie{Name: constants.AccessTokenCookieName, Value: "token"})

	assert.False(t, handlerRan)
	assert.Equal(t, http.StatusSeeOther, recorder.Code)
	assert.Equal(t, constants.AdminLoginPath, recorder.Header().Get("Location"))
}

/*
TestSessionGuard_PropagatesRefreshedCookies: when the resolver rotates an
expiring session, the renewed cookie values must reach the response even on
a plain pass-through, or the browser's session dies on its next request.
*/
func TestSessionGuard_PropagatesRefreshedCookies(t *testing.T) {
	refreshed := []*http.Cookie{
		{Name: constants.AccessTokenCookieName, Value: "new-access", Path: constants.SessionCookiePath},
		{Name: constants.RefreshTokenCookieName, Value: "new-refresh", Path: constants.SessionCookiePath},
	}
	resolver := &fakeResolver{claims: staffClaims, cookies: refreshed}

	recorder, handlerRan, _ := runGuard(t, resolver, "/admin/dashboard",
		&http.Cookie{Name: constants.RefreshTokenCookieName, Value: "old-refresh"})

	assert.True(t, handlerRan)

	setCookies := recorder.Result().Cookies()
	require.Len(t, setCookies, 2)
	assert.Equal(t, "new-access", setCookies[0].Value)
	assert.Equal(t, "new-refresh", setCookies[1].Value)
}
