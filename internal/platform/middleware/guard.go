// Copyright (c) 2026 Volare Charters. All rights reserved.

package middleware

import (
	"context"
	"log/slog"
	"net/http"
	"strings"

	"github.com/volarecharters/volare/internal/platform/apperr"
	"github.com/volarecharters/volare/internal/platform/constants"
	"github.com/volarecharters/volare/internal/platform/ctxutil"
	"github.com/volarecharters/volare/internal/platform/respond"
	"github.com/volarecharters/volare/internal/platform/sec"
)

// # Session Guard
//
// The guard runs on every request. It resolves the staff session from the
// access/refresh cookie pair (refreshing it transparently when needed),
// then decides whether the request may proceed:
//
//   - admin path without a session  → redirect to the login page
//   - login page with a session     → redirect to the dashboard
//   - anything else                 → pass through
//
// Redirect targets are fixed internal paths; nothing from the request URL
// ever becomes a redirect location.

// SessionResolver is the session-store contract consumed by the guard.
//
// # Why an interface?
//
// Defining SessionResolver here decouples the middleware from the auth
// service implementation, allowing mocks during unit testing.
type SessionResolver interface {
	// CurrentUser resolves the identity behind the given cookie values.
	//
	// A nil identity with a nil error means anonymous. Any cookies returned
	// must be propagated onto the response so a transparently refreshed
	// session stays valid on the browser's next request.
	CurrentUser(ctx context.Context, accessToken, refreshToken string) (*sec.AuthClaims, []*http.Cookie, error)
}

// Action is the guard's decision for a single request.
type Action int

const (
	// ActionPass lets the request through unchanged.
	ActionPass Action = iota

	// ActionRedirectLogin sends the client to the admin login page.
	ActionRedirectLogin

	// ActionRedirectDashboard sends an already-signed-in client off the
	// login page and onto the dashboard.
	ActionRedirectDashboard
)

// Decide classifies a request path and authentication state into a guard
// [Action].
//
// It is a pure function: all session I/O happens before it is called.
// Paths outside the admin prefix always pass, regardless of session state.
func Decide(path string, authenticated bool) Action {
	if !isAdminPath(path) {
		return ActionPass
	}

	isLoginPage := path == constants.AdminLoginPath

	if isLoginPage && authenticated {
		return ActionRedirectDashboard
	}

	if !isLoginPage && !authenticated {
		return ActionRedirectLogin
	}

	return ActionPass
}

// SessionGuard builds the middleware enforcing [Decide] on every request.
//
// # Side Effects
//
// Resolving the session may rotate expiring credentials; any refreshed
// cookies are written onto the response even when the request itself just
// passes through.
//
// # Failure Semantics
//
// A session-store error is treated identically to "no user" (fail closed —
// the admin area stays protected). No retries, no client-visible error.
func SessionGuard(sessions SessionResolver) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {

			accessToken := cookieValue(request, constants.AccessTokenCookieName)
			refreshToken := cookieValue(request, constants.RefreshTokenCookieName)

			// 1. Resolve the session. Skip the store entirely when the
			// browser sent no credentials at all.
			var claims *sec.AuthClaims
			if accessToken != "" || refreshToken != "" {
				resolved, refreshedCookies, err := sessions.CurrentUser(request.Context(), accessToken, refreshToken)
				if err != nil {
					ctxutil.GetLogger(request.Context()).WarnContext(request.Context(),
						"session_resolution_failed",
						slog.Any("error", err),
					)
					// fall through as anonymous
				} else {
					claims = resolved
					for _, cookie := range refreshedCookies {
						http.SetCookie(writer, cookie)
					}
				}
			}

			// 2. Apply the routing decision.
			switch Decide(request.URL.Path, claims != nil) {
			case ActionRedirectLogin:
				respond.Redirect(writer, request, constants.AdminLoginPath)
				return
			case ActionRedirectDashboard:
				respond.Redirect(writer, request, constants.AdminDashboardPath)
				return
			}

			// 3. Pass through, exposing the identity to downstream handlers.
			if claims != nil {
				request = request.WithContext(ctxutil.WithAuthUser(request.Context(), claims))
			}

			next.ServeHTTP(writer, request)
		})
	}
}

// # Handler-Level Guards

// RequireAuth blocks requests that are not authenticated.
//
// The session guard already redirects anonymous browsers away from admin
// pages; this is the defense for direct API calls, answering 401 instead
// of a redirect.
func RequireAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		if ctxutil.GetAuthUser(request.Context()) == nil {
			respond.Error(writer, request, apperr.Unauthorized("Authentication required"))
			return
		}
		next.ServeHTTP(writer, request)
	})
}

// RequireRole blocks requests whose staff role is below the target role.
// It implies [RequireAuth].
func RequireRole(role sec.UserRole) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			claims := ctxutil.GetAuthUser(request.Context())

			if claims == nil {
				respond.Error(writer, request, apperr.Unauthorized("Authentication required"))
				return
			}

			if !sec.UserRole(claims.Role).AtLeast(role) {
				respond.Error(writer, request, apperr.Forbidden("Insufficient permissions"))
				return
			}

			next.ServeHTTP(writer, request)
		})
	}
}

// isAdminPath reports whether the path falls under the admin prefix.
//
// "/admin" and "/admin/..." match; "/administrador" does not.
func isAdminPath(path string) bool {
	if path == constants.AdminPathPrefix {
		return true
	}
	return strings.HasPrefix(path, constants.AdminPathPrefix+"/")
}

// cookieValue returns a named cookie's value, or "" when absent.
func cookieValue(request *http.Request, name string) string {
	cookie, err := request.Cookie(name)
	if err != nil || cookie == nil {
		return ""
	}
	return cookie.Value
}
