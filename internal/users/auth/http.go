// Copyright (c) 2026 Volare Charters. All rights reserved.

package auth

import (
	"net/http"
	"time"

	"github.com/volarecharters/volare/internal/platform/constants"
)

// # Session Cookies

// Both session cookies are HttpOnly and SameSite=Lax: scripts never see
// them and cross-site POSTs do not carry them, while normal top-level
// navigation into the admin area still works.

// SessionCookies builds the pair of cookies carrying a fresh session.
func SessionCookies(accessToken, refreshToken string) []*http.Cookie {
	return []*http.Cookie{
		{
			Name:     constants.AccessTokenCookieName,
			Value:    accessToken,
			Path:     constants.SessionCookiePath,
			MaxAge:   int(AccessTokenTTL.Seconds()),
			HttpOnly: true,
			Secure:   true,
			SameSite: http.SameSiteLaxMode,
		},
		{
			Name:     constants.RefreshTokenCookieName,
			Value:    refreshToken,
			Path:     constants.SessionCookiePath,
			MaxAge:   int(RefreshTokenTTL.Seconds()),
			HttpOnly: true,
			Secure:   true,
			SameSite: http.SameSiteLaxMode,
		},
	}
}

// ClearedSessionCookies builds the expired pair that signs a browser out.
func ClearedSessionCookies() []*http.Cookie {
	expired := func(name string) *http.Cookie {
		return &http.Cookie{
			Name:     name,
			Value:    "",
			Path:     constants.SessionCookiePath,
			MaxAge:   -1,
			Expires:  time.Unix(0, 0),
			HttpOnly: true,
			Secure:   true,
			SameSite: http.SameSiteLaxMode,
		}
	}
	return []*http.Cookie{
		expired(constants.AccessTokenCookieName),
		expired(constants.RefreshTokenCookieName),
	}
}

// SetCookies writes a cookie set onto the response.
func SetCookies(writer http.ResponseWriter, cookies []*http.Cookie) {
	for _, cookie := range cookies {
		http.SetCookie(writer, cookie)
	}
}
