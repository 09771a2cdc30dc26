// Copyright (c) 2026 Volare Charters. All rights reserved.

package auth

import "time"

// # Session Constraints

const (
	// AccessTokenTTL is the duration a JWT access token remains valid.
	// Short (15m) to minimize the impact of a leaked token.
	AccessTokenTTL = 15 * time.Minute

	// RefreshTokenTTL is the duration a refresh session remains valid.
	// Long-lived (30 days) so staff stay signed in between visits.
	RefreshTokenTTL = 30 * 24 * time.Hour

	// RefreshTokenLength is the byte length of the random refresh token.
	RefreshTokenLength = 32

	// RefreshWindow is how close to expiry an access token must be before
	// the resolver rotates the session instead of just accepting it.
	RefreshWindow = 5 * time.Minute
)
