// Copyright (c) 2026 Volare Charters. All rights reserved.

/*
Package auth implements staff identity and session management for the
back office.

There is no public registration: accounts are provisioned directly and
sign in with email and password. A successful login issues a short-lived
RSA-signed JWT access token plus an opaque refresh token whose hash lives
in Redis; both travel as HttpOnly cookies and are rotated transparently
by the session guard.

# Architecture

  - Service: Orchestrates sign-in, sign-out, and cookie-based resolution.
  - UserRepository: Postgres-backed staff accounts.
  - SessionRepository: Redis-backed refresh sessions with TTL.
*/
package auth

import (
	"time"

	"github.com/volarecharters/volare/internal/platform/sec"
)

// # Domain Entities

// User represents a back-office staff account.
type User struct {
	ID           string       `json:"id"` // UUIDv7
	Email        string       `json:"email"`
	PasswordHash string       `json:"-"` // Explicitly omitted from JSON for security.
	DisplayName  string       `json:"display_name"`
	Role         sec.UserRole `json:"role"`
	IsActive     bool         `json:"is_active"`
	LastLoginAt  *time.Time   `json:"last_login_at,omitempty"`
	CreatedAt    time.Time    `json:"created_at"`
	UpdatedAt    time.Time    `json:"updated_at"`
}

// Session is the payload stored in Redis behind a refresh-token hash. It
// carries enough identity to mint a fresh access token without a user
// lookup on the hot path; the user row is still re-checked on rotation.
type Session struct {
	UserID    string    `json:"user_id"`
	Email     string    `json:"email"`
	Role      string    `json:"role"`
	CreatedAt time.Time `json:"created_at"`
}

// # Field Identifiers

const (
	FieldEmail    = "email"
	FieldPassword = "password"
	FieldUser     = "user"
	FieldMessage  = "message"
)
