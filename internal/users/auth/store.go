// Copyright (c) 2026 Volare Charters. All rights reserved.

package auth

import (
	"context"
	"time"
)

// # Data Access Contracts

// UserRepository defines the data access contract for staff accounts.
type UserRepository interface {

	/*
		FindByEmail retrieves an account by its lowercase email.

		Parameters:
		  - context: context.Context
		  - email: string

		Returns:
		  - *User: Hydrated account
		  - error: ErrNotFound if missing
	*/
	FindByEmail(context context.Context, email string) (*User, error)

	/*
		FindByID retrieves an account by its UUID.

		Parameters:
		  - context: context.Context
		  - id: string (UUIDv7)

		Returns:
		  - *User: Hydrated account
		  - error: ErrNotFound if missing
	*/
	FindByID(context context.Context, id string) (*User, error)

	// Create persists a new staff account.
	Create(context context.Context, user *User) error

	// TouchLastLogin stamps the account's last successful sign-in.
	TouchLastLogin(context context.Context, id string) error
}

// SessionRepository defines the refresh-session contract. Sessions are
// addressed by the SHA-256 hash of the opaque refresh token; the token
// itself is never stored.
type SessionRepository interface {

	// Create stores a session under the token hash with the given TTL.
	Create(context context.Context, tokenHash string, session *Session, ttl time.Duration) error

	// Find returns the session behind a token hash, or ErrNotFound when
	// the hash is unknown or expired.
	Find(context context.Context, tokenHash string) (*Session, error)

	// Delete removes a session, invalidating its refresh token.
	Delete(context context.Context, tokenHash string) error
}
