package auth

import (
	"errors"
	"time"
)

// ErrInvalidToken covers every token rejection: bad encoding, broken
// signature, expiry, and foreign issuers all look the same to the caller.
var ErrInvalidToken = errors.New("invalid auth token")

// Strategy issues and verifies bearer tokens for authenticated sessions.
// Two implementations exist: JWTStrategy, the default, and HMACStrategy,
// a compact legacy format kept for older deployments.
type Strategy interface {
	IssueToken(userID int64) (string, error)
	ParseToken(token string) (int64, error)
	Name() string
}

// Options tunes token issuance. A zero TTL falls back to 24 hours.
type Options struct {
	TTL time.Duration
}
