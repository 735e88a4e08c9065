package domain

import "time"

// Account is a user allowed to obtain API tokens.
type Account struct {
	ID           int64
	Username     string
	PasswordHash string
	IsActive     bool
	CreatedAt    time.Time
}

// Principal is the identity attached to an authenticated request.
type Principal struct {
	AccountID int64
	Username  string
}

// TokenPair is returned on successful login.
type TokenPair struct {
	Access  string
	Refresh string
}

// TokenType distinguishes short-lived access tokens from refresh tokens.
type TokenType string

const (
	TokenTypeAccess  TokenType = "access"
	TokenTypeRefresh TokenType = "refresh"
)

// TokenClaims are the verified contents of a token.
type TokenClaims struct {
	Type      TokenType
	AccountID int64
	ID        string
	IssuedAt  time.Time
	ExpiresAt time.Time
}
