package port

import (
	"context"

	"campaigns-api/internal/core/domain"
)

// Authenticator is the request gate. It accepts the raw bearer credential
// and returns the caller's identity, or a *domain.AuthError. CRUD code
// depends on nothing else from the token scheme.
type Authenticator interface {
	Authenticate(ctx context.Context, rawToken string) (domain.Principal, error)
}

// TokenService signs and verifies tokens.
type TokenService interface {
	// IssuePair returns a fresh access and refresh token for accountID.
	IssuePair(accountID int64) (domain.TokenPair, error)
	// IssueAccess returns a fresh access token for accountID.
	IssueAccess(accountID int64) (string, error)
	// Parse verifies the signature and expiry of raw and returns its
	// claims.
	Parse(raw string) (domain.TokenClaims, error)
}

// AuthUseCase covers the token endpoints and account management.
type AuthUseCase interface {
	Authenticator

	// ObtainTokens exchanges credentials for a token pair. Unknown
	// usernames, wrong passwords and inactive accounts all yield
	// domain.ErrNoActiveAccount.
	ObtainTokens(ctx context.Context, username, password string) (domain.TokenPair, error)
	// RefreshAccess exchanges a refresh token for a new access token.
	RefreshAccess(ctx context.Context, refreshToken string) (string, error)
	// VerifyToken checks that token is a valid access or refresh token.
	VerifyToken(ctx context.Context, token string) error
	// SaveAccount creates or updates the account named username.
	SaveAccount(ctx context.Context, username, password string, active bool) (*domain.Account, error)
}
