package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"golang.org/x/crypto/bcrypt"

	"campaigns-api/internal/core/domain"
	"campaigns-api/internal/core/port"
)

// dummyHash is compared against when the username is unknown so that a
// failed lookup costs about as much as a wrong password.
var dummyHash = []byte("$2a$10$7EqJtq98hPqEX7fNZaFWoOhi5BWX4Z3lYj8pMxiBhlHcmE4tyl2mC")

// AuthUseCase implements port.AuthUseCase. Tokens are delegated to a
// port.TokenService; accounts live in a port.AccountRepository.
type AuthUseCase struct {
	accounts   port.AccountRepository
	tokens     port.TokenService
	bcryptCost int
}

// NewAuthUseCase creates the authentication usecase.
func NewAuthUseCase(accounts port.AccountRepository, tokens port.TokenService) *AuthUseCase {
	return &AuthUseCase{accounts: accounts, tokens: tokens, bcryptCost: bcrypt.DefaultCost}
}

// Authenticate accepts a raw access token and returns the principal of the
// active account it was issued to.
func (u *AuthUseCase) Authenticate(ctx context.Context, rawToken string) (domain.Principal, error) {
	if rawToken == "" {
		return domain.Principal{}, domain.ErrCredentialsMissing
	}
	claims, err := u.tokens.Parse(rawToken)
	if err != nil || claims.Type != domain.TokenTypeAccess {
		return domain.Principal{}, domain.ErrTokenNotValid
	}
	acc, err := u.accounts.GetAccount(ctx, claims.AccountID)
	if err != nil {
		return domain.Principal{}, fmt.Errorf("load account %d: %w", claims.AccountID, err)
	}
	if acc == nil {
		return domain.Principal{}, domain.ErrAccountNotFound
	}
	if !acc.IsActive {
		return domain.Principal{}, domain.ErrAccountInactive
	}
	return domain.Principal{AccountID: acc.ID, Username: acc.Username}, nil
}

// ObtainTokens checks the credentials and issues a token pair.
func (u *AuthUseCase) ObtainTokens(ctx context.Context, username, password string) (domain.TokenPair, error) {
	acc, err := u.accounts.GetAccountByUsername(ctx, username)
	if err != nil {
		return domain.TokenPair{}, fmt.Errorf("load account %q: %w", username, err)
	}
	if acc == nil {
		_ = bcrypt.CompareHashAndPassword(dummyHash, []byte(password))
		return domain.TokenPair{}, domain.ErrNoActiveAccount
	}
	if err = bcrypt.CompareHashAndPassword([]byte(acc.PasswordHash), []byte(password)); err != nil {
		if errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
			return domain.TokenPair{}, domain.ErrNoActiveAccount
		}
		return domain.TokenPair{}, fmt.Errorf("compare password: %w", err)
	}
	if !acc.IsActive {
		return domain.TokenPair{}, domain.ErrNoActiveAccount
	}
	return u.tokens.IssuePair(acc.ID)
}

// RefreshAccess issues a new access token from a valid refresh token.
func (u *AuthUseCase) RefreshAccess(_ context.Context, refreshToken string) (string, error) {
	claims, err := u.tokens.Parse(refreshToken)
	if err != nil || claims.Type != domain.TokenTypeRefresh {
		return "", domain.ErrTokenInvalidOrExpired
	}
	return u.tokens.IssueAccess(claims.AccountID)
}

// VerifyToken reports whether token is a valid token of either type.
func (u *AuthUseCase) VerifyToken(_ context.Context, token string) error {
	if _, err := u.tokens.Parse(token); err != nil {
		return domain.ErrTokenInvalidOrExpired
	}
	return nil
}

// SaveAccount hashes password and creates or updates the account.
func (u *AuthUseCase) SaveAccount(ctx context.Context, username, password string, active bool) (*domain.Account, error) {
	username = strings.TrimSpace(username)
	verr := domain.NewValidationError()
	if username == "" {
		verr.Add("username", msgBlank)
	}
	if password == "" {
		verr.Add("password", msgBlank)
	}
	if err := verr.OrNil(); err != nil {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), u.bcryptCost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}
	acc := &domain.Account{
		Username:     username,
		PasswordHash: string(hash),
		IsActive:     active,
	}
	if err = u.accounts.SaveAccount(ctx, acc); err != nil {
		return nil, fmt.Errorf("save account %q: %w", username, err)
	}
	return acc, nil
}
