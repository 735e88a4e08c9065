package jwtadapter

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"campaigns-api/internal/config/configs"
	"campaigns-api/internal/core/domain"
)

var errUnknownTokenType = errors.New("unknown token type")

// claims is the JWT payload. token_type and user_id sit next to the
// registered claims.
type claims struct {
	TokenType domain.TokenType `json:"token_type"`
	UserID    int64            `json:"user_id"`
	jwt.RegisteredClaims
}

// TokenService implements port.TokenService with HS256-signed JWTs.
type TokenService struct {
	key        []byte
	accessTTL  time.Duration
	refreshTTL time.Duration
	now        func() time.Time
}

// NewTokenService creates a token service from the auth configuration.
func NewTokenService(cfg configs.Auth) *TokenService {
	return &TokenService{
		key:        []byte(cfg.SigningKey),
		accessTTL:  cfg.AccessTTL,
		refreshTTL: cfg.RefreshTTL,
		now:        time.Now,
	}
}

// IssuePair returns a new access and refresh token for accountID.
func (s *TokenService) IssuePair(accountID int64) (domain.TokenPair, error) {
	access, err := s.sign(domain.TokenTypeAccess, accountID, s.accessTTL)
	if err != nil {
		return domain.TokenPair{}, err
	}
	refresh, err := s.sign(domain.TokenTypeRefresh, accountID, s.refreshTTL)
	if err != nil {
		return domain.TokenPair{}, err
	}
	return domain.TokenPair{Access: access, Refresh: refresh}, nil
}

// IssueAccess returns a new access token for accountID.
func (s *TokenService) IssueAccess(accountID int64) (string, error) {
	return s.sign(domain.TokenTypeAccess, accountID, s.accessTTL)
}

// Parse verifies raw and returns its claims. Tokens signed with another
// algorithm or key, expired tokens and tokens without a known type are
// rejected.
func (s *TokenService) Parse(raw string) (domain.TokenClaims, error) {
	var c claims
	_, err := jwt.ParseWithClaims(raw, &c, s.keyFunc,
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithIssuedAt(),
		jwt.WithTimeFunc(s.now),
	)
	if err != nil {
		return domain.TokenClaims{}, fmt.Errorf("parse token: %w", err)
	}
	if c.TokenType != domain.TokenTypeAccess && c.TokenType != domain.TokenTypeRefresh {
		return domain.TokenClaims{}, errUnknownTokenType
	}

	out := domain.TokenClaims{
		Type:      c.TokenType,
		AccountID: c.UserID,
		ID:        c.ID,
		ExpiresAt: c.ExpiresAt.Time,
	}
	if c.IssuedAt != nil {
		out.IssuedAt = c.IssuedAt.Time
	}
	return out, nil
}

func (s *TokenService) keyFunc(*jwt.Token) (interface{}, error) {
	return s.key, nil
}

func (s *TokenService) sign(typ domain.TokenType, accountID int64, ttl time.Duration) (string, error) {
	now := s.now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims{
		TokenType: typ,
		UserID:    accountID,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.NewString(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	})
	signed, err := token.SignedString(s.key)
	if err != nil {
		return "", fmt.Errorf("sign %s token: %w", typ, err)
	}
	return signed, nil
}
