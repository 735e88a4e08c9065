package jwtadapter

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"campaigns-api/internal/config/configs"
	"campaigns-api/internal/core/domain"
)

func newTestService(key string) *TokenService {
	return NewTokenService(configs.Auth{
		SigningKey: key,
		AccessTTL:  5 * time.Minute,
		RefreshTTL: 24 * time.Hour,
	})
}

func TestIssueAndParsePair(t *testing.T) {
	svc := newTestService("secret")

	pair, err := svc.IssuePair(42)
	require.NoError(t, err)
	require.NotEqual(t, pair.Access, pair.Refresh)

	access, err := svc.Parse(pair.Access)
	require.NoError(t, err)
	assert.Equal(t, domain.TokenTypeAccess, access.Type)
	assert.Equal(t, int64(42), access.AccountID)
	assert.NotEmpty(t, access.ID)
	assert.WithinDuration(t, access.IssuedAt.Add(5*time.Minute), access.ExpiresAt, time.Second)

	refresh, err := svc.Parse(pair.Refresh)
	require.NoError(t, err)
	assert.Equal(t, domain.TokenTypeRefresh, refresh.Type)
	assert.NotEqual(t, access.ID, refresh.ID)
	assert.WithinDuration(t, refresh.IssuedAt.Add(24*time.Hour), refresh.ExpiresAt, time.Second)
}

func TestParseRejectsExpired(t *testing.T) {
	svc := newTestService("secret")
	svc.now = func() time.Time { return time.Now().Add(-time.Hour) }

	access, err := svc.IssueAccess(1)
	require.NoError(t, err)

	svc.now = time.Now
	_, err = svc.Parse(access)
	assert.ErrorIs(t, err, jwt.ErrTokenExpired)
}

func TestParseRejectsForeignKey(t *testing.T) {
	access, err := newTestService("one").IssueAccess(1)
	require.NoError(t, err)

	_, err = newTestService("two").Parse(access)
	assert.ErrorIs(t, err, jwt.ErrTokenSignatureInvalid)
}

func TestParseRejectsMalformedAndUntyped(t *testing.T) {
	svc := newTestService("secret")

	_, err := svc.Parse("not-a-token")
	assert.ErrorIs(t, err, jwt.ErrTokenMalformed)

	untyped, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"user_id": 1,
		"exp":     time.Now().Add(time.Minute).Unix(),
	}).SignedString([]byte("secret"))
	require.NoError(t, err)
	_, err = svc.Parse(untyped)
	assert.ErrorIs(t, err, errUnknownTokenType)

	noExpiry, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"user_id":    1,
		"token_type": "access",
	}).SignedString([]byte("secret"))
	require.NoError(t, err)
	_, err = svc.Parse(noExpiry)
	assert.ErrorIs(t, err, jwt.ErrTokenRequiredClaimMissing)
}

func TestParseRejectsOtherAlgorithms(t *testing.T) {
	svc := newTestService("secret")
	none, err := jwt.NewWithClaims(jwt.SigningMethodNone, jwt.MapClaims{
		"user_id":    1,
		"token_type": "access",
		"exp":        time.Now().Add(time.Minute).Unix(),
	}).SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	_, err = svc.Parse(none)
	assert.Error(t, err)
}
