package token

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rajabpour4097/businessmanagement/internal/models"
	"github.com/rajabpour4097/businessmanagement/internal/repo"
)

const testSecret = "test-secret"

func testUser() *models.User {
	return &models.User{
		ID:       "8d4f2c1a-0000-0000-0000-000000000001",
		Username: "admin",
		Role:     "management",
	}
}

func newTestManager(t *testing.T, accessTTL, refreshTTL time.Duration) *Manager {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	return NewManager(testSecret, accessTTL, refreshTTL, repo.NewRevocationRepo(client))
}

func TestIssueAndVerifyAccess(t *testing.T) {
	m := newTestManager(t, 15*time.Minute, 7*24*time.Hour)

	pair, err := m.Issue(testUser())
	require.NoError(t, err)
	require.NotEmpty(t, pair.Access)
	require.NotEmpty(t, pair.Refresh)

	claims, err := m.VerifyAccess(pair.Access)
	require.NoError(t, err)
	assert.Equal(t, "admin", claims.Username)
	assert.Equal(t, "management", claims.Role)
	assert.Equal(t, KindAccess, claims.Kind)
	assert.NotEmpty(t, claims.ID)
	assert.Equal(t, claims.UserID, claims.Subject)
}

func TestVerifyAccess_Expired(t *testing.T) {
	m := newTestManager(t, -1*time.Second, 7*24*time.Hour)

	pair, err := m.Issue(testUser())
	require.NoError(t, err)

	_, err = m.VerifyAccess(pair.Access)
	assert.ErrorIs(t, err, ErrTokenExpired)
}

func TestVerifyAccess_Tampered(t *testing.T) {
	m := newTestManager(t, 15*time.Minute, 7*24*time.Hour)

	pair, err := m.Issue(testUser())
	require.NoError(t, err)

	parts := strings.Split(pair.Access, ".")
	require.Len(t, parts, 3)
	tampered := parts[0] + "." + parts[1] + ".AAAA" + parts[2][4:]

	_, err = m.VerifyAccess(tampered)
	assert.ErrorIs(t, err, ErrTokenInvalid)
}

func TestVerifyAccess_WrongSecret(t *testing.T) {
	m := newTestManager(t, 15*time.Minute, 7*24*time.Hour)
	other := newTestManager(t, 15*time.Minute, 7*24*time.Hour)
	other.secret = []byte("another-secret")

	pair, err := other.Issue(testUser())
	require.NoError(t, err)

	_, err = m.VerifyAccess(pair.Access)
	assert.ErrorIs(t, err, ErrTokenInvalid)
}

func TestVerifyAccess_RejectsRefreshToken(t *testing.T) {
	m := newTestManager(t, 15*time.Minute, 7*24*time.Hour)

	pair, err := m.Issue(testUser())
	require.NoError(t, err)

	_, err = m.VerifyAccess(pair.Refresh)
	assert.ErrorIs(t, err, ErrTokenInvalid)
}

func TestRevoke_Idempotent(t *testing.T) {
	ctx := context.Background()
	m := newTestManager(t, 15*time.Minute, 7*24*time.Hour)

	pair, err := m.Issue(testUser())
	require.NoError(t, err)

	require.NoError(t, m.Revoke(ctx, pair.Refresh))
	require.NoError(t, m.Revoke(ctx, pair.Refresh))
}

func TestRevoke_Malformed(t *testing.T) {
	ctx := context.Background()
	m := newTestManager(t, 15*time.Minute, 7*24*time.Hour)

	assert.ErrorIs(t, m.Revoke(ctx, "not.a.jwt"), ErrTokenInvalid)
}

func TestRevoke_ForeignSignature(t *testing.T) {
	ctx := context.Background()
	m := newTestManager(t, 15*time.Minute, 7*24*time.Hour)
	other := newTestManager(t, 15*time.Minute, 7*24*time.Hour)
	other.secret = []byte("another-secret")

	pair, err := other.Issue(testUser())
	require.NoError(t, err)

	assert.ErrorIs(t, m.Revoke(ctx, pair.Refresh), ErrTokenInvalid)
}

func TestRevoke_AccessTokenRejected(t *testing.T) {
	ctx := context.Background()
	m := newTestManager(t, 15*time.Minute, 7*24*time.Hour)

	pair, err := m.Issue(testUser())
	require.NoError(t, err)

	assert.ErrorIs(t, m.Revoke(ctx, pair.Access), ErrTokenInvalid)
}

// A refresh token signed with the right secret but carrying no expiry
// claim never came from this authority and must be rejected, not
// dereferenced.
func TestRevoke_MissingExpiryRejected(t *testing.T) {
	ctx := context.Background()
	m := newTestManager(t, 15*time.Minute, 7*24*time.Hour)

	claims := Claims{
		UserID:   testUser().ID,
		Username: testUser().Username,
		Role:     testUser().Role,
		Kind:     KindRefresh,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:       uuid.NewString(),
			Subject:  testUser().ID,
			IssuedAt: jwt.NewNumericDate(time.Now()),
		},
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(m.secret)
	require.NoError(t, err)

	assert.ErrorIs(t, m.Revoke(ctx, signed), ErrTokenInvalid)
}

func TestRevoke_ExpiredIsNoOp(t *testing.T) {
	ctx := context.Background()
	m := newTestManager(t, 15*time.Minute, -1*time.Minute)

	pair, err := m.Issue(testUser())
	require.NoError(t, err)

	assert.NoError(t, m.Revoke(ctx, pair.Refresh))
}

func TestExchange(t *testing.T) {
	ctx := context.Background()
	m := newTestManager(t, 15*time.Minute, 7*24*time.Hour)

	pair, err := m.Issue(testUser())
	require.NoError(t, err)

	fresh, err := m.Exchange(ctx, pair.Refresh)
	require.NoError(t, err)

	claims, err := m.VerifyAccess(fresh.Access)
	require.NoError(t, err)
	assert.Equal(t, testUser().ID, claims.UserID)
}

func TestExchange_RevokedIsBlacklisted(t *testing.T) {
	ctx := context.Background()
	m := newTestManager(t, 15*time.Minute, 7*24*time.Hour)

	pair, err := m.Issue(testUser())
	require.NoError(t, err)

	require.NoError(t, m.Revoke(ctx, pair.Refresh))

	_, err = m.Exchange(ctx, pair.Refresh)
	assert.ErrorIs(t, err, ErrTokenBlacklisted)
}

func TestExchange_RejectsAccessToken(t *testing.T) {
	ctx := context.Background()
	m := newTestManager(t, 15*time.Minute, 7*24*time.Hour)

	pair, err := m.Issue(testUser())
	require.NoError(t, err)

	_, err = m.Exchange(ctx, pair.Access)
	assert.ErrorIs(t, err, ErrTokenInvalid)
}

// Revoking a refresh token must not invalidate the access token issued
// alongside it; access tokens die only at their own expiry.
func TestRevoke_LeavesAccessTokenAlive(t *testing.T) {
	ctx := context.Background()
	m := newTestManager(t, 15*time.Minute, 7*24*time.Hour)

	pair, err := m.Issue(testUser())
	require.NoError(t, err)

	require.NoError(t, m.Revoke(ctx, pair.Refresh))

	_, err = m.VerifyAccess(pair.Access)
	assert.NoError(t, err)
}
