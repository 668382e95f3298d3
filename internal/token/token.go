// Package token implements the session token authority: issuing,
// verifying, revoking and exchanging signed access/refresh token pairs.
package token

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/rajabpour4097/businessmanagement/internal/models"
)

var (
	ErrTokenInvalid     = errors.New("token is malformed or not signed by this authority")
	ErrTokenExpired     = errors.New("token has expired")
	ErrTokenBlacklisted = errors.New("token has been revoked")
)

const (
	KindAccess  = "access"
	KindRefresh = "refresh"
)

// RevocationStore records revoked refresh token identifiers. Insertion is
// idempotent and entries may be dropped once ttl elapses, since the token
// they refer to can no longer verify anyway.
type RevocationStore interface {
	Revoke(ctx context.Context, jti string, ttl time.Duration) error
	IsRevoked(ctx context.Context, jti string) (bool, error)
}

type Claims struct {
	UserID   string `json:"user_id"`
	Username string `json:"username"`
	Role     string `json:"role"`
	Kind     string `json:"kind"`
	jwt.RegisteredClaims
}

type Pair struct {
	Access  string `json:"access"`
	Refresh string `json:"refresh"`
}

// Manager signs and validates tokens with a single process-wide HS256
// secret. Verification is pure and safe for concurrent use; only Revoke
// and Exchange touch the revocation store.
type Manager struct {
	secret     []byte
	accessTTL  time.Duration
	refreshTTL time.Duration
	revoked    RevocationStore
}

func NewManager(secret string, accessTTL, refreshTTL time.Duration, revoked RevocationStore) *Manager {
	return &Manager{
		secret:     []byte(secret),
		accessTTL:  accessTTL,
		refreshTTL: refreshTTL,
		revoked:    revoked,
	}
}

// Issue mints a fresh access/refresh pair for the user.
func (m *Manager) Issue(user *models.User) (*Pair, error) {
	now := time.Now()

	access, err := m.sign(user.ID, user.Username, user.Role, KindAccess, now, m.accessTTL)
	if err != nil {
		return nil, fmt.Errorf("sign access token: %w", err)
	}

	refresh, err := m.sign(user.ID, user.Username, user.Role, KindRefresh, now, m.refreshTTL)
	if err != nil {
		return nil, fmt.Errorf("sign refresh token: %w", err)
	}

	return &Pair{Access: access, Refresh: refresh}, nil
}

// VerifyAccess validates signature, expiry and kind of an access token.
// It deliberately does not consult the revocation store: access tokens
// are short-lived and not individually revocable.
func (m *Manager) VerifyAccess(tokenStr string) (*Claims, error) {
	return m.verify(tokenStr, KindAccess)
}

// Revoke invalidates a refresh token for future exchanges. An expired or
// already-revoked token is a no-op success; logout must never surface an
// error for a token that is dead anyway. Only a malformed token or one
// signed by someone else is rejected.
func (m *Manager) Revoke(ctx context.Context, refresh string) error {
	claims := &Claims{}
	_, err := jwt.ParseWithClaims(refresh, claims, m.keyFunc,
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithoutClaimsValidation(),
	)
	if err != nil {
		return ErrTokenInvalid
	}
	// This authority always sets exp; a signed token without it did not
	// come from Issue and must not reach the ExpiresAt dereference below.
	if claims.Kind != KindRefresh || claims.ID == "" || claims.ExpiresAt == nil {
		return ErrTokenInvalid
	}

	ttl := time.Until(claims.ExpiresAt.Time)
	if ttl <= 0 {
		// Already expired; nothing left to revoke.
		return nil
	}

	if err := m.revoked.Revoke(ctx, claims.ID, ttl); err != nil {
		return fmt.Errorf("record revocation: %w", err)
	}
	return nil
}

// Exchange trades a live, non-revoked refresh token for a new pair. The
// claims are self-contained, so no identity store lookup is needed.
func (m *Manager) Exchange(ctx context.Context, refresh string) (*Pair, error) {
	claims, err := m.verify(refresh, KindRefresh)
	if err != nil {
		return nil, err
	}

	revoked, err := m.revoked.IsRevoked(ctx, claims.ID)
	if err != nil {
		return nil, fmt.Errorf("check revocation: %w", err)
	}
	if revoked {
		return nil, ErrTokenBlacklisted
	}

	return m.Issue(&models.User{
		ID:       claims.UserID,
		Username: claims.Username,
		Role:     claims.Role,
	})
}

func (m *Manager) sign(userID, username, role, kind string, now time.Time, ttl time.Duration) (string, error) {
	claims := Claims{
		UserID:   userID,
		Username: username,
		Role:     role,
		Kind:     kind,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.NewString(),
			Subject:   userID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}

	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(m.secret)
}

func (m *Manager) verify(tokenStr, kind string) (*Claims, error) {
	claims := &Claims{}
	parsed, err := jwt.ParseWithClaims(tokenStr, claims, m.keyFunc,
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
	)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, ErrTokenExpired
		}
		return nil, ErrTokenInvalid
	}
	if !parsed.Valid || claims.Kind != kind {
		return nil, ErrTokenInvalid
	}
	return claims, nil
}

func (m *Manager) keyFunc(t *jwt.Token) (interface{}, error) {
	return m.secret, nil
}
