package services

import (
	"context"
	"errors"

	"golang.org/x/crypto/bcrypt"

	"github.com/rajabpour4097/businessmanagement/internal/config"
	"github.com/rajabpour4097/businessmanagement/internal/models"
	"github.com/rajabpour4097/businessmanagement/internal/repo"
	"github.com/rajabpour4097/businessmanagement/internal/token"
	"github.com/rajabpour4097/businessmanagement/internal/utils"
)

var (
	ErrInvalidCredentials = errors.New("invalid username or password")
	ErrInactiveAccount    = errors.New("account is inactive")
)

// UserStore is the identity store contract the auth flows depend on.
// *repo.UserRepo satisfies it.
type UserStore interface {
	GetByUsername(ctx context.Context, username string) (*models.User, error)
	GetByID(ctx context.Context, id string) (*models.User, error)
	List(ctx context.Context) ([]models.User, error)
	Create(ctx context.Context, user *models.User) (*models.User, error)
	Update(ctx context.Context, user *models.User) error
	UpdateProfile(ctx context.Context, id, email, fullName, phoneNumber string) error
	UpdatePassword(ctx context.Context, id, passwordHash string) error
	Delete(ctx context.Context, id string) error
}

type AuthService struct {
	users  UserStore
	tokens *token.Manager
	cfg    *config.Config
}

type UserPayload struct {
	ID          string `json:"id"`
	Username    string `json:"username"`
	Email       string `json:"email"`
	FullName    string `json:"full_name"`
	PhoneNumber string `json:"phone_number"`
	Role        string `json:"role"`
}

type LoginResponse struct {
	Access  string      `json:"access"`
	Refresh string      `json:"refresh"`
	User    UserPayload `json:"user"`
}

func NewAuthService(users UserStore, tokens *token.Manager, cfg *config.Config) *AuthService {
	return &AuthService{users: users, tokens: tokens, cfg: cfg}
}

// authenticate checks credentials against the identity store. A missing
// user and a wrong password produce the same error so the response never
// reveals which field was wrong. An inactive account is reported
// distinctly: it is an administrative state, not a credential failure.
func (s *AuthService) authenticate(ctx context.Context, username, password string) (*models.User, error) {
	user, err := s.users.GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	if !user.IsActive {
		return nil, ErrInactiveAccount
	}

	return user, nil
}

func (s *AuthService) Login(ctx context.Context, username, password string) (*LoginResponse, error) {
	user, err := s.authenticate(ctx, username, password)
	if err != nil {
		switch {
		case errors.Is(err, ErrInvalidCredentials):
			return nil, utils.NewAppError(400, "INVALID_CREDENTIALS", "invalid username or password", nil)
		case errors.Is(err, ErrInactiveAccount):
			return nil, utils.NewAppError(400, "INACTIVE_ACCOUNT", "account is inactive", nil)
		default:
			return nil, utils.NewAppError(500, "INTERNAL_ERROR", "could not authenticate", nil)
		}
	}

	pair, err := s.tokens.Issue(user)
	if err != nil {
		return nil, utils.NewAppError(500, "INTERNAL_ERROR", "could not generate tokens", nil)
	}

	return &LoginResponse{
		Access:  pair.Access,
		Refresh: pair.Refresh,
		User:    NewUserPayload(user),
	}, nil
}

// Logout revokes the refresh token. Revoking an expired or already
// revoked token still succeeds; only a token this authority never signed
// is an error.
func (s *AuthService) Logout(ctx context.Context, refresh string) error {
	if err := s.tokens.Revoke(ctx, refresh); err != nil {
		if errors.Is(err, token.ErrTokenInvalid) {
			return utils.NewAppError(400, "TOKEN_INVALID", "malformed refresh token", nil)
		}
		return utils.NewAppError(500, "INTERNAL_ERROR", "could not revoke token", nil)
	}
	return nil
}

// Refresh exchanges a live refresh token for a new pair.
func (s *AuthService) Refresh(ctx context.Context, refresh string) (*token.Pair, error) {
	pair, err := s.tokens.Exchange(ctx, refresh)
	if err != nil {
		switch {
		case errors.Is(err, token.ErrTokenBlacklisted):
			return nil, utils.NewAppError(401, "TOKEN_BLACKLISTED", "refresh token has been revoked", nil)
		case errors.Is(err, token.ErrTokenExpired):
			return nil, utils.NewAppError(401, "TOKEN_EXPIRED", "refresh token has expired", nil)
		case errors.Is(err, token.ErrTokenInvalid):
			return nil, utils.NewAppError(401, "TOKEN_INVALID", "invalid refresh token", nil)
		default:
			return nil, utils.NewAppError(500, "INTERNAL_ERROR", "could not exchange token", nil)
		}
	}
	return pair, nil
}

// ChangePassword verifies the current password and persists a new hash.
// Outstanding tokens stay valid; the subject is not logged out elsewhere.
func (s *AuthService) ChangePassword(ctx context.Context, userID, oldPassword, newPassword, confirmPassword string) error {
	if newPassword != confirmPassword {
		return utils.NewAppError(400, "PASSWORD_MISMATCH", "new password and confirmation do not match", nil)
	}
	if len(newPassword) < s.cfg.PasswordMinLen {
		return utils.NewAppError(400, "VALIDATION_ERROR", "new password is too short", nil)
	}

	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return utils.NewAppError(404, "NOT_FOUND", "user not found", nil)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(oldPassword)); err != nil {
		return utils.NewAppError(400, "INVALID_CREDENTIALS", "current password is incorrect", nil)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
	if err != nil {
		return utils.NewAppError(500, "INTERNAL_ERROR", "could not secure password", nil)
	}

	if err := s.users.UpdatePassword(ctx, user.ID, string(hash)); err != nil {
		return utils.NewAppError(500, "INTERNAL_ERROR", "could not update password", nil)
	}
	return nil
}

func NewUserPayload(user *models.User) UserPayload {
	return UserPayload{
		ID:          user.ID,
		Username:    user.Username,
		Email:       user.Email,
		FullName:    user.FullName,
		PhoneNumber: user.PhoneNumber,
		Role:        user.Role,
	}
}
