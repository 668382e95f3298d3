package services

import (
	"context"
	"errors"

	"golang.org/x/crypto/bcrypt"

	"github.com/rajabpour4097/businessmanagement/internal/config"
	"github.com/rajabpour4097/businessmanagement/internal/models"
	"github.com/rajabpour4097/businessmanagement/internal/policy"
	"github.com/rajabpour4097/businessmanagement/internal/repo"
	"github.com/rajabpour4097/businessmanagement/internal/utils"
)

// UserService covers self-service profile operations and the
// management-only user administration surface.
type UserService struct {
	users UserStore
	cfg   *config.Config
}

type ProfileUpdate struct {
	Email       string
	FullName    string
	PhoneNumber string
}

type UserCreate struct {
	Username    string
	Password    string
	Email       string
	FullName    string
	PhoneNumber string
	Role        string
}

type UserUpdate struct {
	Email       string
	FullName    string
	PhoneNumber string
	Role        string
	IsActive    bool
}

func NewUserService(users UserStore, cfg *config.Config) *UserService {
	return &UserService{users: users, cfg: cfg}
}

func (s *UserService) GetProfile(ctx context.Context, userID string) (*models.User, error) {
	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return nil, utils.NewAppError(404, "NOT_FOUND", "user not found", nil)
	}
	return user, nil
}

// UpdateProfile applies the subject's own restricted field set. Username
// and role cannot be changed here.
func (s *UserService) UpdateProfile(ctx context.Context, userID string, update ProfileUpdate) (*models.User, error) {
	if err := s.users.UpdateProfile(ctx, userID, update.Email, update.FullName, update.PhoneNumber); err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return nil, utils.NewAppError(404, "NOT_FOUND", "user not found", nil)
		}
		return nil, utils.NewAppError(500, "INTERNAL_ERROR", "could not update profile", nil)
	}
	return s.GetProfile(ctx, userID)
}

// ListUsers returns all users for management callers and an empty set for
// everyone else. Hiding the roster is intentional; the list endpoint does
// not error for non-management roles.
func (s *UserService) ListUsers(ctx context.Context, role policy.Role) ([]models.User, error) {
	if !policy.CanAccess(role, policy.ManagementOnly) {
		return []models.User{}, nil
	}

	users, err := s.users.List(ctx)
	if err != nil {
		return nil, utils.NewAppError(500, "INTERNAL_ERROR", "could not list users", nil)
	}
	if users == nil {
		users = []models.User{}
	}
	return users, nil
}

func (s *UserService) CreateUser(ctx context.Context, create UserCreate) (*models.User, error) {
	if !policy.ValidRole(create.Role) {
		return nil, utils.NewAppError(400, "VALIDATION_ERROR", "role must be management or accounting", nil)
	}
	if len(create.Password) < s.cfg.PasswordMinLen {
		return nil, utils.NewAppError(400, "VALIDATION_ERROR", "password is too short", nil)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(create.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, utils.NewAppError(500, "INTERNAL_ERROR", "could not secure password", nil)
	}

	user, err := s.users.Create(ctx, &models.User{
		Username:     create.Username,
		Email:        create.Email,
		FullName:     create.FullName,
		PhoneNumber:  create.PhoneNumber,
		Role:         create.Role,
		IsActive:     true,
		PasswordHash: string(hash),
	})
	if err != nil {
		if errors.Is(err, repo.ErrDuplicateUsername) {
			return nil, utils.NewAppError(409, "DUPLICATE_USERNAME", "username already exists", nil)
		}
		return nil, utils.NewAppError(500, "INTERNAL_ERROR", "could not create user", nil)
	}
	return user, nil
}

func (s *UserService) GetUser(ctx context.Context, id string) (*models.User, error) {
	user, err := s.users.GetByID(ctx, id)
	if err != nil {
		return nil, utils.NewAppError(404, "NOT_FOUND", "user not found", nil)
	}
	return user, nil
}

func (s *UserService) UpdateUser(ctx context.Context, id string, update UserUpdate) (*models.User, error) {
	if !policy.ValidRole(update.Role) {
		return nil, utils.NewAppError(400, "VALIDATION_ERROR", "role must be management or accounting", nil)
	}

	user, err := s.users.GetByID(ctx, id)
	if err != nil {
		return nil, utils.NewAppError(404, "NOT_FOUND", "user not found", nil)
	}

	user.Email = update.Email
	user.FullName = update.FullName
	user.PhoneNumber = update.PhoneNumber
	user.Role = update.Role
	user.IsActive = update.IsActive

	if err := s.users.Update(ctx, user); err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return nil, utils.NewAppError(404, "NOT_FOUND", "user not found", nil)
		}
		return nil, utils.NewAppError(500, "INTERNAL_ERROR", "could not update user", nil)
	}
	return s.users.GetByID(ctx, id)
}

func (s *UserService) DeleteUser(ctx context.Context, id string) error {
	if err := s.users.Delete(ctx, id); err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return utils.NewAppError(404, "NOT_FOUND", "user not found", nil)
		}
		return utils.NewAppError(500, "INTERNAL_ERROR", "could not delete user", nil)
	}
	return nil
}
