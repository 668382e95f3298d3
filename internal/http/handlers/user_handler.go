package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/rajabpour4097/businessmanagement/internal/http/middleware"
	"github.com/rajabpour4097/businessmanagement/internal/models"
	"github.com/rajabpour4097/businessmanagement/internal/policy"
	"github.com/rajabpour4097/businessmanagement/internal/services"
	"github.com/rajabpour4097/businessmanagement/internal/utils"
)

type UserHandler struct {
	users *services.UserService
}

type UserCreateRequest struct {
	Username    string `json:"username" binding:"required,min=3,max=150"`
	Password    string `json:"password" binding:"required"`
	Email       string `json:"email" binding:"omitempty,email"`
	FullName    string `json:"full_name"`
	PhoneNumber string `json:"phone_number" binding:"omitempty,max=15"`
	Role        string `json:"role" binding:"required,oneof=management accounting"`
}

type UserUpdateRequest struct {
	Email       string `json:"email" binding:"omitempty,email"`
	FullName    string `json:"full_name"`
	PhoneNumber string `json:"phone_number" binding:"omitempty,max=15"`
	Role        string `json:"role" binding:"required,oneof=management accounting"`
	IsActive    *bool  `json:"is_active" binding:"required"`
}

type UserResponse struct {
	services.UserPayload
	IsActive  bool      `json:"is_active"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func NewUserHandler(users *services.UserService) *UserHandler {
	return &UserHandler{users: users}
}

// List returns every user for management callers. Other roles get an
// empty result set instead of an error; the roster itself is hidden.
func (h *UserHandler) List(c *gin.Context) {
	identity, _ := middleware.IdentityFrom(c)

	users, err := h.users.ListUsers(c.Request.Context(), identity.Role)
	if err != nil {
		utils.RespondError(c, err)
		return
	}

	data := make([]UserResponse, 0, len(users))
	for i := range users {
		data = append(data, userToResponse(&users[i]))
	}
	c.JSON(http.StatusOK, gin.H{"data": data})
}

func (h *UserHandler) Create(c *gin.Context) {
	var req UserCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondValidationError(c, err.Error())
		return
	}

	user, err := h.users.CreateUser(c.Request.Context(), services.UserCreate{
		Username:    req.Username,
		Password:    req.Password,
		Email:       req.Email,
		FullName:    req.FullName,
		PhoneNumber: req.PhoneNumber,
		Role:        req.Role,
	})
	if err != nil {
		utils.RespondError(c, err)
		return
	}

	utils.RespondCreated(c, userToResponse(user))
}

// Get hides other users from non-management callers behind a 404 rather
// than confirming the record exists.
func (h *UserHandler) Get(c *gin.Context) {
	identity, _ := middleware.IdentityFrom(c)
	if !policy.CanAccess(identity.Role, policy.ManagementOnly) {
		utils.RespondError(c, utils.NewAppError(http.StatusNotFound, "NOT_FOUND", "user not found", nil))
		return
	}

	user, err := h.users.GetUser(c.Request.Context(), c.Param("id"))
	if err != nil {
		utils.RespondError(c, err)
		return
	}

	c.JSON(http.StatusOK, userToResponse(user))
}

func (h *UserHandler) Update(c *gin.Context) {
	var req UserUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondValidationError(c, err.Error())
		return
	}

	user, err := h.users.UpdateUser(c.Request.Context(), c.Param("id"), services.UserUpdate{
		Email:       req.Email,
		FullName:    req.FullName,
		PhoneNumber: req.PhoneNumber,
		Role:        req.Role,
		IsActive:    *req.IsActive,
	})
	if err != nil {
		utils.RespondError(c, err)
		return
	}

	c.JSON(http.StatusOK, userToResponse(user))
}

func (h *UserHandler) Delete(c *gin.Context) {
	if err := h.users.DeleteUser(c.Request.Context(), c.Param("id")); err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "user deleted"})
}

func userToResponse(user *models.User) UserResponse {
	return UserResponse{
		UserPayload: services.NewUserPayload(user),
		IsActive:    user.IsActive,
		CreatedAt:   user.CreatedAt,
		UpdatedAt:   user.UpdatedAt,
	}
}
