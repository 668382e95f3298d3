package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/rajabpour4097/businessmanagement/internal/http/middleware"
	"github.com/rajabpour4097/businessmanagement/internal/services"
	"github.com/rajabpour4097/businessmanagement/internal/utils"
)

type ProfileHandler struct {
	users *services.UserService
	auth  *services.AuthService
}

type ProfileUpdateRequest struct {
	Email       string `json:"email" binding:"omitempty,email"`
	FullName    string `json:"full_name"`
	PhoneNumber string `json:"phone_number" binding:"omitempty,max=15"`
}

type ChangePasswordRequest struct {
	OldPassword     string `json:"old_password" binding:"required"`
	NewPassword     string `json:"new_password" binding:"required"`
	ConfirmPassword string `json:"confirm_password" binding:"required"`
}

func NewProfileHandler(users *services.UserService, auth *services.AuthService) *ProfileHandler {
	return &ProfileHandler{users: users, auth: auth}
}

func (h *ProfileHandler) Get(c *gin.Context) {
	identity, _ := middleware.IdentityFrom(c)

	user, err := h.users.GetProfile(c.Request.Context(), identity.UserID)
	if err != nil {
		utils.RespondError(c, err)
		return
	}

	c.JSON(http.StatusOK, services.NewUserPayload(user))
}

func (h *ProfileHandler) Update(c *gin.Context) {
	identity, _ := middleware.IdentityFrom(c)

	var req ProfileUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondValidationError(c, err.Error())
		return
	}

	user, err := h.users.UpdateProfile(c.Request.Context(), identity.UserID, services.ProfileUpdate{
		Email:       req.Email,
		FullName:    req.FullName,
		PhoneNumber: req.PhoneNumber,
	})
	if err != nil {
		utils.RespondError(c, err)
		return
	}

	c.JSON(http.StatusOK, services.NewUserPayload(user))
}

func (h *ProfileHandler) ChangePassword(c *gin.Context) {
	identity, _ := middleware.IdentityFrom(c)

	var req ChangePasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondValidationError(c, err.Error())
		return
	}

	err := h.auth.ChangePassword(c.Request.Context(), identity.UserID, req.OldPassword, req.NewPassword, req.ConfirmPassword)
	if err != nil {
		utils.RespondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "password changed successfully"})
}
