package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/rajabpour4097/businessmanagement/internal/models"
	"github.com/rajabpour4097/businessmanagement/internal/repo"
	"github.com/rajabpour4097/businessmanagement/internal/services"
	"github.com/rajabpour4097/businessmanagement/internal/utils"
)

type AccountHandler struct {
	accounts *services.AccountService
}

type AccountCreateRequest struct {
	Name          string  `json:"name" binding:"required,max=200"`
	AccountNumber string  `json:"account_number" binding:"required,max=50"`
	Balance       float64 `json:"balance"`
}

type AccountUpdateRequest struct {
	Name     string  `json:"name" binding:"required,max=200"`
	Balance  float64 `json:"balance"`
	IsActive *bool   `json:"is_active" binding:"required"`
}

func NewAccountHandler(accounts *services.AccountService) *AccountHandler {
	return &AccountHandler{accounts: accounts}
}

func (h *AccountHandler) Create(c *gin.Context) {
	var req AccountCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondValidationError(c, err.Error())
		return
	}

	account, err := h.accounts.Create(c.Request.Context(), &models.Account{
		Name:          req.Name,
		AccountNumber: req.AccountNumber,
		Balance:       req.Balance,
		IsActive:      true,
	})
	if err != nil {
		respondRecordError(c, err, "account")
		return
	}

	utils.RespondCreated(c, account)
}

func (h *AccountHandler) List(c *gin.Context) {
	var isActive *bool
	if raw := c.Query("is_active"); raw != "" {
		parsed, err := strconv.ParseBool(raw)
		if err != nil {
			utils.RespondValidationError(c, "is_active must be a boolean")
			return
		}
		isActive = &parsed
	}

	page, perPage := parsePageParams(c)
	filters := repo.AccountFilters{
		Search:   c.Query("search"),
		IsActive: isActive,
		Page:     page,
		PerPage:  perPage,
	}

	accounts, total, err := h.accounts.List(c.Request.Context(), filters)
	if err != nil {
		respondRecordError(c, err, "account")
		return
	}

	if accounts == nil {
		accounts = []models.Account{}
	}
	c.JSON(http.StatusOK, gin.H{
		"data": accounts,
		"meta": utils.NewPagination(page, perPage, total),
	})
}

func (h *AccountHandler) Get(c *gin.Context) {
	account, err := h.accounts.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondRecordError(c, err, "account")
		return
	}
	c.JSON(http.StatusOK, account)
}

func (h *AccountHandler) Update(c *gin.Context) {
	var req AccountUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondValidationError(c, err.Error())
		return
	}

	account := &models.Account{
		ID:       c.Param("id"),
		Name:     req.Name,
		Balance:  req.Balance,
		IsActive: *req.IsActive,
	}
	if err := h.accounts.Update(c.Request.Context(), account); err != nil {
		respondRecordError(c, err, "account")
		return
	}

	updated, err := h.accounts.GetByID(c.Request.Context(), account.ID)
	if err != nil {
		respondRecordError(c, err, "account")
		return
	}
	c.JSON(http.StatusOK, updated)
}

func (h *AccountHandler) Delete(c *gin.Context) {
	if err := h.accounts.Delete(c.Request.Context(), c.Param("id")); err != nil {
		respondRecordError(c, err, "account")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "account deleted"})
}

func respondRecordError(c *gin.Context, err error, entity string) {
	switch {
	case errors.Is(err, repo.ErrNotFound):
		utils.RespondError(c, utils.NewAppError(http.StatusNotFound, "NOT_FOUND", entity+" not found", nil))
	case errors.Is(err, repo.ErrDuplicateRecord):
		utils.RespondError(c, utils.NewAppError(http.StatusConflict, "CONFLICT", entity+" already exists", nil))
	default:
		utils.RespondError(c, utils.NewAppError(http.StatusInternalServerError, "INTERNAL_ERROR", "could not process "+entity, nil))
	}
}

func parsePageParams(c *gin.Context) (page, perPage int) {
	page, _ = strconv.Atoi(c.DefaultQuery("page", "1"))
	perPage, _ = strconv.Atoi(c.DefaultQuery("per_page", "10"))
	if page < 1 {
		page = 1
	}
	if perPage <= 0 || perPage > 100 {
		perPage = 10
	}
	return page, perPage
}
