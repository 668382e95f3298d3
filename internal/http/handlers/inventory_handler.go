package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/rajabpour4097/businessmanagement/internal/http/middleware"
	"github.com/rajabpour4097/businessmanagement/internal/models"
	"github.com/rajabpour4097/businessmanagement/internal/repo"
	"github.com/rajabpour4097/businessmanagement/internal/services"
	"github.com/rajabpour4097/businessmanagement/internal/utils"
)

type InventoryHandler struct {
	inventory *services.InventoryService
}

type InventoryTxCreateRequest struct {
	ProductID       string  `json:"product_id" binding:"required,uuid"`
	TransactionType string  `json:"transaction_type" binding:"required,oneof=in out adjustment"`
	Quantity        int     `json:"quantity" binding:"required,gte=0"`
	UnitPrice       float64 `json:"unit_price" binding:"gte=0"`
	Description     string  `json:"description"`
	ReferenceNumber string  `json:"reference_number" binding:"omitempty,max=50"`
}

type InventoryTxResponse struct {
	models.InventoryTransaction
	TotalAmount float64 `json:"total_amount"`
}

func NewInventoryHandler(inventory *services.InventoryService) *InventoryHandler {
	return &InventoryHandler{inventory: inventory}
}

// Create records a stock movement and applies it to the product count.
func (h *InventoryHandler) Create(c *gin.Context) {
	var req InventoryTxCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondValidationError(c, err.Error())
		return
	}

	identity, _ := middleware.IdentityFrom(c)
	tx, err := h.inventory.Create(c.Request.Context(), &models.InventoryTransaction{
		ProductID:       req.ProductID,
		TransactionType: req.TransactionType,
		Quantity:        req.Quantity,
		UnitPrice:       req.UnitPrice,
		Description:     req.Description,
		ReferenceNumber: req.ReferenceNumber,
		CreatedByID:     identity.UserID,
	})
	if err != nil {
		respondRecordError(c, err, "inventory transaction")
		return
	}

	utils.RespondCreated(c, inventoryTxToResponse(tx))
}

func (h *InventoryHandler) List(c *gin.Context) {
	page, perPage := parsePageParams(c)
	filters := repo.InventoryTxFilters{
		ProductID: c.Query("product_id"),
		Type:      c.Query("transaction_type"),
		Page:      page,
		PerPage:   perPage,
	}

	transactions, total, err := h.inventory.List(c.Request.Context(), filters)
	if err != nil {
		respondRecordError(c, err, "inventory transaction")
		return
	}

	data := make([]InventoryTxResponse, 0, len(transactions))
	for i := range transactions {
		data = append(data, inventoryTxToResponse(&transactions[i]))
	}
	c.JSON(http.StatusOK, gin.H{
		"data": data,
		"meta": utils.NewPagination(page, perPage, total),
	})
}

func (h *InventoryHandler) Get(c *gin.Context) {
	tx, err := h.inventory.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondRecordError(c, err, "inventory transaction")
		return
	}
	c.JSON(http.StatusOK, inventoryTxToResponse(tx))
}

func inventoryTxToResponse(tx *models.InventoryTransaction) InventoryTxResponse {
	return InventoryTxResponse{
		InventoryTransaction: *tx,
		TotalAmount:          tx.TotalAmount(),
	}
}
