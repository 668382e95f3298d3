package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/rajabpour4097/businessmanagement/internal/models"
	"github.com/rajabpour4097/businessmanagement/internal/repo"
	"github.com/rajabpour4097/businessmanagement/internal/services"
	"github.com/rajabpour4097/businessmanagement/internal/utils"
)

type ProductHandler struct {
	products *services.ProductService
}

type ProductCreateRequest struct {
	Name         string  `json:"name" binding:"required,max=200"`
	Code         string  `json:"code" binding:"required,max=50"`
	Description  string  `json:"description"`
	UnitPrice    float64 `json:"unit_price" binding:"gte=0"`
	Quantity     int     `json:"quantity" binding:"gte=0"`
	MinimumStock int     `json:"minimum_stock" binding:"gte=0"`
	Category     string  `json:"category" binding:"omitempty,max=100"`
}

type ProductUpdateRequest struct {
	Name         string  `json:"name" binding:"required,max=200"`
	Description  string  `json:"description"`
	UnitPrice    float64 `json:"unit_price" binding:"gte=0"`
	Quantity     int     `json:"quantity" binding:"gte=0"`
	MinimumStock int     `json:"minimum_stock" binding:"gte=0"`
	Category     string  `json:"category" binding:"omitempty,max=100"`
	IsActive     *bool   `json:"is_active" binding:"required"`
}

type ProductResponse struct {
	models.Product
	TotalValue float64 `json:"total_value"`
	LowStock   bool    `json:"low_stock"`
}

func NewProductHandler(products *services.ProductService) *ProductHandler {
	return &ProductHandler{products: products}
}

func (h *ProductHandler) Create(c *gin.Context) {
	var req ProductCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondValidationError(c, err.Error())
		return
	}

	product, err := h.products.Create(c.Request.Context(), &models.Product{
		Name:         req.Name,
		Code:         req.Code,
		Description:  req.Description,
		UnitPrice:    req.UnitPrice,
		Quantity:     req.Quantity,
		MinimumStock: req.MinimumStock,
		Category:     req.Category,
		IsActive:     true,
	})
	if err != nil {
		respondRecordError(c, err, "product")
		return
	}

	utils.RespondCreated(c, productToResponse(product))
}

func (h *ProductHandler) List(c *gin.Context) {
	lowStock, _ := strconv.ParseBool(c.DefaultQuery("low_stock", "false"))
	page, perPage := parsePageParams(c)
	filters := repo.ProductFilters{
		Search:   c.Query("search"),
		Category: c.Query("category"),
		LowStock: lowStock,
		Page:     page,
		PerPage:  perPage,
	}

	products, total, err := h.products.List(c.Request.Context(), filters)
	if err != nil {
		respondRecordError(c, err, "product")
		return
	}

	data := make([]ProductResponse, 0, len(products))
	for i := range products {
		data = append(data, productToResponse(&products[i]))
	}
	c.JSON(http.StatusOK, gin.H{
		"data": data,
		"meta": utils.NewPagination(page, perPage, total),
	})
}

func (h *ProductHandler) Get(c *gin.Context) {
	product, err := h.products.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondRecordError(c, err, "product")
		return
	}
	c.JSON(http.StatusOK, productToResponse(product))
}

func (h *ProductHandler) Update(c *gin.Context) {
	var req ProductUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondValidationError(c, err.Error())
		return
	}

	product := &models.Product{
		ID:           c.Param("id"),
		Name:         req.Name,
		Description:  req.Description,
		UnitPrice:    req.UnitPrice,
		Quantity:     req.Quantity,
		MinimumStock: req.MinimumStock,
		Category:     req.Category,
		IsActive:     *req.IsActive,
	}
	if err := h.products.Update(c.Request.Context(), product); err != nil {
		respondRecordError(c, err, "product")
		return
	}

	updated, err := h.products.GetByID(c.Request.Context(), product.ID)
	if err != nil {
		respondRecordError(c, err, "product")
		return
	}
	c.JSON(http.StatusOK, productToResponse(updated))
}

func (h *ProductHandler) Delete(c *gin.Context) {
	if err := h.products.Delete(c.Request.Context(), c.Param("id")); err != nil {
		respondRecordError(c, err, "product")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "product deleted"})
}

func productToResponse(p *models.Product) ProductResponse {
	return ProductResponse{
		Product:    *p,
		TotalValue: p.TotalValue(),
		LowStock:   p.IsLowStock(),
	}
}
