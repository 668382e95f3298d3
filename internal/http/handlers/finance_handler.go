package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/rajabpour4097/businessmanagement/internal/http/middleware"
	"github.com/rajabpour4097/businessmanagement/internal/models"
	"github.com/rajabpour4097/businessmanagement/internal/services"
	"github.com/rajabpour4097/businessmanagement/internal/utils"
)

// FinanceHandler exposes the ledger satellite records: overdue
// accounts, discrepancies, follow-ups, payable and receivable checks,
// ongoing debts, and the dashboard summary.
type FinanceHandler struct {
	finance *services.FinanceService
}

func NewFinanceHandler(finance *services.FinanceService) *FinanceHandler {
	return &FinanceHandler{finance: finance}
}

const dateLayout = "2006-01-02"

// parseDateField parses a calendar-date field and reports the failure
// to the client itself; callers just bail out on !ok.
func parseDateField(c *gin.Context, value, field string) (time.Time, bool) {
	parsed, err := time.Parse(dateLayout, value)
	if err != nil {
		utils.RespondValidationError(c, field+" must be formatted as YYYY-MM-DD")
		return time.Time{}, false
	}
	return parsed.UTC(), true
}

func respondRecordList[T any](c *gin.Context, records []T, page, perPage int, total int64) {
	if records == nil {
		records = []T{}
	}
	c.JSON(http.StatusOK, gin.H{
		"data": records,
		"meta": utils.NewPagination(page, perPage, total),
	})
}

// Overdue accounts

type OverdueCreateRequest struct {
	AccountID     string  `json:"account_id" binding:"required,uuid"`
	CustomerName  string  `json:"customer_name" binding:"required,max=200"`
	OverdueAmount float64 `json:"overdue_amount" binding:"required,gt=0"`
	DueDate       string  `json:"due_date" binding:"required"`
	ContactInfo   string  `json:"contact_info"`
}

type OverdueUpdateRequest struct {
	CustomerName  string  `json:"customer_name" binding:"required,max=200"`
	OverdueAmount float64 `json:"overdue_amount" binding:"required,gt=0"`
	DueDate       string  `json:"due_date" binding:"required"`
	ContactInfo   string  `json:"contact_info"`
}

func (h *FinanceHandler) CreateOverdue(c *gin.Context) {
	var req OverdueCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondValidationError(c, err.Error())
		return
	}
	dueDate, ok := parseDateField(c, req.DueDate, "due_date")
	if !ok {
		return
	}

	rec, err := h.finance.CreateOverdue(c.Request.Context(), &models.OverdueAccount{
		AccountID:     req.AccountID,
		CustomerName:  req.CustomerName,
		OverdueAmount: req.OverdueAmount,
		DueDate:       dueDate,
		ContactInfo:   req.ContactInfo,
	})
	if err != nil {
		respondRecordError(c, err, "overdue account")
		return
	}
	utils.RespondCreated(c, rec)
}

func (h *FinanceHandler) ListOverdue(c *gin.Context) {
	page, perPage := parsePageParams(c)
	records, total, err := h.finance.ListOverdue(c.Request.Context(), c.Query("account_id"), page, perPage)
	if err != nil {
		respondRecordError(c, err, "overdue account")
		return
	}
	respondRecordList(c, records, page, perPage, total)
}

func (h *FinanceHandler) GetOverdue(c *gin.Context) {
	rec, err := h.finance.GetOverdue(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondRecordError(c, err, "overdue account")
		return
	}
	c.JSON(http.StatusOK, rec)
}

func (h *FinanceHandler) UpdateOverdue(c *gin.Context) {
	var req OverdueUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondValidationError(c, err.Error())
		return
	}
	dueDate, ok := parseDateField(c, req.DueDate, "due_date")
	if !ok {
		return
	}

	rec := &models.OverdueAccount{
		ID:            c.Param("id"),
		CustomerName:  req.CustomerName,
		OverdueAmount: req.OverdueAmount,
		DueDate:       dueDate,
		ContactInfo:   req.ContactInfo,
	}
	if err := h.finance.UpdateOverdue(c.Request.Context(), rec); err != nil {
		respondRecordError(c, err, "overdue account")
		return
	}

	updated, err := h.finance.GetOverdue(c.Request.Context(), rec.ID)
	if err != nil {
		respondRecordError(c, err, "overdue account")
		return
	}
	c.JSON(http.StatusOK, updated)
}

func (h *FinanceHandler) DeleteOverdue(c *gin.Context) {
	if err := h.finance.DeleteOverdue(c.Request.Context(), c.Param("id")); err != nil {
		respondRecordError(c, err, "overdue account")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "overdue account deleted"})
}

// Discrepancies

type DiscrepancyCreateRequest struct {
	Title       string  `json:"title" binding:"required,max=200"`
	Description string  `json:"description" binding:"required"`
	Amount      float64 `json:"amount" binding:"required,gt=0"`
	AccountID   string  `json:"account_id" binding:"required,uuid"`
}

type DiscrepancyUpdateRequest struct {
	Title       string  `json:"title" binding:"required,max=200"`
	Description string  `json:"description" binding:"required"`
	Amount      float64 `json:"amount" binding:"required,gt=0"`
	Status      string  `json:"status" binding:"required,oneof=pending resolved rejected"`
}

func (h *FinanceHandler) CreateDiscrepancy(c *gin.Context) {
	var req DiscrepancyCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondValidationError(c, err.Error())
		return
	}

	identity, _ := middleware.IdentityFrom(c)
	rec, err := h.finance.CreateDiscrepancy(c.Request.Context(), &models.Discrepancy{
		Title:       req.Title,
		Description: req.Description,
		Amount:      req.Amount,
		AccountID:   req.AccountID,
		Status:      models.DiscrepancyStatusPending,
		CreatedByID: identity.UserID,
	})
	if err != nil {
		respondRecordError(c, err, "discrepancy")
		return
	}
	utils.RespondCreated(c, rec)
}

func (h *FinanceHandler) ListDiscrepancies(c *gin.Context) {
	page, perPage := parsePageParams(c)
	records, total, err := h.finance.ListDiscrepancies(c.Request.Context(), c.Query("status"), page, perPage)
	if err != nil {
		respondRecordError(c, err, "discrepancy")
		return
	}
	respondRecordList(c, records, page, perPage, total)
}

func (h *FinanceHandler) GetDiscrepancy(c *gin.Context) {
	rec, err := h.finance.GetDiscrepancy(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondRecordError(c, err, "discrepancy")
		return
	}
	c.JSON(http.StatusOK, rec)
}

func (h *FinanceHandler) UpdateDiscrepancy(c *gin.Context) {
	var req DiscrepancyUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondValidationError(c, err.Error())
		return
	}

	rec := &models.Discrepancy{
		ID:          c.Param("id"),
		Title:       req.Title,
		Description: req.Description,
		Amount:      req.Amount,
		Status:      req.Status,
	}
	if err := h.finance.UpdateDiscrepancy(c.Request.Context(), rec); err != nil {
		respondRecordError(c, err, "discrepancy")
		return
	}

	updated, err := h.finance.GetDiscrepancy(c.Request.Context(), rec.ID)
	if err != nil {
		respondRecordError(c, err, "discrepancy")
		return
	}
	c.JSON(http.StatusOK, updated)
}

func (h *FinanceHandler) DeleteDiscrepancy(c *gin.Context) {
	if err := h.finance.DeleteDiscrepancy(c.Request.Context(), c.Param("id")); err != nil {
		respondRecordError(c, err, "discrepancy")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "discrepancy deleted"})
}

// Follow-ups

type FollowUpCreateRequest struct {
	Title        string `json:"title" binding:"required,max=200"`
	Description  string `json:"description" binding:"required"`
	CustomerName string `json:"customer_name" binding:"required,max=200"`
	FollowUpDate string `json:"follow_up_date" binding:"required"`
}

type FollowUpUpdateRequest struct {
	Title        string `json:"title" binding:"required,max=200"`
	Description  string `json:"description" binding:"required"`
	CustomerName string `json:"customer_name" binding:"required,max=200"`
	FollowUpDate string `json:"follow_up_date" binding:"required"`
	Status       string `json:"status" binding:"required,oneof=pending in_progress completed"`
}

func (h *FinanceHandler) CreateFollowUp(c *gin.Context) {
	var req FollowUpCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondValidationError(c, err.Error())
		return
	}
	followUpDate, ok := parseDateField(c, req.FollowUpDate, "follow_up_date")
	if !ok {
		return
	}

	identity, _ := middleware.IdentityFrom(c)
	rec, err := h.finance.CreateFollowUp(c.Request.Context(), &models.FollowUp{
		Title:        req.Title,
		Description:  req.Description,
		CustomerName: req.CustomerName,
		FollowUpDate: followUpDate,
		Status:       models.FollowUpStatusPending,
		CreatedByID:  identity.UserID,
	})
	if err != nil {
		respondRecordError(c, err, "follow-up")
		return
	}
	utils.RespondCreated(c, rec)
}

func (h *FinanceHandler) ListFollowUps(c *gin.Context) {
	page, perPage := parsePageParams(c)
	records, total, err := h.finance.ListFollowUps(c.Request.Context(), c.Query("status"), page, perPage)
	if err != nil {
		respondRecordError(c, err, "follow-up")
		return
	}
	respondRecordList(c, records, page, perPage, total)
}

func (h *FinanceHandler) GetFollowUp(c *gin.Context) {
	rec, err := h.finance.GetFollowUp(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondRecordError(c, err, "follow-up")
		return
	}
	c.JSON(http.StatusOK, rec)
}

func (h *FinanceHandler) UpdateFollowUp(c *gin.Context) {
	var req FollowUpUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondValidationError(c, err.Error())
		return
	}
	followUpDate, ok := parseDateField(c, req.FollowUpDate, "follow_up_date")
	if !ok {
		return
	}

	rec := &models.FollowUp{
		ID:           c.Param("id"),
		Title:        req.Title,
		Description:  req.Description,
		CustomerName: req.CustomerName,
		FollowUpDate: followUpDate,
		Status:       req.Status,
	}
	if err := h.finance.UpdateFollowUp(c.Request.Context(), rec); err != nil {
		respondRecordError(c, err, "follow-up")
		return
	}

	updated, err := h.finance.GetFollowUp(c.Request.Context(), rec.ID)
	if err != nil {
		respondRecordError(c, err, "follow-up")
		return
	}
	c.JSON(http.StatusOK, updated)
}

func (h *FinanceHandler) DeleteFollowUp(c *gin.Context) {
	if err := h.finance.DeleteFollowUp(c.Request.Context(), c.Param("id")); err != nil {
		respondRecordError(c, err, "follow-up")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "follow-up deleted"})
}

// Checks, both directions. The payload differs only in the counterparty
// field and the status vocabulary.

type PayableCheckCreateRequest struct {
	CheckNumber string  `json:"check_number" binding:"required,max=50"`
	Amount      float64 `json:"amount" binding:"required,gt=0"`
	Payee       string  `json:"payee" binding:"required,max=200"`
	DueDate     string  `json:"due_date" binding:"required"`
	BankName    string  `json:"bank_name" binding:"required,max=100"`
}

type PayableCheckUpdateRequest struct {
	CheckNumber string  `json:"check_number" binding:"required,max=50"`
	Amount      float64 `json:"amount" binding:"required,gt=0"`
	Payee       string  `json:"payee" binding:"required,max=200"`
	DueDate     string  `json:"due_date" binding:"required"`
	BankName    string  `json:"bank_name" binding:"required,max=100"`
	Status      string  `json:"status" binding:"required,oneof=issued paid returned"`
}

func (h *FinanceHandler) CreatePayableCheck(c *gin.Context) {
	var req PayableCheckCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondValidationError(c, err.Error())
		return
	}
	dueDate, ok := parseDateField(c, req.DueDate, "due_date")
	if !ok {
		return
	}

	rec, err := h.finance.CreatePayableCheck(c.Request.Context(), &models.PayableCheck{
		CheckNumber: req.CheckNumber,
		Amount:      req.Amount,
		Payee:       req.Payee,
		DueDate:     dueDate,
		BankName:    req.BankName,
		Status:      models.PayableCheckStatusIssued,
	})
	if err != nil {
		respondRecordError(c, err, "payable check")
		return
	}
	utils.RespondCreated(c, rec)
}

func (h *FinanceHandler) ListPayableChecks(c *gin.Context) {
	page, perPage := parsePageParams(c)
	records, total, err := h.finance.ListPayableChecks(c.Request.Context(), c.Query("status"), page, perPage)
	if err != nil {
		respondRecordError(c, err, "payable check")
		return
	}
	respondRecordList(c, records, page, perPage, total)
}

func (h *FinanceHandler) GetPayableCheck(c *gin.Context) {
	rec, err := h.finance.GetPayableCheck(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondRecordError(c, err, "payable check")
		return
	}
	c.JSON(http.StatusOK, rec)
}

func (h *FinanceHandler) UpdatePayableCheck(c *gin.Context) {
	var req PayableCheckUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondValidationError(c, err.Error())
		return
	}
	dueDate, ok := parseDateField(c, req.DueDate, "due_date")
	if !ok {
		return
	}

	rec := &models.PayableCheck{
		ID:          c.Param("id"),
		CheckNumber: req.CheckNumber,
		Amount:      req.Amount,
		Payee:       req.Payee,
		DueDate:     dueDate,
		BankName:    req.BankName,
		Status:      req.Status,
	}
	if err := h.finance.UpdatePayableCheck(c.Request.Context(), rec); err != nil {
		respondRecordError(c, err, "payable check")
		return
	}

	updated, err := h.finance.GetPayableCheck(c.Request.Context(), rec.ID)
	if err != nil {
		respondRecordError(c, err, "payable check")
		return
	}
	c.JSON(http.StatusOK, updated)
}

func (h *FinanceHandler) DeletePayableCheck(c *gin.Context) {
	if err := h.finance.DeletePayableCheck(c.Request.Context(), c.Param("id")); err != nil {
		respondRecordError(c, err, "payable check")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "payable check deleted"})
}

type ReceivableCheckCreateRequest struct {
	CheckNumber string  `json:"check_number" binding:"required,max=50"`
	Amount      float64 `json:"amount" binding:"required,gt=0"`
	Payer       string  `json:"payer" binding:"required,max=200"`
	DueDate     string  `json:"due_date" binding:"required"`
	BankName    string  `json:"bank_name" binding:"required,max=100"`
}

type ReceivableCheckUpdateRequest struct {
	CheckNumber string  `json:"check_number" binding:"required,max=50"`
	Amount      float64 `json:"amount" binding:"required,gt=0"`
	Payer       string  `json:"payer" binding:"required,max=200"`
	DueDate     string  `json:"due_date" binding:"required"`
	BankName    string  `json:"bank_name" binding:"required,max=100"`
	Status      string  `json:"status" binding:"required,oneof=received deposited returned"`
}

func (h *FinanceHandler) CreateReceivableCheck(c *gin.Context) {
	var req ReceivableCheckCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondValidationError(c, err.Error())
		return
	}
	dueDate, ok := parseDateField(c, req.DueDate, "due_date")
	if !ok {
		return
	}

	rec, err := h.finance.CreateReceivableCheck(c.Request.Context(), &models.ReceivableCheck{
		CheckNumber: req.CheckNumber,
		Amount:      req.Amount,
		Payer:       req.Payer,
		DueDate:     dueDate,
		BankName:    req.BankName,
		Status:      models.ReceivableCheckStatusReceived,
	})
	if err != nil {
		respondRecordError(c, err, "receivable check")
		return
	}
	utils.RespondCreated(c, rec)
}

func (h *FinanceHandler) ListReceivableChecks(c *gin.Context) {
	page, perPage := parsePageParams(c)
	records, total, err := h.finance.ListReceivableChecks(c.Request.Context(), c.Query("status"), page, perPage)
	if err != nil {
		respondRecordError(c, err, "receivable check")
		return
	}
	respondRecordList(c, records, page, perPage, total)
}

func (h *FinanceHandler) GetReceivableCheck(c *gin.Context) {
	rec, err := h.finance.GetReceivableCheck(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondRecordError(c, err, "receivable check")
		return
	}
	c.JSON(http.StatusOK, rec)
}

func (h *FinanceHandler) UpdateReceivableCheck(c *gin.Context) {
	var req ReceivableCheckUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondValidationError(c, err.Error())
		return
	}
	dueDate, ok := parseDateField(c, req.DueDate, "due_date")
	if !ok {
		return
	}

	rec := &models.ReceivableCheck{
		ID:          c.Param("id"),
		CheckNumber: req.CheckNumber,
		Amount:      req.Amount,
		Payer:       req.Payer,
		DueDate:     dueDate,
		BankName:    req.BankName,
		Status:      req.Status,
	}
	if err := h.finance.UpdateReceivableCheck(c.Request.Context(), rec); err != nil {
		respondRecordError(c, err, "receivable check")
		return
	}

	updated, err := h.finance.GetReceivableCheck(c.Request.Context(), rec.ID)
	if err != nil {
		respondRecordError(c, err, "receivable check")
		return
	}
	c.JSON(http.StatusOK, updated)
}

func (h *FinanceHandler) DeleteReceivableCheck(c *gin.Context) {
	if err := h.finance.DeleteReceivableCheck(c.Request.Context(), c.Param("id")); err != nil {
		respondRecordError(c, err, "receivable check")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "receivable check deleted"})
}

// Ongoing debts

type DebtCreateRequest struct {
	CreditorName string  `json:"creditor_name" binding:"required,max=200"`
	Amount       float64 `json:"amount" binding:"required,gt=0"`
	Description  string  `json:"description" binding:"required"`
	DueDate      string  `json:"due_date" binding:"required"`
}

type DebtUpdateRequest struct {
	CreditorName string  `json:"creditor_name" binding:"required,max=200"`
	Amount       float64 `json:"amount" binding:"required,gt=0"`
	Description  string  `json:"description" binding:"required"`
	DueDate      string  `json:"due_date" binding:"required"`
	Status       string  `json:"status" binding:"required,oneof=pending partial_paid paid"`
}

func (h *FinanceHandler) CreateDebt(c *gin.Context) {
	var req DebtCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondValidationError(c, err.Error())
		return
	}
	dueDate, ok := parseDateField(c, req.DueDate, "due_date")
	if !ok {
		return
	}

	rec, err := h.finance.CreateDebt(c.Request.Context(), &models.OngoingDebt{
		CreditorName: req.CreditorName,
		Amount:       req.Amount,
		Description:  req.Description,
		DueDate:      dueDate,
		Status:       models.DebtStatusPending,
	})
	if err != nil {
		respondRecordError(c, err, "ongoing debt")
		return
	}
	utils.RespondCreated(c, rec)
}

func (h *FinanceHandler) ListDebts(c *gin.Context) {
	page, perPage := parsePageParams(c)
	records, total, err := h.finance.ListDebts(c.Request.Context(), c.Query("status"), page, perPage)
	if err != nil {
		respondRecordError(c, err, "ongoing debt")
		return
	}
	respondRecordList(c, records, page, perPage, total)
}

func (h *FinanceHandler) GetDebt(c *gin.Context) {
	rec, err := h.finance.GetDebt(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondRecordError(c, err, "ongoing debt")
		return
	}
	c.JSON(http.StatusOK, rec)
}

func (h *FinanceHandler) UpdateDebt(c *gin.Context) {
	var req DebtUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondValidationError(c, err.Error())
		return
	}
	dueDate, ok := parseDateField(c, req.DueDate, "due_date")
	if !ok {
		return
	}

	rec := &models.OngoingDebt{
		ID:           c.Param("id"),
		CreditorName: req.CreditorName,
		Amount:       req.Amount,
		Description:  req.Description,
		DueDate:      dueDate,
		Status:       req.Status,
	}
	if err := h.finance.UpdateDebt(c.Request.Context(), rec); err != nil {
		respondRecordError(c, err, "ongoing debt")
		return
	}

	updated, err := h.finance.GetDebt(c.Request.Context(), rec.ID)
	if err != nil {
		respondRecordError(c, err, "ongoing debt")
		return
	}
	c.JSON(http.StatusOK, updated)
}

func (h *FinanceHandler) DeleteDebt(c *gin.Context) {
	if err := h.finance.DeleteDebt(c.Request.Context(), c.Param("id")); err != nil {
		respondRecordError(c, err, "ongoing debt")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "ongoing debt deleted"})
}

// Summary

func (h *FinanceHandler) Summary(c *gin.Context) {
	summary, err := h.finance.Summary(c.Request.Context())
	if err != nil {
		respondRecordError(c, err, "financial summary")
		return
	}
	c.JSON(http.StatusOK, summary)
}
