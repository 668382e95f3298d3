package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/rajabpour4097/businessmanagement/internal/http/middleware"
	"github.com/rajabpour4097/businessmanagement/internal/models"
	"github.com/rajabpour4097/businessmanagement/internal/repo"
	"github.com/rajabpour4097/businessmanagement/internal/services"
	"github.com/rajabpour4097/businessmanagement/internal/utils"
)

type TaskHandler struct {
	tasks *services.TaskService
}

type TaskCreateRequest struct {
	Title        string `json:"title" binding:"required,max=200"`
	Description  string `json:"description"`
	AssignedToID string `json:"assigned_to_id" binding:"required"`
	Priority     string `json:"priority" binding:"omitempty,oneof=low medium high urgent"`
	DueDate      string `json:"due_date" binding:"required"`
}

type TaskUpdateRequest struct {
	Title        string `json:"title" binding:"required,max=200"`
	Description  string `json:"description"`
	AssignedToID string `json:"assigned_to_id" binding:"required"`
	Priority     string `json:"priority" binding:"required,oneof=low medium high urgent"`
	Status       string `json:"status" binding:"required,oneof=pending in_progress completed cancelled"`
	DueDate      string `json:"due_date" binding:"required"`
}

func NewTaskHandler(tasks *services.TaskService) *TaskHandler {
	return &TaskHandler{tasks: tasks}
}

func (h *TaskHandler) Create(c *gin.Context) {
	var req TaskCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondValidationError(c, err.Error())
		return
	}

	dueDate, err := time.Parse(time.RFC3339, req.DueDate)
	if err != nil {
		utils.RespondValidationError(c, "due_date must be RFC3339")
		return
	}

	priority := req.Priority
	if priority == "" {
		priority = "medium"
	}

	identity, _ := middleware.IdentityFrom(c)
	task, err := h.tasks.Create(c.Request.Context(), &models.Task{
		Title:        req.Title,
		Description:  req.Description,
		AssignedToID: req.AssignedToID,
		CreatedByID:  identity.UserID,
		Priority:     priority,
		Status:       models.TaskStatusPending,
		DueDate:      dueDate.UTC(),
	})
	if err != nil {
		respondRecordError(c, err, "task")
		return
	}

	utils.RespondCreated(c, task)
}

func (h *TaskHandler) List(c *gin.Context) {
	page, perPage := parsePageParams(c)
	filters := repo.TaskFilters{
		Status:     c.Query("status"),
		Priority:   c.Query("priority"),
		AssignedTo: c.Query("assigned_to"),
		Page:       page,
		PerPage:    perPage,
	}

	tasks, total, err := h.tasks.List(c.Request.Context(), filters)
	if err != nil {
		respondRecordError(c, err, "task")
		return
	}

	if tasks == nil {
		tasks = []models.Task{}
	}
	c.JSON(http.StatusOK, gin.H{
		"data": tasks,
		"meta": utils.NewPagination(page, perPage, total),
	})
}

func (h *TaskHandler) Get(c *gin.Context) {
	task, err := h.tasks.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondRecordError(c, err, "task")
		return
	}
	c.JSON(http.StatusOK, task)
}

func (h *TaskHandler) Update(c *gin.Context) {
	var req TaskUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondValidationError(c, err.Error())
		return
	}

	dueDate, err := time.Parse(time.RFC3339, req.DueDate)
	if err != nil {
		utils.RespondValidationError(c, "due_date must be RFC3339")
		return
	}

	existing, err := h.tasks.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondRecordError(c, err, "task")
		return
	}

	existing.Title = req.Title
	existing.Description = req.Description
	existing.AssignedToID = req.AssignedToID
	existing.Priority = req.Priority
	existing.Status = req.Status
	existing.DueDate = dueDate.UTC()

	if err := h.tasks.Update(c.Request.Context(), existing); err != nil {
		respondRecordError(c, err, "task")
		return
	}

	updated, err := h.tasks.GetByID(c.Request.Context(), existing.ID)
	if err != nil {
		respondRecordError(c, err, "task")
		return
	}
	c.JSON(http.StatusOK, updated)
}

func (h *TaskHandler) Delete(c *gin.Context) {
	if err := h.tasks.Delete(c.Request.Context(), c.Param("id")); err != nil {
		respondRecordError(c, err, "task")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "task deleted"})
}
