package services

import (
	"context"
	"time"

	"github.com/rajabpour4097/businessmanagement/internal/models"
	"github.com/rajabpour4097/businessmanagement/internal/repo"
)

type TaskService struct {
	tasks *repo.TaskRepo
}

func NewTaskService(tasks *repo.TaskRepo) *TaskService {
	return &TaskService{tasks: tasks}
}

func (s *TaskService) Create(ctx context.Context, task *models.Task) (*models.Task, error) {
	task.MarkStatus(task.Status, time.Now())
	return s.tasks.Create(ctx, task)
}

func (s *TaskService) List(ctx context.Context, filters repo.TaskFilters) ([]models.Task, int64, error) {
	return s.tasks.List(ctx, filters)
}

func (s *TaskService) GetByID(ctx context.Context, id string) (*models.Task, error) {
	return s.tasks.GetByID(ctx, id)
}

func (s *TaskService) Update(ctx context.Context, task *models.Task) error {
	task.MarkStatus(task.Status, time.Now())
	return s.tasks.Update(ctx, task)
}

func (s *TaskService) Delete(ctx context.Context, id string) error {
	return s.tasks.Delete(ctx, id)
}
