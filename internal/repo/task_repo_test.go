package repo

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rajabpour4097/businessmanagement/internal/models"
)

func newTask(title, assignee, status, priority string) *models.Task {
	return &models.Task{
		ID:           uuid.NewString(),
		Title:        title,
		AssignedToID: assignee,
		CreatedByID:  uuid.NewString(),
		Priority:     priority,
		Status:       status,
		DueDate:      time.Now().Add(48 * time.Hour),
	}
}

func TestTaskRepo_CreateAndGet(t *testing.T) {
	ctx := context.Background()
	repo := NewTaskRepo(newRecordDB(t))

	created, err := repo.Create(ctx, newTask("Close Q3 books", uuid.NewString(), models.TaskStatusPending, "high"))
	require.NoError(t, err)

	got, err := repo.GetByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "Close Q3 books", got.Title)
	assert.Equal(t, models.TaskStatusPending, got.Status)
	assert.Nil(t, got.CompletedAt)
}

func TestTaskRepo_ListFilters(t *testing.T) {
	ctx := context.Background()
	repo := NewTaskRepo(newRecordDB(t))
	clerk := uuid.NewString()

	seed := []*models.Task{
		newTask("Close Q3 books", clerk, models.TaskStatusPending, "high"),
		newTask("File VAT return", clerk, models.TaskStatusInProgress, "medium"),
		newTask("Archive invoices", uuid.NewString(), models.TaskStatusPending, "low"),
	}
	for _, task := range seed {
		_, err := repo.Create(ctx, task)
		require.NoError(t, err)
	}

	t.Run("by status", func(t *testing.T) {
		_, total, err := repo.List(ctx, TaskFilters{Status: models.TaskStatusPending})
		require.NoError(t, err)
		assert.EqualValues(t, 2, total)
	})

	t.Run("by assignee", func(t *testing.T) {
		tasks, total, err := repo.List(ctx, TaskFilters{AssignedTo: clerk})
		require.NoError(t, err)
		assert.EqualValues(t, 2, total)
		assert.Len(t, tasks, 2)
	})

	t.Run("by priority", func(t *testing.T) {
		tasks, total, err := repo.List(ctx, TaskFilters{Priority: "low"})
		require.NoError(t, err)
		assert.EqualValues(t, 1, total)
		require.Len(t, tasks, 1)
		assert.Equal(t, "Archive invoices", tasks[0].Title)
	})
}

func TestTaskRepo_CompleteStampsOnce(t *testing.T) {
	ctx := context.Background()
	repo := NewTaskRepo(newRecordDB(t))

	created, err := repo.Create(ctx, newTask("Close Q3 books", uuid.NewString(), models.TaskStatusPending, "high"))
	require.NoError(t, err)

	created.MarkStatus(models.TaskStatusCompleted, time.Now())
	require.NoError(t, repo.Update(ctx, created))

	got, err := repo.GetByID(ctx, created.ID)
	require.NoError(t, err)
	require.NotNil(t, got.CompletedAt)
	first := *got.CompletedAt

	// A later update keeps the original completion stamp.
	got.MarkStatus(models.TaskStatusCompleted, time.Now().Add(time.Hour))
	require.NoError(t, repo.Update(ctx, got))

	again, err := repo.GetByID(ctx, got.ID)
	require.NoError(t, err)
	require.NotNil(t, again.CompletedAt)
	assert.WithinDuration(t, first, *again.CompletedAt, time.Second)
}
