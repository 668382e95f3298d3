package models

import "time"

const (
	TaskStatusPending    = "pending"
	TaskStatusInProgress = "in_progress"
	TaskStatusCompleted  = "completed"
	TaskStatusCancelled  = "cancelled"
)

type Task struct {
	ID           string     `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	Title        string     `gorm:"size:200;not null" json:"title"`
	Description  string     `json:"description"`
	AssignedToID string     `gorm:"type:uuid;index;not null" json:"assigned_to_id"`
	CreatedByID  string     `gorm:"type:uuid;index;not null" json:"created_by_id"`
	Priority     string     `gorm:"size:20;not null;default:medium" json:"priority"`
	Status       string     `gorm:"size:20;not null;default:pending" json:"status"`
	DueDate      time.Time  `gorm:"not null" json:"due_date"`
	CompletedAt  *time.Time `json:"completed_at,omitempty"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at"`
}

// MarkStatus updates the status and stamps the completion time the first
// time a task transitions to completed.
func (t *Task) MarkStatus(status string, now time.Time) {
	t.Status = status
	if status == TaskStatusCompleted && t.CompletedAt == nil {
		completed := now.UTC()
		t.CompletedAt = &completed
	}
}
