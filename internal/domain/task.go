package domain

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Task board columns.
const (
	TaskTodo       = "todo"
	TaskInProgress = "in_progress"
	TaskDone       = "done"
)

// Task priorities.
const (
	PriorityLow    = "low"
	PriorityMedium = "medium"
	PriorityHigh   = "high"
)

// Task is a to-do item on the personal task board.
type Task struct {
	ID          uuid.UUID `gorm:"column:id;type:uuid;primaryKey" json:"id"`
	UserID      uuid.UUID `gorm:"column:user_id;type:uuid;not null;index" json:"user_id"`
	Title       string    `gorm:"column:title;not null" json:"title"`
	Description *string   `gorm:"column:description" json:"description"`
	Status      string    `gorm:"column:status;type:varchar(15);not null;default:todo" json:"status"`
	Priority    string    `gorm:"column:priority;type:varchar(10);not null;default:medium" json:"priority"`
	DueDate     *string   `gorm:"column:due_date;type:date" json:"due_date"`
	CreatedAt   time.Time `gorm:"column:created_at" json:"created_at"`
	UpdatedAt   time.Time `gorm:"column:updated_at" json:"updated_at"`
}

func (Task) TableName() string {
	return "tasks"
}

func (t *Task) BeforeCreate(tx *gorm.DB) error {
	if t.ID == uuid.Nil {
		t.ID = uuid.New()
	}
	return nil
}

// IsValidTaskStatus reports whether s is a known board column.
func IsValidTaskStatus(s string) bool {
	return s == TaskTodo || s == TaskInProgress || s == TaskDone
}

// IsValidTaskPriority reports whether p is a known priority.
func IsValidTaskPriority(p string) bool {
	return p == PriorityLow || p == PriorityMedium || p == PriorityHigh
}
