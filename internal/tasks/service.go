package tasks

import (
	"context"
	"errors"
	"time"

	"duit-backend/internal/domain"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

var (
	ErrNotFound        = errors.New("Task not found")
	ErrTitleRequired   = errors.New("Task title is required")
	ErrInvalidStatus   = errors.New("Status must be todo, in_progress or done")
	ErrInvalidPriority = errors.New("Priority must be low, medium or high")
)

type Service struct {
	DB *gorm.DB
}

// TaskInput is the create/update payload.
type TaskInput struct {
	Title       string  `json:"title"`
	Description *string `json:"description"`
	Status      string  `json:"status"`
	Priority    string  `json:"priority"`
	DueDate     *string `json:"due_date"`
}

// Board groups tasks by column for the task board page.
type Board struct {
	Todo       []domain.Task `json:"todo"`
	InProgress []domain.Task `json:"in_progress"`
	Done       []domain.Task `json:"done"`
}

// ListBoard returns the user's tasks grouped by status, newest first.
func (s *Service) ListBoard(ctx context.Context, userID uuid.UUID) (*Board, error) {
	var list []domain.Task
	if err := s.DB.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&list).Error; err != nil {
		return nil, err
	}

	board := &Board{
		Todo:       []domain.Task{},
		InProgress: []domain.Task{},
		Done:       []domain.Task{},
	}
	for _, t := range list {
		switch t.Status {
		case domain.TaskInProgress:
			board.InProgress = append(board.InProgress, t)
		case domain.TaskDone:
			board.Done = append(board.Done, t)
		default:
			board.Todo = append(board.Todo, t)
		}
	}
	return board, nil
}

// CreateTask inserts a new task; status defaults to todo, priority to medium.
func (s *Service) CreateTask(ctx context.Context, userID uuid.UUID, in TaskInput) (*domain.Task, error) {
	if in.Title == "" {
		return nil, ErrTitleRequired
	}
	if in.Status == "" {
		in.Status = domain.TaskTodo
	}
	if in.Priority == "" {
		in.Priority = domain.PriorityMedium
	}
	if !domain.IsValidTaskStatus(in.Status) {
		return nil, ErrInvalidStatus
	}
	if !domain.IsValidTaskPriority(in.Priority) {
		return nil, ErrInvalidPriority
	}

	t := domain.Task{
		UserID:      userID,
		Title:       in.Title,
		Description: in.Description,
		Status:      in.Status,
		Priority:    in.Priority,
		DueDate:     in.DueDate,
	}
	if err := s.DB.WithContext(ctx).Create(&t).Error; err != nil {
		return nil, err
	}
	return &t, nil
}

// UpdateTask replaces a task's fields.
func (s *Service) UpdateTask(ctx context.Context, userID, taskID uuid.UUID, in TaskInput) (*domain.Task, error) {
	var t domain.Task
	if err := s.DB.WithContext(ctx).Where("id = ? AND user_id = ?", taskID, userID).First(&t).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, ErrNotFound
		}
		return nil, err
	}

	if in.Title == "" {
		return nil, ErrTitleRequired
	}
	if !domain.IsValidTaskStatus(in.Status) {
		return nil, ErrInvalidStatus
	}
	if !domain.IsValidTaskPriority(in.Priority) {
		return nil, ErrInvalidPriority
	}

	t.Title = in.Title
	t.Description = in.Description
	t.Status = in.Status
	t.Priority = in.Priority
	t.DueDate = in.DueDate
	t.UpdatedAt = time.Now()
	if err := s.DB.WithContext(ctx).Save(&t).Error; err != nil {
		return nil, err
	}
	return &t, nil
}

// MoveTask changes only a task's board column.
func (s *Service) MoveTask(ctx context.Context, userID, taskID uuid.UUID, status string) (*domain.Task, error) {
	if !domain.IsValidTaskStatus(status) {
		return nil, ErrInvalidStatus
	}

	var t domain.Task
	if err := s.DB.WithContext(ctx).Where("id = ? AND user_id = ?", taskID, userID).First(&t).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, ErrNotFound
		}
		return nil, err
	}

	t.Status = status
	t.UpdatedAt = time.Now()
	if err := s.DB.WithContext(ctx).Save(&t).Error; err != nil {
		return nil, err
	}
	return &t, nil
}

// DeleteTask removes a task owned by the user.
func (s *Service) DeleteTask(ctx context.Context, userID, taskID uuid.UUID) error {
	res := s.DB.WithContext(ctx).
		Where("id = ? AND user_id = ?", taskID, userID).
		Delete(&domain.Task{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
