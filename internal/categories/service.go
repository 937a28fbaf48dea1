package categories

import (
	"context"
	"errors"
	"strings"

	"duit-backend/internal/domain"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

var (
	ErrNotFound     = errors.New("Category not found")
	ErrNameRequired = errors.New("Category name is required")
	ErrInvalidType  = errors.New("Type must be income or expense")
)

type Service struct {
	DB *gorm.DB
}

// CreateInput is the new-category payload.
type CreateInput struct {
	Name string `json:"name"`
	Type string `json:"type"`
}

// ListCategories returns a user's categories ordered by name, optionally
// filtered by type.
func (s *Service) ListCategories(ctx context.Context, userID uuid.UUID, catType string) ([]domain.Category, error) {
	q := s.DB.WithContext(ctx).Where("user_id = ?", userID)
	if catType != "" {
		q = q.Where("type = ?", catType)
	}
	var cats []domain.Category
	if err := q.Order("name ASC").Find(&cats).Error; err != nil {
		return nil, err
	}
	return cats, nil
}

// CreateCategory inserts a new category.
func (s *Service) CreateCategory(ctx context.Context, userID uuid.UUID, in CreateInput) (*domain.Category, error) {
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return nil, ErrNameRequired
	}
	if in.Type != domain.TxIncome && in.Type != domain.TxExpense {
		return nil, ErrInvalidType
	}

	cat := domain.Category{UserID: userID, Name: name, Type: in.Type}
	if err := s.DB.WithContext(ctx).Create(&cat).Error; err != nil {
		return nil, err
	}
	return &cat, nil
}

// DeleteCategory removes a category owned by the user.
func (s *Service) DeleteCategory(ctx context.Context, userID, catID uuid.UUID) error {
	res := s.DB.WithContext(ctx).
		Where("id = ? AND user_id = ?", catID, userID).
		Delete(&domain.Category{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
