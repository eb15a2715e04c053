package service

import (
	"errors"
	"fmt"

	apperrors "recipeshare-backend/internal/errors"

	"recipeshare-backend/internal/database/models"
	"recipeshare-backend/internal/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// IngredientService provides ingredient catalog business logic
type IngredientService struct {
	repo repository.IngredientRepositoryInterface
}

// Ensure IngredientService implements IngredientServiceInterface
var _ IngredientServiceInterface = (*IngredientService)(nil)

// NewIngredientService creates a new IngredientService
func NewIngredientService(repo repository.IngredientRepositoryInterface) *IngredientService {
	return &IngredientService{repo: repo}
}

// IngredientResponse represents a single ingredient in API responses
type IngredientResponse struct {
	ID              uuid.UUID `json:"id"`
	Name            string    `json:"name"`
	MeasurementUnit string    `json:"measurement_unit"`
}

// IngredientListResponse represents a paginated list of ingredients
type IngredientListResponse struct {
	Ingredients []IngredientResponse `json:"ingredients"`
	Total       int64                `json:"total"`
	Page        int                  `json:"page"`
	PageSize    int                  `json:"page_size"`
}

// GetAll retrieves ingredients with pagination, optionally narrowed by a
// name prefix
func (s *IngredientService) GetAll(namePrefix string, page, pageSize int) (*IngredientListResponse, error) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 || pageSize > 1000 {
		pageSize = 1000
	}

	offset := (page - 1) * pageSize
	ingredients, total, err := s.repo.GetAll(namePrefix, pageSize, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to get ingredients: %w", err)
	}

	responses := make([]IngredientResponse, len(ingredients))
	for i, ing := range ingredients {
		responses[i] = toIngredientResponse(&ing)
	}

	return &IngredientListResponse{
		Ingredients: responses,
		Total:       total,
		Page:        page,
		PageSize:    pageSize,
	}, nil
}

// GetByID retrieves an ingredient by ID
func (s *IngredientService) GetByID(id uuid.UUID) (*IngredientResponse, error) {
	ingredient, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrIngredientNotFound
		}
		return nil, fmt.Errorf("failed to get ingredient: %w", err)
	}

	resp := toIngredientResponse(ingredient)
	return &resp, nil
}

// Delete removes an ingredient unless a recipe still references it
func (s *IngredientService) Delete(id uuid.UUID) error {
	if _, err := s.repo.GetByID(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrIngredientNotFound
		}
		return fmt.Errorf("failed to get ingredient: %w", err)
	}

	refs, err := s.repo.CountRecipeReferences(id)
	if err != nil {
		return fmt.Errorf("failed to count ingredient references: %w", err)
	}
	if refs > 0 {
		return apperrors.ErrIngredientInUse
	}

	if err := s.repo.Delete(id); err != nil {
		return fmt.Errorf("failed to delete ingredient: %w", err)
	}
	return nil
}

// toIngredientResponse converts an Ingredient model to API response
func toIngredientResponse(ingredient *models.Ingredient) IngredientResponse {
	return IngredientResponse{
		ID:              ingredient.ID,
		Name:            ingredient.Name,
		MeasurementUnit: ingredient.MeasurementUnit,
	}
}
