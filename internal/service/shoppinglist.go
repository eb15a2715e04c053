package service

import (
	"fmt"
	"sort"

	"recipeshare-backend/internal/repository"

	"github.com/google/uuid"
)

// ShoppingListService consolidates the viewer's cart into purchasable lines
type ShoppingListService struct {
	cartRepo repository.ShoppingCartRepositoryInterface
}

// Ensure ShoppingListService implements ShoppingListServiceInterface
var _ ShoppingListServiceInterface = (*ShoppingListService)(nil)

// NewShoppingListService creates a new ShoppingListService
func NewShoppingListService(cartRepo repository.ShoppingCartRepositoryInterface) *ShoppingListService {
	return &ShoppingListService{cartRepo: cartRepo}
}

// ShoppingListItem is one consolidated line of the shopping list
type ShoppingListItem struct {
	Name            string `json:"name"`
	MeasurementUnit string `json:"measurement_unit"`
	Amount          int    `json:"amount"`
}

// Build returns the user's consolidated shopping list. An empty cart yields
// an empty list, not an error.
func (s *ShoppingListService) Build(userID uuid.UUID) ([]ShoppingListItem, error) {
	rows, err := s.cartRepo.IngredientRows(userID)
	if err != nil {
		return nil, fmt.Errorf("failed to load cart ingredients: %w", err)
	}
	return Consolidate(rows), nil
}

// Consolidate sums amounts per (name, measurement unit) and orders the
// result by name, then unit. Same name with different units stays separate.
func Consolidate(rows []repository.CartIngredientRow) []ShoppingListItem {
	type key struct {
		name string
		unit string
	}

	totals := make(map[key]int, len(rows))
	for _, row := range rows {
		totals[key{row.Name, row.MeasurementUnit}] += row.Amount
	}

	items := make([]ShoppingListItem, 0, len(totals))
	for k, amount := range totals {
		items = append(items, ShoppingListItem{
			Name:            k.name,
			MeasurementUnit: k.unit,
			Amount:          amount,
		})
	}

	sort.Slice(items, func(i, j int) bool {
		if items[i].Name != items[j].Name {
			return items[i].Name < items[j].Name
		}
		return items[i].MeasurementUnit < items[j].MeasurementUnit
	})
	return items
}
