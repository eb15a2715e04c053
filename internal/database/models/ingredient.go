package models

// Ingredient is a catalog entry. The same name may exist with different
// measurement units, so uniqueness is on the (name, measurement_unit) pair.
type Ingredient struct {
	BaseModel
	Name            string `json:"name" gorm:"uniqueIndex:idx_ingredients_name_unit;not null;size:200;index:idx_ingredients_name" validate:"required,max=200"`
	MeasurementUnit string `json:"measurement_unit" gorm:"uniqueIndex:idx_ingredients_name_unit;not null;size:200" validate:"required,max=200"`
}

// TableName returns the table name for Ingredient
func (Ingredient) TableName() string {
	return "ingredients"
}
