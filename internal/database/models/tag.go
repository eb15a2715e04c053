package models

// Tag is a recipe label (e.g. breakfast). Name, color and slug are each unique.
type Tag struct {
	BaseModel
	Name  string `json:"name" gorm:"uniqueIndex:idx_tags_name;not null;size:200" validate:"required,max=200"`
	Color string `json:"color" gorm:"uniqueIndex:idx_tags_color;not null;size:7" validate:"required,hexcolor,max=7"`
	Slug  string `json:"slug" gorm:"uniqueIndex:idx_tags_slug;not null;size:200" validate:"required,max=200"`
}

// TableName returns the table name for Tag
func (Tag) TableName() string {
	return "tags"
}
