package render

import (
	"fmt"
	"strings"

	"recipeshare-backend/internal/service"
)

// TextRenderer renders the shopping list as plain text
type TextRenderer struct{}

// Ensure TextRenderer implements Renderer
var _ Renderer = (*TextRenderer)(nil)

// NewTextRenderer creates a new TextRenderer
func NewTextRenderer() *TextRenderer {
	return &TextRenderer{}
}

// Render produces the text document
func (r *TextRenderer) Render(title string, items []service.ShoppingListItem) ([]byte, error) {
	var b strings.Builder
	b.WriteString(title)
	b.WriteString("\n\n")
	for i, item := range items {
		fmt.Fprintf(&b, "%d. %s (%s) - %d\n", i+1, item.Name, item.MeasurementUnit, item.Amount)
	}
	return []byte(b.String()), nil
}

// ContentType returns the MIME type of the document
func (r *TextRenderer) ContentType() string {
	return "text/plain; charset=utf-8"
}

// Extension returns the file extension of the document
func (r *TextRenderer) Extension() string {
	return "txt"
}
