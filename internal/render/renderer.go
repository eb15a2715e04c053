package render

import (
	"recipeshare-backend/internal/service"
)

// Renderer turns a consolidated shopping list into a downloadable document.
// An empty item list still produces a valid header-only document.
type Renderer interface {
	Render(title string, items []service.ShoppingListItem) ([]byte, error)
	ContentType() string
	Extension() string
}

// ForFormat picks a renderer by the requested format, defaulting to PDF
func ForFormat(format string) Renderer {
	if format == "txt" {
		return NewTextRenderer()
	}
	return NewPDFRenderer()
}
