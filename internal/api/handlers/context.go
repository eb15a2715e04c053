package handlers

import (
	"recipeshare-backend/internal/auth"
	"recipeshare-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// viewerFromContext resolves the viewer set by OptionalAuth, falling back
// to the anonymous viewer
func viewerFromContext(c *gin.Context) service.Viewer {
	if id, ok := auth.GetUserID(c); ok {
		return service.UserViewer(id)
	}
	return service.AnonymousViewer()
}
