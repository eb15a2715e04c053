package service

import (
	"github.com/google/uuid"
)

// Viewer identifies who is looking at a resource. The anonymous viewer is
// valid input everywhere reads are served; only mutations require identity.
type Viewer struct {
	ID            uuid.UUID
	Authenticated bool
}

// AnonymousViewer returns the unauthenticated viewer
func AnonymousViewer() Viewer {
	return Viewer{}
}

// UserViewer returns a viewer for an authenticated user
func UserViewer(id uuid.UUID) Viewer {
	return Viewer{ID: id, Authenticated: true}
}
