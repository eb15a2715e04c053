package handlers

import (
	"net/http"

	"recipeshare-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// TagHandler handles HTTP requests for tags
type TagHandler struct {
	tagService service.TagServiceInterface
}

// NewTagHandler creates a new tag handler
func NewTagHandler(tagService service.TagServiceInterface) *TagHandler {
	return &TagHandler{
		tagService: tagService,
	}
}

// List retrieves all tags
// @Summary List tags
// @Description Get all recipe tags
// @Tags tags
// @Accept json
// @Produce json
// @Success 200 {array} service.TagResponse "Successfully retrieved tags"
// @Router /tags [get]
func (h *TagHandler) List(c *gin.Context) {
	tags, err := h.tagService.GetAll()
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, tags)
}

// Get retrieves a tag by ID
// @Summary Get tag by ID
// @Description Get a specific tag by its UUID
// @Tags tags
// @Accept json
// @Produce json
// @Param id path string true "Tag ID (UUID)"
// @Success 200 {object} service.TagResponse "Successfully retrieved tag"
// @Failure 400 {object} ErrorResponse "Invalid tag ID"
// @Failure 404 {object} ErrorResponse "Tag not found"
// @Router /tags/{id} [get]
func (h *TagHandler) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid tag ID"})
		return
	}

	tag, err := h.tagService.GetByID(id)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, tag)
}
