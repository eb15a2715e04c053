package handlers

import (
	"net/http"
	"strconv"

	"recipeshare-backend/internal/auth"
	"recipeshare-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// UserHandler handles HTTP requests for users and subscriptions
type UserHandler struct {
	userService   service.UserServiceInterface
	followService service.FollowServiceInterface
}

// NewUserHandler creates a new user handler
func NewUserHandler(userService service.UserServiceInterface, followService service.FollowServiceInterface) *UserHandler {
	return &UserHandler{
		userService:   userService,
		followService: followService,
	}
}

// Register creates a new account
// @Summary Register a new user
// @Description Create an account with email, username, name and password
// @Tags users
// @Accept json
// @Produce json
// @Param user body service.RegisterRequest true "Registration data"
// @Success 201 {object} service.UserResponse "Successfully registered"
// @Failure 400 {object} ErrorResponse "Invalid request body"
// @Failure 409 {object} ErrorResponse "Email or username already taken"
// @Router /users [post]
func (h *UserHandler) Register(c *gin.Context) {
	var req service.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	user, err := h.userService.Register(&req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, user)
}

// List retrieves users with pagination
// @Summary List users
// @Description Get users with pagination, annotated with is_subscribed for the viewer
// @Tags users
// @Accept json
// @Produce json
// @Param page query int false "Page number" default(1)
// @Param limit query int false "Page size" default(10)
// @Success 200 {object} service.UserListResponse "Successfully retrieved users"
// @Router /users [get]
func (h *UserHandler) List(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "10"))

	users, err := h.userService.GetAll(viewerFromContext(c), page, limit)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, users)
}

// Get retrieves a user by ID
// @Summary Get user by ID
// @Description Get a specific user by their UUID, annotated for the viewer
// @Tags users
// @Accept json
// @Produce json
// @Param id path string true "User ID (UUID)"
// @Success 200 {object} service.UserResponse "Successfully retrieved user"
// @Failure 400 {object} ErrorResponse "Invalid user ID"
// @Failure 404 {object} ErrorResponse "User not found"
// @Router /users/{id} [get]
func (h *UserHandler) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid user ID"})
		return
	}

	user, err := h.userService.GetByID(viewerFromContext(c), id)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, user)
}

// Me retrieves the current user
// @Summary Get current user
// @Description Get the authenticated user's own profile
// @Tags users
// @Accept json
// @Produce json
// @Success 200 {object} service.UserResponse "Successfully retrieved user"
// @Failure 401 {object} ErrorResponse "Not authenticated"
// @Security BearerAuth
// @Router /users/me [get]
func (h *UserHandler) Me(c *gin.Context) {
	userID, ok := auth.GetUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
		return
	}

	user, err := h.userService.GetByID(service.UserViewer(userID), userID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, user)
}

// SetPassword changes the current user's password
// @Summary Change password
// @Description Change the authenticated user's password after verifying the current one
// @Tags users
// @Accept json
// @Produce json
// @Param passwords body service.SetPasswordRequest true "Current and new password"
// @Success 204 "Password changed"
// @Failure 400 {object} ErrorResponse "Invalid request body"
// @Failure 401 {object} ErrorResponse "Current password is incorrect"
// @Security BearerAuth
// @Router /users/set_password [post]
func (h *UserHandler) SetPassword(c *gin.Context) {
	userID, ok := auth.GetUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
		return
	}

	var req service.SetPasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := h.userService.SetPassword(userID, &req); err != nil {
		respondError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// Subscriptions lists the authors the current user follows
// @Summary List subscriptions
// @Description Get the followed authors with their recent recipes and recipe counts
// @Tags users
// @Accept json
// @Produce json
// @Param page query int false "Page number" default(1)
// @Param limit query int false "Page size" default(10)
// @Param recipes_limit query int false "Max recipes per author"
// @Success 200 {object} service.SubscriptionListResponse "Successfully retrieved subscriptions"
// @Failure 401 {object} ErrorResponse "Not authenticated"
// @Security BearerAuth
// @Router /users/subscriptions [get]
func (h *UserHandler) Subscriptions(c *gin.Context) {
	userID, ok := auth.GetUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
		return
	}

	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "10"))
	recipesLimit, _ := strconv.Atoi(c.DefaultQuery("recipes_limit", "0"))

	subscriptions, err := h.userService.Subscriptions(userID, page, limit, recipesLimit)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, subscriptions)
}

// Subscribe follows an author
// @Summary Subscribe to an author
// @Description Follow another user; self-subscription is rejected
// @Tags users
// @Accept json
// @Produce json
// @Param id path string true "Author ID (UUID)"
// @Param recipes_limit query int false "Max recipes in the response"
// @Success 201 {object} service.SubscriptionResponse "Successfully subscribed"
// @Failure 400 {object} ErrorResponse "Invalid user ID or self-subscription"
// @Failure 404 {object} ErrorResponse "User not found"
// @Failure 409 {object} ErrorResponse "Already subscribed"
// @Security BearerAuth
// @Router /users/{id}/subscribe [post]
func (h *UserHandler) Subscribe(c *gin.Context) {
	userID, ok := auth.GetUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
		return
	}

	followingID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid user ID"})
		return
	}

	recipesLimit, _ := strconv.Atoi(c.DefaultQuery("recipes_limit", "0"))

	subscription, err := h.followService.Subscribe(userID, followingID, recipesLimit)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, subscription)
}

// Unsubscribe unfollows an author
// @Summary Unsubscribe from an author
// @Description Remove an existing subscription
// @Tags users
// @Accept json
// @Produce json
// @Param id path string true "Author ID (UUID)"
// @Success 204 "Successfully unsubscribed"
// @Failure 400 {object} ErrorResponse "Invalid user ID"
// @Failure 404 {object} ErrorResponse "Subscription not found"
// @Security BearerAuth
// @Router /users/{id}/subscribe [delete]
func (h *UserHandler) Unsubscribe(c *gin.Context) {
	userID, ok := auth.GetUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
		return
	}

	followingID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid user ID"})
		return
	}

	if err := h.followService.Unsubscribe(userID, followingID); err != nil {
		respondError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
