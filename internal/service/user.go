package service

import (
	"errors"
	"fmt"

	apperrors "recipeshare-backend/internal/errors"

	"recipeshare-backend/internal/auth"
	"recipeshare-backend/internal/database/models"
	"recipeshare-backend/internal/repository"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// UserService provides account and subscription business logic
type UserService struct {
	userRepo    repository.UserRepositoryInterface
	recipeRepo  repository.RecipeRepositoryInterface
	annotator   *Annotator
	authService *auth.AuthService
	validator   *validator.Validate
}

// Ensure UserService implements UserServiceInterface
var _ UserServiceInterface = (*UserService)(nil)

// NewUserService creates a new UserService
func NewUserService(
	userRepo repository.UserRepositoryInterface,
	recipeRepo repository.RecipeRepositoryInterface,
	annotator *Annotator,
	authService *auth.AuthService,
	validator *validator.Validate,
) *UserService {
	return &UserService{
		userRepo:    userRepo,
		recipeRepo:  recipeRepo,
		annotator:   annotator,
		authService: authService,
		validator:   validator,
	}
}

// RegisterRequest represents the payload for creating an account
type RegisterRequest struct {
	Email     string `json:"email" validate:"required,email,max=254"`
	Username  string `json:"username" validate:"required,max=150"`
	FirstName string `json:"first_name" validate:"required,max=150"`
	LastName  string `json:"last_name" validate:"required,max=150"`
	Password  string `json:"password" validate:"required,min=8,max=150"`
}

// LoginRequest represents the payload for obtaining a token
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// SetPasswordRequest represents the payload for changing the password
type SetPasswordRequest struct {
	CurrentPassword string `json:"current_password" validate:"required"`
	NewPassword     string `json:"new_password" validate:"required,min=8,max=150"`
}

// TokenResponse carries an issued access token
type TokenResponse struct {
	AuthToken string `json:"auth_token"`
}

// UserResponse represents a single user in API responses
type UserResponse struct {
	ID           uuid.UUID `json:"id"`
	Email        string    `json:"email"`
	Username     string    `json:"username"`
	FirstName    string    `json:"first_name"`
	LastName     string    `json:"last_name"`
	IsSubscribed bool      `json:"is_subscribed"`
}

// UserListResponse represents a paginated list of users
type UserListResponse struct {
	Users    []UserResponse `json:"users"`
	Total    int64          `json:"total"`
	Page     int            `json:"page"`
	PageSize int            `json:"page_size"`
}

// SubscriptionResponse is a followed author with their recent recipes
type SubscriptionResponse struct {
	UserResponse
	Recipes      []RecipePreviewResponse `json:"recipes"`
	RecipesCount int64                   `json:"recipes_count"`
}

// SubscriptionListResponse represents a paginated list of subscriptions
type SubscriptionListResponse struct {
	Subscriptions []SubscriptionResponse `json:"subscriptions"`
	Total         int64                  `json:"total"`
	Page          int                    `json:"page"`
	PageSize      int                    `json:"page_size"`
}

// Register creates a new account
func (s *UserService) Register(req *RegisterRequest) (*UserResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, apperrors.NewValidationError("", err.Error())
	}

	if _, err := s.userRepo.GetByEmail(req.Email); err == nil {
		return nil, apperrors.ErrUserEmailExists
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("failed to check email: %w", err)
	}

	if _, err := s.userRepo.GetByUsername(req.Username); err == nil {
		return nil, apperrors.ErrUserUsernameExists
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("failed to check username: %w", err)
	}

	hash, err := hashPassword(req.Password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := models.User{
		Email:        req.Email,
		Username:     req.Username,
		FirstName:    req.FirstName,
		LastName:     req.LastName,
		PasswordHash: hash,
	}
	if err := s.userRepo.Create(&user); err != nil {
		if repository.IsUniqueViolation(err) {
			return nil, apperrors.ErrUserEmailExists
		}
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	resp := toUserResponse(&user, false)
	return &resp, nil
}

// Login verifies credentials and issues a token
func (s *UserService) Login(req *LoginRequest) (*TokenResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, apperrors.NewValidationError("", err.Error())
	}

	user, err := s.userRepo.GetByEmail(req.Email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrInvalidCredentials
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}

	if !checkPassword(user.PasswordHash, req.Password) {
		return nil, apperrors.ErrInvalidCredentials
	}

	token, err := s.authService.GenerateJWT(user.ID, user.Username, user.Email)
	if err != nil {
		return nil, fmt.Errorf("failed to generate token: %w", err)
	}
	return &TokenResponse{AuthToken: token}, nil
}

// GetByID retrieves a user as seen by the viewer
func (s *UserService) GetByID(viewer Viewer, id uuid.UUID) (*UserResponse, error) {
	user, err := s.userRepo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}

	subscribed, err := s.annotator.SubscribedSet(viewer, []uuid.UUID{user.ID})
	if err != nil {
		return nil, err
	}

	resp := toUserResponse(user, subscribed[user.ID])
	return &resp, nil
}

// GetAll retrieves users with pagination, annotated for the viewer
func (s *UserService) GetAll(viewer Viewer, page, pageSize int) (*UserListResponse, error) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 || pageSize > 100 {
		pageSize = 10
	}

	offset := (page - 1) * pageSize
	users, total, err := s.userRepo.GetAll(pageSize, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to get users: %w", err)
	}

	ids := make([]uuid.UUID, len(users))
	for i, u := range users {
		ids[i] = u.ID
	}
	subscribed, err := s.annotator.SubscribedSet(viewer, ids)
	if err != nil {
		return nil, err
	}

	responses := make([]UserResponse, len(users))
	for i, u := range users {
		responses[i] = toUserResponse(&u, subscribed[u.ID])
	}

	return &UserListResponse{
		Users:    responses,
		Total:    total,
		Page:     page,
		PageSize: pageSize,
	}, nil
}

// SetPassword changes the user's password after verifying the current one
func (s *UserService) SetPassword(userID uuid.UUID, req *SetPasswordRequest) error {
	if err := s.validator.Struct(req); err != nil {
		return apperrors.NewValidationError("", err.Error())
	}

	user, err := s.userRepo.GetByID(userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrUserNotFound
		}
		return fmt.Errorf("failed to get user: %w", err)
	}

	if !checkPassword(user.PasswordHash, req.CurrentPassword) {
		return apperrors.NewAuthenticationError("current password is incorrect")
	}

	hash, err := hashPassword(req.NewPassword)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}

	user.PasswordHash = hash
	if err := s.userRepo.Update(user); err != nil {
		return fmt.Errorf("failed to update user: %w", err)
	}
	return nil
}

// Subscriptions lists the authors the user follows, each with their recent
// recipes and total recipe count
func (s *UserService) Subscriptions(userID uuid.UUID, page, pageSize, recipesLimit int) (*SubscriptionListResponse, error) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 || pageSize > 100 {
		pageSize = 10
	}

	offset := (page - 1) * pageSize
	authors, total, err := s.userRepo.GetFollowing(userID, pageSize, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to get subscriptions: %w", err)
	}

	authorIDs := make([]uuid.UUID, len(authors))
	for i, a := range authors {
		authorIDs[i] = a.ID
	}

	counts, err := s.annotator.RecipeCounts(authorIDs)
	if err != nil {
		return nil, err
	}

	recipes, err := s.recipeRepo.ListByAuthors(authorIDs)
	if err != nil {
		return nil, fmt.Errorf("failed to get subscription recipes: %w", err)
	}
	byAuthor := make(map[uuid.UUID][]RecipePreviewResponse)
	for _, r := range recipes {
		if recipesLimit > 0 && len(byAuthor[r.AuthorID]) >= recipesLimit {
			continue
		}
		byAuthor[r.AuthorID] = append(byAuthor[r.AuthorID], toRecipePreviewResponse(&r))
	}

	responses := make([]SubscriptionResponse, len(authors))
	for i, a := range authors {
		previews := byAuthor[a.ID]
		if previews == nil {
			previews = []RecipePreviewResponse{}
		}
		responses[i] = SubscriptionResponse{
			UserResponse: toUserResponse(&a, true),
			Recipes:      previews,
			RecipesCount: counts[a.ID],
		}
	}

	return &SubscriptionListResponse{
		Subscriptions: responses,
		Total:         total,
		Page:          page,
		PageSize:      pageSize,
	}, nil
}

// toUserResponse converts a User model to API response
func toUserResponse(user *models.User, isSubscribed bool) UserResponse {
	return UserResponse{
		ID:           user.ID,
		Email:        user.Email,
		Username:     user.Username,
		FirstName:    user.FirstName,
		LastName:     user.LastName,
		IsSubscribed: isSubscribed,
	}
}

// hashPassword hashes a plain-text password with bcrypt
func hashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

// checkPassword compares a bcrypt hash with a plain-text password
func checkPassword(hash, password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}
