package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	apperrors "orbit/internal/errors"
	"orbit/internal/middleware"
	"orbit/internal/models"
	"orbit/internal/services"
	"orbit/internal/validator"
)

// userFields are recorded in the audit trail when sent in an update.
var userFields = []string{"email", "password", "first_name", "last_name", "timezone"}

// UserHandler handles user registration, login and profile requests
type UserHandler struct {
	userService  services.UserServicer
	auditService services.AuditServicer
	tokens       *middleware.TokenIssuer
}

// NewUserHandler creates a new UserHandler
func NewUserHandler(userService services.UserServicer, auditService services.AuditServicer, tokens *middleware.TokenIssuer) *UserHandler {
	return &UserHandler{userService: userService, auditService: auditService, tokens: tokens}
}

// CreateUserRequest documents the registration payload.
type CreateUserRequest struct {
	Email     string `json:"email" example:"ana@example.com"`
	Password  string `json:"password" example:"secret123"`
	FirstName string `json:"first_name" example:"Ana"`
	LastName  string `json:"last_name" example:"Silva"`
	Timezone  string `json:"timezone,omitempty" example:"America/Sao_Paulo"`
}

// UpdateUserRequest documents the profile update payload; every field is optional.
type UpdateUserRequest CreateUserRequest

// LoginRequest represents the login request payload
type LoginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// LoginResponse represents the authentication response with token
type LoginResponse struct {
	Success bool         `json:"success"`
	User    *models.User `json:"user"`
	Token   string       `json:"token"`
}

// Create handles user registration
// @Summary     Register a new user
// @Tags        users
// @Accept      json
// @Produce     json
// @Param       request body CreateUserRequest true "User registration data"
// @Success     201 {object} CreatedResponse
// @Failure     400 {object} ErrorResponse "Invalid input or email already registered"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /users [post]
func (h *UserHandler) Create(c *gin.Context) {
	body, err := readJSONBody(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	in, err := validator.DecodeUserCreate(body)
	if err != nil {
		respondWithError(c, err)
		return
	}

	user, err := h.userService.CreateUser(c.Request.Context(), in)
	if err != nil {
		respondWithError(c, err)
		return
	}

	audit(c, h.auditService, services.AuditEntry{UserID: user.ID, Action: services.AuditUserCreate, Resource: models.ResourceUser, ResourceID: user.ID})

	c.JSON(http.StatusCreated, CreatedResponse{ID: user.ID})
}

// Login handles user login
// @Summary     Login user
// @Description Authenticate with email and password. Unknown emails and wrong passwords get the same error.
// @Tags        users
// @Accept      json
// @Produce     json
// @Param       request body LoginRequest true "User login credentials"
// @Success     200 {object} LoginResponse
// @Failure     400 {object} ErrorResponse "Email or password missing"
// @Failure     401 {object} ErrorResponse "Invalid credentials"
// @Failure     429 {object} ErrorResponse "Too many attempts"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /users/login [post]
func (h *UserHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.ErrCredentialsRequired)
		return
	}

	user, err := h.userService.AttemptLogin(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		respondWithError(c, err)
		return
	}

	token, err := h.tokens.Issue(user)
	if err != nil {
		respondWithError(c, apperrors.Wrap(apperrors.ErrInternalServer, err))
		return
	}

	audit(c, h.auditService, services.AuditEntry{UserID: user.ID, Action: services.AuditUserLogin, Resource: models.ResourceUser, ResourceID: user.ID})

	c.JSON(http.StatusOK, LoginResponse{Success: true, User: user, Token: token})
}

// GetProfile returns a user's profile
// @Summary     Get user profile
// @Tags        users
// @Produce     json
// @Param       id path int true "User ID"
// @Success     200 {object} models.UserProfile
// @Failure     400 {object} ErrorResponse "Invalid ID"
// @Failure     404 {object} ErrorResponse "User not found"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /users/{id} [get]
func (h *UserHandler) GetProfile(c *gin.Context) {
	id, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	h.respondWithProfile(c, id)
}

// Me returns the authenticated user's profile
// @Summary     Get current user
// @Tags        users
// @Produce     json
// @Security    BearerAuth
// @Success     200 {object} models.UserProfile
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     404 {object} ErrorResponse "User not found"
// @Router      /users/me [get]
func (h *UserHandler) Me(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	h.respondWithProfile(c, userID)
}

func (h *UserHandler) respondWithProfile(c *gin.Context, id uint) {
	profile, err := h.userService.GetProfile(c.Request.Context(), id)
	if err != nil {
		respondWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, profile)
}

// Update handles a partial profile update
// @Summary     Update user
// @Tags        users
// @Accept      json
// @Produce     json
// @Param       id      path int               true "User ID"
// @Param       request body UpdateUserRequest true "Fields to change"
// @Success     200 {object} SuccessResponse
// @Failure     400 {object} ErrorResponse "Invalid input, no fields or email in use"
// @Failure     404 {object} ErrorResponse "User not found"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /users/{id} [put]
func (h *UserHandler) Update(c *gin.Context) {
	id, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	body, err := readJSONBody(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	in, err := validator.DecodeUserUpdate(body)
	if err != nil {
		respondWithError(c, err)
		return
	}

	if _, err := h.userService.UpdateUser(c.Request.Context(), id, in); err != nil {
		respondWithError(c, err)
		return
	}

	audit(c, h.auditService, services.AuditEntry{
		UserID:     id,
		Action:     services.AuditUserUpdate,
		Resource:   models.ResourceUser,
		ResourceID: id,
		Fields:     sentFields(body, userFields...),
	})

	c.JSON(http.StatusOK, SuccessResponse{Success: true})
}

// Delete removes a user with all their moods
// @Summary     Delete user
// @Tags        users
// @Produce     json
// @Param       id path int true "User ID"
// @Success     200 {object} DeletedResponse
// @Failure     400 {object} ErrorResponse "Invalid ID"
// @Failure     404 {object} ErrorResponse "User not found"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /users/{id} [delete]
func (h *UserHandler) Delete(c *gin.Context) {
	id, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	if err := h.userService.DeleteUser(c.Request.Context(), id); err != nil {
		respondWithError(c, err)
		return
	}

	audit(c, h.auditService, services.AuditEntry{UserID: id, Action: services.AuditUserDelete, Resource: models.ResourceUser, ResourceID: id})

	c.JSON(http.StatusOK, DeletedResponse{Success: true, Deleted: id})
}
