package handlers

import (
	"net/http"
	"strconv"

	"game-watchlist-backend/internal/auth"
	"game-watchlist-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// UserHandler exposes account management endpoints
type UserHandler struct {
	users service.UserServiceInterface
}

// NewUserHandler creates a new user handler
func NewUserHandler(users service.UserServiceInterface) *UserHandler {
	return &UserHandler{users: users}
}

// Register handles POST /users
// @Summary Register a new account
// @Tags users
// @Accept json
// @Produce json
// @Param user body service.CreateUserRequest true "New account"
// @Success 201 {object} service.UserResponse "Created account"
// @Failure 400 {object} map[string]interface{} "Invalid request body"
// @Failure 409 {object} map[string]interface{} "Username or email already taken"
// @Router /users [post]
func (h *UserHandler) Register(c *gin.Context) {
	var req service.CreateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	user, err := h.users.Create(&req)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, user)
}

// GetMe handles GET /users/me
// @Summary Get the authenticated account
// @Tags users
// @Produce json
// @Security BearerAuth
// @Success 200 {object} service.UserResponse "Current account"
// @Failure 401 {object} map[string]interface{} "Missing or invalid token"
// @Router /users/me [get]
func (h *UserHandler) GetMe(c *gin.Context) {
	user, err := h.users.GetByID(auth.CurrentUserID(c))
	if err != nil {
		handleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, user)
}

// GetUser handles GET /users/:id
// @Summary Get one account by id
// @Tags users
// @Produce json
// @Security BearerAuth
// @Param id path int true "User ID"
// @Success 200 {object} service.UserResponse "Account"
// @Failure 404 {object} map[string]interface{} "User not found"
// @Router /users/{id} [get]
func (h *UserHandler) GetUser(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	user, err := h.users.GetByID(id)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, user)
}

// ListUsers handles GET /users
// @Summary List accounts with optional filters (admin only)
// @Tags users
// @Produce json
// @Security BearerAuth
// @Param username query string false "Username substring filter"
// @Param email query string false "Email substring filter"
// @Param limit query int false "Page size" default(100)
// @Param offset query int false "Pagination offset" default(0)
// @Success 200 {object} service.UserListResponse "Accounts"
// @Failure 403 {object} map[string]interface{} "Admin privileges required"
// @Router /users [get]
func (h *UserHandler) ListUsers(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "100"))
	offset, _ := strconv.Atoi(c.DefaultQuery("offset", "0"))

	users, err := h.users.GetAll(c.Query("username"), c.Query("email"), limit, offset)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, users)
}

// UpdateUser handles PUT /users/:id
// @Summary Update an account (owner or admin)
// @Tags users
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "User ID"
// @Param user body service.UpdateUserRequest true "Fields to update"
// @Success 200 {object} service.UserResponse "Updated account"
// @Failure 403 {object} map[string]interface{} "Not the owner and not an admin"
// @Failure 404 {object} map[string]interface{} "User not found"
// @Failure 409 {object} map[string]interface{} "Username or email already taken"
// @Router /users/{id} [put]
func (h *UserHandler) UpdateUser(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	var req service.UpdateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	user, err := h.users.Update(auth.CurrentUserID(c), auth.IsAdmin(c), id, &req)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, user)
}

// DeleteUser handles DELETE /users/:id
// @Summary Delete an account (owner or admin)
// @Tags users
// @Produce json
// @Security BearerAuth
// @Param id path int true "User ID"
// @Success 204 "Account deleted"
// @Failure 403 {object} map[string]interface{} "Not the owner and not an admin"
// @Failure 404 {object} map[string]interface{} "User not found"
// @Router /users/{id} [delete]
func (h *UserHandler) DeleteUser(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	if err := h.users.Delete(auth.CurrentUserID(c), auth.IsAdmin(c), id); err != nil {
		handleServiceError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// PromoteUser handles PATCH /users/:id/promote
// @Summary Grant the admin flag (admin only)
// @Tags users
// @Produce json
// @Security BearerAuth
// @Param id path int true "User ID"
// @Success 200 {object} service.UserResponse "Updated account"
// @Failure 400 {object} map[string]interface{} "User is already an admin"
// @Failure 404 {object} map[string]interface{} "User not found"
// @Router /users/{id}/promote [patch]
func (h *UserHandler) PromoteUser(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	user, err := h.users.Promote(id)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, user)
}

// DemoteUser handles PATCH /users/:id/demote
// @Summary Revoke the admin flag (admin only)
// @Tags users
// @Produce json
// @Security BearerAuth
// @Param id path int true "User ID"
// @Success 200 {object} service.UserResponse "Updated account"
// @Failure 400 {object} map[string]interface{} "User is not an admin"
// @Failure 404 {object} map[string]interface{} "User not found"
// @Router /users/{id}/demote [patch]
func (h *UserHandler) DemoteUser(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	user, err := h.users.Demote(id)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, user)
}
