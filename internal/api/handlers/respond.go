package handlers

import (
	"errors"
	"net/http"
	"strconv"

	apperrors "game-watchlist-backend/internal/errors"

	"github.com/gin-gonic/gin"
)

// handleServiceError maps service-layer errors onto HTTP statuses. Anything
// unrecognized is a 500.
func handleServiceError(c *gin.Context, err error) {
	status := http.StatusInternalServerError
	switch {
	case apperrors.IsNotFound(err):
		status = http.StatusNotFound
	case apperrors.IsAlreadyExists(err):
		status = http.StatusConflict
	case apperrors.IsValidation(err),
		errors.Is(err, apperrors.ErrAlreadyAdmin),
		errors.Is(err, apperrors.ErrNotAdmin):
		status = http.StatusBadRequest
	case apperrors.IsAuthentication(err):
		status = http.StatusUnauthorized
	case apperrors.IsAuthorization(err):
		status = http.StatusForbidden
	case errors.Is(err, apperrors.ErrCatalogAuthFailed):
		status = http.StatusServiceUnavailable
	case apperrors.IsUpstream(err):
		status = http.StatusBadGateway
	}

	if status == http.StatusInternalServerError {
		c.Error(err)
		c.JSON(status, gin.H{"error": "internal server error"})
		return
	}
	c.JSON(status, gin.H{"error": err.Error()})
}

// parseIDParam reads a positive integer path parameter
func parseIDParam(c *gin.Context, name string) (uint, bool) {
	raw := c.Param(name)
	id, err := strconv.ParseUint(raw, 10, 32)
	if err != nil || id == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid " + name + " parameter"})
		return 0, false
	}
	return uint(id), true
}
