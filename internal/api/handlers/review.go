package handlers

import (
	"net/http"

	"game-watchlist-backend/internal/auth"
	"game-watchlist-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// ReviewHandler exposes review endpoints
type ReviewHandler struct {
	reviews service.ReviewServiceInterface
}

// NewReviewHandler creates a new review handler
func NewReviewHandler(reviews service.ReviewServiceInterface) *ReviewHandler {
	return &ReviewHandler{reviews: reviews}
}

// Create handles POST /reviews
// @Summary Submit a review for a locally stored game
// @Tags reviews
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param review body service.CreateReviewRequest true "New review"
// @Success 201 {object} service.ReviewResponse "Created review"
// @Failure 400 {object} map[string]interface{} "Invalid rating or comment"
// @Failure 404 {object} map[string]interface{} "Game not found"
// @Failure 409 {object} map[string]interface{} "User already reviewed this game"
// @Router /reviews [post]
func (h *ReviewHandler) Create(c *gin.Context) {
	var req service.CreateReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	review, err := h.reviews.Create(auth.CurrentUserID(c), &req)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, review)
}

// ListForGame handles GET /games/:id/reviews
// @Summary List every review of a game with the mean rating
// @Tags reviews
// @Produce json
// @Security BearerAuth
// @Param id path int true "Game ID"
// @Success 200 {object} service.GameReviewsResponse "Reviews and average"
// @Failure 404 {object} map[string]interface{} "Game not found"
// @Router /games/{id}/reviews [get]
func (h *ReviewHandler) ListForGame(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	reviews, err := h.reviews.GetForGame(id)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, reviews)
}

// ListMine handles GET /reviews/me
// @Summary List the authenticated user's reviews
// @Tags reviews
// @Produce json
// @Security BearerAuth
// @Success 200 {array} service.UserReviewResponse "Reviews"
// @Router /reviews/me [get]
func (h *ReviewHandler) ListMine(c *gin.Context) {
	reviews, err := h.reviews.GetForUser(auth.CurrentUserID(c))
	if err != nil {
		handleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, reviews)
}

// Update handles PUT /reviews/:id
// @Summary Update a review (author only)
// @Tags reviews
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Review ID"
// @Param review body service.UpdateReviewRequest true "Fields to update"
// @Success 200 {object} service.ReviewResponse "Updated review"
// @Failure 403 {object} map[string]interface{} "Not the author"
// @Failure 404 {object} map[string]interface{} "Review not found"
// @Router /reviews/{id} [put]
func (h *ReviewHandler) Update(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	var req service.UpdateReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	review, err := h.reviews.Update(auth.CurrentUserID(c), id, &req)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, review)
}

// Delete handles DELETE /reviews/:id
// @Summary Delete a review (author or admin)
// @Tags reviews
// @Produce json
// @Security BearerAuth
// @Param id path int true "Review ID"
// @Success 204 "Review deleted"
// @Failure 403 {object} map[string]interface{} "Not the author and not an admin"
// @Failure 404 {object} map[string]interface{} "Review not found"
// @Router /reviews/{id} [delete]
func (h *ReviewHandler) Delete(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	if err := h.reviews.Delete(auth.CurrentUserID(c), auth.IsAdmin(c), id); err != nil {
		handleServiceError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
