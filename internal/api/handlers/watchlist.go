package handlers

import (
	"net/http"

	"game-watchlist-backend/internal/auth"
	"game-watchlist-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// WatchlistHandler exposes watchlist endpoints
type WatchlistHandler struct {
	watchlists service.WatchlistServiceInterface
}

// NewWatchlistHandler creates a new watchlist handler
func NewWatchlistHandler(watchlists service.WatchlistServiceInterface) *WatchlistHandler {
	return &WatchlistHandler{watchlists: watchlists}
}

// AddGameRequest is the body for POST /watchlists/:id/games. GameID is the
// external catalog id, not a local row id.
type AddGameRequest struct {
	GameID int64 `json:"game_id" binding:"required,gt=0"`
}

// Create handles POST /watchlists
// @Summary Create an empty watchlist
// @Tags watchlists
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param watchlist body service.CreateWatchlistRequest true "New watchlist"
// @Success 201 {object} service.WatchlistResponse "Created watchlist"
// @Failure 400 {object} map[string]interface{} "Invalid request body"
// @Router /watchlists [post]
func (h *WatchlistHandler) Create(c *gin.Context) {
	var req service.CreateWatchlistRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	watchlist, err := h.watchlists.Create(auth.CurrentUserID(c), &req)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, watchlist)
}

// List handles GET /watchlists
// @Summary List the authenticated user's watchlists
// @Tags watchlists
// @Produce json
// @Security BearerAuth
// @Success 200 {array} service.WatchlistResponse "Watchlists"
// @Router /watchlists [get]
func (h *WatchlistHandler) List(c *gin.Context) {
	watchlists, err := h.watchlists.GetForUser(auth.CurrentUserID(c))
	if err != nil {
		handleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, watchlists)
}

// Get handles GET /watchlists/:id
// @Summary Get a watchlist with expanded games (owner or admin)
// @Tags watchlists
// @Produce json
// @Security BearerAuth
// @Param id path int true "Watchlist ID"
// @Success 200 {object} service.WatchlistDetailResponse "Watchlist detail"
// @Failure 403 {object} map[string]interface{} "Not the owner and not an admin"
// @Failure 404 {object} map[string]interface{} "Watchlist not found"
// @Router /watchlists/{id} [get]
func (h *WatchlistHandler) Get(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	watchlist, err := h.watchlists.GetDetails(auth.CurrentUserID(c), auth.IsAdmin(c), id)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, watchlist)
}

// AddGame handles POST /watchlists/:id/games
// @Summary Add a catalog game to a watchlist
// @Description Fetches the game from the external catalog, materializes it locally and links it to the watchlist
// @Tags watchlists
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Watchlist ID"
// @Param game body AddGameRequest true "External catalog game id"
// @Success 200 {object} service.WatchlistDetailResponse "Updated watchlist"
// @Failure 403 {object} map[string]interface{} "Not the owner and not an admin"
// @Failure 404 {object} map[string]interface{} "Watchlist or catalog game not found"
// @Failure 409 {object} map[string]interface{} "Game already in this watchlist"
// @Failure 502 {object} map[string]interface{} "Catalog query failed"
// @Failure 503 {object} map[string]interface{} "Catalog authentication failed"
// @Router /watchlists/{id}/games [post]
func (h *WatchlistHandler) AddGame(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	var req AddGameRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	watchlist, err := h.watchlists.AddGame(c.Request.Context(), auth.CurrentUserID(c), auth.IsAdmin(c), id, req.GameID)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, watchlist)
}
