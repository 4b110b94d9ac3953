package handlers

import (
	"net/http"
	"strconv"

	"game-watchlist-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// CatalogHandler exposes external catalog search and detail endpoints
type CatalogHandler struct {
	catalog service.CatalogServiceInterface
}

// NewCatalogHandler creates a new catalog handler
func NewCatalogHandler(catalog service.CatalogServiceInterface) *CatalogHandler {
	return &CatalogHandler{catalog: catalog}
}

// Search handles GET /catalog/search
// @Summary Search the external game catalog
// @Description Free-text search against the catalog, returning normalized results
// @Tags catalog
// @Produce json
// @Security BearerAuth
// @Param q query string true "Search query"
// @Param limit query int false "Maximum results, capped at 50" default(10)
// @Param offset query int false "Pagination offset" default(0)
// @Success 200 {array} igdb.GameResult "Normalized search results"
// @Failure 400 {object} map[string]interface{} "Missing query"
// @Failure 502 {object} map[string]interface{} "Catalog query failed"
// @Failure 503 {object} map[string]interface{} "Catalog authentication failed"
// @Router /catalog/search [get]
func (h *CatalogHandler) Search(c *gin.Context) {
	query := c.Query("q")
	if query == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "query parameter q is required"})
		return
	}
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "10"))
	offset, _ := strconv.Atoi(c.DefaultQuery("offset", "0"))

	results, err := h.catalog.Search(c.Request.Context(), query, limit, offset)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, results)
}

// GetGame handles GET /catalog/games/:id
// @Summary Get one catalog game by its external id
// @Tags catalog
// @Produce json
// @Security BearerAuth
// @Param id path int true "External catalog game ID"
// @Success 200 {object} igdb.GameResult "Normalized game detail"
// @Failure 404 {object} map[string]interface{} "Catalog game not found"
// @Failure 502 {object} map[string]interface{} "Catalog query failed"
// @Failure 503 {object} map[string]interface{} "Catalog authentication failed"
// @Router /catalog/games/{id} [get]
func (h *CatalogHandler) GetGame(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id parameter"})
		return
	}

	result, err := h.catalog.GetGame(c.Request.Context(), id)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}
