package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"homeinsight-valuation/internal/models"
	"homeinsight-valuation/internal/services"
)

type NeighborhoodHandler struct {
	neighborhoodService *services.NeighborhoodService
}

func NewNeighborhoodHandler(neighborhoodService *services.NeighborhoodService) *NeighborhoodHandler {
	return &NeighborhoodHandler{neighborhoodService: neighborhoodService}
}

// ListNeighborhoods godoc
// @Summary Neighborhood names for the form dropdown
// @Description List neighborhoods from the model service, cached, with a local fallback
// @Tags Neighborhoods
// @Produce json
// @Success 200 {object} models.NeighborhoodsResponse
// @Router /neighborhoods [get]
func (h *NeighborhoodHandler) ListNeighborhoods(c *gin.Context) {
	neighborhoods := h.neighborhoodService.List(c.Request.Context())
	c.JSON(http.StatusOK, models.NeighborhoodsResponse{Neighborhoods: neighborhoods})
}
