package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	apperrors "homeinsight-valuation/internal/errors"
	"homeinsight-valuation/internal/services"
)

type AdminHandler struct {
	valuationService    *services.ValuationService
	neighborhoodService *services.NeighborhoodService
}

func NewAdminHandler(valuationService *services.ValuationService, neighborhoodService *services.NeighborhoodService) *AdminHandler {
	return &AdminHandler{
		valuationService:    valuationService,
		neighborhoodService: neighborhoodService,
	}
}

// ListValuations godoc
// @Summary Recent valuation history
// @Description List the most recent persisted valuations
// @Tags Admin
// @Produce json
// @Param limit query int false "Maximum entries" default(20)
// @Security BearerAuth
// @Success 200 {array} models.Valuation
// @Failure 401 {object} map[string]string
// @Failure 503 {object} map[string]string
// @Router /admin/valuations [get]
func (h *AdminHandler) ListValuations(c *gin.Context) {
	limit, _ := strconv.ParseInt(c.DefaultQuery("limit", "20"), 10, 64)

	valuations, err := h.valuationService.RecentValuations(c.Request.Context(), limit)
	if err != nil {
		appErr := apperrors.MapError(err)
		c.JSON(appErr.HTTPStatus, gin.H{"error": gin.H{
			"message": appErr.UserMessage,
			"code":    appErr.Code,
		}})
		return
	}
	c.JSON(http.StatusOK, valuations)
}

// FlushNeighborhoodCache godoc
// @Summary Drop the cached neighborhood list
// @Description Force the next neighborhoods request to refetch from the model service
// @Tags Admin
// @Produce json
// @Security BearerAuth
// @Success 200 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Router /admin/cache/flush [post]
func (h *AdminHandler) FlushNeighborhoodCache(c *gin.Context) {
	if err := h.neighborhoodService.FlushCache(c.Request.Context()); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "flushed"})
}
