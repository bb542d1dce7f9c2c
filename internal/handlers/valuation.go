package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	apperrors "homeinsight-valuation/internal/errors"
	"homeinsight-valuation/internal/models"
	"homeinsight-valuation/internal/services"
)

type ValuationHandler struct {
	valuationService *services.ValuationService
}

func NewValuationHandler(valuationService *services.ValuationService) *ValuationHandler {
	return &ValuationHandler{valuationService: valuationService}
}

// CreateValuation godoc
// @Summary Estimate a house price
// @Description Price a house record from the remote model when available, falling back to the local heuristic
// @Tags Valuations
// @Accept json
// @Produce json
// @Param record body models.HouseRecord true "House attributes"
// @Success 200 {object} models.ValuationResponse
// @Failure 400 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Router /valuations [post]
func (h *ValuationHandler) CreateValuation(c *gin.Context) {
	var record models.HouseRecord
	if err := c.ShouldBindJSON(&record); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	valuation, err := h.valuationService.EstimatePrice(c.Request.Context(), &record)
	if err != nil {
		appErr := apperrors.MapError(err)
		c.JSON(appErr.HTTPStatus, gin.H{"error": gin.H{
			"message": appErr.UserMessage,
			"code":    appErr.Code,
		}})
		return
	}

	c.JSON(http.StatusOK, models.ValuationResponse{
		ID:          valuation.ID,
		Price:       valuation.Price,
		Source:      valuation.Source,
		EstimatedAt: valuation.EstimatedAt,
	})
}

// GetModelStatus godoc
// @Summary Model readiness snapshot
// @Description Proxy the model service's trained/modelPath snapshot
// @Tags Valuations
// @Produce json
// @Success 200 {object} models.ModelStatus
// @Router /model/status [get]
func (h *ValuationHandler) GetModelStatus(c *gin.Context) {
	status := h.valuationService.ModelStatus(c.Request.Context())
	c.JSON(http.StatusOK, status)
}
