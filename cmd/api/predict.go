package main

import (
	"net/http"

	"heat-risk/internal/predict"

	"github.com/gin-gonic/gin"
)

// handlePredictAll godoc
// @Summary Predict heat risk for all cities
// @Description Fetch current weather and air quality for every supported city and score its heat risk. With use_manual set, the target city is scored from the supplied readings instead and never raises an alert. Cities whose data cannot be fetched or scored are left out of the result.
// @Tags predictions
// @Accept json
// @Produce json
// @Param request body predict.Request true "Prediction options"
// @Success 200 {array} types.PredictionResult
// @Failure 500 {object} map[string]string
// @Router /predict_all [post]
func (app *App) handlePredictAll(c *gin.Context) {
	var req predict.Request

	// Any failure before the per-city loop fails the whole request
	if err := c.ShouldBindJSON(&req); err != nil {
		app.logger.Error("failed to parse prediction request", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	results, err := app.predictService.PredictAll(c.Request.Context(), req)
	if err != nil {
		app.logger.Error("prediction run failed", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, results)
}
