package main

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// handleGetCities godoc
// @Summary List supported cities
// @Description The fixed, ordered set of cities scored by /predict_all
// @Tags predictions
// @Produce json
// @Success 200 {array} types.City
// @Router /cities [get]
func (app *App) handleGetCities(c *gin.Context) {
	c.JSON(http.StatusOK, app.cities)
}
