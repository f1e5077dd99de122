package main

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// PingResponse represents the response for the ping endpoint
type PingResponse struct {
	Message string `json:"message" example:"pong"` // Response message
	Model   string `json:"model" example:"linear"` // Active model kind
	Cities  int    `json:"cities" example:"8"`     // Number of scored cities
}

// handlePing godoc
// @Summary Ping health check
// @Description Check if the API is running and which model it serves
// @Tags health
// @Produce json
// @Success 200 {object} PingResponse
// @Router /ping [get]
func (app *App) handlePing(c *gin.Context) {
	c.JSON(http.StatusOK, PingResponse{
		Message: "pong",
		Model:   app.cfg.Model.Kind,
		Cities:  len(app.cities),
	})
}
