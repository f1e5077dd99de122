package main

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

const pageTitle = "India Heat Risk Monitor"

// handleHome renders the map landing page
func (app *App) handleHome(c *gin.Context) {
	c.HTML(http.StatusOK, "index.html", gin.H{
		"Title":  pageTitle,
		"Cities": app.cities,
	})
}
