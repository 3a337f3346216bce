package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/redroute/bus-reservation-backend/internal/models"
	"github.com/redroute/bus-reservation-backend/internal/services"
)

// BusHandler handles bus search and location listing endpoints
type BusHandler struct {
	searchService *services.SearchService
}

// NewBusHandler creates a new BusHandler
func NewBusHandler(searchService *services.SearchService) *BusHandler {
	return &BusHandler{searchService: searchService}
}

// SearchBuses lists available buses between two locations
// GET /buses?from=X&to=Y
func (h *BusHandler) SearchBuses(c *gin.Context) {
	from := c.Query("from")
	to := c.Query("to")

	buses, err := h.searchService.Search(from, to)
	if err != nil {
		if models.IsValidationError(err) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to search buses"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"buses": buses,
		"from":  from,
		"to":    to,
	})
}

// GetLocations lists the locations for the search dropdowns
// POST /buses
func (h *BusHandler) GetLocations(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"locations": h.searchService.Locations()})
}
