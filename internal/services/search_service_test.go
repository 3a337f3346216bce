package services

import (
	"testing"

	"github.com/redroute/bus-reservation-backend/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSearch_ReturnsFixedCatalog(t *testing.T) {
	service := NewSearchService(NewStaticCatalog())

	routes := [][2]string{
		{"Delhi", "Mumbai"},
		{"Goa", "Kochi"},
		{"Nowhere", "Elsewhere"}, // catalog does not filter by route
	}

	for _, route := range routes {
		buses, err := service.Search(route[0], route[1])
		require.NoError(t, err)
		assert.Len(t, buses, 5)
	}
}

func TestSearch_OfferContents(t *testing.T) {
	service := NewSearchService(NewStaticCatalog())

	buses, err := service.Search("Delhi", "Mumbai")
	require.NoError(t, err)

	assert.Equal(t, "bus-1", buses[0].ID)
	assert.Equal(t, "State Express AC Sleeper", buses[0].Name)
	assert.Equal(t, 850.0, buses[0].Fare)
	assert.Equal(t, "Highway King Volvo", buses[4].Name)

	for _, bus := range buses {
		assert.NotEmpty(t, bus.ID)
		assert.NotEmpty(t, bus.Name)
		assert.NotEmpty(t, bus.Type)
		assert.Greater(t, bus.TotalSeats, 0)
		assert.GreaterOrEqual(t, bus.TotalSeats, bus.AvailableSeats)
		assert.Greater(t, bus.Fare, 0.0)
	}
}

func TestSearch_MissingLocations(t *testing.T) {
	service := NewSearchService(NewStaticCatalog())

	cases := [][2]string{
		{"", "Mumbai"},
		{"Delhi", ""},
		{"", ""},
	}

	for _, route := range cases {
		_, err := service.Search(route[0], route[1])
		assert.True(t, models.IsValidationError(err), "expected ValidationError for %v", route)
	}
}

func TestLocations(t *testing.T) {
	service := NewSearchService(NewStaticCatalog())

	locations := service.Locations()
	assert.Len(t, locations, 20)
	assert.Contains(t, locations, "Delhi")
	assert.Contains(t, locations, "Kochi")
}
