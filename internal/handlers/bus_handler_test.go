package handlers

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSearchBusesEndpoint_Success(t *testing.T) {
	router, _, cleanup := setupRouter(t)
	defer cleanup()

	w := performJSON(router, http.MethodGet, "/buses?from=Delhi&to=Mumbai", nil)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Buses []struct {
			ID   string  `json:"id"`
			Name string  `json:"name"`
			Fare float64 `json:"fare"`
		} `json:"buses"`
		From string `json:"from"`
		To   string `json:"to"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Len(t, resp.Buses, 5)
	assert.Equal(t, "Delhi", resp.From)
	assert.Equal(t, "Mumbai", resp.To)
	assert.Equal(t, "bus-1", resp.Buses[0].ID)
}

func TestSearchBusesEndpoint_IgnoresRouteValues(t *testing.T) {
	router, _, cleanup := setupRouter(t)
	defer cleanup()

	// The catalog is static: any pair of locations yields the same offers
	w1 := performJSON(router, http.MethodGet, "/buses?from=Delhi&to=Mumbai", nil)
	w2 := performJSON(router, http.MethodGet, "/buses?from=Goa&to=Patna", nil)

	var resp1, resp2 struct {
		Buses []json.RawMessage `json:"buses"`
	}
	require.NoError(t, json.Unmarshal(w1.Body.Bytes(), &resp1))
	require.NoError(t, json.Unmarshal(w2.Body.Bytes(), &resp2))
	assert.Equal(t, len(resp1.Buses), len(resp2.Buses))
}

func TestSearchBusesEndpoint_MissingLocations(t *testing.T) {
	router, _, cleanup := setupRouter(t)
	defer cleanup()

	paths := []string{
		"/buses?to=Mumbai",
		"/buses?from=Delhi",
		"/buses",
	}

	for _, path := range paths {
		w := performJSON(router, http.MethodGet, path, nil)
		assert.Equal(t, http.StatusBadRequest, w.Code, "path %s", path)
		assert.Contains(t, w.Body.String(), "From and To locations are required")
	}
}

func TestGetLocationsEndpoint(t *testing.T) {
	router, _, cleanup := setupRouter(t)
	defer cleanup()

	w := performJSON(router, http.MethodPost, "/buses", nil)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Locations []string `json:"locations"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Len(t, resp.Locations, 20)
	assert.Contains(t, resp.Locations, "Delhi")
	assert.Contains(t, resp.Locations, "Mumbai")
}
