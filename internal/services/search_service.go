package services

import "github.com/redroute/bus-reservation-backend/internal/models"

// SearchService answers bus search and location listing requests
type SearchService struct {
	catalog BusCatalog
}

// NewSearchService creates a new SearchService
func NewSearchService(catalog BusCatalog) *SearchService {
	return &SearchService{catalog: catalog}
}

// Search returns the available buses between two locations. Both endpoints
// are required; beyond that the catalog decides what to return.
func (s *SearchService) Search(from, to string) ([]models.BusOffer, error) {
	if from == "" || to == "" {
		return nil, models.NewValidationError("From and To locations are required")
	}

	return s.catalog.Search(from, to), nil
}

// Locations returns the list of locations for the search dropdowns
func (s *SearchService) Locations() []string {
	return s.catalog.Locations()
}
