package services

import "github.com/redroute/bus-reservation-backend/internal/models"

// BusCatalog supplies bus offers for a route and the known locations.
// Today the only implementation is the static catalog below; a real
// schedule lookup can replace it without touching the search contract.
type BusCatalog interface {
	Search(from, to string) []models.BusOffer
	Locations() []string
}

// StaticCatalog returns a fixed offer list for every route. The origin and
// destination do not filter the results, and the available seat counts are
// display values that booking activity never decrements.
type StaticCatalog struct{}

// NewStaticCatalog creates the fixed in-memory catalog
func NewStaticCatalog() *StaticCatalog {
	return &StaticCatalog{}
}

// Search returns the catalog offers regardless of route
func (c *StaticCatalog) Search(from, to string) []models.BusOffer {
	return []models.BusOffer{
		{
			ID:             "bus-1",
			Name:           "State Express AC Sleeper",
			DepartureTime:  "06:00 AM",
			ArrivalTime:    "12:30 PM",
			TotalSeats:     40,
			AvailableSeats: 18,
			Type:           "AC Sleeper",
			Fare:           850,
		},
		{
			ID:             "bus-2",
			Name:           "City Link Deluxe",
			DepartureTime:  "08:30 AM",
			ArrivalTime:    "03:00 PM",
			TotalSeats:     50,
			AvailableSeats: 32,
			Type:           "Non-AC Seater",
			Fare:           450,
		},
		{
			ID:             "bus-3",
			Name:           "Royal Cruiser Multi-Axle",
			DepartureTime:  "10:00 PM",
			ArrivalTime:    "05:30 AM",
			TotalSeats:     36,
			AvailableSeats: 7,
			Type:           "AC Semi-Sleeper",
			Fare:           1200,
		},
		{
			ID:             "bus-4",
			Name:           "Metro Super Fast",
			DepartureTime:  "02:00 PM",
			ArrivalTime:    "08:30 PM",
			TotalSeats:     45,
			AvailableSeats: 25,
			Type:           "Non-AC Seater",
			Fare:           380,
		},
		{
			ID:             "bus-5",
			Name:           "Highway King Volvo",
			DepartureTime:  "11:00 PM",
			ArrivalTime:    "06:00 AM",
			TotalSeats:     30,
			AvailableSeats: 3,
			Type:           "Volvo AC Sleeper",
			Fare:           1500,
		},
	}
}

// Locations returns the cities offered in the search dropdowns
func (c *StaticCatalog) Locations() []string {
	return []string{
		"Delhi", "Mumbai", "Bangalore", "Chennai", "Hyderabad",
		"Kolkata", "Pune", "Ahmedabad", "Jaipur", "Lucknow",
		"Chandigarh", "Bhopal", "Patna", "Indore", "Nagpur",
		"Coimbatore", "Mysore", "Vizag", "Goa", "Kochi",
	}
}
