package models

// BusOffer is an ephemeral search-result entry describing a bus trip and
// fare. Offers are never persisted; when a passenger books one, its
// descriptive fields are copied into the new Booking record.
type BusOffer struct {
	ID             string  `json:"id"`
	Name           string  `json:"name"`
	DepartureTime  string  `json:"departureTime"`
	ArrivalTime    string  `json:"arrivalTime"`
	TotalSeats     int     `json:"totalSeats"`
	AvailableSeats int     `json:"availableSeats"`
	Type           string  `json:"type"`
	Fare           float64 `json:"fare"`
}
