package request_models

type LeisureTime struct {
	DailyHours    string `json:"dailyHours,omitempty"`
	PreferredTime string `json:"preferredTime,omitempty"`
	TravelStyle   string `json:"travelStyle,omitempty"`
}

// CreateRecommendationRequest is validated in the service layer so the
// pipeline stays testable without HTTP.
type CreateRecommendationRequest struct {
	ItineraryText string       `json:"itineraryText"`
	Interests     []string     `json:"interests"`
	LeisureTime   *LeisureTime `json:"leisureTime,omitempty"`
}
