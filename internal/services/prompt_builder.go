package services

import (
	"fmt"
	"strings"

	"tripmate/internal/models/request_models"
)

// DefaultDestination is used when the model returns nothing usable for the
// destination-extraction call.
const DefaultDestination = "the destination"

// BuildDestinationPrompt asks the model to name the primary destination of an
// itinerary as a bare "City, Country" string.
func BuildDestinationPrompt(itineraryText string) string {
	return fmt.Sprintf(`Analyze this travel itinerary and extract the primary destination/city:
"%s"

Respond with just the city and country name (e.g., "Tokyo, Japan").`, itineraryText)
}

// BuildRecommendationPrompt produces the recommendation-generation prompt:
// itinerary, interests, leisure preferences with defaults, the exact JSON
// shape the pipeline parses, and the numbered generation rules.
func BuildRecommendationPrompt(destination string, request request_models.CreateRecommendationRequest) string {
	var prompt strings.Builder

	fmt.Fprintf(&prompt, "You are a travel expert providing personalized recommendations for %s.\n\n", destination)

	fmt.Fprintf(&prompt, "ITINERARY DETAILS:\n%s\n\n", request.ItineraryText)
	fmt.Fprintf(&prompt, "SELECTED INTERESTS:\n%s\n\n", strings.Join(request.Interests, ", "))

	prompt.WriteString("LEISURE TIME PREFERENCES:\n")
	if request.LeisureTime != nil {
		fmt.Fprintf(&prompt, "- Daily free hours: %s\n", valueOrDefault(request.LeisureTime.DailyHours, "Not specified"))
		fmt.Fprintf(&prompt, "- Preferred time: %s\n", valueOrDefault(request.LeisureTime.PreferredTime, "Any time"))
		fmt.Fprintf(&prompt, "- Travel style: %s\n", valueOrDefault(request.LeisureTime.TravelStyle, "Flexible"))
	} else {
		prompt.WriteString("Not specified\n")
	}

	prompt.WriteString("\nPlease provide recommendations in the following JSON format:\n\n")
	prompt.WriteString(`{
  "mustVisitPlaces": [
    {
      "name": "Place name",
      "description": "Brief compelling description (max 100 chars)",
      "duration": "Time needed (e.g., '2-3 hours')",
      "rating": 4.8,
      "category": "cultural/historical/scenic/etc"
    }
  ],
  "personalizedRecommendations": {
    "food": [
      {
        "name": "Restaurant/Food place name",
        "description": "Brief description highlighting what makes it special",
        "priceRange": "$/$$/$$$/$$$$",
        "matchReason": "Matches: [specific interest from user's selection]",
        "category": "restaurant/cafe/market/etc"
      }
    ],
    "culture": [
      {
        "name": "Cultural attraction name",
        "description": "What visitors can expect and why it's worthwhile",
        "duration": "Time needed",
        "matchReason": "Matches: [specific interest from user's selection]",
        "category": "museum/temple/gallery/etc"
      }
    ],
    "nature": [
      {
        "name": "Nature/outdoor activity name",
        "description": "What makes this natural attraction special",
        "duration": "Time needed",
        "matchReason": "Matches: [specific interest from user's selection]",
        "category": "park/garden/hiking/etc"
      }
    ],
    "shopping": [
      {
        "name": "Shopping/entertainment venue name",
        "description": "What type of experience this offers",
        "duration": "Time needed",
        "matchReason": "Matches: [specific interest from user's selection]",
        "category": "market/mall/theater/etc"
      }
    ]
  }
}`)

	prompt.WriteString("\n\nREQUIREMENTS:\n")
	fmt.Fprintf(&prompt, "1. Provide 3-5 must-visit places that are iconic to %s regardless of user interests\n", destination)
	prompt.WriteString("2. For personalized recommendations, only include categories where the user selected related interests\n")
	prompt.WriteString("3. Each personalized category should have 2-4 recommendations\n")
	fmt.Fprintf(&prompt, "4. All recommendations should be real places/establishments in %s\n", destination)
	prompt.WriteString("5. Match leisure time constraints when possible\n")
	prompt.WriteString("6. Ensure \"matchReason\" specifically references the user's selected interests\n")
	prompt.WriteString("7. Use realistic ratings between 4.0-4.9 for must-visit places\n")
	prompt.WriteString("8. Keep descriptions concise but compelling\n")
	prompt.WriteString("9. Provide accurate duration estimates\n")
	fmt.Fprintf(&prompt, "10. Related interests per category: food (%s); culture (%s); nature (%s); shopping (%s)\n",
		CategoryTagList(CategoryFood), CategoryTagList(CategoryCulture),
		CategoryTagList(CategoryNature), CategoryTagList(CategoryShopping))

	prompt.WriteString("\nRespond with valid JSON only.")

	return prompt.String()
}

func valueOrDefault(value, fallback string) string {
	if value == "" {
		return fallback
	}
	return value
}
