package services

import (
	"tripmate/internal/models/response_models"
)

// FilterRecommendations keeps a personalized category only when the user's
// interests intersect that category's canonical tags; everything else is
// forced to an empty list. Must-visit places pass through unfiltered. Pure
// and idempotent: filtering an already-filtered result is a no-op.
func FilterRecommendations(
	mustVisit []response_models.MustVisitPlace,
	personalized response_models.PersonalizedRecommendations,
	interests []string,
) response_models.RecommendationResult {

	if mustVisit == nil {
		mustVisit = []response_models.MustVisitPlace{}
	}

	filtered := response_models.RecommendationResult{
		MustVisitPlaces: mustVisit,
		PersonalizedRecommendations: response_models.PersonalizedRecommendations{
			Food:     []response_models.FoodRecommendation{},
			Culture:  []response_models.PlaceRecommendation{},
			Nature:   []response_models.PlaceRecommendation{},
			Shopping: []response_models.PlaceRecommendation{},
		},
	}

	if CategoryMatchesInterests(CategoryFood, interests) && personalized.Food != nil {
		filtered.PersonalizedRecommendations.Food = personalized.Food
	}
	if CategoryMatchesInterests(CategoryCulture, interests) && personalized.Culture != nil {
		filtered.PersonalizedRecommendations.Culture = personalized.Culture
	}
	if CategoryMatchesInterests(CategoryNature, interests) && personalized.Nature != nil {
		filtered.PersonalizedRecommendations.Nature = personalized.Nature
	}
	if CategoryMatchesInterests(CategoryShopping, interests) && personalized.Shopping != nil {
		filtered.PersonalizedRecommendations.Shopping = personalized.Shopping
	}

	return filtered
}
