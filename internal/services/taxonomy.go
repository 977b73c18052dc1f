package services

import "strings"

// Canonical recommendation categories, in response order.
const (
	CategoryFood     = "food"
	CategoryCulture  = "culture"
	CategoryNature   = "nature"
	CategoryShopping = "shopping"
)

// InterestTaxonomy maps each category to its canonical interest tags. It is
// the single source of truth for both the prompt wording and the category
// filter. Matching is case-sensitive and exact; tags outside the taxonomy
// never gate a category.
var InterestTaxonomy = map[string][]string{
	CategoryFood:     {"Fine Dining", "Street Food", "Local Cuisine", "Cafes", "Food Markets"},
	CategoryCulture:  {"Museums", "Historical Sites", "Architecture", "Art Galleries", "Cultural Events"},
	CategoryNature:   {"Hiking", "Water Sports", "Parks & Gardens", "Scenic Views", "Wildlife"},
	CategoryShopping: {"Shopping Malls", "Local Markets", "Nightlife", "Live Music", "Theaters"},
}

// CategoryMatchesInterests reports whether any selected interest belongs to
// the category's canonical tag set.
func CategoryMatchesInterests(category string, interests []string) bool {
	tags, ok := InterestTaxonomy[category]
	if !ok {
		return false
	}
	for _, interest := range interests {
		for _, tag := range tags {
			if interest == tag {
				return true
			}
		}
	}
	return false
}

// CategoryTagList renders a category's tags for prompt text.
func CategoryTagList(category string) string {
	return strings.Join(InterestTaxonomy[category], ", ")
}
