package api

import (
	"strings"

	"github.com/vmashkova/restopick/models"
)

const fallbackReason = "Это заведение точно стоит посетить — оно выделяется среди других."

// GenerateReason builds the "why we picked this" sentence for a cleaned
// venue. Cuisine, atmosphere, occasion and type contribute a clause only when
// the filter value actually occurs in the venue field; the budget clause
// fires whenever a budget filter is present at all, matching the historical
// behavior users see in production.
func GenerateReason(venue models.Venue, f models.FilterSet) string {
	var parts []string

	if cuisine, ok := f.Get(models.CategoryCuisine); ok && containsFold(venue.Cuisine, cuisine) {
		parts = append(parts, "здесь готовят отличную "+strings.ToLower(cuisine)+" кухню")
	}
	if atmosphere, ok := f.Get(models.CategoryAtmosphere); ok && containsFold(venue.Atmosphere, atmosphere) {
		parts = append(parts, "атмосфера — "+strings.ToLower(atmosphere))
	}
	if occasion, ok := f.Get(models.CategoryReason); ok && containsFold(venue.Occasion, occasion) {
		parts = append(parts, "идеально подойдёт для: "+strings.ToLower(occasion))
	}
	if venueType, ok := f.Get(models.CategoryType); ok && containsFold(venue.VenueType, venueType) {
		parts = append(parts, "формат: "+strings.ToLower(venueType))
	}
	if budget, ok := f.Get(models.CategoryBudget); ok {
		parts = append(parts, "в пределах бюджета: "+strings.ToLower(budget))
	}

	if len(parts) == 0 {
		return fallbackReason
	}

	return "Это место выбрано, потому что " + strings.Join(parts, ", ") + "."
}

func containsFold(haystack, needle string) bool {
	return strings.Contains(strings.ToLower(haystack), strings.ToLower(needle))
}
