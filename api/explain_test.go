package api

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/vmashkova/restopick/models"
)

func TestGenerateReasonCuisineMatch(t *testing.T) {
	venue := models.Venue{Cuisine: "Итальянская, Европейская"}
	f := models.FilterSet{models.CategoryCuisine: "итальянская"}

	reason := GenerateReason(venue, f)

	assert.Contains(t, reason, "итальянская")
	assert.Contains(t, reason, "Это место выбрано, потому что")
}

func TestGenerateReasonNoMatchFallback(t *testing.T) {
	venue := models.Venue{Cuisine: "Русская"}
	f := models.FilterSet{models.CategoryCuisine: "Японская"}

	assert.Equal(t, fallbackReason, GenerateReason(venue, f))
}

func TestGenerateReasonBudgetAlwaysFires(t *testing.T) {
	// The budget clause does not require the venue field to match.
	venue := models.Venue{Budget: "Дёшево"}
	f := models.FilterSet{models.CategoryBudget: "Дорого"}

	reason := GenerateReason(venue, f)

	assert.Contains(t, reason, "в пределах бюджета: дорого")
}

func TestGenerateReasonAllClauses(t *testing.T) {
	venue := models.Venue{
		Cuisine:    "Итальянская",
		Atmosphere: "Романтика",
		Occasion:   "Свидание",
		VenueType:  "Бар",
		Budget:     "Дорого",
	}
	f := models.FilterSet{
		models.CategoryBudget:     "Дорого",
		models.CategoryType:       "Бар",
		models.CategoryCuisine:    "Итальянская",
		models.CategoryAtmosphere: "Романтика",
		models.CategoryReason:     "Свидание",
	}

	reason := GenerateReason(venue, f)

	assert.Contains(t, reason, "здесь готовят отличную итальянская кухню")
	assert.Contains(t, reason, "атмосфера — романтика")
	assert.Contains(t, reason, "идеально подойдёт для: свидание")
	assert.Contains(t, reason, "формат: бар")
	assert.Contains(t, reason, "в пределах бюджета: дорого")
}

func TestGenerateReasonPure(t *testing.T) {
	venue := models.Venue{Cuisine: "Грузинская"}
	f := models.FilterSet{models.CategoryCuisine: "грузинская", models.CategoryBudget: "Средне"}

	first := GenerateReason(venue, f)
	for i := 0; i < 10; i++ {
		assert.Equal(t, first, GenerateReason(venue, f))
	}
	assert.NotEmpty(t, first)
}

func TestGenerateReasonEmptyFilters(t *testing.T) {
	assert.Equal(t, fallbackReason, GenerateReason(models.Venue{Name: "Бар"}, models.FilterSet{}))
}
