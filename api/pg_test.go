package api

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vmashkova/restopick/models"
)

func TestFilterClausesEmptySet(t *testing.T) {
	assert.Empty(t, filterClauses(models.FilterSet{}))
}

func TestFilterClausesAbsentValuesAreNoOps(t *testing.T) {
	withAbsent := models.FilterSet{
		models.CategoryBudget:  "Дорого",
		models.CategoryCuisine: "",
		models.CategoryType:    "nan",
	}
	onlyPresent := models.FilterSet{
		models.CategoryBudget: "Дорого",
	}

	assert.Equal(t, filterClauses(onlyPresent), filterClauses(withAbsent))
}

func TestFilterClausesBindValues(t *testing.T) {
	clauses := filterClauses(models.FilterSet{
		models.CategoryType: ` Бар'; DROP TABLE restaurants_v2; -- `,
	})

	require.Len(t, clauses, 1)
	// User text only ever appears in the bound argument, never in the SQL.
	assert.Equal(t, `"Тип заведения" ILIKE ?`, clauses[0].expr)
	assert.Equal(t, `%Бар'; DROP TABLE restaurants_v2; --%`, clauses[0].arg)
}

func TestFilterClausesAllCategoriesInOrder(t *testing.T) {
	clauses := filterClauses(models.FilterSet{
		models.CategoryBudget:     "Дорого",
		models.CategoryType:       "Бар",
		models.CategoryCuisine:    "Итальянская",
		models.CategoryAtmosphere: "Романтика",
		models.CategoryReason:     "Свидание",
	})

	require.Len(t, clauses, 5)
	assert.Equal(t, `"Бюджет" ILIKE ?`, clauses[0].expr)
	assert.Equal(t, `"Тип заведения" ILIKE ?`, clauses[1].expr)
	assert.Equal(t, `"Кухня" ILIKE ?`, clauses[2].expr)
	assert.Equal(t, `"атмосфера" ILIKE ?`, clauses[3].expr)
	assert.Equal(t, `"повод" ILIKE ?`, clauses[4].expr)
	assert.Equal(t, "%Романтика%", clauses[3].arg)
}
