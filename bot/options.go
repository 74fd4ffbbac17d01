package bot

import "github.com/vmashkova/restopick/models"

// Option lists shown by the wizard, one per filter category. Cuisine is long
// enough to need pagination.
var (
	budgetOptions = []string{
		"Дёшево",
		"Средне",
		"Дорого",
		"Космос",
	}

	typeOptions = []string{
		"Ресторан",
		"Кафе",
		"Бар",
		"Кофейня",
		"Пекарня",
		"Винотека",
		"Стритфуд",
	}

	cuisineOptions = []string{
		"Итальянская",
		"Европейская",
		"Русская",
		"Грузинская",
		"Японская",
		"Китайская",
		"Корейская",
		"Вьетнамская",
		"Тайская",
		"Индийская",
		"Мексиканская",
		"Ближневосточная",
		"Американская",
		"Французская",
		"Испанская",
		"Греческая",
		"Веганская",
	}

	atmosphereOptions = []string{
		"Романтика",
		"Уютно",
		"Шумно и весело",
		"Тихо и спокойно",
		"Модное место",
		"Домашняя",
	}

	reasonOptions = []string{
		"Свидание",
		"День рождения",
		"Встреча с друзьями",
		"Деловая встреча",
		"Семейный ужин",
		"Просто поесть",
	}
)

var categoryOptions = map[models.Category][]string{
	models.CategoryBudget:     budgetOptions,
	models.CategoryType:       typeOptions,
	models.CategoryCuisine:    cuisineOptions,
	models.CategoryAtmosphere: atmosphereOptions,
	models.CategoryReason:     reasonOptions,
}

var categoryPrompts = map[models.Category]string{
	models.CategoryBudget:     "Выбери бюджет:",
	models.CategoryType:       "Выбери тип заведения:",
	models.CategoryCuisine:    "Выбери кухню:",
	models.CategoryAtmosphere: "Выбери атмосферу:",
	models.CategoryReason:     "Выбери повод:",
}
