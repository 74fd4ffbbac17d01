package models

import (
	"database/sql/driver"
	"fmt"
	"strings"
)

// Venue is one row of the restaurants_v2 table. The table was loaded from a
// pandas export, so any column may hold the literal string "nan" instead of
// being NULL; IsMissing treats those the same as empty.
type Venue struct {
	ID          uint64    `gorm:"primaryKey;column:id" json:"id"`
	Name        string    `gorm:"column:Название" json:"name"`
	Description string    `gorm:"column:Описание" json:"description"`
	Address     string    `gorm:"column:Адрес" json:"address"`
	Metro       MetroList `gorm:"column:Метро" json:"metro"`
	Photo       string    `gorm:"column:Фото" json:"photo"`
	Link        string    `gorm:"column:Ссылка" json:"link"`
	Website     string    `gorm:"column:Сайт" json:"website"`
	Budget      string    `gorm:"column:Бюджет" json:"budget"`
	VenueType   string    `gorm:"column:Тип заведения" json:"type"`
	Cuisine     string    `gorm:"column:Кухня" json:"cuisine"`
	Atmosphere  string    `gorm:"column:атмосфера" json:"atmosphere"`
	Occasion    string    `gorm:"column:повод" json:"occasion"`
}

func (v *Venue) TableName() string {
	return "restaurants_v2"
}

func (v *Venue) Stringify() string {
	return fmt.Sprintf("Venue: %s, Address: %s, Budget: %s, Cuisine: %s", v.Name, v.Address, v.Budget, v.Cuisine)
}

// Clean returns a copy with every missing field zeroed, so consumers never
// see "nan" or whitespace-only values.
func (v Venue) Clean() Venue {
	clean := func(s string) string {
		if IsMissing(s) {
			return ""
		}
		return s
	}

	v.Name = clean(v.Name)
	v.Description = clean(v.Description)
	v.Address = clean(v.Address)
	v.Photo = clean(v.Photo)
	v.Link = clean(v.Link)
	v.Website = clean(v.Website)
	v.Budget = clean(v.Budget)
	v.VenueType = clean(v.VenueType)
	v.Cuisine = clean(v.Cuisine)
	v.Atmosphere = clean(v.Atmosphere)
	v.Occasion = clean(v.Occasion)

	var metro MetroList
	for _, station := range v.Metro {
		if !IsMissing(station) {
			metro = append(metro, station)
		}
	}
	v.Metro = metro

	return v
}

// Field returns the venue column that a filter category matches against.
func (v Venue) Field(c Category) string {
	switch c {
	case CategoryBudget:
		return v.Budget
	case CategoryType:
		return v.VenueType
	case CategoryCuisine:
		return v.Cuisine
	case CategoryAtmosphere:
		return v.Atmosphere
	case CategoryReason:
		return v.Occasion
	}
	return ""
}

// IsMissing reports whether a free-text field should be treated as absent.
func IsMissing(s string) bool {
	s = strings.TrimSpace(s)
	return s == "" || strings.EqualFold(s, "nan")
}

// MetroList maps a text column that usually contains a Python list literal,
// e.g. ['Арбатская', 'Смоленская']. Plain strings occur too. Undecodable
// input is kept as a single raw entry rather than rejected.
type MetroList []string

func (m *MetroList) Scan(value interface{}) error {
	switch v := value.(type) {
	case nil:
		*m = nil
		return nil
	case string:
		*m = DecodeMetro(v)
		return nil
	case []byte:
		*m = DecodeMetro(string(v))
		return nil
	}

	return fmt.Errorf("expected string or []byte, got %T", value)
}

func (m MetroList) Value() (driver.Value, error) {
	if len(m) == 0 {
		return "", nil
	}

	quoted := make([]string, len(m))
	for i, station := range m {
		quoted[i] = "'" + strings.ReplaceAll(station, "'", "ʼ") + "'"
	}

	return "[" + strings.Join(quoted, ", ") + "]", nil
}

func (m MetroList) GormDataType() string {
	return "text"
}

func (m MetroList) String() string {
	return strings.Join(m, ", ")
}

// DecodeMetro turns the serialized station list into a slice. Anything that
// does not look like a list literal becomes a single-element list.
func DecodeMetro(raw string) MetroList {
	s := strings.TrimSpace(raw)
	if IsMissing(s) {
		return nil
	}

	if !strings.HasPrefix(s, "[") || !strings.HasSuffix(s, "]") {
		return MetroList{s}
	}

	var (
		list    MetroList
		current strings.Builder
		quote   rune
	)

	flush := func() {
		item := strings.TrimSpace(current.String())
		item = strings.Trim(item, `'"`)
		if item != "" {
			list = append(list, item)
		}
		current.Reset()
	}

	for _, r := range s[1 : len(s)-1] {
		switch {
		case quote != 0:
			if r == quote {
				quote = 0
			} else {
				current.WriteRune(r)
			}
		case r == '\'' || r == '"':
			quote = r
		case r == ',':
			flush()
		default:
			current.WriteRune(r)
		}
	}
	flush()

	if len(list) == 0 {
		return MetroList{s}
	}

	return list
}

// UnnamedVenue substitutes a venue name that was empty after cleaning.
const UnnamedVenue = "Ресторан без названия"

// Recommendation is what the API hands back per selected venue. Fields that
// were empty after cleaning are omitted, except the name and the reason.
type Recommendation struct {
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	Address     string `json:"address,omitempty"`
	Metro       string `json:"metro,omitempty"`
	Photo       string `json:"photo,omitempty"`
	Link        string `json:"link,omitempty"`
	AIReason    string `json:"ai_reason"`
}
