// Loads a venues CSV export into the restaurants_v2 table. The export keeps
// the Russian column headers; missing cells arrive as the literal "nan".
package main

import (
	"encoding/csv"
	"flag"
	"io"
	"log"
	"log/slog"
	"os"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/vmashkova/restopick/config"
	"github.com/vmashkova/restopick/models"
)

const batchSize = 100

var columnSetters = map[string]func(*models.Venue, string){
	"Название":      func(v *models.Venue, s string) { v.Name = s },
	"Описание":      func(v *models.Venue, s string) { v.Description = s },
	"Адрес":         func(v *models.Venue, s string) { v.Address = s },
	"Метро":         func(v *models.Venue, s string) { v.Metro = models.DecodeMetro(s) },
	"Фото":          func(v *models.Venue, s string) { v.Photo = s },
	"Ссылка":        func(v *models.Venue, s string) { v.Link = s },
	"Сайт":          func(v *models.Venue, s string) { v.Website = s },
	"Бюджет":        func(v *models.Venue, s string) { v.Budget = s },
	"Тип заведения": func(v *models.Venue, s string) { v.VenueType = s },
	"Кухня":         func(v *models.Venue, s string) { v.Cuisine = s },
	"атмосфера":     func(v *models.Venue, s string) { v.Atmosphere = s },
	"повод":         func(v *models.Venue, s string) { v.Occasion = s },
}

func main() {
	file := flag.String("file", "venues.csv", "path to the venues CSV export")
	flag.Parse()

	cfg := config.LoadConfig()

	db, err := gorm.Open(postgres.Open(cfg.Postgres.ConnStr()), &gorm.Config{})
	if err != nil {
		log.Fatal("failed to connect to postgres:", err)
	}

	f, err := os.Open(*file)
	if err != nil {
		log.Fatal("failed to open csv:", err)
	}
	defer f.Close()

	reader := csv.NewReader(f)
	header, err := reader.Read()
	if err != nil {
		log.Fatal("failed to read csv header:", err)
	}

	var (
		batch    []models.Venue
		imported int
		skipped  int
	)

	flush := func() {
		if len(batch) == 0 {
			return
		}
		if err := db.CreateInBatches(batch, batchSize).Error; err != nil {
			log.Fatal("failed to insert venues:", err)
		}
		imported += len(batch)
		batch = batch[:0]
	}

	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			slog.Warn("skipping malformed row", "error", err)
			skipped++
			continue
		}

		var venue models.Venue
		for i, value := range record {
			if i >= len(header) {
				break
			}
			if set, ok := columnSetters[header[i]]; ok {
				set(&venue, value)
			}
		}

		if models.IsMissing(venue.Name) {
			skipped++
			continue
		}

		batch = append(batch, venue)
		if len(batch) >= batchSize {
			flush()
		}
	}
	flush()

	slog.Info("import complete", "imported", imported, "skipped", skipped)
}
