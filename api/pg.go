package api

import (
	"context"
	"errors"
	"fmt"
	"log"
	"log/slog"
	"os"
	"time"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/vmashkova/restopick/models"
)

// StoreError marks any failure coming out of the venue table, so the HTTP
// layer can tell "query failed" apart from "no matches".
type StoreError struct {
	Err error
}

func (e *StoreError) Error() string {
	return "venue store: " + e.Err.Error()
}

func (e *StoreError) Unwrap() error {
	return e.Err
}

type Pg struct {
	db *gorm.DB
}

func NewVenuePg(connStr string) (*Pg, error) {
	newLogger := logger.New(
		log.New(os.Stdout, "\r\n", log.LstdFlags),
		logger.Config{
			SlowThreshold:             time.Second,
			LogLevel:                  logger.Silent,
			IgnoreRecordNotFoundError: true,
			ParameterizedQueries:      true,
			Colorful:                  true,
		},
	)

	db, err := gorm.Open(postgres.Open(connStr), &gorm.Config{
		Logger: newLogger,
	})
	if err != nil {
		return nil, err
	}

	return &Pg{db: db}, nil
}

type filterClause struct {
	expr string
	arg  string
}

// filterClauses turns the present filters into conjoined ILIKE conditions.
// Column names come from the fixed category mapping; values are always bound
// parameters.
func filterClauses(f models.FilterSet) []filterClause {
	var clauses []filterClause
	for _, c := range models.Categories {
		v, ok := f.Get(c)
		if !ok {
			continue
		}
		clauses = append(clauses, filterClause{
			expr: fmt.Sprintf("%q ILIKE ?", c.Column()),
			arg:  "%" + v + "%",
		})
	}
	return clauses
}

// Search returns every venue matching all present filters. An empty filter
// set returns the whole table.
func (s *Pg) Search(ctx context.Context, f models.FilterSet) ([]models.Venue, error) {
	query := s.db.WithContext(ctx).Model(&models.Venue{})
	for _, clause := range filterClauses(f) {
		query = query.Where(clause.expr, clause.arg)
	}

	var venues []models.Venue
	if err := query.Find(&venues).Error; err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) {
			slog.Error("venue query failed", "code", pgErr.Code, "message", pgErr.Message)
		}
		return nil, &StoreError{Err: fmt.Errorf("failed to query venues: %w", err)}
	}

	return venues, nil
}
