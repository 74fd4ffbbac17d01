package api

import (
	"context"
	"math/rand"

	"github.com/vmashkova/restopick/models"
)

const maxRecommendations = 3

type venueStore interface {
	Search(ctx context.Context, f models.FilterSet) ([]models.Venue, error)
}

type Handler struct {
	store venueStore
}

func NewHandler(store venueStore) *Handler {
	return &Handler{store: store}
}

// Recommend picks up to three matching venues at random and attaches a
// generated reason to each. A nil, nil return means the filters matched
// nothing; that is not an error.
func (h *Handler) Recommend(ctx context.Context, f models.FilterSet) ([]models.Recommendation, error) {
	venues, err := h.store.Search(ctx, f)
	if err != nil {
		return nil, err
	}
	if len(venues) == 0 {
		return nil, nil
	}

	selected := sample(venues, maxRecommendations)

	recs := make([]models.Recommendation, 0, len(selected))
	for _, venue := range selected {
		clean := venue.Clean()

		name := clean.Name
		if name == "" {
			name = models.UnnamedVenue
		}

		link := clean.Link
		if link == "" {
			link = clean.Website
		}

		recs = append(recs, models.Recommendation{
			Name:        name,
			Description: clean.Description,
			Address:     clean.Address,
			Metro:       clean.Metro.String(),
			Photo:       clean.Photo,
			Link:        link,
			AIReason:    GenerateReason(clean, f),
		})
	}

	return recs, nil
}

// sample returns min(n, len(venues)) venues uniformly without replacement.
func sample(venues []models.Venue, n int) []models.Venue {
	shuffled := make([]models.Venue, len(venues))
	copy(shuffled, venues)
	rand.Shuffle(len(shuffled), func(i, j int) {
		shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
	})

	if n > len(shuffled) {
		n = len(shuffled)
	}

	return shuffled[:n]
}
