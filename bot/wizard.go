package bot

import (
	"context"
	"strconv"
	"strings"

	"github.com/vmashkova/restopick/models"
)

// Step is the wizard position; each step collects one filter category.
type Step int

const (
	StepBudget Step = iota
	StepType
	StepCuisine
	StepAtmosphere
	StepReason
	stepCount
)

func (s Step) Category() models.Category {
	return models.Categories[s]
}

type EffectKind int

const (
	// EffectPrompt asks the delivery layer to render an option keyboard.
	EffectPrompt EffectKind = iota
	// EffectRecommend asks the delivery layer to fetch and render
	// recommendations for the accumulated filters.
	EffectRecommend
)

// Effect is the wizard's instruction to the delivery layer after an event.
type Effect struct {
	Kind     EffectKind
	Category models.Category
	Page     int
	Restart  bool
	Filters  models.FilterSet
}

// Wizard drives the five-step selection dialog on top of a SessionStore. It
// knows nothing about Telegram; the delivery layer translates Effects into
// messages.
type Wizard struct {
	sessions SessionStore
	options  map[models.Category][]string
}

func NewWizard(sessions SessionStore) *Wizard {
	return &Wizard{
		sessions: sessions,
		options:  categoryOptions,
	}
}

// Start resets the user's session and prompts for a budget.
func (w *Wizard) Start(ctx context.Context, userID int64) (Effect, error) {
	session := NewSession()
	if err := w.sessions.Put(ctx, userID, session); err != nil {
		return Effect{}, err
	}

	return Effect{Kind: EffectPrompt, Category: models.CategoryBudget}, nil
}

// HandleCallback interprets a button payload. Payload conventions:
// "<category>:<value>" selects, "<category>_page:<n>" paginates and
// "restart" resets. Stale or unparseable payloads re-render the current
// prompt instead of failing.
func (w *Wizard) HandleCallback(ctx context.Context, userID int64, data string) (Effect, error) {
	if data == "restart" {
		effect, err := w.Start(ctx, userID)
		effect.Restart = true
		return effect, err
	}

	if prefix, page, ok := strings.Cut(data, "_page:"); ok {
		pageNum, err := strconv.Atoi(page)
		if err != nil {
			return w.currentPrompt(ctx, userID)
		}
		return w.Paginate(ctx, userID, models.Category(prefix), pageNum)
	}

	if category, value, ok := strings.Cut(data, ":"); ok {
		return w.Select(ctx, userID, models.Category(category), value)
	}

	return w.currentPrompt(ctx, userID)
}

// Select records a value for the given category and advances the wizard. On
// the last step it hands back the full filter set and drops the session, so
// the next interaction starts over. A selection for any category other than
// the current step's is stale and only re-renders the current prompt.
func (w *Wizard) Select(ctx context.Context, userID int64, category models.Category, value string) (Effect, error) {
	session, err := w.session(ctx, userID)
	if err != nil {
		return Effect{}, err
	}

	if session.Step.Category() != category {
		return promptFor(session), nil
	}

	session.Filters[category] = normalize(value, w.options[category])
	session.Step++

	if session.Step == stepCount {
		filters := session.Filters
		if err := w.sessions.Remove(ctx, userID); err != nil {
			return Effect{}, err
		}
		return Effect{Kind: EffectRecommend, Filters: filters}, nil
	}

	if err := w.sessions.Put(ctx, userID, session); err != nil {
		return Effect{}, err
	}

	return promptFor(session), nil
}

// Paginate moves the current category's option list to the requested page,
// clamped to the available range. Pagination for a category that is no longer
// on screen is stale and ignored.
func (w *Wizard) Paginate(ctx context.Context, userID int64, category models.Category, page int) (Effect, error) {
	session, err := w.session(ctx, userID)
	if err != nil {
		return Effect{}, err
	}

	if session.Step.Category() != category {
		return promptFor(session), nil
	}

	if page < 0 {
		page = 0
	}
	if last := lastPage(len(w.options[category])); page > last {
		page = last
	}

	session.Pages[category] = page
	if err := w.sessions.Put(ctx, userID, session); err != nil {
		return Effect{}, err
	}

	return promptFor(session), nil
}

// session loads the user's state, creating a fresh one for users whose
// session was reset or never existed (e.g. a button pressed after Complete).
func (w *Wizard) session(ctx context.Context, userID int64) (*Session, error) {
	session, err := w.sessions.Get(ctx, userID)
	if err != nil {
		return nil, err
	}
	if session == nil {
		session = NewSession()
		if err := w.sessions.Put(ctx, userID, session); err != nil {
			return nil, err
		}
	}

	return session, nil
}

func (w *Wizard) currentPrompt(ctx context.Context, userID int64) (Effect, error) {
	session, err := w.session(ctx, userID)
	if err != nil {
		return Effect{}, err
	}

	return promptFor(session), nil
}

func promptFor(session *Session) Effect {
	category := session.Step.Category()
	return Effect{
		Kind:     EffectPrompt,
		Category: category,
		Page:     session.Pages[category],
	}
}

func lastPage(optionCount int) int {
	if optionCount == 0 {
		return 0
	}
	return (optionCount - 1) / pageSize
}

// normalize snaps free text onto the closest known option by case-insensitive
// exact match. Unknown values pass through untouched; the store matching is
// substring-based anyway.
func normalize(value string, options []string) string {
	trimmed := strings.TrimSpace(value)
	for _, opt := range options {
		if strings.EqualFold(trimmed, strings.TrimSpace(opt)) {
			return opt
		}
	}
	return trimmed
}
