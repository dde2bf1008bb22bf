package usecase_preferences

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/humanbelnik/moviepick/internal/model"
	"github.com/humanbelnik/moviepick/internal/service/extractor"
	"github.com/humanbelnik/moviepick/internal/service/feedback"
	"github.com/humanbelnik/moviepick/internal/service/recommender"
)

var (
	ErrInvalidInput            = errors.New("invalid input")
	ErrFailedToLoadPreferences = errors.New("failed to load preferences")
	ErrFailedToSavePreferences = errors.New("failed to save preferences")
)

//go:generate mockery --name=Store --output=./mocks/preferences/store --filename=store.go
type Store interface {
	// Get reports found=false when nothing was stored for the session yet.
	Get(ctx context.Context, session model.SessionID, key string) (p model.Preferences, found bool, err error)
	Put(ctx context.Context, session model.SessionID, key string, p model.Preferences) error
}

//go:generate mockery --name=Notifier --output=./mocks/preferences/notifier --filename=notifier.go
type Notifier interface {
	NotifyPreferencesChanged(session model.SessionID, p model.Preferences)
}

type Usecase struct {
	store    Store
	notifier Notifier
}

type Option func(*Usecase)

// WithNotifier subscribes n to every persisted change.
func WithNotifier(n Notifier) Option {
	return func(u *Usecase) {
		u.notifier = n
	}
}

func New(
	store Store,
	opts ...Option,
) *Usecase {
	u := &Usecase{
		store: store,
	}
	for _, opt := range opts {
		opt(u)
	}
	return u
}

func (u *Usecase) Preferences(ctx context.Context, session model.SessionID) (model.Preferences, error) {
	if session == model.EmptySessionID {
		return model.Preferences{}, fmt.Errorf("%w: session id cannot be empty", ErrInvalidInput)
	}

	return u.load(ctx, session)
}

func (u *Usecase) RecommendMovies(ctx context.Context, session model.SessionID, query string) (model.Recommendation, error) {
	if session == model.EmptySessionID {
		return model.Recommendation{}, fmt.Errorf("%w: session id cannot be empty", ErrInvalidInput)
	}

	prefs, err := u.load(ctx, session)
	if err != nil {
		return model.Recommendation{}, err
	}

	prefs, changed := extractor.Update(query, prefs)
	if changed {
		if err := u.save(ctx, session, prefs); err != nil {
			return model.Recommendation{}, err
		}
	}

	return model.Recommendation{
		Query:    query,
		Genres:   prefs.Genres,
		Movies:   recommender.Recommend(prefs),
		Excluded: prefs.DislikedMovies,
	}, nil
}

func (u *Usecase) MovieFeedback(ctx context.Context, session model.SessionID, movie string, liked bool) (model.Feedback, error) {
	if session == model.EmptySessionID {
		return model.Feedback{}, fmt.Errorf("%w: session id cannot be empty", ErrInvalidInput)
	}
	if strings.TrimSpace(movie) == "" {
		return model.Feedback{}, fmt.Errorf("%w: movie title cannot be empty", ErrInvalidInput)
	}

	prefs, err := u.load(ctx, session)
	if err != nil {
		return model.Feedback{}, err
	}

	prefs, msg, changed := feedback.Record(movie, liked, prefs)
	if changed {
		if err := u.save(ctx, session, prefs); err != nil {
			return model.Feedback{}, err
		}
	}

	return model.Feedback{
		Movie:   movie,
		Liked:   liked,
		Message: msg,
	}, nil
}

func (u *Usecase) load(ctx context.Context, session model.SessionID) (model.Preferences, error) {
	prefs, found, err := u.store.Get(ctx, session, model.PreferencesKey)
	if err != nil {
		return model.Preferences{}, fmt.Errorf("%w: %w", ErrFailedToLoadPreferences, err)
	}
	if !found {
		return model.EmptyPreferences(), nil
	}

	return prefs.Clone(), nil
}

// save runs only once the full record is computed, so a cancelled call
// leaves the stored record as it was.
func (u *Usecase) save(ctx context.Context, session model.SessionID, prefs model.Preferences) error {
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("%w: %w", ErrFailedToSavePreferences, err)
	}

	if err := u.store.Put(ctx, session, model.PreferencesKey, prefs); err != nil {
		return fmt.Errorf("%w: %w", ErrFailedToSavePreferences, err)
	}

	if u.notifier != nil {
		u.notifier.NotifyPreferencesChanged(session, prefs)
	}
	return nil
}
