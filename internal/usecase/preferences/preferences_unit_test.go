//go:build !integration
// +build !integration

package usecase_preferences

import (
	"context"
	"errors"
	"testing"

	"github.com/humanbelnik/moviepick/internal/model"
	notifier_mocks "github.com/humanbelnik/moviepick/internal/usecase/preferences/mocks/preferences/notifier"
	store_mocks "github.com/humanbelnik/moviepick/internal/usecase/preferences/mocks/preferences/store"
	"github.com/ozontech/allure-go/pkg/framework/provider"
	"github.com/ozontech/allure-go/pkg/framework/suite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type UsecasePreferencesUnitSuite struct {
	suite.Suite
}

type resources struct {
	usecase  *Usecase
	store    *store_mocks.Store
	notifier *notifier_mocks.Notifier
	ctx      context.Context
}

func initResources(t provider.T) *resources {
	store := store_mocks.NewStore(t)
	notifier := notifier_mocks.NewNotifier(t)

	return &resources{
		usecase:  New(store, WithNotifier(notifier)),
		store:    store,
		notifier: notifier,
		ctx:      context.Background(),
	}
}

func validSessionID() model.SessionID {
	return model.SessionID("3f1c2a9e-session")
}

func storedPreferences(genres []string, disliked []string) model.Preferences {
	p := model.EmptyPreferences()
	p.Genres = append(p.Genres, genres...)
	p.DislikedMovies = append(p.DislikedMovies, disliked...)
	return p
}

func (s *UsecasePreferencesUnitSuite) TestRecommendMovies(t provider.T) {
	t.Parallel()

	testCases := []struct {
		name       string
		query      string
		setupMocks func(r *resources)
		expected   model.Recommendation
		expectErr  error
	}{
		{
			name:  "Should record genre and recommend it",
			query: "I love action movies",
			setupMocks: func(r *resources) {
				saved := storedPreferences([]string{"action"}, nil)
				r.store.On("Get", r.ctx, validSessionID(), model.PreferencesKey).
					Return(model.Preferences{}, false, nil).Once()
				r.store.On("Put", r.ctx, validSessionID(), model.PreferencesKey, saved).
					Return(nil).Once()
				r.notifier.On("NotifyPreferencesChanged", validSessionID(), saved).Once()
			},
			expected: model.Recommendation{
				Query:    "I love action movies",
				Genres:   []string{"action"},
				Movies:   []string{"Die Hard", "The Dark Knight", "John Wick", "Mission Impossible"},
				Excluded: []string{},
			},
		},
		{
			name:  "Should record dislike and filter default list",
			query: "I hate the matrix",
			setupMocks: func(r *resources) {
				saved := storedPreferences(nil, []string{"matrix"})
				r.store.On("Get", r.ctx, validSessionID(), model.PreferencesKey).
					Return(model.Preferences{}, false, nil).Once()
				r.store.On("Put", r.ctx, validSessionID(), model.PreferencesKey, saved).
					Return(nil).Once()
				r.notifier.On("NotifyPreferencesChanged", validSessionID(), saved).Once()
			},
			expected: model.Recommendation{
				Query:  "I hate the matrix",
				Genres: []string{},
				Movies: []string{
					"The Shawshank Redemption", "The Godfather", "Inception", "Parasite", "The Dark Knight",
				},
				Excluded: []string{"matrix"},
			},
		},
		{
			name:  "Should not save when nothing changed",
			query: "",
			setupMocks: func(r *resources) {
				r.store.On("Get", r.ctx, validSessionID(), model.PreferencesKey).
					Return(model.Preferences{}, false, nil).Once()
			},
			expected: model.Recommendation{
				Query:  "",
				Genres: []string{},
				Movies: []string{
					"The Shawshank Redemption", "The Godfather", "Inception", "Parasite", "The Dark Knight",
				},
				Excluded: []string{},
			},
		},
		{
			name:  "Should build on stored preferences",
			query: "comedy too",
			setupMocks: func(r *resources) {
				saved := storedPreferences([]string{"sci-fi", "comedy"}, []string{"matrix"})
				r.store.On("Get", r.ctx, validSessionID(), model.PreferencesKey).
					Return(storedPreferences([]string{"sci-fi"}, []string{"matrix"}), true, nil).Once()
				r.store.On("Put", r.ctx, validSessionID(), model.PreferencesKey, saved).
					Return(nil).Once()
				r.notifier.On("NotifyPreferencesChanged", validSessionID(), saved).Once()
			},
			expected: model.Recommendation{
				Query:    "comedy too",
				Genres:   []string{"sci-fi", "comedy"},
				Movies:   []string{"Inception", "Interstellar", "Blade Runner 2049", "Superbad", "The Grand Budapest Hotel"},
				Excluded: []string{"matrix"},
			},
		},
		{
			name:  "Should return error when store load fails",
			query: "drama",
			setupMocks: func(r *resources) {
				r.store.On("Get", r.ctx, validSessionID(), model.PreferencesKey).
					Return(model.Preferences{}, false, errors.New("connection refused")).Once()
			},
			expectErr: ErrFailedToLoadPreferences,
		},
		{
			name:  "Should return error when store save fails",
			query: "drama",
			setupMocks: func(r *resources) {
				r.store.On("Get", r.ctx, validSessionID(), model.PreferencesKey).
					Return(model.Preferences{}, false, nil).Once()
				r.store.On("Put", r.ctx, validSessionID(), model.PreferencesKey, mock.AnythingOfType("model.Preferences")).
					Return(errors.New("read only replica")).Once()
			},
			expectErr: ErrFailedToSavePreferences,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t provider.T) {
			t.Parallel()
			r := initResources(t)
			tc.setupMocks(r)

			rec, err := r.usecase.RecommendMovies(r.ctx, validSessionID(), tc.query)

			if tc.expectErr != nil {
				assert.ErrorIs(t, err, tc.expectErr)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tc.expected, rec)
		})
	}
}

func (s *UsecasePreferencesUnitSuite) TestRecommendMoviesRequiresSession(t provider.T) {
	r := initResources(t)

	_, err := r.usecase.RecommendMovies(r.ctx, model.EmptySessionID, "action")

	assert.ErrorIs(t, err, ErrInvalidInput)
}

func (s *UsecasePreferencesUnitSuite) TestRecommendMoviesCancelledBeforeSave(t provider.T) {
	r := initResources(t)
	ctx, cancel := context.WithCancel(r.ctx)

	r.store.On("Get", mock.Anything, validSessionID(), model.PreferencesKey).
		Return(model.Preferences{}, false, nil).Once().
		Run(func(args mock.Arguments) { cancel() })

	_, err := r.usecase.RecommendMovies(ctx, validSessionID(), "horror")

	assert.ErrorIs(t, err, ErrFailedToSavePreferences)
	assert.ErrorIs(t, err, context.Canceled)
	r.store.AssertNotCalled(t, "Put", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (s *UsecasePreferencesUnitSuite) TestMovieFeedback(t provider.T) {
	t.Run("Should store dislike", func(t provider.T) {
		r := initResources(t)
		saved := storedPreferences(nil, []string{"inception"})
		r.store.On("Get", r.ctx, validSessionID(), model.PreferencesKey).
			Return(model.Preferences{}, false, nil).Once()
		r.store.On("Put", r.ctx, validSessionID(), model.PreferencesKey, saved).
			Return(nil).Once()
		r.notifier.On("NotifyPreferencesChanged", validSessionID(), saved).Once()

		fb, err := r.usecase.MovieFeedback(r.ctx, validSessionID(), "Inception", false)

		assert.NoError(t, err)
		assert.Equal(t, "Inception", fb.Movie)
		assert.False(t, fb.Liked)
		assert.Contains(t, fb.Message, "Inception")
	})

	t.Run("Should not save a like", func(t provider.T) {
		r := initResources(t)
		r.store.On("Get", r.ctx, validSessionID(), model.PreferencesKey).
			Return(storedPreferences([]string{"drama"}, nil), true, nil).Once()

		fb, err := r.usecase.MovieFeedback(r.ctx, validSessionID(), "Parasite", true)

		assert.NoError(t, err)
		assert.True(t, fb.Liked)
		assert.Contains(t, fb.Message, "Parasite")
	})

	t.Run("Should not save a repeated dislike", func(t provider.T) {
		r := initResources(t)
		r.store.On("Get", r.ctx, validSessionID(), model.PreferencesKey).
			Return(storedPreferences(nil, []string{"titanic"}), true, nil).Once()

		_, err := r.usecase.MovieFeedback(r.ctx, validSessionID(), "TITANIC", false)

		assert.NoError(t, err)
	})

	t.Run("Should reject empty title", func(t provider.T) {
		r := initResources(t)

		_, err := r.usecase.MovieFeedback(r.ctx, validSessionID(), "  ", false)

		assert.ErrorIs(t, err, ErrInvalidInput)
	})

	t.Run("Should return error when store save fails", func(t provider.T) {
		r := initResources(t)
		r.store.On("Get", r.ctx, validSessionID(), model.PreferencesKey).
			Return(model.Preferences{}, false, nil).Once()
		r.store.On("Put", r.ctx, validSessionID(), model.PreferencesKey, mock.AnythingOfType("model.Preferences")).
			Return(errors.New("timeout")).Once()

		_, err := r.usecase.MovieFeedback(r.ctx, validSessionID(), "Avengers", false)

		assert.ErrorIs(t, err, ErrFailedToSavePreferences)
	})
}

func (s *UsecasePreferencesUnitSuite) TestPreferences(t provider.T) {
	t.Run("Should default to empty preferences", func(t provider.T) {
		r := initResources(t)
		r.store.On("Get", r.ctx, validSessionID(), model.PreferencesKey).
			Return(model.Preferences{}, false, nil).Once()

		p, err := r.usecase.Preferences(r.ctx, validSessionID())

		assert.NoError(t, err)
		assert.Equal(t, model.EmptyPreferences(), p)
	})

	t.Run("Should normalise nil slices from store", func(t provider.T) {
		r := initResources(t)
		r.store.On("Get", r.ctx, validSessionID(), model.PreferencesKey).
			Return(model.Preferences{Genres: []string{"horror"}}, true, nil).Once()

		p, err := r.usecase.Preferences(r.ctx, validSessionID())

		assert.NoError(t, err)
		assert.Equal(t, []string{"horror"}, p.Genres)
		assert.NotNil(t, p.DislikedMovies)
	})
}

func (s *UsecasePreferencesUnitSuite) TestWithoutNotifier(t provider.T) {
	store := store_mocks.NewStore(t)
	uc := New(store)
	ctx := context.Background()

	store.On("Get", ctx, validSessionID(), model.PreferencesKey).
		Return(model.Preferences{}, false, nil).Once()
	store.On("Put", ctx, validSessionID(), model.PreferencesKey, storedPreferences([]string{"drama"}, nil)).
		Return(nil).Once()

	_, err := uc.RecommendMovies(ctx, validSessionID(), "drama")

	assert.NoError(t, err)
}

func TestUsecasePreferencesUnitSuite(t *testing.T) {
	suite.RunSuite(t, new(UsecasePreferencesUnitSuite))
}
