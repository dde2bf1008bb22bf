package infra_postgres_preferences

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/humanbelnik/moviepick/internal/model"
	"github.com/jmoiron/sqlx"
)

type Repository struct {
	db  *sqlx.DB
	now func() time.Time
}

func New(db *sqlx.DB) *Repository {
	return &Repository{
		db:  db,
		now: time.Now,
	}
}

func (r *Repository) Get(ctx context.Context, session model.SessionID, key string) (model.Preferences, bool, error) {
	query := `
		SELECT session_id, key, genres, disliked_movies, updated_at
		FROM session_preferences
		WHERE session_id = $1 AND key = $2
	`

	var row PreferencesDB
	err := r.db.GetContext(ctx, &row, query, string(session), key)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.Preferences{}, false, nil
		}
		return model.Preferences{}, false, fmt.Errorf("failed to load preferences: %w", err)
	}

	return row.ToDomain(), true, nil
}

func (r *Repository) Put(ctx context.Context, session model.SessionID, key string, p model.Preferences) error {
	row := FromDomain(session, key, p)
	row.UpdatedAt = r.now().UTC()

	query := `
		INSERT INTO session_preferences (session_id, key, genres, disliked_movies, updated_at)
		VALUES (:session_id, :key, :genres, :disliked_movies, :updated_at)
		ON CONFLICT (session_id, key) DO UPDATE SET
			genres = EXCLUDED.genres,
			disliked_movies = EXCLUDED.disliked_movies,
			updated_at = EXCLUDED.updated_at
	`

	if _, err := r.db.NamedExecContext(ctx, query, row); err != nil {
		return fmt.Errorf("failed to store preferences: %w", err)
	}

	return nil
}
