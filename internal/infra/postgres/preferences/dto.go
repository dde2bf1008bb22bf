package infra_postgres_preferences

import (
	"time"

	"github.com/humanbelnik/moviepick/internal/model"
	"github.com/lib/pq"
)

type PreferencesDB struct {
	SessionID      string         `db:"session_id"`
	Key            string         `db:"key"`
	Genres         pq.StringArray `db:"genres"`
	DislikedMovies pq.StringArray `db:"disliked_movies"`
	UpdatedAt      time.Time      `db:"updated_at"`
}

func (p *PreferencesDB) ToDomain() model.Preferences {
	return model.Preferences{
		Genres:         []string(p.Genres),
		DislikedMovies: []string(p.DislikedMovies),
	}.Clone()
}

func FromDomain(session model.SessionID, key string, p model.Preferences) PreferencesDB {
	return PreferencesDB{
		SessionID:      string(session),
		Key:            key,
		Genres:         pq.StringArray(p.Clone().Genres),
		DislikedMovies: pq.StringArray(p.Clone().DislikedMovies),
	}
}
