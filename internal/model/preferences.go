package model

import "slices"

type SessionID string

const (
	EmptySessionID   SessionID = ""
	DefaultSessionID SessionID = "default"
)

// PreferencesKey is the only key a session's preferences are stored under.
const PreferencesKey = "preferences"

type Preferences struct {
	Genres         []string `json:"genres"`
	DislikedMovies []string `json:"dislikedMovies"`
}

func EmptyPreferences() Preferences {
	return Preferences{
		Genres:         []string{},
		DislikedMovies: []string{},
	}
}

func (p Preferences) HasGenre(genre string) bool {
	return slices.Contains(p.Genres, genre)
}

func (p Preferences) HasDisliked(movie string) bool {
	return slices.Contains(p.DislikedMovies, movie)
}

// Clone returns a copy that shares no backing arrays with p.
// Nil slices become empty ones.
func (p Preferences) Clone() Preferences {
	c := EmptyPreferences()
	c.Genres = append(c.Genres, p.Genres...)
	c.DislikedMovies = append(c.DislikedMovies, p.DislikedMovies...)
	return c
}
