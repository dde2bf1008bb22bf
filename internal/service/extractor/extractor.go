package extractor

import (
	"strings"

	"github.com/humanbelnik/moviepick/internal/model"
	"github.com/humanbelnik/moviepick/internal/service/catalog"
)

// Phrases that enable the disliked-movie scan.
var DislikePhrases = []string{"don't like", "didn't enjoy", "dislike", "hate"}

// Movie keywords recognised after a dislike phrase.
var MovieKeywords = []string{"godfather", "star wars", "inception", "avengers", "titanic", "matrix"}

// Update scans the query for genre and dislike signals and returns the
// updated preferences and whether anything was added. Matching is plain
// substring matching on the lower-cased query, so "dramatic" counts as
// drama and "hates" counts as hate. p is left untouched.
func Update(query string, p model.Preferences) (model.Preferences, bool) {
	q := strings.ToLower(query)
	out := p.Clone()
	changed := false

	for _, genre := range catalog.Genres {
		if strings.Contains(q, genre) && !out.HasGenre(genre) {
			out.Genres = append(out.Genres, genre)
			changed = true
		}
	}

	if !mentionsDislike(q) {
		return out, changed
	}

	for _, movie := range MovieKeywords {
		if strings.Contains(q, movie) && !out.HasDisliked(movie) {
			out.DislikedMovies = append(out.DislikedMovies, movie)
			changed = true
		}
	}

	return out, changed
}

func mentionsDislike(q string) bool {
	for _, phrase := range DislikePhrases {
		if strings.Contains(q, phrase) {
			return true
		}
	}
	return false
}
