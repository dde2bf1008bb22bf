package recommender

import (
	"strings"

	"github.com/humanbelnik/moviepick/internal/model"
	"github.com/humanbelnik/moviepick/internal/service/catalog"
)

// Recommend picks up to catalog.MaxRecommendations unique titles for p.
// Genres are walked in the order they were recorded; with no genres the
// default list is used. A title is dropped when its lower-cased form
// contains any disliked string.
func Recommend(p model.Preferences) []string {
	var candidates []string
	if len(p.Genres) == 0 {
		candidates = catalog.DefaultMovies()
	} else {
		for _, genre := range p.Genres {
			candidates = append(candidates, catalog.MoviesByGenre(genre)...)
		}
	}

	seen := make(map[string]struct{}, len(candidates))
	result := make([]string, 0, catalog.MaxRecommendations)
	for _, title := range candidates {
		if len(result) == catalog.MaxRecommendations {
			break
		}
		if isDisliked(title, p.DislikedMovies) {
			continue
		}
		if _, ok := seen[title]; ok {
			continue
		}
		seen[title] = struct{}{}
		result = append(result, title)
	}

	return result
}

func isDisliked(title string, disliked []string) bool {
	t := strings.ToLower(title)
	for _, d := range disliked {
		if strings.Contains(t, d) {
			return true
		}
	}
	return false
}
