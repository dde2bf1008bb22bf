package usecase_preferences

import (
	"fmt"
	"strings"

	"github.com/humanbelnik/moviepick/internal/model"
)

// FormatRecommendation renders r as the text returned to tool callers.
func FormatRecommendation(r model.Recommendation) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Based on your request: %q\n", r.Query)
	if len(r.Genres) > 0 {
		fmt.Fprintf(&b, "Your preferred genres: %s\n", strings.Join(r.Genres, ", "))
	}
	b.WriteString("\n")

	if len(r.Movies) == 0 {
		b.WriteString("No recommendations left after applying your dislikes.\n")
	} else {
		b.WriteString("Here are my recommendations:\n")
		for i, title := range r.Movies {
			fmt.Fprintf(&b, "%d. %s\n", i+1, title)
		}
	}

	if len(r.Excluded) > 0 {
		fmt.Fprintf(&b, "\n(Excluding movies you didn't like: %s)\n", strings.Join(r.Excluded, ", "))
	}

	return strings.TrimRight(b.String(), "\n")
}
