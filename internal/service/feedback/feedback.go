package feedback

import (
	"fmt"
	"strings"

	"github.com/humanbelnik/moviepick/internal/model"
)

// Record applies explicit feedback on a single title.
// A dislike stores the lower-cased title. A like changes nothing: there is
// no liked-movies record yet, only the acknowledgement.
func Record(title string, liked bool, p model.Preferences) (model.Preferences, string, bool) {
	out := p.Clone()

	if liked {
		return out, fmt.Sprintf("Glad you liked %q! I'll recommend more movies like it.", title), false
	}

	msg := fmt.Sprintf("Got it, you didn't like %q. I won't recommend it again.", title)
	movie := strings.ToLower(title)
	if out.HasDisliked(movie) {
		return out, msg, false
	}

	out.DislikedMovies = append(out.DislikedMovies, movie)
	return out, msg, true
}
