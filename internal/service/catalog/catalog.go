package catalog

const MaxRecommendations = 5

const (
	GenreAction = "action"
	GenreComedy = "comedy"
	GenreDrama  = "drama"
	GenreSciFi  = "sci-fi"
	GenreHorror = "horror"
)

// Genres is the recognised genre vocabulary in matching order.
var Genres = []string{
	GenreAction,
	GenreComedy,
	GenreDrama,
	GenreSciFi,
	GenreHorror,
}

var movies = map[string][]string{
	GenreAction: {"Die Hard", "The Dark Knight", "John Wick", "Mission Impossible"},
	GenreComedy: {"Superbad", "The Grand Budapest Hotel", "Groundhog Day", "Anchorman"},
	GenreDrama:  {"The Shawshank Redemption", "Forrest Gump", "The Godfather", "Parasite"},
	GenreSciFi:  {"Inception", "The Matrix", "Interstellar", "Blade Runner 2049"},
	GenreHorror: {"Get Out", "The Shining", "Hereditary", "A Quiet Place"},
}

var defaultMovies = []string{
	"The Shawshank Redemption",
	"The Godfather",
	"Inception",
	"Parasite",
	"The Dark Knight",
}

// MoviesByGenre returns a copy of the genre's titles, or nil for an unknown genre.
func MoviesByGenre(genre string) []string {
	list, ok := movies[genre]
	if !ok {
		return nil
	}
	return append([]string(nil), list...)
}

func DefaultMovies() []string {
	return append([]string(nil), defaultMovies...)
}
