//go:build !integration
// +build !integration

package usecase_preferences

import (
	"testing"

	"github.com/humanbelnik/moviepick/internal/model"
	"github.com/stretchr/testify/assert"
)

func TestFormatRecommendation(t *testing.T) {
	testCases := []struct {
		name     string
		rec      model.Recommendation
		expected string
	}{
		{
			name: "plain default list",
			rec: model.Recommendation{
				Query:  "",
				Movies: []string{"The Shawshank Redemption", "The Godfather"},
			},
			expected: "Based on your request: \"\"\n\nHere are my recommendations:\n1. The Shawshank Redemption\n2. The Godfather",
		},
		{
			name: "genres and exclusions",
			rec: model.Recommendation{
				Query:    "sci-fi, but I hate the matrix",
				Genres:   []string{"sci-fi", "horror"},
				Movies:   []string{"Inception"},
				Excluded: []string{"matrix", "titanic"},
			},
			expected: "Based on your request: \"sci-fi, but I hate the matrix\"\n" +
				"Your preferred genres: sci-fi, horror\n\n" +
				"Here are my recommendations:\n1. Inception\n\n" +
				"(Excluding movies you didn't like: matrix, titanic)",
		},
		{
			name: "everything filtered out",
			rec: model.Recommendation{
				Query:    "x",
				Genres:   []string{"western"},
				Excluded: []string{"the"},
			},
			expected: "Based on your request: \"x\"\nYour preferred genres: western\n\n" +
				"No recommendations left after applying your dislikes.\n\n" +
				"(Excluding movies you didn't like: the)",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, FormatRecommendation(tc.rec))
		})
	}
}
