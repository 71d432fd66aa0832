package recommend_test

import (
	"testing"

	"movie-recommender/internal/recommend"
	"movie-recommender/pkg/api"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseSuggestionsDirectArray(t *testing.T) {
	text := `[{"title": "Alien", "year": "1979", "reason": "Classic sci-fi horror."}, {"title": "Moon", "year": "2009"}]`

	suggestions, err := recommend.ParseSuggestions(text)
	require.NoError(t, err)
	assert.Equal(t, []api.MovieSuggestion{
		{Title: "Alien", Year: "1979", Reason: "Classic sci-fi horror."},
		{Title: "Moon", Year: "2009"},
	}, suggestions)
}

func TestParseSuggestionsProseWrapped(t *testing.T) {
	text := "Here are some movies you might enjoy:\n```json\n[{\"title\": \"Heat\"}, {\"title\": \"Ronin\"}]\n```\nEnjoy!"

	suggestions, err := recommend.ParseSuggestions(text)
	require.NoError(t, err)
	assert.Equal(t, []api.MovieSuggestion{{Title: "Heat"}, {Title: "Ronin"}}, suggestions)
}

func TestParseSuggestionsNoArray(t *testing.T) {
	_, err := recommend.ParseSuggestions("I'm sorry, I can't help with that.")
	assert.ErrorContains(t, err, "did not contain a JSON array")
}

func TestParseSuggestionsEmptyText(t *testing.T) {
	_, err := recommend.ParseSuggestions("   \n  ")
	assert.ErrorContains(t, err, "empty")
}

func TestParseSuggestionsMalformedArray(t *testing.T) {
	_, err := recommend.ParseSuggestions(`Sure: [{"title": "Heat",]`)
	assert.ErrorContains(t, err, "failed to parse JSON")
}

func TestParseSuggestionsNumericYear(t *testing.T) {
	suggestions, err := recommend.ParseSuggestions(`[{"title": "Blade Runner", "year": 1982}]`)
	require.NoError(t, err)
	assert.Equal(t, []api.MovieSuggestion{{Title: "Blade Runner", Year: "1982"}}, suggestions)
}

func TestParseSuggestionsBareStrings(t *testing.T) {
	suggestions, err := recommend.ParseSuggestions(`["  The Thing ", "They Live"]`)
	require.NoError(t, err)
	assert.Equal(t, []api.MovieSuggestion{{Title: "The Thing"}, {Title: "They Live"}}, suggestions)
}

func TestParseSuggestionsDropsMalformedItems(t *testing.T) {
	text := `[{"title": "Arrival"}, {"year": "2016"}, 42, null, {"title": " Dune ", "reason": null}]`

	suggestions, err := recommend.ParseSuggestions(text)
	require.NoError(t, err)
	assert.Equal(t, []api.MovieSuggestion{{Title: "Arrival"}, {Title: "Dune"}}, suggestions)
}

func TestParseSuggestionsTopLevelObject(t *testing.T) {
	// a top level object still yields the embedded array via the bracket fallback
	suggestions, err := recommend.ParseSuggestions(`{"recommendations": [{"title": "Solaris"}]}`)
	require.NoError(t, err)
	assert.Equal(t, []api.MovieSuggestion{{Title: "Solaris"}}, suggestions)
}
