package recommend

import (
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"

	"movie-recommender/pkg/api"
)

// ParseSuggestions recovers a JSON array from raw model output and normalizes
// its elements. Models asked for pure JSON still wrap it in prose or markdown
// fences often enough that we fall back to the first '[' .. last ']' substring
// before giving up.
func ParseSuggestions(text string) ([]api.MovieSuggestion, error) {
	items, err := extractArray(text)
	if err != nil {
		return nil, err
	}
	return normalize(items), nil
}

func extractArray(text string) ([]any, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil, fmt.Errorf("model response was empty")
	}

	var items []any
	if err := json.Unmarshal([]byte(text), &items); err == nil {
		return items, nil
	}

	start := strings.Index(text, "[")
	end := strings.LastIndex(text, "]")
	if start == -1 || end == -1 || end <= start {
		return nil, fmt.Errorf("model response did not contain a JSON array: %s", text)
	}

	if err := json.Unmarshal([]byte(text[start:end+1]), &items); err != nil {
		return nil, fmt.Errorf("failed to parse JSON from model response: %w", err)
	}
	return items, nil
}

// normalize coerces loosely-typed array elements into MovieSuggestion records.
// Objects need at least a "title" key, bare strings become title-only records,
// anything else is dropped.
func normalize(items []any) []api.MovieSuggestion {
	suggestions := make([]api.MovieSuggestion, 0, len(items))
	for _, item := range items {
		switch v := item.(type) {
		case map[string]any:
			title, ok := v["title"]
			if !ok {
				continue
			}
			suggestion := api.MovieSuggestion{Title: strings.TrimSpace(coerceString(title))}
			if year, ok := v["year"]; ok && year != nil {
				suggestion.Year = coerceString(year)
			}
			if reason, ok := v["reason"]; ok && reason != nil {
				suggestion.Reason = coerceString(reason)
			}
			suggestions = append(suggestions, suggestion)
		case string:
			suggestions = append(suggestions, api.MovieSuggestion{Title: strings.TrimSpace(v)})
		}
	}
	return suggestions
}

func coerceString(v any) string {
	switch t := v.(type) {
	case string:
		return t
	case float64:
		// json numbers decode as float64; render whole years without a decimal point
		if t == math.Trunc(t) && math.Abs(t) < 1e15 {
			return strconv.FormatInt(int64(t), 10)
		}
		return strconv.FormatFloat(t, 'f', -1, 64)
	default:
		return fmt.Sprint(t)
	}
}
