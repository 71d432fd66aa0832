package api

import (
	"github.com/google/uuid"
)

// MovieSuggestion is one normalized recommendation. Title is always present;
// Year and Reason are omitted when the model did not supply them.
type MovieSuggestion struct {
	Title  string `json:"title"`
	Year   string `json:"year,omitempty"`
	Reason string `json:"reason,omitempty"`
}

type RecommendRequest struct {
	UserInput string `json:"user_input"`
}

type RecommendResponse struct {
	Recommendations []MovieSuggestion `json:"recommendations"`
}

type HistoryQuery struct {
	Limit int `schema:"limit"`
}

type HistoryRecord struct {
	Id                uuid.UUID         `json:"id"`
	UserInput         string            `json:"user_input"`
	RecommendedMovies []MovieSuggestion `json:"recommended_movies"`
	CreatedAt         string            `json:"created_at"`
}

type HistoryResponse struct {
	Results []HistoryRecord `json:"results"`
}
