package database

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"movie-recommender/pkg/api"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

func SaveRecommendation(ctx context.Context, db *gorm.DB, userInput string, suggestions []api.MovieSuggestion) (*Recommendation, error) {
	movies, err := json.Marshal(suggestions)
	if err != nil {
		return nil, fmt.Errorf("could not marshal suggestions: %w", err)
	}

	rec := Recommendation{
		Id:        uuid.New(),
		UserInput: userInput,
		Movies:    movies,
		CreatedAt: time.Now().UTC(),
	}
	if err := db.WithContext(ctx).Create(&rec).Error; err != nil {
		return nil, fmt.Errorf("failed to save recommendation: %w", err)
	}
	return &rec, nil
}

func ListRecommendations(ctx context.Context, db *gorm.DB, limit int) ([]Recommendation, error) {
	var rows []Recommendation
	if err := db.WithContext(ctx).
		Order("created_at DESC").
		Limit(limit).
		Find(&rows).
		Error; err != nil {
		return nil, fmt.Errorf("could not query recommendations: %w", err)
	}
	return rows, nil
}

func (r *Recommendation) Suggestions() ([]api.MovieSuggestion, error) {
	var suggestions []api.MovieSuggestion
	if err := json.Unmarshal(r.Movies, &suggestions); err != nil {
		return nil, fmt.Errorf("invalid suggestions JSON for recommendation %s: %w", r.Id, err)
	}
	return suggestions, nil
}
