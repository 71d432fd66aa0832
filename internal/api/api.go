package api

import (
	"log/slog"
	"net/http"
	"strings"
	"time"

	"movie-recommender/internal/database"
	"movie-recommender/internal/llm"
	"movie-recommender/internal/recommend"
	"movie-recommender/pkg/api"

	"github.com/go-chi/chi/v5"
	"gorm.io/gorm"
)

const DefaultHistoryLimit = 20

type RecommenderService struct {
	db    *gorm.DB
	model llm.LLM
}

func NewRecommenderService(db *gorm.DB, model llm.LLM) *RecommenderService {
	return &RecommenderService{db: db, model: model}
}

func (s *RecommenderService) AddRoutes(r chi.Router) {
	r.Get("/health", RestHandler(func(r *http.Request) (any, error) { return nil, nil }))
	r.Post("/recommend", RestHandler(s.Recommend))
	r.Get("/history", RestHandler(s.GetHistory))
}

func (s *RecommenderService) Recommend(r *http.Request) (any, error) {
	req, err := ParseRequest[api.RecommendRequest](r)
	if err != nil {
		return nil, err
	}

	userInput := strings.TrimSpace(req.UserInput)
	if userInput == "" {
		return nil, CodedErrorf(http.StatusBadRequest, "user_input must be a non-empty string")
	}

	ctx := r.Context()

	text, err := s.model.Generate(ctx, recommend.SystemPrompt, recommend.UserPrompt(userInput))
	if err != nil {
		return nil, CodedErrorf(http.StatusInternalServerError, "model request failed: %v", err)
	}

	suggestions, err := recommend.ParseSuggestions(text)
	if err != nil {
		return nil, CodedError(http.StatusInternalServerError, err)
	}

	rec, err := database.SaveRecommendation(ctx, s.db, userInput, suggestions)
	if err != nil {
		slog.Error("error saving recommendation", "error", err)
		return nil, err
	}

	slog.Info("saved recommendation", "recommendation_id", rec.Id, "suggestions", len(suggestions))
	return api.RecommendResponse{Recommendations: suggestions}, nil
}

func (s *RecommenderService) GetHistory(r *http.Request) (any, error) {
	params, err := ParseRequestQueryParams[api.HistoryQuery](r)
	if err != nil {
		return nil, err
	}

	limit := params.Limit
	if limit <= 0 {
		limit = DefaultHistoryLimit
	}

	rows, err := database.ListRecommendations(r.Context(), s.db, limit)
	if err != nil {
		slog.Error("error listing recommendations", "error", err)
		return nil, err
	}

	results := make([]api.HistoryRecord, 0, len(rows))
	for _, row := range rows {
		suggestions, err := row.Suggestions()
		if err != nil {
			return nil, err
		}
		results = append(results, api.HistoryRecord{
			Id:                row.Id,
			UserInput:         row.UserInput,
			RecommendedMovies: suggestions,
			CreatedAt:         row.CreatedAt.Format(time.RFC3339),
		})
	}

	return api.HistoryResponse{Results: results}, nil
}
