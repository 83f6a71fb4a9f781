package api

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/google/uuid"

	"github.com/naijachef/osa/internal/chat"
	"github.com/naijachef/osa/internal/config"
	apperrors "github.com/naijachef/osa/internal/errors"
	"github.com/naijachef/osa/internal/services/generation"
)

type Server struct {
	cfg          *config.Config
	orchestrator *chat.Orchestrator
}

func NewServer(cfg *config.Config, orchestrator *chat.Orchestrator) *Server {
	return &Server{
		cfg:          cfg,
		orchestrator: orchestrator,
	}
}

// writeError maps application errors onto their HTTP status with a JSON
// body. Unknown errors surface as a generic 500.
func writeError(w http.ResponseWriter, err error) {
	var appErr *apperrors.AppError
	if errors.As(err, &appErr) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(appErr.StatusCode)
		json.NewEncoder(w).Encode(map[string]string{
			"error": appErr.Message,
			"code":  appErr.ErrorCode,
		})
		return
	}
	http.Error(w, "Internal server error", http.StatusInternalServerError)
}

type ChatRequest struct {
	Text  string `json:"text"`
	Image string `json:"image,omitempty"`
}

type ChatResponse struct {
	TurnID string       `json:"turn_id"`
	Recipe *chat.Recipe `json:"recipe,omitempty"`
	Text   string       `json:"text,omitempty"`
	Error  string       `json:"error,omitempty"`
}

func (s *Server) HandleChat(w http.ResponseWriter, r *http.Request) {
	var req ChatRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	turnID := uuid.New().String()
	result := s.orchestrator.HandleTurn(r.Context(), chat.UserTurn{
		Text:         req.Text,
		ImageDataURI: req.Image,
	})

	slog.InfoContext(r.Context(), "chat turn handled",
		slog.String("turn_id", turnID),
		slog.Bool("has_recipe", result.Recipe != nil),
		slog.Bool("has_error", result.Error != ""))

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(ChatResponse{
		TurnID: turnID,
		Recipe: result.Recipe,
		Text:   result.Text,
		Error:  result.Error,
	})
}

type SpeechRequest struct {
	Text string `json:"text"`
}

type SpeechResponse struct {
	Audio string `json:"audio"`
}

func (s *Server) HandleSpeech(w http.ResponseWriter, r *http.Request) {
	var req SpeechRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	audio, err := s.orchestrator.SynthesizeSpeech(r.Context(), req.Text)
	if err != nil {
		writeError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(SpeechResponse{Audio: audio})
}

type RestaurantsRequest struct {
	DishName  string  `json:"dish_name"`
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

type RestaurantsResponse struct {
	Restaurants []generation.RestaurantSuggestion `json:"restaurants"`
}

func (s *Server) HandleRestaurants(w http.ResponseWriter, r *http.Request) {
	var req RestaurantsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	restaurants, err := s.orchestrator.FindRestaurants(r.Context(), req.DishName, req.Latitude, req.Longitude)
	if err != nil {
		writeError(w, err)
		return
	}
	if restaurants == nil {
		restaurants = []generation.RestaurantSuggestion{}
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(RestaurantsResponse{Restaurants: restaurants})
}

func (s *Server) HandleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]string{
		"status":  "ok",
		"service": s.cfg.ServiceName,
		"version": s.cfg.ServiceVersion,
	})
}
