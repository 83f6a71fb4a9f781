package api

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"

	"github.com/naijachef/osa/internal/chat"
	"github.com/naijachef/osa/internal/config"
	"github.com/naijachef/osa/internal/metrics"
	"github.com/naijachef/osa/internal/services/generation"
)

func TestMain(m *testing.M) {
	if err := metrics.Init(); err != nil {
		panic(err)
	}
	os.Exit(m.Run())
}

type stubGenerator struct {
	chatOut     *generation.GeneralChatOutput
	retrieveOut *generation.RetrieveRecipeOutput
	audioURI    string
	restaurants []generation.RestaurantSuggestion
}

func (s *stubGenerator) IdentifyDish(ctx context.Context, mimeType string, image []byte) (*generation.IdentifyDishOutput, error) {
	return &generation.IdentifyDishOutput{}, nil
}

func (s *stubGenerator) RetrieveRecipe(ctx context.Context, dishName string) (*generation.RetrieveRecipeOutput, error) {
	return s.retrieveOut, nil
}

func (s *stubGenerator) GeneralChat(ctx context.Context, query string) (*generation.GeneralChatOutput, error) {
	return s.chatOut, nil
}

func (s *stubGenerator) FindRestaurants(ctx context.Context, dishName string, latitude, longitude float64) ([]generation.RestaurantSuggestion, error) {
	return s.restaurants, nil
}

func (s *stubGenerator) Synthesize(ctx context.Context, text string) (string, error) {
	return s.audioURI, nil
}

func newTestServer(gen chat.Generator) *Server {
	cfg := &config.Config{ServiceName: "naijachef-osa", ServiceVersion: "test"}
	return NewServer(cfg, chat.NewOrchestrator(gen))
}

func TestHandleChat_RecipeRequest(t *testing.T) {
	srv := newTestServer(&stubGenerator{retrieveOut: &generation.RetrieveRecipeOutput{
		DishName:    "Jollof Rice",
		Ingredients: "rice, tomatoes",
		Recipe:      "1. Blend tomatoes.",
	}})

	body, _ := json.Marshal(ChatRequest{Text: "how do I make jollof rice"})
	req := httptest.NewRequest("POST", "/api/chat", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rr := httptest.NewRecorder()

	srv.HandleChat(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("expected status %d, got %d", http.StatusOK, rr.Code)
	}

	var resp ChatResponse
	if err := json.Unmarshal(rr.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid response body: %v", err)
	}
	if resp.TurnID == "" {
		t.Error("turn_id missing")
	}
	if resp.Recipe == nil || resp.Recipe.DishName != "Jollof Rice" {
		t.Errorf("recipe = %+v", resp.Recipe)
	}
}

func TestHandleChat_EmptyTurnStaysOK(t *testing.T) {
	srv := newTestServer(&stubGenerator{})

	body, _ := json.Marshal(ChatRequest{})
	req := httptest.NewRequest("POST", "/api/chat", bytes.NewReader(body))
	rr := httptest.NewRecorder()

	srv.HandleChat(rr, req)

	// Turn-level failures ride inside the result, not the HTTP status.
	if rr.Code != http.StatusOK {
		t.Fatalf("expected status %d, got %d", http.StatusOK, rr.Code)
	}
	var resp ChatResponse
	json.Unmarshal(rr.Body.Bytes(), &resp)
	if resp.Error != "Empty message submitted." {
		t.Errorf("error = %q", resp.Error)
	}
}

func TestHandleChat_InvalidBody(t *testing.T) {
	srv := newTestServer(&stubGenerator{})

	req := httptest.NewRequest("POST", "/api/chat", strings.NewReader("{not json"))
	rr := httptest.NewRecorder()

	srv.HandleChat(rr, req)

	if rr.Code != http.StatusBadRequest {
		t.Errorf("expected status %d, got %d", http.StatusBadRequest, rr.Code)
	}
}

func TestHandleSpeech(t *testing.T) {
	srv := newTestServer(&stubGenerator{audioURI: "data:audio/wav;base64,UklGRg=="})

	body, _ := json.Marshal(SpeechRequest{Text: "Welcome to my kitchen"})
	req := httptest.NewRequest("POST", "/api/speech", bytes.NewReader(body))
	rr := httptest.NewRecorder()

	srv.HandleSpeech(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("expected status %d, got %d", http.StatusOK, rr.Code)
	}
	var resp SpeechResponse
	json.Unmarshal(rr.Body.Bytes(), &resp)
	if resp.Audio != "data:audio/wav;base64,UklGRg==" {
		t.Errorf("audio = %q", resp.Audio)
	}
}

func TestHandleSpeech_EmptyText(t *testing.T) {
	srv := newTestServer(&stubGenerator{})

	body, _ := json.Marshal(SpeechRequest{})
	req := httptest.NewRequest("POST", "/api/speech", bytes.NewReader(body))
	rr := httptest.NewRecorder()

	srv.HandleSpeech(rr, req)

	if rr.Code != http.StatusBadRequest {
		t.Fatalf("expected status %d, got %d", http.StatusBadRequest, rr.Code)
	}
	var resp map[string]string
	json.Unmarshal(rr.Body.Bytes(), &resp)
	if resp["code"] != "EMPTY_TEXT" {
		t.Errorf("code = %q", resp["code"])
	}
}

func TestHandleRestaurants(t *testing.T) {
	srv := newTestServer(&stubGenerator{restaurants: []generation.RestaurantSuggestion{
		{RestaurantName: "Mama Put", Address: "12 Allen Ave", DriveTime: "5 min", WalkTime: "15 min", MapsURL: "https://maps.google.com/?q=mama+put"},
	}})

	body, _ := json.Marshal(RestaurantsRequest{DishName: "jollof rice", Latitude: 6.5244, Longitude: 3.3792})
	req := httptest.NewRequest("POST", "/api/restaurants", bytes.NewReader(body))
	rr := httptest.NewRecorder()

	srv.HandleRestaurants(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("expected status %d, got %d", http.StatusOK, rr.Code)
	}
	var resp RestaurantsResponse
	json.Unmarshal(rr.Body.Bytes(), &resp)
	if len(resp.Restaurants) != 1 || resp.Restaurants[0].RestaurantName != "Mama Put" {
		t.Errorf("restaurants = %+v", resp.Restaurants)
	}
}

func TestHandleRestaurants_InvalidCoordinates(t *testing.T) {
	srv := newTestServer(&stubGenerator{})

	body, _ := json.Marshal(RestaurantsRequest{DishName: "jollof rice", Latitude: 120, Longitude: 3.3})
	req := httptest.NewRequest("POST", "/api/restaurants", bytes.NewReader(body))
	rr := httptest.NewRecorder()

	srv.HandleRestaurants(rr, req)

	if rr.Code != http.StatusBadRequest {
		t.Errorf("expected status %d, got %d", http.StatusBadRequest, rr.Code)
	}
}

func TestHandleHealth(t *testing.T) {
	srv := newTestServer(&stubGenerator{})

	req := httptest.NewRequest("GET", "/health", nil)
	rr := httptest.NewRecorder()

	srv.HandleHealth(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("expected status %d, got %d", http.StatusOK, rr.Code)
	}
	var resp map[string]string
	json.Unmarshal(rr.Body.Bytes(), &resp)
	if resp["status"] != "ok" || resp["service"] != "naijachef-osa" {
		t.Errorf("body = %v", resp)
	}
}
