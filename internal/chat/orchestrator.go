package chat

import (
	"context"
	"log/slog"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"

	"github.com/naijachef/osa/internal/errors"
	"github.com/naijachef/osa/internal/metrics"
	"github.com/naijachef/osa/internal/sentry"
	"github.com/naijachef/osa/internal/services/generation"
)

// unrecognizedDishReply is sent when a photo could not be identified.
const unrecognizedDishReply = "I'm sorry, I couldn't recognize that dish. Can you try a different picture?"

// Generator is the generation surface the orchestrator drives.
// *generation.Generator satisfies it.
type Generator interface {
	IdentifyDish(ctx context.Context, mimeType string, image []byte) (*generation.IdentifyDishOutput, error)
	RetrieveRecipe(ctx context.Context, dishName string) (*generation.RetrieveRecipeOutput, error)
	GeneralChat(ctx context.Context, query string) (*generation.GeneralChatOutput, error)
	FindRestaurants(ctx context.Context, dishName string, latitude, longitude float64) ([]generation.RestaurantSuggestion, error)
	Synthesize(ctx context.Context, text string) (string, error)
}

// ActionResult is the outcome of one turn. Exactly one of Recipe, Text
// and Error is set.
type ActionResult struct {
	Recipe *Recipe `json:"recipe,omitempty"`
	Text   string  `json:"text,omitempty"`
	Error  string  `json:"error,omitempty"`
}

// Orchestrator ties routing, generation and normalization into the
// conversation surface.
type Orchestrator struct {
	gen Generator
}

func NewOrchestrator(gen Generator) *Orchestrator {
	return &Orchestrator{gen: gen}
}

// HandleTurn processes one user turn. It never returns a Go error; any
// failure becomes the Error variant of the result so the conversation
// can continue.
func (o *Orchestrator) HandleTurn(ctx context.Context, turn UserTurn) *ActionResult {
	start := time.Now()

	task, appErr := Route(turn)
	if appErr != nil {
		o.recordTurn(ctx, "rejected", "error", start)
		return &ActionResult{Error: appErr.Message}
	}

	var result *ActionResult
	switch task.Kind {
	case TaskIdentifyFromImage:
		result = o.identifyFromImage(ctx, task)
	case TaskRetrieveRecipe:
		result = o.retrieveRecipe(ctx, task)
	default:
		result = o.generalChat(ctx, task.Text)
	}

	outcome := "text"
	if result.Recipe != nil {
		outcome = "recipe"
	} else if result.Error != "" {
		outcome = "error"
	}
	o.recordTurn(ctx, string(task.Kind), outcome, start)
	return result
}

func (o *Orchestrator) identifyFromImage(ctx context.Context, task *RoutedTask) *ActionResult {
	out, err := o.gen.IdentifyDish(ctx, task.ImageMIMEType, task.ImageData)
	if err != nil {
		return o.failTurn(ctx, "dish identification failed", err)
	}
	if out.DishName == "" {
		slog.InfoContext(ctx, "dish not recognized in photo")
		return &ActionResult{Text: unrecognizedDishReply}
	}
	return &ActionResult{Recipe: RecipeFromIdentification(out)}
}

func (o *Orchestrator) retrieveRecipe(ctx context.Context, task *RoutedTask) *ActionResult {
	out, err := o.gen.RetrieveRecipe(ctx, task.Text)
	if err != nil {
		return o.failTurn(ctx, "recipe retrieval failed", err)
	}
	if out.DishName == "" {
		// No dish in the message despite the recipe keywords; answer it
		// as plain conversation with the original text.
		slog.InfoContext(ctx, "no dish identified, falling back to chat")
		return o.generalChat(ctx, task.Text)
	}
	return &ActionResult{Recipe: RecipeFromRetrieval(out)}
}

func (o *Orchestrator) generalChat(ctx context.Context, query string) *ActionResult {
	out, err := o.gen.GeneralChat(ctx, query)
	if err != nil {
		return o.failTurn(ctx, "chat reply failed", err)
	}
	return &ActionResult{Text: out.Response}
}

// failTurn logs and reports the failure, then folds it into the Error
// variant so the client still gets a well-formed result.
func (o *Orchestrator) failTurn(ctx context.Context, summary string, err error) *ActionResult {
	slog.ErrorContext(ctx, summary, slog.String("error", err.Error()))
	sentry.CaptureError(err)

	if appErr, ok := err.(*errors.AppError); ok && appErr.IsOperational {
		return &ActionResult{Error: appErr.Message}
	}
	return &ActionResult{Error: "Something went wrong handling that message. Please try again."}
}

func (o *Orchestrator) recordTurn(ctx context.Context, task, outcome string, start time.Time) {
	attrs := metric.WithAttributes(
		attribute.String("task", task),
		attribute.String("outcome", outcome),
	)
	metrics.ChatTurnsTotal.Add(ctx, 1, attrs)
	metrics.ChatTurnDuration.Record(ctx, time.Since(start).Seconds(), attrs)
}

// SynthesizeSpeech reads text aloud and returns the audio data URI.
func (o *Orchestrator) SynthesizeSpeech(ctx context.Context, text string) (string, error) {
	if text == "" {
		return "", errors.NewValidationError(
			"No text provided to read aloud.",
			"EMPTY_TEXT",
			"Send the text to synthesize in the request body.",
		)
	}
	return o.gen.Synthesize(ctx, text)
}

// FindRestaurants suggests nearby places serving the dish.
func (o *Orchestrator) FindRestaurants(ctx context.Context, dishName string, latitude, longitude float64) ([]generation.RestaurantSuggestion, error) {
	if dishName == "" {
		return nil, errors.NewValidationError(
			"No dish name provided.",
			"EMPTY_DISH_NAME",
			"Send the dish to search restaurants for.",
		)
	}
	if latitude < -90 || latitude > 90 || longitude < -180 || longitude > 180 {
		return nil, errors.NewValidationError(
			"The provided location is not a valid coordinate pair.",
			"INVALID_LOCATION",
			"Send latitude in [-90, 90] and longitude in [-180, 180].",
		)
	}
	return o.gen.FindRestaurants(ctx, dishName, latitude, longitude)
}
