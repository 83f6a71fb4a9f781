// Package generation turns free-form cooking requests into structured
// results by driving a Gemini backend with JSON response schemas and a
// video lookup tool.
package generation

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
	"google.golang.org/genai"

	"github.com/naijachef/osa/internal/config"
	apperrors "github.com/naijachef/osa/internal/errors"
	"github.com/naijachef/osa/internal/httpclient"
	"github.com/naijachef/osa/internal/metrics"
	"github.com/naijachef/osa/internal/services/ai"
)

// maxToolRounds bounds the tool-calling conversation with the model so a
// misbehaving backend cannot loop forever.
const maxToolRounds = 4

// ContentGenerator is the slice of the Gemini client the adapter needs.
// *genai.Models satisfies it.
type ContentGenerator interface {
	GenerateContent(ctx context.Context, model string, contents []*genai.Content, config *genai.GenerateContentConfig) (*genai.GenerateContentResponse, error)
}

// Generator produces structured recipe content, conversational replies,
// restaurant suggestions and speech audio from the generative backend.
type Generator struct {
	models ContentGenerator
	tools  *toolset
	cfg    config.GenerationConfig
}

// NewGenerator builds a Generator on top of an already constructed
// backend client and a video resolver for the tutorial lookup tool.
func NewGenerator(models ContentGenerator, videos VideoResolver, cfg config.GenerationConfig) *Generator {
	return &Generator{
		models: models,
		tools:  &toolset{videos: videos},
		cfg:    cfg,
	}
}

// IdentifyDish identifies the dish in an uploaded photo and returns its
// recipe. An output with an empty DishName means the photo was not
// recognized; that is not an error.
func (g *Generator) IdentifyDish(ctx context.Context, mimeType string, image []byte) (*IdentifyDishOutput, error) {
	contents := []*genai.Content{
		genai.NewContentFromParts([]*genai.Part{
			genai.NewPartFromBytes(image, mimeType),
			genai.NewPartFromText("Identify the dish in this picture and provide its recipe."),
		}, genai.RoleUser),
	}

	var out IdentifyDishOutput
	err := g.generate(ctx, "identify_dish", g.cfg.VisionModel,
		ai.BuildIdentifyDishPrompt(), identifyDishSchema, contents, true, &out)
	if err != nil {
		return nil, err
	}
	if err := out.validate(); err != nil {
		return nil, apperrors.NewGenerationError("the identified recipe was incomplete", "INVALID_OUTPUT", err)
	}
	return &out, nil
}

// RetrieveRecipe looks up a recipe for the dish named in the user's raw
// text. An output with an empty DishName means no dish was identified.
func (g *Generator) RetrieveRecipe(ctx context.Context, dishName string) (*RetrieveRecipeOutput, error) {
	contents := []*genai.Content{
		genai.NewContentFromText(dishName, genai.RoleUser),
	}

	var out RetrieveRecipeOutput
	err := g.generate(ctx, "retrieve_recipe", g.cfg.Model,
		ai.BuildRetrieveRecipePrompt(dishName), retrieveRecipeSchema, contents, true, &out)
	if err != nil {
		return nil, err
	}
	if err := out.validate(); err != nil {
		return nil, apperrors.NewGenerationError("the retrieved recipe was incomplete", "INVALID_OUTPUT", err)
	}
	return &out, nil
}

// GeneralChat answers a free-form message in Osakpolor's voice.
func (g *Generator) GeneralChat(ctx context.Context, query string) (*GeneralChatOutput, error) {
	contents := []*genai.Content{
		genai.NewContentFromText(query, genai.RoleUser),
	}

	var out GeneralChatOutput
	err := g.generate(ctx, "general_chat", g.cfg.Model,
		ai.BuildGeneralChatPrompt(query), generalChatSchema, contents, false, &out)
	if err != nil {
		return nil, err
	}
	if err := out.validate(); err != nil {
		return nil, apperrors.NewGenerationError("chat reply was incomplete", "INVALID_OUTPUT", err)
	}
	return &out, nil
}

// FindRestaurants suggests up to MaxRestaurants places near the given
// coordinates that are likely to serve the dish, closest first.
func (g *Generator) FindRestaurants(ctx context.Context, dishName string, latitude, longitude float64) ([]RestaurantSuggestion, error) {
	contents := []*genai.Content{
		genai.NewContentFromText(dishName, genai.RoleUser),
	}

	var out FindRestaurantsOutput
	err := g.generate(ctx, "find_restaurants", g.cfg.Model,
		ai.BuildFindRestaurantPrompt(dishName, latitude, longitude), findRestaurantsSchema, contents, false, &out)
	if err != nil {
		return nil, err
	}
	if err := out.validate(); err != nil {
		return nil, apperrors.NewGenerationError("restaurant suggestions were incomplete", "INVALID_OUTPUT", err)
	}
	if len(out.Restaurants) > MaxRestaurants {
		out.Restaurants = out.Restaurants[:MaxRestaurants]
	}
	return out.Restaurants, nil
}

// generate runs one structured generation, dispatching tool calls until
// the model produces its final JSON payload, then decodes it into out.
func (g *Generator) generate(ctx context.Context, task, model, prompt string, schema *genai.Schema, contents []*genai.Content, withTools bool, out any) error {
	ctx = httpclient.WithProvider(ctx, "gemini")
	start := time.Now()

	genConfig := &genai.GenerateContentConfig{
		SystemInstruction: genai.NewContentFromText(prompt, genai.RoleUser),
		ResponseMIMEType:  "application/json",
		ResponseSchema:    schema,
	}
	if withTools {
		genConfig.Tools = g.tools.declarations()
	}

	text, err := g.converse(ctx, task, model, contents, genConfig)

	metrics.GenerationDuration.Record(ctx, time.Since(start).Seconds(),
		metric.WithAttributes(
			attribute.String("task", task),
			attribute.Bool("error", err != nil),
		))
	if err != nil {
		return err
	}

	if err := json.Unmarshal([]byte(text), out); err != nil {
		slog.ErrorContext(ctx, "structured output did not match schema",
			slog.String("task", task),
			slog.String("error", err.Error()))
		return apperrors.NewGenerationError("the assistant returned an unreadable response", "INVALID_OUTPUT", err)
	}
	return nil
}

func (g *Generator) converse(ctx context.Context, task, model string, contents []*genai.Content, genConfig *genai.GenerateContentConfig) (string, error) {
	for round := 0; round < maxToolRounds; round++ {
		callStart := time.Now()
		res, err := g.models.GenerateContent(ctx, model, contents, genConfig)
		recordBackendCall(ctx, task, callStart, err)
		if err != nil {
			slog.ErrorContext(ctx, "generation call failed",
				slog.String("task", task),
				slog.String("model", model),
				slog.String("error", err.Error()))
			return "", apperrors.NewGenerationError("the assistant is unavailable right now", "BACKEND_UNAVAILABLE", err)
		}

		calls := functionCalls(res)
		if len(calls) == 0 {
			text := responseText(res)
			if text == "" {
				return "", apperrors.NewGenerationError("the assistant returned an empty response", "EMPTY_RESPONSE", nil)
			}
			return text, nil
		}

		contents = append(contents, res.Candidates[0].Content)
		for _, call := range calls {
			result := g.tools.dispatch(ctx, call)
			contents = append(contents, genai.NewContentFromParts([]*genai.Part{
				genai.NewPartFromFunctionResponse(call.Name, result),
			}, genai.RoleUser))
		}
	}

	return "", apperrors.NewGenerationError("the assistant kept requesting tools without answering", "TOOL_LOOP", nil)
}

// recordBackendCall tracks one call against the generative backend.
func recordBackendCall(ctx context.Context, operation string, start time.Time, err error) {
	attrs := metric.WithAttributes(
		attribute.String("provider", "gemini"),
		attribute.String("operation", operation),
		attribute.Bool("error", err != nil),
	)
	metrics.ExternalAPICallsTotal.Add(ctx, 1, attrs)
	metrics.ExternalAPIDuration.Record(ctx, time.Since(start).Seconds(), attrs)
}

// functionCalls extracts the tool calls from the first candidate, if any.
func functionCalls(res *genai.GenerateContentResponse) []*genai.FunctionCall {
	if len(res.Candidates) == 0 || res.Candidates[0].Content == nil {
		return nil
	}
	var calls []*genai.FunctionCall
	for _, part := range res.Candidates[0].Content.Parts {
		if part != nil && part.FunctionCall != nil {
			calls = append(calls, part.FunctionCall)
		}
	}
	return calls
}

// responseText concatenates the text parts of the first candidate.
func responseText(res *genai.GenerateContentResponse) string {
	if len(res.Candidates) == 0 || res.Candidates[0].Content == nil {
		return ""
	}
	var text string
	for _, part := range res.Candidates[0].Content.Parts {
		if part != nil {
			text += part.Text
		}
	}
	return text
}

// NewBackendClient constructs the Gemini API client used in production.
// The instrumented HTTP client gives every outbound call tracing and a
// request timeout.
func NewBackendClient(ctx context.Context, apiKey string) (*genai.Client, error) {
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		Backend:    genai.BackendGeminiAPI,
		APIKey:     apiKey,
		HTTPClient: httpclient.NewInstrumentedClient(60 * time.Second),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create generative backend client: %w", err)
	}
	return client, nil
}
