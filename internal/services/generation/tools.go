package generation

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
	"google.golang.org/genai"

	"github.com/naijachef/osa/internal/metrics"
	"github.com/naijachef/osa/internal/services/youtube"
)

// findVideoToolName is the function name the model invokes to look up a
// cooking tutorial. The resolver verifies each candidate is embeddable
// and publicly watchable before the link reaches the user.
const findVideoToolName = "find_youtube_video"

var findVideoDeclaration = &genai.FunctionDeclaration{
	Name:        findVideoToolName,
	Description: "Finds a high-quality, publicly available and embeddable YouTube video tutorial for cooking a dish. Always call this to obtain the videoTutorialLink instead of guessing a URL.",
	Parameters: &genai.Schema{
		Type:     "object",
		Required: []string{"query"},
		Properties: map[string]*genai.Schema{
			"query": {
				Type:        "string",
				Description: "The name of the dish to find a cooking tutorial for, e.g. \"jollof rice\".",
			},
		},
	},
}

// VideoResolver finds a verified watchable tutorial for a dish query.
type VideoResolver interface {
	Resolve(ctx context.Context, query string) (*youtube.VideoStatus, error)
}

// toolset dispatches model function calls. A tool failure is reported
// back to the model as a structured response so generation can continue
// without the link rather than aborting the whole turn.
type toolset struct {
	videos VideoResolver
}

func (t *toolset) declarations() []*genai.Tool {
	return []*genai.Tool{
		{FunctionDeclarations: []*genai.FunctionDeclaration{findVideoDeclaration}},
	}
}

func (t *toolset) dispatch(ctx context.Context, call *genai.FunctionCall) map[string]any {
	metrics.ToolInvocationsTotal.Add(ctx, 1,
		metric.WithAttributes(attribute.String("tool", call.Name)))

	switch call.Name {
	case findVideoToolName:
		return t.findVideo(ctx, call.Args)
	default:
		slog.WarnContext(ctx, "model requested unknown tool", slog.String("tool", call.Name))
		return map[string]any{"error": fmt.Sprintf("unknown tool: %s", call.Name)}
	}
}

func (t *toolset) findVideo(ctx context.Context, args map[string]any) map[string]any {
	query, _ := args["query"].(string)
	if query == "" {
		return map[string]any{"found": false, "error": "query is required"}
	}

	status, err := t.videos.Resolve(ctx, query)
	if err != nil {
		if !errors.Is(err, youtube.ErrNoVideo) {
			slog.ErrorContext(ctx, "video tool lookup failed",
				slog.String("query", query),
				slog.String("error", err.Error()))
		}
		return map[string]any{"found": false}
	}

	return map[string]any{
		"found":    true,
		"videoId":  status.VideoID,
		"title":    status.Title,
		"watchUrl": youtube.WatchURL(status.VideoID),
	}
}
