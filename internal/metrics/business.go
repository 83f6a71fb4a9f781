package metrics

import (
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/metric"
)

var (
	meter = otel.Meter("naijachef/business")

	// Chat metrics
	ChatTurnsTotal   metric.Int64Counter
	ChatTurnDuration metric.Float64Histogram

	// External API metrics
	ExternalAPICallsTotal metric.Int64Counter
	ExternalAPIDuration   metric.Float64Histogram

	// AI metrics
	GenerationDuration   metric.Float64Histogram
	ToolInvocationsTotal metric.Int64Counter

	// Video resolution metrics
	VideoResolutionsTotal   metric.Int64Counter
	VideoResolutionDuration metric.Float64Histogram

	// Speech metrics
	SpeechSynthesesTotal metric.Int64Counter
)

func Init() error {
	var err error

	ChatTurnsTotal, err = meter.Int64Counter(
		"chat.turns.total",
		metric.WithDescription("Total number of chat turns handled"),
		metric.WithUnit("1"),
	)
	if err != nil {
		return err
	}

	ChatTurnDuration, err = meter.Float64Histogram(
		"chat.turn.duration",
		metric.WithDescription("Duration of one chat turn"),
		metric.WithUnit("s"),
		metric.WithExplicitBucketBoundaries(0.1, 0.5, 1, 2, 5, 10, 30, 60),
	)
	if err != nil {
		return err
	}

	ExternalAPICallsTotal, err = meter.Int64Counter(
		"external.api.calls.total",
		metric.WithDescription("Total number of external API calls"),
		metric.WithUnit("1"),
	)
	if err != nil {
		return err
	}

	ExternalAPIDuration, err = meter.Float64Histogram(
		"external.api.duration",
		metric.WithDescription("Duration of external API calls"),
		metric.WithUnit("s"),
		metric.WithExplicitBucketBoundaries(0.1, 0.5, 1, 2, 5, 10, 30),
	)
	if err != nil {
		return err
	}

	GenerationDuration, err = meter.Float64Histogram(
		"ai.generation.duration",
		metric.WithDescription("Duration of one structured generation call"),
		metric.WithUnit("s"),
		metric.WithExplicitBucketBoundaries(0.1, 0.5, 1, 2, 5, 10, 30, 60),
	)
	if err != nil {
		return err
	}

	ToolInvocationsTotal, err = meter.Int64Counter(
		"ai.tool.invocations.total",
		metric.WithDescription("Total number of tool calls issued by the model"),
		metric.WithUnit("1"),
	)
	if err != nil {
		return err
	}

	VideoResolutionsTotal, err = meter.Int64Counter(
		"video.resolutions.total",
		metric.WithDescription("Total number of video resolution attempts"),
		metric.WithUnit("1"),
	)
	if err != nil {
		return err
	}

	VideoResolutionDuration, err = meter.Float64Histogram(
		"video.resolution.duration",
		metric.WithDescription("Duration of one video resolution"),
		metric.WithUnit("s"),
		metric.WithExplicitBucketBoundaries(0.1, 0.5, 1, 2, 5, 10),
	)
	if err != nil {
		return err
	}

	SpeechSynthesesTotal, err = meter.Int64Counter(
		"speech.syntheses.total",
		metric.WithDescription("Total number of speech synthesis requests"),
		metric.WithUnit("1"),
	)
	if err != nil {
		return err
	}

	return nil
}
