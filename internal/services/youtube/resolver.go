package youtube

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"

	"github.com/naijachef/osa/internal/metrics"
)

// ErrNoVideo indicates that no acceptable video exists for a query.
// It is a legitimate outcome, not a failure.
var ErrNoVideo = errors.New("no suitable video found")

// VideoAPI is the subset of the YouTube client the resolver needs.
type VideoAPI interface {
	Search(ctx context.Context, query string, maxResults int64) ([]string, error)
	FetchStatus(ctx context.Context, videoID string) (*VideoStatus, error)
}

// Resolver finds an embeddable, public video tutorial for a query.
type Resolver struct {
	api          VideoAPI
	searchSuffix string
	maxResults   int64
}

// NewResolver creates a resolver over the given video API.
func NewResolver(api VideoAPI, searchSuffix string, maxResults int64) *Resolver {
	if maxResults <= 0 {
		maxResults = 5
	}
	return &Resolver{
		api:          api,
		searchSuffix: searchSuffix,
		maxResults:   maxResults,
	}
}

// Resolve returns the first candidate, in provider relevance order, that
// is embeddable, public, and processed. A failed status fetch on one
// candidate skips to the next; a failed search aborts with ErrNoVideo.
// Probing is sequential because order carries the relevance ranking.
func (r *Resolver) Resolve(ctx context.Context, query string) (*VideoStatus, error) {
	startTime := time.Now()
	outcome := "not_found"
	defer func() {
		metrics.VideoResolutionDuration.Record(ctx, time.Since(startTime).Seconds())
		metrics.VideoResolutionsTotal.Add(ctx, 1, metric.WithAttributes(
			attribute.String("outcome", outcome),
		))
	}()

	if r.searchSuffix != "" {
		query = query + " " + r.searchSuffix
	}

	ids, err := r.api.Search(ctx, query, r.maxResults)
	if err != nil {
		slog.Error("Video search failed", "query", query, "error", err)
		outcome = "search_error"
		return nil, ErrNoVideo
	}
	if len(ids) == 0 {
		slog.Info("No videos found for query", "query", query)
		return nil, ErrNoVideo
	}

	for _, id := range ids {
		status, err := r.api.FetchStatus(ctx, id)
		if err != nil {
			// A candidate we cannot inspect is treated as filtered out.
			slog.Debug("Skipping video candidate", "video_id", id, "error", err)
			continue
		}
		if status.Acceptable() {
			slog.Info("Found valid video", "video_id", id, "title", status.Title)
			outcome = "found"
			return status, nil
		}
	}

	slog.Info("No embeddable public video in search results", "query", query)
	return nil, ErrNoVideo
}
