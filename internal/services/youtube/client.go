package youtube

import (
	"context"
	"fmt"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
	"google.golang.org/api/option"
	yt "google.golang.org/api/youtube/v3"

	"github.com/naijachef/osa/internal/metrics"
)

// VideoStatus holds the subset of video metadata the resolver filters on.
type VideoStatus struct {
	VideoID       string
	Title         string
	Embeddable    bool
	PrivacyStatus string
	UploadStatus  string
}

// Acceptable reports whether the video can be embedded in the chat UI:
// embeddable, public, and fully processed.
func (s *VideoStatus) Acceptable() bool {
	return s.Embeddable && s.PrivacyStatus == "public" && s.UploadStatus == "processed"
}

// Client wraps the YouTube Data API v3 service.
type Client struct {
	svc *yt.Service
}

// NewClient creates a YouTube Data API client. The API key must already
// be validated by config.Load; an empty key here is a programming error.
func NewClient(ctx context.Context, apiKey string) (*Client, error) {
	svc, err := yt.NewService(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create youtube service: %w", err)
	}
	return &Client{svc: svc}, nil
}

// recordCall tracks one call against the YouTube Data API.
func recordCall(ctx context.Context, operation string, start time.Time, err error) {
	attrs := metric.WithAttributes(
		attribute.String("provider", "youtube"),
		attribute.String("operation", operation),
		attribute.Bool("error", err != nil),
	)
	metrics.ExternalAPICallsTotal.Add(ctx, 1, attrs)
	metrics.ExternalAPIDuration.Record(ctx, time.Since(start).Seconds(), attrs)
}

// Search returns up to maxResults video IDs for the query, in the
// provider's relevance order.
func (c *Client) Search(ctx context.Context, query string, maxResults int64) ([]string, error) {
	start := time.Now()
	resp, err := c.svc.Search.List([]string{"id"}).
		Q(query).
		Type("video").
		MaxResults(maxResults).
		Context(ctx).
		Do()
	recordCall(ctx, "search.list", start, err)
	if err != nil {
		return nil, fmt.Errorf("youtube search failed: %w", err)
	}

	ids := make([]string, 0, len(resp.Items))
	for _, item := range resp.Items {
		if item.Id != nil && item.Id.VideoId != "" {
			ids = append(ids, item.Id.VideoId)
		}
	}
	return ids, nil
}

// FetchStatus returns the status and title of a single video.
func (c *Client) FetchStatus(ctx context.Context, videoID string) (*VideoStatus, error) {
	start := time.Now()
	resp, err := c.svc.Videos.List([]string{"status", "snippet"}).
		Id(videoID).
		Context(ctx).
		Do()
	recordCall(ctx, "videos.list", start, err)
	if err != nil {
		return nil, fmt.Errorf("youtube video lookup failed: %w", err)
	}
	if len(resp.Items) == 0 {
		return nil, fmt.Errorf("video %s not found", videoID)
	}

	v := resp.Items[0]
	status := &VideoStatus{VideoID: videoID}
	if v.Snippet != nil {
		status.Title = v.Snippet.Title
	}
	if v.Status != nil {
		status.Embeddable = v.Status.Embeddable
		status.PrivacyStatus = v.Status.PrivacyStatus
		status.UploadStatus = v.Status.UploadStatus
	}
	return status, nil
}
