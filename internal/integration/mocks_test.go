package integration

import (
	"context"
	"os"
	"testing"

	"github.com/stretchr/testify/mock"
	"google.golang.org/genai"

	"github.com/naijachef/osa/internal/metrics"
	"github.com/naijachef/osa/internal/services/youtube"
)

func TestMain(m *testing.M) {
	if err := metrics.Init(); err != nil {
		panic(err)
	}
	os.Exit(m.Run())
}

// MockBackend stands in for the Gemini models client.
type MockBackend struct {
	mock.Mock
}

func (m *MockBackend) GenerateContent(ctx context.Context, model string, contents []*genai.Content, config *genai.GenerateContentConfig) (*genai.GenerateContentResponse, error) {
	args := m.Called(ctx, model, contents, config)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*genai.GenerateContentResponse), args.Error(1)
}

// MockVideoAPI stands in for the YouTube Data API client.
type MockVideoAPI struct {
	mock.Mock
}

func (m *MockVideoAPI) Search(ctx context.Context, query string, maxResults int64) ([]string, error) {
	args := m.Called(ctx, query, maxResults)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]string), args.Error(1)
}

func (m *MockVideoAPI) FetchStatus(ctx context.Context, videoID string) (*youtube.VideoStatus, error) {
	args := m.Called(ctx, videoID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*youtube.VideoStatus), args.Error(1)
}

func modelTextResponse(text string) *genai.GenerateContentResponse {
	return &genai.GenerateContentResponse{
		Candidates: []*genai.Candidate{
			{Content: &genai.Content{
				Role:  genai.RoleModel,
				Parts: []*genai.Part{{Text: text}},
			}},
		},
	}
}

func modelToolCallResponse(name string, args map[string]any) *genai.GenerateContentResponse {
	return &genai.GenerateContentResponse{
		Candidates: []*genai.Candidate{
			{Content: &genai.Content{
				Role:  genai.RoleModel,
				Parts: []*genai.Part{{FunctionCall: &genai.FunctionCall{Name: name, Args: args}}},
			}},
		},
	}
}

func modelAudioResponse(mimeType string, data []byte) *genai.GenerateContentResponse {
	return &genai.GenerateContentResponse{
		Candidates: []*genai.Candidate{
			{Content: &genai.Content{
				Role:  genai.RoleModel,
				Parts: []*genai.Part{{InlineData: &genai.Blob{MIMEType: mimeType, Data: data}}},
			}},
		},
	}
}
