package generation

import (
	"context"
	"encoding/base64"
	"encoding/binary"
	"log/slog"
	"strings"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
	"google.golang.org/genai"

	apperrors "github.com/naijachef/osa/internal/errors"
	"github.com/naijachef/osa/internal/httpclient"
	"github.com/naijachef/osa/internal/metrics"
)

// The speech models return raw 16-bit mono PCM at this rate.
const (
	pcmSampleRate = 24000
	pcmChannels   = 1
	pcmBitDepth   = 16
)

// Synthesize converts text to speech and returns the audio as a data
// URI ready for an <audio> element. Raw PCM from the backend is framed
// as WAV before encoding.
func (g *Generator) Synthesize(ctx context.Context, text string) (string, error) {
	ctx = httpclient.WithProvider(ctx, "gemini")

	contents := []*genai.Content{
		genai.NewContentFromText(text, genai.RoleUser),
	}
	genConfig := &genai.GenerateContentConfig{
		ResponseModalities: []string{"AUDIO"},
		SpeechConfig: &genai.SpeechConfig{
			VoiceConfig: &genai.VoiceConfig{
				PrebuiltVoiceConfig: &genai.PrebuiltVoiceConfig{
					VoiceName: g.cfg.Voice,
				},
			},
		},
	}

	start := time.Now()
	res, err := g.models.GenerateContent(ctx, g.cfg.SpeechModel, contents, genConfig)
	recordBackendCall(ctx, "synthesize_speech", start, err)
	metrics.SpeechSynthesesTotal.Add(ctx, 1,
		metric.WithAttributes(attribute.Bool("error", err != nil)))
	if err != nil {
		slog.ErrorContext(ctx, "speech synthesis call failed",
			slog.String("model", g.cfg.SpeechModel),
			slog.String("error", err.Error()))
		return "", apperrors.NewSpeechError("speech synthesis is unavailable right now", "BACKEND_UNAVAILABLE", err)
	}

	blob := audioBlob(res)
	if blob == nil || len(blob.Data) == 0 {
		return "", apperrors.NewSpeechError("the backend returned no audio", "EMPTY_AUDIO", nil)
	}

	mimeType := blob.MIMEType
	data := blob.Data
	if !strings.HasPrefix(mimeType, "audio/wav") && !strings.HasPrefix(mimeType, "audio/mpeg") {
		// audio/L16;codec=pcm;rate=24000 and friends need a WAV header.
		data = pcmToWAV(data, pcmSampleRate, pcmChannels)
		mimeType = "audio/wav"
	}

	return "data:" + mimeType + ";base64," + base64.StdEncoding.EncodeToString(data), nil
}

func audioBlob(res *genai.GenerateContentResponse) *genai.Blob {
	if len(res.Candidates) == 0 || res.Candidates[0].Content == nil {
		return nil
	}
	for _, part := range res.Candidates[0].Content.Parts {
		if part != nil && part.InlineData != nil {
			return part.InlineData
		}
	}
	return nil
}

// pcmToWAV prepends a 44-byte RIFF header to 16-bit little-endian PCM.
func pcmToWAV(pcm []byte, sampleRate, channels int) []byte {
	byteRate := sampleRate * channels * pcmBitDepth / 8
	blockAlign := channels * pcmBitDepth / 8

	buf := make([]byte, 0, 44+len(pcm))
	buf = append(buf, "RIFF"...)
	buf = binary.LittleEndian.AppendUint32(buf, uint32(36+len(pcm)))
	buf = append(buf, "WAVE"...)
	buf = append(buf, "fmt "...)
	buf = binary.LittleEndian.AppendUint32(buf, 16) // PCM chunk size
	buf = binary.LittleEndian.AppendUint16(buf, 1)  // PCM format
	buf = binary.LittleEndian.AppendUint16(buf, uint16(channels))
	buf = binary.LittleEndian.AppendUint32(buf, uint32(sampleRate))
	buf = binary.LittleEndian.AppendUint32(buf, uint32(byteRate))
	buf = binary.LittleEndian.AppendUint16(buf, uint16(blockAlign))
	buf = binary.LittleEndian.AppendUint16(buf, pcmBitDepth)
	buf = append(buf, "data"...)
	buf = binary.LittleEndian.AppendUint32(buf, uint32(len(pcm)))
	buf = append(buf, pcm...)
	return buf
}
