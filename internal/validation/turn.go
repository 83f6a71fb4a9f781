package validation

import (
	"encoding/base64"
	"strings"

	"github.com/naijachef/osa/internal/errors"
)

// MaxTextLength bounds a single user message. Longer inputs are almost
// certainly pasted noise rather than a dish request.
const MaxTextLength = 4000

// CheckTurn validates one user submission before routing. An empty turn
// (no text, no image) is the "Empty message submitted." error; a present
// image must be a decodable image data URI.
func CheckTurn(text, imageDataURI string) *errors.AppError {
	text = strings.TrimSpace(text)

	if text == "" && imageDataURI == "" {
		return errors.NewValidationError(
			"Empty message submitted.",
			"EMPTY_INPUT",
			"Provide a message or upload a photo of a dish.",
		)
	}

	if len(text) > MaxTextLength {
		return errors.NewValidationError(
			"Message is too long.",
			"TEXT_TOO_LONG",
			"Shorten the message and try again.",
		)
	}

	if imageDataURI != "" {
		if !IsImageDataURI(imageDataURI) {
			return errors.NewValidationError(
				"Uploaded image is not a valid image data URI.",
				"INVALID_IMAGE",
				"Upload the photo again as a JPEG or PNG.",
			)
		}
	}

	return nil
}

// IsImageDataURI reports whether s looks like "data:image/<type>;base64,<payload>"
// with a decodable base64 payload.
func IsImageDataURI(s string) bool {
	if !strings.HasPrefix(s, "data:image/") {
		return false
	}
	idx := strings.Index(s, ";base64,")
	if idx < 0 {
		return false
	}
	payload := s[idx+len(";base64,"):]
	if payload == "" {
		return false
	}
	_, err := base64.StdEncoding.DecodeString(payload)
	return err == nil
}

// SplitImageDataURI returns the mime type and decoded bytes of an image
// data URI. ok is false when the input does not parse.
func SplitImageDataURI(s string) (mimeType string, data []byte, ok bool) {
	if !strings.HasPrefix(s, "data:") {
		return "", nil, false
	}
	rest := s[len("data:"):]
	idx := strings.Index(rest, ";base64,")
	if idx < 0 {
		return "", nil, false
	}
	mimeType = rest[:idx]
	decoded, err := base64.StdEncoding.DecodeString(rest[idx+len(";base64,"):])
	if err != nil {
		return "", nil, false
	}
	return mimeType, decoded, true
}
