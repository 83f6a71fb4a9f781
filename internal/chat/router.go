// Package chat routes user turns to the right task and assembles the
// structured results the conversation surface returns.
package chat

import (
	"strings"

	"github.com/naijachef/osa/internal/errors"
	"github.com/naijachef/osa/internal/validation"
)

// UserTurn is one message from the user: text, an image data URI, or
// both. When both are present the image wins and the text is dropped.
type UserTurn struct {
	Text         string `json:"text"`
	ImageDataURI string `json:"image,omitempty"`
}

// TaskKind names the task a turn routes to.
type TaskKind string

const (
	TaskIdentifyFromImage TaskKind = "identify_from_image"
	TaskRetrieveRecipe    TaskKind = "retrieve_recipe"
	TaskGeneralChat       TaskKind = "general_chat"
)

// RoutedTask is the routing decision for one turn. Text carries the
// user's raw utterance untouched; trimming or rewriting it would change
// what the backend sees.
type RoutedTask struct {
	Kind          TaskKind
	Text          string
	ImageMIMEType string
	ImageData     []byte
}

// recipeKeywords marks a message as a recipe request when any of them
// appears as a case-insensitive substring.
var recipeKeywords = []string{"recipe", "make", "cook", "prepare", "how to"}

// Route decides which task handles the turn. An attached image always
// routes to identification regardless of any accompanying text.
func Route(turn UserTurn) (*RoutedTask, *errors.AppError) {
	if appErr := validation.CheckTurn(turn.Text, turn.ImageDataURI); appErr != nil {
		return nil, appErr
	}

	if turn.ImageDataURI != "" {
		mimeType, data, ok := validation.SplitImageDataURI(turn.ImageDataURI)
		if !ok {
			return nil, errors.NewValidationError(
				"The attached image could not be read.",
				"INVALID_IMAGE",
				"Attach the picture as a base64 image data URI.",
			)
		}
		return &RoutedTask{Kind: TaskIdentifyFromImage, ImageMIMEType: mimeType, ImageData: data}, nil
	}

	lowered := strings.ToLower(turn.Text)
	for _, keyword := range recipeKeywords {
		if strings.Contains(lowered, keyword) {
			return &RoutedTask{Kind: TaskRetrieveRecipe, Text: turn.Text}, nil
		}
	}

	return &RoutedTask{Kind: TaskGeneralChat, Text: turn.Text}, nil
}
