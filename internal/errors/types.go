package errors

import (
	"fmt"
	"net/http"
)

// ErrorType defines the category of the error
type ErrorType string

const (
	ErrorTypeValidation    ErrorType = "VALIDATION_ERROR"
	ErrorTypeConfiguration ErrorType = "CONFIGURATION_ERROR"
	ErrorTypeGeneration    ErrorType = "GENERATION_ERROR"
	ErrorTypeVideo         ErrorType = "VIDEO_ERROR"
	ErrorTypeSpeech        ErrorType = "SPEECH_ERROR"
	ErrorTypeNotFound      ErrorType = "NOT_FOUND_ERROR"
	ErrorTypeInternal      ErrorType = "INTERNAL_ERROR"
)

// AppError represents a structured error for the application
type AppError struct {
	Type          ErrorType `json:"type"`
	Message       string    `json:"message"`
	StatusCode    int       `json:"statusCode"`
	ErrorCode     string    `json:"errorCode"`
	IsOperational bool      `json:"isOperational"`
	Recovery      string    `json:"recoverySuggestion,omitempty"`
	Err           error     `json:"-"`
}

// Error implements the error interface
func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

// Unwrap returns the wrapped cause, if any.
func (e *AppError) Unwrap() error {
	return e.Err
}

// Code returns the application-specific error code
func (e *AppError) Code() string {
	return e.ErrorCode
}

// RecoverySuggestion returns the suggestion on how to recover from the error
func (e *AppError) RecoverySuggestion() string {
	return e.Recovery
}

// NewValidationError creates a new validation error (400)
func NewValidationError(message string, errorCode string, suggestion string) *AppError {
	return &AppError{
		Type:          ErrorTypeValidation,
		Message:       message,
		StatusCode:    http.StatusBadRequest,
		ErrorCode:     errorCode,
		IsOperational: true,
		Recovery:      suggestion,
	}
}

// NewConfigurationError creates a new configuration error. Configuration
// errors are fatal and raised at startup, never per-call.
func NewConfigurationError(message string, errorCode string, err error) *AppError {
	return &AppError{
		Type:          ErrorTypeConfiguration,
		Message:       message,
		StatusCode:    http.StatusInternalServerError,
		ErrorCode:     errorCode,
		IsOperational: false,
		Recovery:      "Set the missing credential and restart the service.",
		Err:           err,
	}
}

// NewNotFoundError creates a new not found error (404)
func NewNotFoundError(message string, errorCode string, suggestion string) *AppError {
	return &AppError{
		Type:          ErrorTypeNotFound,
		Message:       message,
		StatusCode:    http.StatusNotFound,
		ErrorCode:     errorCode,
		IsOperational: true,
		Recovery:      suggestion,
	}
}

// NewGenerationError creates a new generation error (500). Covers both
// backend transport failures and schema-invalid structured output.
func NewGenerationError(message string, errorCode string, err error) *AppError {
	return &AppError{
		Type:          ErrorTypeGeneration,
		Message:       message,
		StatusCode:    http.StatusInternalServerError,
		ErrorCode:     errorCode,
		IsOperational: true,
		Recovery:      "Try rephrasing the request or wait for the service to be available.",
		Err:           err,
	}
}

// NewVideoError creates a new video resolution error (500)
func NewVideoError(message string, errorCode string, err error) *AppError {
	return &AppError{
		Type:          ErrorTypeVideo,
		Message:       message,
		StatusCode:    http.StatusInternalServerError,
		ErrorCode:     errorCode,
		IsOperational: true,
		Recovery:      "The video search service may be unavailable; try again later.",
		Err:           err,
	}
}

// NewSpeechError creates a new speech synthesis error (500)
func NewSpeechError(message string, errorCode string, err error) *AppError {
	return &AppError{
		Type:          ErrorTypeSpeech,
		Message:       message,
		StatusCode:    http.StatusInternalServerError,
		ErrorCode:     errorCode,
		IsOperational: true,
		Recovery:      "Try a shorter text or wait for the service to be available.",
		Err:           err,
	}
}
