package errors

import (
	"errors"
	"net/http"
	"testing"
)

func TestAppError_Error(t *testing.T) {
	err := &AppError{
		Message: "something went wrong",
	}
	if err.Error() != "something went wrong" {
		t.Errorf("expected 'something went wrong', got %v", err.Error())
	}

	wrappedErr := errors.New("underlying error")
	errWithWrap := &AppError{
		Message: "failed operation",
		Err:     wrappedErr,
	}
	expected := "failed operation: underlying error"
	if errWithWrap.Error() != expected {
		t.Errorf("expected %q, got %q", expected, errWithWrap.Error())
	}
}

func TestAppError_Unwrap(t *testing.T) {
	cause := errors.New("underlying error")
	err := NewGenerationError("generation failed", "GEN_FAILED", cause)
	if !errors.Is(err, cause) {
		t.Error("expected errors.Is to find the wrapped cause")
	}
}

func TestAppError_Code(t *testing.T) {
	err := &AppError{
		ErrorCode: "ERR_CODE_123",
	}
	if err.Code() != "ERR_CODE_123" {
		t.Errorf("expected ERR_CODE_123, got %v", err.Code())
	}
}

func TestConstructors(t *testing.T) {
	tests := []struct {
		name       string
		err        *AppError
		wantType   ErrorType
		wantStatus int
	}{
		{
			name:       "validation",
			err:        NewValidationError("empty message submitted", "EMPTY_INPUT", "Provide text or an image."),
			wantType:   ErrorTypeValidation,
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "configuration",
			err:        NewConfigurationError("missing credential", "MISSING_CREDENTIAL", nil),
			wantType:   ErrorTypeConfiguration,
			wantStatus: http.StatusInternalServerError,
		},
		{
			name:       "generation",
			err:        NewGenerationError("schema mismatch", "SCHEMA_INVALID", nil),
			wantType:   ErrorTypeGeneration,
			wantStatus: http.StatusInternalServerError,
		},
		{
			name:       "speech",
			err:        NewSpeechError("synthesis failed", "TTS_FAILED", nil),
			wantType:   ErrorTypeSpeech,
			wantStatus: http.StatusInternalServerError,
		},
		{
			name:       "not found",
			err:        NewNotFoundError("no such thing", "NOT_FOUND", ""),
			wantType:   ErrorTypeNotFound,
			wantStatus: http.StatusNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.err.Type != tt.wantType {
				t.Errorf("Type = %v, want %v", tt.err.Type, tt.wantType)
			}
			if tt.err.StatusCode != tt.wantStatus {
				t.Errorf("StatusCode = %d, want %d", tt.err.StatusCode, tt.wantStatus)
			}
		})
	}
}
