package models

import (
	"errors"
	"fmt"
	"testing"

	"github.com/gofiber/fiber/v2"
)

func TestStatusForError(t *testing.T) {
	tests := []struct {
		name   string
		err    error
		status int
	}{
		{"missing parameter", NewMissingParameterError("user_id"), fiber.StatusBadRequest},
		{"business rule", NewBusinessRuleError("User is banned from the community"), fiber.StatusBadRequest},
		{"not found", NewNotFoundError("Community", 9), fiber.StatusNotFound},
		{"already exists", NewAlreadyExistsError("Artist already owns a community"), fiber.StatusConflict},
		{"external service", NewExternalServiceError("connection failed", nil), fiber.StatusInternalServerError},
		{"internal", NewInternalError(errors.New("boom")), fiber.StatusInternalServerError},
		{"plain error", errors.New("boom"), fiber.StatusInternalServerError},
		{"wrapped app error", fmt.Errorf("context: %w", NewNotFoundError("Post", 1)), fiber.StatusNotFound},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := StatusForError(tt.err); got != tt.status {
				t.Fatalf("StatusForError(%v) = %d, want %d", tt.err, got, tt.status)
			}
		})
	}
}

func TestAppError_Unwrap(t *testing.T) {
	cause := errors.New("dial tcp: refused")
	err := NewExternalServiceError("connection failed", cause)
	if !errors.Is(err, cause) {
		t.Fatal("expected the cause to be reachable via errors.Is")
	}
}

func TestNotFoundError_Message(t *testing.T) {
	err := NewNotFoundError("Community", 42)
	if err.Message != "Community with ID 42 not found" {
		t.Fatalf("unexpected message: %q", err.Message)
	}
}
