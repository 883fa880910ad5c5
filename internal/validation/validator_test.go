package validation_test

import (
	"strings"
	"testing"

	"github.com/dom/book-catalog/internal/validation"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type bookPayload struct {
	Title       string `json:"title" validate:"required,min=3,max=100"`
	Author      string `json:"author" validate:"required,min=3,max=50"`
	Description string `json:"description" validate:"required,min=1,max=1000"`
}

type registerPayload struct {
	Name     string `json:"name" validate:"required"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8"`
}

func TestValidator_BookPayload(t *testing.T) {
	v := validation.New()

	tests := []struct {
		name      string
		payload   bookPayload
		wantField string
	}{
		{
			name: "valid payload",
			payload: bookPayload{
				Title:       "A Valid Title",
				Author:      "An Author",
				Description: "D",
			},
		},
		{
			name: "title below minimum",
			payload: bookPayload{
				Title:       "ab",
				Author:      "An Author",
				Description: "D",
			},
			wantField: "title",
		},
		{
			name: "title above maximum",
			payload: bookPayload{
				Title:       strings.Repeat("t", 101),
				Author:      "An Author",
				Description: "D",
			},
			wantField: "title",
		},
		{
			name: "author above maximum",
			payload: bookPayload{
				Title:       "A Valid Title",
				Author:      strings.Repeat("a", 51),
				Description: "D",
			},
			wantField: "author",
		},
		{
			name: "missing description",
			payload: bookPayload{
				Title:  "A Valid Title",
				Author: "An Author",
			},
			wantField: "description",
		},
		{
			name: "description above maximum",
			payload: bookPayload{
				Title:       "A Valid Title",
				Author:      "An Author",
				Description: strings.Repeat("d", 1001),
			},
			wantField: "description",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.Validate(tt.payload)

			if tt.wantField == "" {
				assert.NoError(t, err)
				return
			}

			require.Error(t, err)
			var fieldErrors validation.FieldErrors
			require.ErrorAs(t, err, &fieldErrors)
			assert.Contains(t, fieldErrors, tt.wantField)
		})
	}
}

func TestValidator_RegisterPayload(t *testing.T) {
	v := validation.New()

	tests := []struct {
		name      string
		payload   registerPayload
		wantField string
	}{
		{
			name: "valid payload",
			payload: registerPayload{
				Name:     "Someone",
				Email:    "someone@example.com",
				Password: "password123",
			},
		},
		{
			name: "invalid email",
			payload: registerPayload{
				Name:     "Someone",
				Email:    "not-an-email",
				Password: "password123",
			},
			wantField: "email",
		},
		{
			name: "password too short",
			payload: registerPayload{
				Name:     "Someone",
				Email:    "someone@example.com",
				Password: "short",
			},
			wantField: "password",
		},
		{
			name: "missing name",
			payload: registerPayload{
				Email:    "someone@example.com",
				Password: "password123",
			},
			wantField: "name",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.Validate(tt.payload)

			if tt.wantField == "" {
				assert.NoError(t, err)
				return
			}

			require.Error(t, err)
			var fieldErrors validation.FieldErrors
			require.ErrorAs(t, err, &fieldErrors)
			assert.Contains(t, fieldErrors, tt.wantField)
		})
	}
}

func TestFieldErrors_ErrorMessage(t *testing.T) {
	err := validation.FieldErrors{
		"title":  "must be at least 3 characters long",
		"author": "is required",
	}

	msg := err.Error()
	assert.Contains(t, msg, "title must be at least 3 characters long")
	assert.Contains(t, msg, "author is required")
}
