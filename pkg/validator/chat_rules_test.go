package validator_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/guardkit/guardkit/pkg/validator"
)

func TestValidateChatInput(t *testing.T) {
	tests := []struct {
		name      string
		input     string
		wantValid bool
		wantError string
	}{
		{
			name:      "accepts normal message",
			input:     "Hello, how are you today?",
			wantValid: true,
		},
		{
			name:      "rejects empty message",
			input:     "",
			wantValid: false,
			wantError: "Message cannot be empty",
		},
		{
			name:      "rejects whitespace-only message",
			input:     "   \n\t  ",
			wantValid: false,
			wantError: "Message cannot be empty",
		},
		{
			name:      "rejects message that sanitizes to nothing",
			input:     "<script>alert(1)</script>",
			wantValid: false,
			wantError: "Message cannot be empty",
		},
		{
			name:      "accepts message at maximum length",
			input:     strings.Repeat("ab", 2000),
			wantValid: true,
		},
		{
			name:      "rejects message over maximum length",
			input:     strings.Repeat("ab", 2000) + "c",
			wantValid: false,
			wantError: "Message too long (maximum 4000 characters)",
		},
		{
			name:      "accepts allowed punctuation",
			input:     `Well... really?! (Yes; "quite": it's-fine.)`,
			wantValid: true,
		},
		{
			name:      "rejects mostly special characters",
			input:     "@#$%^&*@#$%^&*ab",
			wantValid: false,
			wantError: "Message contains too many special characters",
		},
		{
			name:      "accepts exactly half special characters",
			input:     "abcd@#$%",
			wantValid: true,
		},
		{
			name:      "accepts run of exactly ten",
			input:     strings.Repeat("a", 10),
			wantValid: true,
		},
		{
			name:      "rejects run of eleven",
			input:     strings.Repeat("a", 11),
			wantValid: false,
			wantError: "Message contains excessive repeated characters",
		},
		{
			name:      "rejects long run inside normal text",
			input:     "see you sooooooooooon",
			wantValid: false,
			wantError: "Message contains excessive repeated characters",
		},
		{
			name:      "length check wins over repeat check",
			input:     strings.Repeat("a", 4001),
			wantValid: false,
			wantError: "Message too long (maximum 4000 characters)",
		},
		{
			name:      "validates the sanitized form",
			input:     "Hello <iframe>friend</iframe>",
			wantValid: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := validator.ValidateChatInput(tt.input)
			assert.Equal(t, tt.wantValid, res.Valid)
			assert.Equal(t, tt.wantError, res.Error)
		})
	}
}
