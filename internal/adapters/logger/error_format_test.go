package logger_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.autols.dev/autols/internal/adapters/logger"
	"go.trai.ch/zerr"
)

func TestCollectErrorMessages(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want []string
	}{
		{
			name: "single standard error",
			err:  errors.New("simple error"),
			want: []string{"simple error"},
		},
		{
			name: "zerr single error",
			err:  zerr.New("zerr error"),
			want: []string{"zerr error"},
		},
		{
			name: "zerr wrapped chain",
			err: zerr.Wrap(
				zerr.Wrap(
					errors.New("root cause"),
					"middle layer",
				),
				"outer layer",
			),
			want: []string{
				"outer layer",
				"middle layer",
				"root cause",
			},
		},
		{
			name: "annotations collapse into their level",
			err: zerr.With(
				zerr.With(
					zerr.New("base error"),
					"key1", "value1",
				),
				"key2", 42,
			),
			want: []string{"base error"},
		},
		{
			name: "mixed chain with annotations",
			err: func() error {
				inner := zerr.With(zerr.New("inner"), "inner_key", "inner_val")
				outer := zerr.Wrap(inner, "outer")
				outer = zerr.With(outer, "outer_key", "outer_val")
				return outer
			}(),
			want: []string{"outer", "inner"},
		},
		{
			name: "stdlib wrap ends the walk",
			err:  fmt.Errorf("outer: %w", errors.New("inner")),
			want: []string{"outer: inner"},
		},
		{
			name: "nil error handling",
			err:  nil,
			want: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := logger.CollectErrorMessages(tt.err)

			if tt.err == nil {
				assert.Empty(t, got, "nil error should produce no messages")
				return
			}

			assert.Equal(t, tt.want, got)
		})
	}
}

func TestFormatErrorChain(t *testing.T) {
	tests := []struct {
		name     string
		messages []string
		want     string
	}{
		{
			name:     "single message",
			messages: []string{"single error"},
			want:     "Error: single error",
		},
		{
			name:     "two messages with caused by",
			messages: []string{"outer error", "inner error"},
			want:     "Error: outer error\n\n  Caused by:\n    → inner error",
		},
		{
			name:     "three messages",
			messages: []string{"first", "second", "third"},
			want:     "Error: first\n\n  Caused by:\n    → second\n    → third",
		},
		{
			name:     "multiline main message",
			messages: []string{"line1\nline2\nline3"},
			want:     "Error: line1\n       line2\n       line3",
		},
		{
			name:     "multiline cause message",
			messages: []string{"main", "cause line1\ncause line2"},
			want:     "Error: main\n\n  Caused by:\n    → cause line1\n      cause line2",
		},
		{
			name:     "empty messages",
			messages: []string{},
			want:     "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := logger.FormatErrorChain(tt.messages)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestCollectAndFormatIntegration(t *testing.T) {
	// Integration test that combines collect and format
	tests := []struct {
		name string
		err  error
		want string
	}{
		{
			name: "annotated zerr chain",
			err: func() error {
				inner := zerr.New("database timeout")
				outer := zerr.Wrap(inner, "failed to fetch user")
				outer = zerr.With(outer, "user_id", "12345")
				return outer
			}(),
			want: "Error: failed to fetch user\n\n" +
				"  Caused by:\n" +
				"    → database timeout",
		},
		{
			name: "simple standard error",
			err:  errors.New("simple"),
			want: "Error: simple",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			messages := logger.CollectErrorMessages(tt.err)
			got := logger.FormatErrorChain(messages)
			assert.Equal(t, tt.want, got)
		})
	}
}
