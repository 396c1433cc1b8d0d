package logger

import (
	"bytes"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
)

func TestNew_WritesToOutput(t *testing.T) {
	var buf bytes.Buffer
	l := New(Config{Level: "info", Output: &buf})

	l.Info().Int("sector", 3).Msg("spin accepted")

	assert.Contains(t, buf.String(), "spin accepted")
	assert.Contains(t, buf.String(), `"sector":3`)
}

func TestNew_Levels(t *testing.T) {
	testCases := []struct {
		level    string
		expected zerolog.Level
	}{
		{"debug", zerolog.DebugLevel},
		{"info", zerolog.InfoLevel},
		{"warn", zerolog.WarnLevel},
		{"error", zerolog.ErrorLevel},
		{"verbose", zerolog.InfoLevel},
	}

	for _, tc := range testCases {
		t.Run(tc.level, func(t *testing.T) {
			New(Config{Level: tc.level})
			assert.Equal(t, tc.expected, zerolog.GlobalLevel())
		})
	}
}

func TestNew_NilOutputDiscards(t *testing.T) {
	l := New(Config{Level: "debug"})
	assert.NotPanics(t, func() {
		l.Debug().Msg("nowhere")
	})
}

func TestNew_Pretty(t *testing.T) {
	var buf bytes.Buffer
	l := New(Config{Level: "info", Pretty: true, Output: &buf})

	l.Info().Msg("wheel ready")

	assert.Contains(t, buf.String(), "wheel ready")
	assert.NotContains(t, buf.String(), `"message"`)
}
