package logging

import (
	"bytes"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func restoreGlobals(t *testing.T) {
	t.Helper()
	level, logger := zerolog.GlobalLevel(), log.Logger
	t.Cleanup(func() {
		zerolog.SetGlobalLevel(level)
		log.Logger = logger
	})
}

func TestLevelFromEnv(t *testing.T) {
	tests := []struct {
		env  string
		want zerolog.Level
	}{
		{"", zerolog.InfoLevel},
		{"debug", zerolog.DebugLevel},
		{"warn", zerolog.WarnLevel},
		{"error", zerolog.ErrorLevel},
		{"loud", zerolog.InfoLevel},
	}
	for _, tt := range tests {
		t.Run(tt.env, func(t *testing.T) {
			t.Setenv("ASSETPREP_LOG_LEVEL", tt.env)
			if got := levelFromEnv(); got != tt.want {
				t.Errorf("got %v, want %v", got, tt.want)
			}
		})
	}
}

func TestInit_EnvLevelFiltersOutput(t *testing.T) {
	restoreGlobals(t)
	t.Setenv("ASSETPREP_LOG_LEVEL", "warn")

	var buf bytes.Buffer
	Init(&buf, false)
	log.Info().Msg("progress line")
	log.Warn().Msg("directory missing")

	out := buf.String()
	if strings.Contains(out, "progress line") {
		t.Errorf("info line written at warn level:\n%s", out)
	}
	if !strings.Contains(out, "directory missing") {
		t.Errorf("warn line not written:\n%s", out)
	}
}

func TestInit_VerboseOverridesEnv(t *testing.T) {
	restoreGlobals(t)
	t.Setenv("ASSETPREP_LOG_LEVEL", "error")

	var buf bytes.Buffer
	Init(&buf, true)
	if got := zerolog.GlobalLevel(); got != zerolog.DebugLevel {
		t.Fatalf("global level: got %v, want debug", got)
	}
	log.Debug().Msg("chosen font")
	if !strings.Contains(buf.String(), "chosen font") {
		t.Errorf("debug line not written:\n%s", buf.String())
	}
}
