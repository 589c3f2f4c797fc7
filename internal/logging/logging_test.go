package logging

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/Phil12992/Casino2.0/internal/config"
)

func TestInitParsesLevel(t *testing.T) {
	Init(config.LogConfig{Level: "warn"})
	if zerolog.GlobalLevel() != zerolog.WarnLevel {
		t.Fatalf("global level = %v, want warn", zerolog.GlobalLevel())
	}

	Init(config.LogConfig{Level: "not-a-level"})
	if zerolog.GlobalLevel() != zerolog.InfoLevel {
		t.Fatalf("global level = %v, want info fallback", zerolog.GlobalLevel())
	}
}

func TestInitFileSink(t *testing.T) {
	path := filepath.Join(t.TempDir(), "casino.log")
	Init(config.LogConfig{Level: "info", File: path, MaxMB: 1})

	log.Info().Str("game", "dice").Msg("play applied")

	info, err := os.Stat(path)
	if err != nil {
		t.Fatalf("stat log file: %v", err)
	}
	if info.Size() == 0 {
		t.Fatal("expected log output in file sink")
	}
	if Writer() == os.Stdout {
		t.Fatal("Writer() should return the file sink")
	}
}
