// internal/config/settings.go
package config

import (
	"fmt"
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Settings are the runtime options read from the environment.
type Settings struct {
	BoardWidth  int
	BoardHeight int

	// Seed for the simulation PRNG. 0 means a time based seed.
	Seed int64

	// EnemyDefsPath overrides the embedded enemy definitions when set.
	EnemyDefsPath string

	// StreamAddr enables the websocket pose stream, e.g. ":8089".
	StreamAddr string

	Telemetry bool
	// TraceSampleRatio is the share of root spans kept, in (0, 1].
	TraceSampleRatio float64
}

// Defaults returns the settings used when nothing is configured.
func Defaults() Settings {
	return Settings{
		BoardWidth:  DefaultBoardWidth,
		BoardHeight: DefaultBoardHeight,

		TraceSampleRatio: 1,
	}
}

// Load reads an optional .env file and then the TD_* environment variables.
func Load() (Settings, error) {
	if err := godotenv.Load(); err != nil {
		// Not fatal, the variables may be set directly.
		log.Printf("Note: .env file not loaded: %v", err)
	}
	return FromEnv(os.LookupEnv)
}

// FromEnv builds settings from a lookup function such as os.LookupEnv.
func FromEnv(lookup func(string) (string, bool)) (Settings, error) {
	s := Defaults()
	var err error

	if s.BoardWidth, err = intVar(lookup, "TD_BOARD_WIDTH", s.BoardWidth); err != nil {
		return s, err
	}
	if s.BoardHeight, err = intVar(lookup, "TD_BOARD_HEIGHT", s.BoardHeight); err != nil {
		return s, err
	}
	if s.BoardWidth <= 0 || s.BoardHeight <= 0 {
		return s, fmt.Errorf("board size must be positive, got %dx%d", s.BoardWidth, s.BoardHeight)
	}

	if v, ok := lookup("TD_SEED"); ok && v != "" {
		if s.Seed, err = strconv.ParseInt(v, 10, 64); err != nil {
			return s, fmt.Errorf("TD_SEED: %w", err)
		}
	}
	if v, ok := lookup("TD_ENEMY_DEFS"); ok {
		s.EnemyDefsPath = v
	}
	if v, ok := lookup("TD_STREAM_ADDR"); ok {
		s.StreamAddr = v
	}
	if v, ok := lookup("TD_TELEMETRY"); ok && v != "" {
		if s.Telemetry, err = strconv.ParseBool(v); err != nil {
			return s, fmt.Errorf("TD_TELEMETRY: %w", err)
		}
	}
	if v, ok := lookup("TD_TRACE_RATIO"); ok && v != "" {
		if s.TraceSampleRatio, err = strconv.ParseFloat(v, 64); err != nil {
			return s, fmt.Errorf("TD_TRACE_RATIO: %w", err)
		}
		if s.TraceSampleRatio <= 0 || s.TraceSampleRatio > 1 {
			return s, fmt.Errorf("TD_TRACE_RATIO must be in (0, 1], got %g", s.TraceSampleRatio)
		}
	}
	return s, nil
}

func intVar(lookup func(string) (string, bool), name string, def int) (int, error) {
	v, ok := lookup(name)
	if !ok || v == "" {
		return def, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return def, fmt.Errorf("%s: %w", name, err)
	}
	return n, nil
}
