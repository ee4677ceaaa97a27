package defs

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultEnemyDefinitions(t *testing.T) {
	lib, err := DefaultEnemyDefinitions()
	if err != nil {
		t.Fatalf("Failed to load embedded definitions: %v", err)
	}
	if len(lib) != 3 {
		t.Errorf("Expected 3 enemies, got %d", len(lib))
	}

	hopper, ok := lib["ENEMY_HOPPER"]
	if !ok {
		t.Fatal("hopper definition missing")
	}
	if hopper.Hop == nil || len(hopper.Hop.HeightCurve) != 3 {
		t.Errorf("hopper hop section not parsed: %+v", hopper.Hop)
	}
	if lib["ENEMY_WALKER"].Hop != nil {
		t.Error("walker must not hop")
	}
	if got := lib["ENEMY_RUNNER"].Visuals.GlyphRune(); got != 'r' {
		t.Errorf("runner glyph = %c", got)
	}
}

func TestEveryWaveReferencesKnownEnemy(t *testing.T) {
	lib, err := DefaultEnemyDefinitions()
	if err != nil {
		t.Fatal(err)
	}
	for n, wave := range WavePatterns {
		if _, ok := lib[wave.EnemyID]; !ok {
			t.Errorf("wave %d references unknown enemy %q", n, wave.EnemyID)
		}
		if wave.Count <= 0 || wave.SpawnInterval <= 0 {
			t.Errorf("wave %d has empty parameters", n)
		}
	}
}

func TestWaveForCycles(t *testing.T) {
	total := len(WavePatterns)
	first := WaveFor(1)
	again := WaveFor(total + 1)
	if again.EnemyID != first.EnemyID {
		t.Errorf("cycle restarted with %q, want %q", again.EnemyID, first.EnemyID)
	}
	if again.Count <= first.Count {
		t.Errorf("second cycle count %d should exceed %d", again.Count, first.Count)
	}
	if WaveFor(0) != first {
		t.Error("wave numbers below 1 should map to the first wave")
	}
}

func TestLoadEnemyDefinitions(t *testing.T) {
	dir := t.TempDir()

	tests := []struct {
		name    string
		content string
		wantErr bool
	}{
		{"valid", `[{"id":"A","scale":{"min":1,"max":1},"speed":{"min":1,"max":2}}]`, false},
		{"bad json", `[{`, true},
		{"missing id", `[{"scale":{"min":1,"max":1}}]`, true},
		{"offset outside tile", `[{"id":"A","scale":{"min":1,"max":1},"path_offset":{"min":-0.5,"max":0}}]`, true},
		{"duplicate", `[{"id":"A","scale":{"min":1,"max":1},"speed":{"min":1,"max":1}},{"id":"A","scale":{"min":1,"max":1},"speed":{"min":1,"max":1}}]`, true},
		{"inverted offset", `[{"id":"A","scale":{"min":1,"max":1},"speed":{"min":1,"max":1},"path_offset":{"min":0.7,"max":0.1}}]`, true},
		{"inverted speed", `[{"id":"A","scale":{"min":1,"max":1},"speed":{"min":2,"max":1}}]`, true},
		{"inverted hop height", `[{"id":"A","scale":{"min":1,"max":1},"speed":{"min":1,"max":1},"hop":{"height":{"min":0.5,"max":0.1}}}]`, true},
		{"zero speed", `[{"id":"A","scale":{"min":1,"max":1},"speed":{"min":0,"max":1}}]`, true},
		{"zero scale", `[{"id":"A","scale":{"min":0,"max":1},"speed":{"min":1,"max":1}}]`, true},
	}
	for _, tt := range tests {
		path := filepath.Join(dir, tt.name+".json")
		if err := os.WriteFile(path, []byte(tt.content), 0o644); err != nil {
			t.Fatal(err)
		}
		lib, err := LoadEnemyDefinitions(path)
		if tt.wantErr && err == nil {
			t.Errorf("%s: expected error", tt.name)
		}
		if !tt.wantErr && (err != nil || len(lib) != 1) {
			t.Errorf("%s: unexpected result %v, %v", tt.name, lib, err)
		}
	}

	if _, err := LoadEnemyDefinitions(filepath.Join(dir, "missing.json")); err == nil {
		t.Error("expected error for missing file")
	}
}
