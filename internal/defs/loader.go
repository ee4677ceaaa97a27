// internal/defs/loader.go
package defs

import (
	"encoding/json"
	"fmt"
	"log"
	"os"
	"sort"

	"github.com/Addison-Dalton/towder-defense-practice/internal/utils"
)

// EnemyLibrary holds enemy definitions keyed by their ID.
type EnemyLibrary map[string]EnemyDefinition

// IDs returns the definition IDs in sorted order.
func (l EnemyLibrary) IDs() []string {
	ids := make([]string, 0, len(l))
	for id := range l {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// DefaultEnemyDefinitions returns the definitions embedded in the binary.
func DefaultEnemyDefinitions() (EnemyLibrary, error) {
	content, err := dataFS.ReadFile("enemies.json")
	if err != nil {
		return nil, fmt.Errorf("failed to read embedded enemy definitions: %w", err)
	}
	return parseEnemyDefinitions(content)
}

// LoadEnemyDefinitions reads enemy definitions from a JSON file.
func LoadEnemyDefinitions(path string) (EnemyLibrary, error) {
	file, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read enemy definitions file: %w", err)
	}
	lib, err := parseEnemyDefinitions(file)
	if err != nil {
		return nil, err
	}
	log.Printf("Loaded %d enemy definitions from %s", len(lib), path)
	return lib, nil
}

func parseEnemyDefinitions(content []byte) (EnemyLibrary, error) {
	var enemyDefs []EnemyDefinition
	if err := json.Unmarshal(content, &enemyDefs); err != nil {
		return nil, fmt.Errorf("failed to unmarshal enemy definitions: %w", err)
	}

	lib := make(EnemyLibrary, len(enemyDefs))
	for _, def := range enemyDefs {
		if err := def.validate(); err != nil {
			return nil, err
		}
		if _, dup := lib[def.ID]; dup {
			return nil, fmt.Errorf("duplicate enemy definition %q", def.ID)
		}
		lib[def.ID] = def
	}
	return lib, nil
}

type namedRange struct {
	name string
	r    utils.FloatRange
}

func (d EnemyDefinition) validate() error {
	if d.ID == "" {
		return fmt.Errorf("enemy definition without id")
	}
	ranges := []namedRange{
		{"scale", d.Scale},
		{"speed", d.Speed},
		{"path_offset", d.PathOffset},
	}
	if d.Hop != nil {
		ranges = append(ranges,
			namedRange{"hop.height", d.Hop.Height},
			namedRange{"hop.delay", d.Hop.Delay},
			namedRange{"hop.landing_accuracy", d.Hop.LandingAccuracy},
		)
	}
	for _, rg := range ranges {
		if rg.r.Min > rg.r.Max {
			return fmt.Errorf("enemy %q: %s min %g is above max %g", d.ID, rg.name, rg.r.Min, rg.r.Max)
		}
	}

	if d.PathOffset.Min <= -0.5 || d.PathOffset.Max >= 0.5 {
		return fmt.Errorf("enemy %q: path offset must stay within (-0.5, 0.5)", d.ID)
	}
	// Стоящий враг никогда не дойдёт, и волна не закончится.
	if d.Speed.Min <= 0 {
		return fmt.Errorf("enemy %q: speed must be positive", d.ID)
	}
	if d.Scale.Min <= 0 {
		return fmt.Errorf("enemy %q: scale must be positive", d.ID)
	}
	if d.Hop != nil && (d.Hop.Delay.Min < 0 || d.Hop.Height.Min < 0) {
		return fmt.Errorf("enemy %q: negative hop delay or height", d.ID)
	}
	return nil
}
