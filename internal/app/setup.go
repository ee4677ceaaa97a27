package app

import (
	"github.com/Addison-Dalton/towder-defense-practice/internal/config"
	"github.com/Addison-Dalton/towder-defense-practice/internal/defs"
)

// LoadLibrary returns the embedded enemy definitions, or the file named in
// settings when one is configured.
func LoadLibrary(settings config.Settings) (defs.EnemyLibrary, error) {
	if settings.EnemyDefsPath != "" {
		return defs.LoadEnemyDefinitions(settings.EnemyDefsPath)
	}
	return defs.DefaultEnemyDefinitions()
}
