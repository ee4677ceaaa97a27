package defs

import "time"

// WaveDefinition описывает параметры для одной волны врагов.
type WaveDefinition struct {
	EnemyID       string        // Идентификатор врага из enemies.json
	Count         int           // Количество врагов в волне
	SpawnInterval time.Duration // Интервал между появлением врагов
}

// WavePatterns определяет последовательность волн в игре.
// Ключ карты - это номер волны.
var WavePatterns = map[int]WaveDefinition{
	1: {EnemyID: "ENEMY_WALKER", Count: 5, SpawnInterval: time.Millisecond * 800},
	2: {EnemyID: "ENEMY_WALKER", Count: 8, SpawnInterval: time.Millisecond * 700},
	3: {EnemyID: "ENEMY_HOPPER", Count: 6, SpawnInterval: time.Second * 1},
	4: {EnemyID: "ENEMY_RUNNER", Count: 10, SpawnInterval: time.Millisecond * 500},
	5: {EnemyID: "ENEMY_HOPPER", Count: 12, SpawnInterval: time.Millisecond * 600},
	6: {EnemyID: "ENEMY_RUNNER", Count: 20, SpawnInterval: time.Millisecond * 300},
}

// WaveFor returns the pattern for wave n (1-based). Past the last pattern
// the sequence starts over with a growing enemy count.
func WaveFor(n int) WaveDefinition {
	if n < 1 {
		n = 1
	}
	total := len(WavePatterns)
	cycle := (n - 1) / total
	def := WavePatterns[(n-1)%total+1]
	def.Count += def.Count * cycle / 2
	return def
}
