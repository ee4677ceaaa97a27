// internal/component/wave.go
package component

// Wave — компонент для волны врагов
type Wave struct {
	Number         int     // Номер волны
	EnemyID        string  // ID врага для этой волны
	EnemiesToSpawn int     // Сколько врагов осталось спавнить
	SpawnTimer     float64 // Таймер спавна
	SpawnInterval  float64 // Интервал между спавнами (в секундах)
	Spawned        int
	Ended          bool
}
