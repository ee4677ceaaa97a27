// internal/event/types.go
package event

import "github.com/Addison-Dalton/towder-defense-practice/pkg/tilemap"

const (
	EnemySpawned            EventType = "EnemySpawned"            // Враг появился, Data: EnemyPayload
	EnemyReachedDestination EventType = "EnemyReachedDestination" // Враг дошёл до цели, Data: EnemyPayload
	ContentChanged          EventType = "ContentChanged"          // Data: ContentPayload
	PathsRecomputed         EventType = "PathsRecomputed"         // Data: tilemap.PathStats
	WaveStarted             EventType = "WaveStarted"             // Data: WavePayload
	WaveEnded               EventType = "WaveEnded"               // Волна закончилась, Data: WavePayload
)

// EnemyPayload identifies an enemy in spawn and arrival events.
type EnemyPayload struct {
	ID   string
	Kind string
	Tile tilemap.Coord
}

// ContentPayload describes a tile whose content was replaced.
type ContentPayload struct {
	Tile tilemap.Coord
	From tilemap.ContentType
	To   tilemap.ContentType
}

type WavePayload struct {
	Number  int
	EnemyID string
	Count   int
}
