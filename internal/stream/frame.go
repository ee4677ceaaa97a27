package stream

// Frame is one simulation tick as seen by pose sinks.
type Frame struct {
	Tick    uint64       `json:"tick"`
	Time    float64      `json:"time"`
	Wave    int          `json:"wave"`
	Enemies []EnemyFrame `json:"enemies"`
}

// EnemyFrame is the pose of one enemy, model position already resolved.
type EnemyFrame struct {
	ID      string  `json:"id"`
	Kind    string  `json:"kind"`
	X       float64 `json:"x"`
	Y       float64 `json:"y"`
	Z       float64 `json:"z"`
	Yaw     float64 `json:"yaw"`
	Scale   float64 `json:"scale"`
	Resting bool    `json:"resting,omitempty"`
}
