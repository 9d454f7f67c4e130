package runner

// State is the runner's mutable simulation state.
type State struct {
	// Position is the runner's horizontal screen position. It is unbounded.
	Position float64
	// Pose indexes the PoseAtlas and always stays in [0, atlas length).
	Pose int
}
