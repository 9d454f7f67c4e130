package runner

import "github.com/milk9111/runner/component"

// PoseAtlas is an ordered set of pose regions on the runner sheet. It is
// immutable once built.
type PoseAtlas struct {
	poses []component.Rect
}

// NewPoseAtlas copies poses into a new atlas.
func NewPoseAtlas(poses ...component.Rect) PoseAtlas {
	return PoseAtlas{poses: append([]component.Rect(nil), poses...)}
}

// DefaultPoseAtlas is the 5x2 grid of ten running poses on runner.png.
func DefaultPoseAtlas() PoseAtlas {
	return NewPoseAtlas(
		component.Rect{X: 0.0, Y: 0.0, W: 0.2, H: 0.5},
		component.Rect{X: 0.2, Y: 0.0, W: 0.2, H: 0.5},
		component.Rect{X: 0.4, Y: 0.0, W: 0.2, H: 0.5},
		component.Rect{X: 0.6, Y: 0.0, W: 0.2, H: 0.5},
		component.Rect{X: 0.8, Y: 0.0, W: 0.2, H: 0.5},
		component.Rect{X: 0.0, Y: 0.55, W: 0.2, H: 0.5},
		component.Rect{X: 0.2, Y: 0.55, W: 0.2, H: 0.5},
		component.Rect{X: 0.4, Y: 0.55, W: 0.2, H: 0.5},
		component.Rect{X: 0.6, Y: 0.55, W: 0.2, H: 0.5},
		component.Rect{X: 0.8, Y: 0.55, W: 0.2, H: 0.5},
	)
}

func (a PoseAtlas) Len() int {
	return len(a.poses)
}

// Pose returns the region for pose i. Out-of-range indices return an empty
// rect.
func (a PoseAtlas) Pose(i int) component.Rect {
	if i < 0 || i >= len(a.poses) {
		return component.Rect{}
	}
	return a.poses[i]
}
