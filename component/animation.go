package component

import "time"

// Animation advances a frame index at a fixed rate measured against elapsed
// wall-clock time. Frames are indexed [0, FrameCount).
type Animation struct {
	FrameCount int
	FPS        int
	Loop       bool

	current int
	acc     time.Duration
}

// NewAnimation creates an Animation over `frameCount` frames. `fps` is frames
// per second (defaults to 12 if <= 0). `loop` controls whether the animation
// wraps back to frame 0 or holds on the last frame.
func NewAnimation(frameCount, fps int, loop bool) *Animation {
	if fps <= 0 {
		fps = 12
	}
	if frameCount < 0 {
		frameCount = 0
	}
	return &Animation{
		FrameCount: frameCount,
		FPS:        fps,
		Loop:       loop,
	}
}

// Period returns how long a single frame stays current.
func (a *Animation) Period() time.Duration {
	if a == nil || a.FPS <= 0 {
		return 0
	}
	return time.Second / time.Duration(a.FPS)
}

// Update adds elapsed to the accumulator and advances one frame every time the
// accumulator crosses the frame period. It returns the number of advances.
func (a *Animation) Update(elapsed time.Duration) int {
	if a == nil || a.FrameCount <= 0 || elapsed <= 0 {
		return 0
	}
	period := a.Period()
	if period <= 0 {
		return 0
	}

	a.acc += elapsed
	advances := 0
	for a.acc >= period {
		a.acc -= period
		a.step()
		advances++
	}
	return advances
}

func (a *Animation) step() {
	a.current++
	if a.current >= a.FrameCount {
		if a.Loop {
			a.current = 0
		} else {
			a.current = a.FrameCount - 1
		}
	}
}

// Frame returns the current frame index.
func (a *Animation) Frame() int {
	if a == nil {
		return 0
	}
	return a.current
}

// Resize changes the frame count. The current frame wraps into the new range
// and accumulated time is kept.
func (a *Animation) Resize(frameCount, fps int) {
	if a == nil {
		return
	}
	if frameCount < 0 {
		frameCount = 0
	}
	if fps > 0 {
		a.FPS = fps
	}
	a.FrameCount = frameCount
	if frameCount == 0 {
		a.current = 0
		return
	}
	a.current %= frameCount
}
