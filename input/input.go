package input

import (
	"math"

	"github.com/hajimehoshi/ebiten/v2"
)

// StickDeadzone is how far the left stick must travel before it counts as a
// held direction.
const StickDeadzone = 0.2

// Snapshot is the movement input held during one tick.
type Snapshot struct {
	Left  bool
	Right bool
}

// Source answers key and gamepad queries. Ebiten is the production source;
// tests substitute their own.
type Source interface {
	IsKeyPressed(key ebiten.Key) bool
	// StickX returns the horizontal left-stick value of the first connected
	// gamepad, or ok=false when none is connected.
	StickX() (x float64, ok bool)
}

var (
	leftKeys  = []ebiten.Key{ebiten.KeyArrowLeft, ebiten.KeyA}
	rightKeys = []ebiten.Key{ebiten.KeyArrowRight, ebiten.KeyD}
)

// Poll reads the current movement input from src.
func Poll(src Source) Snapshot {
	if src == nil {
		return Snapshot{}
	}

	s := Snapshot{
		Left:  anyPressed(src, leftKeys),
		Right: anyPressed(src, rightKeys),
	}

	if x, ok := src.StickX(); ok && math.Abs(x) > StickDeadzone {
		s.Left = s.Left || x < 0
		s.Right = s.Right || x > 0
	}

	return s
}

func anyPressed(src Source, keys []ebiten.Key) bool {
	for _, k := range keys {
		if src.IsKeyPressed(k) {
			return true
		}
	}
	return false
}

// Ebiten returns a Source backed by ebiten's global input state.
func Ebiten() Source {
	return ebitenSource{}
}

type ebitenSource struct{}

func (ebitenSource) IsKeyPressed(key ebiten.Key) bool {
	return ebiten.IsKeyPressed(key)
}

func (ebitenSource) StickX() (float64, bool) {
	gamepads := ebiten.AppendGamepadIDs(nil)
	if len(gamepads) == 0 {
		return 0, false
	}
	id := gamepads[0]
	if !ebiten.IsStandardGamepadLayoutAvailable(id) {
		return 0, false
	}
	return ebiten.StandardGamepadAxisValue(id, ebiten.StandardGamepadAxisLeftStickHorizontal), true
}
