package runner

import (
	"image/color"

	"github.com/milk9111/runner/component"
)

type CommandKind int

const (
	// CommandClear fills the frame with Color.
	CommandClear CommandKind = iota
	// CommandTile places the whole ground sheet.
	CommandTile
	// CommandSprite places a clipped region of the runner sheet.
	CommandSprite
	// CommandPresent ends the frame.
	CommandPresent
)

func (k CommandKind) String() string {
	switch k {
	case CommandClear:
		return "clear"
	case CommandTile:
		return "tile"
	case CommandSprite:
		return "sprite"
	case CommandPresent:
		return "present"
	default:
		return "unknown"
	}
}

// DrawCommand describes one step of rendering a frame. Sheet names the image
// (as loaded by the renderer) that Source is cut from.
type DrawCommand struct {
	Kind   CommandKind
	Sheet  string
	Source component.Rect
	X, Y   float64
	ScaleX float64
	ScaleY float64
	Color  color.Color
}
