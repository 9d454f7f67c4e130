package render

import (
	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/runner/runner"
)

// Renderer executes runner draw commands against the ebiten screen.
type Renderer struct {
	logger  *log.Logger
	missing map[string]bool

	// Frames counts presented frames.
	Frames int
}

func NewRenderer(logger *log.Logger) *Renderer {
	if logger == nil {
		logger = log.Default()
	}
	return &Renderer{
		logger:  logger,
		missing: make(map[string]bool),
	}
}

// Execute draws cmds in order onto screen. Commands naming an unregistered
// sheet are skipped and logged once per sheet.
func (r *Renderer) Execute(screen *ebiten.Image, cmds []runner.DrawCommand) {
	if r == nil || screen == nil {
		return
	}

	for _, cmd := range cmds {
		switch cmd.Kind {
		case runner.CommandClear:
			if cmd.Color != nil {
				screen.Fill(cmd.Color)
			} else {
				screen.Clear()
			}
		case runner.CommandTile, runner.CommandSprite:
			r.drawRegion(screen, cmd)
		case runner.CommandPresent:
			// ebiten presents the screen once Draw returns.
			r.Frames++
		}
	}
}

func (r *Renderer) drawRegion(screen *ebiten.Image, cmd runner.DrawCommand) {
	sheet := GetImage(cmd.Sheet)
	if sheet == nil {
		if !r.missing[cmd.Sheet] {
			r.missing[cmd.Sheet] = true
			r.logger.Warn("skipping draw for unloaded sheet", "sheet", cmd.Sheet, "kind", cmd.Kind)
		}
		return
	}

	src := cmd.Source.Pixels(sheet.Bounds())
	if src.Empty() {
		return
	}

	img := sheet
	if !src.Eq(sheet.Bounds()) {
		sub, ok := sheet.SubImage(src).(*ebiten.Image)
		if !ok {
			return
		}
		img = sub
	}

	op := &ebiten.DrawImageOptions{}
	op.GeoM = placement(cmd)
	op.Filter = ebiten.FilterLinear
	screen.DrawImage(img, op)
}

// placement scales a region by cmd.ScaleX/ScaleY and puts its top-left corner
// at (cmd.X, cmd.Y). A zero scale means 1.
func placement(cmd runner.DrawCommand) ebiten.GeoM {
	var g ebiten.GeoM
	sx, sy := cmd.ScaleX, cmd.ScaleY
	if sx == 0 {
		sx = 1
	}
	if sy == 0 {
		sy = 1
	}
	g.Scale(sx, sy)
	g.Translate(cmd.X, cmd.Y)
	return g
}
