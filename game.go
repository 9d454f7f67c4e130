package main

import (
	"fmt"
	"image"
	"time"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"

	"github.com/milk9111/runner/assets"
	"github.com/milk9111/runner/input"
	"github.com/milk9111/runner/prefabs"
	"github.com/milk9111/runner/render"
	"github.com/milk9111/runner/runner"
)

const (
	baseWidth  = 800
	baseHeight = 600
)

type Options struct {
	Watch  bool
	Debug  bool
	Logger *log.Logger
}

type Game struct {
	debug bool

	input    input.Source
	runner   *runner.Runner
	renderer *render.Renderer
	watcher  *prefabs.Watcher
	logger   *log.Logger

	decodeSheet    render.DecodeFunc
	registerSheets func(map[string]image.Image)
}

// NewGame loads the prefabs and both sprite sheets. Any failure here is
// fatal to the caller.
func NewGame(opts Options) (*Game, error) {
	logger := opts.Logger
	if logger == nil {
		logger = log.Default()
	}

	g := &Game{
		debug:          opts.Debug,
		input:          input.Ebiten(),
		renderer:       render.NewRenderer(logger),
		logger:         logger,
		decodeSheet:    assets.DecodeImage,
		registerSheets: render.RegisterSheets,
	}

	cfg, err := g.loadConfig()
	if err != nil {
		return nil, err
	}
	g.runner = runner.New(cfg)

	if opts.Watch {
		w, err := prefabs.NewWatcher(prefabs.Dir())
		if err != nil {
			return nil, fmt.Errorf("watch prefabs %s: %w", prefabs.Dir(), err)
		}
		g.watcher = w
		logger.Debug("watching prefabs", "dir", prefabs.Dir())
	}

	return g, nil
}

// loadConfig reads the prefabs and their sheets. Sheets are registered only
// once every one of them decoded, so a failure changes nothing.
func (g *Game) loadConfig() (runner.Config, error) {
	cfg, err := runner.LoadConfig()
	if err != nil {
		return runner.Config{}, err
	}
	sheets, err := render.DecodeSheets(g.decodeSheet, cfg.GroundSheet, cfg.RunnerSheet)
	if err != nil {
		return runner.Config{}, err
	}
	g.registerSheets(sheets)
	return cfg, nil
}

func (g *Game) Update() error {
	g.reload()
	g.runner.Tick(tickDuration(ebiten.TPS(), ebiten.ActualFPS()), input.Poll(g.input))

	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.renderer.Execute(screen, g.runner.Draw())

	if g.debug {
		s := g.runner.State()
		ebitenutil.DebugPrint(screen, fmt.Sprintf("Frames: %d    FPS: %.2f    x: %.1f    pose: %d", g.renderer.Frames, ebiten.ActualFPS(), s.Position, s.Pose))
	}
}

func (g *Game) LayoutF(outsideWidth, outsideHeight float64) (float64, float64) {
	return baseWidth, baseHeight
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	panic("shouldn't use Layout")
}

// Close stops the prefab watcher, if any.
func (g *Game) Close() error {
	if g == nil || g.watcher == nil {
		return nil
	}
	return g.watcher.Close()
}

// reload applies prefab edits picked up by the watcher. A broken edit or
// sheet keeps the running config and sheets.
func (g *Game) reload() {
	names, err := g.watcher.Drain()
	if err != nil {
		g.logger.Warn("prefab watcher error", "err", err)
	}
	if len(names) == 0 {
		return
	}

	cfg, err := g.loadConfig()
	if err != nil {
		g.logger.Error("prefab reload failed, keeping previous config", "files", names, "err", err)
		return
	}

	g.runner.Apply(cfg)
	g.logger.Info("prefabs reloaded", "files", names, "poses", cfg.Atlas.Len(), "tiles", cfg.Ground.Placed())
}

// tickDuration is the simulated time one Update covers. A non-positive tps
// means SyncWithFPS: one Update per rendered frame.
func tickDuration(tps int, fps float64) time.Duration {
	if tps <= 0 {
		if fps > 0 {
			return time.Duration(float64(time.Second) / fps)
		}
		tps = ebiten.DefaultTPS
	}
	return time.Second / time.Duration(tps)
}
