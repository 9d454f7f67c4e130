package main

import (
	"bytes"
	"image"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/milk9111/runner/assets"
	"github.com/milk9111/runner/input"
	"github.com/milk9111/runner/prefabs"
	"github.com/milk9111/runner/runner"
)

type testGame struct {
	*Game
	prefabDir   string
	resourceDir string
	registered  map[string]image.Image
	logs        *bytes.Buffer
}

// newTestGame builds a Game over temp prefab and resource dirs with a
// hand-fed watcher. Registered sheets are recorded instead of uploaded.
func newTestGame(t *testing.T) *testGame {
	t.Helper()

	tg := &testGame{
		prefabDir:   t.TempDir(),
		resourceDir: t.TempDir(),
		registered:  make(map[string]image.Image),
		logs:        &bytes.Buffer{},
	}

	prevPrefabs, prevResources := prefabs.Dir(), assets.ResourceDir()
	prefabs.SetDir(tg.prefabDir)
	assets.SetResourceDir(tg.resourceDir)
	t.Cleanup(func() {
		prefabs.SetDir(prevPrefabs)
		assets.SetResourceDir(prevResources)
	})

	for _, name := range []string{prefabs.RunnerFile, prefabs.GroundFile} {
		data, err := prefabs.PrefabsFS.ReadFile(name)
		if err != nil {
			t.Fatalf("read embedded %s: %v", name, err)
		}
		tg.writePrefab(t, name, string(data))
	}

	tg.Game = &Game{
		watcher:     &prefabs.Watcher{Events: make(chan string, 8), Errors: make(chan error, 1)},
		logger:      log.New(tg.logs),
		decodeSheet: assets.DecodeImage,
		registerSheets: func(sheets map[string]image.Image) {
			for p, img := range sheets {
				tg.registered[p] = img
			}
		},
	}

	cfg, err := tg.loadConfig()
	if err != nil {
		t.Fatalf("initial load: %v", err)
	}
	tg.runner = runner.New(cfg)
	return tg
}

func (tg *testGame) writePrefab(t *testing.T, name, data string) {
	t.Helper()
	if err := os.WriteFile(filepath.Join(tg.prefabDir, name), []byte(data), 0o644); err != nil {
		t.Fatalf("write %s: %v", name, err)
	}
}

func (tg *testGame) writeSheet(t *testing.T, name string, w, h int) {
	t.Helper()
	var buf bytes.Buffer
	if err := png.Encode(&buf, image.NewNRGBA(image.Rect(0, 0, w, h))); err != nil {
		t.Fatalf("encode: %v", err)
	}
	if err := os.WriteFile(filepath.Join(tg.resourceDir, name), buf.Bytes(), 0o644); err != nil {
		t.Fatalf("write %s: %v", name, err)
	}
}

func (tg *testGame) notify(name string) {
	tg.watcher.Events <- filepath.Join(tg.prefabDir, name)
}

func sheetSize(img image.Image) (int, int) {
	b := img.Bounds()
	return b.Dx(), b.Dy()
}

const threePoseRunner = `sheet: runner.png
right_step: 3
left_step: 1
fps: 5
transform: { x: 0, y: 437, scale_x: 0.22, scale_y: 0.2 }
poses:
  - { x: 0.0, y: 0.0, w: 0.2, h: 0.5 }
  - { x: 0.2, y: 0.0, w: 0.2, h: 0.5 }
  - { x: 0.4, y: 0.0, w: 0.2, h: 0.5 }
`

func TestReloadAppliesChangedPrefabs(t *testing.T) {
	tg := newTestGame(t)
	tg.runner.Tick(100*time.Millisecond, input.Snapshot{Right: true})

	tg.writePrefab(t, prefabs.RunnerFile, threePoseRunner)
	tg.writeSheet(t, "ground.png", 3, 2)
	tg.notify(prefabs.RunnerFile)
	tg.notify(prefabs.RunnerFile)
	tg.reload()

	cfg := tg.runner.Config()
	if cfg.RightStep != 3 || cfg.Atlas.Len() != 3 || cfg.PoseFPS != 5 {
		t.Fatalf("expected reloaded tuning, got step=%v poses=%d fps=%d", cfg.RightStep, cfg.Atlas.Len(), cfg.PoseFPS)
	}
	if s := tg.runner.State(); s.Position != 1 || s.Pose != 1 {
		t.Fatalf("reload should keep state, got %+v", s)
	}
	if w, h := sheetSize(tg.registered["ground.png"]); w != 3 || h != 2 {
		t.Fatalf("expected new ground sheet 3x2, got %dx%d", w, h)
	}
	if n := strings.Count(tg.logs.String(), "prefabs reloaded"); n != 1 {
		t.Fatalf("expected one reload for duplicate events, got %d:\n%s", n, tg.logs.String())
	}

	tg.runner.Tick(200*time.Millisecond, input.Snapshot{Right: true})
	if s := tg.runner.State(); s.Position != 4 || s.Pose != 2 {
		t.Fatalf("expected reloaded step and rate, got %+v", s)
	}
}

func TestReloadFailuresKeepRunningConfig(t *testing.T) {
	cases := []struct {
		name    string
		prefab  string
		newTile bool
	}{
		{"invalid_yaml", "poses: [oops", false},
		{"no_poses", "sheet: runner.png\nfps: 10\n", false},
		{"missing_sheet", strings.Replace(threePoseRunner, "sheet: runner.png", "sheet: missing.png", 1), true},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			tg := newTestGame(t)
			before := tg.runner.Config()

			if c.newTile {
				tg.writeSheet(t, "ground.png", 3, 2)
			}
			tg.writePrefab(t, prefabs.RunnerFile, c.prefab)
			tg.notify(prefabs.RunnerFile)
			tg.reload()

			after := tg.runner.Config()
			if after.RightStep != before.RightStep || after.Atlas.Len() != before.Atlas.Len() || after.RunnerSheet != before.RunnerSheet {
				t.Fatalf("config changed after failed reload: %+v", after)
			}
			if w, h := sheetSize(tg.registered["ground.png"]); w != 150 || h != 150 {
				t.Fatalf("ground sheet replaced by failed reload: %dx%d", w, h)
			}
			if _, ok := tg.registered["missing.png"]; ok {
				t.Fatalf("missing sheet should never be registered")
			}
			if !strings.Contains(tg.logs.String(), "prefab reload failed") {
				t.Fatalf("expected failure to be logged, got:\n%s", tg.logs.String())
			}
		})
	}
}

func TestReloadWithoutEventsIsNoop(t *testing.T) {
	tg := newTestGame(t)
	tg.writePrefab(t, prefabs.RunnerFile, threePoseRunner)
	tg.reload()

	if n := tg.runner.Config().Atlas.Len(); n != 10 {
		t.Fatalf("expected no reload without events, got %d poses", n)
	}
	if tg.logs.Len() != 0 {
		t.Fatalf("expected no log output, got:\n%s", tg.logs.String())
	}
}

func TestTickDuration(t *testing.T) {
	cases := []struct {
		name string
		tps  int
		fps  float64
		want time.Duration
	}{
		{"sixty_tps", 60, 0, time.Second / 60},
		{"thirty_tps_ignores_fps", 30, 144, time.Second / 30},
		{"sync_with_fps", ebiten.SyncWithFPS, 50, 20 * time.Millisecond},
		{"sync_before_first_frame", ebiten.SyncWithFPS, 0, time.Second / ebiten.DefaultTPS},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if got := tickDuration(c.tps, c.fps); got != c.want {
				t.Fatalf("expected %v, got %v", c.want, got)
			}
		})
	}
}
