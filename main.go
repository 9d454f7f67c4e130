// runner is a small side-scrolling runner: a row of ground tiles and a
// runner sprite cycling through its running poses while it moves left and
// right.
//
// Usage:
//
//	runner [--resources dir] [--prefabs dir] [--watch] [--debug] [--monitor]
//
// Controls: Left/A and Right/D, or the first gamepad's left stick.
package main

import (
	"os"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/spf13/cobra"

	"github.com/milk9111/runner/assets"
	"github.com/milk9111/runner/prefabs"
)

var (
	flagResources string
	flagPrefabs   string
	flagWatch     bool
	flagDebug     bool
	flagMonitor   bool
)

var logger = log.NewWithOptions(os.Stderr, log.Options{
	Prefix:          "runner",
	ReportTimestamp: true,
})

func main() {
	if err := rootCmd.Execute(); err != nil {
		logger.Error("exiting", "err", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "runner",
	Short: "Rusty Runner - a side-scrolling runner animation",
	Long: `Runner draws a row of ground tiles and a runner that cycles through
its running poses. Hold Right/D to run right and Left/A to drift left.

Sprite sheets are read from the resource directory when present there and
from the embedded copies otherwise. The resource directory defaults to
$` + assets.ResourceEnv + ` or ./resources.

Examples:
  runner
  runner --resources ./my-sheets
  runner --prefabs ./prefabs --watch --debug`,
	Args:          cobra.NoArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runGame,
}

func init() {
	rootCmd.Flags().StringVar(&flagResources, "resources", assets.DefaultResourceDir(), "Directory checked for sprite sheets before the embedded ones")
	rootCmd.Flags().StringVar(&flagPrefabs, "prefabs", prefabs.DefaultDir, "Directory checked for runner.yaml/ground.yaml before the embedded ones")
	rootCmd.Flags().BoolVar(&flagWatch, "watch", false, "Reload prefabs when they change on disk")
	rootCmd.Flags().BoolVar(&flagDebug, "debug", false, "Enable debug logging and the on-screen overlay")
	rootCmd.Flags().BoolVar(&flagMonitor, "monitor", false, "Use the base monitor instead of the primary one")
}

func runGame(cmd *cobra.Command, args []string) error {
	if flagDebug {
		logger.SetLevel(log.DebugLevel)
	}

	assets.SetResourceDir(flagResources)
	prefabs.SetDir(flagPrefabs)

	game, err := NewGame(Options{
		Watch:  flagWatch,
		Debug:  flagDebug,
		Logger: logger,
	})
	if err != nil {
		return err
	}
	defer game.Close()

	if flagMonitor {
		if monitors := ebiten.AppendMonitors(nil); len(monitors) > 0 {
			ebiten.SetMonitor(monitors[0])
		}
	}

	ebiten.SetWindowSize(baseWidth, baseHeight)
	ebiten.SetWindowTitle("Rusty Runner")

	logger.Info("starting", "resources", flagResources, "prefabs", flagPrefabs, "watch", flagWatch)
	return ebiten.RunGame(game)
}
