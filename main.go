package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/carpark/logging"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "carpark",
	Short: "Drag both cars into their parking spots",
	Long:  `carpark is a drag-to-park mini game. Drag each car's hand along a path and release it inside the matching spot.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		debug, _ := cmd.Flags().GetBool("debug")
		scene, _ := cmd.Flags().GetString("scene")
		watch, _ := cmd.Flags().GetBool("watch")
		baseMonitor, _ := cmd.Flags().GetBool("base-monitor")

		level := slog.LevelInfo
		if debug {
			level = slog.LevelDebug
		}
		log := logging.New(level)

		if baseMonitor {
			if monitors := ebiten.AppendMonitors(nil); len(monitors) > 0 {
				ebiten.SetMonitor(monitors[0])
			}
		}

		game, err := NewGame(Options{Scene: scene, Debug: debug, Watch: watch}, log)
		if err != nil {
			return err
		}
		defer game.Close()

		ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
		ebiten.SetWindowSize(game.session.spec.Width, game.session.spec.Height)
		ebiten.SetWindowTitle("carpark")

		return ebiten.RunGame(game)
	},
	SilenceUsage: true,
}

func init() {
	rootCmd.Flags().Bool("debug", false, "enable debug overlay and logging")
	rootCmd.Flags().String("scene", "", "scene prefab in prefabs/ (defaults to scene.yaml)")
	rootCmd.Flags().BoolP("watch", "w", false, "reload the scene when its prefab changes on disk")
	rootCmd.Flags().BoolP("base-monitor", "m", false, "use base monitor instead of primary (for multi-monitor setups)")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
