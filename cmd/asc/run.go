package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-asc/internal/canvas"
	"github.com/vovakirdan/tui-asc/internal/engine"
	tcellout "github.com/vovakirdan/tui-asc/internal/platform/tcell"
	"github.com/vovakirdan/tui-asc/internal/registry"
)

var (
	flagBackend string
	flagFrames  int
)

var runCmd = &cobra.Command{
	Use:   "run <scene>",
	Short: "Run a scene in the plain frame loop",
	Long: `Run the scene without the interactive player. Frames are drawn,
written to the terminal and paced to the framerate until interrupted.

Backends:
  ansi   - Home the cursor and rewrite stdout each frame (default)
  tcell  - Paint through a tcell screen; Esc, q or Ctrl+C stops

Examples:
  asc run clock
  asc run orbits --backend tcell
  asc run shapes --frames 300 --timing`,
	Args: cobra.ExactArgs(1),
	Run:  runRun,
}

func init() {
	runCmd.Flags().StringVar(&flagBackend, "backend", "ansi", "Output backend: ansi, tcell")
	runCmd.Flags().IntVar(&flagFrames, "frames", 0, "Stop after this many frames (0 = until interrupted)")
}

func runRun(cmd *cobra.Command, args []string) {
	scene, cfg := createScene(args[0], cmd.Flags(), loopMargin)

	if err := runLoop(scene, cfg, flagBackend); err != nil {
		exitf("Error running scene: %v\n", err)
	}
}

// runLoop drives the frame loop until it is interrupted. Deferred cleanup
// restores the terminal before the caller reports any error.
func runLoop(scene registry.Scene, cfg canvas.Config, backend string) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	opts := []engine.Option{
		engine.WithLogger(logger),
		engine.WithMaxFrames(flagFrames),
	}

	switch backend {
	case "ansi":
		opts = append(opts, engine.WithEmitter(engine.NewTerminalEmitter(os.Stdout)))

	case "tcell":
		em, err := tcellout.Open()
		if err != nil {
			return err
		}
		defer em.Close()

		var cancel context.CancelFunc
		ctx, cancel = context.WithCancel(ctx)
		defer cancel()
		em.WatchKeys(cancel)

		opts = append(opts, engine.WithEmitter(em))

	default:
		return fmt.Errorf("unknown backend %q (available: ansi, tcell)", backend)
	}

	logger.Debug("frame loop starting", "scene", scene.ID(), "backend", backend, "frames", flagFrames)

	err := engine.Run(ctx, cfg, scene.Draw, opts...)
	if errors.Is(err, context.Canceled) {
		logger.Debug("frame loop interrupted", "scene", scene.ID())
		return nil
	}
	return err
}
