package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/forgeline/kinetic"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// ErrReplayTimeout is returned when a headless replay does not finish in
// the allowed number of frames.
var ErrReplayTimeout = errors.New("replay did not finish")

// replayTail is how many frames the window stays open after the script
// finishes, so queued screenshots get drawn.
const replayTail = 2

var (
	replayPage     string
	replayHeadless bool
	replayFrames   int
	replayOut      string
)

var replayCmd = &cobra.Command{
	Use:   "replay <script.yaml>",
	Short: "Play a scenario script against a page",
	Long: `replay drives a page with the scroll, pointer and wait steps of a YAML
scenario script. In a window, screenshot steps write PNG files to --out.
With --headless the scene is stepped without a window at the configured
tick rate; screenshot steps are then ignored.`,
	Args: cobra.ExactArgs(1),
	RunE: replay,
}

func init() {
	replayCmd.Flags().StringVarP(&replayPage, "page", "p", "", "Page to replay against (default: the first page)")
	replayCmd.Flags().BoolVar(&replayHeadless, "headless", false, "Step the scene without opening a window")
	replayCmd.Flags().IntVar(&replayFrames, "max-frames", 3600, "Frame limit for headless replays")
	replayCmd.Flags().StringVarP(&replayOut, "out", "o", "screenshots", "Screenshot directory")
}

func replay(cmd *cobra.Command, args []string) error {
	data, err := os.ReadFile(args[0])
	if err != nil {
		return fmt.Errorf("read script: %w", err)
	}
	runner, err := kinetic.LoadScript(data)
	if err != nil {
		return err
	}
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	s, st, err := newScene(cfg, replayPage)
	if err != nil {
		return err
	}
	s.ScreenshotDir = replayOut
	s.SetScript(runner)
	log := logger.With(zap.String("script", runner.Name()), zap.String("page", st.Page()))

	if replayHeadless {
		dt := 1 / float64(cfg.Window.TPS)
		for i := 0; i < replayFrames; i++ {
			s.Step(dt)
			if runner.Done() {
				log.Info("replay finished", zap.Uint64("frames", s.Frame()),
					zap.Float64("scroll_y", s.Viewport().ScrollY),
					zap.Int("submissions", st.Submissions()))
				fmt.Fprintf(cmd.OutOrStdout(), "%s: done in %d frames\n", runner.Name(), s.Frame())
				return nil
			}
		}
		return fmt.Errorf("%w after %d frames", ErrReplayTimeout, replayFrames)
	}

	tail := replayTail
	s.SetUpdateFunc(func() error {
		if !runner.Done() {
			return nil
		}
		if tail--; tail < 0 {
			log.Info("replay finished", zap.Uint64("frames", s.Frame()))
			return ebiten.Termination
		}
		return nil
	})
	err = kinetic.Run(s, kinetic.RunConfig{
		Title:    cfg.Window.Title + " - " + runner.Name(),
		Width:    cfg.Window.Width,
		Height:   cfg.Window.Height,
		TPS:      cfg.Window.TPS,
		OnResize: st.Resize,
	})
	if errors.Is(err, ebiten.Termination) {
		return nil
	}
	return err
}
