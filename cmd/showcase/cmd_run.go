package main

import (
	"context"
	"fmt"

	"github.com/forgeline/kinetic"
	"github.com/forgeline/kinetic/internal/config"
	"github.com/forgeline/kinetic/internal/site"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	pageName string
	watch    bool
	showFPS  bool
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Open a window on one page of the site",
	Args:  cobra.NoArgs,
	RunE:  runSite,
}

func init() {
	runCmd.Flags().StringVarP(&pageName, "page", "p", "", "Page to open (default: the first page)")
	runCmd.Flags().BoolVar(&watch, "watch", true, "Reload the page when the config file changes")
	runCmd.Flags().BoolVar(&showFPS, "fps", false, "Show the FPS overlay")
}

// loadConfig reads the config named by --config and applies its log level
// unless --log-level was given.
func loadConfig() (*config.Config, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, err
	}
	if logLevel == "" {
		if err := setLevel(cfg.LogLevel); err != nil {
			return nil, err
		}
	}
	logger.Debug("config loaded", zap.String("path", configPath), zap.Int("pages", len(cfg.Pages)))
	return cfg, nil
}

// newScene builds a scene for cfg with the named page laid out.
func newScene(cfg *config.Config, page string) (*kinetic.Scene, *site.Site, error) {
	s := kinetic.NewScene(float64(cfg.Window.Width), float64(cfg.Window.Height))
	s.SetLogger(logger.Named("kinetic"))
	s.SetDebugMode(cfg.Debug)
	st, err := site.New(s, cfg, page, logger)
	if err != nil {
		return nil, nil, err
	}
	return s, st, nil
}

func runSite(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	s, st, err := newScene(cfg, pageName)
	if err != nil {
		return err
	}

	if watch {
		ctx, cancel := context.WithCancel(cmd.Context())
		defer cancel()
		w, err := config.NewWatcher(configPath, config.DefaultDebounce, logger, func(c *config.Config, err error) {
			if err == nil {
				st.Reload(c)
			}
		})
		if err != nil {
			return fmt.Errorf("watch config: %w", err)
		}
		w.Start(ctx)
		defer w.Close()
	}

	logger.Info("opening page", zap.String("page", st.Page()))
	return kinetic.Run(s, kinetic.RunConfig{
		Title:    cfg.Window.Title,
		Width:    cfg.Window.Width,
		Height:   cfg.Window.Height,
		TPS:      cfg.Window.TPS,
		ShowFPS:  showFPS,
		OnResize: st.Resize,
	})
}
