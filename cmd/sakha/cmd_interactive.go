package main

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"krishisakha/cmd/sakha/farmer"
	"krishisakha/cmd/sakha/shell"
	"krishisakha/cmd/sakha/ui"
	"krishisakha/internal/config"
	"krishisakha/internal/logging"
)

// farmerCmd opens the farmer screen
var farmerCmd = &cobra.Command{
	Use:         "farmer",
	Short:       "Open the farmer screen with the English/Hindi selector",
	Annotations: map[string]string{tuiAnnotation: "true"},
	RunE: func(cmd *cobra.Command, args []string) error {
		return runFarmer(cmd.Context())
	},
}

func runShell(ctx context.Context) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	return runProgram(ctx, shell.New(shell.OptionsFromConfig(cfg)))
}

func runFarmer(ctx context.Context) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	return runProgram(ctx, farmer.New(farmer.Options{
		Styles:   ui.NewStyles(ui.ThemeByName(cfg.UI.Theme)),
		Language: cfg.GetLanguage(),
	}))
}

// runProgram runs model full-screen next to a config watcher that forwards
// reloads to the program. SIGINT/SIGTERM or quitting the program stops both.
func runProgram(ctx context.Context, model tea.Model) error {
	if ctx == nil {
		ctx = context.Background()
	}
	ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	log := logging.Get(logging.CategoryBoot)
	p := tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(ctx))

	g, gctx := errgroup.WithContext(ctx)
	watchCtx, stopWatch := context.WithCancel(gctx)

	g.Go(func() error {
		defer stopWatch()
		_, err := p.Run()
		if errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
			log.Info("program stopped by signal")
			return nil
		}
		return err
	})

	path := resolvedConfigPath()
	if _, err := os.Stat(filepath.Dir(path)); err != nil {
		log.Debug("not watching %s: %v", path, err)
		stopWatch()
		return g.Wait()
	}
	g.Go(func() error {
		return config.Watch(watchCtx, path, config.NewReloadDebouncer(config.DefaultReloadDebounce), func(c *config.Config, err error) {
			p.Send(ui.ConfigReloadMsg{Config: c, Err: err})
		})
	})

	return g.Wait()
}
