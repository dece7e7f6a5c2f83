package main

import (
	"context"
	"fmt"
	"io"
	"os/signal"
	"syscall"
	"time"

	"github.com/facebookgo/clock"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"krishisakha/cmd/sakha/ui"
	"krishisakha/internal/analysis"
	"krishisakha/internal/sample"
)

var (
	stepDelay   time.Duration
	revealDelay time.Duration
	selectCrop  int
)

// analyzeCmd runs the analysis sequence without the TUI
var analyzeCmd = &cobra.Command{
	Use:   "analyze",
	Short: "Run the crop analysis in the terminal and print the recommendations",
	Long: `Runs the four analysis steps on their normal timers, printing each step
as it completes, then prints the crop recommendation table.

Example:
  sakha analyze --step-delay 200ms --reveal-delay 100ms --select 0`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		step, reveal := stepDelay, revealDelay
		if step <= 0 {
			step = cfg.GetStepDelay()
		}
		if reveal <= 0 {
			reveal = cfg.GetRevealDelay()
		}

		ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()

		logger.Debug("running analysis", zap.Duration("step_delay", step), zap.Duration("reveal_delay", reveal))
		styles := ui.NewStyles(ui.ThemeByName(cfg.UI.Theme))
		return runAnalyze(ctx, cmd.OutOrStdout(), clock.New(), styles, step, reveal, selectCrop)
	},
}

func init() {
	analyzeCmd.Flags().DurationVar(&stepDelay, "step-delay", 0, "Delay between analysis steps (default from config)")
	analyzeCmd.Flags().DurationVar(&revealDelay, "reveal-delay", 0, "Delay before the results are shown (default from config)")
	analyzeCmd.Flags().IntVar(&selectCrop, "select", -1, "Expand the crop at this index after the results are shown")
}

// runAnalyze drives a wizard on clk until the results are revealed, writing
// progress to out. Cancelling ctx stops the runner and returns ctx.Err().
func runAnalyze(ctx context.Context, out io.Writer, clk clock.Clock, styles ui.Styles, step, reveal time.Duration, selectIdx int) error {
	steps := sample.AnalysisSteps()
	events := make(chan analysis.Event, len(steps)+2)

	wiz := analysis.New(analysis.WithDelays(step, reveal))
	runner := analysis.NewRunner(clk, wiz, func(ev analysis.Event) { events <- ev })
	start := clk.Now()

	fmt.Fprintln(out, styles.Title.Render("Crop Analysis in Progress"))
	runner.Start()
	defer runner.Stop()

	for revealed := false; !revealed; {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case ev := <-events:
			elapsed := ev.At.Sub(start).Round(10 * time.Millisecond)
			switch ev.Kind {
			case analysis.KindAdvance:
				fmt.Fprintf(out, "[+%s] %s %s\n", elapsed, styles.Success.Render("✓"), steps[ev.Step-1].Label)
			case analysis.KindReveal:
				fmt.Fprintf(out, "[+%s] results ready\n\n", elapsed)
				revealed = true
			}
		}
	}

	table := ui.NewSimpleTable("Crop Recommendations", []string{"Crop", "Score", "Demand", "Water", "Season"})
	for _, c := range sample.CropScores() {
		table.AddRow(c.Name, fmt.Sprintf("%d%%", c.Score), c.Demand.String(), c.WaterReq.String(), c.Season.String())
	}
	fmt.Fprint(out, table.View(styles))

	if selectIdx < 0 {
		return nil
	}
	if err := runner.Select(selectIdx); err != nil {
		return err
	}
	crop, _ := sample.Crop(selectIdx)
	fmt.Fprintf(out, "\n%s\nMarket Demand: %s\nWater Requirement: %s\nGrowing Season: %s\n\n%s\n",
		styles.Bold.Render(crop.Name), crop.Demand, crop.WaterReq, crop.Season,
		ui.Wrap(sample.RecommendationRationale, ui.DefaultWidth))
	return nil
}
