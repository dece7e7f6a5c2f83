package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"krishisakha/cmd/sakha/farmer"
	"krishisakha/cmd/sakha/shell"
	"krishisakha/cmd/sakha/ui"
	"krishisakha/internal/sample"
)

var (
	showWidth    int
	showLanguage string
)

// showCmd prints a single panel without taking over the terminal
var showCmd = &cobra.Command{
	Use:   "show <dashboard|analysis|alerts|weather|farmer>",
	Short: "Print one panel and exit",
	Long: `Prints one panel once. The analysis panel is shown with its results
already revealed.

Examples:
  sakha show weather --width 100
  sakha show farmer --language hindi`,
	Args:      cobra.ExactArgs(1),
	ValidArgs: append(sample.TabKeys(), "farmer"),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		out := cmd.OutOrStdout()

		if args[0] == "farmer" {
			lang := cfg.GetLanguage()
			if showLanguage != "" {
				if lang, err = sample.ParseLanguage(showLanguage); err != nil {
					return err
				}
			}
			m := farmer.New(farmer.Options{
				Styles:   ui.NewStyles(ui.ThemeByName(cfg.UI.Theme)),
				Language: lang,
				Width:    showWidth,
			})
			fmt.Fprintln(out, m.Content())
			fmt.Fprintln(out, strings.Join(m.NavLabels(), " | "))
			return nil
		}

		tab, err := sample.ParseTab(args[0])
		if err != nil {
			return fmt.Errorf("%w (valid: %s, farmer)", err, strings.Join(sample.TabKeys(), ", "))
		}
		opts := shell.OptionsFromConfig(cfg)
		opts.StartTab = tab
		opts.Width = showWidth
		m := shell.New(opts)
		if tab == sample.TabAnalysis {
			m = m.FastForward()
		}
		fmt.Fprintln(out, m.Panel())
		return nil
	},
}

func init() {
	showCmd.Flags().IntVar(&showWidth, "width", ui.DefaultWidth, "Render width in columns")
	showCmd.Flags().StringVar(&showLanguage, "language", "", "Farmer screen language (english, hindi, en, hi)")
}
