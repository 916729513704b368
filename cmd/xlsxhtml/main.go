// Command xlsxhtml converts an XLSX workbook to an HTML fragment.
package main

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/aerissecure/xlsxhtml"
)

// fileConfig mirrors the command-line flags so defaults can live in a TOML
// file. Explicit flags win over file values.
type fileConfig struct {
	Output       string `toml:"output"`
	HiddenSheets bool   `toml:"hidden_sheets"`
	NoStyle      bool   `toml:"no_style"`
	NoSize       bool   `toml:"no_size"`
	ThemeOffset  int    `toml:"theme_offset"`
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var (
		output       string
		configPath   string
		hiddenSheets bool
		noStyle      bool
		noSize       bool
		themeOffset  int
		verbose      bool
	)

	cmd := &cobra.Command{
		Use:          "xlsxhtml <input.xlsx>",
		Short:        "Convert an XLSX workbook to styled HTML",
		Args:         cobra.ExactArgs(1),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			level := log.InfoLevel
			if verbose {
				level = log.DebugLevel
			}
			logger := log.NewWithOptions(os.Stderr, log.Options{
				ReportTimestamp: true,
				TimeFormat:      "15:04:05.00",
				Level:           level,
			})

			if configPath != "" {
				var cfg fileConfig
				if _, err := toml.DecodeFile(configPath, &cfg); err != nil {
					return fmt.Errorf("read config %s: %w", configPath, err)
				}
				if !cmd.Flags().Changed("output") && cfg.Output != "" {
					output = cfg.Output
				}
				if !cmd.Flags().Changed("hidden-sheets") {
					hiddenSheets = cfg.HiddenSheets
				}
				if !cmd.Flags().Changed("no-style") {
					noStyle = cfg.NoStyle
				}
				if !cmd.Flags().Changed("no-size") {
					noSize = cfg.NoSize
				}
				if !cmd.Flags().Changed("theme-offset") {
					themeOffset = cfg.ThemeOffset
				}
			}

			opts := xlsxhtml.DefaultOptions()
			opts.ConvertStyle = !noStyle
			opts.ConvertSize = !noSize
			opts.ConvertHiddenSheets = hiddenSheets
			opts.ThemeOffset = themeOffset
			opts.Log = logger
			opts.Progress = func(sheet, totalSheets, row, totalRows int) error {
				logger.Debug("resolving", "sheet", sheet, "of", totalSheets, "row", row, "rows", totalRows)
				return nil
			}

			html, err := xlsxhtml.ConvertFile(args[0], opts)
			if err != nil {
				return fmt.Errorf("convert %s: %w", args[0], err)
			}

			if output == "" || output == "-" {
				_, err = fmt.Fprintln(os.Stdout, html)
				return err
			}
			if err := os.WriteFile(output, []byte(html), 0o644); err != nil {
				return err
			}
			logger.Info("wrote", "path", output, "bytes", len(html))
			return nil
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (default stdout)")
	cmd.Flags().StringVar(&configPath, "config", "", "TOML config file with flag defaults")
	cmd.Flags().BoolVar(&hiddenSheets, "hidden-sheets", false, "render hidden sheets too")
	cmd.Flags().BoolVar(&noStyle, "no-style", false, "disable cell style resolution")
	cmd.Flags().BoolVar(&noSize, "no-size", false, "disable pixel column widths and row heights")
	cmd.Flags().IntVar(&themeOffset, "theme-offset", 0, "offset added to theme color slot numbers")
	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose logging")
	return cmd
}
