package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"runtime/debug"
	"time"

	"github.com/lexcalc/dintilhac/internal/calculation"
	"github.com/lexcalc/dintilhac/internal/config"
	"github.com/lexcalc/dintilhac/internal/domain"
	"github.com/lexcalc/dintilhac/internal/logging"
	"github.com/lexcalc/dintilhac/internal/output"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

// app carries what the commands share once settings are loaded.
type app struct {
	settingsPath string
	logLevel     string
	settings     *config.Settings
	log          *zap.Logger
	now          func() time.Time
}

func (a *app) load(cmd *cobra.Command, _ []string) error {
	s, err := config.LoadSettings(a.settingsPath)
	if err != nil {
		return err
	}
	if a.logLevel != "" {
		s.Log.Level = a.logLevel
	}
	if debugMode, _ := cmd.Flags().GetBool("debug"); debugMode {
		s.Log.Level = "debug"
	}
	l, err := logging.New(s.Log.Level, s.Log.Format)
	if err != nil {
		return err
	}
	a.settings, a.log = s, l
	return nil
}

func (a *app) engine(cmd *cobra.Command) *calculation.CalculationEngine {
	engine := calculation.NewCalculationEngine()
	engine.SetLogger(logging.ForEngine(a.log))
	engine.Debug, _ = cmd.Flags().GetBool("debug")
	return engine
}

func (a *app) loadCase(path string) (*domain.CaseFile, error) {
	return config.NewInputParser().LoadFromFile(path)
}

func newRootCmd() *cobra.Command {
	a := &app{now: time.Now}

	rootCmd := &cobra.Command{
		Use:               "dintilhac",
		Short:             "Bodily injury compensation calculator",
		Long:              "Evaluates personal injury damages under the Dintilhac nomenclature and compares insurer offers",
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: a.load,
	}
	rootCmd.PersistentFlags().StringVar(&a.settingsPath, "config", "", "Settings file (default: ./dintilhac.yaml or ~/.config/dintilhac/dintilhac.yaml)")
	rootCmd.PersistentFlags().StringVar(&a.logLevel, "log-level", "", "Log level override (debug, info, warn, error)")

	rootCmd.AddCommand(
		calculateCmd(a),
		validateCmd(a),
		compareCmd(a),
		saveCmd(a),
		showCmd(a),
		listCmd(a),
		tablesCmd(),
		serveCmd(a),
		versionCmd(),
	)
	return rootCmd
}

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		// settings are not needed
		PersistentPreRunE: func(*cobra.Command, []string) error { return nil },
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "dintilhac %s (commit %s, built %s)\n", version, commit, date)
			if info := buildInfo(); info != "" {
				fmt.Fprintln(cmd.OutOrStdout(), info)
			}
		},
	}
}

func buildInfo() string {
	if bi, ok := debug.ReadBuildInfo(); ok && bi != nil {
		return bi.Main.Path + " " + bi.Main.Version
	}
	return ""
}

func calculateCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "calculate [case-file]",
		Short: "Evaluate every head of damage of a case",
		Example: `  dintilhac calculate case.yaml
  dintilhac calculate case.yaml -f pdf -o rapport.pdf
  dintilhac calculate case.json -f json --debug`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cf, err := a.loadCase(args[0])
			if err != nil {
				return err
			}
			result, err := a.engine(cmd).ComputeContext(cmd.Context(), cf.CalculationInput)
			if err != nil {
				return err
			}

			format, _ := cmd.Flags().GetString("format")
			if format == "" {
				format = a.settings.Output.Format
			}
			f := output.GetFormatterByName(format)
			if f == nil {
				return fmt.Errorf("unknown format %q (available: %v)", format, output.AvailableFormatterNames())
			}

			report := output.NewReport(cf, result, a.now())
			outPath, _ := cmd.Flags().GetString("output")
			switch {
			case outPath != "":
				data, err := f.Format(report)
				if err != nil {
					return err
				}
				if err := os.WriteFile(outPath, data, 0o644); err != nil {
					return fmt.Errorf("failed to write %s: %w", outPath, err)
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Report written to %s\n", outPath)
			case f.Name() == "pdf":
				filename, err := output.WriteFormatted(f, report, output.Extension(f))
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Report written to %s\n", filename)
			default:
				data, err := f.Format(report)
				if err != nil {
					return err
				}
				_, err = cmd.OutOrStdout().Write(data)
				return err
			}
			return nil
		},
	}
	cmd.Flags().StringP("format", "f", "", "Output format (console, json, csv, html, pdf, record)")
	cmd.Flags().StringP("output", "o", "", "Write the report to this file instead of stdout")
	cmd.Flags().Bool("debug", false, "Log every head evaluation")
	return cmd
}

func validateCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "validate [case-file]",
		Short: "Validate a case file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cf, err := a.loadCase(args[0])
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Case file %s is valid", args[0])
			if len(cf.Offers) > 0 {
				fmt.Fprintf(cmd.OutOrStdout(), " (%d offers)", len(cf.Offers))
			}
			fmt.Fprintln(cmd.OutOrStdout())
			return nil
		},
	}
}

func tablesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:               "tables",
		Short:             "Print the reference tables",
		Args:              cobra.NoArgs,
		PersistentPreRunE: func(*cobra.Command, []string) error { return nil },
		RunE: func(cmd *cobra.Command, args []string) error {
			jsonOut, _ := cmd.Flags().GetBool("json")
			return writeTables(cmd.OutOrStdout(), jsonOut)
		},
	}
	cmd.Flags().Bool("json", false, "Print the tables as JSON")
	return cmd
}

// exitCode maps an error to the process exit status.
func exitCode(err error) int {
	if errors.Is(err, domain.ErrValidation) {
		return 2
	}
	return 1
}

func run(args []string, stdout, stderr io.Writer) int {
	cmd := newRootCmd()
	cmd.SetArgs(args)
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)
	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(stderr, "Error:", err)
		return exitCode(err)
	}
	return 0
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}
