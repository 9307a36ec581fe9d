package main

import (
	"fmt"

	"github.com/lexcalc/dintilhac/internal/compare"
	"github.com/spf13/cobra"
)

func compareCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "compare [case-file]",
		Short: "Compare the insurer offers of a case with the estimate",
		Long: `Compare every offer of the case history (offres) with the estimated damages.
A case without history is compared on its single offer.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cf, err := a.loadCase(args[0])
			if err != nil {
				return err
			}
			cs, err := compare.NewCompareEngine(a.engine(cmd)).Compare(cmd.Context(), cf)
			if err != nil {
				return err
			}
			cs.SourcePath = args[0]

			format, _ := cmd.Flags().GetString("format")
			var out string
			switch format {
			case "table":
				out = (&compare.TableFormatter{}).Format(cs)
			case "compact":
				out = (&compare.TableFormatter{}).FormatCompact(cs) + "\n"
			case "csv":
				out, err = (&compare.CSVFormatter{}).Format(cs)
			case "json":
				out, err = (&compare.JSONFormatter{Pretty: true}).Format(cs)
				out += "\n"
			default:
				return fmt.Errorf("unknown format %q (available: table, compact, csv, json)", format)
			}
			if err != nil {
				return err
			}
			_, err = fmt.Fprint(cmd.OutOrStdout(), out)
			return err
		},
	}
	cmd.Flags().StringP("format", "f", "table", "Output format (table, compact, csv, json)")
	cmd.Flags().Bool("debug", false, "Log every head evaluation")
	return cmd
}
