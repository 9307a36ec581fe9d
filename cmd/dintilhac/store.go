package main

import (
	"fmt"

	"github.com/goccy/go-json"
	"github.com/lexcalc/dintilhac/internal/domain"
	"github.com/lexcalc/dintilhac/internal/output"
	"github.com/lexcalc/dintilhac/internal/store"
	"github.com/mattn/go-runewidth"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func (a *app) openStore(cmd *cobra.Command) (*store.Store, error) {
	st, err := store.Open(a.settings.Store.Driver, a.settings.Store.DSN)
	if err != nil {
		return nil, err
	}
	if err := st.Migrate(cmd.Context()); err != nil {
		st.Close()
		return nil, err
	}
	return st, nil
}

func saveCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "save [case-file]",
		Short: "Compute a case and store its calculation record",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cf, err := a.loadCase(args[0])
			if err != nil {
				return err
			}
			caseID, _ := cmd.Flags().GetString("case")
			if caseID == "" {
				caseID = cf.CaseID
			}
			if caseID == "" {
				return fmt.Errorf("no case id: set 'dossier' in %s or pass --case", args[0])
			}

			result, err := a.engine(cmd).ComputeContext(cmd.Context(), cf.CalculationInput)
			if err != nil {
				return err
			}

			st, err := a.openStore(cmd)
			if err != nil {
				return err
			}
			defer st.Close()

			rec := domain.NewCaseRecord(caseID, result, a.now())
			if err := st.SaveCalculation(cmd.Context(), rec); err != nil {
				return err
			}
			a.log.Info("calculation saved", zap.String("case_id", caseID), zap.String("driver", st.Driver()))
			fmt.Fprintf(cmd.OutOrStdout(), "Saved case %s: total %s (max %s)\n",
				caseID, output.FormatEuro(rec.TotalPrejudice), output.FormatEuro(rec.TotalReclame))
			return nil
		},
	}
	cmd.Flags().String("case", "", "Case id (default: dossier field of the case file)")
	cmd.Flags().Bool("debug", false, "Log every head evaluation")
	return cmd
}

func showCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "show [case-id]",
		Short: "Print the stored calculation record of a case",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			st, err := a.openStore(cmd)
			if err != nil {
				return err
			}
			defer st.Close()

			rec, err := st.GetCalculation(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			data, err := json.MarshalIndent(rec, "", "  ")
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), string(data))
			return err
		},
	}
}

func listCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List stored calculations, most recent first",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			limit, _ := cmd.Flags().GetInt("limit")
			st, err := a.openStore(cmd)
			if err != nil {
				return err
			}
			defer st.Close()

			recs, err := st.ListCalculations(cmd.Context(), limit)
			if err != nil {
				return err
			}
			w := cmd.OutOrStdout()
			if len(recs) == 0 {
				fmt.Fprintln(w, "No stored calculation.")
				return nil
			}
			fmt.Fprintf(w, "%s %s %s %s\n",
				runewidth.FillRight("Dossier", 16),
				runewidth.FillRight("Calculé le", 20),
				runewidth.FillLeft("Total", 18),
				runewidth.FillLeft("Réclamé", 18))
			for _, rec := range recs {
				fmt.Fprintf(w, "%s %s %s %s\n",
					runewidth.FillRight(runewidth.Truncate(rec.CaseID, 16, "…"), 16),
					runewidth.FillRight(rec.CalculatedAt.Format("02/01/2006 15:04"), 20),
					runewidth.FillLeft(output.FormatEuro(rec.TotalPrejudice), 18),
					runewidth.FillLeft(output.FormatEuro(rec.TotalReclame), 18))
			}
			return nil
		},
	}
	cmd.Flags().Int("limit", 20, "Maximum number of records (0 for all)")
	return cmd
}
