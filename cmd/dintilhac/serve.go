package main

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/lexcalc/dintilhac/internal/server"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func serveCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the calculation API over HTTP",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			addr, _ := cmd.Flags().GetString("addr")
			if addr == "" {
				addr = a.settings.Server.Addr
			}

			var caseStore server.CaseStore
			if noStore, _ := cmd.Flags().GetBool("no-store"); !noStore {
				st, err := a.openStore(cmd)
				if err != nil {
					return err
				}
				defer st.Close()
				caseStore = st
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			srv := server.New(a.engine(cmd), caseStore, a.log)
			a.log.Info("listening", zap.String("addr", addr), zap.String("version", version))
			return srv.ListenAndServe(ctx, addr)
		},
	}
	cmd.Flags().String("addr", "", "Listen address (default: server.addr setting)")
	cmd.Flags().Bool("no-store", false, "Serve without a case store")
	cmd.Flags().Bool("debug", false, "Log every head evaluation")
	return cmd
}
