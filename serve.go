package main

import (
	"log/slog"
	"net/http"

	"github.com/spf13/cobra"

	"dealershield/pkg/dashboard"
)

func newServeCmd() *cobra.Command {
	var port int
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Inicia o servidor HTTP do dashboard",
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := buildApp()
			if err != nil {
				return err
			}
			defer a.Close()

			if port == 0 {
				port = envInt("DASHBOARD_PORT", 8080)
			}
			srv := dashboard.NewServer(port, a.checker, a.tracker)

			errCh := make(chan error, 1)
			go func() {
				errCh <- srv.Start()
			}()

			select {
			case <-cmd.Context().Done():
				slog.Info("shutting down dashboard server")
				return srv.Stop()
			case err := <-errCh:
				if err != nil && err != http.ErrServerClosed {
					return err
				}
				return nil
			}
		},
	}
	cmd.Flags().IntVarP(&port, "port", "p", 0, "porta HTTP (default: DASHBOARD_PORT ou 8080)")
	return cmd
}
