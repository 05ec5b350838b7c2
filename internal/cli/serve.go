package cli

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"itemctl/internal/config"
	"itemctl/internal/server"
	"itemctl/internal/system"
)

func init() {
	rootCmd.AddCommand(serveCmd)
	serveCmd.Flags().StringP("addr", "a", "127.0.0.1:8787", "address to bind (host:port)")
	serveCmd.Flags().Bool("seed", false, "start with sample items")
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run a local items backend",
	Long:  "Run an in-memory development backend implementing the collection wire protocol, so the console works without an external service.",
	RunE: func(cmd *cobra.Command, args []string) error {
		addr, _ := cmd.Flags().GetString("addr")
		seed, _ := cmd.Flags().GetBool("seed")

		st := server.NewStore()
		if seed {
			st.Seed(server.SampleItems()...)
		}
		lg := system.NewLogger("server")
		srv := &server.Server{Addr: addr, Path: config.APIPath(), Store: st, Log: lg}

		// Handle Ctrl+C
		ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer cancel()

		lg.Info("starting items backend", "url", "http://"+addr+config.APIPath())
		if err := srv.Start(ctx); err != nil {
			if errors.Is(err, http.ErrServerClosed) {
				return nil
			}
			return err
		}
		return nil
	},
}
