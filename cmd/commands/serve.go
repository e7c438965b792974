package commands

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/arinkulshi/diet-recommendation-tool/config"
	"github.com/arinkulshi/diet-recommendation-tool/routes"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the HTTP API",
	RunE: func(cmd *cobra.Command, args []string) error {
		if cfg.GinMode != "" {
			gin.SetMode(cfg.GinMode)
		}

		db, err := openMigrated()
		if err != nil {
			return err
		}
		defer func() {
			if err := config.CloseDB(db); err != nil {
				log.Printf("close database: %v", err)
			}
			log.Println("Database connection closed")
		}()

		r := routes.SetupRouter(cfg, routes.NewDeps(cfg, db))
		srv := &http.Server{
			Addr:              ":" + cfg.Port,
			Handler:           r,
			ReadHeaderTimeout: 10 * time.Second,
		}

		ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()

		errc := make(chan error, 1)
		go func() {
			log.Printf("Server running on port %s", cfg.Port)
			if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				errc <- err
			}
			close(errc)
		}()

		select {
		case err := <-errc:
			return err
		case <-ctx.Done():
		}

		log.Println("Shutting down server...")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	},
}
