package main

import (
	"context"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/opendatakr/foodsearch/internal/server"
)

var (
	servePort      int
	serveStaticDir string
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP search API",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()

		engine, err := newEngine()
		if err != nil {
			return err
		}

		port := servePort
		if port == 0 {
			port = cfg.Server.Port
		}
		if port <= 0 {
			return eris.Errorf("server: invalid port %d", port)
		}
		staticDir := serveStaticDir
		if staticDir == "" {
			staticDir = cfg.Server.StaticDir
		}

		srv := &http.Server{
			Addr:    fmt.Sprintf(":%d", port),
			Handler: server.New(engine, server.Options{StaticDir: staticDir}).Handler(),
		}

		// Graceful shutdown
		go func() {
			<-ctx.Done()
			zap.L().Info("shutting down server")
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			_ = srv.Shutdown(shutdownCtx)
		}()

		zap.L().Info("starting server", zap.Int("port", port))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			return eris.Wrap(err, "server listen")
		}

		return nil
	},
}

func init() {
	serveCmd.Flags().IntVar(&servePort, "port", 0, "server port (default from config)")
	serveCmd.Flags().StringVar(&serveStaticDir, "static-dir", "", "frontend directory to serve (default from config)")
	rootCmd.AddCommand(serveCmd)
}
