//	@title			Photo Upload API
//	@version		1.0
//	@description	Accepts image uploads, stores them in S3-compatible object storage under unique names, and deletes them by name.
//
//	@host		localhost:3000
//	@BasePath	/

package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/photoupload/service/internal/config"
	"github.com/photoupload/service/internal/health"
	"github.com/photoupload/service/internal/logging"
	"github.com/photoupload/service/internal/metrics"
	"github.com/photoupload/service/internal/photo"

	_ "github.com/photoupload/service/docs/swagger"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var envFile string

	root := &cobra.Command{
		Use:          "photo-upload-api",
		Short:        "HTTP API that stores uploaded photos in object storage",
		SilenceUsage: true,
		Args:         cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			var files []string
			if envFile != "" {
				files = append(files, envFile)
			}
			cfg, err := config.Load(files...)
			if err != nil {
				return fmt.Errorf("load config: %w", err)
			}
			return serve(cmd.Context(), cfg)
		},
	}
	root.Flags().StringVar(&envFile, "env-file", "", "dotenv file to load before reading the environment (default .env)")

	root.AddCommand(newFilenameCmd())
	return root
}

func newFilenameCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "filename <original-name>...",
		Short: "Print the storage filename that an upload with each name would get",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, name := range args {
				if _, err := fmt.Fprintln(cmd.OutOrStdout(), photo.GenerateFilename(name)); err != nil {
					return err
				}
			}
			return nil
		},
	}
}

func serve(ctx context.Context, cfg *config.Config) error {
	logging.Setup(cfg.AppEnv, cfg.LogLevel)

	ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	initCtx, cancel := context.WithTimeout(ctx, 15*time.Second)
	store, err := newStorage(initCtx, cfg)
	cancel()
	if err != nil {
		return fmt.Errorf("object storage init failed: %w", err)
	}

	// Wire dependencies: storage → service → handlers
	reg := metrics.NewRegistry()
	photoSvc := photo.NewService(store, reg)
	router := buildRouter(cfg, reg, store, photo.NewHandler(photoSvc), health.NewHandler(photoSvc))

	srv := &http.Server{
		Addr:         cfg.Addr(),
		Handler:      router,
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info().
			Str("addr", srv.Addr).
			Str("env", cfg.AppEnv).
			Str("storage", cfg.StorageDriver).
			Msg("server listening")
		if !cfg.IsProduction() {
			log.Info().Msgf("swagger UI at http://localhost:%s/swagger/", cfg.Port)
		}
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return fmt.Errorf("server error: %w", err)
	case <-ctx.Done():
	}

	log.Info().Msg("shutting down gracefully...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("forced shutdown: %w", err)
	}

	log.Info().Msg("server stopped")
	return nil
}
