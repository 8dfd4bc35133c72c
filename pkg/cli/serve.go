package cli

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/m-mizutani/goerr/v2"
	"github.com/urfave/cli/v3"

	"github.com/quantum-travel/quantumchat/pkg/cli/config"
	httpctrl "github.com/quantum-travel/quantumchat/pkg/controller/http"
	"github.com/quantum-travel/quantumchat/pkg/service/ai"
	"github.com/quantum-travel/quantumchat/pkg/service/hub"
	"github.com/quantum-travel/quantumchat/pkg/usecase"
	"github.com/quantum-travel/quantumchat/pkg/utils/logging"
)

func cmdServe(version string) *cli.Command {
	var addr string
	var appCfg config.App
	var repoCfg config.Repository

	flags := []cli.Flag{
		&cli.StringFlag{
			Name:        "addr",
			Usage:       "HTTP server address",
			Value:       ":8000",
			Sources:     cli.EnvVars("QUANTUMCHAT_ADDR"),
			Destination: &addr,
		},
	}

	// Add shared config flags
	flags = append(flags, appCfg.Flags()...)
	flags = append(flags, repoCfg.Flags()...)

	return &cli.Command{
		Name:    "serve",
		Aliases: []string{"s"},
		Usage:   "Start HTTP server",
		Flags:   flags,
		Action: func(ctx context.Context, c *cli.Command) error {
			// Build model catalog (built-in or TOML-configured)
			cat, err := appCfg.Configure()
			if err != nil {
				return goerr.Wrap(err, "failed to build model catalog")
			}

			// Initialize repository based on backend type
			repo, err := repoCfg.Configure(ctx)
			if err != nil {
				return goerr.Wrap(err, "failed to initialize repository")
			}
			defer func() {
				if err := repo.Close(); err != nil {
					logging.Default().Error("failed to close repository", "error", err.Error())
				}
			}()

			engine := ai.New(ai.WithDelay(appCfg.GenerationDelay()))
			registry := hub.New()

			uc := usecase.New(repo, engine, cat, registry,
				usecase.WithDefaultModel(appCfg.DefaultModel()),
				usecase.WithMaxMessageLength(appCfg.MaxMessageLength()),
				usecase.WithGenerationTimeout(appCfg.GenerationTimeout()),
				usecase.WithVersion(c.Root().Version),
			)

			httpHandler := httpctrl.New(uc,
				httpctrl.WithMaxUploadSize(appCfg.MaxFileSize()),
			)
			server := &http.Server{
				Addr:              addr,
				Handler:           httpHandler,
				ReadHeaderTimeout: 30 * time.Second,
			}

			// Setup signal handling for graceful shutdown
			sigCh := make(chan os.Signal, 1)
			signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)

			// Start server in goroutine
			errCh := make(chan error, 1)
			go func() {
				logging.Default().Info("Starting HTTP server",
					"addr", addr,
					"default_model", appCfg.DefaultModel(),
					"repository", repoCfg.Backend(),
				)
				if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
					errCh <- goerr.Wrap(err, "failed to start server")
				}
			}()

			// Wait for shutdown signal or server error
			select {
			case err := <-errCh:
				return err
			case sig := <-sigCh:
				logging.Default().Info("Received shutdown signal", "signal", sig)

				// Create shutdown context with timeout
				shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
				defer cancel()

				// Attempt graceful shutdown
				if err := server.Shutdown(shutdownCtx); err != nil {
					return goerr.Wrap(err, "failed to shutdown server gracefully")
				}

				logging.Default().Info("Server shutdown completed")
				return nil
			}
		},
	}
}
