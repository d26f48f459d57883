package cmd

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/discshelf/discnamer/internal/handlers"
	"github.com/discshelf/discnamer/internal/identify"
	"github.com/spf13/cobra"
)

func newServeCmd() *cobra.Command {
	var port string
	var provider string
	var model string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start web server for disc photo identification",
		Long: `Starts a small HTTP API on the specified port.

POST a disc photo to /api/identify to get the identified title and the
filename it would be renamed to. Recent identifications are listed at
/api/identifications.`,
		Example: `  # Start server on default port 8888
  discnamer serve

  # Start server on custom port with a specific provider
  discnamer serve --port 3000 --provider ollama`,
		RunE: func(cmd *cobra.Command, args []string) error {
			service, err := identify.NewService(provider, model)
			if err != nil {
				return err
			}
			if err := service.CheckCredentials(); err != nil {
				return err
			}

			handler := handlers.New(service)

			// Set up routes
			mux := http.NewServeMux()
			mux.HandleFunc("/api/identify", handler.HandleIdentify)
			mux.HandleFunc("/api/identifications", handler.HandleIdentifications)
			mux.HandleFunc("/api/identifications/", handler.HandleIdentificationDetail)
			mux.HandleFunc("/healthcheck", func(w http.ResponseWriter, r *http.Request) {
				if _, err := w.Write([]byte("OK")); err != nil {
					slog.Error("Unable to write healthcheck", "err", err)
				}
			})

			addr := ":" + port
			server := &http.Server{
				Addr:    addr,
				Handler: mux,
			}

			// Start server in goroutine
			serverErr := make(chan error, 1)
			go func() {
				slog.Info("Discnamer interface available", "addr", addr, "url", "http://localhost"+addr)
				if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
					serverErr <- err
				}
			}()

			// Wait for context cancellation (Ctrl+C) or server error
			select {
			case <-cmd.Context().Done():
				slog.Info("Shutting down server...")
				// Give server 5 seconds to shut down gracefully
				shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
				defer cancel()
				if err := server.Shutdown(shutdownCtx); err != nil {
					slog.Error("Server shutdown failed", "err", err)
					return err
				}
				slog.Info("Server stopped")
				return nil
			case err := <-serverErr:
				return err
			}
		},
	}

	cmd.Flags().StringVarP(&port, "port", "p", "8888", "Port to listen on")
	cmd.Flags().StringVar(&provider, "provider", "", "LLM provider (anthropic, openai, ollama, or gemini)")
	cmd.Flags().StringVar(&model, "model", "", "Model name (defaults to provider's default)")

	return cmd
}
