package api

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/danielgtaylor/huma/v2/adapters/humago"
	"github.com/rs/cors"
	"github.com/sirupsen/logrus"

	"github.com/carson-networks/session-ledger/internal/config"
	"github.com/carson-networks/session-ledger/internal/handlers/v1/status"
	"github.com/carson-networks/session-ledger/internal/handlers/v1/transaction"
	"github.com/carson-networks/session-ledger/internal/logging"
	"github.com/carson-networks/session-ledger/internal/service"
)

const shutdownTimeout = 10 * time.Second

type pinger interface {
	Ping(ctx context.Context) error
}

type Rest struct {
	Logger   *logrus.Logger
	Config   *config.Config
	Service  *service.Service
	Database pinger
}

// Handler builds the full route table: the huma transaction API, the plain
// /status probe, and CORS when origins are configured.
func (r *Rest) Handler() http.Handler {
	mux := http.NewServeMux()

	api := humago.New(mux, transaction.NewAPIConfig("Session Ledger", "1.0.0"))
	api.UseMiddleware(logging.Middleware(r.Logger))
	transaction.RegisterAll(api, r.Service.Transaction, r.Config.CookieSecure)

	statusHandler := status.NewHandler(r.Database)
	mux.HandleFunc("/status", logging.LoggingWrapper("Status", r.Logger, statusHandler.Handler))

	if len(r.Config.CORSAllowedOrigins) == 0 {
		return mux
	}

	corsConf := cors.New(cors.Options{
		AllowedOrigins:   r.Config.CORSAllowedOrigins,
		AllowedMethods:   []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowedHeaders:   []string{"Content-Type"},
		AllowCredentials: true,
	})
	return corsConf.Handler(mux)
}

// Serve listens until ctx is cancelled, then drains in-flight requests.
func (r *Rest) Serve(ctx context.Context) error {
	server := http.Server{
		Addr:              ":" + r.Config.HTTPPort,
		Handler:           r.Handler(),
		ReadTimeout:       time.Duration(30) * time.Second,
		WriteTimeout:      time.Duration(30) * time.Second,
		IdleTimeout:       time.Duration(10) * time.Second,
		ReadHeaderTimeout: time.Duration(10) * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		r.Logger.WithField("port", r.Config.HTTPPort).Info("HttpServer.Serve.listening")
		errCh <- server.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		r.Logger.WithError(err).Error("HttpServer.Serve.listen error")
		return err
	case <-ctx.Done():
	}

	r.Logger.Info("HttpServer.Serve.shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		r.Logger.WithError(err).Error("HttpServer.Serve.shutdown error")
		return err
	}
	return nil
}
