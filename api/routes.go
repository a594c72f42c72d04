package api

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/danielgtaylor/huma/v2"
	"github.com/danielgtaylor/huma/v2/adapters/humago"
	"github.com/sirupsen/logrus"

	"github.com/carson-networks/shared-ledger/internal/handlers/v1/account"
	"github.com/carson-networks/shared-ledger/internal/handlers/v1/event"
	"github.com/carson-networks/shared-ledger/internal/handlers/v1/status"
	"github.com/carson-networks/shared-ledger/internal/logging"
	"github.com/carson-networks/shared-ledger/internal/service"
)

const shutdownTimeout = 10 * time.Second

type Rest struct {
	Logger  *logrus.Logger
	Port    string
	Service *service.Service
	DB      status.Pinger
}

// Router builds the HTTP handler serving every route.
func (r *Rest) Router() http.Handler {
	mux := http.NewServeMux()

	statusHandler := status.NewHandler(r.DB)
	mux.HandleFunc("/status", logging.LoggingWrapper("Status", r.Logger, statusHandler.Handler))
	mux.HandleFunc("GET /{$}", func(w http.ResponseWriter, req *http.Request) {
		http.Redirect(w, req, "/v1/accounts", http.StatusFound)
	})

	api := humago.New(mux, huma.DefaultConfig("Shared Ledger", "1.0.0"))
	api.UseMiddleware(logging.HumaMiddleware(r.Logger))

	account.NewListAccountsHandler(r.Service.Account).Register(api)
	account.NewCreateAccountHandler(r.Service.Account).Register(api)
	account.NewGetAccountHandler(r.Service.Account).Register(api)
	account.NewDeleteAccountHandler(r.Service.Account).Register(api)
	event.NewListEventsHandler(r.Service.Event).Register(api)
	event.NewCreatePaymentHandler(r.Service.Event).Register(api)
	event.NewCreatePurchaseHandler(r.Service.Event).Register(api)

	return mux
}

// Serve listens until ctx is cancelled, then drains in-flight requests.
func (r *Rest) Serve(ctx context.Context) {
	server := http.Server{
		Addr:              ":" + r.Port,
		Handler:           r.Router(),
		ReadTimeout:       time.Duration(30) * time.Second,
		WriteTimeout:      time.Duration(30) * time.Second,
		IdleTimeout:       time.Duration(10) * time.Second,
		ReadHeaderTimeout: time.Duration(10) * time.Second,
	}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := server.Shutdown(shutdownCtx); err != nil {
			r.Logger.WithError(err).Error("HttpServer.Serve.shutdown error")
		}
	}()

	r.Logger.WithField("port", r.Port).Info("HttpServer.Serve.listening")
	err := server.ListenAndServe()
	if err != nil && !errors.Is(err, http.ErrServerClosed) {
		r.Logger.WithError(err).Error("HttpServer.Serve.listen error")
	}
	r.Logger.Info("HttpServer.Serve.shutting down")
}
