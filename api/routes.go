package api

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/danielgtaylor/huma/v2"
	"github.com/danielgtaylor/huma/v2/adapters/humago"
	"github.com/sirupsen/logrus"

	"github.com/carson-networks/finance-tracker/internal/handlers/v1/account"
	"github.com/carson-networks/finance-tracker/internal/handlers/v1/status"
	"github.com/carson-networks/finance-tracker/internal/handlers/v1/summary"
	"github.com/carson-networks/finance-tracker/internal/handlers/v1/transaction"
	"github.com/carson-networks/finance-tracker/internal/logging"
	"github.com/carson-networks/finance-tracker/internal/service"
)

const shutdownTimeout = 15 * time.Second

type Rest struct {
	Logger   *logrus.Logger
	Port     string
	Service  *service.Service
	Database status.Pinger
}

// Handler builds the router: /status as a plain handler, everything else
// through huma.
func (r *Rest) Handler() http.Handler {
	mux := http.NewServeMux()

	statusHandler := status.NewHandler(r.Database)
	mux.HandleFunc("/status", logging.LoggingWrapper("Status", r.Logger, statusHandler.Handler))

	api := humago.New(mux, huma.DefaultConfig("Finance Tracker", "1.0.0"))
	api.UseMiddleware(logging.Middleware(r.Logger))

	transactions := r.Service.Transaction
	transaction.NewCreateTransactionHandler(transactions).Register(api)
	transaction.NewListTransactionsHandler(transactions).Register(api)
	transaction.NewGetTransactionHandler(transactions).Register(api)
	transaction.NewUpdateTransactionHandler(transactions).Register(api)
	transaction.NewDeleteTransactionHandler(transactions).Register(api)

	accounts := r.Service.Account
	account.NewCreateAccountHandler(accounts).Register(api)
	account.NewListAccountsHandler(accounts).Register(api)
	account.NewListBalancesHandler(accounts).Register(api)
	account.NewUpdateAccountHandler(accounts).Register(api)
	account.NewDeleteAccountHandler(accounts).Register(api)

	summaries := r.Service.Summary
	summary.NewMonthlySummaryHandler(summaries).Register(api)
	summary.NewMonthlySeriesHandler(summaries).Register(api)
	summary.NewTotalsHandler(summaries).Register(api)

	return mux
}

// Serve listens until ctx is cancelled, then drains in-flight requests.
func (r *Rest) Serve(ctx context.Context) error {
	server := http.Server{
		Addr:              ":" + r.Port,
		Handler:           r.Handler(),
		ReadTimeout:       time.Duration(30) * time.Second,
		WriteTimeout:      time.Duration(30) * time.Second,
		IdleTimeout:       time.Duration(10) * time.Second,
		ReadHeaderTimeout: time.Duration(10) * time.Second,
	}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), shutdownTimeout)
		defer cancel()
		if err := server.Shutdown(shutdownCtx); err != nil {
			r.Logger.WithError(err).Error("HttpServer.Serve.shutdown error")
		}
	}()

	r.Logger.WithField("port", r.Port).Info("HttpServer.Serve.listening")
	err := server.ListenAndServe()
	if err != nil && !errors.Is(err, http.ErrServerClosed) {
		r.Logger.WithError(err).Error("HttpServer.Serve.listen error")
		return err
	}
	r.Logger.Info("HttpServer.Serve.shutting down")
	return nil
}
