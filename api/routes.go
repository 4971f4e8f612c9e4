package api

import (
	"net/http"
	"time"

	"github.com/danielgtaylor/huma/v2"
	"github.com/danielgtaylor/huma/v2/adapters/humago"
	"github.com/sirupsen/logrus"

	"github.com/carson-networks/ledger-server/internal/backup"
	"github.com/carson-networks/ledger-server/internal/handlers/v1/account"
	"github.com/carson-networks/ledger-server/internal/handlers/v1/backuphandler"
	"github.com/carson-networks/ledger-server/internal/handlers/v1/category"
	"github.com/carson-networks/ledger-server/internal/handlers/v1/payment"
	"github.com/carson-networks/ledger-server/internal/handlers/v1/status"
	"github.com/carson-networks/ledger-server/internal/logging"
	"github.com/carson-networks/ledger-server/internal/operator"
	"github.com/carson-networks/ledger-server/internal/service"
)

type Rest struct {
	Logger   *logrus.Logger
	Port     string
	Service  *service.Service
	Operator *operator.OperatorDelegator
	Backup   *backup.Service
}

func (r *Rest) Serve() {
	mux := http.NewServeMux()

	humaAPI := humago.New(mux, huma.DefaultConfig("ledger-server", "1.0.0"))

	// Every request carries its own LogData so handlers can attach timings.
	humaAPI.UseMiddleware(func(ctx huma.Context, next func(huma.Context)) {
		logData := logging.NewLogData(r.Logger)
		next(huma.WithContext(ctx, logging.ContextWithLogData(ctx.Context(), logData)))
	})

	payment.NewCreatePaymentHandler(r.Operator).Register(humaAPI)
	payment.NewUpdatePaymentHandler(r.Operator).Register(humaAPI)
	payment.NewDeletePaymentHandler(r.Operator).Register(humaAPI)
	payment.NewListPaymentsHandler(r.Service.Payment).Register(humaAPI)

	account.NewCreateAccountHandler(r.Operator).Register(humaAPI)
	account.NewGetAccountHandler(r.Service.Account).Register(humaAPI)
	account.NewListAccountsHandler(r.Service.Account).Register(humaAPI)

	category.NewCreateCategoryHandler(r.Operator).Register(humaAPI)
	category.NewListCategoriesHandler(r.Service.Category).Register(humaAPI)

	backuphandler.NewHandler(r.Backup).Register(humaAPI)

	statusHandler := status.NewHandler()
	mux.HandleFunc("/status", logging.LoggingWrapper("Status", r.Logger, statusHandler.Handler))

	server := http.Server{
		Addr:              ":" + r.Port,
		Handler:           mux,
		ReadTimeout:       time.Duration(30) * time.Second,
		WriteTimeout:      time.Duration(30) * time.Second,
		IdleTimeout:       time.Duration(10) * time.Second,
		ReadHeaderTimeout: time.Duration(10) * time.Second,
	}

	r.Logger.Info("HttpServer.Serve.listening")
	err := server.ListenAndServe()
	if err != nil {
		r.Logger.WithError(err).Error("HttpServer.Serve.listen error")
	}
	r.Logger.Info("HttpServer.Serve.shutting down")
}
