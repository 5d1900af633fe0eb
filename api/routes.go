package api

import (
	"net/http"
	"time"

	"github.com/danielgtaylor/huma/v2"
	"github.com/danielgtaylor/huma/v2/adapters/humago"
	"github.com/sirupsen/logrus"

	authpkg "github.com/fintrackhq/fintrack-server/internal/auth"
	authhandler "github.com/fintrackhq/fintrack-server/internal/handlers/v1/auth"
	"github.com/fintrackhq/fintrack-server/internal/handlers/v1/category"
	"github.com/fintrackhq/fintrack-server/internal/handlers/v1/status"
	"github.com/fintrackhq/fintrack-server/internal/handlers/v1/transaction"
	"github.com/fintrackhq/fintrack-server/internal/handlers/v1/user"
	"github.com/fintrackhq/fintrack-server/internal/logging"
	"github.com/fintrackhq/fintrack-server/internal/operator"
	"github.com/fintrackhq/fintrack-server/internal/service"
	"github.com/fintrackhq/fintrack-server/internal/storage"
)

type Rest struct {
	Logger    *logrus.Logger
	Port      string
	JWTSecret string
	Storage   *storage.Storage
	Operator  *operator.OperatorDelegator
	Service   *service.Service
}

// Routes builds the full API surface on a fresh mux. Split from Serve so
// tests can exercise the routing without binding a port.
func (r *Rest) Routes() *http.ServeMux {
	mux := http.NewServeMux()

	humaConfig := huma.DefaultConfig("fintrack-server", "1.0.0")
	humaAPI := humago.New(mux, humaConfig)
	humaAPI.UseMiddleware(logging.Middleware(r.Logger))

	authMiddleware := authpkg.Middleware(humaAPI, r.JWTSecret)

	transaction.NewCreateTransactionHandler(r.Operator).Register(humaAPI)
	transaction.NewListTransactionsHandler(r.Service.Transaction, authMiddleware).Register(humaAPI)
	transaction.NewGetTransactionHandler(r.Service.Transaction).Register(humaAPI)
	transaction.NewUpdateTransactionHandler(r.Service.Transaction).Register(humaAPI)

	category.NewCreateCategoryHandler(r.Service.Category).Register(humaAPI)
	category.NewListCategoriesHandler(r.Service.Category).Register(humaAPI)
	category.NewUpdateCategoryHandler(r.Service.Category).Register(humaAPI)
	category.NewDeleteCategoryHandler(r.Service.Category).Register(humaAPI)

	user.NewCreateUserHandler(r.Service.User).Register(humaAPI)
	user.NewGetUserHandler(r.Service.User).Register(humaAPI)
	user.NewListUsersHandler(r.Service.User).Register(humaAPI)
	user.NewDeleteUserHandler(r.Service.User).Register(humaAPI)
	user.NewReconcileBalanceHandler(r.Operator).Register(humaAPI)

	authhandler.NewLoginHandler(r.Service.User, r.JWTSecret).Register(humaAPI)
	authhandler.NewRegisterHandler(r.Service.User, r.JWTSecret).Register(humaAPI)

	statusHandler := status.NewHandler(r.Storage.DB)
	mux.HandleFunc("/status", logging.LoggingWrapper("Status", r.Logger, statusHandler.Handler))

	return mux
}

func (r *Rest) Serve() {
	server := http.Server{
		Addr:              ":" + r.Port,
		Handler:           r.Routes(),
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
