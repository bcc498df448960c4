// Package router assembles the HTTP surface of the gateway.
package router

import (
	"fmt"
	"log/slog"
	"net/http"
	"strings"

	"github.com/DanielPopoola/webpay-gateway/internal/api"
	"github.com/DanielPopoola/webpay-gateway/internal/config"
	"github.com/DanielPopoola/webpay-gateway/internal/interfaces/rest"
	"github.com/DanielPopoola/webpay-gateway/internal/interfaces/rest/handlers"
	"github.com/DanielPopoola/webpay-gateway/internal/interfaces/rest/middleware"
	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
)

type Dependencies struct {
	Coordinator handlers.TransactionCoordinator
	Server      config.ServerConfig
	APIKey      string
	// FailureURL receives buyers whose gateway callback cannot be read.
	FailureURL string
	Logger     *slog.Logger
}

// Gateway callbacks always answer with a redirect, so they bypass schema
// validation and rate limiting.
var callbackOperations = []string{"authorizeTransaction", "authorizeTransactionForm"}

// New builds the router. Every route lives under Server.BasePath.
func New(deps Dependencies) (http.Handler, error) {
	logger := deps.Logger
	prefix := strings.TrimSuffix(deps.Server.BasePath, "/")

	doc, err := api.GetSwagger()
	if err != nil {
		return nil, err
	}
	validate, err := middleware.OpenAPIValidator(doc, prefix, logger, callbackOperations...)
	if err != nil {
		return nil, fmt.Errorf("building request validator: %w", err)
	}
	docs, err := api.NewDocs(prefix)
	if err != nil {
		return nil, fmt.Errorf("building api docs: %w", err)
	}

	callbackPrefix := prefix + "/trx/authorize/"
	isCallback := func(r *http.Request) bool {
		return strings.HasPrefix(r.URL.Path, callbackPrefix)
	}
	requestErrors := rest.RedirectOnCallback(isCallback, deps.FailureURL, logger, rest.RequestErrorHandler(logger))
	responseErrors := rest.RedirectOnCallback(isCallback, deps.FailureURL, logger, rest.ResponseErrorHandler(logger))

	r := chi.NewRouter()
	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(middleware.Logging(logger))
	r.Use(middleware.Recovery(logger))
	r.Use(middleware.RateLimit(deps.Server.RateLimitRPS, deps.Server.RateLimitBurst, isCallback))
	if deps.Server.RequestTimeout > 0 {
		r.Use(middleware.Timeout(deps.Server.RequestTimeout))
	}

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		rest.WriteError(w, http.StatusNotFound, "NOT_FOUND")
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		rest.WriteError(w, http.StatusMethodNotAllowed, "METHOD_NOT_ALLOWED")
	})

	api.RegisterDocsRoutes(r, prefix, docs)

	h := handlers.NewHandlers(deps.Coordinator, logger)
	strict := api.NewStrictHandlerWithOptions(h,
		[]api.StrictMiddlewareFunc{middleware.OperationLogger(logger)},
		api.StrictHTTPServerOptions{
			RequestErrorHandlerFunc:  requestErrors,
			ResponseErrorHandlerFunc: responseErrors,
		},
	)

	// Per operation middlewares wrap in order, so authentication runs
	// before schema validation.
	api.HandlerWithOptions(strict, api.ChiServerOptions{
		BaseURL:    prefix,
		BaseRouter: r,
		Middlewares: []api.MiddlewareFunc{
			api.MiddlewareFunc(validate),
			middleware.BearerAuth(deps.APIKey),
		},
		ErrorHandlerFunc: requestErrors,
	})

	return r, nil
}
