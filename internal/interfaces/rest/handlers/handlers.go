package handlers

import (
	"context"
	"log/slog"

	"github.com/DanielPopoola/webpay-gateway/internal/api"
	"github.com/DanielPopoola/webpay-gateway/internal/application"
	"github.com/DanielPopoola/webpay-gateway/internal/application/services"
	"github.com/DanielPopoola/webpay-gateway/internal/domain"
)

// TransactionCoordinator is what the handlers need from the service layer.
type TransactionCoordinator interface {
	Create(ctx context.Context, cmd services.CreateCommand) (*services.CreateResult, error)
	Authorize(ctx context.Context, cmd services.AuthorizeCommand) services.AuthorizeResult
	Refund(ctx context.Context, cmd services.RefundCommand) (*application.RefundResponse, error)
	GetTransaction(ctx context.Context, buyOrder string) (*domain.Transaction, error)
	Ready(ctx context.Context) error
}

// Handlers implements the OpenAPI StrictServerInterface
type Handlers struct {
	coordinator TransactionCoordinator
	logger      *slog.Logger
}

func NewHandlers(coordinator TransactionCoordinator, logger *slog.Logger) *Handlers {
	return &Handlers{
		coordinator: coordinator,
		logger:      logger,
	}
}

// Ensure Handlers implements StrictServerInterface
var _ api.StrictServerInterface = (*Handlers)(nil)
