package handlers

import (
	"context"

	"github.com/DanielPopoola/webpay-gateway/internal/api"
	"github.com/DanielPopoola/webpay-gateway/internal/interfaces/rest"
)

func (h *Handlers) GetTransactionStatus(
	ctx context.Context,
	request api.GetTransactionStatusRequestObject,
) (api.GetTransactionStatusResponseObject, error) {

	trx, err := h.coordinator.GetTransaction(ctx, rest.Sanitize(request.BuyOrder))
	if err != nil {
		env := rest.BuildErrorEnvelope(err)
		return api.GetTransactionStatus200JSONResponse{Status: env.Status, Error: env.Error}, nil
	}

	out := rest.ToAPITransaction(trx)
	return api.GetTransactionStatus200JSONResponse{
		Status:      api.EnvelopeStatusOk,
		Transaction: &out,
	}, nil
}

func (h *Handlers) HealthCheck(
	ctx context.Context,
	_ api.HealthCheckRequestObject,
) (api.HealthCheckResponseObject, error) {

	if err := h.coordinator.Ready(ctx); err != nil {
		h.logger.ErrorContext(ctx, "health check failed", "error", err)
		return api.HealthCheck503JSONResponse{Status: api.EnvelopeStatusError, Error: rest.CodeStoreUnavailable}, nil
	}
	return api.HealthCheck200JSONResponse{Status: api.EnvelopeStatusOk}, nil
}
