package handlers

import (
	"context"

	"github.com/DanielPopoola/webpay-gateway/internal/api"
	"github.com/DanielPopoola/webpay-gateway/internal/application/services"
	"github.com/DanielPopoola/webpay-gateway/internal/interfaces/rest"
)

func (h *Handlers) CreateTransaction(
	ctx context.Context,
	request api.CreateTransactionRequestObject,
) (api.CreateTransactionResponseObject, error) {

	req := request.Body

	cmd := services.CreateCommand{
		BuyOrder:  rest.Sanitize(req.BuyOrder),
		SessionID: rest.Sanitize(req.SessionId),
		Amount:    rest.Sanitize(string(req.Amount)),
		UserAgent: rest.SanitizePtr(request.Params.UserAgent),
	}

	result, err := h.coordinator.Create(ctx, cmd)
	if err != nil {
		env := rest.BuildErrorEnvelope(err)
		return api.CreateTransaction200JSONResponse{Status: env.Status, Error: env.Error}, nil
	}

	return api.CreateTransaction200JSONResponse{
		Status: api.EnvelopeStatusOk,
		Url:    result.URL,
		Token:  result.Token,
	}, nil
}
