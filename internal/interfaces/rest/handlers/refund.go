package handlers

import (
	"context"

	"github.com/DanielPopoola/webpay-gateway/internal/api"
	"github.com/DanielPopoola/webpay-gateway/internal/application/services"
	"github.com/DanielPopoola/webpay-gateway/internal/interfaces/rest"
)

func (h *Handlers) RefundTransaction(
	ctx context.Context,
	request api.RefundTransactionRequestObject,
) (api.RefundTransactionResponseObject, error) {

	req := request.Body

	cmd := services.RefundCommand{
		BuyOrder:     rest.Sanitize(req.BuyOrder),
		AuthCode:     rest.Sanitize(req.AuthCode),
		Amount:       rest.Sanitize(string(req.Amount)),
		CommerceCode: rest.Sanitize(req.CommerceCode),
	}

	resp, err := h.coordinator.Refund(ctx, cmd)
	if err != nil {
		env := rest.BuildErrorEnvelope(err)
		return api.RefundTransaction200JSONResponse{Status: env.Status, Error: env.Error}, nil
	}

	return api.RefundTransaction200JSONResponse{
		Status:   api.EnvelopeStatusOk,
		Response: rest.ToAPIRefund(resp),
	}, nil
}
