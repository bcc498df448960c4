package handlers

import (
	"context"

	"github.com/DanielPopoola/webpay-gateway/internal/api"
	"github.com/DanielPopoola/webpay-gateway/internal/application/services"
	"github.com/DanielPopoola/webpay-gateway/internal/interfaces/rest"
)

func (h *Handlers) AuthorizeTransaction(
	ctx context.Context,
	request api.AuthorizeTransactionRequestObject,
) (api.AuthorizeTransactionResponseObject, error) {

	result := h.coordinator.Authorize(ctx, services.AuthorizeCommand{
		Reference:  rest.Sanitize(request.Reference),
		Token:      rest.SanitizePtr(request.Params.TokenWs),
		AbortToken: rest.SanitizePtr(request.Params.TBKTOKEN),
	})

	return api.AuthorizeTransaction302Response{
		Headers: api.RedirectResponseHeaders{Location: result.RedirectURL},
	}, nil
}

// AuthorizeTransactionForm handles the gateway posting token_ws as a form
// field. Query parameters win when both are present.
func (h *Handlers) AuthorizeTransactionForm(
	ctx context.Context,
	request api.AuthorizeTransactionFormRequestObject,
) (api.AuthorizeTransactionFormResponseObject, error) {

	token := rest.SanitizePtr(request.Params.TokenWs)
	abort := rest.SanitizePtr(request.Params.TBKTOKEN)
	if request.Body != nil {
		if token == "" {
			token = rest.SanitizePtr(request.Body.TokenWs)
		}
		if abort == "" {
			abort = rest.SanitizePtr(request.Body.TBKTOKEN)
		}
	}

	result := h.coordinator.Authorize(ctx, services.AuthorizeCommand{
		Reference:  rest.Sanitize(request.Reference),
		Token:      token,
		AbortToken: abort,
	})

	return api.AuthorizeTransactionForm302Response{
		Headers: api.RedirectResponseHeaders{Location: result.RedirectURL},
	}, nil
}
