package services

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"strconv"

	"github.com/DanielPopoola/webpay-gateway/internal/domain"
)

// AuthorizeResult tells the HTTP layer where to send the buyer. Err is the
// failure behind a redirect to the failure page and is nil on success.
type AuthorizeResult struct {
	RedirectURL string
	Err         error
}

// Authorize commits the payment the buyer just completed on the gateway and
// persists the settlement record. It always produces a redirect; failures
// land on the failure page with whatever context is known.
func (s *TransactionService) Authorize(ctx context.Context, cmd AuthorizeCommand) (result AuthorizeResult) {
	var (
		buyOrder     string
		responseCode *int
	)

	defer func() {
		if r := recover(); r != nil {
			result.Err = &domain.DomainError{
				Kind:    domain.KindStorage,
				Code:    domain.ErrCodeStorage,
				Message: "authorize aborted",
				Err:     fmt.Errorf("panic: %v", r),
			}
		}

		if result.Err == nil {
			result.RedirectURL = withQuery(s.settings.SuccessURL, url.Values{"buyOrder": {buyOrder}})
			return
		}

		params := url.Values{}
		if buyOrder != "" {
			params.Set("buyOrder", buyOrder)
		}
		if responseCode != nil {
			params.Set("tbkResCode", strconv.Itoa(*responseCode))
		}
		result.RedirectURL = withQuery(s.settings.FailureURL, params)
		s.logFailure(ctx, "authorize transaction failed", result.Err,
			"buy_order", buyOrder,
			"token", tokenPrefix(cmd.Token),
		)
	}()

	// Without a token the failure redirect carries no buy order. The
	// reference is only decoded to log an abort.
	if cmd.Token == "" {
		if cmd.AbortToken != "" {
			attrs := []any{"token", tokenPrefix(cmd.AbortToken)}
			if order, err := s.codec.Decode(cmd.Reference); err == nil {
				attrs = append(attrs, "buy_order", order)
			}
			s.logger.InfoContext(ctx, "payment aborted by buyer", attrs...)
		}
		return AuthorizeResult{Err: domain.NewInvalidReferenceError(domain.ErrCodeInvalidToken, errors.New("token_ws is missing"))}
	}

	decoded, err := s.codec.Decode(cmd.Reference)
	if err != nil {
		return AuthorizeResult{Err: err}
	}
	buyOrder = decoded

	unlock, err := s.locker.Lock(ctx, buyOrder)
	if err != nil {
		return AuthorizeResult{Err: domain.NewStorageError(err)}
	}
	defer unlock()

	exists, err := s.store.Exists(ctx, buyOrder)
	if err != nil {
		return AuthorizeResult{Err: domain.NewStorageError(err)}
	}
	if exists {
		return AuthorizeResult{Err: domain.NewDuplicateOrderError(buyOrder)}
	}

	// From here on the gateway may settle money, so the buyer's connection
	// dropping must not stop the record from being written.
	workCtx := context.WithoutCancel(ctx)

	commit, err := s.gateway.Commit(workCtx, cmd.Token)
	if err != nil {
		if code, ok := domain.ResponseCodeOf(err); ok {
			responseCode = &code
		}
		return AuthorizeResult{Err: asGatewayError(err)}
	}

	code := commit.ResponseCode
	responseCode = &code

	if commit.ResponseCode != 0 {
		return AuthorizeResult{Err: domain.NewUnexpectedResponseError(
			domain.ErrCodeUnexpectedResponse, strconv.Itoa(commit.ResponseCode), responseCode)}
	}
	if commit.BuyOrder != buyOrder {
		return AuthorizeResult{Err: domain.NewUnexpectedResponseError(
			domain.ErrCodeResponseBuyOrder, commit.BuyOrder, responseCode)}
	}

	trx, err := domain.NewTransaction(domain.TransactionParams{
		BuyOrder:           commit.BuyOrder,
		SessionID:          commit.SessionID,
		AuthorizationCode:  commit.AuthorizationCode,
		PaymentTypeCode:    commit.PaymentTypeCode,
		Amount:             commit.Amount,
		InstallmentsNumber: commit.InstallmentsNumber,
		InstallmentsAmount: commit.InstallmentsAmount,
		CardNumber:         commit.CardNumber,
		GatewayStatus:      commit.Status,
		VCI:                commit.VCI,
		GatewayToken:       cmd.Token,
		TransactionDate:    commit.TransactionDate,
	}, s.now())
	if err != nil {
		unexpected := domain.NewUnexpectedResponseError(domain.ErrCodeUnexpectedResponse, "", responseCode)
		unexpected.Err = err
		return AuthorizeResult{Err: unexpected}
	}

	id, err := s.store.Insert(workCtx, trx)
	if err != nil {
		if errors.Is(err, domain.ErrDuplicateTransaction) {
			return AuthorizeResult{Err: domain.NewDuplicateOrderError(buyOrder)}
		}
		s.logger.ErrorContext(ctx, "transaction committed but not persisted",
			"buy_order", buyOrder,
			"authorization_code", trx.AuthorizationCode,
			"amount", trx.Amount.String(),
			"error", err,
		)
		return AuthorizeResult{Err: domain.NewStorageError(err)}
	}

	s.logger.InfoContext(ctx, "transaction authorized",
		"id", id,
		"buy_order", buyOrder,
		"authorization_code", trx.AuthorizationCode,
	)

	return AuthorizeResult{}
}
