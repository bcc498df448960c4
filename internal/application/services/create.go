package services

import (
	"context"
	"fmt"
	"net/url"

	"github.com/DanielPopoola/webpay-gateway/internal/application"
	"github.com/DanielPopoola/webpay-gateway/internal/config"
	"github.com/DanielPopoola/webpay-gateway/internal/domain"
	"github.com/shopspring/decimal"
)

type CreateResult struct {
	URL   string
	Token string
}

// Create opens a transaction on the gateway and returns the URL the buyer
// must be sent to. Orders that already have a committed transaction are
// rejected before the gateway is contacted.
func (s *TransactionService) Create(ctx context.Context, cmd CreateCommand) (*CreateResult, error) {
	amount, err := s.validateCreate(cmd)
	if err != nil {
		s.logFailure(ctx, "create transaction rejected", err, "buy_order", cmd.BuyOrder)
		return nil, err
	}

	exists, err := s.store.Exists(ctx, cmd.BuyOrder)
	if err != nil {
		err = domain.NewStorageError(err)
		s.logFailure(ctx, "create transaction failed", err, "buy_order", cmd.BuyOrder)
		return nil, err
	}
	if exists {
		err := domain.NewDuplicateOrderError(cmd.BuyOrder)
		s.logFailure(ctx, "create transaction rejected", err, "buy_order", cmd.BuyOrder)
		return nil, err
	}

	reference, err := s.codec.Encode(cmd.BuyOrder)
	if err != nil {
		s.logFailure(ctx, "create transaction failed", err, "buy_order", cmd.BuyOrder)
		return nil, err
	}

	returnURL, err := url.JoinPath(s.settings.CallbackBaseURL, s.settings.BasePath, "trx", "authorize", reference)
	if err != nil {
		err = domain.NewValidationError(domain.ErrCodeInvalidBuyOrder, fmt.Sprintf("cannot build callback url: %v", err))
		s.logFailure(ctx, "create transaction failed", err, "buy_order", cmd.BuyOrder)
		return nil, err
	}

	s.logger.InfoContext(ctx, "creating transaction", "buy_order", cmd.BuyOrder, "amount", amount.String())

	resp, err := s.gateway.Create(ctx, application.CreateRequest{
		BuyOrder:  cmd.BuyOrder,
		SessionID: cmd.SessionID,
		Amount:    amount,
		ReturnURL: returnURL,
	})
	if err != nil {
		err = asGatewayError(err)
		s.logFailure(ctx, "create transaction failed", err, "buy_order", cmd.BuyOrder)
		return nil, err
	}

	if resp.Token == "" || resp.URL == "" {
		err := &domain.DomainError{
			Kind:    domain.KindGatewayRejected,
			Code:    domain.ErrCodeUnexpectedResponse,
			Message: "gateway returned no token or url",
		}
		s.logFailure(ctx, "create transaction failed", err, "buy_order", cmd.BuyOrder)
		return nil, err
	}

	s.logger.InfoContext(ctx, "transaction created",
		"buy_order", cmd.BuyOrder,
		"token", tokenPrefix(resp.Token),
	)

	return &CreateResult{URL: resp.URL, Token: resp.Token}, nil
}

func (s *TransactionService) validateCreate(cmd CreateCommand) (decimal.Decimal, error) {
	if cmd.BuyOrder == "" {
		return decimal.Decimal{}, domain.NewValidationError(domain.ErrCodeInvalidBuyOrder, "buy order is required")
	}
	if len(cmd.BuyOrder) > domain.MaxBuyOrderLength {
		return decimal.Decimal{}, domain.NewValidationError(domain.ErrCodeInvalidBuyOrder,
			fmt.Sprintf("buy order exceeds %d characters", domain.MaxBuyOrderLength))
	}
	if len(cmd.SessionID) > domain.MaxSessionIDLength {
		return decimal.Decimal{}, domain.NewValidationError(domain.ErrCodeInvalidSessionID,
			fmt.Sprintf("session id exceeds %d characters", domain.MaxSessionIDLength))
	}

	switch s.settings.SessionPolicy {
	case config.SessionPolicyUserAgent:
		if cmd.UserAgent == "" {
			return decimal.Decimal{}, domain.NewValidationError(domain.ErrCodeMissingUserAgent, "user agent header is required")
		}
	default:
		if cmd.SessionID == "" {
			return decimal.Decimal{}, domain.NewValidationError(domain.ErrCodeInvalidSessionID, "session id is required")
		}
	}

	return domain.ParseAmount(cmd.Amount)
}
