package services

import (
	"context"
	"errors"

	"github.com/DanielPopoola/webpay-gateway/internal/application"
	"github.com/DanielPopoola/webpay-gateway/internal/domain"
)

// Refund reverses or nullifies part or all of a committed transaction. The
// record is located by buy order and authorization code and the refund is
// issued against the token it was committed with.
func (s *TransactionService) Refund(ctx context.Context, cmd RefundCommand) (*application.RefundResponse, error) {
	resp, err := s.refund(ctx, cmd)
	if err != nil {
		s.logFailure(ctx, "refund failed", err,
			"buy_order", cmd.BuyOrder,
			"authorization_code", cmd.AuthCode,
		)
		return nil, err
	}

	s.logger.InfoContext(ctx, "refund accepted",
		"buy_order", cmd.BuyOrder,
		"type", resp.Type,
		"balance", resp.Balance.String(),
	)
	return resp, nil
}

func (s *TransactionService) refund(ctx context.Context, cmd RefundCommand) (*application.RefundResponse, error) {
	if cmd.BuyOrder == "" || len(cmd.BuyOrder) > domain.MaxBuyOrderLength {
		return nil, domain.NewValidationError(domain.ErrCodeInvalidBuyOrder, "buy order is required")
	}
	if cmd.AuthCode == "" {
		return nil, domain.NewValidationError(domain.ErrCodeInvalidAuthCode, "authorization code is required")
	}
	amount, err := domain.ParseAmount(cmd.Amount)
	if err != nil {
		return nil, err
	}

	trx, err := s.store.Find(ctx, cmd.BuyOrder, cmd.AuthCode)
	if err != nil {
		if errors.Is(err, domain.ErrTransactionNotFound) {
			return nil, domain.NewTransactionNotFoundError(domain.ErrCodeAuthCodeNotFound, cmd.BuyOrder)
		}
		return nil, domain.NewStorageError(err)
	}
	if !trx.IsRefundable() {
		s.logger.WarnContext(ctx, "transaction is not refundable", "buy_order", trx.BuyOrder, "id", trx.ID)
		return nil, domain.NewTransactionNotFoundError(domain.ErrCodeAuthCodeNotFound, cmd.BuyOrder)
	}
	if !trx.CanRefund(amount) {
		return nil, domain.NewValidationError(domain.ErrCodeInvalidAmount, "refund amount exceeds the committed amount")
	}

	resp, err := s.gateway.Refund(context.WithoutCancel(ctx), application.RefundRequest{
		Token:        trx.GatewayToken,
		BuyOrder:     trx.BuyOrder,
		CommerceCode: cmd.CommerceCode,
		Amount:       amount,
	})
	if err != nil {
		return nil, asGatewayError(err)
	}

	if !resp.Succeeded() {
		detail := resp.Type
		if detail == "" {
			detail = "NAN"
		}
		code := resp.ResponseCode
		return nil, domain.NewUnexpectedResponseError(domain.ErrCodeUnexpectedResponse, detail, &code)
	}

	return resp, nil
}
