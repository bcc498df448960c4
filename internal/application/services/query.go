package services

import (
	"context"
	"errors"

	"github.com/DanielPopoola/webpay-gateway/internal/domain"
)

// GetTransaction returns the settlement record for buyOrder.
func (s *TransactionService) GetTransaction(ctx context.Context, buyOrder string) (*domain.Transaction, error) {
	if buyOrder == "" || len(buyOrder) > domain.MaxBuyOrderLength {
		return nil, domain.NewValidationError(domain.ErrCodeInvalidBuyOrder, "buy order is invalid")
	}

	trx, err := s.store.FindByBuyOrder(ctx, buyOrder)
	if err != nil {
		if errors.Is(err, domain.ErrTransactionNotFound) {
			return nil, domain.NewTransactionNotFoundError(domain.ErrCodeTransactionNotFound, buyOrder)
		}
		return nil, domain.NewStorageError(err)
	}
	return trx, nil
}

// Ready reports whether the transaction store can serve requests.
func (s *TransactionService) Ready(ctx context.Context) error {
	if err := s.store.Ping(ctx); err != nil {
		return domain.NewStorageError(err)
	}
	return nil
}
