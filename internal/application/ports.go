package application

import (
	"context"

	"github.com/DanielPopoola/webpay-gateway/internal/domain"
)

// PaymentGateway is the port for the external card payment gateway.
type PaymentGateway interface {
	Create(ctx context.Context, req CreateRequest) (*CreateResponse, error)
	Commit(ctx context.Context, token string) (*CommitResponse, error)
	Refund(ctx context.Context, req RefundRequest) (*RefundResponse, error)
}

// TransactionStore is the port for settlement record persistence.
type TransactionStore interface {
	Exists(ctx context.Context, buyOrder string) (bool, error)
	Find(ctx context.Context, buyOrder, authCode string) (*domain.Transaction, error)
	FindByBuyOrder(ctx context.Context, buyOrder string) (*domain.Transaction, error)
	Insert(ctx context.Context, trx *domain.Transaction) (string, error)
	Ping(ctx context.Context) error
}

// ReferenceCodec turns a buy order into the opaque callback reference and back.
type ReferenceCodec interface {
	Encode(plaintext string) (string, error)
	Decode(reference string) (string, error)
}

// OrderLocker serializes work on a single buy order. The returned function
// releases the lock and is safe to call once.
type OrderLocker interface {
	Lock(ctx context.Context, key string) (func(), error)
}
