package webpay

import (
	"context"
	"log/slog"
	"time"

	"github.com/DanielPopoola/webpay-gateway/internal/application"
	"github.com/DanielPopoola/webpay-gateway/internal/config"
	"github.com/DanielPopoola/webpay-gateway/internal/domain"
	"github.com/cenkalti/backoff/v4"
)

// RetryClient retries transaction creation while the gateway is
// unavailable. Commit and refund move money and are passed through once.
type RetryClient struct {
	inner      application.PaymentGateway
	baseDelay  time.Duration
	maxRetries int
	logger     *slog.Logger
}

func NewRetryClient(inner application.PaymentGateway, cfg config.RetryConfig, logger *slog.Logger) application.PaymentGateway {
	return &RetryClient{
		inner:      inner,
		baseDelay:  cfg.BaseDelay,
		maxRetries: cfg.MaxRetries,
		logger:     logger,
	}
}

func (r *RetryClient) Create(ctx context.Context, req application.CreateRequest) (*application.CreateResponse, error) {
	operation := func() (*application.CreateResponse, error) {
		resp, err := r.inner.Create(ctx, req)
		if err != nil && !isRetryable(err) {
			return nil, backoff.Permanent(err)
		}
		return resp, err
	}

	notify := func(err error, wait time.Duration) {
		r.logger.WarnContext(ctx, "webpay create failed, retrying",
			"buy_order", req.BuyOrder,
			"wait", wait,
			"error", err,
		)
	}

	return backoff.RetryNotifyWithData(operation, r.policy(ctx), notify)
}

func (r *RetryClient) Commit(ctx context.Context, token string) (*application.CommitResponse, error) {
	return r.inner.Commit(ctx, token)
}

func (r *RetryClient) Refund(ctx context.Context, req application.RefundRequest) (*application.RefundResponse, error) {
	return r.inner.Refund(ctx, req)
}

func (r *RetryClient) policy(ctx context.Context) backoff.BackOff {
	exp := backoff.NewExponentialBackOff()
	if r.baseDelay > 0 {
		exp.InitialInterval = r.baseDelay
	}
	exp.MaxElapsedTime = 0

	return backoff.WithContext(backoff.WithMaxRetries(exp, uint64(r.maxRetries)), ctx)
}

func isRetryable(err error) bool {
	return domain.IsKind(err, domain.KindGatewayUnavailable)
}
