package webpay_test

import (
	"context"
	"errors"
	"log/slog"
	"os"
	"testing"
	"time"

	"github.com/DanielPopoola/webpay-gateway/internal/application"
	"github.com/DanielPopoola/webpay-gateway/internal/config"
	"github.com/DanielPopoola/webpay-gateway/internal/domain"
	"github.com/DanielPopoola/webpay-gateway/internal/infrastructure/webpay"
	"github.com/DanielPopoola/webpay-gateway/internal/mocks"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var quietLogger = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelError}))

func createRequest() application.CreateRequest {
	return application.CreateRequest{
		BuyOrder:  "order-001",
		SessionID: "session-001",
		Amount:    decimal.NewFromInt(5000),
		ReturnURL: "https://pay.example.com/trx/authorize/ref",
	}
}

func newRetryClient(inner application.PaymentGateway, retries int) application.PaymentGateway {
	return webpay.NewRetryClient(inner, config.RetryConfig{
		BaseDelay:  time.Millisecond,
		MaxRetries: retries,
	}, quietLogger)
}

func TestRetryClient_Create_Success(t *testing.T) {
	mockGateway := mocks.NewMockPaymentGateway(t)
	retryClient := newRetryClient(mockGateway, 3)

	expected := &application.CreateResponse{Token: "token-123", URL: "https://webpay/init"}

	mockGateway.EXPECT().
		Create(mock.Anything, createRequest()).
		Return(expected, nil).
		Once()

	resp, err := retryClient.Create(context.Background(), createRequest())

	require.NoError(t, err)
	assert.Equal(t, expected, resp)
}

func TestRetryClient_Create_RetriesWhileUnavailable(t *testing.T) {
	mockGateway := mocks.NewMockPaymentGateway(t)
	retryClient := newRetryClient(mockGateway, 3)

	expected := &application.CreateResponse{Token: "token-123", URL: "https://webpay/init"}
	unavailable := domain.NewGatewayUnavailableError(&webpay.APIError{StatusCode: 503, Message: "down"})

	// First two calls fail with 503
	mockGateway.EXPECT().
		Create(mock.Anything, createRequest()).
		Return(nil, unavailable).
		Twice()

	mockGateway.EXPECT().
		Create(mock.Anything, createRequest()).
		Return(expected, nil).
		Once()

	resp, err := retryClient.Create(context.Background(), createRequest())

	require.NoError(t, err)
	assert.Equal(t, expected, resp)
}

type ctxKey struct{}

// contextRecorder keeps the request id found in the context of each record.
type contextRecorder struct {
	seen []any
}

func (h *contextRecorder) Enabled(context.Context, slog.Level) bool { return true }

func (h *contextRecorder) Handle(ctx context.Context, _ slog.Record) error {
	h.seen = append(h.seen, ctx.Value(ctxKey{}))
	return nil
}

func (h *contextRecorder) WithAttrs([]slog.Attr) slog.Handler { return h }
func (h *contextRecorder) WithGroup(string) slog.Handler      { return h }

func TestRetryClient_Create_RetryLogCarriesRequestContext(t *testing.T) {
	mockGateway := mocks.NewMockPaymentGateway(t)
	recorder := &contextRecorder{}
	retryClient := webpay.NewRetryClient(mockGateway, config.RetryConfig{
		BaseDelay:  time.Millisecond,
		MaxRetries: 1,
	}, slog.New(recorder))

	unavailable := domain.NewGatewayUnavailableError(errors.New("connection refused"))
	mockGateway.EXPECT().Create(mock.Anything, createRequest()).Return(nil, unavailable).Once()
	mockGateway.EXPECT().Create(mock.Anything, createRequest()).Return(&application.CreateResponse{Token: "t"}, nil).Once()

	ctx := context.WithValue(context.Background(), ctxKey{}, "req-42")
	_, err := retryClient.Create(ctx, createRequest())

	require.NoError(t, err)
	require.Len(t, recorder.seen, 1)
	assert.Equal(t, "req-42", recorder.seen[0])
}

func TestRetryClient_Create_DoesNotRetryRejection(t *testing.T) {
	mockGateway := mocks.NewMockPaymentGateway(t)
	retryClient := newRetryClient(mockGateway, 3)

	rejected := domain.NewGatewayRejectedError("invalid amount", &webpay.APIError{StatusCode: 422, Message: "invalid amount"})

	// Should only be called once (no retry on 4xx)
	mockGateway.EXPECT().
		Create(mock.Anything, createRequest()).
		Return(nil, rejected).
		Once()

	resp, err := retryClient.Create(context.Background(), createRequest())

	require.Error(t, err)
	assert.Nil(t, resp)
	assert.True(t, domain.IsKind(err, domain.KindGatewayRejected))
}

func TestRetryClient_Create_ExhaustsRetries(t *testing.T) {
	mockGateway := mocks.NewMockPaymentGateway(t)
	retryClient := newRetryClient(mockGateway, 2)

	unavailable := domain.NewGatewayUnavailableError(errors.New("connection refused"))

	// One attempt plus two retries
	mockGateway.EXPECT().
		Create(mock.Anything, createRequest()).
		Return(nil, unavailable).
		Times(3)

	resp, err := retryClient.Create(context.Background(), createRequest())

	require.Error(t, err)
	assert.Nil(t, resp)
	assert.True(t, domain.IsKind(err, domain.KindGatewayUnavailable))
}

func TestRetryClient_Create_NoRetriesByDefault(t *testing.T) {
	mockGateway := mocks.NewMockPaymentGateway(t)
	retryClient := newRetryClient(mockGateway, 0)

	mockGateway.EXPECT().
		Create(mock.Anything, createRequest()).
		Return(nil, domain.NewGatewayUnavailableError(errors.New("timeout"))).
		Once()

	_, err := retryClient.Create(context.Background(), createRequest())

	assert.Error(t, err)
}

func TestRetryClient_CommitAndRefundAreNotRetried(t *testing.T) {
	mockGateway := mocks.NewMockPaymentGateway(t)
	retryClient := newRetryClient(mockGateway, 3)

	unavailable := domain.NewGatewayUnavailableError(errors.New("timeout"))
	refundReq := application.RefundRequest{Token: "token-123", Amount: decimal.NewFromInt(100)}

	mockGateway.EXPECT().Commit(mock.Anything, "token-123").Return(nil, unavailable).Once()
	mockGateway.EXPECT().Refund(mock.Anything, refundReq).Return(nil, unavailable).Once()

	_, err := retryClient.Commit(context.Background(), "token-123")
	assert.Error(t, err)

	_, err = retryClient.Refund(context.Background(), refundReq)
	assert.Error(t, err)
}
