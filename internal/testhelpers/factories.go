package testhelpers

import (
	"testing"
	"time"

	"github.com/DanielPopoola/webpay-gateway/internal/application"
	"github.com/DanielPopoola/webpay-gateway/internal/domain"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

// UniqueBuyOrder returns a buy order that fits the gateway's 26 character limit.
func UniqueBuyOrder() string {
	return "ord-" + uuid.NewString()[:18]
}

// CommitResponse is an approved commit for buyOrder.
func CommitResponse(buyOrder string) *application.CommitResponse {
	date := time.Date(2026, 5, 22, 16, 41, 21, 0, time.UTC)
	return &application.CommitResponse{
		ResponseCode:       0,
		BuyOrder:           buyOrder,
		SessionID:          "session-001",
		AuthorizationCode:  "1213",
		PaymentTypeCode:    "VN",
		Amount:             decimal.NewFromInt(10000),
		InstallmentsNumber: 0,
		InstallmentsAmount: decimal.Zero,
		CardNumber:         "6623",
		Status:             "AUTHORIZED",
		VCI:                "TSY",
		AccountingDate:     "0522",
		TransactionDate:    &date,
	}
}

// CreateTransaction builds a committed transaction for buyOrder.
func CreateTransaction(t *testing.T, buyOrder string) *domain.Transaction {
	t.Helper()
	date := time.Date(2026, 5, 22, 16, 41, 21, 0, time.UTC)

	trx, err := domain.NewTransaction(domain.TransactionParams{
		BuyOrder:           buyOrder,
		SessionID:          "session-001",
		AuthorizationCode:  "1213",
		PaymentTypeCode:    "VC",
		Amount:             decimal.NewFromInt(10000),
		InstallmentsNumber: 3,
		InstallmentsAmount: decimal.NewFromInt(3334),
		CardNumber:         "XXXXXXXXXXXX6623",
		GatewayStatus:      "AUTHORIZED",
		VCI:                "TSY",
		GatewayToken:       "01ab23cd45ef67",
		TransactionDate:    &date,
	}, time.Now())
	require.NoError(t, err)
	return trx
}
