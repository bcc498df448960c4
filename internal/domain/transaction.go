// Package domain encodes a settled Webpay transaction and its attributes
package domain

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Field limits imposed by the gateway.
const (
	MaxBuyOrderLength  = 26
	MaxSessionIDLength = 61
	cardSuffixLength   = 4
)

// Transaction is the normalized settlement record persisted after a
// successful commit. It is created once and never mutated.
type Transaction struct {
	ID                 string
	BuyOrder           string
	SessionID          string
	AuthorizationCode  string
	PaymentTypeCode    string
	Amount             decimal.Decimal
	InstallmentsNumber int
	InstallmentsAmount decimal.NullDecimal
	CardSuffix         *string
	GatewayStatus      string
	VCI                string
	GatewayToken       string
	CreatedAt          time.Time
}

// TransactionParams is the raw commit outcome before normalization.
type TransactionParams struct {
	BuyOrder           string
	SessionID          string
	AuthorizationCode  string
	PaymentTypeCode    string
	Amount             decimal.Decimal
	InstallmentsNumber int
	InstallmentsAmount decimal.Decimal
	CardNumber         string
	GatewayStatus      string
	VCI                string
	GatewayToken       string
	TransactionDate    *time.Time
}

var (
	ErrMissingBuyOrder    = errors.New("buy order is required")
	ErrNegativeAmount     = errors.New("amount cannot be negative")
	ErrNegativeInstalment = errors.New("installments amount cannot be negative")
)

// NewTransaction normalizes a commit outcome. Installments default to one,
// a zero installment amount is stored as null, and only the last four card
// characters are retained.
func NewTransaction(p TransactionParams, now time.Time) (*Transaction, error) {
	if p.BuyOrder == "" {
		return nil, ErrMissingBuyOrder
	}
	if p.Amount.IsNegative() {
		return nil, ErrNegativeAmount
	}
	if p.InstallmentsAmount.IsNegative() {
		return nil, ErrNegativeInstalment
	}

	trx := &Transaction{
		ID:                 uuid.New().String(),
		BuyOrder:           p.BuyOrder,
		SessionID:          p.SessionID,
		AuthorizationCode:  p.AuthorizationCode,
		PaymentTypeCode:    p.PaymentTypeCode,
		Amount:             p.Amount,
		InstallmentsNumber: p.InstallmentsNumber,
		CardSuffix:         CardSuffix(p.CardNumber),
		GatewayStatus:      p.GatewayStatus,
		VCI:                p.VCI,
		GatewayToken:       p.GatewayToken,
		CreatedAt:          now.UTC(),
	}

	if trx.InstallmentsNumber < 1 {
		trx.InstallmentsNumber = 1
	}
	if !p.InstallmentsAmount.IsZero() {
		trx.InstallmentsAmount = decimal.NewNullDecimal(p.InstallmentsAmount)
	}
	if p.TransactionDate != nil && !p.TransactionDate.IsZero() {
		trx.CreatedAt = p.TransactionDate.UTC()
	}

	return trx, nil
}

// CardSuffix keeps at most the last four characters of a card number.
func CardSuffix(cardNumber string) *string {
	if cardNumber == "" {
		return nil
	}
	runes := []rune(cardNumber)
	if len(runes) > cardSuffixLength {
		runes = runes[len(runes)-cardSuffixLength:]
	}
	suffix := string(runes)
	return &suffix
}

// IsRefundable reports whether the record still carries the gateway token
// a refund has to be issued against.
func (t *Transaction) IsRefundable() bool {
	return t.GatewayToken != ""
}

// CanRefund reports whether amount fits within the committed amount.
func (t *Transaction) CanRefund(amount decimal.Decimal) bool {
	return amount.IsPositive() && amount.LessThanOrEqual(t.Amount)
}

// Reconstitute - Special constructor for loading from storage
func Reconstitute(
	id, buyOrder, sessionID, authCode, paymentType string,
	amount decimal.Decimal,
	installments int,
	installmentsAmount decimal.NullDecimal,
	cardSuffix *string,
	status, vci, token string,
	createdAt time.Time,
) *Transaction {
	return &Transaction{
		ID:                 id,
		BuyOrder:           buyOrder,
		SessionID:          sessionID,
		AuthorizationCode:  authCode,
		PaymentTypeCode:    paymentType,
		Amount:             amount,
		InstallmentsNumber: installments,
		InstallmentsAmount: installmentsAmount,
		CardSuffix:         cardSuffix,
		GatewayStatus:      status,
		VCI:                vci,
		GatewayToken:       token,
		CreatedAt:          createdAt,
	}
}
