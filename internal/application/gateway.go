package application

import (
	"time"

	"github.com/shopspring/decimal"
)

// Refund types the gateway reports for a successful refund.
const (
	RefundTypeReversed  = "REVERSED"
	RefundTypeNullified = "NULLIFIED"
)

type CreateRequest struct {
	BuyOrder  string
	SessionID string
	Amount    decimal.Decimal
	ReturnURL string
}

type CreateResponse struct {
	Token string
	URL   string
}

// CommitResponse is the gateway's verdict on a buyer's payment attempt.
type CommitResponse struct {
	ResponseCode       int
	BuyOrder           string
	SessionID          string
	AuthorizationCode  string
	PaymentTypeCode    string
	Amount             decimal.Decimal
	InstallmentsNumber int
	InstallmentsAmount decimal.Decimal
	CardNumber         string
	Status             string
	VCI                string
	AccountingDate     string
	TransactionDate    *time.Time
}

type RefundRequest struct {
	Token        string
	BuyOrder     string
	CommerceCode string
	Amount       decimal.Decimal
}

type RefundResponse struct {
	Type              string
	AuthorizationCode string
	AuthorizationDate *time.Time
	NullifiedAmount   decimal.Decimal
	Balance           decimal.Decimal
	ResponseCode      int
}

// Succeeded reports whether the refund was accepted by the gateway.
func (r *RefundResponse) Succeeded() bool {
	return r.Type == RefundTypeReversed || r.Type == RefundTypeNullified
}
