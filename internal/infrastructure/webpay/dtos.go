package webpay

import (
	"encoding/json"
	"time"

	"github.com/shopspring/decimal"
)

type createRequest struct {
	BuyOrder  string      `json:"buy_order"`
	SessionID string      `json:"session_id"`
	Amount    json.Number `json:"amount"`
	ReturnURL string      `json:"return_url"`
}

type createResponse struct {
	Token string `json:"token"`
	URL   string `json:"url"`
}

type cardDetail struct {
	CardNumber string `json:"card_number"`
}

type commitResponse struct {
	VCI                string           `json:"vci"`
	Amount             decimal.Decimal  `json:"amount"`
	Status             string           `json:"status"`
	BuyOrder           string           `json:"buy_order"`
	SessionID          string           `json:"session_id"`
	CardDetail         *cardDetail      `json:"card_detail"`
	AccountingDate     string           `json:"accounting_date"`
	TransactionDate    *time.Time       `json:"transaction_date"`
	AuthorizationCode  string           `json:"authorization_code"`
	PaymentTypeCode    string           `json:"payment_type_code"`
	ResponseCode       *int             `json:"response_code"`
	InstallmentsAmount *decimal.Decimal `json:"installments_amount"`
	InstallmentsNumber int              `json:"installments_number"`
}

// refundRequest carries only the amount in token mode. Mall refunds name
// the child commerce and buy order as well.
type refundRequest struct {
	CommerceCode string      `json:"commerce_code,omitempty"`
	BuyOrder     string      `json:"buy_order,omitempty"`
	Amount       json.Number `json:"amount"`
}

type refundResponse struct {
	Type              string          `json:"type"`
	AuthorizationCode string          `json:"authorization_code"`
	AuthorizationDate *time.Time      `json:"authorization_date"`
	NullifiedAmount   decimal.Decimal `json:"nullified_amount"`
	Balance           decimal.Decimal `json:"balance"`
	ResponseCode      int             `json:"response_code"`
}

type errorResponse struct {
	ErrorMessage string `json:"error_message"`
}
