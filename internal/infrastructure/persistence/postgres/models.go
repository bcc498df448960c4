package postgres

import (
	"time"
)

// TransactionModel mirrors a webpay_transactions row. Numeric columns travel
// as text so no precision is lost between NUMERIC and decimal.Decimal.
type TransactionModel struct {
	ID                 string
	BuyOrder           string
	SessionID          string
	AuthorizationCode  string
	PaymentTypeCode    string
	Amount             string
	InstallmentsNumber int
	InstallmentsAmount *string
	CardSuffix         *string
	GatewayStatus      string
	VCI                string
	GatewayToken       *string
	CreatedAt          time.Time
}
