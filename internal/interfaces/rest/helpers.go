package rest

import (
	"html"
	"strings"

	"github.com/DanielPopoola/webpay-gateway/internal/api"
	"github.com/DanielPopoola/webpay-gateway/internal/application"
	"github.com/DanielPopoola/webpay-gateway/internal/domain"
	"github.com/microcosm-cc/bluemonday"
)

var strictPolicy = bluemonday.StrictPolicy()

// Sanitize strips markup from caller supplied text and trims it. The policy
// escapes what it keeps, so entities are decoded back to plain text.
func Sanitize(s string) string {
	return strings.TrimSpace(html.UnescapeString(strictPolicy.Sanitize(strings.TrimSpace(s))))
}

func SanitizePtr(s *string) string {
	if s == nil {
		return ""
	}
	return Sanitize(*s)
}

func ToAPITransaction(t *domain.Transaction) api.Transaction {
	return api.Transaction{
		Id:                 t.ID,
		BuyOrder:           t.BuyOrder,
		SessionId:          t.SessionID,
		AuthorizationCode:  t.AuthorizationCode,
		PaymentTypeCode:    t.PaymentTypeCode,
		Amount:             t.Amount,
		InstallmentsNumber: t.InstallmentsNumber,
		InstallmentsAmount: t.InstallmentsAmount,
		CardDigits:         t.CardSuffix,
		Status:             t.GatewayStatus,
		Vci:                t.VCI,
		CreatedAt:          t.CreatedAt,
	}
}

func ToAPIRefund(r *application.RefundResponse) *api.RefundResult {
	result := &api.RefundResult{
		Type:              r.Type,
		AuthorizationCode: r.AuthorizationCode,
		AuthorizationDate: r.AuthorizationDate,
		ResponseCode:      r.ResponseCode,
	}
	if !r.NullifiedAmount.IsZero() {
		nullified := r.NullifiedAmount
		result.NullifiedAmount = &nullified
	}
	if r.Type == application.RefundTypeNullified {
		balance := r.Balance
		result.Balance = &balance
	}
	return result
}
