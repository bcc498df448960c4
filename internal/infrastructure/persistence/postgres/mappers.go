package postgres

import (
	"fmt"

	"github.com/DanielPopoola/webpay-gateway/internal/domain"
	"github.com/shopspring/decimal"
)

// toDomainModel: maps db model to domain entity
func toDomainModel(m TransactionModel) (*domain.Transaction, error) {
	amount, err := decimal.NewFromString(m.Amount)
	if err != nil {
		return nil, fmt.Errorf("parse amount %q: %w", m.Amount, err)
	}

	var installmentsAmount decimal.NullDecimal
	if m.InstallmentsAmount != nil {
		v, err := decimal.NewFromString(*m.InstallmentsAmount)
		if err != nil {
			return nil, fmt.Errorf("parse installments amount %q: %w", *m.InstallmentsAmount, err)
		}
		installmentsAmount = decimal.NewNullDecimal(v)
	}

	var token string
	if m.GatewayToken != nil {
		token = *m.GatewayToken
	}

	return domain.Reconstitute(
		m.ID,
		m.BuyOrder,
		m.SessionID,
		m.AuthorizationCode,
		m.PaymentTypeCode,
		amount,
		m.InstallmentsNumber,
		installmentsAmount,
		m.CardSuffix,
		m.GatewayStatus,
		m.VCI,
		token,
		m.CreatedAt,
	), nil
}

// toDBModel: maps domain entity to db model
func toDBModel(t *domain.Transaction) *TransactionModel {
	m := &TransactionModel{
		ID:                 t.ID,
		BuyOrder:           t.BuyOrder,
		SessionID:          t.SessionID,
		AuthorizationCode:  t.AuthorizationCode,
		PaymentTypeCode:    t.PaymentTypeCode,
		Amount:             t.Amount.String(),
		InstallmentsNumber: t.InstallmentsNumber,
		CardSuffix:         t.CardSuffix,
		GatewayStatus:      t.GatewayStatus,
		VCI:                t.VCI,
		CreatedAt:          t.CreatedAt,
	}
	if t.InstallmentsAmount.Valid {
		v := t.InstallmentsAmount.Decimal.String()
		m.InstallmentsAmount = &v
	}
	if t.GatewayToken != "" {
		token := t.GatewayToken
		m.GatewayToken = &token
	}
	return m
}
