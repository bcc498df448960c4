package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/DanielPopoola/webpay-gateway/internal/application"
	"github.com/DanielPopoola/webpay-gateway/internal/domain"
	"github.com/jackc/pgx/v5"
)

const selectTransaction = `
	SELECT id::text, buy_order, session_id, authorization_code, payment_type_code,
	       amount::text, installments_number, installments_amount::text, card_suffix,
	       gateway_status, vci, gateway_token, created_at
	FROM webpay_transactions
`

type TransactionRepository struct {
	db *DB
}

func NewTransactionRepository(db *DB) *TransactionRepository {
	return &TransactionRepository{db: db}
}

var _ application.TransactionStore = (*TransactionRepository)(nil)

// Exists reports whether a committed transaction is stored for buyOrder.
func (r *TransactionRepository) Exists(ctx context.Context, buyOrder string) (bool, error) {
	query := `SELECT EXISTS (SELECT 1 FROM webpay_transactions WHERE buy_order = $1)`

	var exists bool
	if err := r.db.Pool.QueryRow(ctx, query, buyOrder).Scan(&exists); err != nil {
		return false, fmt.Errorf("check transaction existence: %w", err)
	}
	return exists, nil
}

// Find retrieves the transaction matching both buy order and authorization code.
func (r *TransactionRepository) Find(ctx context.Context, buyOrder, authCode string) (*domain.Transaction, error) {
	row := r.db.Pool.QueryRow(ctx, selectTransaction+`WHERE buy_order = $1 AND authorization_code = $2`, buyOrder, authCode)
	return scanTransaction(row)
}

// FindByBuyOrder retrieves a transaction by buy order
func (r *TransactionRepository) FindByBuyOrder(ctx context.Context, buyOrder string) (*domain.Transaction, error) {
	row := r.db.Pool.QueryRow(ctx, selectTransaction+`WHERE buy_order = $1`, buyOrder)
	return scanTransaction(row)
}

// Insert stores a new settlement record. The unique constraint on buy_order
// makes concurrent inserts for one order fail with ErrDuplicateTransaction.
func (r *TransactionRepository) Insert(ctx context.Context, trx *domain.Transaction) (string, error) {
	query := `
		INSERT INTO webpay_transactions (
			id, buy_order, session_id, authorization_code, payment_type_code,
			amount, installments_number, installments_amount, card_suffix,
			gateway_status, vci, gateway_token, created_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
		RETURNING id::text
	`

	m := toDBModel(trx)

	var id string
	err := r.db.Pool.QueryRow(ctx, query,
		m.ID,
		m.BuyOrder,
		m.SessionID,
		m.AuthorizationCode,
		m.PaymentTypeCode,
		m.Amount,
		m.InstallmentsNumber,
		m.InstallmentsAmount,
		m.CardSuffix,
		m.GatewayStatus,
		m.VCI,
		m.GatewayToken,
		m.CreatedAt,
	).Scan(&id)
	if err != nil {
		if IsUniqueViolation(err) {
			return "", domain.ErrDuplicateTransaction
		}
		return "", fmt.Errorf("failed to insert transaction: %w", err)
	}

	return id, nil
}

func (r *TransactionRepository) Ping(ctx context.Context) error {
	return r.db.Pool.Ping(ctx)
}

// scanTransaction converts a database row into a domain Transaction.
// Returns domain.ErrTransactionNotFound if the row doesn't exist.
func scanTransaction(row pgx.Row) (*domain.Transaction, error) {
	var m TransactionModel
	err := row.Scan(
		&m.ID, &m.BuyOrder, &m.SessionID, &m.AuthorizationCode, &m.PaymentTypeCode,
		&m.Amount, &m.InstallmentsNumber, &m.InstallmentsAmount, &m.CardSuffix,
		&m.GatewayStatus, &m.VCI, &m.GatewayToken, &m.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrTransactionNotFound
		}
		return nil, fmt.Errorf("failed to scan transaction: %w", err)
	}
	return toDomainModel(m)
}
