// Package boltstore keeps settlement records in an embedded BoltDB file for
// single-node deployments. Records are keyed by buy order, so uniqueness is
// checked and enforced inside one read-write transaction.
package boltstore

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	bolt "github.com/boltdb/bolt"

	"github.com/DanielPopoola/webpay-gateway/internal/application"
	"github.com/DanielPopoola/webpay-gateway/internal/domain"
	"github.com/shopspring/decimal"
)

const bucketName = "webpay_transactions"

type record struct {
	ID                 string              `json:"id"`
	BuyOrder           string              `json:"buy_order"`
	SessionID          string              `json:"session_id"`
	AuthorizationCode  string              `json:"authorization_code"`
	PaymentTypeCode    string              `json:"payment_type_code"`
	Amount             decimal.Decimal     `json:"amount"`
	InstallmentsNumber int                 `json:"installments_number"`
	InstallmentsAmount decimal.NullDecimal `json:"installments_amount"`
	CardSuffix         *string             `json:"card_suffix,omitempty"`
	GatewayStatus      string              `json:"gateway_status"`
	VCI                string              `json:"vci"`
	GatewayToken       string              `json:"gateway_token,omitempty"`
	CreatedAt          time.Time           `json:"created_at"`
	RecordedAt         time.Time           `json:"recorded_at"`
}

type Store struct {
	db *bolt.DB
}

// New opens (or creates) the database file at path and ensures the
// transactions bucket exists.
func New(path string) (*Store, error) {
	db, err := bolt.Open(path, 0600, &bolt.Options{Timeout: 1 * time.Second})
	if err != nil {
		return nil, fmt.Errorf("open bolt store: %w", err)
	}

	err = db.Update(func(tx *bolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists([]byte(bucketName))
		return err
	})
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("create bucket: %w", err)
	}

	return &Store{db: db}, nil
}

var _ application.TransactionStore = (*Store)(nil)

// Close releases the database file lock.
func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) Exists(ctx context.Context, buyOrder string) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, err
	}

	var exists bool
	err := s.db.View(func(tx *bolt.Tx) error {
		exists = tx.Bucket([]byte(bucketName)).Get([]byte(buyOrder)) != nil
		return nil
	})
	return exists, err
}

func (s *Store) Find(ctx context.Context, buyOrder, authCode string) (*domain.Transaction, error) {
	trx, err := s.FindByBuyOrder(ctx, buyOrder)
	if err != nil {
		return nil, err
	}
	if trx.AuthorizationCode != authCode {
		return nil, domain.ErrTransactionNotFound
	}
	return trx, nil
}

func (s *Store) FindByBuyOrder(ctx context.Context, buyOrder string) (*domain.Transaction, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	var rec record
	err := s.db.View(func(tx *bolt.Tx) error {
		v := tx.Bucket([]byte(bucketName)).Get([]byte(buyOrder))
		if v == nil {
			return domain.ErrTransactionNotFound
		}
		return json.Unmarshal(v, &rec)
	})
	if err != nil {
		return nil, err
	}

	return rec.toDomain(), nil
}

// Insert writes the record unless the buy order is already present.
func (s *Store) Insert(ctx context.Context, trx *domain.Transaction) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	data, err := json.Marshal(fromDomain(trx))
	if err != nil {
		return "", fmt.Errorf("marshal transaction: %w", err)
	}

	err = s.db.Update(func(tx *bolt.Tx) error {
		b := tx.Bucket([]byte(bucketName))
		if b.Get([]byte(trx.BuyOrder)) != nil {
			return domain.ErrDuplicateTransaction
		}
		return b.Put([]byte(trx.BuyOrder), data)
	})
	if err != nil {
		return "", err
	}

	return trx.ID, nil
}

func (s *Store) Ping(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	return s.db.View(func(tx *bolt.Tx) error {
		if tx.Bucket([]byte(bucketName)) == nil {
			return fmt.Errorf("bucket %s missing", bucketName)
		}
		return nil
	})
}

func fromDomain(t *domain.Transaction) record {
	return record{
		ID:                 t.ID,
		BuyOrder:           t.BuyOrder,
		SessionID:          t.SessionID,
		AuthorizationCode:  t.AuthorizationCode,
		PaymentTypeCode:    t.PaymentTypeCode,
		Amount:             t.Amount,
		InstallmentsNumber: t.InstallmentsNumber,
		InstallmentsAmount: t.InstallmentsAmount,
		CardSuffix:         t.CardSuffix,
		GatewayStatus:      t.GatewayStatus,
		VCI:                t.VCI,
		GatewayToken:       t.GatewayToken,
		CreatedAt:          t.CreatedAt,
		RecordedAt:         time.Now().UTC(),
	}
}

func (r record) toDomain() *domain.Transaction {
	return domain.Reconstitute(
		r.ID,
		r.BuyOrder,
		r.SessionID,
		r.AuthorizationCode,
		r.PaymentTypeCode,
		r.Amount,
		r.InstallmentsNumber,
		r.InstallmentsAmount,
		r.CardSuffix,
		r.GatewayStatus,
		r.VCI,
		r.GatewayToken,
		r.CreatedAt,
	)
}
