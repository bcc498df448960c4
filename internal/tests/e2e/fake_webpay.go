package e2e

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"time"

	"github.com/DanielPopoola/webpay-gateway/internal/infrastructure/webpay"
	"github.com/DanielPopoola/webpay-gateway/internal/tests/e2e/testdata"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

const fakeTransactionsPath = "/rswebpaytransaction/api/webpay/v1.2/transactions"

type fakeTransaction struct {
	BuyOrder  string
	SessionID string
	Amount    decimal.Decimal
	ReturnURL string
	Card      *testdata.TestCard
	Committed bool
	Balance   decimal.Decimal
	Refunds   int
}

// FakeWebpay imitates the Webpay Plus REST API closely enough to drive the
// gateway end to end.
type FakeWebpay struct {
	*httptest.Server

	mu           sync.Mutex
	transactions map[string]*fakeTransaction
	failCreates  int
	commits      int
}

func NewFakeWebpay() *FakeWebpay {
	f := &FakeWebpay{transactions: make(map[string]*fakeTransaction)}
	f.Server = httptest.NewServer(http.HandlerFunc(f.serve))
	return f
}

// FailNextCreates makes the next n create calls answer 503.
func (f *FakeWebpay) FailNextCreates(n int) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.failCreates = n
}

// Pay simulates the buyer completing the payment form with card.
func (f *FakeWebpay) Pay(token string, card testdata.TestCard) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if trx, ok := f.transactions[token]; ok {
		trx.Card = &card
	}
}

func (f *FakeWebpay) ReturnURL(token string) string {
	f.mu.Lock()
	defer f.mu.Unlock()
	if trx, ok := f.transactions[token]; ok {
		return trx.ReturnURL
	}
	return ""
}

func (f *FakeWebpay) Commits() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.commits
}

func (f *FakeWebpay) serve(w http.ResponseWriter, r *http.Request) {
	if r.Header.Get("Tbk-Api-Key-Id") != webpay.IntegrationCommerceCode ||
		r.Header.Get("Tbk-Api-Key-Secret") != webpay.IntegrationAPIKey {
		writeFake(w, http.StatusUnauthorized, map[string]string{"error_message": "Not Authorized"})
		return
	}

	rest := strings.Trim(strings.TrimPrefix(r.URL.Path, fakeTransactionsPath), "/")
	parts := strings.Split(rest, "/")

	switch {
	case r.Method == http.MethodPost && rest == "":
		f.create(w, r)
	case r.Method == http.MethodPut && len(parts) == 1:
		f.commit(w, parts[0])
	case r.Method == http.MethodPost && len(parts) == 2 && parts[1] == "refunds":
		f.refund(w, r, parts[0])
	default:
		writeFake(w, http.StatusNotFound, map[string]string{"error_message": "Not Found"})
	}
}

func (f *FakeWebpay) create(w http.ResponseWriter, r *http.Request) {
	var req struct {
		BuyOrder  string          `json:"buy_order"`
		SessionID string          `json:"session_id"`
		Amount    decimal.Decimal `json:"amount"`
		ReturnURL string          `json:"return_url"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeFake(w, http.StatusBadRequest, map[string]string{"error_message": "Invalid body"})
		return
	}

	f.mu.Lock()
	defer f.mu.Unlock()

	if f.failCreates > 0 {
		f.failCreates--
		writeFake(w, http.StatusServiceUnavailable, map[string]string{"error_message": "Service Unavailable"})
		return
	}
	if !req.Amount.IsPositive() {
		writeFake(w, http.StatusUnprocessableEntity, map[string]string{"error_message": "Invalid value for parameter: amount"})
		return
	}

	token := strings.ReplaceAll(uuid.NewString(), "-", "")
	f.transactions[token] = &fakeTransaction{
		BuyOrder:  req.BuyOrder,
		SessionID: req.SessionID,
		Amount:    req.Amount,
		ReturnURL: req.ReturnURL,
		Balance:   req.Amount,
	}

	writeFake(w, http.StatusOK, map[string]string{
		"token": token,
		"url":   f.URL + "/webpayserver/initTransaction",
	})
}

func (f *FakeWebpay) commit(w http.ResponseWriter, token string) {
	f.mu.Lock()
	defer f.mu.Unlock()

	trx, ok := f.transactions[token]
	if !ok {
		writeFake(w, http.StatusUnprocessableEntity, map[string]string{"error_message": "Invalid token"})
		return
	}
	if trx.Card == nil {
		writeFake(w, http.StatusUnprocessableEntity, map[string]string{"error_message": "Invalid status 0 for transaction while authorizing"})
		return
	}
	if trx.Committed {
		writeFake(w, http.StatusUnprocessableEntity, map[string]string{"error_message": "Transaction already locked by another process"})
		return
	}
	trx.Committed = true
	f.commits++

	responseCode, status, authCode := 0, "AUTHORIZED", "1213"
	if !trx.Card.Approved {
		responseCode, status, authCode = -1, "FAILED", "000000"
	}

	writeFake(w, http.StatusOK, map[string]any{
		"vci":                 "TSY",
		"amount":              trx.Amount,
		"status":              status,
		"buy_order":           trx.BuyOrder,
		"session_id":          trx.SessionID,
		"card_detail":         map[string]string{"card_number": trx.Card.CardNumber[len(trx.Card.CardNumber)-4:]},
		"accounting_date":     time.Now().Format("0102"),
		"transaction_date":    time.Now().UTC().Format(time.RFC3339Nano),
		"authorization_code":  authCode,
		"payment_type_code":   "VN",
		"response_code":       responseCode,
		"installments_number": 0,
	})
}

func (f *FakeWebpay) refund(w http.ResponseWriter, r *http.Request, token string) {
	var req struct {
		Amount decimal.Decimal `json:"amount"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeFake(w, http.StatusBadRequest, map[string]string{"error_message": "Invalid body"})
		return
	}

	f.mu.Lock()
	defer f.mu.Unlock()

	trx, ok := f.transactions[token]
	if !ok || !trx.Committed {
		writeFake(w, http.StatusUnprocessableEntity, map[string]string{"error_message": "Invalid token"})
		return
	}
	if req.Amount.GreaterThan(trx.Balance) {
		writeFake(w, http.StatusUnprocessableEntity, map[string]string{"error_message": "Amount to nullify exceeds the balance"})
		return
	}

	if trx.Refunds == 0 && req.Amount.Equal(trx.Amount) {
		trx.Refunds++
		trx.Balance = decimal.Zero
		writeFake(w, http.StatusOK, map[string]any{"type": "REVERSED"})
		return
	}

	trx.Refunds++
	trx.Balance = trx.Balance.Sub(req.Amount)
	writeFake(w, http.StatusOK, map[string]any{
		"type":               "NULLIFIED",
		"authorization_code": "123456",
		"authorization_date": time.Now().UTC().Format(time.RFC3339Nano),
		"nullified_amount":   req.Amount,
		"balance":            trx.Balance,
		"response_code":      0,
	})
}

func writeFake(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}
