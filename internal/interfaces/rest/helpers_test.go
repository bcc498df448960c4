package rest_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/DanielPopoola/webpay-gateway/internal/application"
	"github.com/DanielPopoola/webpay-gateway/internal/domain"
	"github.com/DanielPopoola/webpay-gateway/internal/interfaces/rest"
	"github.com/DanielPopoola/webpay-gateway/internal/testhelpers"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSanitize(t *testing.T) {
	assert.Equal(t, "ord-1", rest.Sanitize("  ord-1 "))
	assert.Equal(t, "ord-1", rest.Sanitize("<script>alert(1)</script>ord-1"))
	assert.Equal(t, "ord-1", rest.Sanitize("<b>ord-1</b>"))
	assert.Equal(t, "", rest.SanitizePtr(nil))
}

func TestSanitize_KeepsPlainTextCharacters(t *testing.T) {
	for _, in := range []string{"A&B-1", "O'Brien-7", `ord"1`} {
		assert.Equal(t, in, rest.Sanitize(in), in)
	}
	assert.Equal(t, "A&B-1", rest.Sanitize("<i>A&B-1</i>"))
}

func TestBuildErrorEnvelope(t *testing.T) {
	env := rest.BuildErrorEnvelope(domain.NewDuplicateOrderError("ord-1"))
	assert.Equal(t, "error", string(env.Status))
	assert.Equal(t, domain.ErrCodeAlreadyProcessed, env.Error)

	env = rest.BuildErrorEnvelope(assert.AnError)
	assert.Equal(t, domain.ErrCodeStorage, env.Error)
}

func TestWriteError(t *testing.T) {
	rec := httptest.NewRecorder()
	rest.WriteError(rec, http.StatusUnauthorized, rest.CodeUnauthorized)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.JSONEq(t, `{"status":"error","error":"UNAUTHORIZED"}`, rec.Body.String())
}

func TestRedirectOnCallback(t *testing.T) {
	isCallback := func(r *http.Request) bool { return strings.HasPrefix(r.URL.Path, "/trx/authorize/") }
	handle := rest.RedirectOnCallback(isCallback, "https://shop/failure?lang=es", testhelpers.QuietLogger(),
		rest.RequestErrorHandler(testhelpers.QuietLogger()))

	rec := httptest.NewRecorder()
	handle(rec, httptest.NewRequest(http.MethodPost, "/trx/authorize/REF1", nil), assert.AnError)
	assert.Equal(t, http.StatusFound, rec.Code)
	assert.Equal(t, "https://shop/failure?lang=es", rec.Header().Get("Location"))

	rec = httptest.NewRecorder()
	handle(rec, httptest.NewRequest(http.MethodPost, "/trx/create", nil), assert.AnError)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.JSONEq(t, `{"status":"error","error":"INVALID_REQUEST"}`, rec.Body.String())
}

func TestToAPITransaction(t *testing.T) {
	trx := testhelpers.CreateTransaction(t, "ord-1")

	out := rest.ToAPITransaction(trx)

	assert.Equal(t, trx.ID, out.Id)
	assert.Equal(t, "ord-1", out.BuyOrder)
	require.NotNil(t, out.CardDigits)
	assert.Equal(t, "6623", *out.CardDigits)
	assert.Equal(t, "AUTHORIZED", out.Status)
}

func TestToAPIRefund(t *testing.T) {
	reversed := rest.ToAPIRefund(&application.RefundResponse{Type: application.RefundTypeReversed})
	assert.Nil(t, reversed.Balance)
	assert.Nil(t, reversed.NullifiedAmount)

	nullified := rest.ToAPIRefund(&application.RefundResponse{
		Type:            application.RefundTypeNullified,
		NullifiedAmount: decimal.NewFromInt(4000),
		Balance:         decimal.Zero,
	})
	require.NotNil(t, nullified.Balance)
	assert.True(t, nullified.Balance.IsZero())
	assert.True(t, nullified.NullifiedAmount.Equal(decimal.NewFromInt(4000)))
}
