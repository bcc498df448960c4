package e2e

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/DanielPopoola/webpay-gateway/internal/api"
	"github.com/stretchr/testify/require"
)

// EnvelopeError is a business failure reported in an error envelope.
type EnvelopeError struct {
	StatusCode int
	Code       string
}

func (e *EnvelopeError) Error() string {
	return fmt.Sprintf("status %d: %s", e.StatusCode, e.Code)
}

// TestClient wraps HTTP calls to gateway
type TestClient struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
}

func NewTestClient(baseURL, apiKey string) *TestClient {
	return &TestClient{
		baseURL: baseURL,
		apiKey:  apiKey,
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
			CheckRedirect: func(*http.Request, []*http.Request) error {
				return http.ErrUseLastResponse
			},
		},
	}
}

// Create calls /trx/create
func (c *TestClient) Create(t *testing.T, req api.CreateTransactionRequest) (*api.CreateTransactionEnvelope, error) {
	var out api.CreateTransactionEnvelope
	if err := c.call(t, http.MethodPost, "/trx/create", req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Refund calls /trx/refund
func (c *TestClient) Refund(t *testing.T, req api.RefundRequest) (*api.RefundEnvelope, error) {
	var out api.RefundEnvelope
	if err := c.call(t, http.MethodPost, "/trx/refund", req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Status calls /trx/status/{buyOrder}
func (c *TestClient) Status(t *testing.T, buyOrder string) (*api.TransactionEnvelope, error) {
	var out api.TransactionEnvelope
	if err := c.call(t, http.MethodGet, "/trx/status/"+url.PathEscape(buyOrder), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Return plays the buyer's browser coming back from the gateway and
// returns where the gateway redirected it.
func (c *TestClient) Return(t *testing.T, method, returnURL string, params url.Values) *url.URL {
	t.Helper()

	var (
		httpReq *http.Request
		err     error
	)
	switch method {
	case http.MethodPost:
		httpReq, err = http.NewRequest(http.MethodPost, returnURL, strings.NewReader(params.Encode()))
		require.NoError(t, err)
		httpReq.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	default:
		target := returnURL
		if len(params) > 0 {
			target += "?" + params.Encode()
		}
		httpReq, err = http.NewRequest(http.MethodGet, target, nil)
		require.NoError(t, err)
	}

	resp, err := c.httpClient.Do(httpReq)
	require.NoError(t, err)
	defer resp.Body.Close()

	require.Equal(t, http.StatusFound, resp.StatusCode)
	location, err := url.Parse(resp.Header.Get("Location"))
	require.NoError(t, err)
	return location
}

func (c *TestClient) call(t *testing.T, method, path string, body any, out any) error {
	t.Helper()

	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	}

	httpReq, err := http.NewRequest(method, c.baseURL+path, reader)
	require.NoError(t, err)
	if body != nil {
		httpReq.Header.Set("Content-Type", "application/json")
	}
	httpReq.Header.Set("Authorization", "Bearer "+c.apiKey)
	httpReq.Header.Set("User-Agent", "e2e-checkout")

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	bodyBytes, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	var status api.ErrorEnvelope
	require.NoError(t, json.Unmarshal(bodyBytes, &status), string(bodyBytes))
	if resp.StatusCode != http.StatusOK || status.Status != api.EnvelopeStatusOk {
		return &EnvelopeError{StatusCode: resp.StatusCode, Code: status.Error}
	}

	require.NoError(t, json.Unmarshal(bodyBytes, out))
	return nil
}
