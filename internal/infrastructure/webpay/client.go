// Package webpay is the HTTP client for the Transbank Webpay Plus REST API.
package webpay

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/DanielPopoola/webpay-gateway/internal/application"
	"github.com/DanielPopoola/webpay-gateway/internal/config"
	"github.com/DanielPopoola/webpay-gateway/internal/domain"
)

const (
	IntegrationBaseURL = "https://webpay3gint.transbank.cl"
	ProductionBaseURL  = "https://webpay3g.transbank.cl"
	transactionsPath   = "/rswebpaytransaction/api/webpay/v1.2/transactions"

	// Public Webpay Plus integration credentials.
	IntegrationCommerceCode = "597055555532"
	IntegrationAPIKey       = "579B532A7440BB0C9079DED94D31EA1615BACEB56610332264630D42D0A36B1C"

	headerAPIKeyID     = "Tbk-Api-Key-Id"
	headerAPIKeySecret = "Tbk-Api-Key-Secret"
)

type Client struct {
	baseURL           string
	commerceCode      string
	apiKey            string
	childCommerceCode string
	refundMode        string
	httpClient        *http.Client
}

// NewClient builds a client for the production environment when both
// credentials are configured and for the integration environment otherwise.
func NewClient(cfg *config.WebpayConfig) *Client {
	c := &Client{
		baseURL:           IntegrationBaseURL,
		commerceCode:      IntegrationCommerceCode,
		apiKey:            IntegrationAPIKey,
		childCommerceCode: cfg.ChildCommerceCode,
		refundMode:        cfg.RefundMode,
		httpClient: &http.Client{
			Timeout: cfg.Timeout,
		},
	}

	if cfg.IsProduction() {
		c.baseURL = ProductionBaseURL
		c.commerceCode = cfg.CommerceCode
		c.apiKey = cfg.APIKey
	}
	if cfg.BaseURL != "" {
		c.baseURL = strings.TrimRight(cfg.BaseURL, "/")
	}

	return c
}

var _ application.PaymentGateway = (*Client)(nil)

func (c *Client) Create(ctx context.Context, req application.CreateRequest) (*application.CreateResponse, error) {
	body := createRequest{
		BuyOrder:  req.BuyOrder,
		SessionID: req.SessionID,
		Amount:    json.Number(req.Amount.String()),
		ReturnURL: req.ReturnURL,
	}

	resp, err := sendRequest[createRequest, createResponse](c, ctx, http.MethodPost, c.transactionsURL(), &body)
	if err != nil {
		return nil, err
	}

	return &application.CreateResponse{Token: resp.Token, URL: resp.URL}, nil
}

func (c *Client) Commit(ctx context.Context, token string) (*application.CommitResponse, error) {
	resp, err := sendRequest[any, commitResponse](c, ctx, http.MethodPut, c.transactionsURL(url.PathEscape(token)), nil)
	if err != nil {
		return nil, err
	}

	if resp.ResponseCode == nil {
		return nil, domain.NewUnexpectedResponseError(domain.ErrCodeUnexpectedResponse, "missing response_code", nil)
	}

	result := &application.CommitResponse{
		ResponseCode:       *resp.ResponseCode,
		BuyOrder:           resp.BuyOrder,
		SessionID:          resp.SessionID,
		AuthorizationCode:  resp.AuthorizationCode,
		PaymentTypeCode:    resp.PaymentTypeCode,
		Amount:             resp.Amount,
		InstallmentsNumber: resp.InstallmentsNumber,
		Status:             resp.Status,
		VCI:                resp.VCI,
		AccountingDate:     resp.AccountingDate,
		TransactionDate:    resp.TransactionDate,
	}
	if resp.InstallmentsAmount != nil {
		result.InstallmentsAmount = *resp.InstallmentsAmount
	}
	if resp.CardDetail != nil {
		result.CardNumber = resp.CardDetail.CardNumber
	}

	return result, nil
}

func (c *Client) Refund(ctx context.Context, req application.RefundRequest) (*application.RefundResponse, error) {
	body := refundRequest{Amount: json.Number(req.Amount.String())}
	if c.refundMode == config.RefundModeMall {
		body.CommerceCode = req.CommerceCode
		if body.CommerceCode == "" {
			body.CommerceCode = c.childCommerceCode
		}
		body.BuyOrder = req.BuyOrder
	}

	endpoint := c.transactionsURL(url.PathEscape(req.Token), "refunds")
	resp, err := sendRequest[refundRequest, refundResponse](c, ctx, http.MethodPost, endpoint, &body)
	if err != nil {
		return nil, err
	}

	return &application.RefundResponse{
		Type:              resp.Type,
		AuthorizationCode: resp.AuthorizationCode,
		AuthorizationDate: resp.AuthorizationDate,
		NullifiedAmount:   resp.NullifiedAmount,
		Balance:           resp.Balance,
		ResponseCode:      resp.ResponseCode,
	}, nil
}

func (c *Client) transactionsURL(segments ...string) string {
	parts := append([]string{c.baseURL + transactionsPath}, segments...)
	return strings.Join(parts, "/")
}

// sendRequest performs one call against the API and classifies failures:
// transport errors and 5xx answers mean the gateway is unavailable, 4xx
// answers mean it rejected the request, and an undecodable 2xx body is an
// unexpected response.
func sendRequest[Req any, Resp any](c *Client, ctx context.Context, method, endpoint string, reqBody *Req) (*Resp, error) {
	var bodyReader io.Reader
	if reqBody != nil {
		jsonData, err := json.Marshal(reqBody)
		if err != nil {
			return nil, fmt.Errorf("error marshalling json: %w", err)
		}
		bodyReader = bytes.NewReader(jsonData)
	}

	httpReq, err := http.NewRequestWithContext(ctx, method, endpoint, bodyReader)
	if err != nil {
		return nil, fmt.Errorf("error creating request: %w", err)
	}

	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Accept", "application/json")
	httpReq.Header.Set(headerAPIKeyID, c.commerceCode)
	httpReq.Header.Set(headerAPIKeySecret, c.apiKey)

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, domain.NewGatewayUnavailableError(fmt.Errorf("error making request: %w", err))
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		body, _ := io.ReadAll(resp.Body)
		apiErr := &APIError{StatusCode: resp.StatusCode, Message: string(body)}

		var errResp errorResponse
		if err := json.Unmarshal(body, &errResp); err == nil && errResp.ErrorMessage != "" {
			apiErr.Message = errResp.ErrorMessage
		}

		if apiErr.IsRetryable() {
			return nil, domain.NewGatewayUnavailableError(apiErr)
		}
		return nil, domain.NewGatewayRejectedError(apiErr.Message, apiErr)
	}

	var gatewayResp Resp
	if err := json.NewDecoder(resp.Body).Decode(&gatewayResp); err != nil {
		return nil, &domain.DomainError{
			Kind:    domain.KindUnexpectedGatewayResponse,
			Code:    domain.ErrCodeUnexpectedResponse,
			Message: "error decoding json response",
			Err:     err,
		}
	}

	return &gatewayResp, nil
}
