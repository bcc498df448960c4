package api_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/DanielPopoola/webpay-gateway/internal/api"
	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetSwagger_IsValid(t *testing.T) {
	doc, err := api.GetSwagger()
	require.NoError(t, err)
	require.NoError(t, doc.Validate(context.Background()))

	for _, path := range []string{"/trx/create", "/trx/authorize/{reference}", "/trx/refund", "/trx/status/{buyOrder}", "/health"} {
		assert.NotNil(t, doc.Paths.Find(path), path)
	}
}

func TestRegisterDocsRoutes(t *testing.T) {
	spec, err := api.NewDocs("/webpay")
	require.NoError(t, err)

	r := chi.NewRouter()
	api.RegisterDocsRoutes(r, "/webpay", spec)

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/webpay"+api.DocsPath, nil))

	require.Equal(t, http.StatusOK, rec.Code)
	var body struct {
		OpenAPI string `json:"openapi"`
		Info    struct {
			Title   string `json:"title"`
			Version string `json:"version"`
		} `json:"info"`
		Servers []struct {
			URL string `json:"url"`
		} `json:"servers"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "3.0.3", body.OpenAPI)
	assert.Equal(t, "Webpay Gateway", body.Info.Title)
	assert.Equal(t, "1.0.0", body.Info.Version)
	require.Len(t, body.Servers, 1)
	assert.Equal(t, "/webpay", body.Servers[0].URL)
}

func TestNewDocs_RootBasePath(t *testing.T) {
	spec, err := api.NewDocs("")
	require.NoError(t, err)

	var body map[string]any
	require.NoError(t, json.Unmarshal([]byte(spec.ReadDoc()), &body))
	servers := body["servers"].([]any)
	assert.Equal(t, "/", servers[0].(map[string]any)["url"])
}

func TestAmount_UnmarshalJSON(t *testing.T) {
	tests := []struct {
		input string
		want  api.Amount
	}{
		{`{"amount": 15000}`, "15000"},
		{`{"amount": "15000.50"}`, "15000.50"},
		{`{"amount": null}`, ""},
		{`{}`, ""},
	}

	for _, tt := range tests {
		var req api.CreateTransactionRequest
		require.NoError(t, json.Unmarshal([]byte(tt.input), &req))
		assert.Equal(t, tt.want, req.Amount, tt.input)
	}
}
