package rest

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/DanielPopoola/webpay-gateway/internal/api"
	"github.com/DanielPopoola/webpay-gateway/internal/domain"
)

// Codes for failures raised by the HTTP layer itself.
const (
	CodeInvalidRequest   = "INVALID_REQUEST"
	CodeUnauthorized     = "UNAUTHORIZED"
	CodeTooManyRequests  = "TOO_MANY_REQUESTS"
	CodeInternal         = "INTERNAL_ERROR"
	CodeStoreUnavailable = "STORE_UNAVAILABLE"
)

// BuildErrorEnvelope turns a coordinator error into the public envelope.
// Only the public code leaves the process.
func BuildErrorEnvelope(err error) api.ErrorEnvelope {
	return api.ErrorEnvelope{
		Status: api.EnvelopeStatusError,
		Error:  domain.PublicMessage(err),
	}
}

// WriteError writes an error envelope with the given HTTP status.
func WriteError(w http.ResponseWriter, statusCode int, code string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	_ = json.NewEncoder(w).Encode(api.ErrorEnvelope{Status: api.EnvelopeStatusError, Error: code})
}

// RequestErrorHandler answers requests that could not be decoded or bound.
func RequestErrorHandler(logger *slog.Logger) func(w http.ResponseWriter, r *http.Request, err error) {
	return func(w http.ResponseWriter, r *http.Request, err error) {
		logger.WarnContext(r.Context(), "invalid request",
			"method", r.Method,
			"path", r.URL.Path,
			"error", err,
		)
		WriteError(w, http.StatusBadRequest, CodeInvalidRequest)
	}
}

// RedirectOnCallback sends failed requests matched by isCallback to
// failureURL with a 302, so a buyer coming back from the gateway always
// lands on a storefront page. Other requests are answered by next.
func RedirectOnCallback(
	isCallback func(*http.Request) bool,
	failureURL string,
	logger *slog.Logger,
	next func(w http.ResponseWriter, r *http.Request, err error),
) func(w http.ResponseWriter, r *http.Request, err error) {
	return func(w http.ResponseWriter, r *http.Request, err error) {
		if failureURL == "" || !isCallback(r) {
			next(w, r, err)
			return
		}
		logger.WarnContext(r.Context(), "unreadable gateway callback",
			"method", r.Method,
			"path", r.URL.Path,
			"error", err,
		)
		http.Redirect(w, r, failureURL, http.StatusFound)
	}
}

// ResponseErrorHandler answers handler failures that produced no envelope.
func ResponseErrorHandler(logger *slog.Logger) func(w http.ResponseWriter, r *http.Request, err error) {
	return func(w http.ResponseWriter, r *http.Request, err error) {
		logger.ErrorContext(r.Context(), "handler failed",
			"method", r.Method,
			"path", r.URL.Path,
			"error", err,
		)
		WriteError(w, http.StatusInternalServerError, CodeInternal)
	}
}
