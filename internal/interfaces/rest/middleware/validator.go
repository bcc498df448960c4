package middleware

import (
	"bytes"
	"io"
	"log/slog"
	"net/http"
	"strings"

	"github.com/DanielPopoola/webpay-gateway/internal/interfaces/rest"
	"github.com/getkin/kin-openapi/openapi3"
	"github.com/getkin/kin-openapi/openapi3filter"
	"github.com/getkin/kin-openapi/routers/legacy"
)

// OpenAPIValidator rejects requests that do not match the API document with
// 400 INVALID_REQUEST. Requests for paths the document does not describe
// are passed on untouched, as are the operations named in skip. basePath is
// stripped before route lookup.
func OpenAPIValidator(doc *openapi3.T, basePath string, logger *slog.Logger, skip ...string) (func(http.Handler) http.Handler, error) {
	doc.Servers = nil
	router, err := legacy.NewRouter(doc)
	if err != nil {
		return nil, err
	}

	prefix := strings.TrimSuffix(basePath, "/")
	skipped := make(map[string]bool, len(skip))
	for _, id := range skip {
		skipped[id] = true
	}
	options := &openapi3filter.Options{
		AuthenticationFunc: openapi3filter.NoopAuthenticationFunc,
		MultiError:         false,
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			lookup := r.Clone(r.Context())
			lookup.URL.Path = strings.TrimPrefix(r.URL.Path, prefix)
			if lookup.URL.Path == "" {
				lookup.URL.Path = "/"
			}
			lookup.URL.RawPath = ""

			route, pathParams, err := router.FindRoute(lookup)
			if err != nil || skipped[route.Operation.OperationID] {
				next.ServeHTTP(w, r)
				return
			}

			var body []byte
			if r.Body != nil {
				body, err = io.ReadAll(r.Body)
				if err != nil {
					rest.WriteError(w, http.StatusBadRequest, rest.CodeInvalidRequest)
					return
				}
				_ = r.Body.Close()
				lookup.Body = io.NopCloser(bytes.NewReader(body))
			}

			input := &openapi3filter.RequestValidationInput{
				Request:    lookup,
				PathParams: pathParams,
				Route:      route,
				Options:    options,
			}
			if err := openapi3filter.ValidateRequest(r.Context(), input); err != nil {
				logger.WarnContext(r.Context(), "request rejected by api schema",
					"method", r.Method,
					"path", r.URL.Path,
					"error", err,
				)
				rest.WriteError(w, http.StatusBadRequest, rest.CodeInvalidRequest)
				return
			}

			if body != nil {
				r.Body = io.NopCloser(bytes.NewReader(body))
			}
			next.ServeHTTP(w, r)
		})
	}, nil
}
