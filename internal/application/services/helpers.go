package services

import (
	"context"
	"log/slog"
	"net/url"

	"github.com/DanielPopoola/webpay-gateway/internal/domain"
)

// tokenPrefix masks a gateway token for logging.
func tokenPrefix(token string) string {
	if len(token) <= 3 {
		return "****"
	}
	return token[:3] + "****"
}

// asGatewayError classifies client failures that carry no domain kind.
func asGatewayError(err error) error {
	if domain.KindOf(err) != "" {
		return err
	}
	return domain.NewGatewayUnavailableError(err)
}

// withQuery merges params into the query string of base.
func withQuery(base string, params url.Values) string {
	if len(params) == 0 {
		return base
	}

	u, err := url.Parse(base)
	if err != nil {
		return base
	}

	q := u.Query()
	for key, values := range params {
		for _, v := range values {
			q.Set(key, v)
		}
	}
	u.RawQuery = q.Encode()
	return u.String()
}

// logFailure logs expected business outcomes at warn and infrastructure or
// gateway faults at error.
func (s *TransactionService) logFailure(ctx context.Context, msg string, err error, attrs ...any) {
	level := slog.LevelError
	switch domain.KindOf(err) {
	case domain.KindValidation, domain.KindDuplicateOrder, domain.KindInvalidReference,
		domain.KindTransactionNotFound, domain.KindGatewayRejected:
		level = slog.LevelWarn
	}
	s.logger.Log(ctx, level, msg, append(attrs, "error", err)...)
}
