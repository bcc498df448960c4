package domain

import (
	"errors"
	"fmt"
)

// ErrorKind classifies every failure the coordinator can produce.
type ErrorKind string

const (
	KindValidation                ErrorKind = "VALIDATION"
	KindDuplicateOrder            ErrorKind = "DUPLICATE_ORDER"
	KindInvalidReference          ErrorKind = "INVALID_REFERENCE"
	KindTransactionNotFound       ErrorKind = "TRANSACTION_NOT_FOUND"
	KindGatewayRejected           ErrorKind = "GATEWAY_REJECTED"
	KindUnexpectedGatewayResponse ErrorKind = "UNEXPECTED_GATEWAY_RESPONSE"
	KindGatewayUnavailable        ErrorKind = "GATEWAY_UNAVAILABLE"
	KindStorage                   ErrorKind = "STORAGE"
)

// Public error codes returned to API callers.
const (
	ErrCodeInvalidBuyOrder     = "INVALID_BUY_ORDER"
	ErrCodeInvalidSessionID    = "INVALID_SESSION_ID"
	ErrCodeMissingUserAgent    = "MISSING_UA"
	ErrCodeInvalidAmount       = "INVALID_AMOUNT"
	ErrCodeInvalidAuthCode     = "INVALID_AUTH_CODE"
	ErrCodeAlreadyProcessed    = "TRX_ALREADY_PROCESSED"
	ErrCodeInvalidToken        = "INVALID_TBK_TOKEN"
	ErrCodeInvalidReference    = "INVALID_REFERENCE"
	ErrCodeAuthCodeNotFound    = "TRX_WITH_AUTH_CODE_NOT_FOUND"
	ErrCodeTransactionNotFound = "TRX_NOT_FOUND"
	ErrCodeUnexpectedResponse  = "UNEXPECTED_TBK_RESPONSE"
	ErrCodeResponseBuyOrder    = "INVALID_TBK_RESPONSE_BUY_ORDER"
	ErrCodeGatewayRejected     = "TBK_REJECTED"
	ErrCodeGatewayUnavailable  = "TBK_UNAVAILABLE"
	ErrCodeStorage             = "STORAGE_ERROR"
)

var (
	// ErrTransactionNotFound is returned by stores when no record matches.
	ErrTransactionNotFound = errors.New("transaction not found")
	// ErrDuplicateTransaction is returned by stores when the buy order is
	// already persisted.
	ErrDuplicateTransaction = errors.New("transaction already exists for buy order")
)

// DomainError represents a business logic error
type DomainError struct {
	Kind    ErrorKind
	Code    string
	Message string
	// Detail is appended to the public code for gateway outcomes the
	// caller needs to see, such as an unexpected refund type.
	Detail string
	// ResponseCode is the gateway response code, when the gateway answered.
	ResponseCode *int
	Err          error
}

func (e *DomainError) Error() string {
	msg := e.Code
	if e.Message != "" {
		msg = fmt.Sprintf("%s: %s", e.Code, e.Message)
	}
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", msg, e.Err)
	}
	return msg
}

// Unwrap returns the underlying error for errors.Is/As support
func (e *DomainError) Unwrap() error {
	return e.Err
}

// Retryable interface for errors that can be retried
type Retryable interface {
	IsRetryable() bool
}

func NewValidationError(code, message string) *DomainError {
	return &DomainError{
		Kind:    KindValidation,
		Code:    code,
		Message: message,
	}
}

func NewDuplicateOrderError(buyOrder string) *DomainError {
	return &DomainError{
		Kind:    KindDuplicateOrder,
		Code:    ErrCodeAlreadyProcessed,
		Message: fmt.Sprintf("buy order %s was already processed", buyOrder),
	}
}

func NewInvalidReferenceError(code string, err error) *DomainError {
	return &DomainError{
		Kind:    KindInvalidReference,
		Code:    code,
		Message: "callback reference or token is invalid",
		Err:     err,
	}
}

func NewTransactionNotFoundError(code, buyOrder string) *DomainError {
	return &DomainError{
		Kind:    KindTransactionNotFound,
		Code:    code,
		Message: fmt.Sprintf("no transaction for buy order %s", buyOrder),
		Err:     ErrTransactionNotFound,
	}
}

func NewGatewayRejectedError(message string, err error) *DomainError {
	return &DomainError{
		Kind:    KindGatewayRejected,
		Code:    ErrCodeGatewayRejected,
		Message: message,
		Err:     err,
	}
}

// NewUnexpectedResponseError reports a gateway answer that broke a
// business rule. detail is attached to the public message by callers that
// expose it.
func NewUnexpectedResponseError(code, detail string, responseCode *int) *DomainError {
	return &DomainError{
		Kind:         KindUnexpectedGatewayResponse,
		Code:         code,
		Message:      fmt.Sprintf("unexpected gateway response (%s)", detail),
		Detail:       detail,
		ResponseCode: responseCode,
	}
}

func NewGatewayUnavailableError(err error) *DomainError {
	return &DomainError{
		Kind:    KindGatewayUnavailable,
		Code:    ErrCodeGatewayUnavailable,
		Message: "payment gateway is unavailable",
		Err:     err,
	}
}

func NewStorageError(err error) *DomainError {
	return &DomainError{
		Kind:    KindStorage,
		Code:    ErrCodeStorage,
		Message: "transaction store failure",
		Err:     err,
	}
}

// IsErrorCode checks if an error is a DomainError with a specific code
func IsErrorCode(err error, code string) bool {
	var domainErr *DomainError
	if errors.As(err, &domainErr) {
		return domainErr.Code == code
	}
	return false
}

// KindOf returns the kind of the first DomainError in err's chain, or an
// empty kind when there is none.
func KindOf(err error) ErrorKind {
	var domainErr *DomainError
	if errors.As(err, &domainErr) {
		return domainErr.Kind
	}
	return ""
}

func IsKind(err error, kind ErrorKind) bool {
	return KindOf(err) == kind
}

// ResponseCodeOf returns the gateway response code carried by err.
func ResponseCodeOf(err error) (int, bool) {
	var domainErr *DomainError
	if errors.As(err, &domainErr) && domainErr.ResponseCode != nil {
		return *domainErr.ResponseCode, true
	}
	return 0, false
}

// PublicMessage is the error string safe to hand to API callers. Errors
// that are not DomainErrors collapse to the storage code.
func PublicMessage(err error) string {
	var domainErr *DomainError
	if !errors.As(err, &domainErr) {
		return ErrCodeStorage
	}
	if domainErr.Kind == KindUnexpectedGatewayResponse && domainErr.Code == ErrCodeUnexpectedResponse && domainErr.Detail != "" {
		return domainErr.Code + "_" + domainErr.Detail
	}
	return domainErr.Code
}
