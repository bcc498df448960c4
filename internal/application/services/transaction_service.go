package services

import (
	"log/slog"
	"time"

	"github.com/DanielPopoola/webpay-gateway/internal/application"
	"github.com/DanielPopoola/webpay-gateway/internal/config"
)

// Settings is the slice of configuration the coordinator needs.
type Settings struct {
	CallbackBaseURL string
	BasePath        string
	SuccessURL      string
	FailureURL      string
	SessionPolicy   string
}

func SettingsFromConfig(cfg *config.Config) Settings {
	return Settings{
		CallbackBaseURL: cfg.Callback.BaseURL,
		BasePath:        cfg.Server.BasePath,
		SuccessURL:      cfg.Callback.SuccessURL,
		FailureURL:      cfg.Callback.FailureURL,
		SessionPolicy:   cfg.Checkout.SessionPolicy,
	}
}

// TransactionService drives a Webpay transaction through create, authorize
// and refund. Only committed transactions are ever persisted.
type TransactionService struct {
	store    application.TransactionStore
	gateway  application.PaymentGateway
	codec    application.ReferenceCodec
	locker   application.OrderLocker
	settings Settings
	logger   *slog.Logger
	now      func() time.Time
}

func NewTransactionService(
	store application.TransactionStore,
	gateway application.PaymentGateway,
	codec application.ReferenceCodec,
	locker application.OrderLocker,
	settings Settings,
	logger *slog.Logger,
) *TransactionService {
	return &TransactionService{
		store:    store,
		gateway:  gateway,
		codec:    codec,
		locker:   locker,
		settings: settings,
		logger:   logger,
		now:      time.Now,
	}
}
