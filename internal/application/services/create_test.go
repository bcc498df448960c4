package services_test

import (
	"errors"
	"strings"

	"github.com/DanielPopoola/webpay-gateway/internal/application"
	"github.com/DanielPopoola/webpay-gateway/internal/application/services"
	"github.com/DanielPopoola/webpay-gateway/internal/config"
	"github.com/DanielPopoola/webpay-gateway/internal/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
)

type CreateTestSuite struct {
	serviceSuite
}

func validCreate() services.CreateCommand {
	return services.CreateCommand{
		BuyOrder:  "ord-1001",
		SessionID: "sess-1",
		Amount:    "15000",
		UserAgent: "Mozilla/5.0",
	}
}

// ============================================================================
// HAPPY PATH TESTS
// ============================================================================

func (s *CreateTestSuite) Test_Create_Success() {
	s.store.EXPECT().Exists(mock.Anything, "ord-1001").Return(false, nil).Once()
	s.codec.EXPECT().Encode("ord-1001").Return("REF123", nil).Once()
	s.gateway.EXPECT().
		Create(mock.Anything, mock.MatchedBy(func(req application.CreateRequest) bool {
			return req.BuyOrder == "ord-1001" &&
				req.SessionID == "sess-1" &&
				req.Amount.Equal(decimal.NewFromInt(15000)) &&
				req.ReturnURL == "https://shop.example.com/api/trx/authorize/REF123"
		})).
		Return(&application.CreateResponse{Token: "e9d555262db0f989", URL: "https://webpay3gint.transbank.cl/webpayserver/initTransaction"}, nil).
		Once()

	result, err := s.service.Create(s.ctx, validCreate())

	s.Require().NoError(err)
	s.Equal("e9d555262db0f989", result.Token)
	s.Equal("https://webpay3gint.transbank.cl/webpayserver/initTransaction", result.URL)
}

func (s *CreateTestSuite) Test_Create_UserAgentPolicyAllowsEmptySession() {
	settings := testSettings()
	settings.SessionPolicy = config.SessionPolicyUserAgent
	settings.BasePath = "/"
	s.build(settings)

	cmd := validCreate()
	cmd.SessionID = ""

	s.store.EXPECT().Exists(mock.Anything, "ord-1001").Return(false, nil).Once()
	s.codec.EXPECT().Encode("ord-1001").Return("REF123", nil).Once()
	s.gateway.EXPECT().
		Create(mock.Anything, mock.MatchedBy(func(req application.CreateRequest) bool {
			return req.SessionID == "" && req.ReturnURL == "https://shop.example.com/trx/authorize/REF123"
		})).
		Return(&application.CreateResponse{Token: "tok", URL: "https://gateway/pay"}, nil).
		Once()

	_, err := s.service.Create(s.ctx, cmd)
	s.Require().NoError(err)
}

// ============================================================================
// VALIDATION TESTS
// ============================================================================

func (s *CreateTestSuite) Test_Create_RejectsInvalidInput() {
	tests := []struct {
		name   string
		mutate func(*services.CreateCommand)
		code   string
	}{
		{"empty buy order", func(c *services.CreateCommand) { c.BuyOrder = "" }, domain.ErrCodeInvalidBuyOrder},
		{"buy order too long", func(c *services.CreateCommand) { c.BuyOrder = strings.Repeat("x", 27) }, domain.ErrCodeInvalidBuyOrder},
		{"missing session", func(c *services.CreateCommand) { c.SessionID = "" }, domain.ErrCodeInvalidSessionID},
		{"session too long", func(c *services.CreateCommand) { c.SessionID = strings.Repeat("s", 62) }, domain.ErrCodeInvalidSessionID},
		{"empty amount", func(c *services.CreateCommand) { c.Amount = "" }, domain.ErrCodeInvalidAmount},
		{"zero amount", func(c *services.CreateCommand) { c.Amount = "0" }, domain.ErrCodeInvalidAmount},
		{"negative amount", func(c *services.CreateCommand) { c.Amount = "-5" }, domain.ErrCodeInvalidAmount},
		{"non numeric amount", func(c *services.CreateCommand) { c.Amount = "ten" }, domain.ErrCodeInvalidAmount},
	}

	for _, tt := range tests {
		s.Run(tt.name, func() {
			cmd := validCreate()
			tt.mutate(&cmd)

			_, err := s.service.Create(s.ctx, cmd)

			s.Require().Error(err)
			s.True(domain.IsKind(err, domain.KindValidation))
			s.Equal(tt.code, domain.PublicMessage(err))
		})
	}
}

func (s *CreateTestSuite) Test_Create_UserAgentPolicyRequiresUserAgent() {
	settings := testSettings()
	settings.SessionPolicy = config.SessionPolicyUserAgent
	s.build(settings)

	cmd := validCreate()
	cmd.UserAgent = ""

	_, err := s.service.Create(s.ctx, cmd)

	s.Require().Error(err)
	s.Equal(domain.ErrCodeMissingUserAgent, domain.PublicMessage(err))
}

// ============================================================================
// FAILURE TESTS
// ============================================================================

func (s *CreateTestSuite) Test_Create_DuplicateOrderNeverReachesGateway() {
	s.store.EXPECT().Exists(mock.Anything, "ord-1001").Return(true, nil).Once()

	_, err := s.service.Create(s.ctx, validCreate())

	s.Require().Error(err)
	s.True(domain.IsKind(err, domain.KindDuplicateOrder))
	s.Equal(domain.ErrCodeAlreadyProcessed, domain.PublicMessage(err))
	s.gateway.AssertNotCalled(s.T(), "Create", mock.Anything, mock.Anything)
}

func (s *CreateTestSuite) Test_Create_StoreFailure() {
	s.store.EXPECT().Exists(mock.Anything, "ord-1001").Return(false, errors.New("connection refused")).Once()

	_, err := s.service.Create(s.ctx, validCreate())

	s.Require().Error(err)
	s.Equal(domain.ErrCodeStorage, domain.PublicMessage(err))
}

func (s *CreateTestSuite) Test_Create_EmptyGatewayAnswer() {
	s.store.EXPECT().Exists(mock.Anything, "ord-1001").Return(false, nil).Once()
	s.codec.EXPECT().Encode("ord-1001").Return("REF123", nil).Once()
	s.gateway.EXPECT().Create(mock.Anything, mock.Anything).
		Return(&application.CreateResponse{Token: "tok"}, nil).Once()

	_, err := s.service.Create(s.ctx, validCreate())

	s.Require().Error(err)
	s.True(domain.IsKind(err, domain.KindGatewayRejected))
	s.Equal(domain.ErrCodeUnexpectedResponse, domain.PublicMessage(err))
}

func (s *CreateTestSuite) Test_Create_GatewayErrors() {
	tests := []struct {
		name string
		err  error
		kind domain.ErrorKind
		code string
	}{
		{"rejected", domain.NewGatewayRejectedError("invalid amount", nil), domain.KindGatewayRejected, domain.ErrCodeGatewayRejected},
		{"unavailable", domain.NewGatewayUnavailableError(errors.New("timeout")), domain.KindGatewayUnavailable, domain.ErrCodeGatewayUnavailable},
		{"unclassified", errors.New("boom"), domain.KindGatewayUnavailable, domain.ErrCodeGatewayUnavailable},
	}

	for _, tt := range tests {
		s.Run(tt.name, func() {
			s.store.EXPECT().Exists(mock.Anything, "ord-1001").Return(false, nil).Once()
			s.codec.EXPECT().Encode("ord-1001").Return("REF123", nil).Once()
			s.gateway.EXPECT().Create(mock.Anything, mock.Anything).Return(nil, tt.err).Once()

			_, err := s.service.Create(s.ctx, validCreate())

			s.Require().Error(err)
			s.Equal(tt.kind, domain.KindOf(err))
			s.Equal(tt.code, domain.PublicMessage(err))
		})
	}
}
