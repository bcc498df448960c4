package services_test

import (
	"errors"

	"github.com/DanielPopoola/webpay-gateway/internal/application"
	"github.com/DanielPopoola/webpay-gateway/internal/application/services"
	"github.com/DanielPopoola/webpay-gateway/internal/domain"
	"github.com/DanielPopoola/webpay-gateway/internal/testhelpers"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
)

type RefundTestSuite struct {
	serviceSuite
}

func validRefund() services.RefundCommand {
	return services.RefundCommand{
		BuyOrder: "ord-3003",
		AuthCode: "1213",
		Amount:   "4000",
	}
}

// ============================================================================
// HAPPY PATH TESTS
// ============================================================================

func (s *RefundTestSuite) Test_Refund_Success() {
	trx := testhelpers.CreateTransaction(s.T(), "ord-3003")
	s.store.EXPECT().Find(mock.Anything, "ord-3003", "1213").Return(trx, nil).Once()
	s.gateway.EXPECT().
		Refund(mock.Anything, mock.MatchedBy(func(req application.RefundRequest) bool {
			return req.Token == trx.GatewayToken &&
				req.BuyOrder == "ord-3003" &&
				req.Amount.Equal(decimal.NewFromInt(4000))
		})).
		Return(&application.RefundResponse{
			Type:              application.RefundTypeNullified,
			AuthorizationCode: "123456",
			NullifiedAmount:   decimal.NewFromInt(4000),
			Balance:           decimal.NewFromInt(6000),
		}, nil).
		Once()

	resp, err := s.service.Refund(s.ctx, validRefund())

	s.Require().NoError(err)
	s.Equal(application.RefundTypeNullified, resp.Type)
	s.True(resp.Balance.Equal(decimal.NewFromInt(6000)))
}

func (s *RefundTestSuite) Test_Refund_FullAmountReversal() {
	trx := testhelpers.CreateTransaction(s.T(), "ord-3003")
	cmd := validRefund()
	cmd.Amount = "10000"
	cmd.CommerceCode = "597055555543"

	s.store.EXPECT().Find(mock.Anything, "ord-3003", "1213").Return(trx, nil).Once()
	s.gateway.EXPECT().
		Refund(mock.Anything, mock.MatchedBy(func(req application.RefundRequest) bool {
			return req.CommerceCode == "597055555543"
		})).
		Return(&application.RefundResponse{Type: application.RefundTypeReversed}, nil).
		Once()

	resp, err := s.service.Refund(s.ctx, cmd)

	s.Require().NoError(err)
	s.Equal(application.RefundTypeReversed, resp.Type)
}

// ============================================================================
// VALIDATION TESTS
// ============================================================================

func (s *RefundTestSuite) Test_Refund_ValidationOrder() {
	tests := []struct {
		name string
		cmd  services.RefundCommand
		code string
	}{
		{"everything missing", services.RefundCommand{}, domain.ErrCodeInvalidBuyOrder},
		{"auth code missing", services.RefundCommand{BuyOrder: "ord-3003"}, domain.ErrCodeInvalidAuthCode},
		{"amount missing", services.RefundCommand{BuyOrder: "ord-3003", AuthCode: "1213"}, domain.ErrCodeInvalidAmount},
		{"amount zero", services.RefundCommand{BuyOrder: "ord-3003", AuthCode: "1213", Amount: "0"}, domain.ErrCodeInvalidAmount},
	}

	for _, tt := range tests {
		s.Run(tt.name, func() {
			_, err := s.service.Refund(s.ctx, tt.cmd)

			s.Require().Error(err)
			s.Equal(tt.code, domain.PublicMessage(err))
		})
	}
}

func (s *RefundTestSuite) Test_Refund_AmountAboveCommitted() {
	trx := testhelpers.CreateTransaction(s.T(), "ord-3003")
	cmd := validRefund()
	cmd.Amount = "10000.01"
	s.store.EXPECT().Find(mock.Anything, "ord-3003", "1213").Return(trx, nil).Once()

	_, err := s.service.Refund(s.ctx, cmd)

	s.Require().Error(err)
	s.Equal(domain.ErrCodeInvalidAmount, domain.PublicMessage(err))
	s.gateway.AssertNotCalled(s.T(), "Refund", mock.Anything, mock.Anything)
}

// ============================================================================
// FAILURE TESTS
// ============================================================================

func (s *RefundTestSuite) Test_Refund_NotFound() {
	s.store.EXPECT().Find(mock.Anything, "ord-3003", "1213").Return(nil, domain.ErrTransactionNotFound).Once()

	_, err := s.service.Refund(s.ctx, validRefund())

	s.Require().Error(err)
	s.True(domain.IsKind(err, domain.KindTransactionNotFound))
	s.Equal(domain.ErrCodeAuthCodeNotFound, domain.PublicMessage(err))
}

func (s *RefundTestSuite) Test_Refund_RecordWithoutToken() {
	trx := testhelpers.CreateTransaction(s.T(), "ord-3003")
	trx.GatewayToken = ""
	s.store.EXPECT().Find(mock.Anything, "ord-3003", "1213").Return(trx, nil).Once()

	_, err := s.service.Refund(s.ctx, validRefund())

	s.Equal(domain.ErrCodeAuthCodeNotFound, domain.PublicMessage(err))
}

func (s *RefundTestSuite) Test_Refund_StoreFailure() {
	s.store.EXPECT().Find(mock.Anything, "ord-3003", "1213").Return(nil, errors.New("too many connections")).Once()

	_, err := s.service.Refund(s.ctx, validRefund())

	s.Equal(domain.ErrCodeStorage, domain.PublicMessage(err))
}

func (s *RefundTestSuite) Test_Refund_UnexpectedType() {
	tests := []struct {
		name     string
		respType string
		want     string
	}{
		{"unknown type", "FAILED", "UNEXPECTED_TBK_RESPONSE_FAILED"},
		{"missing type", "", "UNEXPECTED_TBK_RESPONSE_NAN"},
	}

	for _, tt := range tests {
		s.Run(tt.name, func() {
			trx := testhelpers.CreateTransaction(s.T(), "ord-3003")
			s.store.EXPECT().Find(mock.Anything, "ord-3003", "1213").Return(trx, nil).Once()
			s.gateway.EXPECT().Refund(mock.Anything, mock.Anything).
				Return(&application.RefundResponse{Type: tt.respType, ResponseCode: -1}, nil).Once()

			_, err := s.service.Refund(s.ctx, validRefund())

			s.Require().Error(err)
			s.True(domain.IsKind(err, domain.KindUnexpectedGatewayResponse))
			s.Equal(tt.want, domain.PublicMessage(err))
		})
	}
}

func (s *RefundTestSuite) Test_Refund_GatewayRejected() {
	trx := testhelpers.CreateTransaction(s.T(), "ord-3003")
	s.store.EXPECT().Find(mock.Anything, "ord-3003", "1213").Return(trx, nil).Once()
	s.gateway.EXPECT().Refund(mock.Anything, mock.Anything).
		Return(nil, domain.NewGatewayRejectedError("Invalid value for parameter: amount", nil)).Once()

	_, err := s.service.Refund(s.ctx, validRefund())

	s.Equal(domain.ErrCodeGatewayRejected, domain.PublicMessage(err))
}
