package services_test

import (
	"errors"

	"github.com/DanielPopoola/webpay-gateway/internal/domain"
	"github.com/DanielPopoola/webpay-gateway/internal/testhelpers"
	"github.com/stretchr/testify/mock"
)

type QueryTestSuite struct {
	serviceSuite
}

func (s *QueryTestSuite) Test_GetTransaction_Success() {
	trx := testhelpers.CreateTransaction(s.T(), "ord-4004")
	s.store.EXPECT().FindByBuyOrder(mock.Anything, "ord-4004").Return(trx, nil).Once()

	got, err := s.service.GetTransaction(s.ctx, "ord-4004")

	s.Require().NoError(err)
	s.Equal(trx.ID, got.ID)
}

func (s *QueryTestSuite) Test_GetTransaction_NotFound() {
	s.store.EXPECT().FindByBuyOrder(mock.Anything, "ord-4004").Return(nil, domain.ErrTransactionNotFound).Once()

	_, err := s.service.GetTransaction(s.ctx, "ord-4004")

	s.Require().Error(err)
	s.Equal(domain.ErrCodeTransactionNotFound, domain.PublicMessage(err))
}

func (s *QueryTestSuite) Test_GetTransaction_InvalidBuyOrder() {
	_, err := s.service.GetTransaction(s.ctx, "")

	s.Equal(domain.ErrCodeInvalidBuyOrder, domain.PublicMessage(err))
}

func (s *QueryTestSuite) Test_Ready() {
	s.store.EXPECT().Ping(mock.Anything).Return(nil).Once()
	s.NoError(s.service.Ready(s.ctx))

	s.store.EXPECT().Ping(mock.Anything).Return(errors.New("closed")).Once()
	s.True(domain.IsKind(s.service.Ready(s.ctx), domain.KindStorage))
}
