package services_test

import (
	"context"
	"errors"
	"net/url"

	"github.com/DanielPopoola/webpay-gateway/internal/application/services"
	"github.com/DanielPopoola/webpay-gateway/internal/domain"
	"github.com/DanielPopoola/webpay-gateway/internal/testhelpers"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
)

type AuthorizeTestSuite struct {
	serviceSuite
}

const (
	authBuyOrder  = "ord-2002"
	authReference = "REF2002"
	authToken     = "01ab9f3c2d7e44b0a1"
)

func (s *AuthorizeTestSuite) authorizeCmd() services.AuthorizeCommand {
	return services.AuthorizeCommand{Reference: authReference, Token: authToken}
}

// failureQuery parses the failure redirect and checks it targets the
// configured failure page.
func (s *AuthorizeTestSuite) failureQuery(redirect string) url.Values {
	u, err := url.Parse(redirect)
	s.Require().NoError(err)
	s.Equal("/checkout/failure", u.Path)
	s.Equal("es", u.Query().Get("lang"))
	return u.Query()
}

// ============================================================================
// HAPPY PATH TESTS
// ============================================================================

func (s *AuthorizeTestSuite) Test_Authorize_Success() {
	s.codec.EXPECT().Decode(authReference).Return(authBuyOrder, nil).Once()
	released := s.expectLock(authBuyOrder)
	s.store.EXPECT().Exists(mock.Anything, authBuyOrder).Return(false, nil).Once()
	s.gateway.EXPECT().Commit(mock.Anything, authToken).Return(testhelpers.CommitResponse(authBuyOrder), nil).Once()

	var stored *domain.Transaction
	s.store.EXPECT().Insert(mock.Anything, mock.AnythingOfType("*domain.Transaction")).
		Run(func(_ context.Context, trx *domain.Transaction) { stored = trx }).
		Return("7f0c", nil).
		Once()

	result := s.service.Authorize(s.ctx, s.authorizeCmd())

	s.Require().NoError(result.Err)
	s.Equal(testSuccessURL+"?buyOrder="+authBuyOrder, result.RedirectURL)
	s.True(*released)

	s.Require().NotNil(stored)
	s.Equal(authBuyOrder, stored.BuyOrder)
	s.Equal(authToken, stored.GatewayToken)
	s.Equal(1, stored.InstallmentsNumber)
	s.False(stored.InstallmentsAmount.Valid)
	s.Require().NotNil(stored.CardSuffix)
	s.Equal("6623", *stored.CardSuffix)
	s.True(stored.Amount.Equal(decimal.NewFromInt(10000)))
}

// ============================================================================
// FAILURE TESTS
// ============================================================================

func (s *AuthorizeTestSuite) Test_Authorize_InvalidReference() {
	s.codec.EXPECT().Decode("garbage").
		Return("", domain.NewInvalidReferenceError(domain.ErrCodeInvalidReference, errors.New("forged"))).Once()

	result := s.service.Authorize(s.ctx, services.AuthorizeCommand{Reference: "garbage", Token: authToken})

	s.Require().Error(result.Err)
	s.True(domain.IsKind(result.Err, domain.KindInvalidReference))
	q := s.failureQuery(result.RedirectURL)
	s.Empty(q.Get("buyOrder"))
	s.Empty(q.Get("tbkResCode"))
}

func (s *AuthorizeTestSuite) Test_Authorize_MissingToken() {
	result := s.service.Authorize(s.ctx, services.AuthorizeCommand{Reference: authReference})

	s.Require().Error(result.Err)
	s.Equal(domain.ErrCodeInvalidToken, domain.PublicMessage(result.Err))
	q := s.failureQuery(result.RedirectURL)
	s.Empty(q.Get("buyOrder"))
	s.Empty(q.Get("tbkResCode"))
	s.codec.AssertNotCalled(s.T(), "Decode", mock.Anything)
	s.gateway.AssertNotCalled(s.T(), "Commit", mock.Anything, mock.Anything)
}

func (s *AuthorizeTestSuite) Test_Authorize_BuyerAbortKeepsBuyOrderOutOfRedirect() {
	s.codec.EXPECT().Decode(authReference).Return(authBuyOrder, nil).Once()

	result := s.service.Authorize(s.ctx, services.AuthorizeCommand{Reference: authReference, AbortToken: "abort-token"})

	s.Require().Error(result.Err)
	s.Equal(domain.ErrCodeInvalidToken, domain.PublicMessage(result.Err))
	q := s.failureQuery(result.RedirectURL)
	s.Empty(q.Get("buyOrder"))
	s.Empty(q.Get("tbkResCode"))
	s.store.AssertNotCalled(s.T(), "Exists", mock.Anything, mock.Anything)
	s.gateway.AssertNotCalled(s.T(), "Commit", mock.Anything, mock.Anything)
}

func (s *AuthorizeTestSuite) Test_Authorize_AbortWithForgedReference() {
	s.codec.EXPECT().Decode("garbage").
		Return("", domain.NewInvalidReferenceError(domain.ErrCodeInvalidReference, errors.New("forged"))).Once()

	result := s.service.Authorize(s.ctx, services.AuthorizeCommand{Reference: "garbage", AbortToken: "abort-token"})

	s.Require().Error(result.Err)
	s.Equal(domain.ErrCodeInvalidToken, domain.PublicMessage(result.Err))
	s.Empty(s.failureQuery(result.RedirectURL).Get("buyOrder"))
}

func (s *AuthorizeTestSuite) Test_Authorize_AlreadyProcessed() {
	s.codec.EXPECT().Decode(authReference).Return(authBuyOrder, nil).Once()
	released := s.expectLock(authBuyOrder)
	s.store.EXPECT().Exists(mock.Anything, authBuyOrder).Return(true, nil).Once()

	result := s.service.Authorize(s.ctx, s.authorizeCmd())

	s.Require().Error(result.Err)
	s.True(domain.IsKind(result.Err, domain.KindDuplicateOrder))
	q := s.failureQuery(result.RedirectURL)
	s.Equal(authBuyOrder, q.Get("buyOrder"))
	s.Empty(q.Get("tbkResCode"))
	s.True(*released)
	s.gateway.AssertNotCalled(s.T(), "Commit", mock.Anything, mock.Anything)
}

func (s *AuthorizeTestSuite) Test_Authorize_GatewayDeclined() {
	declined := testhelpers.CommitResponse(authBuyOrder)
	declined.ResponseCode = -1
	declined.Status = "FAILED"

	s.codec.EXPECT().Decode(authReference).Return(authBuyOrder, nil).Once()
	s.expectLock(authBuyOrder)
	s.store.EXPECT().Exists(mock.Anything, authBuyOrder).Return(false, nil).Once()
	s.gateway.EXPECT().Commit(mock.Anything, authToken).Return(declined, nil).Once()

	result := s.service.Authorize(s.ctx, s.authorizeCmd())

	s.Require().Error(result.Err)
	s.True(domain.IsKind(result.Err, domain.KindUnexpectedGatewayResponse))
	q := s.failureQuery(result.RedirectURL)
	s.Equal(authBuyOrder, q.Get("buyOrder"))
	s.Equal("-1", q.Get("tbkResCode"))
	s.store.AssertNotCalled(s.T(), "Insert", mock.Anything, mock.Anything)
}

func (s *AuthorizeTestSuite) Test_Authorize_BuyOrderMismatch() {
	s.codec.EXPECT().Decode(authReference).Return(authBuyOrder, nil).Once()
	s.expectLock(authBuyOrder)
	s.store.EXPECT().Exists(mock.Anything, authBuyOrder).Return(false, nil).Once()
	s.gateway.EXPECT().Commit(mock.Anything, authToken).Return(testhelpers.CommitResponse("ord-other"), nil).Once()

	result := s.service.Authorize(s.ctx, s.authorizeCmd())

	s.Require().Error(result.Err)
	s.Equal(domain.ErrCodeResponseBuyOrder, domain.PublicMessage(result.Err))
	q := s.failureQuery(result.RedirectURL)
	s.Equal(authBuyOrder, q.Get("buyOrder"))
	s.Equal("0", q.Get("tbkResCode"))
	s.store.AssertNotCalled(s.T(), "Insert", mock.Anything, mock.Anything)
}

func (s *AuthorizeTestSuite) Test_Authorize_GatewayUnavailable() {
	s.codec.EXPECT().Decode(authReference).Return(authBuyOrder, nil).Once()
	s.expectLock(authBuyOrder)
	s.store.EXPECT().Exists(mock.Anything, authBuyOrder).Return(false, nil).Once()
	s.gateway.EXPECT().Commit(mock.Anything, authToken).Return(nil, errors.New("dial tcp: i/o timeout")).Once()

	result := s.service.Authorize(s.ctx, s.authorizeCmd())

	s.Require().Error(result.Err)
	s.True(domain.IsKind(result.Err, domain.KindGatewayUnavailable))
	q := s.failureQuery(result.RedirectURL)
	s.Empty(q.Get("tbkResCode"))
	s.NotContains(result.RedirectURL, "timeout")
}

func (s *AuthorizeTestSuite) Test_Authorize_DuplicateAtInsert() {
	s.codec.EXPECT().Decode(authReference).Return(authBuyOrder, nil).Once()
	s.expectLock(authBuyOrder)
	s.store.EXPECT().Exists(mock.Anything, authBuyOrder).Return(false, nil).Once()
	s.gateway.EXPECT().Commit(mock.Anything, authToken).Return(testhelpers.CommitResponse(authBuyOrder), nil).Once()
	s.store.EXPECT().Insert(mock.Anything, mock.Anything).Return("", domain.ErrDuplicateTransaction).Once()

	result := s.service.Authorize(s.ctx, s.authorizeCmd())

	s.True(domain.IsKind(result.Err, domain.KindDuplicateOrder))
}

func (s *AuthorizeTestSuite) Test_Authorize_CommittedButNotPersisted() {
	s.codec.EXPECT().Decode(authReference).Return(authBuyOrder, nil).Once()
	s.expectLock(authBuyOrder)
	s.store.EXPECT().Exists(mock.Anything, authBuyOrder).Return(false, nil).Once()
	s.gateway.EXPECT().Commit(mock.Anything, authToken).Return(testhelpers.CommitResponse(authBuyOrder), nil).Once()
	s.store.EXPECT().Insert(mock.Anything, mock.Anything).Return("", errors.New("disk full")).Once()

	result := s.service.Authorize(s.ctx, s.authorizeCmd())

	s.True(domain.IsKind(result.Err, domain.KindStorage))
	q := s.failureQuery(result.RedirectURL)
	s.Equal("0", q.Get("tbkResCode"))
	s.NotContains(result.RedirectURL, "disk")
}

func (s *AuthorizeTestSuite) Test_Authorize_LockFailure() {
	s.codec.EXPECT().Decode(authReference).Return(authBuyOrder, nil).Once()
	s.locker.EXPECT().Lock(mock.Anything, authBuyOrder).Return(nil, errors.New("pool closed")).Once()

	result := s.service.Authorize(s.ctx, s.authorizeCmd())

	s.True(domain.IsKind(result.Err, domain.KindStorage))
	s.store.AssertNotCalled(s.T(), "Exists", mock.Anything, mock.Anything)
}

func (s *AuthorizeTestSuite) Test_Authorize_RecoversPanic() {
	s.codec.EXPECT().Decode(authReference).Return(authBuyOrder, nil).Once()
	s.expectLock(authBuyOrder)
	s.store.EXPECT().Exists(mock.Anything, authBuyOrder).Return(false, nil).Once()
	s.gateway.EXPECT().Commit(mock.Anything, authToken).
		Run(func(context.Context, string) { panic("nil map") }).
		Return(nil, nil).
		Once()

	var result services.AuthorizeResult
	s.NotPanics(func() { result = s.service.Authorize(s.ctx, s.authorizeCmd()) })

	s.Require().Error(result.Err)
	q := s.failureQuery(result.RedirectURL)
	s.Equal(authBuyOrder, q.Get("buyOrder"))
}
