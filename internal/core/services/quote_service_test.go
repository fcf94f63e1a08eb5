package services_test

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/ateliersoft/backoffice_app/internal/apperrors"
	"github.com/ateliersoft/backoffice_app/internal/core/domain"
	portssvc "github.com/ateliersoft/backoffice_app/internal/core/ports/services"
	"github.com/ateliersoft/backoffice_app/internal/core/services"
	"github.com/ateliersoft/backoffice_app/internal/dto"
	"github.com/ateliersoft/backoffice_app/internal/utils/accounting"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// --- Mock QuoteRepository ---
type MockQuoteRepository struct {
	mock.Mock
}

func (m *MockQuoteRepository) FindQuoteByID(ctx context.Context, quoteID string) (*domain.Quote, error) {
	args := m.Called(ctx, quoteID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Quote), args.Error(1)
}

func (m *MockQuoteRepository) ListQuotes(ctx context.Context, status *domain.QuoteStatus, limit int, nextToken *string) ([]domain.Quote, *string, error) {
	args := m.Called(ctx, status, limit, nextToken)
	var quotes []domain.Quote
	if args.Get(0) != nil {
		quotes = args.Get(0).([]domain.Quote)
	}
	var token *string
	if args.Get(1) != nil {
		token = args.Get(1).(*string)
	}
	return quotes, token, args.Error(2)
}

func (m *MockQuoteRepository) ListQuotesCreatedBefore(ctx context.Context, status domain.QuoteStatus, cutoff time.Time) ([]domain.Quote, error) {
	args := m.Called(ctx, status, cutoff)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Quote), args.Error(1)
}

func (m *MockQuoteRepository) SaveQuote(ctx context.Context, quote domain.Quote, change domain.QuoteStatusChange) error {
	args := m.Called(ctx, quote, change)
	return args.Error(0)
}

func (m *MockQuoteRepository) ReplaceQuoteLines(ctx context.Context, quote domain.Quote, expectedStatus domain.QuoteStatus) error {
	args := m.Called(ctx, quote, expectedStatus)
	return args.Error(0)
}

func (m *MockQuoteRepository) TransitionQuote(ctx context.Context, quoteID string, expectedStatus domain.QuoteStatus, change domain.QuoteStatusChange, receivable *domain.CashFlowEntry) error {
	args := m.Called(ctx, quoteID, expectedStatus, change, receivable)
	return args.Error(0)
}

func (m *MockQuoteRepository) SoftDeleteQuote(ctx context.Context, quoteID string, expectedStatus domain.QuoteStatus, deletedBy string, deletedAt time.Time) error {
	args := m.Called(ctx, quoteID, expectedStatus, deletedBy, deletedAt)
	return args.Error(0)
}

// --- Mock Authorizer ---
type MockAuthorizer struct {
	mock.Mock
}

func (m *MockAuthorizer) AuthorizeAction(ctx context.Context, userID string, action string) error {
	args := m.Called(ctx, userID, action)
	return args.Error(0)
}

// --- Test Suite ---
type QuoteServiceTestSuite struct {
	suite.Suite
	mockRepo *MockQuoteRepository
	service  portssvc.QuoteSvcFacade
	now      time.Time
}

func (suite *QuoteServiceTestSuite) SetupTest() {
	suite.mockRepo = new(MockQuoteRepository)
	suite.now = time.Date(2024, 3, 15, 10, 0, 0, 0, time.UTC)
	suite.service = services.NewQuoteService(
		suite.mockRepo,
		accounting.NewCalculator(decimal.RequireFromString("0.15")),
		30*24*time.Hour,
		services.WithQuoteClock(func() time.Time { return suite.now }),
	)
}

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func lineReq(qty, price string) dto.QuoteLineRequest {
	return dto.QuoteLineRequest{RefID: uuid.NewString(), Quantity: dec(qty), UnitPrice: dec(price)}
}

func pendingQuote(quoteID string) *domain.Quote {
	return &domain.Quote{
		QuoteID:  quoteID,
		ClientID: uuid.NewString(),
		Status:   domain.QuotePending,
		Items: []domain.QuoteItem{{
			ItemID:    uuid.NewString(),
			QuoteID:   quoteID,
			ProductID: uuid.NewString(),
			Quantity:  dec("10"),
			UnitPrice: dec("35"),
			LineTotal: dec("350"),
		}},
		Services: []domain.QuoteServiceLine{{
			LineID:    uuid.NewString(),
			QuoteID:   quoteID,
			ServiceID: uuid.NewString(),
			Quantity:  dec("2"),
			UnitPrice: dec("500"),
			LineTotal: dec("1000"),
		}},
	}
}

// --- CreateQuote ---

func (suite *QuoteServiceTestSuite) TestCreateQuote_Success() {
	ctx := context.Background()
	creatorUserID := uuid.NewString()
	req := dto.CreateQuoteRequest{
		ClientID: uuid.NewString(),
		Items:    []dto.QuoteLineRequest{lineReq("10", "35")},
		Services: []dto.QuoteLineRequest{lineReq("2", "500")},
	}

	suite.mockRepo.On("SaveQuote", ctx, mock.MatchedBy(func(q domain.Quote) bool {
		return q.ClientID == req.ClientID &&
			q.Status == domain.QuotePending &&
			len(q.Items) == 1 && len(q.Services) == 1 &&
			q.Items[0].LineTotal.Equal(dec("350")) &&
			q.Services[0].LineTotal.Equal(dec("1000")) &&
			q.CreatedBy == creatorUserID &&
			q.Version == 1
	}), mock.MatchedBy(func(c domain.QuoteStatusChange) bool {
		return c.FromStatus == nil && c.ToStatus == domain.QuotePending && c.ChangedBy == creatorUserID
	})).Return(nil).Once()

	quote, err := suite.service.CreateQuote(ctx, req, creatorUserID)

	suite.Require().NoError(err)
	suite.Require().NotNil(quote)
	suite.Equal(domain.QuotePending, quote.Status)
	suite.Len(quote.StatusLog, 1)
	suite.Nil(quote.StatusLog[0].FromStatus)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *QuoteServiceTestSuite) TestCreateQuote_NoLines() {
	ctx := context.Background()
	req := dto.CreateQuoteRequest{ClientID: uuid.NewString()}

	quote, err := suite.service.CreateQuote(ctx, req, uuid.NewString())

	suite.Require().Error(err)
	suite.Nil(quote)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockRepo.AssertNotCalled(suite.T(), "SaveQuote")
}

func (suite *QuoteServiceTestSuite) TestCreateQuote_NonPositiveQuantity() {
	ctx := context.Background()
	req := dto.CreateQuoteRequest{
		ClientID: uuid.NewString(),
		Items:    []dto.QuoteLineRequest{lineReq("0", "35")},
	}

	_, err := suite.service.CreateQuote(ctx, req, uuid.NewString())

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
}

func (suite *QuoteServiceTestSuite) TestCreateQuote_NegativePrice() {
	ctx := context.Background()
	req := dto.CreateQuoteRequest{
		ClientID: uuid.NewString(),
		Items:    []dto.QuoteLineRequest{lineReq("1", "-5")},
	}

	_, err := suite.service.CreateQuote(ctx, req, uuid.NewString())

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
}

func (suite *QuoteServiceTestSuite) TestCreateQuote_ForbiddenShortCircuits() {
	ctx := context.Background()
	userID := uuid.NewString()
	authorizer := new(MockAuthorizer)
	authorizer.On("AuthorizeAction", ctx, userID, "quote:create").Return(apperrors.ErrForbidden).Once()

	service := services.NewQuoteService(
		suite.mockRepo,
		accounting.NewCalculator(dec("0.15")),
		30*24*time.Hour,
		services.WithQuoteAuthorizer(authorizer),
	)

	req := dto.CreateQuoteRequest{
		ClientID: uuid.NewString(),
		Items:    []dto.QuoteLineRequest{lineReq("1", "10")},
	}
	quote, err := service.CreateQuote(ctx, req, userID)

	suite.Require().Error(err)
	suite.Nil(quote)
	suite.ErrorIs(err, apperrors.ErrForbidden)
	suite.mockRepo.AssertNotCalled(suite.T(), "SaveQuote")
	authorizer.AssertExpectations(suite.T())
}

// --- UpdateQuote ---

func (suite *QuoteServiceTestSuite) TestUpdateQuote_Success() {
	ctx := context.Background()
	quoteID := uuid.NewString()
	userID := uuid.NewString()
	existing := pendingQuote(quoteID)
	oldItemID := existing.Items[0].ItemID

	req := dto.UpdateQuoteRequest{
		ClientID: existing.ClientID,
		Items:    []dto.QuoteLineRequest{lineReq("3", "100")},
	}

	suite.mockRepo.On("FindQuoteByID", ctx, quoteID).Return(existing, nil).Once()
	suite.mockRepo.On("ReplaceQuoteLines", ctx, mock.MatchedBy(func(q domain.Quote) bool {
		// wholesale replacement mints new line IDs
		return len(q.Items) == 1 && len(q.Services) == 0 &&
			q.Items[0].ItemID != oldItemID &&
			q.Items[0].LineTotal.Equal(dec("300")) &&
			q.LastUpdatedBy == userID
	}), domain.QuotePending).Return(nil).Once()

	quote, err := suite.service.UpdateQuote(ctx, quoteID, req, userID)

	suite.Require().NoError(err)
	suite.Require().NotNil(quote)
	suite.Len(quote.Items, 1)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *QuoteServiceTestSuite) TestUpdateQuote_NotEditableWhenApproved() {
	ctx := context.Background()
	quoteID := uuid.NewString()
	existing := pendingQuote(quoteID)
	existing.Status = domain.QuoteApproved

	req := dto.UpdateQuoteRequest{
		ClientID: existing.ClientID,
		Items:    []dto.QuoteLineRequest{lineReq("1", "10")},
	}

	suite.mockRepo.On("FindQuoteByID", ctx, quoteID).Return(existing, nil).Once()

	quote, err := suite.service.UpdateQuote(ctx, quoteID, req, uuid.NewString())

	suite.Require().Error(err)
	suite.Nil(quote)
	suite.ErrorIs(err, apperrors.ErrIllegalTransition)
	suite.mockRepo.AssertNotCalled(suite.T(), "ReplaceQuoteLines")
}

func (suite *QuoteServiceTestSuite) TestUpdateQuote_ConcurrentEditConflict() {
	ctx := context.Background()
	quoteID := uuid.NewString()
	existing := pendingQuote(quoteID)

	req := dto.UpdateQuoteRequest{
		ClientID: existing.ClientID,
		Items:    []dto.QuoteLineRequest{lineReq("1", "10")},
	}

	suite.mockRepo.On("FindQuoteByID", ctx, quoteID).Return(existing, nil).Once()
	suite.mockRepo.On("ReplaceQuoteLines", ctx, mock.AnythingOfType("domain.Quote"), domain.QuotePending).
		Return(fmt.Errorf("%w: quote status changed", apperrors.ErrConflict)).Once()

	_, err := suite.service.UpdateQuote(ctx, quoteID, req, uuid.NewString())

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrConflict)
	suite.mockRepo.AssertExpectations(suite.T())
}

// --- TransitionQuote ---

func (suite *QuoteServiceTestSuite) TestTransitionQuote_PendingToApproved() {
	ctx := context.Background()
	quoteID := uuid.NewString()
	userID := uuid.NewString()
	existing := pendingQuote(quoteID)

	suite.mockRepo.On("FindQuoteByID", ctx, quoteID).Return(existing, nil).Once()
	suite.mockRepo.On("TransitionQuote", ctx, quoteID, domain.QuotePending, mock.MatchedBy(func(c domain.QuoteStatusChange) bool {
		return c.FromStatus != nil && *c.FromStatus == domain.QuotePending &&
			c.ToStatus == domain.QuoteApproved && c.ChangedBy == userID
	}), (*domain.CashFlowEntry)(nil)).Return(nil).Once()

	quote, err := suite.service.TransitionQuote(ctx, quoteID, dto.TransitionQuoteRequest{ToStatus: domain.QuoteApproved}, userID)

	suite.Require().NoError(err)
	suite.Equal(domain.QuoteApproved, quote.Status)
	suite.Len(quote.StatusLog, 1)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *QuoteServiceTestSuite) TestTransitionQuote_ApprovedToPaidWritesReceivable() {
	ctx := context.Background()
	quoteID := uuid.NewString()
	userID := uuid.NewString()
	existing := pendingQuote(quoteID)
	existing.Status = domain.QuoteApproved
	existing.ApplyFee = true
	// subtotal 1350, fee 202.50, total 1552.50

	suite.mockRepo.On("FindQuoteByID", ctx, quoteID).Return(existing, nil).Once()
	suite.mockRepo.On("TransitionQuote", ctx, quoteID, domain.QuoteApproved, mock.AnythingOfType("domain.QuoteStatusChange"), mock.MatchedBy(func(e *domain.CashFlowEntry) bool {
		return e != nil &&
			e.Type == domain.EntryQuoteReceivable &&
			e.Direction == domain.DirectionIn &&
			e.Status == domain.EntryPending &&
			e.Amount.Equal(dec("1552.50")) &&
			e.QuoteID != nil && *e.QuoteID == quoteID &&
			e.DueDate.Equal(suite.now)
	})).Return(nil).Once()

	quote, err := suite.service.TransitionQuote(ctx, quoteID, dto.TransitionQuoteRequest{ToStatus: domain.QuotePaid}, userID)

	suite.Require().NoError(err)
	suite.Equal(domain.QuotePaid, quote.Status)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *QuoteServiceTestSuite) TestTransitionQuote_PaidWithoutFee() {
	ctx := context.Background()
	quoteID := uuid.NewString()
	existing := pendingQuote(quoteID)
	existing.Status = domain.QuoteApproved

	suite.mockRepo.On("FindQuoteByID", ctx, quoteID).Return(existing, nil).Once()
	suite.mockRepo.On("TransitionQuote", ctx, quoteID, domain.QuoteApproved, mock.AnythingOfType("domain.QuoteStatusChange"), mock.MatchedBy(func(e *domain.CashFlowEntry) bool {
		return e != nil && e.Amount.Equal(dec("1350"))
	})).Return(nil).Once()

	_, err := suite.service.TransitionQuote(ctx, quoteID, dto.TransitionQuoteRequest{ToStatus: domain.QuotePaid}, uuid.NewString())

	suite.Require().NoError(err)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *QuoteServiceTestSuite) TestTransitionQuote_IllegalTransitions() {
	ctx := context.Background()

	cases := []struct {
		name string
		from domain.QuoteStatus
		to   domain.QuoteStatus
	}{
		{"pending to paid skips approval", domain.QuotePending, domain.QuotePaid},
		{"approved back to pending", domain.QuoteApproved, domain.QuotePending},
		{"paid is terminal", domain.QuotePaid, domain.QuoteCancelled},
		{"cancelled is terminal", domain.QuoteCancelled, domain.QuoteApproved},
		{"paid cannot reapprove", domain.QuotePaid, domain.QuoteApproved},
		{"cancelled cannot pay", domain.QuoteCancelled, domain.QuotePaid},
	}

	for _, tc := range cases {
		suite.Run(tc.name, func() {
			quoteID := uuid.NewString()
			existing := pendingQuote(quoteID)
			existing.Status = tc.from

			mockRepo := new(MockQuoteRepository)
			mockRepo.On("FindQuoteByID", ctx, quoteID).Return(existing, nil).Once()
			service := services.NewQuoteService(mockRepo, accounting.NewCalculator(dec("0.15")), 30*24*time.Hour)

			_, err := service.TransitionQuote(ctx, quoteID, dto.TransitionQuoteRequest{ToStatus: tc.to}, uuid.NewString())

			suite.Require().Error(err)
			suite.ErrorIs(err, apperrors.ErrIllegalTransition)
			mockRepo.AssertNotCalled(suite.T(), "TransitionQuote")
		})
	}
}

func (suite *QuoteServiceTestSuite) TestTransitionQuote_ConcurrentTransitionConflict() {
	ctx := context.Background()
	quoteID := uuid.NewString()
	existing := pendingQuote(quoteID)

	suite.mockRepo.On("FindQuoteByID", ctx, quoteID).Return(existing, nil).Once()
	suite.mockRepo.On("TransitionQuote", ctx, quoteID, domain.QuotePending, mock.AnythingOfType("domain.QuoteStatusChange"), (*domain.CashFlowEntry)(nil)).
		Return(fmt.Errorf("%w: quote status changed", apperrors.ErrConflict)).Once()

	_, err := suite.service.TransitionQuote(ctx, quoteID, dto.TransitionQuoteRequest{ToStatus: domain.QuoteCancelled}, uuid.NewString())

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrConflict)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *QuoteServiceTestSuite) TestTransitionQuote_NotFound() {
	ctx := context.Background()
	quoteID := uuid.NewString()

	suite.mockRepo.On("FindQuoteByID", ctx, quoteID).Return(nil, apperrors.ErrNotFound).Once()

	_, err := suite.service.TransitionQuote(ctx, quoteID, dto.TransitionQuoteRequest{ToStatus: domain.QuoteApproved}, uuid.NewString())

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrNotFound)
}

// --- DeleteQuote ---

func (suite *QuoteServiceTestSuite) TestDeleteQuote_PendingSuccess() {
	ctx := context.Background()
	quoteID := uuid.NewString()
	userID := uuid.NewString()
	existing := pendingQuote(quoteID)

	suite.mockRepo.On("FindQuoteByID", ctx, quoteID).Return(existing, nil).Once()
	suite.mockRepo.On("SoftDeleteQuote", ctx, quoteID, domain.QuotePending, userID, suite.now).Return(nil).Once()

	err := suite.service.DeleteQuote(ctx, quoteID, userID)

	suite.Require().NoError(err)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *QuoteServiceTestSuite) TestDeleteQuote_CancelledSuccess() {
	ctx := context.Background()
	quoteID := uuid.NewString()
	userID := uuid.NewString()
	existing := pendingQuote(quoteID)
	existing.Status = domain.QuoteCancelled

	suite.mockRepo.On("FindQuoteByID", ctx, quoteID).Return(existing, nil).Once()
	suite.mockRepo.On("SoftDeleteQuote", ctx, quoteID, domain.QuoteCancelled, userID, suite.now).Return(nil).Once()

	err := suite.service.DeleteQuote(ctx, quoteID, userID)

	suite.Require().NoError(err)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *QuoteServiceTestSuite) TestDeleteQuote_RejectsApprovedAndPaid() {
	ctx := context.Background()

	for _, status := range []domain.QuoteStatus{domain.QuoteApproved, domain.QuotePaid} {
		quoteID := uuid.NewString()
		existing := pendingQuote(quoteID)
		existing.Status = status

		mockRepo := new(MockQuoteRepository)
		mockRepo.On("FindQuoteByID", ctx, quoteID).Return(existing, nil).Once()
		service := services.NewQuoteService(mockRepo, accounting.NewCalculator(dec("0.15")), 30*24*time.Hour)

		err := service.DeleteQuote(ctx, quoteID, uuid.NewString())

		suite.Require().Error(err)
		suite.ErrorIs(err, apperrors.ErrIllegalTransition)
		mockRepo.AssertNotCalled(suite.T(), "SoftDeleteQuote")
	}
}

// --- Reads ---

func (suite *QuoteServiceTestSuite) TestGetQuoteByID_Success() {
	ctx := context.Background()
	quoteID := uuid.NewString()
	expected := pendingQuote(quoteID)

	suite.mockRepo.On("FindQuoteByID", ctx, quoteID).Return(expected, nil).Once()

	quote, err := suite.service.GetQuoteByID(ctx, quoteID)

	suite.Require().NoError(err)
	suite.Equal(expected, quote)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *QuoteServiceTestSuite) TestListQuotes_DefaultLimit() {
	ctx := context.Background()

	suite.mockRepo.On("ListQuotes", ctx, (*domain.QuoteStatus)(nil), 20, (*string)(nil)).
		Return([]domain.Quote{}, nil, nil).Once()

	_, _, err := suite.service.ListQuotes(ctx, nil, 0, nil)

	suite.Require().NoError(err)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *QuoteServiceTestSuite) TestListOverdueQuotes_BoundaryExcluded() {
	ctx := context.Background()
	cutoff := suite.now.Add(-30 * 24 * time.Hour)

	boundary := pendingQuote(uuid.NewString())
	boundary.CreatedAt = cutoff // exactly 30 days old, not overdue
	stale := pendingQuote(uuid.NewString())
	stale.CreatedAt = cutoff.Add(-time.Second)

	suite.mockRepo.On("ListQuotesCreatedBefore", ctx, domain.QuotePending, cutoff).
		Return([]domain.Quote{*boundary, *stale}, nil).Once()

	overdue, err := suite.service.ListOverdueQuotes(ctx)

	suite.Require().NoError(err)
	suite.Require().Len(overdue, 1)
	suite.Equal(stale.QuoteID, overdue[0].QuoteID)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *QuoteServiceTestSuite) TestListQuotes_RepoError() {
	ctx := context.Background()
	expectedErr := assert.AnError

	suite.mockRepo.On("ListQuotes", ctx, (*domain.QuoteStatus)(nil), 20, (*string)(nil)).
		Return(nil, nil, expectedErr).Once()

	_, _, err := suite.service.ListQuotes(ctx, nil, 0, nil)

	suite.Require().Error(err)
	suite.ErrorIs(err, expectedErr)
}

func TestQuoteServiceTestSuite(t *testing.T) {
	suite.Run(t, new(QuoteServiceTestSuite))
}
