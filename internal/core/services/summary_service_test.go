package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/ateliersoft/backoffice_app/internal/apperrors"
	"github.com/ateliersoft/backoffice_app/internal/core/domain"
	portsrepo "github.com/ateliersoft/backoffice_app/internal/core/ports/repositories"
	portssvc "github.com/ateliersoft/backoffice_app/internal/core/ports/services"
	"github.com/ateliersoft/backoffice_app/internal/core/services"
	"github.com/ateliersoft/backoffice_app/internal/utils/accounting"
	"github.com/stretchr/testify/suite"
)

type SummaryServiceTestSuite struct {
	suite.Suite
	mockRepo *MockCashFlowRepository
	service  portssvc.SummarySvcFacade
	now      time.Time
}

func (suite *SummaryServiceTestSuite) SetupTest() {
	suite.mockRepo = new(MockCashFlowRepository)
	suite.now = time.Date(2024, 3, 15, 10, 0, 0, 0, time.UTC)
	suite.service = services.NewSummaryService(
		suite.mockRepo,
		services.WithSummaryClock(func() time.Time { return suite.now }),
	)
}

func ledgerEntry(direction domain.EntryDirection, status domain.EntryStatus, amount string, dueDate time.Time) domain.CashFlowEntry {
	e := domain.CashFlowEntry{
		EntryID:   "e-" + amount,
		Type:      domain.EntryOther,
		Direction: direction,
		Amount:    dec(amount),
		DueDate:   dueDate,
		Status:    status,
	}
	if status == domain.EntryPaid {
		paidAt := dueDate
		e.PaidAt = &paidAt
	}
	return e
}

func (suite *SummaryServiceTestSuite) TestSummarize() {
	ctx := context.Background()
	thisMonth := time.Date(2024, 3, 5, 0, 0, 0, 0, time.UTC)
	lastMonth := time.Date(2024, 2, 5, 0, 0, 0, 0, time.UTC)

	entries := []domain.CashFlowEntry{
		ledgerEntry(domain.DirectionIn, domain.EntryPending, "1000", thisMonth),
		ledgerEntry(domain.DirectionOut, domain.EntryPending, "400", thisMonth),
		ledgerEntry(domain.DirectionIn, domain.EntryPaid, "250", thisMonth),
		ledgerEntry(domain.DirectionOut, domain.EntryPaid, "100", thisMonth),
		// settled last month, excluded from the monthly figures
		ledgerEntry(domain.DirectionIn, domain.EntryPaid, "999", lastMonth),
	}

	suite.mockRepo.On("ListEntries", ctx, portsrepo.EntryFilter{}).Return(entries, nil).Once()

	summary, err := suite.service.Summarize(ctx)

	suite.Require().NoError(err)
	suite.True(summary.TotalReceivable.Equal(dec("1000")))
	suite.True(summary.TotalPayable.Equal(dec("400")))
	suite.True(summary.ProjectedBalance.Equal(dec("600")))
	suite.True(summary.ReceivedThisMonth.Equal(dec("250")))
	suite.True(summary.PaidThisMonth.Equal(dec("100")))
	suite.True(summary.NetThisMonth.Equal(dec("150")))
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *SummaryServiceTestSuite) TestSummarize_EmptyLedger() {
	ctx := context.Background()

	suite.mockRepo.On("ListEntries", ctx, portsrepo.EntryFilter{}).Return([]domain.CashFlowEntry{}, nil).Once()

	summary, err := suite.service.Summarize(ctx)

	suite.Require().NoError(err)
	suite.True(summary.TotalReceivable.IsZero())
	suite.True(summary.TotalPayable.IsZero())
	suite.True(summary.ProjectedBalance.IsZero())
}

func (suite *SummaryServiceTestSuite) TestSeries_Daily() {
	ctx := context.Background()
	entries := []domain.CashFlowEntry{
		ledgerEntry(domain.DirectionIn, domain.EntryPending, "100", time.Date(2024, 1, 15, 8, 0, 0, 0, time.UTC)),
		ledgerEntry(domain.DirectionIn, domain.EntryPending, "50", time.Date(2024, 1, 15, 23, 0, 0, 0, time.UTC)),
		ledgerEntry(domain.DirectionOut, domain.EntryPending, "30", time.Date(2024, 1, 16, 0, 0, 0, 0, time.UTC)),
	}

	suite.mockRepo.On("ListEntries", ctx, portsrepo.EntryFilter{}).Return(entries, nil).Once()

	series, err := suite.service.Series(ctx, accounting.GranularityDay)

	suite.Require().NoError(err)
	suite.Require().Len(series, 2)
	suite.True(series["2024-01-15"].In.Equal(dec("150")))
	suite.True(series["2024-01-16"].Out.Equal(dec("30")))
}

func (suite *SummaryServiceTestSuite) TestSeries_WeeklyISOKeys() {
	ctx := context.Background()
	entries := []domain.CashFlowEntry{
		// 2024-01-01 is a Monday, ISO week 1 of 2024
		ledgerEntry(domain.DirectionIn, domain.EntryPending, "100", time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)),
		// 2023-01-01 is a Sunday, still ISO week 52 of 2022
		ledgerEntry(domain.DirectionOut, domain.EntryPending, "40", time.Date(2023, 1, 1, 0, 0, 0, 0, time.UTC)),
	}

	suite.mockRepo.On("ListEntries", ctx, portsrepo.EntryFilter{}).Return(entries, nil).Once()

	series, err := suite.service.Series(ctx, accounting.GranularityWeek)

	suite.Require().NoError(err)
	suite.True(series["2024-W01"].In.Equal(dec("100")))
	suite.True(series["2022-W52"].Out.Equal(dec("40")))
}

func (suite *SummaryServiceTestSuite) TestSeries_InvalidGranularity() {
	ctx := context.Background()

	_, err := suite.service.Series(ctx, accounting.Granularity("hourly"))

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockRepo.AssertNotCalled(suite.T(), "ListEntries")
}

func (suite *SummaryServiceTestSuite) TestListOverdueEntries() {
	ctx := context.Background()
	pending := domain.EntryPending

	yesterday := ledgerEntry(domain.DirectionOut, domain.EntryPending, "10", time.Date(2024, 3, 14, 23, 0, 0, 0, time.UTC))
	today := ledgerEntry(domain.DirectionOut, domain.EntryPending, "20", time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC))
	tomorrow := ledgerEntry(domain.DirectionOut, domain.EntryPending, "30", time.Date(2024, 3, 16, 0, 0, 0, 0, time.UTC))

	suite.mockRepo.On("ListEntries", ctx, portsrepo.EntryFilter{Status: &pending}).
		Return([]domain.CashFlowEntry{yesterday, today, tomorrow}, nil).Once()

	overdue, err := suite.service.ListOverdueEntries(ctx)

	suite.Require().NoError(err)
	// due today is not overdue; only strictly past dates qualify
	suite.Require().Len(overdue, 1)
	suite.Equal(yesterday.EntryID, overdue[0].EntryID)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *SummaryServiceTestSuite) TestListEntries_PassesFilter() {
	ctx := context.Background()
	direction := domain.DirectionIn
	filter := portsrepo.EntryFilter{Direction: &direction}

	suite.mockRepo.On("ListEntries", ctx, filter).Return([]domain.CashFlowEntry{}, nil).Once()

	_, err := suite.service.ListEntries(ctx, filter)

	suite.Require().NoError(err)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *SummaryServiceTestSuite) TestSummarize_RepoError() {
	ctx := context.Background()

	suite.mockRepo.On("ListEntries", ctx, portsrepo.EntryFilter{}).Return(nil, apperrors.ErrNotFound).Once()

	_, err := suite.service.Summarize(ctx)

	suite.Require().Error(err)
}

func TestSummaryServiceTestSuite(t *testing.T) {
	suite.Run(t, new(SummaryServiceTestSuite))
}
