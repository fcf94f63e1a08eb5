package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/ateliersoft/backoffice_app/internal/apperrors"
	"github.com/ateliersoft/backoffice_app/internal/core/domain"
	portssvc "github.com/ateliersoft/backoffice_app/internal/core/ports/services"
	"github.com/ateliersoft/backoffice_app/internal/core/services"
	"github.com/ateliersoft/backoffice_app/internal/dto"
	"github.com/ateliersoft/backoffice_app/internal/utils/accounting"
	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// --- Mock ProjectRepository ---
type MockProjectRepository struct {
	mock.Mock
}

func (m *MockProjectRepository) FindProjectByID(ctx context.Context, projectID string) (*domain.Project, error) {
	args := m.Called(ctx, projectID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Project), args.Error(1)
}

func (m *MockProjectRepository) FindProjectByQuoteID(ctx context.Context, quoteID string) (*domain.Project, error) {
	args := m.Called(ctx, quoteID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Project), args.Error(1)
}

func (m *MockProjectRepository) CreateFromQuote(ctx context.Context, project domain.Project, expectedStatus domain.QuoteStatus) error {
	args := m.Called(ctx, project, expectedStatus)
	return args.Error(0)
}

// --- Test Suite ---
type ProjectServiceTestSuite struct {
	suite.Suite
	mockProjectRepo *MockProjectRepository
	mockQuoteRepo   *MockQuoteRepository
	service         portssvc.ProjectSvcFacade
	now             time.Time
}

func (suite *ProjectServiceTestSuite) SetupTest() {
	suite.mockProjectRepo = new(MockProjectRepository)
	suite.mockQuoteRepo = new(MockQuoteRepository)
	suite.now = time.Date(2024, 3, 15, 10, 0, 0, 0, time.UTC)
	suite.service = services.NewProjectService(
		suite.mockProjectRepo,
		suite.mockQuoteRepo,
		accounting.NewCalculator(dec("0.15")),
		services.WithProjectClock(func() time.Time { return suite.now }),
	)
}

func (suite *ProjectServiceTestSuite) TestConvertQuoteToProject_Success() {
	ctx := context.Background()
	quoteID := uuid.NewString()
	userID := uuid.NewString()
	quote := pendingQuote(quoteID)
	quote.Status = domain.QuotePaid
	// subtotal 1350, no fee

	suite.mockQuoteRepo.On("FindQuoteByID", ctx, quoteID).Return(quote, nil).Once()
	suite.mockProjectRepo.On("CreateFromQuote", ctx, mock.MatchedBy(func(p domain.Project) bool {
		return p.QuoteID == quoteID &&
			p.Name == "Warehouse fit-out" &&
			p.TotalRevenue.Equal(dec("1350")) &&
			p.CreatedBy == userID &&
			p.Version == 1
	}), domain.QuotePaid).Return(nil).Once()

	project, err := suite.service.ConvertQuoteToProject(ctx, quoteID, dto.ConvertQuoteRequest{Name: "Warehouse fit-out"}, userID)

	suite.Require().NoError(err)
	suite.Require().NotNil(project)
	suite.Equal(quoteID, project.QuoteID)
	suite.mockProjectRepo.AssertExpectations(suite.T())
	suite.mockQuoteRepo.AssertExpectations(suite.T())
}

func (suite *ProjectServiceTestSuite) TestConvertQuoteToProject_RevenueIncludesFee() {
	ctx := context.Background()
	quoteID := uuid.NewString()
	quote := pendingQuote(quoteID)
	quote.Status = domain.QuotePaid
	quote.ApplyFee = true
	// subtotal 1350, fee 202.50

	suite.mockQuoteRepo.On("FindQuoteByID", ctx, quoteID).Return(quote, nil).Once()
	suite.mockProjectRepo.On("CreateFromQuote", ctx, mock.MatchedBy(func(p domain.Project) bool {
		return p.TotalRevenue.Equal(dec("1552.50"))
	}), domain.QuotePaid).Return(nil).Once()

	_, err := suite.service.ConvertQuoteToProject(ctx, quoteID, dto.ConvertQuoteRequest{Name: "Fit-out"}, uuid.NewString())

	suite.Require().NoError(err)
	suite.mockProjectRepo.AssertExpectations(suite.T())
}

func (suite *ProjectServiceTestSuite) TestConvertQuoteToProject_RejectsNonPaidStatuses() {
	ctx := context.Background()

	for _, status := range []domain.QuoteStatus{domain.QuotePending, domain.QuoteApproved, domain.QuoteCancelled} {
		quoteID := uuid.NewString()
		quote := pendingQuote(quoteID)
		quote.Status = status

		suite.mockQuoteRepo.On("FindQuoteByID", ctx, quoteID).Return(quote, nil).Once()

		_, err := suite.service.ConvertQuoteToProject(ctx, quoteID, dto.ConvertQuoteRequest{Name: "P"}, uuid.NewString())

		suite.Require().Error(err)
		suite.ErrorIs(err, apperrors.ErrIllegalTransition)
	}
	suite.mockProjectRepo.AssertNotCalled(suite.T(), "CreateFromQuote")
}

func (suite *ProjectServiceTestSuite) TestConvertQuoteToProject_AlreadyConverted() {
	ctx := context.Background()
	quoteID := uuid.NewString()
	quote := pendingQuote(quoteID)
	quote.Status = domain.QuotePaid
	existingProjectID := uuid.NewString()
	quote.ProjectID = &existingProjectID

	suite.mockQuoteRepo.On("FindQuoteByID", ctx, quoteID).Return(quote, nil).Once()

	_, err := suite.service.ConvertQuoteToProject(ctx, quoteID, dto.ConvertQuoteRequest{Name: "P"}, uuid.NewString())

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrConflict)
	suite.mockProjectRepo.AssertNotCalled(suite.T(), "CreateFromQuote")
}

func (suite *ProjectServiceTestSuite) TestConvertQuoteToProject_QuoteNotFound() {
	ctx := context.Background()
	quoteID := uuid.NewString()

	suite.mockQuoteRepo.On("FindQuoteByID", ctx, quoteID).Return(nil, apperrors.ErrNotFound).Once()

	_, err := suite.service.ConvertQuoteToProject(ctx, quoteID, dto.ConvertQuoteRequest{Name: "P"}, uuid.NewString())

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrNotFound)
}

func (suite *ProjectServiceTestSuite) TestConvertQuoteToProject_ConcurrentConversionConflict() {
	ctx := context.Background()
	quoteID := uuid.NewString()
	quote := pendingQuote(quoteID)
	quote.Status = domain.QuotePaid

	suite.mockQuoteRepo.On("FindQuoteByID", ctx, quoteID).Return(quote, nil).Once()
	suite.mockProjectRepo.On("CreateFromQuote", ctx, mock.AnythingOfType("domain.Project"), domain.QuotePaid).
		Return(apperrors.ErrConflict).Once()

	_, err := suite.service.ConvertQuoteToProject(ctx, quoteID, dto.ConvertQuoteRequest{Name: "P"}, uuid.NewString())

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrConflict)
}

func (suite *ProjectServiceTestSuite) TestGetProjectByID_Success() {
	ctx := context.Background()
	projectID := uuid.NewString()
	expected := &domain.Project{ProjectID: projectID, Name: "Fit-out"}

	suite.mockProjectRepo.On("FindProjectByID", ctx, projectID).Return(expected, nil).Once()

	project, err := suite.service.GetProjectByID(ctx, projectID)

	suite.Require().NoError(err)
	suite.Equal(expected, project)
}

func TestProjectServiceTestSuite(t *testing.T) {
	suite.Run(t, new(ProjectServiceTestSuite))
}
