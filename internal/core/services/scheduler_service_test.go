package services_test

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/SscSPs/greenpages_backend/internal/apperrors"
	"github.com/SscSPs/greenpages_backend/internal/core/domain"
	portsrepo "github.com/SscSPs/greenpages_backend/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/greenpages_backend/internal/core/ports/services"
	"github.com/SscSPs/greenpages_backend/internal/core/services"
)

type SchedulerServiceTestSuite struct {
	suite.Suite
	renewalRepo  *MockRenewalRepository
	businessRepo *MockBusinessRepository
	notifier     *MockNotifier
	metrics      *MockMetrics
	scheduler    portssvc.RenewalSchedulerSvc
	now          time.Time
}

const thirtyDays = 30 * 24 * time.Hour

func (suite *SchedulerServiceTestSuite) SetupTest() {
	suite.renewalRepo = new(MockRenewalRepository)
	suite.businessRepo = new(MockBusinessRepository)
	suite.notifier = new(MockNotifier)
	suite.metrics = new(MockMetrics)
	suite.now = time.Date(2026, 3, 10, 2, 0, 0, 0, time.UTC)

	suite.notifier.On("Publish", mock.Anything, mock.Anything).Maybe()
	suite.metrics.On("RenewalTransition", mock.Anything, mock.Anything).Maybe()

	repos := portsrepo.RepositoryProvider{
		UnitOfWork:   passthroughUoW{},
		RenewalRepo:  suite.renewalRepo,
		BusinessRepo: suite.businessRepo,
	}
	suite.scheduler = services.NewRenewalScheduler(repos,
		services.WithRenewalClock(func() time.Time { return suite.now }),
		services.WithRenewalWindow(thirtyDays),
		services.WithExpiryGracePeriod(thirtyDays),
		services.WithNotifier(suite.notifier),
		services.WithRenewalMetrics(suite.metrics),
	)
}

func TestSchedulerServiceTestSuite(t *testing.T) {
	suite.Run(t, new(SchedulerServiceTestSuite))
}

func (suite *SchedulerServiceTestSuite) record(id string, status domain.RenewalStatus) *domain.RenewalRecord {
	rec := domain.NewRenewalRecord(id, "biz-"+id, domain.PriorityNormal, "manager-1", suite.now.Add(-10*24*time.Hour))
	rec.Status = status
	agent := "agent-1"
	rec.AssignedAgentID = &agent
	return &rec
}

func businessIs(id string) interface{} {
	return mock.MatchedBy(func(r domain.RenewalRecord) bool { return r.BusinessID == id })
}

func (suite *SchedulerServiceTestSuite) TestOpenExpiringRenewals() {
	ctx := context.Background()
	expiring := []domain.ExpiringBusiness{
		{BusinessID: "lapsed", SubscriptionID: "s1", EndDate: suite.now.Add(-24 * time.Hour)},
		{BusinessID: "covered", SubscriptionID: "s2", EndDate: suite.now.Add(20 * 24 * time.Hour)},
		{BusinessID: "broken", SubscriptionID: "s3", EndDate: suite.now.Add(10 * 24 * time.Hour)},
		{BusinessID: "raced", SubscriptionID: "s4", EndDate: suite.now.Add(3 * 24 * time.Hour)},
	}
	suite.businessRepo.On("ListExpiringBusinesses", mock.Anything, suite.now.Add(-thirtyDays), suite.now.Add(thirtyDays), 500).Return(expiring, nil).Once()

	suite.renewalRepo.On("FindOpenRenewalByBusiness", mock.Anything, "lapsed").Return(nil, apperrors.ErrNotFound).Once()
	suite.renewalRepo.On("SaveRenewal", mock.Anything, mock.MatchedBy(func(r domain.RenewalRecord) bool {
		return r.BusinessID == "lapsed" && r.Priority == domain.PriorityUrgent &&
			r.Status == domain.RenewalUnassigned && r.CreatedBy == domain.SystemCaller.UserID
	})).Return(nil).Once()

	suite.renewalRepo.On("FindOpenRenewalByBusiness", mock.Anything, "covered").Return(suite.record("r-open", domain.RenewalAssigned), nil).Once()

	suite.renewalRepo.On("FindOpenRenewalByBusiness", mock.Anything, "broken").Return(nil, errors.New("statement timeout")).Once()

	suite.renewalRepo.On("FindOpenRenewalByBusiness", mock.Anything, "raced").Return(nil, apperrors.ErrNotFound).Once()
	suite.renewalRepo.On("SaveRenewal", mock.Anything, businessIs("raced")).
		Return(fmt.Errorf("%w: open renewal for business raced", apperrors.ErrDuplicate)).Once()

	suite.metrics.On("SchedulerRun", services.JobOpenExpiring, 1, 1).Once()

	created, err := suite.scheduler.OpenExpiringRenewals(ctx, suite.now)

	suite.Require().NoError(err)
	suite.Equal(1, created)
	suite.renewalRepo.AssertExpectations(suite.T())
	suite.metrics.AssertExpectations(suite.T())
	suite.notifier.AssertNumberOfCalls(suite.T(), "Publish", 1)
}

func (suite *SchedulerServiceTestSuite) TestOpenExpiringRenewals_ListFails() {
	suite.businessRepo.On("ListExpiringBusinesses", mock.Anything, mock.Anything, mock.Anything, 500).Return(nil, errors.New("db down")).Once()

	created, err := suite.scheduler.OpenExpiringRenewals(context.Background(), suite.now)

	suite.Error(err)
	suite.Zero(created)
	suite.metrics.AssertNotCalled(suite.T(), "SchedulerRun", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *SchedulerServiceTestSuite) TestOpenExpiringRenewals_SkipsSubscriptionsPastGrace() {
	ctx := context.Background()
	lapsedLongAgo := suite.now.Add(-60 * 24 * time.Hour)
	suite.businessRepo.On("ListExpiringBusinesses", mock.Anything, suite.now.Add(-thirtyDays), suite.now.Add(thirtyDays), 500).
		Return([]domain.ExpiringBusiness{{BusinessID: "gone", SubscriptionID: "s1", EndDate: lapsedLongAgo}}, nil).Twice()
	suite.renewalRepo.On("ListOverdueOpen", mock.Anything, suite.now.Add(-thirtyDays), 500).Return([]domain.RenewalRecord{}, nil).Twice()
	suite.metrics.On("SchedulerRun", services.JobOpenExpiring, 0, 0).Twice()
	suite.metrics.On("SchedulerRun", services.JobExpireOverdue, 0, 0).Twice()

	// Two back-to-back cycles must neither open nor expire anything for the lapsed business.
	for range 2 {
		created, err := suite.scheduler.OpenExpiringRenewals(ctx, suite.now)
		suite.Require().NoError(err)
		suite.Zero(created)

		expired, err := suite.scheduler.ExpireOverdue(ctx, suite.now)
		suite.Require().NoError(err)
		suite.Zero(expired)
	}

	suite.renewalRepo.AssertNotCalled(suite.T(), "SaveRenewal", mock.Anything, mock.Anything)
	suite.renewalRepo.AssertNotCalled(suite.T(), "UpdateRenewal", mock.Anything, mock.Anything, mock.Anything)
	suite.notifier.AssertNotCalled(suite.T(), "Publish", mock.Anything, mock.Anything)
	suite.metrics.AssertExpectations(suite.T())
}

func (suite *SchedulerServiceTestSuite) TestReactivatePostponed() {
	due := suite.record("r1", domain.RenewalPostponed)
	until := suite.now.Add(-time.Hour)
	due.PostponedUntil = &until
	decided := suite.record("r2", domain.RenewalAccepted)

	suite.renewalRepo.On("ListPostponedDue", mock.Anything, suite.now, 500).
		Return([]domain.RenewalRecord{*due, *decided}, nil).Once()
	suite.renewalRepo.On("FindRenewalByIDForUpdate", mock.Anything, "r1").Return(due, nil).Once()
	suite.renewalRepo.On("FindRenewalByIDForUpdate", mock.Anything, "r2").Return(decided, nil).Once()
	suite.renewalRepo.On("UpdateRenewal", mock.Anything, mock.MatchedBy(func(r domain.RenewalRecord) bool {
		return r.RenewalID == "r1" && r.Status == domain.RenewalAssigned && r.PostponedUntil == nil &&
			r.LastUpdatedBy == domain.SystemCaller.UserID
	}), 1).Return(nil).Once()
	suite.metrics.On("SchedulerRun", services.JobReactivatePostponed, 1, 1).Once()

	n, err := suite.scheduler.ReactivatePostponed(context.Background(), suite.now)

	suite.Require().NoError(err)
	suite.Equal(1, n)
	suite.renewalRepo.AssertExpectations(suite.T())
	suite.metrics.AssertExpectations(suite.T())
	suite.notifier.AssertCalled(suite.T(), "Publish", mock.Anything, mock.MatchedBy(func(e domain.RenewalEvent) bool {
		return e.Type == domain.EventRenewalReactivated && e.RenewalID == "r1"
	}))
}

func (suite *SchedulerServiceTestSuite) TestExpireOverdue() {
	open := suite.record("r1", domain.RenewalInProgress)
	suite.renewalRepo.On("ListOverdueOpen", mock.Anything, suite.now.Add(-thirtyDays), 500).
		Return([]domain.RenewalRecord{*open}, nil).Once()
	suite.renewalRepo.On("FindRenewalByIDForUpdate", mock.Anything, "r1").Return(open, nil).Once()
	suite.renewalRepo.On("UpdateRenewal", mock.Anything, mock.MatchedBy(func(r domain.RenewalRecord) bool {
		return r.Status == domain.RenewalExpired && r.DecidedBy != nil && *r.DecidedBy == domain.SystemCaller.UserID
	}), 1).Return(nil).Once()
	suite.metrics.On("SchedulerRun", services.JobExpireOverdue, 1, 0).Once()

	n, err := suite.scheduler.ExpireOverdue(context.Background(), suite.now)

	suite.Require().NoError(err)
	suite.Equal(1, n)
	suite.metrics.AssertExpectations(suite.T())
	suite.metrics.AssertCalled(suite.T(), "RenewalTransition", "expire", domain.RenewalExpired)
}

func (suite *SchedulerServiceTestSuite) TestExpireOverdue_NothingDue() {
	suite.renewalRepo.On("ListOverdueOpen", mock.Anything, mock.Anything, 500).Return([]domain.RenewalRecord{}, nil).Once()
	suite.metrics.On("SchedulerRun", services.JobExpireOverdue, 0, 0).Once()

	n, err := suite.scheduler.ExpireOverdue(context.Background(), suite.now)

	suite.Require().NoError(err)
	suite.Zero(n)
	suite.renewalRepo.AssertNotCalled(suite.T(), "UpdateRenewal", mock.Anything, mock.Anything, mock.Anything)
}
