package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"golang.org/x/sync/errgroup"

	"github.com/SscSPs/greenpages_backend/internal/apperrors"
	"github.com/SscSPs/greenpages_backend/internal/core/domain"
	portsrepo "github.com/SscSPs/greenpages_backend/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/greenpages_backend/internal/core/ports/services"
	"github.com/SscSPs/greenpages_backend/internal/dto"
	"github.com/SscSPs/greenpages_backend/internal/utils/pagination"
)

const (
	defaultBulkAssignConcurrency = 8
	defaultBulkAssignMaxItems    = 500
	defaultRenewalWindow         = 30 * 24 * time.Hour
	defaultExpiryGracePeriod     = 30 * 24 * time.Hour
)

// renewalService implements the renewal workflow and the scheduler jobs.
type renewalService struct {
	BaseService
	uow              portsrepo.UnitOfWork
	renewalRepo      portsrepo.RenewalRepositoryFacade
	businessRepo     portsrepo.BusinessReader
	subscriptionRepo portsrepo.SubscriptionRepository
	userRepo         portsrepo.UserDirectory
	ledger           portssvc.LedgerWriterSvc
	notifier         portssvc.NotificationDispatcher
	metrics          portssvc.WorkflowMetrics

	commissionRate  decimal.Decimal
	bulkConcurrency int
	bulkMaxItems    int
	renewalWindow   time.Duration
	expiryGrace     time.Duration
}

// RenewalServiceOption is a functional option for configuring the renewal service
type RenewalServiceOption func(*renewalService)

// WithRenewalClock overrides the service clock.
func WithRenewalClock(clock func() time.Time) RenewalServiceOption {
	return func(s *renewalService) {
		s.Clock = clock
	}
}

// WithCommissionRate sets the agent commission accrued on renewal payments.
func WithCommissionRate(rate decimal.Decimal) RenewalServiceOption {
	return func(s *renewalService) {
		s.commissionRate = rate
	}
}

// WithBulkAssignLimits sets the parallelism and the maximum size of a bulk assignment.
func WithBulkAssignLimits(concurrency, maxItems int) RenewalServiceOption {
	return func(s *renewalService) {
		if concurrency > 0 {
			s.bulkConcurrency = concurrency
		}
		if maxItems > 0 {
			s.bulkMaxItems = maxItems
		}
	}
}

// WithRenewalWindow sets how long before expiry the scheduler opens a renewal.
func WithRenewalWindow(window time.Duration) RenewalServiceOption {
	return func(s *renewalService) {
		s.renewalWindow = window
	}
}

// WithExpiryGracePeriod sets how long after expiry an open renewal is closed as EXPIRED.
func WithExpiryGracePeriod(grace time.Duration) RenewalServiceOption {
	return func(s *renewalService) {
		s.expiryGrace = grace
	}
}

// WithNotifier sets the dispatcher that receives renewal events.
func WithNotifier(n portssvc.NotificationDispatcher) RenewalServiceOption {
	return func(s *renewalService) {
		if n != nil {
			s.notifier = n
		}
	}
}

// WithRenewalMetrics sets the metrics sink.
func WithRenewalMetrics(m portssvc.WorkflowMetrics) RenewalServiceOption {
	return func(s *renewalService) {
		if m != nil {
			s.metrics = m
		}
	}
}

func newRenewalService(repos portsrepo.RepositoryProvider, ledger portssvc.LedgerWriterSvc, options ...RenewalServiceOption) *renewalService {
	svc := &renewalService{
		uow:              repos.UnitOfWork,
		renewalRepo:      repos.RenewalRepo,
		businessRepo:     repos.BusinessRepo,
		subscriptionRepo: repos.SubscriptionRepo,
		userRepo:         repos.UserRepo,
		ledger:           ledger,
		notifier:         noopNotifier{},
		metrics:          noopMetrics{},
		commissionRate:   decimal.Zero,
		bulkConcurrency:  defaultBulkAssignConcurrency,
		bulkMaxItems:     defaultBulkAssignMaxItems,
		renewalWindow:    defaultRenewalWindow,
		expiryGrace:      defaultExpiryGracePeriod,
	}

	// Apply all options
	for _, option := range options {
		option(svc)
	}

	return svc
}

// NewRenewalService creates the renewal workflow service. ledger receives the
// journal entries of renewal payments.
func NewRenewalService(repos portsrepo.RepositoryProvider, ledger portssvc.LedgerWriterSvc, options ...RenewalServiceOption) portssvc.RenewalSvcFacade {
	return newRenewalService(repos, ledger, options...)
}

// NewRenewalScheduler creates the service behind the timer-driven renewal jobs.
func NewRenewalScheduler(repos portsrepo.RepositoryProvider, options ...RenewalServiceOption) portssvc.RenewalSchedulerSvc {
	return newRenewalService(repos, nil, options...)
}

var (
	_ portssvc.RenewalSvcFacade    = (*renewalService)(nil)
	_ portssvc.RenewalSchedulerSvc = (*renewalService)(nil)
)

// loadRenewal fetches a record, keeping ErrNotFound unwrapped.
func (s *renewalService) loadRenewal(ctx context.Context, renewalID string) (*domain.RenewalRecord, error) {
	rec, err := s.renewalRepo.FindRenewalByID(ctx, renewalID)
	return rec, loadError(renewalID, err)
}

// lockRenewal fetches a record and holds its row lock until the transaction ends.
func (s *renewalService) lockRenewal(ctx context.Context, renewalID string) (*domain.RenewalRecord, error) {
	rec, err := s.renewalRepo.FindRenewalByIDForUpdate(ctx, renewalID)
	return rec, loadError(renewalID, err)
}

func loadError(renewalID string, err error) error {
	switch {
	case err == nil:
		return nil
	case isNotFound(err):
		return fmt.Errorf("%w: renewal %s", apperrors.ErrNotFound, renewalID)
	default:
		return fmt.Errorf("failed to load renewal %s: %w", renewalID, err)
	}
}

// mutate locks a record inside a transaction, applies fn and persists the
// result with an optimistic version check. fn may use ctx to join the transaction.
func (s *renewalService) mutate(ctx context.Context, renewalID string, fn func(ctx context.Context, rec *domain.RenewalRecord) error) (*domain.RenewalRecord, error) {
	var updated *domain.RenewalRecord
	err := s.uow.WithinTx(ctx, func(ctx context.Context) error {
		rec, err := s.lockRenewal(ctx, renewalID)
		if err != nil {
			return err
		}
		expected := rec.Version
		if err := fn(ctx, rec); err != nil {
			return err
		}
		rec.Version = expected + 1
		if err := s.renewalRepo.UpdateRenewal(ctx, *rec, expected); err != nil {
			if errors.Is(err, apperrors.ErrInvalidState) {
				return err
			}
			return fmt.Errorf("failed to update renewal %s: %w", renewalID, err)
		}
		updated = rec
		return nil
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

func (s *renewalService) publish(ctx context.Context, t domain.RenewalEventType, rec *domain.RenewalRecord, actorID string, now time.Time) {
	s.notifier.Publish(ctx, domain.NewRenewalEvent(t, rec, actorID, now))
}

// checkOwnership rejects agents acting on records that are not assigned to them.
func checkOwnership(caller domain.Caller, rec *domain.RenewalRecord) error {
	if caller.Role == domain.RoleAgent && !rec.IsAssignedTo(caller.UserID) {
		return fmt.Errorf("%w: renewal %s is not assigned to you", apperrors.ErrForbidden, rec.RenewalID)
	}
	return nil
}

// checkAssignee validates that agentID is an active agent.
func (s *renewalService) checkAssignee(ctx context.Context, agentID string) error {
	user, err := s.userRepo.FindUserByID(ctx, agentID)
	if err != nil {
		if isNotFound(err) {
			return apperrors.NewValidationError("agentID", "unknown user")
		}
		return fmt.Errorf("failed to load user %s: %w", agentID, err)
	}
	if !user.IsActive {
		return apperrors.NewValidationError("agentID", "user is not active")
	}
	if user.Role != domain.RoleAgent {
		return apperrors.NewValidationError("agentID", "user is not an agent")
	}
	return nil
}

// GetRenewal retrieves a record with its contact log.
func (s *renewalService) GetRenewal(ctx context.Context, caller domain.Caller, renewalID string) (*domain.RenewalRecord, error) {
	if err := s.AuthorizeCaller(ctx, caller, domain.OpViewRenewals); err != nil {
		return nil, err
	}

	rec, err := s.loadRenewal(ctx, renewalID)
	if err != nil {
		s.LogFailure(ctx, err, "Failed to get renewal", slog.String("renewal_id", renewalID))
		return nil, err
	}
	if err := checkOwnership(caller, rec); err != nil {
		return nil, err
	}

	contacts, err := s.renewalRepo.FindContactsByRenewalID(ctx, renewalID)
	if err != nil {
		s.LogError(ctx, err, "Failed to get renewal contacts", slog.String("renewal_id", renewalID))
		return nil, fmt.Errorf("failed to load contacts of renewal %s: %w", renewalID, err)
	}
	rec.Contacts = contacts
	return rec, nil
}

// ListRenewals retrieves a page of records. Agents only see their own.
func (s *renewalService) ListRenewals(ctx context.Context, caller domain.Caller, params dto.ListRenewalsParams) (*dto.ListRenewalsResponse, error) {
	if err := s.AuthorizeCaller(ctx, caller, domain.OpViewRenewals); err != nil {
		return nil, err
	}

	filter := params.ToFilter()
	if caller.Role == domain.RoleAgent {
		self := caller.UserID
		filter.AgentID = &self
	}
	limit := pagination.ClampLimit(params.Limit)

	records, nextToken, err := s.renewalRepo.ListRenewals(ctx, filter, limit, params.NextToken)
	if err != nil {
		s.LogFailure(ctx, err, "Failed to list renewals")
		return nil, err
	}

	s.LogDebug(ctx, "Renewals listed", slog.Int("count", len(records)), slog.Bool("has_more", nextToken != nil))
	return &dto.ListRenewalsResponse{Renewals: dto.ToRenewalResponses(records), NextToken: nextToken}, nil
}

// CreateRenewal opens an UNASSIGNED record for a business.
func (s *renewalService) CreateRenewal(ctx context.Context, caller domain.Caller, req dto.CreateRenewalRequest) (*domain.RenewalRecord, error) {
	if err := s.AuthorizeCaller(ctx, caller, domain.OpCreateRenewal); err != nil {
		return nil, err
	}

	priority := domain.PriorityNormal
	if req.Priority != nil {
		priority = *req.Priority
	}
	if !priority.IsValid() {
		return nil, apperrors.NewValidationError("priority", "must be between 0 and 3")
	}

	now := s.Now()
	rec := domain.NewRenewalRecord(uuid.NewString(), req.BusinessID, priority, caller.UserID, now)
	rec.InternalNotes = req.InternalNotes
	rec.NextFollowUpDate = req.NextFollowUpDate

	err := s.uow.WithinTx(ctx, func(ctx context.Context) error {
		if _, err := s.businessRepo.FindBusinessByID(ctx, req.BusinessID); err != nil {
			if isNotFound(err) {
				return apperrors.NewValidationError("businessID", "unknown business")
			}
			return fmt.Errorf("failed to load business %s: %w", req.BusinessID, err)
		}

		_, err := s.renewalRepo.FindOpenRenewalByBusiness(ctx, req.BusinessID)
		switch {
		case err == nil:
			return apperrors.NewValidationError("businessID", "an open renewal already exists for this business")
		case !isNotFound(err):
			return fmt.Errorf("failed to check open renewals of business %s: %w", req.BusinessID, err)
		}

		if err := s.renewalRepo.SaveRenewal(ctx, rec); err != nil {
			if errors.Is(err, apperrors.ErrDuplicate) {
				return apperrors.NewValidationError("businessID", "an open renewal already exists for this business")
			}
			return fmt.Errorf("failed to save renewal: %w", err)
		}
		return nil
	})
	if err != nil {
		s.LogFailure(ctx, err, "Failed to create renewal", slog.String("business_id", req.BusinessID))
		return nil, err
	}

	s.metrics.RenewalTransition("create", rec.Status)
	s.publish(ctx, domain.EventRenewalCreated, &rec, caller.UserID, now)
	s.LogInfo(ctx, "Renewal created", slog.String("renewal_id", rec.RenewalID), slog.String("business_id", rec.BusinessID))
	return &rec, nil
}

// UpdateRenewal changes the work-queue fields of an open record.
func (s *renewalService) UpdateRenewal(ctx context.Context, caller domain.Caller, renewalID string, req dto.UpdateRenewalRequest) (*domain.RenewalRecord, error) {
	if err := s.AuthorizeCaller(ctx, caller, domain.OpUpdateRenewal); err != nil {
		return nil, err
	}

	now := s.Now()
	rec, err := s.mutate(ctx, renewalID, func(_ context.Context, rec *domain.RenewalRecord) error {
		return rec.ApplyUpdate(req.Priority, req.InternalNotes, req.NextFollowUpDate, caller.UserID, now)
	})
	if err != nil {
		s.LogFailure(ctx, err, "Failed to update renewal", slog.String("renewal_id", renewalID))
		return nil, err
	}

	s.metrics.RenewalTransition("update", rec.Status)
	s.LogInfo(ctx, "Renewal updated", slog.String("renewal_id", renewalID))
	return rec, nil
}

// checkSelfAssignment stops agents from assigning records to someone else.
func checkSelfAssignment(caller domain.Caller, agentID string) error {
	if caller.Role == domain.RoleAgent && agentID != caller.UserID {
		return fmt.Errorf("%w: agents may only assign records to themselves", apperrors.ErrForbidden)
	}
	return nil
}

func (s *renewalService) assignOne(ctx context.Context, caller domain.Caller, renewalID, agentID string, now time.Time) (*domain.RenewalRecord, error) {
	return s.mutate(ctx, renewalID, func(_ context.Context, rec *domain.RenewalRecord) error {
		return rec.AssignAgent(agentID, caller.UserID, now)
	})
}

// AssignAgent assigns an agent to a record.
func (s *renewalService) AssignAgent(ctx context.Context, caller domain.Caller, renewalID string, agentID string) (*domain.RenewalRecord, error) {
	if err := s.AuthorizeCaller(ctx, caller, domain.OpAssignAgent); err != nil {
		return nil, err
	}
	if err := checkSelfAssignment(caller, agentID); err != nil {
		return nil, err
	}
	if err := s.checkAssignee(ctx, agentID); err != nil {
		s.LogFailure(ctx, err, "Invalid assignee", slog.String("agent_id", agentID))
		return nil, err
	}

	now := s.Now()
	rec, err := s.assignOne(ctx, caller, renewalID, agentID, now)
	if err != nil {
		s.LogFailure(ctx, err, "Failed to assign agent",
			slog.String("renewal_id", renewalID),
			slog.String("agent_id", agentID))
		return nil, err
	}

	s.metrics.RenewalTransition("assign", rec.Status)
	s.publish(ctx, domain.EventAgentAssigned, rec, caller.UserID, now)
	s.LogInfo(ctx, "Agent assigned", slog.String("renewal_id", renewalID), slog.String("agent_id", agentID))
	return rec, nil
}

// dedupeIDs drops repeated ids, keeping the first occurrence.
func dedupeIDs(ids []string) []string {
	seen := make(map[string]struct{}, len(ids))
	out := make([]string, 0, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}

// BulkAssignAgent assigns an agent to many records. Each record is assigned in
// its own transaction and reported individually; a failing record does not
// affect the others.
func (s *renewalService) BulkAssignAgent(ctx context.Context, caller domain.Caller, renewalIDs []string, agentID string) ([]domain.BulkAssignOutcome, error) {
	if err := s.AuthorizeCaller(ctx, caller, domain.OpAssignAgent); err != nil {
		return nil, err
	}
	if err := checkSelfAssignment(caller, agentID); err != nil {
		return nil, err
	}

	ids := dedupeIDs(renewalIDs)
	if len(ids) == 0 {
		return nil, apperrors.NewValidationError("renewalIDs", "at least one renewal id is required")
	}
	if len(ids) > s.bulkMaxItems {
		return nil, apperrors.NewValidationError("renewalIDs", fmt.Sprintf("at most %d renewal ids are allowed", s.bulkMaxItems))
	}
	if err := s.checkAssignee(ctx, agentID); err != nil {
		s.LogFailure(ctx, err, "Invalid assignee", slog.String("agent_id", agentID))
		return nil, err
	}

	now := s.Now()
	outcomes := make([]domain.BulkAssignOutcome, len(ids))

	var g errgroup.Group
	g.SetLimit(s.bulkConcurrency)
	for i, id := range ids {
		g.Go(func() error {
			rec, err := s.assignOne(ctx, caller, id, agentID, now)
			if err != nil {
				s.LogFailure(ctx, err, "Bulk assignment item failed", slog.String("renewal_id", id))
				outcomes[i] = domain.BulkAssignOutcome{
					RenewalID: id,
					ErrorKind: apperrors.Kind(err),
					Message:   outcomeMessage(err),
				}
				return nil
			}
			s.metrics.RenewalTransition("assign", rec.Status)
			s.publish(ctx, domain.EventAgentAssigned, rec, caller.UserID, now)
			outcomes[i] = domain.BulkAssignOutcome{RenewalID: id, Success: true, Record: rec}
			return nil
		})
	}
	// Items never return an error; failures are recorded in outcomes.
	_ = g.Wait()

	succeeded := 0
	for _, o := range outcomes {
		if o.Success {
			succeeded++
		}
	}
	s.LogInfo(ctx, "Bulk assignment finished",
		slog.String("agent_id", agentID),
		slog.Int("requested", len(ids)),
		slog.Int("succeeded", succeeded))
	return outcomes, nil
}

// outcomeMessage hides unexpected failures behind a generic message.
func outcomeMessage(err error) string {
	if apperrors.Kind(err) == apperrors.KindInternal {
		return "internal error"
	}
	return err.Error()
}

// LogContact appends a contact attempt to a record.
func (s *renewalService) LogContact(ctx context.Context, caller domain.Caller, renewalID string, req dto.LogContactRequest) (*domain.RenewalContact, error) {
	if err := s.AuthorizeCaller(ctx, caller, domain.OpLogContact); err != nil {
		return nil, err
	}

	now := s.Now()
	contact := domain.RenewalContact{
		ContactID:       uuid.NewString(),
		RenewalID:       renewalID,
		ContactMethod:   req.ContactMethod,
		ContactDate:     now,
		DurationMinutes: req.DurationMinutes,
		Outcome:         req.Outcome,
		Notes:           req.Notes,
		Latitude:        req.Latitude,
		Longitude:       req.Longitude,
		NextContactDate: req.NextContactDate,
		CreatedAt:       now,
		CreatedBy:       caller.UserID,
	}
	if req.ContactDate != nil {
		contact.ContactDate = *req.ContactDate
	}
	if err := contact.Validate(now).Err(); err != nil {
		return nil, err
	}

	rec, err := s.mutate(ctx, renewalID, func(ctx context.Context, rec *domain.RenewalRecord) error {
		if err := rec.RecordContact(contact, caller.UserID, now); err != nil {
			return err
		}
		if err := checkOwnership(caller, rec); err != nil {
			return err
		}
		if err := s.renewalRepo.SaveContact(ctx, contact); err != nil {
			return fmt.Errorf("failed to save contact: %w", err)
		}
		return nil
	})
	if err != nil {
		s.LogFailure(ctx, err, "Failed to log contact", slog.String("renewal_id", renewalID))
		return nil, err
	}

	s.metrics.RenewalTransition("contact", rec.Status)
	s.publish(ctx, domain.EventContactLogged, rec, caller.UserID, now)
	s.LogInfo(ctx, "Contact logged",
		slog.String("renewal_id", renewalID),
		slog.String("contact_method", string(contact.ContactMethod)))
	return &contact, nil
}

// decisionEvents maps a decision to the event published after it is applied.
var decisionEvents = map[domain.DecisionType]domain.RenewalEventType{
	domain.DecisionAccept:   domain.EventRenewalAccepted,
	domain.DecisionReject:   domain.EventRenewalRejected,
	domain.DecisionPostpone: domain.EventRenewalPostponed,
}

// ProcessDecision applies an ACCEPT, REJECT or POSTPONE decision.
func (s *renewalService) ProcessDecision(ctx context.Context, caller domain.Caller, renewalID string, req dto.DecisionRequest) (*domain.RenewalRecord, error) {
	if err := s.AuthorizeCaller(ctx, caller, domain.OpDecideRenewal); err != nil {
		return nil, err
	}

	now := s.Now()
	opts := req.ToDecisionOptions()
	if err := domain.ValidateDecision(req.Decision, opts, now).Err(); err != nil {
		return nil, err
	}

	rec, err := s.mutate(ctx, renewalID, func(ctx context.Context, rec *domain.RenewalRecord) error {
		if err := rec.CheckDecidable(req.Decision); err != nil {
			return err
		}
		if err := checkOwnership(caller, rec); err != nil {
			return err
		}
		switch req.Decision {
		case domain.DecisionAccept:
			return s.accept(ctx, caller, rec, opts, now)
		case domain.DecisionReject:
			return rec.Reject(opts.Reason, caller.UserID, now)
		default:
			return rec.Postpone(*opts.PostponeUntil, opts.Reason, caller.UserID, now)
		}
	})
	if err != nil {
		s.LogFailure(ctx, err, "Failed to process decision",
			slog.String("renewal_id", renewalID),
			slog.String("decision", string(req.Decision)))
		return nil, err
	}

	s.metrics.RenewalTransition("decision", rec.Status)
	s.publish(ctx, decisionEvents[req.Decision], rec, caller.UserID, now)
	s.LogInfo(ctx, "Decision processed",
		slog.String("renewal_id", renewalID),
		slog.String("status", string(rec.Status)))
	return rec, nil
}

// accept renews the business subscription, posts the optional payment and
// moves rec to ACCEPTED. It runs inside the decision's transaction.
func (s *renewalService) accept(ctx context.Context, caller domain.Caller, rec *domain.RenewalRecord, opts domain.DecisionOptions, now time.Time) error {
	current, err := s.subscriptionRepo.FindActiveSubscription(ctx, rec.BusinessID)
	if err != nil {
		if !isNotFound(err) {
			return fmt.Errorf("failed to load subscription of business %s: %w", rec.BusinessID, err)
		}
		current = nil
	}

	var packageID string
	switch {
	case opts.NewPackageID != nil:
		packageID = *opts.NewPackageID
	case current != nil:
		packageID = current.PackageID
	default:
		return apperrors.NewValidationError("newPackageId", "business has no active subscription to extend")
	}

	pkg, err := s.subscriptionRepo.FindPackageByID(ctx, packageID)
	if err != nil {
		if isNotFound(err) {
			return apperrors.NewValidationError("newPackageId", "unknown package")
		}
		return fmt.Errorf("failed to load package %s: %w", packageID, err)
	}
	if opts.NewPackageID != nil && !pkg.IsActive {
		return apperrors.NewValidationError("newPackageId", "package is not active")
	}

	endDate := domain.ResolveExpiry(opts, current, *pkg, now)
	sub, err := s.subscriptionRepo.AssignPackage(ctx, rec.BusinessID, pkg.PackageID, endDate, caller.UserID)
	if err != nil {
		if errors.Is(err, apperrors.ErrDuplicate) {
			// Another writer renewed the business first.
			return &apperrors.InvalidStateError{Entity: "renewal", ID: rec.RenewalID, State: "concurrently renewed", Operation: "accept"}
		}
		return fmt.Errorf("failed to assign package %s to business %s: %w", pkg.PackageID, rec.BusinessID, err)
	}

	var journalEntryID *string
	if opts.Payment != nil {
		entry := domain.BuildRenewalPaymentEntry(rec.RenewalID, *opts.Payment, s.commissionRate, caller.UserID, now)
		posted, err := s.ledger.PostSystemEntry(ctx, entry)
		if err != nil {
			return fmt.Errorf("failed to post renewal payment: %w", err)
		}
		journalEntryID = &posted.EntryID
	}

	return rec.Accept(sub.SubscriptionID, journalEntryID, opts.Reason, caller.UserID, now)
}
