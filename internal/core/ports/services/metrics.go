package services

import "github.com/SscSPs/greenpages_backend/internal/core/domain"

// WorkflowMetrics receives domain counters from the services.
type WorkflowMetrics interface {
	// RenewalTransition counts a successful renewal operation and the status it left the record in.
	RenewalTransition(operation string, status domain.RenewalStatus)

	// JournalPosted counts a persisted journal entry by source.
	JournalPosted(source domain.JournalSource)

	// SchedulerRun records the items handled by one scheduler job run.
	SchedulerRun(job string, processed, failed int)
}
