package domain

import (
	"fmt"

	"github.com/SscSPs/greenpages_backend/internal/apperrors"
)

// Operation names a core operation subject to role checks.
type Operation string

const (
	OpCreateRenewal Operation = "renewal.create"
	OpUpdateRenewal Operation = "renewal.update"
	OpAssignAgent   Operation = "renewal.assign"
	OpLogContact    Operation = "renewal.contact"
	OpDecideRenewal Operation = "renewal.decide"
	OpViewRenewals  Operation = "renewal.view"
	OpPostJournal   Operation = "journal.post"
	OpViewJournal   Operation = "journal.view"
	OpViewReports   Operation = "report.view"
)

var operationRoles = map[Operation][]Role{
	OpCreateRenewal: {RoleAdmin, RoleManager},
	OpUpdateRenewal: {RoleAdmin, RoleManager},
	OpAssignAgent:   {RoleAgent, RoleManager},
	OpLogContact:    {RoleAgent, RoleManager},
	OpDecideRenewal: {RoleAgent, RoleManager},
	OpViewRenewals:  {RoleAdmin, RoleAgent, RoleManager},
	OpPostJournal:   {RoleAdmin, RoleAccountant},
	OpViewJournal:   {RoleAdmin, RoleAccountant, RoleManager},
	OpViewReports:   {RoleAdmin, RoleAccountant, RoleManager},
}

// Authorize allows or denies role for op. Unknown operations are denied.
func Authorize(role Role, op Operation) error {
	for _, allowed := range operationRoles[op] {
		if allowed == role {
			return nil
		}
	}
	return fmt.Errorf("%w: role %q may not perform %s", apperrors.ErrForbidden, role, op)
}
