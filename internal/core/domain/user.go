package domain

// Role is the dashboard a user belongs to.
type Role string

const (
	RoleAdmin      Role = "ADMIN"
	RoleAgent      Role = "AGENT"
	RoleManager    Role = "MANAGER"
	RoleAccountant Role = "ACCOUNTANT"
)

// IsValid reports whether r is a known role.
func (r Role) IsValid() bool {
	switch r {
	case RoleAdmin, RoleAgent, RoleManager, RoleAccountant:
		return true
	}
	return false
}

// User represents a dashboard user in the domain.
type User struct {
	UserID   string `json:"userID"` // Primary Key (UUID)
	Name     string `json:"name"`
	Email    string `json:"email"`
	Role     Role   `json:"role"`
	IsActive bool   `json:"isActive"`
	AuditFields
}

// Caller identifies who invokes a core operation.
type Caller struct {
	UserID string
	Role   Role
}

// SystemCaller is used by the scheduler for automated transitions.
var SystemCaller = Caller{UserID: "system", Role: RoleAdmin}
