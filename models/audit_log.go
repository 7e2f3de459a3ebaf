package models

import (
	"time"

	"github.com/google/uuid"
)

// AuditLog is an immutable record of an action taken against the system.
// Entries are append-only: no update or delete path exists.
type AuditLog struct {
	ID         uuid.UUID `json:"id"`
	UserID     uuid.UUID `json:"userId"`
	Action     string    `json:"action"`
	EntityType string    `json:"entityType"`
	EntityID   string    `json:"entityId"`
	Details    string    `json:"details,omitempty"`
	IPAddress  string    `json:"ipAddress,omitempty"`
	UserAgent  string    `json:"userAgent,omitempty"`
	CreatedAt  time.Time `json:"createdAt"`
}

// TableName returns the name of the database table
// associated with the AuditLog model.
func (AuditLog) TableName() string {
	return "audit_logs"
}

// AuditActor is the subset of user fields attached to audit log entries
// when the referenced user still exists.
type AuditActor struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}

// ResolvedAuditLog is an audit log entry with its user reference looked up.
type ResolvedAuditLog struct {
	AuditLog
	User *AuditActor `json:"user,omitempty"`
}

// AuditLogFilter holds the optional list filters for audit logs.
// Action matches as a case-insensitive substring; the date range is
// inclusive on both bounds and open-ended when a bound is absent.
type AuditLogFilter struct {
	UserID     uuid.UUID
	Action     string
	EntityType string
	StartDate  *time.Time
	EndDate    *time.Time

	Pagination
}
