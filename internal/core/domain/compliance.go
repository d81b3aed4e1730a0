package domain

import "time"

// CaseStatus represents the state of a compliance review.
type CaseStatus string

const (
	CaseStatusOpen      CaseStatus = "OPEN"
	CaseStatusCompleted CaseStatus = "COMPLETED"
	CaseStatusRejected  CaseStatus = "REJECTED"
)

// ComplianceCase is an open review that blocks settlement for a user until
// staff resolve it. At most one OPEN case per user is meaningful: a second
// trigger while one is open is a no-op, the existing case still blocks.
// A rejected case lets the subject resubmit evidence, which opens a fresh
// case rather than mutating history.
type ComplianceCase struct {
	ID        int64      `json:"id"`
	UserID    int64      `json:"user_id"`
	Reason    string     `json:"reason"`
	Evidence  []string   `json:"evidence,omitempty"`
	Status    CaseStatus `json:"status"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`
}

// IsResolved returns true once the case reached a terminal status.
func (c *ComplianceCase) IsResolved() bool {
	return c.Status == CaseStatusCompleted || c.Status == CaseStatusRejected
}
