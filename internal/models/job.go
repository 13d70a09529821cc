package models

import (
	"time"

	"github.com/google/uuid"
)

// Job verticals. Both share one state machine; they differ only in whether
// payout happens at completion or after an explicit approval step.
const (
	VerticalLabor      = "labor"
	VerticalDisability = "disability"
)

// Job lifecycle states. "open" is initial; "approved" (disability) and
// "completed" (labor) are terminal.
const (
	JobStatusOpen       = "open"
	JobStatusInProgress = "in_progress"
	JobStatusCompleted  = "completed"
	JobStatusApproved   = "approved"
)

type Job struct {
	ID       uuid.UUID `json:"id"`
	Vertical string    `json:"vertical"`
	// RequiresApproval is true when payout happens at the approve
	// transition instead of at completion.
	RequiresApproval bool     `json:"requires_approval"`
	Title            string   `json:"title"`
	Company          string   `json:"company,omitempty"`
	Description      string   `json:"description"`
	RequiredSkills   []string `json:"required_skills,omitempty"`
	Profession       string   `json:"profession,omitempty"`
	Location         string   `json:"location,omitempty"`
	ProblemType      string   `json:"problem_type,omitempty"`
	PhotoURL         string   `json:"photo_url,omitempty"`
	PayPaise         int64    `json:"pay_paise"`
	Status           string   `json:"status"`
	PostedBy         string   `json:"posted_by"`
	AcceptedBy       *string  `json:"accepted_by,omitempty"`
	ProofURL         string   `json:"proof_url,omitempty"`

	CreatedAt   time.Time  `json:"created_at"`
	AcceptedAt  *time.Time `json:"accepted_at,omitempty"`
	CompletedAt *time.Time `json:"completed_at,omitempty"`
	ApprovedAt  *time.Time `json:"approved_at,omitempty"`
}
