package models

import (
	"encoding/json"
	"time"
)

// Student tracks the education-funding pipeline for one identity.
// TotalFundingPaise is always recomputed from (SelectedOrg, CompletedSteps);
// it is never accumulated incrementally, so removing a step cannot leave a
// stale total behind.
type Student struct {
	Identity        string `json:"identity"`
	Name            string `json:"name"`
	Age             int    `json:"age"`
	DocumentID      string `json:"document_id"`
	FieldOfInterest string `json:"field_of_interest"`

	SelectedOrg       string `json:"selected_org,omitempty"`
	CompletedSteps    []int  `json:"completed_steps"`
	TotalFundingPaise int64  `json:"total_funding_paise"`
	ProgressPct       int    `json:"progress_pct"`

	// JobPlaced flips to true the first time job status is queried and
	// never resets.
	JobPlaced           bool  `json:"job_placed"`
	SalaryPaise         int64 `json:"salary_paise"`
	RepaymentPaidPaise  int64 `json:"repayment_paid_paise"`
	MonthsRepaid        int   `json:"months_repaid"`

	QuizResults json.RawMessage `json:"quiz_results,omitempty"`
	CreatedAt   time.Time       `json:"created_at"`
}
