package models

import "time"

// Account is the derived monetary state for one identity. Balance is only
// ever moved through ledger-paired operations; it must always equal the
// signed sum of that identity's balance-affecting ledger entries.
type Account struct {
	Identity            string    `json:"identity"`
	Name                string    `json:"name"`
	BalancePaise        int64     `json:"balance_paise"`
	TotalEarnedPaise    int64     `json:"total_earned_paise"`
	InvestedAmountPaise int64     `json:"invested_amount_paise"`
	AutoInvest          bool      `json:"auto_invest"`
	CreatedAt           time.Time `json:"created_at"`
	UpdatedAt           time.Time `json:"updated_at"`
}

// WorkerProfile carries the labor-vertical fields updated on each login.
type WorkerProfile struct {
	Identity    string    `json:"identity"`
	Location    string    `json:"location"`
	ProblemType string    `json:"problem_type"`
	PhotoURL    string    `json:"photo_url"`
	LastSeen    time.Time `json:"last_seen"`
}

// SeekerProfile carries the disability-vertical fields used by job matching.
type SeekerProfile struct {
	Identity       string    `json:"identity"`
	IDProof        string    `json:"id_proof"`
	Profession     string    `json:"profession"`
	DisabilityType string    `json:"disability_type"`
	Skills         []string  `json:"skills"`
	CreatedAt      time.Time `json:"created_at"`
}
