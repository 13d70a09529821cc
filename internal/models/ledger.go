package models

import (
	"time"

	"github.com/google/uuid"
)

// Ledger entry kinds.
const (
	LedgerKindCredit = "credit"
	LedgerKindDebit  = "debit"
)

// LedgerEntry is one immutable record in the append-only money log. Entries
// are never edited or deleted; amounts are always positive, the kind carries
// the sign.
type LedgerEntry struct {
	ID          uuid.UUID `json:"id"`
	Identity    string    `json:"identity"`
	Kind        string    `json:"kind"`
	AmountPaise int64     `json:"amount_paise"`
	Description string    `json:"description"`
	CreatedAt   time.Time `json:"created_at"`
}

// SignedAmount returns the delta this entry represents for its identity's
// balance: credits add, debits subtract.
func (e *LedgerEntry) SignedAmount() int64 {
	if e.Kind == LedgerKindDebit {
		return -e.AmountPaise
	}
	return e.AmountPaise
}
