package ledger

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/equibridge/backend/internal/apperr"
	"github.com/equibridge/backend/internal/models"
)

// ---------------------------------------------------------------------------
// In-memory Repo mock. Balance mutations and entry appends share one lock so
// the conditional-debit semantics match the SQL they stand in for.
// ---------------------------------------------------------------------------

type memRepo struct {
	mu         sync.Mutex
	balances   map[string]int64
	earned     map[string]int64
	autoInvest map[string]bool
	entries    []*models.LedgerEntry
	clock      time.Time
}

func newMemRepo() *memRepo {
	return &memRepo{
		balances:   make(map[string]int64),
		earned:     make(map[string]int64),
		autoInvest: make(map[string]bool),
		clock:      time.Now(),
	}
}

func (m *memRepo) WithinTx(ctx context.Context, fn func(tx pgx.Tx) error) error {
	return fn(nil)
}

func (m *memRepo) appendLocked(identity, kind string, amountPaise int64, description string) {
	m.clock = m.clock.Add(time.Second)
	m.entries = append(m.entries, &models.LedgerEntry{
		ID:          uuid.New(),
		Identity:    identity,
		Kind:        kind,
		AmountPaise: amountPaise,
		Description: description,
		CreatedAt:   m.clock,
	})
}

func (m *memRepo) CreditTx(_ context.Context, _ pgx.Tx, identity string, amountPaise int64, description string) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.balances[identity]; !ok {
		return 0, apperr.NotFound("account not found")
	}
	m.balances[identity] += amountPaise
	m.appendLocked(identity, models.LedgerKindCredit, amountPaise, description)
	return m.balances[identity], nil
}

func (m *memRepo) DebitTx(_ context.Context, _ pgx.Tx, identity string, amountPaise int64, description string) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	bal, ok := m.balances[identity]
	if !ok {
		return 0, apperr.NotFound("account not found")
	}
	if bal < amountPaise {
		return 0, apperr.InsufficientFunds("insufficient balance")
	}
	m.balances[identity] = bal - amountPaise
	m.appendLocked(identity, models.LedgerKindDebit, amountPaise, description)
	return m.balances[identity], nil
}

func (m *memRepo) PayoutTx(_ context.Context, _ pgx.Tx, identity string, amountPaise int64, description string) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.balances[identity]; !ok {
		return false, apperr.NotFound("account not found")
	}
	m.balances[identity] += amountPaise
	m.earned[identity] += amountPaise
	m.appendLocked(identity, models.LedgerKindCredit, amountPaise, description)
	return m.autoInvest[identity], nil
}

func (m *memRepo) AppendTx(_ context.Context, _ pgx.Tx, identity, kind string, amountPaise int64, description string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.appendLocked(identity, kind, amountPaise, description)
	return nil
}

func (m *memRepo) History(_ context.Context, identity string, limit int) ([]*models.LedgerEntry, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []*models.LedgerEntry
	for i := len(m.entries) - 1; i >= 0 && len(out) < limit; i-- {
		if m.entries[i].Identity == identity {
			out = append(out, m.entries[i])
		}
	}
	return out, nil
}

func (m *memRepo) balance(identity string) int64 {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.balances[identity]
}

func (m *memRepo) entriesFor(identity string) []*models.LedgerEntry {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []*models.LedgerEntry
	for _, e := range m.entries {
		if e.Identity == identity {
			out = append(out, e)
		}
	}
	return out
}

// ---------------------------------------------------------------------------
// 1. TestBalanceEqualsSignedEntrySum
// ---------------------------------------------------------------------------

func TestBalanceEqualsSignedEntrySum(t *testing.T) {
	repo := newMemRepo()
	repo.balances["ravi@example.com"] = 0
	svc := NewService(repo, 50)
	ctx := context.Background()

	steps := []struct {
		credit bool
		amount int64
	}{
		{true, 800_00},
		{false, 300_00},
		{true, 1200_00},
		{false, 150_00},
		{false, 50_00},
	}
	for i, s := range steps {
		var err error
		if s.credit {
			_, err = svc.Credit(ctx, "ravi@example.com", s.amount, "Job payout")
		} else {
			_, err = svc.Debit(ctx, "ravi@example.com", s.amount, "Withdrawal to bank account")
		}
		if err != nil {
			t.Fatalf("step %d: %v", i, err)
		}
	}

	var sum int64
	for _, e := range repo.entriesFor("ravi@example.com") {
		sum += e.SignedAmount()
	}
	if bal := repo.balance("ravi@example.com"); bal != sum {
		t.Errorf("balance %d does not equal signed entry sum %d", bal, sum)
	}
	if bal := repo.balance("ravi@example.com"); bal != 1500_00 {
		t.Errorf("balance: got %d, want 150000", bal)
	}
}

func TestPayoutEntriesCountTowardBalance(t *testing.T) {
	repo := newMemRepo()
	repo.balances["ravi@example.com"] = 0
	svc := NewService(repo, 50)
	ctx := context.Background()

	if _, err := svc.PayoutTx(ctx, nil, "ravi@example.com", 500_00, "Completed: AC Repair"); err != nil {
		t.Fatalf("PayoutTx: %v", err)
	}
	if _, err := svc.Debit(ctx, "ravi@example.com", 200_00, "Withdrawal to bank account"); err != nil {
		t.Fatalf("Debit: %v", err)
	}

	var sum int64
	for _, e := range repo.entriesFor("ravi@example.com") {
		sum += e.SignedAmount()
	}
	if sum != 300_00 {
		t.Errorf("signed sum: got %d, want 30000", sum)
	}
	if bal := repo.balance("ravi@example.com"); bal != sum {
		t.Errorf("balance %d does not equal signed entry sum %d", bal, sum)
	}
}

// ---------------------------------------------------------------------------
// 2. TestDebitFloor
// ---------------------------------------------------------------------------

func TestDebitFloor(t *testing.T) {
	repo := newMemRepo()
	repo.balances["ravi@example.com"] = 100_00
	svc := NewService(repo, 50)
	ctx := context.Background()

	if _, err := svc.Debit(ctx, "ravi@example.com", 100_01, "Withdrawal to bank account"); !apperr.Is(err, apperr.CodeInsufficientFunds) {
		t.Errorf("over-debit: expected insufficient_funds, got %v", err)
	}
	if got := len(repo.entriesFor("ravi@example.com")); got != 0 {
		t.Errorf("rejected debit must not append an entry, got %d entries", got)
	}
	if bal := repo.balance("ravi@example.com"); bal != 100_00 {
		t.Errorf("balance after rejected debit: got %d, want 10000", bal)
	}

	// Draining the exact balance is allowed.
	newBalance, err := svc.Debit(ctx, "ravi@example.com", 100_00, "Withdrawal to bank account")
	if err != nil {
		t.Fatalf("exact debit: %v", err)
	}
	if newBalance != 0 {
		t.Errorf("new balance: got %d, want 0", newBalance)
	}

	if _, err := svc.Debit(ctx, "nobody@example.com", 1, "Withdrawal to bank account"); !apperr.Is(err, apperr.CodeNotFound) {
		t.Errorf("unknown account: expected not_found, got %v", err)
	}
}

// ---------------------------------------------------------------------------
// 3. TestHistoryClampAndOrder
// ---------------------------------------------------------------------------

func TestHistoryClampAndOrder(t *testing.T) {
	repo := newMemRepo()
	repo.balances["ravi@example.com"] = 0
	repo.balances["other@example.com"] = 0
	svc := NewService(repo, 3)
	ctx := context.Background()

	for i := int64(1); i <= 5; i++ {
		if _, err := svc.Credit(ctx, "ravi@example.com", i*100, "Job payout"); err != nil {
			t.Fatalf("Credit %d: %v", i, err)
		}
	}
	if _, err := svc.Credit(ctx, "other@example.com", 999_00, "Job payout"); err != nil {
		t.Fatalf("Credit other: %v", err)
	}

	// limit <= 0 and limit > cap both clamp to the configured cap.
	for _, limit := range []int{0, -1, 10} {
		got, err := svc.History(ctx, "ravi@example.com", limit)
		if err != nil {
			t.Fatalf("History(%d): %v", limit, err)
		}
		if len(got) != 3 {
			t.Errorf("History(%d): got %d entries, want 3", limit, len(got))
		}
	}

	got, err := svc.History(ctx, "ravi@example.com", 2)
	if err != nil {
		t.Fatalf("History: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("History(2): got %d entries, want 2", len(got))
	}
	// Newest first, scoped to the identity.
	if got[0].AmountPaise != 500 || got[1].AmountPaise != 400 {
		t.Errorf("ordering: got %d then %d, want 500 then 400", got[0].AmountPaise, got[1].AmountPaise)
	}
	for _, e := range got {
		if e.Identity != "ravi@example.com" {
			t.Errorf("history leaked entry for %q", e.Identity)
		}
	}
}

// ---------------------------------------------------------------------------
// 4. TestAppendOnlyEntriesLeaveBalanceAlone
// ---------------------------------------------------------------------------

func TestAppendOnlyEntriesLeaveBalanceAlone(t *testing.T) {
	repo := newMemRepo()
	repo.balances["priya@example.com"] = 700_00
	svc := NewService(repo, 50)

	err := svc.AppendTx(context.Background(), nil, "priya@example.com", models.LedgerKindDebit, 5_000_00, "Monthly fund repayment to ISRO (10% of salary)")
	if err != nil {
		t.Fatalf("AppendTx: %v", err)
	}
	if bal := repo.balance("priya@example.com"); bal != 700_00 {
		t.Errorf("append-only entry changed the balance: got %d, want 70000", bal)
	}
	if got := len(repo.entriesFor("priya@example.com")); got != 1 {
		t.Errorf("entries: got %d, want 1", got)
	}
}
