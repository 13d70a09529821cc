package student

import (
	"context"
	"encoding/json"
	"strconv"
	"strings"
	"sync"
	"testing"

	"github.com/jackc/pgx/v5"

	"github.com/equibridge/backend/internal/apperr"
	"github.com/equibridge/backend/internal/config"
	"github.com/equibridge/backend/internal/curriculum"
	"github.com/equibridge/backend/internal/models"
)

// ---------------------------------------------------------------------------
// In-memory mocks for Repo, OrgStore and LedgerWriter.
// ---------------------------------------------------------------------------

type memRepo struct {
	mu       sync.Mutex
	students map[string]*models.Student
	quizzes  map[string]map[string]json.RawMessage
}

func newMemRepo() *memRepo {
	return &memRepo{
		students: make(map[string]*models.Student),
		quizzes:  make(map[string]map[string]json.RawMessage),
	}
}

func (m *memRepo) WithinTx(ctx context.Context, fn func(tx pgx.Tx) error) error {
	return fn(nil)
}

func (m *memRepo) Create(_ context.Context, st *models.Student) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	cp := *st
	m.students[st.Identity] = &cp
	return nil
}

func (m *memRepo) Get(_ context.Context, identity string) (*models.Student, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	st, ok := m.students[identity]
	if !ok {
		return nil, apperr.NotFound("student not found")
	}
	cp := *st
	return &cp, nil
}

func (m *memRepo) GetForUpdateTx(ctx context.Context, _ pgx.Tx, identity string) (*models.Student, error) {
	return m.Get(ctx, identity)
}

func (m *memRepo) SelectOrg(_ context.Context, identity, orgName string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	st, ok := m.students[identity]
	if !ok {
		return apperr.NotFound("student not found")
	}
	st.SelectedOrg = orgName
	st.CompletedSteps = []int{}
	st.TotalFundingPaise = 0
	st.ProgressPct = 0
	return nil
}

func (m *memRepo) SetProgress(_ context.Context, identity string, steps []int, fundingPaise int64, pct int) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	st, ok := m.students[identity]
	if !ok {
		return apperr.NotFound("student not found")
	}
	st.CompletedSteps = steps
	st.TotalFundingPaise = fundingPaise
	st.ProgressPct = pct
	return nil
}

func (m *memRepo) MarkJobPlaced(_ context.Context, identity string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	st, ok := m.students[identity]
	if !ok {
		return apperr.NotFound("student not found")
	}
	st.JobPlaced = true
	return nil
}

func (m *memRepo) ApplyRepaymentTx(_ context.Context, _ pgx.Tx, identity string, amountPaise int64) (int64, int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	st, ok := m.students[identity]
	if !ok {
		return 0, 0, apperr.NotFound("student not found")
	}
	st.RepaymentPaidPaise += amountPaise
	st.MonthsRepaid++
	return st.RepaymentPaidPaise, st.MonthsRepaid, nil
}

func (m *memRepo) SaveQuizResult(_ context.Context, identity string, month int, result []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.quizzes[identity]; !ok {
		m.quizzes[identity] = make(map[string]json.RawMessage)
	}
	key := "month_" + strconv.Itoa(month)
	m.quizzes[identity][key] = json.RawMessage(result)
	return nil
}

func (m *memRepo) QuizResults(_ context.Context, identity string) ([]byte, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	results, ok := m.quizzes[identity]
	if !ok {
		return nil, nil
	}
	return json.Marshal(results)
}

func (m *memRepo) stored(identity string) *models.Student {
	m.mu.Lock()
	defer m.mu.Unlock()
	cp := *m.students[identity]
	return &cp
}

// ---

type mockOrgStore struct {
	orgs map[string]*models.Organization
}

func (m *mockOrgStore) GetByName(_ context.Context, name string) (*models.Organization, error) {
	org, ok := m.orgs[name]
	if !ok {
		return nil, apperr.NotFound("organization not found")
	}
	return org, nil
}

// ---

type ledgerEntry struct {
	identity    string
	kind        string
	amountPaise int64
	description string
}

type mockLedger struct {
	mu      sync.Mutex
	entries []ledgerEntry
}

func (m *mockLedger) AppendTx(_ context.Context, _ pgx.Tx, identity, kind string, amountPaise int64, description string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.entries = append(m.entries, ledgerEntry{identity, kind, amountPaise, description})
	return nil
}

func (m *mockLedger) count() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.entries)
}

// ---

func testOrg() *models.Organization {
	return &models.Organization{
		Name:  "ISRO",
		Field: "Scientist",
		Roadmap: []models.RoadmapStep{
			{Step: 1, Title: "Bachelor's Degree", EstimatedFeePaise: 80_000_00},
			{Step: 2, Title: "Master's Degree", EstimatedFeePaise: 120_000_00},
			{Step: 3, Title: "Research Internship", EstimatedFeePaise: 30_000_00},
		},
	}
}

func newTestService() (Service, *memRepo, *mockLedger) {
	repo := newMemRepo()
	led := &mockLedger{}
	orgStore := &mockOrgStore{orgs: map[string]*models.Organization{"ISRO": testOrg()}}
	svc := NewService(repo, orgStore, led, config.Repayment{
		RateBps:            1000,
		DefaultSalaryPaise: 50_000_00,
	})
	return svc, repo, led
}

func mustRegister(t *testing.T, svc Service, identity string) *models.Student {
	t.Helper()
	st, err := svc.Register(context.Background(), RegisterSpec{
		Identity:        identity,
		Name:            "Priya",
		Age:             19,
		FieldOfInterest: "Scientist",
	})
	if err != nil {
		t.Fatalf("Register: %v", err)
	}
	return st
}

// ---------------------------------------------------------------------------
// 1. Registration
// ---------------------------------------------------------------------------

func TestRegisterAssignsDefaultSalary(t *testing.T) {
	svc, _, _ := newTestService()
	st := mustRegister(t, svc, "priya@example.com")
	if st.SalaryPaise != 50_000_00 {
		t.Errorf("salary: got %d, want 5000000", st.SalaryPaise)
	}
	if st.TotalFundingPaise != 0 || len(st.CompletedSteps) != 0 {
		t.Errorf("fresh student should have no progress, got %+v", st)
	}
}

func TestRegisterIdempotent(t *testing.T) {
	svc, repo, _ := newTestService()
	ctx := context.Background()
	mustRegister(t, svc, "priya@example.com")
	repo.students["priya@example.com"].TotalFundingPaise = 80_000_00

	again, err := svc.Register(ctx, RegisterSpec{Identity: "priya@example.com", Name: "Someone Else"})
	if err != nil {
		t.Fatalf("second register: %v", err)
	}
	if again.Name != "Priya" || again.TotalFundingPaise != 80_000_00 {
		t.Errorf("re-register should return the existing record, got %+v", again)
	}
}

func TestRegisterValidation(t *testing.T) {
	svc, _, _ := newTestService()
	ctx := context.Background()
	if _, err := svc.Register(ctx, RegisterSpec{Identity: "", Name: "X"}); !apperr.Is(err, apperr.CodeInvalid) {
		t.Errorf("empty identity: expected invalid, got %v", err)
	}
	if _, err := svc.Register(ctx, RegisterSpec{Identity: "x@example.com", Name: "  "}); !apperr.Is(err, apperr.CodeInvalid) {
		t.Errorf("blank name: expected invalid, got %v", err)
	}
}

// ---------------------------------------------------------------------------
// 2. Progress and funding derivation
// ---------------------------------------------------------------------------

func TestUpdateProgressDerivesFunding(t *testing.T) {
	svc, repo, _ := newTestService()
	ctx := context.Background()
	mustRegister(t, svc, "priya@example.com")

	res, err := svc.UpdateProgress(ctx, "priya@example.com", "ISRO", []int{1})
	if err != nil {
		t.Fatalf("UpdateProgress: %v", err)
	}
	if res.TotalFundingPaise != 80_000_00 {
		t.Errorf("funding after step 1: got %d, want 8000000", res.TotalFundingPaise)
	}
	if res.ProgressPct != 33 {
		t.Errorf("progress pct: got %d, want 33", res.ProgressPct)
	}

	res, err = svc.UpdateProgress(ctx, "priya@example.com", "ISRO", []int{1, 2})
	if err != nil {
		t.Fatalf("UpdateProgress: %v", err)
	}
	if res.TotalFundingPaise != 200_000_00 {
		t.Errorf("funding after steps 1+2: got %d, want 20000000", res.TotalFundingPaise)
	}
	if res.ProgressPct != 67 {
		t.Errorf("progress pct: got %d, want 67", res.ProgressPct)
	}

	// Removing a step recomputes from scratch, no stale accumulation.
	res, err = svc.UpdateProgress(ctx, "priya@example.com", "ISRO", []int{2})
	if err != nil {
		t.Fatalf("UpdateProgress: %v", err)
	}
	if res.TotalFundingPaise != 120_000_00 {
		t.Errorf("funding after removing step 1: got %d, want 12000000", res.TotalFundingPaise)
	}
	if got := repo.stored("priya@example.com").TotalFundingPaise; got != 120_000_00 {
		t.Errorf("stored funding: got %d, want 12000000", got)
	}
}

func TestUpdateProgressIgnoresDuplicatesAndUnknownSteps(t *testing.T) {
	svc, _, _ := newTestService()
	mustRegister(t, svc, "priya@example.com")
	res, err := svc.UpdateProgress(context.Background(), "priya@example.com", "ISRO", []int{1, 1, 99})
	if err != nil {
		t.Fatalf("UpdateProgress: %v", err)
	}
	if res.TotalFundingPaise != 80_000_00 {
		t.Errorf("funding: got %d, want 8000000", res.TotalFundingPaise)
	}
	if len(res.CompletedSteps) != 2 {
		t.Errorf("steps should be deduplicated, got %v", res.CompletedSteps)
	}
}

func TestSelectOrgResetsProgress(t *testing.T) {
	svc, repo, _ := newTestService()
	ctx := context.Background()
	mustRegister(t, svc, "priya@example.com")
	if _, err := svc.UpdateProgress(ctx, "priya@example.com", "ISRO", []int{1, 2}); err != nil {
		t.Fatalf("UpdateProgress: %v", err)
	}

	if err := svc.SelectOrg(ctx, "priya@example.com", "ISRO"); err != nil {
		t.Fatalf("SelectOrg: %v", err)
	}
	st := repo.stored("priya@example.com")
	if st.TotalFundingPaise != 0 || len(st.CompletedSteps) != 0 || st.ProgressPct != 0 {
		t.Errorf("progress should reset on org selection, got %+v", st)
	}

	if err := svc.SelectOrg(ctx, "priya@example.com", "NoSuchOrg"); !apperr.Is(err, apperr.CodeNotFound) {
		t.Errorf("unknown org: expected not_found, got %v", err)
	}
}

// ---------------------------------------------------------------------------
// 3. Job status and repayment
// ---------------------------------------------------------------------------

func TestJobStatusFlipsPlacementOneWay(t *testing.T) {
	svc, repo, _ := newTestService()
	ctx := context.Background()
	mustRegister(t, svc, "priya@example.com")
	if _, err := svc.UpdateProgress(ctx, "priya@example.com", "ISRO", []int{1}); err != nil {
		t.Fatalf("UpdateProgress: %v", err)
	}
	repo.students["priya@example.com"].SelectedOrg = "ISRO"

	res, err := svc.JobStatus(ctx, "priya@example.com")
	if err != nil {
		t.Fatalf("JobStatus: %v", err)
	}
	if res.MonthlyRepaymentPaise != 5_000_00 {
		t.Errorf("monthly repayment: got %d, want 500000", res.MonthlyRepaymentPaise)
	}
	if res.RemainingDebtPaise != 80_000_00 {
		t.Errorf("remaining debt: got %d, want 8000000", res.RemainingDebtPaise)
	}
	// 80000 rupees at 5000/month is 16 installments.
	if res.MonthsRemaining != 16 {
		t.Errorf("months remaining: got %d, want 16", res.MonthsRemaining)
	}
	if res.NetThisMonthPaise != 45_000_00 {
		t.Errorf("net salary: got %d, want 4500000", res.NetThisMonthPaise)
	}
	if len(res.FundingBreakdown) != 1 || res.FundingBreakdown[0].OrgFundedPaise != 80_000_00 {
		t.Errorf("funding breakdown: got %+v", res.FundingBreakdown)
	}
	if !repo.stored("priya@example.com").JobPlaced {
		t.Error("job_placed should flip on first status query")
	}

	// The flip never reverses.
	if _, err := svc.JobStatus(ctx, "priya@example.com"); err != nil {
		t.Fatalf("second JobStatus: %v", err)
	}
	if !repo.stored("priya@example.com").JobPlaced {
		t.Error("job_placed should stay set")
	}
}

func TestRepayMonthClampsFinalInstallment(t *testing.T) {
	svc, repo, led := newTestService()
	ctx := context.Background()
	mustRegister(t, svc, "priya@example.com")
	repo.students["priya@example.com"].SelectedOrg = "ISRO"
	repo.students["priya@example.com"].TotalFundingPaise = 12_000_00

	// 12000 rupees debt at 5000/month: 5000, 5000, then 2000.
	first, err := svc.RepayMonth(ctx, "priya@example.com")
	if err != nil {
		t.Fatalf("first RepayMonth: %v", err)
	}
	if first.PaidThisMonthPaise != 5_000_00 || first.FullyRepaid {
		t.Errorf("first installment: got %+v", first)
	}
	if _, err := svc.RepayMonth(ctx, "priya@example.com"); err != nil {
		t.Fatalf("second RepayMonth: %v", err)
	}

	last, err := svc.RepayMonth(ctx, "priya@example.com")
	if err != nil {
		t.Fatalf("third RepayMonth: %v", err)
	}
	if last.PaidThisMonthPaise != 2_000_00 {
		t.Errorf("final installment should clamp to remaining debt, got %d", last.PaidThisMonthPaise)
	}
	if !last.FullyRepaid || last.RemainingDebtPaise != 0 {
		t.Errorf("final result: got %+v", last)
	}
	if got := led.count(); got != 3 {
		t.Errorf("ledger entries: got %d, want 3", got)
	}

	// Past payoff: no-op, no new ledger entry.
	after, err := svc.RepayMonth(ctx, "priya@example.com")
	if err != nil {
		t.Fatalf("post-payoff RepayMonth: %v", err)
	}
	if !after.FullyRepaid || after.PaidThisMonthPaise != 0 {
		t.Errorf("post-payoff result: got %+v", after)
	}
	if got := led.count(); got != 3 {
		t.Errorf("post-payoff should not write a ledger entry, got %d entries", got)
	}
	if got := repo.stored("priya@example.com").MonthsRepaid; got != 3 {
		t.Errorf("months repaid: got %d, want 3", got)
	}
}

func TestFortyMonthSchedule(t *testing.T) {
	svc, repo, _ := newTestService()
	ctx := context.Background()
	mustRegister(t, svc, "priya@example.com")
	repo.students["priya@example.com"].TotalFundingPaise = 200_000_00

	// 200000 rupees at 10% of a 50000 salary is exactly 40 months.
	st, err := svc.JobStatus(ctx, "priya@example.com")
	if err != nil {
		t.Fatalf("JobStatus: %v", err)
	}
	if st.MonthsRemaining != 40 {
		t.Errorf("months remaining: got %d, want 40", st.MonthsRemaining)
	}

	for i := 0; i < 40; i++ {
		res, err := svc.RepayMonth(ctx, "priya@example.com")
		if err != nil {
			t.Fatalf("RepayMonth %d: %v", i+1, err)
		}
		if res.PaidThisMonthPaise != 5_000_00 {
			t.Fatalf("installment %d: got %d, want 500000", i+1, res.PaidThisMonthPaise)
		}
	}
	final := repo.stored("priya@example.com")
	if final.RepaymentPaidPaise != 200_000_00 || final.MonthsRepaid != 40 {
		t.Errorf("after 40 months: paid %d over %d months", final.RepaymentPaidPaise, final.MonthsRepaid)
	}
}

// ---------------------------------------------------------------------------
// 4. Quizzes
// ---------------------------------------------------------------------------

func TestSubmitQuizPassAndFail(t *testing.T) {
	svc, _, _ := newTestService()
	ctx := context.Background()
	mustRegister(t, svc, "priya@example.com")

	months := curriculum.ForField("Scientist")
	if len(months) == 0 {
		t.Fatal("no curriculum for Scientist")
	}
	quiz := months[0].Quiz

	// All correct.
	answers := make([]int, len(quiz))
	for i, q := range quiz {
		answers[i] = q.Answer
	}
	res, err := svc.SubmitQuiz(ctx, "priya@example.com", 1, answers, "my notes")
	if err != nil {
		t.Fatalf("SubmitQuiz: %v", err)
	}
	if !res.Passed || res.Score != len(quiz) || res.PctScore != 100 {
		t.Errorf("perfect score: got %+v", res)
	}
	if !res.TaskSubmitted {
		t.Error("task submission flag should be set")
	}

	// All wrong.
	wrong := make([]int, len(quiz))
	for i, q := range quiz {
		wrong[i] = q.Answer + 1
	}
	res, err = svc.SubmitQuiz(ctx, "priya@example.com", 1, wrong, "")
	if err != nil {
		t.Fatalf("SubmitQuiz: %v", err)
	}
	if res.Passed || res.Score != 0 {
		t.Errorf("zero score: got %+v", res)
	}
	if len(res.CorrectAnswers) != len(quiz) {
		t.Errorf("correct answers: got %d, want %d", len(res.CorrectAnswers), len(quiz))
	}

	// Unknown month.
	if _, err := svc.SubmitQuiz(ctx, "priya@example.com", 99, answers, ""); !apperr.Is(err, apperr.CodeNotFound) {
		t.Errorf("unknown month: expected not_found, got %v", err)
	}
}

func TestSubmitQuizThresholdAtSixtyPercent(t *testing.T) {
	svc, _, _ := newTestService()
	ctx := context.Background()
	mustRegister(t, svc, "priya@example.com")

	quiz := curriculum.ForField("Scientist")[0].Quiz
	if len(quiz) != 5 {
		t.Fatalf("expected 5 questions, got %d", len(quiz))
	}

	// 3 of 5 correct is exactly the pass mark.
	answers := make([]int, len(quiz))
	for i, q := range quiz {
		if i < 3 {
			answers[i] = q.Answer
		} else {
			answers[i] = q.Answer + 1
		}
	}
	res, err := svc.SubmitQuiz(ctx, "priya@example.com", 1, answers, "")
	if err != nil {
		t.Fatalf("SubmitQuiz: %v", err)
	}
	if !res.Passed || res.PctScore != 60 {
		t.Errorf("3/5: got pct %d passed %v", res.PctScore, res.Passed)
	}

	// 2 of 5 fails.
	answers[2] = quiz[2].Answer + 1
	res, err = svc.SubmitQuiz(ctx, "priya@example.com", 1, answers, "")
	if err != nil {
		t.Fatalf("SubmitQuiz: %v", err)
	}
	if res.Passed || res.PctScore != 40 {
		t.Errorf("2/5: got pct %d passed %v", res.PctScore, res.Passed)
	}
}

func TestQuizResultsRoundTrip(t *testing.T) {
	svc, _, _ := newTestService()
	ctx := context.Background()
	mustRegister(t, svc, "priya@example.com")

	raw, err := svc.QuizResults(ctx, "priya@example.com")
	if err != nil {
		t.Fatalf("QuizResults: %v", err)
	}
	if string(raw) != "{}" {
		t.Errorf("empty results: got %s, want {}", raw)
	}

	quiz := curriculum.ForField("Scientist")[0].Quiz
	answers := make([]int, len(quiz))
	for i, q := range quiz {
		answers[i] = q.Answer
	}
	if _, err := svc.SubmitQuiz(ctx, "priya@example.com", 1, answers, ""); err != nil {
		t.Fatalf("SubmitQuiz: %v", err)
	}

	raw, err = svc.QuizResults(ctx, "priya@example.com")
	if err != nil {
		t.Fatalf("QuizResults: %v", err)
	}
	if !strings.Contains(string(raw), "month_1") {
		t.Errorf("results should be keyed by month, got %s", raw)
	}
}

// ---------------------------------------------------------------------------
// 5. Funding helpers
// ---------------------------------------------------------------------------

func TestMonthsToRepay(t *testing.T) {
	cases := []struct {
		remaining, monthly int64
		want               int
	}{
		{200_000_00, 5_000_00, 40},
		{12_000_00, 5_000_00, 3},
		{5_000_00, 5_000_00, 1},
		{1, 5_000_00, 1},
		{0, 5_000_00, 0},
		{5_000_00, 0, 0},
	}
	for _, tc := range cases {
		if got := monthsToRepay(tc.remaining, tc.monthly); got != tc.want {
			t.Errorf("monthsToRepay(%d, %d): got %d, want %d", tc.remaining, tc.monthly, got, tc.want)
		}
	}
}

func TestProgressPct(t *testing.T) {
	cases := []struct {
		done, total, want int
	}{
		{0, 3, 0},
		{1, 3, 33},
		{2, 3, 67},
		{3, 3, 100},
		{0, 0, 0},
	}
	for _, tc := range cases {
		if got := ProgressPct(tc.done, tc.total); got != tc.want {
			t.Errorf("ProgressPct(%d, %d): got %d, want %d", tc.done, tc.total, got, tc.want)
		}
	}
}
