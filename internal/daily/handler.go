// Package daily exposes the labor-vertical HTTP surface: worker registration,
// problem posting, the job lifecycle and earnings access.
package daily

import (
	"log/slog"
	"net/http"
	"strconv"

	"github.com/google/uuid"

	"github.com/equibridge/backend/internal/accounts"
	"github.com/equibridge/backend/internal/apperr"
	"github.com/equibridge/backend/internal/httputil"
	"github.com/equibridge/backend/internal/investment"
	"github.com/equibridge/backend/internal/jobs"
	"github.com/equibridge/backend/internal/ledger"
	"github.com/equibridge/backend/internal/models"
	"github.com/equibridge/backend/internal/validate"
)

type Handler struct {
	accounts  *accounts.Repository
	jobs      jobs.Service
	ledger    ledger.Service
	investing investment.Service
	validator *validate.Validator
	log       *slog.Logger
}

func NewHandler(acc *accounts.Repository, jobSvc jobs.Service, ledgerSvc ledger.Service, investSvc investment.Service, v *validate.Validator, log *slog.Logger) *Handler {
	if log == nil {
		log = slog.Default()
	}
	return &Handler{accounts: acc, jobs: jobSvc, ledger: ledgerSvc, investing: investSvc, validator: v, log: log}
}

type registerRequest struct {
	Identity    string `json:"identity"`
	Name        string `json:"name"`
	Location    string `json:"location"`
	ProblemType string `json:"problem_type"`
	PhotoURL    string `json:"photo_url"`
}

func (h *Handler) Register(w http.ResponseWriter, r *http.Request) {
	var req registerRequest
	if err := httputil.DecodeJSON(r, &req); err != nil {
		httputil.WriteError(w, h.log, err)
		return
	}
	if req.Identity == "" || req.Name == "" {
		httputil.WriteError(w, h.log, apperr.Invalid("identity and name are required"))
		return
	}
	worker, err := h.accounts.EnsureWorker(r.Context(), req.Identity, req.Name, req.Location, req.ProblemType, req.PhotoURL)
	if err != nil {
		httputil.WriteError(w, h.log, err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, worker)
}

func (h *Handler) Me(w http.ResponseWriter, r *http.Request) {
	worker, err := h.accounts.GetWorker(r.Context(), r.PathValue("identity"))
	if err != nil {
		httputil.WriteError(w, h.log, err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, worker)
}

func (h *Handler) Nearby(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	limit, _ := strconv.Atoi(q.Get("limit"))
	workers, err := h.accounts.NearbyWorkers(r.Context(), q.Get("location"), q.Get("problem_type"), limit)
	if err != nil {
		httputil.WriteError(w, h.log, err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, workers)
}

type postProblemRequest struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Location    string `json:"location"`
	Category    string `json:"category"`
	PhotoURL    string `json:"photo_url"`
	PayPaise    int64  `json:"pay_paise"`
	PostedBy    string `json:"posted_by"`
}

// PostProblem publishes a labor job. The photo is the proof picture of the
// problem to fix.
func (h *Handler) PostProblem(w http.ResponseWriter, r *http.Request) {
	var req postProblemRequest
	if err := h.validator.DecodeBody(r, validate.SchemaJobPost, &req); err != nil {
		httputil.WriteError(w, h.log, err)
		return
	}
	job, err := h.jobs.Post(r.Context(), jobs.PostSpec{
		Vertical:    models.VerticalLabor,
		Title:       req.Title,
		Description: req.Description,
		Location:    req.Location,
		ProblemType: req.Category,
		PhotoURL:    req.PhotoURL,
		PayPaise:    req.PayPaise,
		PostedBy:    req.PostedBy,
	})
	if err != nil {
		httputil.WriteError(w, h.log, err)
		return
	}
	httputil.WriteJSON(w, http.StatusCreated, job)
}

func (h *Handler) Work(w http.ResponseWriter, r *http.Request) {
	open, err := h.jobs.ListOpen(r.Context(), models.VerticalLabor)
	if err != nil {
		httputil.WriteError(w, h.log, err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, open)
}

type jobActionRequest struct {
	Identity string `json:"identity"`
	JobID    string `json:"job_id"`
	ProofURL string `json:"proof_url,omitempty"`
}

func (h *Handler) Accept(w http.ResponseWriter, r *http.Request) {
	var req jobActionRequest
	if err := httputil.DecodeJSON(r, &req); err != nil {
		httputil.WriteError(w, h.log, err)
		return
	}
	jobID, err := uuid.Parse(req.JobID)
	if err != nil {
		httputil.WriteError(w, h.log, apperr.Invalid("invalid job_id"))
		return
	}
	job, err := h.jobs.Accept(r.Context(), jobID, req.Identity)
	if err != nil {
		httputil.WriteError(w, h.log, err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, map[string]any{
		"message":   "Job '" + job.Title + "' accepted!",
		"pay_paise": job.PayPaise,
	})
}

func (h *Handler) Complete(w http.ResponseWriter, r *http.Request) {
	var req jobActionRequest
	if err := httputil.DecodeJSON(r, &req); err != nil {
		httputil.WriteError(w, h.log, err)
		return
	}
	jobID, err := uuid.Parse(req.JobID)
	if err != nil {
		httputil.WriteError(w, h.log, apperr.Invalid("invalid job_id"))
		return
	}
	job, err := h.jobs.Complete(r.Context(), jobID, req.Identity, req.ProofURL)
	if err != nil {
		httputil.WriteError(w, h.log, err)
		return
	}
	account, err := h.accounts.GetAccount(r.Context(), req.Identity)
	if err != nil {
		httputil.WriteError(w, h.log, err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, map[string]any{
		"message":           "Job completed!",
		"pay_paise":         job.PayPaise,
		"new_balance_paise": account.BalancePaise,
	})
}

func (h *Handler) Revenue(w http.ResponseWriter, r *http.Request) {
	worker, err := h.accounts.GetWorker(r.Context(), r.PathValue("identity"))
	if err != nil {
		httputil.WriteError(w, h.log, err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, worker)
}

type identityRequest struct {
	Identity string `json:"identity"`
}

func (h *Handler) ToggleInvest(w http.ResponseWriter, r *http.Request) {
	var req identityRequest
	if err := httputil.DecodeJSON(r, &req); err != nil {
		httputil.WriteError(w, h.log, err)
		return
	}
	enabled, err := h.investing.ToggleAutoInvest(r.Context(), req.Identity)
	if err != nil {
		httputil.WriteError(w, h.log, err)
		return
	}
	msg := "Auto-invest disabled"
	if enabled {
		msg = "Auto-invest enabled"
	}
	httputil.WriteJSON(w, http.StatusOK, map[string]any{"auto_invest": enabled, "message": msg})
}

type withdrawRequest struct {
	Identity    string `json:"identity"`
	AmountPaise int64  `json:"amount_paise"`
}

func (h *Handler) Withdraw(w http.ResponseWriter, r *http.Request) {
	var req withdrawRequest
	if err := httputil.DecodeJSON(r, &req); err != nil {
		httputil.WriteError(w, h.log, err)
		return
	}
	if req.AmountPaise <= 0 {
		httputil.WriteError(w, h.log, apperr.Invalid("amount must be positive"))
		return
	}
	newBalance, err := h.ledger.Debit(r.Context(), req.Identity, req.AmountPaise, "Withdrawal to bank account")
	if err != nil {
		httputil.WriteError(w, h.log, err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, map[string]any{
		"message":           "Withdrawal successful",
		"withdrawn_paise":   req.AmountPaise,
		"new_balance_paise": newBalance,
	})
}
