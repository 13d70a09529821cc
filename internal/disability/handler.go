// Package disability exposes the inclusive-hiring HTTP surface: seeker
// registration, skill-matched job discovery and the approval-gated lifecycle.
package disability

import (
	"log/slog"
	"net/http"

	"github.com/google/uuid"

	"github.com/equibridge/backend/internal/accounts"
	"github.com/equibridge/backend/internal/apperr"
	"github.com/equibridge/backend/internal/httputil"
	"github.com/equibridge/backend/internal/jobs"
	"github.com/equibridge/backend/internal/matching"
	"github.com/equibridge/backend/internal/models"
	"github.com/equibridge/backend/internal/validate"
)

type Handler struct {
	accounts  *accounts.Repository
	jobs      jobs.Service
	validator *validate.Validator
	log       *slog.Logger
}

func NewHandler(acc *accounts.Repository, jobSvc jobs.Service, v *validate.Validator, log *slog.Logger) *Handler {
	if log == nil {
		log = slog.Default()
	}
	return &Handler{accounts: acc, jobs: jobSvc, validator: v, log: log}
}

type registerRequest struct {
	Identity       string   `json:"identity"`
	Name           string   `json:"name"`
	IDProof        string   `json:"id_proof"`
	Profession     string   `json:"profession"`
	DisabilityType string   `json:"disability_type"`
	Skills         []string `json:"skills"`
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
	seeker, err := h.accounts.EnsureSeeker(r.Context(), req.Identity, req.Name, req.IDProof, req.Profession, req.DisabilityType, req.Skills)
	if err != nil {
		httputil.WriteError(w, h.log, err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, seeker)
}

type postJobRequest struct {
	Title          string   `json:"title"`
	Company        string   `json:"company"`
	Description    string   `json:"description"`
	RequiredSkills []string `json:"required_skills"`
	Profession     string   `json:"profession"`
	PayPaise       int64    `json:"pay_paise"`
	PostedBy       string   `json:"posted_by"`
}

func (h *Handler) PostJob(w http.ResponseWriter, r *http.Request) {
	var req postJobRequest
	if err := h.validator.DecodeBody(r, validate.SchemaJobPost, &req); err != nil {
		httputil.WriteError(w, h.log, err)
		return
	}
	job, err := h.jobs.Post(r.Context(), jobs.PostSpec{
		Vertical:       models.VerticalDisability,
		Title:          req.Title,
		Company:        req.Company,
		Description:    req.Description,
		RequiredSkills: req.RequiredSkills,
		Profession:     req.Profession,
		PayPaise:       req.PayPaise,
		PostedBy:       req.PostedBy,
	})
	if err != nil {
		httputil.WriteError(w, h.log, err)
		return
	}
	httputil.WriteJSON(w, http.StatusCreated, job)
}

// Jobs lists open jobs ranked for the requesting seeker. Without an identity
// the ranking degrades to profession-only (or no) scoring.
func (h *Handler) Jobs(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	profession := q.Get("profession")
	var skills []string
	if identity := q.Get("identity"); identity != "" {
		seeker, err := h.accounts.GetSeeker(r.Context(), identity)
		if err == nil {
			skills = seeker.Skills
			if profession == "" {
				profession = seeker.Profession
			}
		} else if !apperr.Is(err, apperr.CodeNotFound) {
			httputil.WriteError(w, h.log, err)
			return
		}
	}
	open, err := h.jobs.ListOpen(r.Context(), models.VerticalDisability)
	if err != nil {
		httputil.WriteError(w, h.log, err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, matching.Rank(open, skills, profession))
}

type jobActionRequest struct {
	Identity string `json:"identity"`
	JobID    string `json:"job_id"`
}

func (h *Handler) Accept(w http.ResponseWriter, r *http.Request) {
	req, jobID, err := h.decodeAction(r)
	if err != nil {
		httputil.WriteError(w, h.log, err)
		return
	}
	if _, err := h.jobs.Accept(r.Context(), jobID, req.Identity); err != nil {
		httputil.WriteError(w, h.log, err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, map[string]string{
		"message": "Job accepted! Please complete it to receive payment.",
	})
}

func (h *Handler) MyActiveJobs(w http.ResponseWriter, r *http.Request) {
	list, err := h.jobs.ListByWorker(r.Context(), r.PathValue("identity"))
	if err != nil {
		httputil.WriteError(w, h.log, err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, list)
}

func (h *Handler) Complete(w http.ResponseWriter, r *http.Request) {
	req, jobID, err := h.decodeAction(r)
	if err != nil {
		httputil.WriteError(w, h.log, err)
		return
	}
	if _, err := h.jobs.Complete(r.Context(), jobID, req.Identity, ""); err != nil {
		httputil.WriteError(w, h.log, err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, map[string]string{
		"message": "Job marked as complete! Waiting for client approval.",
	})
}

// Approve releases payment for a completed job. Called by the client side,
// not the worker.
func (h *Handler) Approve(w http.ResponseWriter, r *http.Request) {
	_, jobID, err := h.decodeAction(r)
	if err != nil {
		httputil.WriteError(w, h.log, err)
		return
	}
	job, err := h.jobs.Approve(r.Context(), jobID)
	if err != nil {
		httputil.WriteError(w, h.log, err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, map[string]any{
		"message":   "Payment released to worker",
		"pay_paise": job.PayPaise,
	})
}

func (h *Handler) Revenue(w http.ResponseWriter, r *http.Request) {
	identity := r.PathValue("identity")
	seeker, err := h.accounts.GetSeeker(r.Context(), identity)
	if err != nil {
		httputil.WriteError(w, h.log, err)
		return
	}
	pending, err := h.jobs.PendingEarnings(r.Context(), identity)
	if err != nil {
		httputil.WriteError(w, h.log, err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, map[string]any{
		"seeker":                 seeker,
		"pending_earnings_paise": pending,
	})
}

func (h *Handler) decodeAction(r *http.Request) (*jobActionRequest, uuid.UUID, error) {
	var req jobActionRequest
	if err := httputil.DecodeJSON(r, &req); err != nil {
		return nil, uuid.Nil, err
	}
	jobID, err := uuid.Parse(req.JobID)
	if err != nil {
		return nil, uuid.Nil, apperr.Invalid("invalid job_id")
	}
	return &req, jobID, nil
}
