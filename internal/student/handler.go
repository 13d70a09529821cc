package student

import (
	"log/slog"
	"net/http"

	"github.com/equibridge/backend/internal/curriculum"
	"github.com/equibridge/backend/internal/httputil"
	"github.com/equibridge/backend/internal/models"
	"github.com/equibridge/backend/internal/orgs"
	"github.com/equibridge/backend/internal/validate"
)

type Handler struct {
	svc       Service
	orgs      *orgs.Repository
	validator *validate.Validator
	log       *slog.Logger
}

func NewHandler(svc Service, orgRepo *orgs.Repository, v *validate.Validator, log *slog.Logger) *Handler {
	if log == nil {
		log = slog.Default()
	}
	return &Handler{svc: svc, orgs: orgRepo, validator: v, log: log}
}

type registerRequest struct {
	Identity        string `json:"identity"`
	Name            string `json:"name"`
	Age             int    `json:"age"`
	DocumentID      string `json:"document_id"`
	FieldOfInterest string `json:"field_of_interest"`
}

func (h *Handler) Register(w http.ResponseWriter, r *http.Request) {
	var req registerRequest
	if err := httputil.DecodeJSON(r, &req); err != nil {
		httputil.WriteError(w, h.log, err)
		return
	}
	st, err := h.svc.Register(r.Context(), RegisterSpec{
		Identity:        req.Identity,
		Name:            req.Name,
		Age:             req.Age,
		DocumentID:      req.DocumentID,
		FieldOfInterest: req.FieldOfInterest,
	})
	if err != nil {
		httputil.WriteError(w, h.log, err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, st)
}

func (h *Handler) Me(w http.ResponseWriter, r *http.Request) {
	st, err := h.svc.Get(r.Context(), r.PathValue("identity"))
	if err != nil {
		httputil.WriteError(w, h.log, err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, st)
}

// Organizations lists sponsors for a field, roadmaps omitted.
func (h *Handler) Organizations(w http.ResponseWriter, r *http.Request) {
	list, err := h.orgs.ListByField(r.Context(), r.URL.Query().Get("field"))
	if err != nil {
		httputil.WriteError(w, h.log, err)
		return
	}
	if list == nil {
		list = []*models.Organization{}
	}
	httputil.WriteJSON(w, http.StatusOK, list)
}

// Pipeline returns one org with its full roadmap.
func (h *Handler) Pipeline(w http.ResponseWriter, r *http.Request) {
	org, err := h.orgs.GetByName(r.Context(), r.PathValue("org"))
	if err != nil {
		httputil.WriteError(w, h.log, err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, org)
}

type selectOrgRequest struct {
	Identity string `json:"identity"`
	OrgName  string `json:"org_name"`
}

func (h *Handler) SelectOrg(w http.ResponseWriter, r *http.Request) {
	var req selectOrgRequest
	if err := httputil.DecodeJSON(r, &req); err != nil {
		httputil.WriteError(w, h.log, err)
		return
	}
	if err := h.svc.SelectOrg(r.Context(), req.Identity, req.OrgName); err != nil {
		httputil.WriteError(w, h.log, err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, map[string]string{
		"message": "Joined " + req.OrgName,
		"org":     req.OrgName,
	})
}

type progressRequest struct {
	Identity       string `json:"identity"`
	OrgName        string `json:"org_name"`
	CompletedSteps []int  `json:"completed_steps"`
}

func (h *Handler) Progress(w http.ResponseWriter, r *http.Request) {
	var req progressRequest
	if err := httputil.DecodeJSON(r, &req); err != nil {
		httputil.WriteError(w, h.log, err)
		return
	}
	res, err := h.svc.UpdateProgress(r.Context(), req.Identity, req.OrgName, req.CompletedSteps)
	if err != nil {
		httputil.WriteError(w, h.log, err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, res)
}

// curriculumQuestion is a quiz question with the correct answer stripped.
type curriculumQuestion struct {
	Q       string   `json:"q"`
	Options []string `json:"options"`
}

type curriculumMonth struct {
	Month int                  `json:"month"`
	Topic string               `json:"topic"`
	Quiz  []curriculumQuestion `json:"quiz"`
	Task  curriculum.Task      `json:"task"`
}

// Fields lists the fields that have their own curriculum track.
func (h *Handler) Fields(w http.ResponseWriter, r *http.Request) {
	httputil.WriteJSON(w, http.StatusOK, map[string]any{"fields": curriculum.Fields()})
}

// Curriculum returns the monthly content for a field with answers removed.
func (h *Handler) Curriculum(w http.ResponseWriter, r *http.Request) {
	months := curriculum.ForField(r.PathValue("field"))
	safe := make([]curriculumMonth, 0, len(months))
	for _, m := range months {
		quiz := make([]curriculumQuestion, 0, len(m.Quiz))
		for _, q := range m.Quiz {
			quiz = append(quiz, curriculumQuestion{Q: q.Q, Options: q.Options})
		}
		safe = append(safe, curriculumMonth{Month: m.Month, Topic: m.Topic, Quiz: quiz, Task: m.Task})
	}
	httputil.WriteJSON(w, http.StatusOK, safe)
}

type quizSubmitRequest struct {
	Identity       string `json:"identity"`
	Month          int    `json:"month"`
	Answers        []int  `json:"answers"`
	TaskSubmission string `json:"task_submission,omitempty"`
}

func (h *Handler) SubmitQuiz(w http.ResponseWriter, r *http.Request) {
	var req quizSubmitRequest
	if err := h.validator.DecodeBody(r, validate.SchemaQuizSubmit, &req); err != nil {
		httputil.WriteError(w, h.log, err)
		return
	}
	res, err := h.svc.SubmitQuiz(r.Context(), req.Identity, req.Month, req.Answers, req.TaskSubmission)
	if err != nil {
		httputil.WriteError(w, h.log, err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, res)
}

func (h *Handler) QuizResults(w http.ResponseWriter, r *http.Request) {
	raw, err := h.svc.QuizResults(r.Context(), r.PathValue("identity"))
	if err != nil {
		httputil.WriteError(w, h.log, err)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(raw)
}

func (h *Handler) JobStatus(w http.ResponseWriter, r *http.Request) {
	res, err := h.svc.JobStatus(r.Context(), r.PathValue("identity"))
	if err != nil {
		httputil.WriteError(w, h.log, err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, res)
}

type repayRequest struct {
	Identity string `json:"identity"`
}

func (h *Handler) RepayMonth(w http.ResponseWriter, r *http.Request) {
	var req repayRequest
	if err := httputil.DecodeJSON(r, &req); err != nil {
		httputil.WriteError(w, h.log, err)
		return
	}
	res, err := h.svc.RepayMonth(r.Context(), req.Identity)
	if err != nil {
		httputil.WriteError(w, h.log, err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, res)
}
