package investment

import (
	"log/slog"
	"net/http"

	"github.com/equibridge/backend/internal/httputil"
)

type Handler struct {
	svc Service
	log *slog.Logger
}

func NewHandler(svc Service, log *slog.Logger) *Handler {
	if log == nil {
		log = slog.Default()
	}
	return &Handler{svc: svc, log: log}
}

type investRequest struct {
	Identity string `json:"identity"`
}

func (h *Handler) Invest(w http.ResponseWriter, r *http.Request) {
	var req investRequest
	if err := httputil.DecodeJSON(r, &req); err != nil {
		httputil.WriteError(w, h.log, err)
		return
	}
	res, err := h.svc.Invest(r.Context(), req.Identity)
	if err != nil {
		httputil.WriteError(w, h.log, err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, res)
}

func (h *Handler) Status(w http.ResponseWriter, r *http.Request) {
	res, err := h.svc.Status(r.Context(), r.PathValue("identity"))
	if err != nil {
		httputil.WriteError(w, h.log, err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, res)
}

func (h *Handler) Recover(w http.ResponseWriter, r *http.Request) {
	var req investRequest
	if err := httputil.DecodeJSON(r, &req); err != nil {
		httputil.WriteError(w, h.log, err)
		return
	}
	res, err := h.svc.Recover(r.Context(), req.Identity)
	if err != nil {
		httputil.WriteError(w, h.log, err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, res)
}
