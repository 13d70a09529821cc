// Package router wires every handler into the /api/v1 surface.
package router

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/equibridge/backend/internal/auth"
	"github.com/equibridge/backend/internal/daily"
	"github.com/equibridge/backend/internal/disability"
	"github.com/equibridge/backend/internal/investment"
	"github.com/equibridge/backend/internal/ledger"
	"github.com/equibridge/backend/internal/student"
)

// New returns the API handler. Route patterns use method matching and path
// wildcards, so a wrong method 405s without handler-level checks.
func New(
	authHandler *auth.Handler,
	dailyHandler *daily.Handler,
	disabilityHandler *disability.Handler,
	investmentHandler *investment.Handler,
	ledgerHandler *ledger.Handler,
	studentHandler *student.Handler,
) http.Handler {
	mux := http.NewServeMux()
	base := "/api/v1"

	mux.HandleFunc("POST "+base+"/auth/register", authHandler.Register)
	mux.HandleFunc("POST "+base+"/auth/login", authHandler.Login)
	mux.HandleFunc("GET "+base+"/auth/me", authHandler.Me)

	mux.HandleFunc("POST "+base+"/daily/register", dailyHandler.Register)
	mux.HandleFunc("GET "+base+"/daily/me/{identity}", dailyHandler.Me)
	mux.HandleFunc("GET "+base+"/daily/nearby", dailyHandler.Nearby)
	mux.HandleFunc("POST "+base+"/daily/post-problem", dailyHandler.PostProblem)
	mux.HandleFunc("GET "+base+"/daily/work", dailyHandler.Work)
	mux.HandleFunc("POST "+base+"/daily/accept", dailyHandler.Accept)
	mux.HandleFunc("POST "+base+"/daily/complete", dailyHandler.Complete)
	mux.HandleFunc("GET "+base+"/daily/revenue/{identity}", dailyHandler.Revenue)
	mux.HandleFunc("POST "+base+"/daily/toggle-invest", dailyHandler.ToggleInvest)
	mux.HandleFunc("POST "+base+"/daily/withdraw", dailyHandler.Withdraw)

	mux.HandleFunc("POST "+base+"/disability/register", disabilityHandler.Register)
	mux.HandleFunc("POST "+base+"/disability/post-job", disabilityHandler.PostJob)
	mux.HandleFunc("GET "+base+"/disability/jobs", disabilityHandler.Jobs)
	mux.HandleFunc("POST "+base+"/disability/accept", disabilityHandler.Accept)
	mux.HandleFunc("GET "+base+"/disability/my-active-jobs/{identity}", disabilityHandler.MyActiveJobs)
	mux.HandleFunc("POST "+base+"/disability/complete", disabilityHandler.Complete)
	mux.HandleFunc("POST "+base+"/disability/approve", disabilityHandler.Approve)
	mux.HandleFunc("GET "+base+"/disability/revenue/{identity}", disabilityHandler.Revenue)

	mux.HandleFunc("POST "+base+"/investment/invest", investmentHandler.Invest)
	mux.HandleFunc("GET "+base+"/investment/status/{identity}", investmentHandler.Status)
	mux.HandleFunc("POST "+base+"/investment/recover", investmentHandler.Recover)

	mux.HandleFunc("GET "+base+"/ledger/{identity}", ledgerHandler.History)

	mux.HandleFunc("POST "+base+"/student/register", studentHandler.Register)
	mux.HandleFunc("GET "+base+"/student/me/{identity}", studentHandler.Me)
	mux.HandleFunc("GET "+base+"/student/organizations", studentHandler.Organizations)
	mux.HandleFunc("GET "+base+"/student/pipeline/{org}", studentHandler.Pipeline)
	mux.HandleFunc("POST "+base+"/student/select-org", studentHandler.SelectOrg)
	mux.HandleFunc("POST "+base+"/student/progress", studentHandler.Progress)
	mux.HandleFunc("GET "+base+"/student/fields", studentHandler.Fields)
	mux.HandleFunc("GET "+base+"/student/curriculum/{field}", studentHandler.Curriculum)
	mux.HandleFunc("POST "+base+"/student/quiz/submit", studentHandler.SubmitQuiz)
	mux.HandleFunc("GET "+base+"/student/quiz/results/{identity}", studentHandler.QuizResults)
	mux.HandleFunc("GET "+base+"/student/job-status/{identity}", studentHandler.JobStatus)
	mux.HandleFunc("POST "+base+"/student/repay-month", studentHandler.RepayMonth)

	mux.Handle("GET /metrics", promhttp.Handler())
	mux.HandleFunc("GET /healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	return mux
}
