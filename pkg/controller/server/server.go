package server

import (
	"log/slog"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/secmon-lab/issueflow/pkg/domain/interfaces"
	"github.com/secmon-lab/issueflow/pkg/domain/model"
	"github.com/secmon-lab/issueflow/pkg/domain/types"
	"github.com/secmon-lab/issueflow/pkg/utils/errutil"
	"github.com/secmon-lab/issueflow/pkg/utils/logging"
)

type Server struct {
	mux *chi.Mux
}

func safeWrite(w http.ResponseWriter, code int, body []byte) {
	w.WriteHeader(code)

	// nosemgrep: go.lang.security.audit.xss.no-direct-write-to-responsewriter.no-direct-write-to-responsewriter
	// Why: The response data is not from user input
	if _, err := w.Write(body); err != nil {
		logging.Default().Error("fail to write response", slog.Any("error", err))
	}
}

type config struct {
	secret types.GitHubWebhookSecret
	repo   *model.GitHubRepo
	// dispatch runs a job after the response is sent
	dispatch func(fn func())
}

type Option func(*config)

// WithGitHubSecret enables signature validation of webhook payloads
func WithGitHubSecret(secret types.GitHubWebhookSecret) Option {
	return func(cfg *config) {
		cfg.secret = secret
	}
}

// WithRepo ignores events of any other repository
func WithRepo(repo model.GitHubRepo) Option {
	return func(cfg *config) {
		cfg.repo = &repo
	}
}

// WithDispatcher replaces how webhook jobs are run. The dispatcher must not run two jobs
// at the same time.
func WithDispatcher(dispatch func(fn func())) Option {
	return func(cfg *config) {
		cfg.dispatch = dispatch
	}
}

func New(uc interfaces.UseCase, options ...Option) *Server {
	cfg := &config{
		dispatch: serialDispatch(),
	}
	for _, opt := range options {
		opt(cfg)
	}

	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	r.Use(preProcess)
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		safeWrite(w, http.StatusOK, []byte("ok"))
	})
	r.Post("/webhook/github", func(w http.ResponseWriter, r *http.Request) {
		job, err := parseGitHubEvent(r, cfg.secret)
		if err != nil {
			errutil.HandleError(r.Context(), "fail to validate GitHub event", err)
			safeWrite(w, http.StatusBadRequest, []byte(`{"status":"error","message":"invalid webhook payload"}`))
			return
		}

		if job == nil {
			safeWrite(w, http.StatusOK, []byte(`{"status":"ok","message":"no action required"}`))
			return
		}
		if cfg.repo != nil && !sameRepo(job.repo, *cfg.repo) {
			logging.From(r.Context()).Info("ignore event of other repository", slog.Any("repo", job.repo))
			safeWrite(w, http.StatusOK, []byte(`{"status":"ok","message":"repository not managed"}`))
			return
		}
		if job.kind == jobStartWorkflow && !uc.IsReadinessLabel(job.label) {
			logging.From(r.Context()).Debug("ignore non readiness label", slog.String("label", job.label))
			safeWrite(w, http.StatusOK, []byte(`{"status":"ok","message":"no action required"}`))
			return
		}

		bgCtx := DetachContext(r.Context())
		cfg.dispatch(func() { runJob(bgCtx, uc, job) })

		safeWrite(w, http.StatusAccepted, []byte(`{"status":"accepted","message":"job enqueued"}`))
	})

	return &Server{
		mux: r,
	}
}

func sameRepo(a, b model.GitHubRepo) bool {
	return strings.EqualFold(a.Owner, b.Owner) && strings.EqualFold(a.RepoName, b.RepoName)
}

func (x *Server) Mux() *chi.Mux {
	return x.mux
}
