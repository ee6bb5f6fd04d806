package server_test

import (
	"bytes"
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/m-mizutani/gt"
	"github.com/secmon-lab/issueflow/pkg/controller/server"
	"github.com/secmon-lab/issueflow/pkg/domain/mock"
	"github.com/secmon-lab/issueflow/pkg/domain/model"
	"github.com/secmon-lab/issueflow/pkg/domain/types"
	"github.com/secmon-lab/issueflow/pkg/infra"
	"github.com/secmon-lab/issueflow/pkg/usecase"
)

const testSecret = "test-secret-12345"

func newWebhookRequest(t *testing.T, event string, body []byte, secret string) *http.Request {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/webhook/github", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-GitHub-Event", event)
	req.Header.Set("X-GitHub-Delivery", "delivery-1")
	if secret != "" {
		mac := hmac.New(sha256.New, []byte(secret))
		mac.Write(body)
		req.Header.Set("X-Hub-Signature-256", "sha256="+hex.EncodeToString(mac.Sum(nil)))
	}
	return req
}

func syncDispatch(fn func()) { fn() }

func newMockUseCase() *mock.UseCaseMock {
	return &mock.UseCaseMock{
		IsReadinessLabelFunc: func(label string) bool {
			return label == "ready-for-development"
		},
		StartWorkflowByNumberFunc: func(ctx context.Context, number types.IssueNumber) (types.BranchName, error) {
			return "feature/issue-5-add-login", nil
		},
		IntegrateUnclaimedBranchesFunc: func(ctx context.Context) (*model.IntegrationResult, error) {
			return &model.IntegrationResult{}, nil
		},
		CleanupOrphansFunc: func(ctx context.Context) ([]*model.OrphanRecord, error) {
			return nil, nil
		},
	}
}

var labeledEvent = []byte(`{
	"action": "labeled",
	"issue": {"number": 5, "title": "Add login"},
	"label": {"name": "ready-for-development"},
	"repository": {"name": "example-app", "owner": {"login": "example-org"}}
}`)

func TestHealth(t *testing.T) {
	srv := server.New(usecase.New(infra.New()))

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rec := httptest.NewRecorder()
	srv.Mux().ServeHTTP(rec, req)

	gt.V(t, rec.Code).Equal(http.StatusOK)
	gt.V(t, rec.Body.String()).Equal("ok")
}

func TestWebhookSignature(t *testing.T) {
	t.Run("missing signature is rejected", func(t *testing.T) {
		uc := newMockUseCase()
		srv := server.New(uc, server.WithGitHubSecret(testSecret), server.WithDispatcher(syncDispatch))

		rec := httptest.NewRecorder()
		srv.Mux().ServeHTTP(rec, newWebhookRequest(t, "issues", labeledEvent, ""))

		gt.V(t, rec.Code).Equal(http.StatusBadRequest)
		gt.A(t, uc.StartWorkflowByNumberCalls()).Length(0)
	})

	t.Run("wrong secret is rejected", func(t *testing.T) {
		uc := newMockUseCase()
		srv := server.New(uc, server.WithGitHubSecret(testSecret), server.WithDispatcher(syncDispatch))

		rec := httptest.NewRecorder()
		srv.Mux().ServeHTTP(rec, newWebhookRequest(t, "issues", labeledEvent, "other-secret"))

		gt.V(t, rec.Code).Equal(http.StatusBadRequest)
		gt.A(t, uc.StartWorkflowByNumberCalls()).Length(0)
	})

	t.Run("valid signature is accepted", func(t *testing.T) {
		uc := newMockUseCase()
		srv := server.New(uc, server.WithGitHubSecret(testSecret), server.WithDispatcher(syncDispatch))

		rec := httptest.NewRecorder()
		srv.Mux().ServeHTTP(rec, newWebhookRequest(t, "issues", labeledEvent, testSecret))

		gt.V(t, rec.Code).Equal(http.StatusAccepted)
		gt.A(t, uc.StartWorkflowByNumberCalls()).Length(1)
		gt.V(t, uc.StartWorkflowByNumberCalls()[0].Number).Equal(5)
	})
}

func TestWebhookEvents(t *testing.T) {
	testCases := map[string]struct {
		event      string
		body       string
		options    []server.Option
		code       int
		starts     int
		integrates int
		cleanups   int
	}{
		"readiness label starts workflow": {
			event:  "issues",
			body:   string(labeledEvent),
			code:   http.StatusAccepted,
			starts: 1,
		},
		"other label is ignored": {
			event: "issues",
			body:  `{"action":"labeled","issue":{"number":5},"label":{"name":"bug"},"repository":{"name":"example-app","owner":{"login":"example-org"}}}`,
			code:  http.StatusOK,
		},
		"unlabeled is ignored": {
			event: "issues",
			body:  `{"action":"unlabeled","issue":{"number":5},"label":{"name":"ready-for-development"},"repository":{"name":"example-app","owner":{"login":"example-org"}}}`,
			code:  http.StatusOK,
		},
		"branch creation integrates branches": {
			event:      "create",
			body:       `{"ref":"feature/github-issues-dark-mode","ref_type":"branch","repository":{"name":"example-app","owner":{"login":"example-org"}}}`,
			code:       http.StatusAccepted,
			integrates: 1,
		},
		"tag creation is ignored": {
			event: "create",
			body:  `{"ref":"v1.0.0","ref_type":"tag","repository":{"name":"example-app","owner":{"login":"example-org"}}}`,
			code:  http.StatusOK,
		},
		"branch deletion cleans up orphans": {
			event:    "delete",
			body:     `{"ref":"feature/issue-5-add-login","ref_type":"branch","repository":{"name":"example-app","owner":{"login":"example-org"}}}`,
			code:     http.StatusAccepted,
			cleanups: 1,
		},
		"other repository is ignored": {
			event:   "delete",
			body:    `{"ref":"feature/x","ref_type":"branch","repository":{"name":"other-app","owner":{"login":"example-org"}}}`,
			options: []server.Option{server.WithRepo(model.GitHubRepo{Owner: "example-org", RepoName: "example-app"})},
			code:    http.StatusOK,
		},
		"managed repository matches case insensitively": {
			event:    "delete",
			body:     `{"ref":"feature/x","ref_type":"branch","repository":{"name":"Example-App","owner":{"login":"Example-Org"}}}`,
			options:  []server.Option{server.WithRepo(model.GitHubRepo{Owner: "example-org", RepoName: "example-app"})},
			code:     http.StatusAccepted,
			cleanups: 1,
		},
		"ping": {
			event: "ping",
			body:  `{"zen":"Keep it logically awesome.","hook_id":1}`,
			code:  http.StatusOK,
		},
	}

	for name, tc := range testCases {
		t.Run(name, func(t *testing.T) {
			uc := newMockUseCase()
			options := append([]server.Option{server.WithDispatcher(syncDispatch)}, tc.options...)
			srv := server.New(uc, options...)

			rec := httptest.NewRecorder()
			srv.Mux().ServeHTTP(rec, newWebhookRequest(t, tc.event, []byte(tc.body), ""))

			gt.V(t, rec.Code).Equal(tc.code)
			gt.A(t, uc.StartWorkflowByNumberCalls()).Length(tc.starts)
			gt.A(t, uc.IntegrateUnclaimedBranchesCalls()).Length(tc.integrates)
			gt.A(t, uc.CleanupOrphansCalls()).Length(tc.cleanups)
		})
	}

	t.Run("broken payload", func(t *testing.T) {
		srv := server.New(newMockUseCase(), server.WithDispatcher(syncDispatch))
		rec := httptest.NewRecorder()
		srv.Mux().ServeHTTP(rec, newWebhookRequest(t, "issues", []byte(`{"action":`), ""))
		gt.V(t, rec.Code).Equal(http.StatusBadRequest)
	})
}

func TestWebhookRunsInBackground(t *testing.T) {
	done := make(chan types.IssueNumber, 1)
	uc := newMockUseCase()
	uc.StartWorkflowByNumberFunc = func(ctx context.Context, number types.IssueNumber) (types.BranchName, error) {
		gt.NoError(t, ctx.Err())
		done <- number
		return "feature/issue-5-add-login", nil
	}
	srv := server.New(uc)

	rec := httptest.NewRecorder()
	srv.Mux().ServeHTTP(rec, newWebhookRequest(t, "issues", labeledEvent, ""))
	gt.V(t, rec.Code).Equal(http.StatusAccepted)

	gt.V(t, <-done).Equal(5)
}
