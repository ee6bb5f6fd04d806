package gh_test

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/m-mizutani/gt"
	"github.com/secmon-lab/issueflow/pkg/domain/model"
	"github.com/secmon-lab/issueflow/pkg/domain/types"
	"github.com/secmon-lab/issueflow/pkg/infra/gh"
)

var testRepo = model.GitHubRepo{Owner: "example-org", RepoName: "example-app"}

func newTestClient(t *testing.T, mux *http.ServeMux, options ...gh.Option) *gh.Client {
	t.Helper()
	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)

	options = append([]gh.Option{
		gh.WithBaseURL(srv.URL),
		gh.WithRetryInterval(time.Millisecond),
	}, options...)
	return gt.R1(gh.New(srv.Client(), testRepo, options...)).NoError(t)
}

func writeJSON(t *testing.T, w http.ResponseWriter, status int, v any) {
	t.Helper()
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	gt.NoError(t, json.NewEncoder(w).Encode(v))
}

func TestNew(t *testing.T) {
	_, err := gh.New(http.DefaultClient, model.GitHubRepo{Owner: "example-org"})
	gt.True(t, errors.Is(err, types.ErrValidationFailed))

	_, err = gh.New(http.DefaultClient, testRepo, gh.WithTimeout(0))
	gt.True(t, errors.Is(err, types.ErrInvalidOption))

	_, err = gh.New(http.DefaultClient, testRepo, gh.WithMaxRetries(-1))
	gt.True(t, errors.Is(err, types.ErrInvalidOption))
}

func TestListIssues(t *testing.T) {
	mux := http.NewServeMux()
	var srvURL string
	mux.HandleFunc("GET /repos/example-org/example-app/issues", func(w http.ResponseWriter, r *http.Request) {
		gt.V(t, r.URL.Query().Get("state")).Equal("open")
		switch r.URL.Query().Get("page") {
		case "":
			w.Header().Set("Link", fmt.Sprintf(`<%s/repos/example-org/example-app/issues?state=open&page=2>; rel="next"`, srvURL))
			writeJSON(t, w, http.StatusOK, []map[string]any{
				{
					"number":     1,
					"title":      "Login broken",
					"body":       "it crashes",
					"state":      "open",
					"labels":     []map[string]any{{"name": "bug"}, {"name": "critical"}},
					"assignee":   map[string]any{"login": "alice"},
					"updated_at": "2024-05-30T10:00:00Z",
					"html_url":   "https://github.com/example-org/example-app/issues/1",
					"milestone":  map[string]any{"number": 3, "title": "v1", "due_on": "2024-09-30T00:00:00Z"},
				},
				{
					"number":       2,
					"title":        "A pull request",
					"state":        "open",
					"pull_request": map[string]any{"url": "https://api.github.com/repos/example-org/example-app/pulls/2"},
				},
			})
		case "2":
			writeJSON(t, w, http.StatusOK, []map[string]any{
				{"number": 3, "title": "Add dark mode", "state": "open"},
			})
		default:
			t.Errorf("unexpected page: %s", r.URL.Query().Get("page"))
		}
	})

	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	srvURL = srv.URL
	client := gt.R1(gh.New(srv.Client(), testRepo, gh.WithBaseURL(srv.URL))).NoError(t)

	issues := gt.R1(client.ListIssues(context.Background(), types.IssueStateOpen)).NoError(t)
	gt.A(t, issues).Length(2)

	gt.V(t, issues[0].Number).Equal(1)
	gt.V(t, issues[0].Labels).Equal([]string{"bug", "critical"})
	gt.V(t, issues[0].Assignee).Equal("alice")
	gt.V(t, issues[0].UpdatedAt).Equal(time.Date(2024, 5, 30, 10, 0, 0, 0, time.UTC))
	gt.V(t, issues[0].Milestone.Title).Equal("v1")
	gt.V(t, *issues[0].Milestone.DueOn).Equal(time.Date(2024, 9, 30, 0, 0, 0, 0, time.UTC))

	gt.V(t, issues[1].Number).Equal(3)
	gt.A(t, issues[1].Labels).Length(0)
	gt.True(t, issues[1].Milestone == nil)
}

func TestGetIssueNotFound(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /repos/example-org/example-app/issues/404", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(t, w, http.StatusNotFound, map[string]any{"message": "Not Found"})
	})
	client := newTestClient(t, mux)

	_, err := client.GetIssue(context.Background(), 404)
	gt.True(t, errors.Is(err, types.ErrNotFound))
}

func TestUpdateIssueReplacesLabels(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("PATCH /repos/example-org/example-app/issues/5", func(w http.ResponseWriter, r *http.Request) {
		var req map[string]any
		gt.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		gt.V(t, req["labels"]).Equal([]any{"bug", "in-progress"})
		_, hasTitle := req["title"]
		gt.False(t, hasTitle)

		writeJSON(t, w, http.StatusOK, map[string]any{
			"number": 5,
			"labels": []map[string]any{{"name": "bug"}, {"name": "in-progress"}},
		})
	})
	client := newTestClient(t, mux)

	issue := gt.R1(client.UpdateIssue(context.Background(), 5, &model.IssueUpdate{
		Labels: []string{"bug", "in-progress"},
	})).NoError(t)
	gt.V(t, issue.Labels).Equal([]string{"bug", "in-progress"})
}

func TestAddCommentRetry(t *testing.T) {
	var calls atomic.Int32
	mux := http.NewServeMux()
	mux.HandleFunc("POST /repos/example-org/example-app/issues/7/comments", func(w http.ResponseWriter, r *http.Request) {
		if calls.Add(1) < 3 {
			writeJSON(t, w, http.StatusBadGateway, map[string]any{"message": "Bad Gateway"})
			return
		}
		body := gt.R1(io.ReadAll(r.Body)).NoError(t)
		gt.S(t, string(body)).Contains("hello")
		writeJSON(t, w, http.StatusCreated, map[string]any{"id": 1})
	})

	t.Run("succeeds after transient failures", func(t *testing.T) {
		calls.Store(0)
		client := newTestClient(t, mux)
		gt.NoError(t, client.AddComment(context.Background(), 7, "hello"))
		gt.V(t, calls.Load()).Equal(3)
	})

	t.Run("gives up after max retries", func(t *testing.T) {
		calls.Store(0)
		client := newTestClient(t, mux, gh.WithMaxRetries(1))
		gt.Error(t, client.AddComment(context.Background(), 7, "hello"))
		gt.V(t, calls.Load()).Equal(2)
	})
}

func TestNoRetryOnClientError(t *testing.T) {
	var calls atomic.Int32
	mux := http.NewServeMux()
	mux.HandleFunc("POST /repos/example-org/example-app/issues", func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		writeJSON(t, w, http.StatusBadRequest, map[string]any{"message": "Bad Request"})
	})
	client := newTestClient(t, mux)

	_, err := client.CreateIssue(context.Background(), &model.NewIssue{Title: "x"})
	gt.Error(t, err)
	gt.V(t, calls.Load()).Equal(1)
}

func TestTimeoutIsRetried(t *testing.T) {
	var calls atomic.Int32
	mux := http.NewServeMux()
	mux.HandleFunc("GET /repos/example-org/example-app/git/ref/heads/main", func(w http.ResponseWriter, r *http.Request) {
		if calls.Add(1) == 1 {
			select {
			case <-r.Context().Done():
			case <-time.After(time.Second):
			}
			return
		}
		writeJSON(t, w, http.StatusOK, map[string]any{
			"ref":    "refs/heads/main",
			"object": map[string]any{"sha": "abc123", "type": "commit"},
		})
	})
	client := newTestClient(t, mux, gh.WithTimeout(50*time.Millisecond))

	sha := gt.R1(client.ResolveRef(context.Background(), "main")).NoError(t)
	gt.V(t, sha).Equal(types.CommitSHA("abc123"))
	gt.V(t, calls.Load()).Equal(2)
}

func TestResolveRefNotFound(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /repos/example-org/example-app/git/ref/heads/missing", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(t, w, http.StatusNotFound, map[string]any{"message": "Not Found"})
	})
	client := newTestClient(t, mux)

	_, err := client.ResolveRef(context.Background(), "missing")
	gt.True(t, errors.Is(err, types.ErrRefNotFound))
}

func TestCreateBranch(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("POST /repos/example-org/example-app/git/refs", func(w http.ResponseWriter, r *http.Request) {
		var req struct {
			Ref string `json:"ref"`
			SHA string `json:"sha"`
		}
		gt.NoError(t, json.NewDecoder(r.Body).Decode(&req))

		switch req.Ref {
		case "refs/heads/feature/issue-1-new":
			gt.V(t, req.SHA).Equal("abc123")
			writeJSON(t, w, http.StatusCreated, map[string]any{"ref": req.Ref})
		case "refs/heads/feature/issue-2-exists":
			writeJSON(t, w, http.StatusUnprocessableEntity, map[string]any{"message": "Reference already exists"})
		default:
			writeJSON(t, w, http.StatusUnprocessableEntity, map[string]any{"message": "Object does not exist"})
		}
	})
	client := newTestClient(t, mux)
	ctx := context.Background()

	gt.NoError(t, client.CreateBranch(ctx, "feature/issue-1-new", "abc123"))

	err := client.CreateBranch(ctx, "feature/issue-2-exists", "abc123")
	gt.True(t, errors.Is(err, types.ErrBranchExists))

	err = client.CreateBranch(ctx, "feature/issue-3-bad-sha", "deadbeef")
	gt.True(t, errors.Is(err, types.ErrRefNotFound))
	gt.False(t, errors.Is(err, types.ErrBranchExists))
}

func TestWriteRepoFile(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("PUT /repos/example-org/example-app/contents/.claude-context.md", func(w http.ResponseWriter, r *http.Request) {
		var req struct {
			Message string `json:"message"`
			Content []byte `json:"content"`
			Branch  string `json:"branch"`
			SHA     string `json:"sha"`
		}
		gt.NoError(t, json.NewDecoder(r.Body).Decode(&req))

		switch req.Branch {
		case "feature/issue-1-new":
			gt.V(t, string(req.Content)).Equal("# Issue #1: New\n")
			gt.V(t, req.SHA).Equal("")
			writeJSON(t, w, http.StatusCreated, map[string]any{"content": map[string]any{"sha": "f1"}})
		case "feature/issue-2-stale":
			writeJSON(t, w, http.StatusConflict, map[string]any{"message": "is at f2 but expected f0"})
		}
	})
	mux.HandleFunc("GET /repos/example-org/example-app/contents/.claude-context.md", func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Query().Get("ref") != "feature/issue-2-stale" {
			writeJSON(t, w, http.StatusNotFound, map[string]any{"message": "Not Found"})
			return
		}
		writeJSON(t, w, http.StatusOK, map[string]any{
			"type": "file",
			"name": ".claude-context.md",
			"path": ".claude-context.md",
			"sha":  "f2",
		})
	})
	client := newTestClient(t, mux)
	ctx := context.Background()

	gt.NoError(t, client.WriteRepoFile(ctx, &model.RepoFile{
		Path:    ".claude-context.md",
		Content: []byte("# Issue #1: New\n"),
		Branch:  "feature/issue-1-new",
		Message: "Add context",
	}))

	err := client.WriteRepoFile(ctx, &model.RepoFile{
		Path:    ".claude-context.md",
		Content: []byte("x"),
		Branch:  "feature/issue-2-stale",
		SHA:     "f0",
	})
	gt.True(t, errors.Is(err, types.ErrConflict))

	sha := gt.R1(client.GetRepoFileSHA(ctx, ".claude-context.md", "feature/issue-2-stale")).NoError(t)
	gt.V(t, sha).Equal("f2")

	_, err = client.GetRepoFileSHA(ctx, ".claude-context.md", "feature/issue-1-new")
	gt.True(t, errors.Is(err, types.ErrNotFound))
}

func TestListRemoteBranchesAndCommitMeta(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /repos/example-org/example-app/branches", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(t, w, http.StatusOK, []map[string]any{
			{"name": "main", "commit": map[string]any{"sha": "m1"}},
			{"name": "feature/github-issues-dark-mode", "commit": map[string]any{"sha": "d1"}},
		})
	})
	mux.HandleFunc("GET /repos/example-org/example-app/commits/{sha...}", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(t, w, http.StatusOK, map[string]any{
			"sha": "d1",
			"commit": map[string]any{
				"message": "feat: implement dark mode\n\nbody",
				"author":  map[string]any{"name": "Jules", "date": "2024-05-31T08:00:00Z"},
			},
			"author": map[string]any{"login": "google-labs-jules"},
		})
	})
	client := newTestClient(t, mux)
	ctx := context.Background()

	branches := gt.R1(client.ListRemoteBranches(ctx)).NoError(t)
	gt.A(t, branches).Length(2)
	gt.V(t, branches[1].Name).Equal(types.BranchName("feature/github-issues-dark-mode"))
	gt.V(t, branches[1].HeadSHA).Equal(types.CommitSHA("d1"))

	meta := gt.R1(client.GetCommitMeta(ctx, "feature/github-issues-dark-mode")).NoError(t)
	gt.V(t, meta.Author).Equal("Jules")
	gt.V(t, meta.AuthorLogin).Equal("google-labs-jules")
	gt.V(t, meta.Subject()).Equal("feat: implement dark mode")
	gt.V(t, meta.Timestamp).Equal(time.Date(2024, 5, 31, 8, 0, 0, 0, time.UTC))
}

func TestMilestones(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("POST /repos/example-org/example-app/milestones", func(w http.ResponseWriter, r *http.Request) {
		var req map[string]any
		gt.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		gt.V(t, req["title"]).Equal("v2")
		gt.V(t, req["due_on"]).Equal("2024-12-31T00:00:00Z")
		writeJSON(t, w, http.StatusCreated, map[string]any{"number": 4, "title": "v2", "state": "open"})
	})
	mux.HandleFunc("GET /repos/example-org/example-app/issues", func(w http.ResponseWriter, r *http.Request) {
		gt.V(t, r.URL.Query().Get("milestone")).Equal("4")
		gt.V(t, r.URL.Query().Get("state")).Equal("all")
		writeJSON(t, w, http.StatusOK, []map[string]any{
			{"number": 1, "state": "closed"},
			{"number": 2, "state": "open"},
		})
	})
	client := newTestClient(t, mux)
	ctx := context.Background()

	due := time.Date(2024, 12, 31, 0, 0, 0, 0, time.UTC)
	m := gt.R1(client.CreateMilestone(ctx, &model.Milestone{Title: "v2", DueOn: &due})).NoError(t)
	gt.V(t, m.Number).Equal(4)

	issues := gt.R1(client.ListMilestoneIssues(ctx, 4)).NoError(t)
	gt.A(t, issues).Length(2)
	gt.V(t, issues[0].State).Equal("closed")
}

func TestListWorkflowRuns(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /repos/example-org/example-app/actions/runs", func(w http.ResponseWriter, r *http.Request) {
		gt.V(t, r.URL.Query().Get("per_page")).Equal("50")
		writeJSON(t, w, http.StatusOK, map[string]any{
			"total_count": 1,
			"workflow_runs": []map[string]any{
				{
					"head_branch": "main",
					"status":      "completed",
					"conclusion":  "failure",
					"run_number":  12,
					"created_at":  "2024-05-31T00:00:00Z",
					"html_url":    "https://github.com/example-org/example-app/actions/runs/1",
				},
			},
		})
	})
	client := newTestClient(t, mux)

	runs := gt.R1(client.ListWorkflowRuns(context.Background(), 50)).NoError(t)
	gt.A(t, runs).Length(1)
	gt.V(t, runs[0].Branch).Equal(types.BranchName("main"))
	gt.True(t, runs[0].Failing())
	gt.V(t, runs[0].RunNumber).Equal(12)
}
