package server

import (
	"context"
	"net/http"

	"github.com/secmon-lab/issueflow/pkg/domain/interfaces"
)

// JobForTest is the exported view of a parsed webhook job
type JobForTest struct {
	Kind   string
	Owner  string
	Repo   string
	Number int
	Label  string
	Branch string
}

func GithubEventToJobForTest(event any) *JobForTest {
	j := githubEventToJob(event)
	if j == nil {
		return nil
	}
	return &JobForTest{
		Kind:   string(j.kind),
		Owner:  j.repo.Owner,
		Repo:   j.repo.RepoName,
		Number: int(j.number),
		Label:  j.label,
		Branch: j.branch.String(),
	}
}

func RunJobForTest(ctx context.Context, uc interfaces.UseCase, event any) {
	if j := githubEventToJob(event); j != nil {
		runJob(ctx, uc, j)
	}
}

// PreProcessForTest wraps next with the request middleware
func PreProcessForTest(next http.Handler) http.Handler {
	return preProcess(next)
}

// StatusOfForTest runs next behind the status recorder and returns what it captured
func StatusOfForTest(next http.Handler, w http.ResponseWriter, r *http.Request) int {
	rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
	next.ServeHTTP(rec, r)
	return rec.status
}
