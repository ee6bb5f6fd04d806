package testhelper

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/m-mizutani/gt"
	"github.com/secmon-lab/issueflow/pkg/domain/interfaces"
	"github.com/secmon-lab/issueflow/pkg/domain/model"
	"github.com/secmon-lab/issueflow/pkg/domain/types"
)

// TestAll runs all test cases for WorkflowRepository
// This is the main entry point for testing any WorkflowRepository implementation
func TestAll(t *testing.T, repo interfaces.WorkflowRepository) {
	t.Run("StateCRUD", func(t *testing.T) {
		TestStateCRUD(t, repo)
	})
	t.Run("ListStates", func(t *testing.T) {
		TestListStates(t, repo)
	})
	t.Run("RepoIsolation", func(t *testing.T) {
		TestRepoIsolation(t, repo)
	})
}

func newRepoName() string {
	return fmt.Sprintf("owner-%s/repo-%s", uuid.New().String()[:8], uuid.New().String()[:8])
}

// TestStateCRUD tests put, get and overwrite of a workflow state
func TestStateCRUD(t *testing.T, repo interfaces.WorkflowRepository) {
	ctx := context.Background()
	repoName := newRepoName()

	// Missing state is not an error
	got, err := repo.GetState(ctx, repoName, 1)
	gt.NoError(t, err)
	gt.True(t, got == nil)

	now := time.Now().UTC().Truncate(time.Millisecond)
	state := &model.WorkflowState{
		Repo:        repoName,
		IssueNumber: 1,
		Step:        types.StepInProgress,
		Branch:      "feature/issue-1-add-login",
		UpdatedAt:   now,
	}
	gt.NoError(t, repo.PutState(ctx, state))

	got, err = repo.GetState(ctx, repoName, 1)
	gt.NoError(t, err)
	gt.True(t, got != nil)
	gt.V(t, got.Step).Equal(types.StepInProgress)
	gt.V(t, got.Branch).Equal(types.BranchName("feature/issue-1-add-login"))
	gt.True(t, got.UpdatedAt.Equal(now))

	// Overwrite with a later step
	state.Step = types.StepTestsAdded
	state.UpdatedAt = now.Add(time.Hour)
	gt.NoError(t, repo.PutState(ctx, state))

	got, err = repo.GetState(ctx, repoName, 1)
	gt.NoError(t, err)
	gt.V(t, got.Step).Equal(types.StepTestsAdded)
	gt.V(t, got.Branch).Equal(types.BranchName("feature/issue-1-add-login"))
}

// TestListStates tests listing ordered by issue number
func TestListStates(t *testing.T, repo interfaces.WorkflowRepository) {
	ctx := context.Background()
	repoName := newRepoName()

	for _, n := range []types.IssueNumber{12, 3, 7} {
		gt.NoError(t, repo.PutState(ctx, &model.WorkflowState{
			Repo:        repoName,
			IssueNumber: n,
			Step:        types.StepInProgress,
			UpdatedAt:   time.Now().UTC(),
		}))
	}

	states, err := repo.ListStates(ctx, repoName)
	gt.NoError(t, err)
	gt.A(t, states).Length(3)
	gt.V(t, states[0].IssueNumber).Equal(3)
	gt.V(t, states[1].IssueNumber).Equal(7)
	gt.V(t, states[2].IssueNumber).Equal(12)
}

// TestRepoIsolation tests that states of different repositories do not mix
func TestRepoIsolation(t *testing.T, repo interfaces.WorkflowRepository) {
	ctx := context.Background()
	repoA := newRepoName()
	repoB := newRepoName()

	gt.NoError(t, repo.PutState(ctx, &model.WorkflowState{
		Repo:        repoA,
		IssueNumber: 1,
		Step:        types.StepMerged,
		UpdatedAt:   time.Now().UTC(),
	}))

	got, err := repo.GetState(ctx, repoB, 1)
	gt.NoError(t, err)
	gt.True(t, got == nil)

	states, err := repo.ListStates(ctx, repoB)
	gt.NoError(t, err)
	gt.A(t, states).Length(0)
}
