package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/issueflow/pkg/domain/interfaces"
	"github.com/secmon-lab/issueflow/pkg/domain/model"
	"github.com/secmon-lab/issueflow/pkg/domain/types"
	"github.com/secmon-lab/issueflow/pkg/repository"
)

type stateData struct {
	state model.WorkflowState
}

type workflowRepository struct {
	mu     sync.RWMutex
	states map[string]map[int]*stateData
}

// New creates a repository that keeps workflow states in process memory. States are lost
// on exit.
func New() interfaces.WorkflowRepository {
	return &workflowRepository{
		states: make(map[string]map[int]*stateData),
	}
}

func (r *workflowRepository) PutState(ctx context.Context, state *model.WorkflowState) error {
	if state.Repo == "" {
		return goerr.Wrap(repository.ErrInvalidInput, "repo is empty", goerr.V("issue", state.IssueNumber))
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	issues, ok := r.states[state.Repo]
	if !ok {
		issues = make(map[int]*stateData)
		r.states[state.Repo] = issues
	}
	issues[int(state.IssueNumber)] = &stateData{state: *state}

	return nil
}

func (r *workflowRepository) GetState(ctx context.Context, repo string, number types.IssueNumber) (*model.WorkflowState, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	data, ok := r.states[repo][int(number)]
	if !ok {
		return nil, nil
	}
	state := data.state
	return &state, nil
}

func (r *workflowRepository) ListStates(ctx context.Context, repo string) ([]*model.WorkflowState, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make([]*model.WorkflowState, 0, len(r.states[repo]))
	for _, data := range r.states[repo] {
		state := data.state
		result = append(result, &state)
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].IssueNumber < result[j].IssueNumber
	})

	return result, nil
}
