package usecase

import (
	"strings"

	"github.com/secmon-lab/issueflow/pkg/domain/interfaces"
	"github.com/secmon-lab/issueflow/pkg/domain/model"
	"github.com/secmon-lab/issueflow/pkg/domain/types"
	"github.com/secmon-lab/issueflow/pkg/infra"
)

type UseCase struct {
	clients     *infra.Clients
	repo        model.GitHubRepo
	trunk       types.BranchName
	policy      *model.Policy
	classifiers []model.CommitClassifier
}

var _ interfaces.UseCase = (*UseCase)(nil)

type Option func(*UseCase)

// WithRepo sets the repository name recorded in reports and workflow states
func WithRepo(repo model.GitHubRepo) Option {
	return func(x *UseCase) {
		x.repo = repo
	}
}

// WithTrunkBranch sets the branch new feature branches are created from. Default is "main".
func WithTrunkBranch(branch types.BranchName) Option {
	return func(x *UseCase) {
		x.trunk = branch
	}
}

// WithPolicy replaces the default policy. Classifiers built from the policy are replaced as
// well unless WithClassifiers is given after it.
func WithPolicy(policy *model.Policy) Option {
	return func(x *UseCase) {
		x.policy = policy
		x.classifiers = DefaultClassifiers(policy.AgentIdentities)
	}
}

// WithClassifiers sets the predicates that decide whether a branch head commit is
// externally authored
func WithClassifiers(classifiers ...model.CommitClassifier) Option {
	return func(x *UseCase) {
		x.classifiers = classifiers
	}
}

func New(clients *infra.Clients, options ...Option) *UseCase {
	policy := model.DefaultPolicy()
	uc := &UseCase{
		clients:     clients,
		trunk:       "main",
		policy:      policy,
		classifiers: DefaultClassifiers(policy.AgentIdentities),
	}

	for _, opt := range options {
		opt(uc)
	}

	return uc
}

// IsReadinessLabel reports whether label marks an issue as ready for auto start
func (x *UseCase) IsReadinessLabel(label string) bool {
	for _, l := range x.policy.ReadinessLabels {
		if strings.EqualFold(l, label) {
			return true
		}
	}
	return false
}

// Policy returns the policy in use
func (x *UseCase) Policy() *model.Policy {
	return x.policy
}

func (x *UseCase) repoName() string {
	if x.repo.Owner == "" && x.repo.RepoName == "" {
		return ""
	}
	return x.repo.String()
}
