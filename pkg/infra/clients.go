package infra

import (
	"github.com/secmon-lab/issueflow/pkg/domain/interfaces"
)

type Clients struct {
	issueTracker   interfaces.IssueTracker
	versionControl interfaces.VersionControl
	branchLister   interfaces.BranchLister
	ciStatus       interfaces.CIStatus
	bqClient       interfaces.BigQuery
	objectStorage  interfaces.ObjectStorage
	workflowRepo   interfaces.WorkflowRepository
}

type Option func(*Clients)

func New(options ...Option) *Clients {
	client := &Clients{}

	for _, opt := range options {
		opt(client)
	}

	return client
}

func (x *Clients) IssueTracker() interfaces.IssueTracker {
	return x.issueTracker
}
func (x *Clients) VersionControl() interfaces.VersionControl {
	return x.versionControl
}

// BranchLister returns the branch snapshot source. It falls back to VersionControl when no
// dedicated lister is configured.
func (x *Clients) BranchLister() interfaces.BranchLister {
	if x.branchLister != nil {
		return x.branchLister
	}
	if x.versionControl != nil {
		return x.versionControl
	}
	return nil
}
func (x *Clients) CIStatus() interfaces.CIStatus {
	return x.ciStatus
}
func (x *Clients) BigQuery() interfaces.BigQuery {
	return x.bqClient
}
func (x *Clients) ObjectStorage() interfaces.ObjectStorage {
	return x.objectStorage
}
func (x *Clients) WorkflowRepository() interfaces.WorkflowRepository {
	return x.workflowRepo
}

func WithIssueTracker(client interfaces.IssueTracker) Option {
	return func(x *Clients) {
		x.issueTracker = client
	}
}

func WithVersionControl(client interfaces.VersionControl) Option {
	return func(x *Clients) {
		x.versionControl = client
	}
}

func WithBranchLister(client interfaces.BranchLister) Option {
	return func(x *Clients) {
		x.branchLister = client
	}
}

func WithCIStatus(client interfaces.CIStatus) Option {
	return func(x *Clients) {
		x.ciStatus = client
	}
}

func WithBigQuery(client interfaces.BigQuery) Option {
	return func(x *Clients) {
		x.bqClient = client
	}
}

func WithObjectStorage(client interfaces.ObjectStorage) Option {
	return func(x *Clients) {
		x.objectStorage = client
	}
}

func WithWorkflowRepository(repo interfaces.WorkflowRepository) Option {
	return func(x *Clients) {
		x.workflowRepo = repo
	}
}
