package interfaces

//go:generate moq -out ../mock/infra.go -pkg mock . IssueTracker VersionControl CIStatus BigQuery ObjectStorage SecretStore

import (
	"context"

	"cloud.google.com/go/bigquery"

	"github.com/secmon-lab/issueflow/pkg/domain/model"
	"github.com/secmon-lab/issueflow/pkg/domain/types"
)

// IssueTracker is the remote issue tracker. Labels in UpdateIssue replace the whole set, so
// callers compute the additive union beforehand.
type IssueTracker interface {
	ListIssues(ctx context.Context, state types.IssueState) ([]*model.Issue, error)
	GetIssue(ctx context.Context, number types.IssueNumber) (*model.Issue, error)
	CreateIssue(ctx context.Context, input *model.NewIssue) (*model.Issue, error)
	UpdateIssue(ctx context.Context, number types.IssueNumber, input *model.IssueUpdate) (*model.Issue, error)
	AddComment(ctx context.Context, number types.IssueNumber, body string) error

	// WriteRepoFile returns types.ErrConflict when the file exists and file.SHA does not
	// match the current blob.
	WriteRepoFile(ctx context.Context, file *model.RepoFile) error
	// GetRepoFileSHA returns types.ErrNotFound if the file does not exist on the branch.
	GetRepoFileSHA(ctx context.Context, path string, branch types.BranchName) (string, error)

	GetMilestone(ctx context.Context, number int) (*model.Milestone, error)
	CreateMilestone(ctx context.Context, input *model.Milestone) (*model.Milestone, error)
	ListMilestoneIssues(ctx context.Context, number int) ([]*model.Issue, error)
}

// VersionControl is the version-control host
type VersionControl interface {
	// ResolveRef returns types.ErrRefNotFound if the branch does not exist
	ResolveRef(ctx context.Context, branch types.BranchName) (types.CommitSHA, error)
	// CreateBranch returns types.ErrBranchExists or types.ErrRefNotFound
	CreateBranch(ctx context.Context, name types.BranchName, from types.CommitSHA) error
	ListRemoteBranches(ctx context.Context) ([]*model.Branch, error)
	GetCommitMeta(ctx context.Context, branch types.BranchName) (*model.CommitMeta, error)
}

// CIStatus provides recent CI runs of the repository
type CIStatus interface {
	ListWorkflowRuns(ctx context.Context, limit int) ([]*model.WorkflowRun, error)
}

// BranchLister is the part of VersionControl that can be served by another source, such as
// `git ls-remote`.
type BranchLister interface {
	ListRemoteBranches(ctx context.Context) ([]*model.Branch, error)
}

type BigQuery interface {
	Insert(ctx context.Context, schema bigquery.Schema, data any) error

	GetMetadata(ctx context.Context) (*bigquery.TableMetadata, error)
	UpdateTable(ctx context.Context, md bigquery.TableMetadataToUpdate, eTag string) error
	CreateTable(ctx context.Context, md *bigquery.TableMetadata) error
}

// ObjectStorage archives generated artifacts
type ObjectStorage interface {
	Put(ctx context.Context, object string, contentType string, data []byte) error
}

// SecretStore resolves credentials at startup
type SecretStore interface {
	GetSecret(ctx context.Context, name string) ([]byte, error)
}
