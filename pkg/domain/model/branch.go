package model

import (
	"time"

	"github.com/secmon-lab/issueflow/pkg/domain/types"
)

// Branch is a remote branch observed in one snapshot
type Branch struct {
	Name    types.BranchName `json:"name"`
	HeadSHA types.CommitSHA  `json:"head_sha"`
}

// CommitMeta is metadata of the head commit of a branch
type CommitMeta struct {
	SHA         types.CommitSHA `json:"sha"`
	Author      string          `json:"author"`
	AuthorLogin string          `json:"author_login,omitempty"`
	Message     string          `json:"message"`
	Timestamp   time.Time       `json:"timestamp"`
}

// Subject returns the first line of the commit message
func (x *CommitMeta) Subject() string {
	for i, c := range x.Message {
		if c == '\n' {
			return x.Message[:i]
		}
	}
	return x.Message
}

// RepoFile is a file write request against a branch. SHA is required to update an
// existing file.
type RepoFile struct {
	Path    string
	Content []byte
	Branch  types.BranchName
	Message string
	SHA     string
}
