package types

import "github.com/m-mizutani/goerr/v2"

var (
	ErrInvalidOption     = goerr.New("invalid option")
	ErrValidationFailed  = goerr.New("validation failed")
	ErrInvalidGitHubData = goerr.New("invalid GitHub data")

	// Remote collaborator failures. They are recovered per item by the orchestrator.
	ErrBranchCreation = goerr.New("branch creation failed")
	ErrBranchExists   = goerr.New("branch already exists")
	ErrRefNotFound    = goerr.New("ref not found")
	ErrConflict       = goerr.New("file conflict")
	ErrNotFound       = goerr.New("not found")

	ErrAlreadyStarted = goerr.New("workflow already started")
)
