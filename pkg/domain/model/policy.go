package model

import (
	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/issueflow/pkg/domain/types"
)

// Policy is the tunable behavior of the engine. It is loaded from a YAML file; missing
// fields keep the defaults of DefaultPolicy.
type Policy struct {
	ReadinessLabels   []string                               `yaml:"readiness_labels" json:"readiness_labels"`
	AgentIdentities   []string                               `yaml:"agent_identities" json:"agent_identities"`
	IntegrationMarker string                                 `yaml:"integration_marker" json:"integration_marker"`
	ContextFile       string                                 `yaml:"context_file" json:"context_file"`
	StaleDays         int                                    `yaml:"stale_days" json:"stale_days"`
	Branches          map[types.BranchName]BranchExpectation `yaml:"branches" json:"branches"`
}

// DefaultPolicy returns the built-in policy
func DefaultPolicy() *Policy {
	return &Policy{
		ReadinessLabels:   []string{types.LabelReadyForDevelopment, types.LabelGoodFirstIssue},
		AgentIdentities:   []string{"jules", "google-labs-jules"},
		IntegrationMarker: "github-issues",
		ContextFile:       ContextFileName,
		StaleDays:         7,
		Branches:          map[types.BranchName]BranchExpectation{},
	}
}

func (x *Policy) Validate() error {
	if x.StaleDays <= 0 {
		return goerr.Wrap(types.ErrValidationFailed, "stale_days must be positive", goerr.V("stale_days", x.StaleDays))
	}
	if x.ContextFile == "" {
		return goerr.Wrap(types.ErrValidationFailed, "context_file is empty")
	}
	for name, exp := range x.Branches {
		if exp.Priority != "" && exp.Priority.Rank() == 0 {
			return goerr.Wrap(types.ErrValidationFailed, "unknown branch priority",
				goerr.V("branch", name),
				goerr.V("priority", exp.Priority),
			)
		}
	}
	return nil
}
