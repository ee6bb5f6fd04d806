package config

import (
	"log/slog"
	"os"

	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/issueflow/pkg/domain/model"
	"github.com/urfave/cli/v3"
	"gopkg.in/yaml.v3"
)

type Policy struct {
	path string
}

func (x *Policy) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "policy",
			Usage:       "Policy file (YAML). Built-in defaults are used for missing fields",
			Category:    "Policy",
			Aliases:     []string{"p"},
			Destination: &x.path,
			Sources:     cli.EnvVars("ISSUEFLOW_POLICY"),
		},
	}
}

func (x *Policy) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("path", x.path),
	)
}

// Load reads the policy file over the default policy
func (x *Policy) Load() (*model.Policy, error) {
	policy := model.DefaultPolicy()
	if x.path == "" {
		return policy, nil
	}

	raw, err := os.ReadFile(x.path)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to read policy file", goerr.V("path", x.path))
	}
	if err := yaml.Unmarshal(raw, policy); err != nil {
		return nil, goerr.Wrap(err, "failed to parse policy file", goerr.V("path", x.path))
	}
	if err := policy.Validate(); err != nil {
		return nil, goerr.Wrap(err, "invalid policy", goerr.V("path", x.path))
	}

	return policy, nil
}
