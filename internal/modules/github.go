package modules

import (
	"github.com/roach88/boxcar/internal/composer"
)

const githubPayloads = payloads("github")

var github = composer.Module{
	Name:    "github",
	Summary: "GitHub Actions workflows",
	Doc: `Adds two workflows: one checking that new migrations index their
foreign keys, and a weekly security scan running bundler-audit and
Brakeman.`,
	Apply: func(cc *composer.Context) error {
		return run(cc,
			mkdir(".github/workflows"),
			githubPayloads.file(".github/workflows/check-indexes.yml"),
			githubPayloads.file(".github/workflows/security.yml"),
		)
	},
}
