package modules

import (
	"github.com/roach88/boxcar/internal/composer"
)

var credentialEnvironments = []string{"development", "staging", "production"}

var credentials = composer.Module{
	Name:    "credentials",
	Summary: "Per-environment encrypted credentials",
	Doc: `Creates encrypted credentials for development, staging and production
after bundling, plus config/credentials.yml.example describing the expected
keys (lockbox, blind_index, hashid).`,
	Apply: func(cc *composer.Context) error {
		steps := []step{payloads("credentials").file("config/credentials.yml.example")}
		for _, env := range credentialEnvironments {
			steps = append(steps, afterBundle(
				"Create "+env+" credentials",
				"EDITOR=echo bin/rails credentials:edit --environment "+env+" || true",
			))
		}
		return run(cc, steps...)
	},
}
