package modules

import (
	"github.com/roach88/boxcar/internal/composer"
)

const publicIDPayloads = payloads("public_identifiable")

var publicIdentifiable = composer.Module{
	Name:     "public_identifiable",
	Summary:  "Prefixed public IDs via hashid-rails",
	Provides: []string{"public_ids"},
	Doc: `Adds hashid-rails and a PublicIdentifiable concern giving models
prefixed public IDs such as usr_k3j2h1. A random development salt is written
to .env.development.`,
	Requires: []string{"anchors"},
	Apply: func(cc *composer.Context) error {
		return run(cc,
			gems("hashid-rails"),
			publicIDPayloads.file("app/models/concerns/public_identifiable.rb"),
			publicIDPayloads.file("config/initializers/hashid.rb"),
			secretEnv("HASHID_SALT", 32),
		)
	},
}
