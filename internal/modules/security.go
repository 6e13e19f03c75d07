package modules

import (
	"github.com/roach88/boxcar/internal/composer"
	"github.com/roach88/boxcar/internal/project"
)

const securityPayloads = payloads("security")

// Key sizes in bytes; both gems expect 32-byte keys as 64 hex characters.
const (
	lockboxKeySize    = 32
	blindIndexKeySize = 32
)

var security = composer.Module{
	Name:     "security",
	Summary:  "Field encryption, blind indexes, captcha, safe migrations",
	Provides: []string{"encryption"},
	Doc: `Adds lockbox, blind_index, invisible_captcha and strong_migrations.
Keys come from credentials, then LOCKBOX_MASTER_KEY and
BLIND_INDEX_MASTER_KEY. Random development keys are written to
.env.development; production refuses to boot without keys. An Encryptable
concern wraps encrypts and blind_index.`,
	Requires:         []string{"anchors"},
	PostInstallTasks: []string{"Generate production keys with Lockbox.generate_key and BlindIndex.generate_key"},
	Apply: func(cc *composer.Context) error {
		return run(cc,
			gems("lockbox", "blind_index", "invisible_captcha", "strong_migrations"),
			rails("Run Lockbox audits generator", "generate lockbox:audits"),
			rails("Run Strong Migrations installer", "generate strong_migrations:install"),
			securityPayloads.file("config/initializers/lockbox.rb"),
			securityPayloads.file("config/initializers/blind_index.rb"),
			securityPayloads.file("config/initializers/invisible_captcha.rb"),
			securityPayloads.file("app/models/concerns/encryptable.rb"),
			securityPayloads.insert(project.MarkerApplicationController, "captcha.rb"),
			secretEnv("LOCKBOX_MASTER_KEY", lockboxKeySize),
			secretEnv("BLIND_INDEX_MASTER_KEY", blindIndexKeySize),
		)
	},
}
