package modules

import (
	"github.com/roach88/boxcar/internal/composer"
)

const consolePayloads = payloads("console1984")

var console1984 = composer.Module{
	Name:    "console1984",
	Summary: "Audited production console sessions",
	Doc: `Adds console1984 and audits1984: production console sessions ask for
a reason, are encrypted and are incinerated after 30 days. Super admins
review them at /admin/console_audits.`,
	Requires:         []string{"auth"},
	PostInstallTasks: []string{"Run `bin/rails db:migrate`"},
	Apply: func(cc *composer.Context) error {
		return run(cc,
			gems("console1984", "audits1984"),
			rails("Install Console1984", "console1984:install:migrations"),
			rails("Install Audits1984", "audits1984:install:migrations"),
			consolePayloads.file("config/initializers/console1984.rb"),
			consolePayloads.file("app/controllers/audits_auth_controller.rb"),
			consolePayloads.file("config/initializers/audits1984.rb"),
			adminMount("Audits1984::Engine", "console_audits", "console_audits", "Console audits (super_admin or above)"),
		)
	},
}
