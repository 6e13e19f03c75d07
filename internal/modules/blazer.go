package modules

import (
	"github.com/roach88/boxcar/internal/composer"
)

const blazerPayloads = payloads("blazer")

var blazer = composer.Module{
	Name:    "blazer",
	Summary: "SQL business intelligence dashboard",
	Doc: `Adds Blazer reading the main database with a 15 second statement
timeout, smart variables and linked columns for users, audit logging and
checks. Mounted at /admin/blazer.`,
	Requires:         []string{"database"},
	PostInstallTasks: []string{"Run `bin/rails db:migrate`", "Configure data sources in config/blazer.yml"},
	Apply: func(cc *composer.Context) error {
		return run(cc,
			gems("blazer"),
			rails("Run Blazer installer", "generate blazer:install"),
			blazerPayloads.file("config/initializers/blazer.rb"),
			blazerPayloads.file("config/blazer.yml"),
			adminMount("Blazer::Engine", "blazer", "blazer", "Blazer BI dashboard (admin or above)"),
		)
	},
}
