package modules

import (
	"github.com/roach88/boxcar/internal/composer"
)

var pghero = composer.Module{
	Name:    "pghero",
	Summary: "PostgreSQL insights dashboard",
	Doc: `Adds PgHero with its config and query stats migration, mounted at
/admin/pghero. Query insights need pg_stat_statements enabled in
PostgreSQL.`,
	Requires:         []string{"database"},
	PostInstallTasks: []string{"Enable pg_stat_statements in PostgreSQL for PgHero query insights"},
	Apply: func(cc *composer.Context) error {
		return run(cc,
			gems("pghero"),
			payloads("pghero").file("config/initializers/pghero.rb"),
			rails("Generate PgHero config", "generate pghero:config"),
			rails("Generate PgHero query stats", "generate pghero:query_stats"),
			adminMount("PgHero::Engine", "pghero", "pghero", "PgHero PostgreSQL dashboard (admin or above)"),
		)
	},
}
