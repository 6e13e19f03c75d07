package modules

import (
	"github.com/roach88/boxcar/internal/composer"
	"github.com/roach88/boxcar/internal/naming"
)

var database = composer.Module{
	Name:     "database",
	Summary:  "PostgreSQL with queue, cache and cable databases",
	Provides: []string{"postgresql"},
	Doc: `Declares pg and replaces config/database.yml with a PostgreSQL setup
holding primary, queue, cache and cable databases per environment. Database
names derive from the application name.`,
	Apply: func(cc *composer.Context) error {
		return run(cc,
			gems("pg"),
			payloads("database").force("config/database.yml"),
			say("Primary database: "+naming.Database(cc.AppName)+"_[env]"),
		)
	},
}
