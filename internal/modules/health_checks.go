package modules

import (
	"github.com/roach88/boxcar/internal/composer"
)

var healthChecks = composer.Module{
	Name:    "health_checks",
	Summary: "OkComputer health endpoints",
	Doc: `Adds OkComputer with database, cache, app version and mailer checks,
plus a Redis check when the redis module ran first. Checks run in parallel
and, in production, detailed results require basic auth. admin_routes mounts
the endpoint at /health.`,
	Apply: func(cc *composer.Context) error {
		return run(cc,
			gems("okcomputer"),
			payloads("health_checks").file("config/initializers/okcomputer.rb"),
		)
	},
}
