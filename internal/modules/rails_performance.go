package modules

import (
	"github.com/roach88/boxcar/internal/composer"
)

var railsPerformance = composer.Module{
	Name:    "rails_performance",
	Summary: "Request and job performance dashboard",
	Doc: `Adds rails_performance storing four hours of request data in Redis,
ignoring /health and /assets. The dashboard mounts at /admin/performance.`,
	Requires: []string{"redis"},
	Apply: func(cc *composer.Context) error {
		return run(cc,
			gems("rails_performance"),
			payloads("rails_performance").file("config/initializers/rails_performance.rb"),
			adminMount("RailsPerformance::Engine", "performance", "rails_performance", "Rails Performance dashboard (admin or above)"),
		)
	},
}
