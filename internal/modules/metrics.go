package modules

import (
	"github.com/roach88/boxcar/internal/composer"
	"github.com/roach88/boxcar/internal/project"
)

const metricsPayloads = payloads("metrics")

var metrics = composer.Module{
	Name:    "metrics",
	Summary: "StatsD metrics and request instrumentation",
	Doc: `Adds statsd-instrument reporting over UDP in production and to the log
elsewhere, a Metrics service wrapper and RequestMetrics middleware timing
every request.`,
	Requires:         []string{"anchors"},
	PostInstallTasks: []string{"Set STATSD_ADDR in production"},
	Apply: func(cc *composer.Context) error {
		return run(cc,
			gems("statsd-instrument"),
			metricsPayloads.file("config/initializers/statsd.rb"),
			metricsPayloads.file("app/services/metrics.rb"),
			metricsPayloads.file("app/middleware/request_metrics.rb"),
			text(project.MarkerApplicationConfig, "config.middleware.use RequestMetrics\n"),
			text(project.MarkerDotenvDevelopment, "STATSD_ADDR=localhost:8125\n"),
		)
	},
}
