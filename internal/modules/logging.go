package modules

import (
	"github.com/roach88/boxcar/internal/composer"
)

var logging = composer.Module{
	Name:    "logging",
	Summary: "Structured request logs with lograge and PII filtering",
	Doc: `Adds lograge with JSON lines in production and key=value elsewhere, each
request tagged with request_id, user_id, ip and host. Logstop guards
Rails.logger against emails, phone numbers and other PII.`,
	Apply: func(cc *composer.Context) error {
		return run(cc,
			gems("lograge", "logstop"),
			payloads("logging").file("config/initializers/lograge.rb"),
			payloads("logging").file("config/initializers/logstop.rb"),
		)
	},
}
