package modules

import (
	"github.com/roach88/boxcar/internal/composer"
)

const cspPayloads = payloads("csp")

var csp = composer.Module{
	Name:    "csp",
	Summary: "CORS, security headers and a Content Security Policy template",
	Doc: `Adds rack-cors allowing /api/* from CORS_ORIGINS (localhost:3000 in
development) and /health* for GET, default security response headers, and a
commented Content Security Policy initializer to enable when needed.`,
	PostInstallTasks: []string{"Review config/initializers/content_security_policy.rb before enabling CSP"},
	Apply: func(cc *composer.Context) error {
		return run(cc,
			gems("rack-cors"),
			say("Content Security Policy disabled by default..."),
			cspPayloads.file("config/initializers/content_security_policy.rb"),
			cspPayloads.file("config/initializers/cors.rb"),
			cspPayloads.file("config/initializers/secure_headers.rb"),
			task("Run `bundle audit` to check for vulnerabilities"),
		)
	},
}
