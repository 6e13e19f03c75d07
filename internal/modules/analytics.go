package modules

import (
	"github.com/roach88/boxcar/internal/composer"
	"github.com/roach88/boxcar/internal/project"
)

const analyticsPayloads = payloads("analytics")

var analytics = composer.Module{
	Name:     "analytics",
	Summary:  "Ahoy visits, events and email tracking",
	Provides: []string{"email_tracking"},
	Doc: `Adds ahoy_matey and ahoy_email with masked IPs and no cookies, a
Trackable controller concern and message history on ApplicationMailer.
Stored messages are encrypted with Lockbox when the security module ran
first.`,
	Requires:         []string{"anchors"},
	PostInstallTasks: []string{"Run `bin/rails db:migrate`"},
	Apply: func(cc *composer.Context) error {
		messages := "generate ahoy:messages"
		if cc.Has("security") {
			messages += " --encryption=lockbox"
		}
		return run(cc,
			gems("ahoy_matey", "ahoy_email"),
			rails("Install Ahoy", "generate ahoy:install"),
			rails("Generate Ahoy messages", messages),
			rails("Generate Ahoy clicks", "generate ahoy:clicks"),
			analyticsPayloads.force("config/initializers/ahoy.rb"),
			analyticsPayloads.file("config/initializers/ahoy_email.rb"),
			analyticsPayloads.file("app/controllers/concerns/trackable.rb"),
			text(project.MarkerApplicationController, "include Trackable\n"),
			text(project.MarkerApplicationMailer, "has_history\nutm_params\n"),
		)
	},
}
