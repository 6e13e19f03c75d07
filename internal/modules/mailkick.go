package modules

import (
	"github.com/roach88/boxcar/internal/composer"
	"github.com/roach88/boxcar/internal/project"
)

var mailkick = composer.Module{
	Name:    "mailkick",
	Summary: "Email subscriptions and unsubscribe links",
	Doc: `Adds mailkick with its views and subscriptions on User. Link with
mailkick_unsubscribe_url(user, "list") and check user.subscribed?("list").`,
	Requires:         []string{"auth"},
	PostInstallTasks: []string{"Run `bin/rails db:migrate`"},
	Apply: func(cc *composer.Context) error {
		return run(cc,
			gems("mailkick"),
			rails("Run Mailkick installer", "generate mailkick:install"),
			rails("Generate Mailkick views", "generate mailkick:views"),
			payloads("mailkick").file("config/initializers/mailkick.rb"),
			text(project.MarkerUserModel, "has_subscriptions\n"),
		)
	},
}
