package modules

import (
	"regexp"

	"github.com/roach88/boxcar/internal/composer"
	"github.com/roach88/boxcar/internal/project"
)

const emailPayloads = payloads("email")

var defaultMailerFrom = regexp.MustCompile(`(?m)^[ \t]*default from: "from@example\.com"\n`)

var email = composer.Module{
	Name:    "email",
	Summary: "Premailer, UserMailer and HTML email layout",
	Doc: `Adds premailer-rails to inline CSS, a UserMailer with welcome, password
reset and email confirmation messages in HTML and text, a styled mailer
layout and previews under test/mailers/previews. The sender address comes
from MAILER_FROM. With mailkick applied first the layout links to
mailkick_unsubscribe_url.`,
	Requires: []string{"anchors"},
	PostInstallTasks: []string{
		"Add edit_password_reset and confirm_email routes used by UserMailer",
		"Set MAILER_FROM in production",
	},
	Apply: func(cc *composer.Context) error {
		return run(cc,
			gems("premailer-rails"),
			emailPayloads.file("config/initializers/premailer.rb"),
			removeBlock("app/mailers/application_mailer.rb", defaultMailerFrom, "default sender"),
			text(project.MarkerApplicationMailer, "default from: ENV.fetch('MAILER_FROM', 'noreply@example.com')\n"),
			text(project.MarkerDotenvDevelopment, "MAILER_FROM=noreply@localhost\n"),
			emailPayloads.file("app/mailers/user_mailer.rb"),
			emailPayloads.force("app/views/layouts/mailer.html.erb"),
			emailPayloads.file("app/views/user_mailer/welcome.html.erb"),
			emailPayloads.file("app/views/user_mailer/password_reset.html.erb"),
			emailPayloads.file("app/views/user_mailer/email_confirmation.html.erb"),
			emailPayloads.file("app/views/user_mailer/welcome.text.erb"),
			emailPayloads.file("app/views/user_mailer/password_reset.text.erb"),
			emailPayloads.file("app/views/user_mailer/email_confirmation.text.erb"),
			emailPayloads.file("test/mailers/previews/user_mailer_preview.rb"),
			notice("Preview emails at /rails/mailers in development"),
		)
	},
}
