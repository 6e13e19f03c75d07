package modules

import (
	"github.com/roach88/boxcar/internal/composer"
	"github.com/roach88/boxcar/internal/project"
)

const authPayloads = payloads("auth")

var auth = composer.Module{
	Name:     "auth",
	Summary:  "Session authentication with roles",
	Provides: []string{"authentication"},
	Doc: `Builds cookie-session authentication on has_secure_password:

- User (roles user, admin, super_admin, owner) and Session models
- the Authentication controller concern included in ApplicationController
- sign in and sign up controllers, views and routes
- an Admin namespace base controller and users controller

app/models/user.rb exposes the model.user marker for later modules.`,
	Requires:         []string{"anchors", "public_identifiable"},
	PostInstallTasks: []string{"Run `bin/rails db:migrate`"},
	Apply: func(cc *composer.Context) error {
		return run(cc,
			declare(project.Gem{Name: "bcrypt", Version: "~> 3.1"}),
			rails("Generate User model", "generate model User email:string:uniq password_digest:string role:integer --skip"),
			rails("Generate Session model", "generate model Session user:references token:string:uniq ip_address:string user_agent:string --skip"),
			authPayloads.force("app/models/user.rb"),
			authPayloads.force("app/models/session.rb"),
			authPayloads.file("app/models/current.rb"),
			authPayloads.file("app/controllers/concerns/authentication.rb"),
			text(project.MarkerApplicationController, "include Authentication\n"),
			authPayloads.file("app/controllers/sessions_controller.rb"),
			authPayloads.file("app/controllers/registrations_controller.rb"),
			authPayloads.file("app/views/sessions/new.html.erb"),
			authPayloads.file("app/views/registrations/new.html.erb"),
			authPayloads.route("routes.rb"),
			authPayloads.file("app/controllers/admin/application_controller.rb"),
			authPayloads.file("app/controllers/admin/users_controller.rb"),
		)
	},
}
