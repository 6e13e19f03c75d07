package modules

import (
	"github.com/roach88/boxcar/internal/composer"
	"github.com/roach88/boxcar/internal/project"
)

// skeletonAnchors are the markers planted in a freshly generated Rails app.
var skeletonAnchors = []project.Anchor{
	{
		Name:   project.MarkerApplicationController,
		Path:   "app/controllers/application_controller.rb",
		Text:   "class ApplicationController < ActionController::Base\n",
		Indent: "  ",
	},
	{
		Name:   project.MarkerApplicationMailer,
		Path:   "app/mailers/application_mailer.rb",
		Text:   "class ApplicationMailer < ActionMailer::Base\n",
		Indent: "  ",
	},
	{
		Name:   project.MarkerApplicationConfig,
		Path:   "config/application.rb",
		Text:   "class Application < Rails::Application\n",
		Indent: "    ",
	},
	{
		Name:   project.MarkerDevelopmentEnv,
		Path:   "config/environments/development.rb",
		Text:   "Rails.application.configure do\n",
		Indent: "  ",
	},
	{
		Name:   project.MarkerProductionEnv,
		Path:   "config/environments/production.rb",
		Text:   "Rails.application.configure do\n",
		Indent: "  ",
	},
	{
		Name:   project.MarkerRoutes,
		Path:   "config/routes.rb",
		Text:   "Rails.application.routes.draw do\n",
		Indent: "  ",
	},
	{Name: project.MarkerProcfile, Path: "Procfile.dev"},
	{Name: project.MarkerDotenvDevelopment, Path: ".env.development"},
}

var anchors = composer.Module{
	Name:    "anchors",
	Summary: "Plant insertion markers in the Rails skeleton",
	Doc: `Plants the named insertion markers later modules write through:

| Marker | File |
|---|---|
| controller.application | app/controllers/application_controller.rb |
| mailer.application | app/mailers/application_mailer.rb |
| config.application | config/application.rb |
| env.development | config/environments/development.rb |
| env.production | config/environments/production.rb |
| routes.draw | config/routes.rb |
| procfile.dev | Procfile.dev (created if missing) |
| dotenv.development | .env.development (created if missing) |

Markers are removed once the run ends. Apply this module first.`,
	Apply: func(cc *composer.Context) error {
		for _, a := range skeletonAnchors {
			if err := cc.Tree.Adopt(a); err != nil {
				return err
			}
		}
		return nil
	},
}
