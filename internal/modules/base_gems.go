package modules

import (
	"regexp"

	"github.com/roach88/boxcar/internal/composer"
	"github.com/roach88/boxcar/internal/project"
)

var allowBrowser = regexp.MustCompile(`(?m)^[ \t]*# Only allow modern browsers.*\n[ \t]*allow_browser versions: :modern\n?`)

var baseGems = composer.Module{
	Name:    "base_gems",
	Summary: "JSON templates, HTTP client, dotenv",
	Doc: `Declares jb, awesome_print, faraday and dotenv-rails, and removes the
default allow_browser restriction from ApplicationController.`,
	Requires: []string{"anchors"},
	Apply: func(cc *composer.Context) error {
		return run(cc,
			say("Installing base gems"),
			gems("jb", "awesome_print", "faraday"),
			declare(project.Gem{Name: "dotenv-rails", Groups: []string{"development", "test"}}),
			removeBlock("app/controllers/application_controller.rb", allowBrowser, "allow_browser restriction"),
		)
	},
}
