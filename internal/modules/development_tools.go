package modules

import (
	"github.com/roach88/boxcar/internal/composer"
	"github.com/roach88/boxcar/internal/project"
)

const developmentToolsPayloads = payloads("development_tools")

var devTools = composer.Module{
	Name:    "development_tools",
	Summary: "Bullet, pry, annotaterb, letter_opener_web",
	Doc: `Adds the development group (pry-rails, bullet, query_count,
actual_db_schema, annotaterb, letter_opener_web), a Bullet initializer, the
letter_opener_web mount and mail delivery settings for development.`,
	Requires: []string{"anchors"},
	Apply: func(cc *composer.Context) error {
		return run(cc,
			gemGroup([]string{"development"},
				"pry-rails", "bullet", "query_count", "actual_db_schema", "annotaterb", "letter_opener_web"),
			developmentToolsPayloads.file("config/initializers/bullet.rb"),
			developmentToolsPayloads.route("routes.rb"),
			developmentToolsPayloads.insert(project.MarkerDevelopmentEnv, "development.rb"),
			rails("Run AnnotateRb installer", "generate annotate_rb:install"),
			rails("Run Bullet installer", "generate bullet:install"),
		)
	},
}
