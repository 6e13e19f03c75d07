package modules

import (
	"github.com/roach88/boxcar/internal/composer"
	"github.com/roach88/boxcar/internal/project"
)

const paperTrailPayloads = payloads("paper_trail")

var paperTrail = composer.Module{
	Name:     "paper_trail",
	Summary:  "Model version history",
	Provides: []string{"auditing"},
	Doc: `Adds paper_trail, an Auditable model concern and whodunnit tracking
in ApplicationController. Include Auditable in models to version them.`,
	Requires:         []string{"anchors"},
	PostInstallTasks: []string{"Run `bin/rails db:migrate`"},
	Apply: func(cc *composer.Context) error {
		return run(cc,
			gems("paper_trail"),
			paperTrailPayloads.file("config/initializers/paper_trail.rb"),
			paperTrailPayloads.file("app/models/concerns/auditable.rb"),
			paperTrailPayloads.file("app/controllers/concerns/set_paper_trail_whodunnit.rb"),
			text(project.MarkerApplicationController, "include SetPaperTrailWhodunnit\n"),
			rails("Run Paper Trail installer", "generate paper_trail:install"),
		)
	},
}
