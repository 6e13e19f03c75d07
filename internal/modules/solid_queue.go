package modules

import (
	"github.com/roach88/boxcar/internal/composer"
	"github.com/roach88/boxcar/internal/project"
)

// JobsVariant groups the interchangeable background job backends.
const JobsVariant = "jobs"

var solidQueue = composer.Module{
	Name:     "solid_queue",
	Summary:  "Database-backed jobs with Mission Control",
	Variant:  JobsVariant,
	Provides: []string{"jobs"},
	Doc: `Makes Solid Queue the Active Job adapter, creates and loads the queue
database, adds a jobs process to Procfile.dev and mounts Mission Control at
/admin/jobs. Alternative to good_job.`,
	Requires:         []string{"anchors", "database"},
	PostInstallTasks: []string{"Run `bin/rails db:migrate`", "Configure queues in config/queue.yml"},
	Apply: func(cc *composer.Context) error {
		return run(cc,
			gems("solid_queue", "mission_control-jobs"),
			rails("Run Solid Queue installer", "generate solid_queue:install"),
			rails("Create queue database", "db:create:queue"),
			rails("Load Solid Queue schema", "db:schema:load:queue"),
			payloads("solid_queue").file("config/initializers/solid_queue.rb"),
			text(project.MarkerApplicationConfig, "config.active_job.queue_adapter = :solid_queue\n"),
			text(project.MarkerProcfile, "jobs: bundle exec rake solid_queue:start\n"),
			adminMount("MissionControl::Jobs::Engine", "jobs", "jobs", "Mission Control jobs dashboard (admin or above)"),
		)
	},
}
