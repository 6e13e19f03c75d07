package modules

import (
	"github.com/roach88/boxcar/internal/composer"
	"github.com/roach88/boxcar/internal/project"
)

const goodJobPayloads = payloads("good_job")

var goodJob = composer.Module{
	Name:     "good_job",
	Summary:  "Postgres-backed jobs with cron",
	Variant:  JobsVariant,
	Provides: []string{"jobs"},
	Doc: `Makes GoodJob the Active Job adapter with cron enabled, adds a jobs
process to Procfile.dev, an example CleanupJob and the dashboard at
/admin/jobs. Alternative to solid_queue.`,
	Requires:         []string{"anchors", "database"},
	PostInstallTasks: []string{"Run `bin/rails db:migrate`"},
	Apply: func(cc *composer.Context) error {
		return run(cc,
			gems("good_job"),
			goodJobPayloads.file("config/initializers/good_job.rb"),
			goodJobPayloads.file("app/jobs/cleanup_job.rb"),
			rails("Install GoodJob", "generate good_job:install"),
			text(project.MarkerProcfile, "jobs: bundle exec good_job start\n"),
			adminMount("GoodJob::Engine", "jobs", "jobs", "GoodJob dashboard (admin or above)"),
		)
	},
}
