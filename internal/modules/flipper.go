package modules

import (
	"github.com/roach88/boxcar/internal/composer"
	"github.com/roach88/boxcar/internal/project"
)

const flipperPayloads = payloads("flipper")

var flipper = composer.Module{
	Name:     "flipper",
	Summary:  "Feature flags with an admin UI",
	Provides: []string{"feature_flags"},
	Doc: `Adds Flipper backed by Active Record behind the Rails cache, the
staff/admins/super_admins groups, a Featureable concern on User and a
feature_enabled? view helper. The UI mounts at /admin/flipper for super
admins.`,
	Requires:         []string{"anchors", "auth"},
	PostInstallTasks: []string{"Run `bin/rails db:migrate`"},
	Apply: func(cc *composer.Context) error {
		return run(cc,
			gems("flipper", "flipper-active_record", "flipper-ui", "flipper-active_support_cache_store"),
			rails("Run Flipper setup", "generate flipper:setup"),
			flipperPayloads.file("config/initializers/flipper.rb"),
			flipperPayloads.file("app/models/concerns/featureable.rb"),
			text(project.MarkerUserModel, "include Featureable\n"),
			flipperPayloads.file("app/helpers/feature_helper.rb"),
			text(project.MarkerApplicationController, "helper FeatureHelper\n"),
			adminMount("Flipper::UI.app(Flipper)", "flipper", "flipper", "Flipper feature flags (super_admin or above)"),
		)
	},
}
