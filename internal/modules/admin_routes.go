package modules

import (
	"github.com/roach88/boxcar/internal/composer"
	"github.com/roach88/boxcar/internal/project"
)

const adminRoutesPayloads = payloads("admin_routes")

// adminNamespace frames the engines other modules mounted under /admin.
var adminNamespace = project.Namespace{
	Name: AdminNamespace,
	Head: []string{"root to: 'application#index'"},
	Tail: []string{"resources :users"},
}

var adminRoutes = composer.Module{
	Name:    "admin_routes",
	Summary: "Admin namespace with every mounted dashboard",
	Doc: `Writes the admin namespace into config/routes.rb with every engine
mounted by earlier modules, each guarded by an AdminConstraint that checks the
matching AdminPolicy predicate. Adds the public /health endpoint when
health_checks ran.

Apply after every module that mounts an admin dashboard; later mounts fail.`,
	Requires: []string{"auth", "pundit"},
	Apply: func(cc *composer.Context) error {
		return run(cc,
			adminRoutesPayloads.file("app/constraints/admin_constraint.rb"),
			func(cc *composer.Context) error {
				for _, m := range cc.Routes.Pending(AdminNamespace) {
					cc.Detail("mount " + m.Engine + " at /admin/" + m.At)
				}
				return cc.Routes.Finalize(adminNamespace)
			},
			when("health_checks", adminRoutesPayloads.route("health.rb")),
			say("Admin dashboard at /admin"),
		)
	},
}
