package modules

import (
	"github.com/roach88/boxcar/internal/composer"
)

// builtins lists every module shipped with boxcar in listing order.
var builtins = []composer.Module{
	anchors,
	baseGems,
	devTools,
	credentials,
	database,
	publicIdentifiable,
	auth,
	tailwind,
	pundit,
	redis,
	security,
	flipper,
	solidQueue,
	goodJob,
	blazer,
	railsPerformance,
	healthChecks,
	analytics,
	console1984,
	pghero,
	kaminari,
	paperTrail,
	softDelete,
	friendlyID,
	pgSearch,
	aasm,
	mailkick,
	metrics,
	adminRoutes,
	github,
	caching,
	csp,
	email,
	logging,
	seo,
}

// Builtins returns a registry holding only the built-in modules.
func Builtins() *composer.Registry {
	r := composer.NewRegistry()
	r.MustRegister(builtins...)
	return r
}
