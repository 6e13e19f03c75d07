package modules

import (
	"github.com/roach88/boxcar/internal/composer"
	"github.com/roach88/boxcar/internal/project"
)

const punditPayloads = payloads("pundit")

var pundit = composer.Module{
	Name:     "pundit",
	Summary:  "Policy-based authorization",
	Provides: []string{"authorization"},
	Doc: `Adds Pundit with ApplicationPolicy, UserPolicy, DefaultPolicy and
AdminPolicy. AdminPolicy holds one predicate per admin dashboard and backs
the AdminConstraint used by admin_routes. ApplicationController includes an
Authorization concern that verifies every action is authorized.`,
	Requires: []string{"anchors", "auth"},
	Apply: func(cc *composer.Context) error {
		return run(cc,
			gems("pundit"),
			rails("Run Pundit installer", "generate pundit:install"),
			punditPayloads.file("app/policies/application_policy.rb"),
			punditPayloads.file("app/policies/user_policy.rb"),
			punditPayloads.file("app/policies/admin_policy.rb"),
			punditPayloads.file("app/policies/default_policy.rb"),
			punditPayloads.file("app/controllers/concerns/authorization.rb"),
			text(project.MarkerApplicationController, "include Authorization\n"),
			say("Use `authorize @record` in actions and `policy_scope(Model)` in index queries"),
		)
	},
}
