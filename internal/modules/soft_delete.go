package modules

import (
	"github.com/roach88/boxcar/internal/composer"
)

const softDeletePayloads = payloads("soft_delete")

var softDelete = composer.Module{
	Name:    "soft_delete",
	Summary: "Soft deletes with acts_as_paranoid",
	Doc: `Adds acts_as_paranoid, a SoftDeletable concern and a generator for
the deleted_at migration: ` + "`bin/rails g soft_delete Post`.",
	Apply: func(cc *composer.Context) error {
		return run(cc,
			gems("acts_as_paranoid"),
			softDeletePayloads.file("app/models/concerns/soft_deletable.rb"),
			softDeletePayloads.file("lib/generators/soft_delete/soft_delete_generator.rb"),
			softDeletePayloads.file("lib/generators/soft_delete/templates/migration.rb.erb"),
		)
	},
}
