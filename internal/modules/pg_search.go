package modules

import (
	"github.com/roach88/boxcar/internal/composer"
)

const pgSearchPayloads = payloads("pg_search")

var pgSearch = composer.Module{
	Name:    "pg_search",
	Summary: "PostgreSQL full-text search",
	Doc: `Adds pg_search with multisearch, a Searchable concern
(` + "`searchable_by :title, :body`" + `) and a generator adding an indexed
tsvector column: ` + "`bin/rails g search_index Post`.",
	Requires:         []string{"database"},
	PostInstallTasks: []string{"Run `bin/rails db:migrate`"},
	Apply: func(cc *composer.Context) error {
		return run(cc,
			gems("pg_search"),
			rails("Generate multisearch migration", "generate pg_search:migration:multisearch"),
			pgSearchPayloads.file("app/models/concerns/searchable.rb"),
			pgSearchPayloads.file("config/initializers/pg_search.rb"),
			pgSearchPayloads.file("lib/generators/search_index/search_index_generator.rb"),
			pgSearchPayloads.file("lib/generators/search_index/templates/migration.rb.erb"),
		)
	},
}
