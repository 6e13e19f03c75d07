package modules

import (
	"github.com/roach88/boxcar/internal/composer"
)

var kaminari = composer.Module{
	Name:    "kaminari",
	Summary: "Pagination",
	Doc:     "Adds kaminari at 25 records per page, 100 at most: `User.page(params[:page])` and `<%= paginate @users %>`.",
	Apply: func(cc *composer.Context) error {
		return run(cc,
			gems("kaminari"),
			rails("Run Kaminari config generator", "generate kaminari:config --force"),
			payloads("kaminari").file("config/initializers/kaminari.rb"),
		)
	},
}
