package modules

import (
	"github.com/roach88/boxcar/internal/composer"
)

var tailwind = composer.Module{
	Name:    "tailwind",
	Summary: "Tailwind CSS",
	Doc:     "Adds tailwindcss-rails and runs its installer after bundling.",
	Apply: func(cc *composer.Context) error {
		return run(cc,
			gems("tailwindcss-rails"),
			rails("Install Tailwind", "tailwindcss:install"),
		)
	},
}
