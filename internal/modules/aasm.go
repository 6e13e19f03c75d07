package modules

import (
	"github.com/roach88/boxcar/internal/composer"
)

var aasm = composer.Module{
	Name:    "aasm",
	Summary: "State machines",
	Doc:     `Adds aasm. Include AASM in a model and declare states and events in an aasm block.`,
	Apply: func(cc *composer.Context) error {
		return run(cc,
			gems("aasm"),
			say(`Migration: add_column :table, :state, :string, default: "initial"`),
		)
	},
}
