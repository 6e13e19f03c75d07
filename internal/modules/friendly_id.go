package modules

import (
	"github.com/roach88/boxcar/internal/composer"
)

var friendlyID = composer.Module{
	Name:    "friendly_id",
	Summary: "Slugs and permalinks",
	Doc: `Adds friendly_id and a Sluggable concern:

    class Post < ApplicationRecord
      include Sluggable
      slugged_by :title, history: true
    end`,
	Apply: func(cc *composer.Context) error {
		return run(cc,
			gems("friendly_id"),
			rails("Run FriendlyId generator", "generate friendly_id"),
			payloads("friendly_id").file("app/models/concerns/sluggable.rb"),
		)
	},
}
