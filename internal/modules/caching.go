package modules

import (
	"github.com/roach88/boxcar/internal/composer"
)

const cachingPayloads = payloads("caching")

var caching = composer.Module{
	Name:    "caching",
	Summary: "IdentityCache model caching and view cache helpers",
	Doc: `Adds identity_cache (with cityhash) backed by Rails.cache, a Cacheable
concern for models, CacheHelper for versioned and time-bucketed fragment
caches, a CacheWarmerJob and docs/caching.md describing the patterns.`,
	Apply: func(cc *composer.Context) error {
		return run(cc,
			gems("identity_cache", "cityhash"),
			say("Configuring IdentityCache..."),
			cachingPayloads.file("config/initializers/identity_cache.rb"),
			cachingPayloads.file("app/models/concerns/cacheable.rb"),
			cachingPayloads.file("app/helpers/cache_helper.rb"),
			cachingPayloads.file("app/jobs/cache_warmer_job.rb"),
			cachingPayloads.file("docs/caching.md"),
			notice("Use `include Cacheable` in models for identity caching"),
		)
	},
}
