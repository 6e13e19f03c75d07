package modules

import (
	"github.com/roach88/boxcar/internal/composer"
	"github.com/roach88/boxcar/internal/project"
)

const redisPayloads = payloads("redis")

var redis = composer.Module{
	Name:     "redis",
	Summary:  "Redis sessions, cache and Rack::Attack",
	Provides: []string{"cache"},
	Doc: `Adds redis, redis-session-store and rack-attack. Sessions (db 2),
the cache (db 1) and rate limiting (db 5) share one Redis server, reached
through REDIS_URL.`,
	Requires: []string{"anchors"},
	Apply: func(cc *composer.Context) error {
		return run(cc,
			gems("redis", "redis-session-store", "rack-attack"),
			redisPayloads.file("config/initializers/redis.rb"),
			redisPayloads.file("config/initializers/session_store.rb"),
			redisPayloads.file("config/initializers/rack_attack.rb"),
			redisPayloads.insert(project.MarkerProductionEnv, "environment.rb"),
			redisPayloads.insert(project.MarkerDevelopmentEnv, "environment.rb"),
			text(project.MarkerDotenvDevelopment, "REDIS_URL=redis://localhost:6379/0\n"),
			notice("Make sure Redis is running locally or set REDIS_URL"),
		)
	},
}
