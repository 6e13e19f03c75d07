// Package modules holds the built-in configuration modules.
//
// Each module is a short Go file listing its steps. The payloads it writes
// (initializers, concerns, YAML, workflows) live under templates/<module>/
// and are rendered as pongo2 templates, whose {{ }} and {% %} tags leave ERB
// and Ruby interpolation untouched. Template data carries the application's
// names:
//
//	{{ app_name }}        shop-front
//	{{ app_module }}      ShopFront
//	{{ app_title }}       Shop Front
//	{{ app_env_prefix }}  SHOP_FRONT
//	{{ app_database }}    shop_front
//
// and the enabled capabilities:
//
//	{% if capabilities.health_checks %}...{% endif %}
package modules
