// Package naming derives the identifiers a Rails application is known by
// from its directory-style name.
package naming

import (
	"fmt"
	"regexp"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

var appName = regexp.MustCompile(`^[a-z][a-z0-9_-]*$`)

// Validate checks that name is usable as an application name.
func Validate(name string) error {
	if !appName.MatchString(name) {
		return fmt.Errorf("invalid application name %q: use lowercase letters, digits, '-' and '_', starting with a letter", name)
	}
	return nil
}

func words(name string) []string {
	return strings.FieldsFunc(name, func(r rune) bool { return r == '_' || r == '-' })
}

// Module returns the Ruby module name, e.g. "shop-front" -> "ShopFront".
func Module(name string) string {
	title := cases.Title(language.Und)
	var b strings.Builder
	for _, w := range words(name) {
		b.WriteString(title.String(w))
	}
	return b.String()
}

// Title returns the human-readable name, e.g. "shop-front" -> "Shop Front".
func Title(name string) string {
	title := cases.Title(language.Und)
	ws := words(name)
	for i, w := range ws {
		ws[i] = title.String(w)
	}
	return strings.Join(ws, " ")
}

// EnvPrefix returns the environment variable prefix, e.g. "shop-front" -> "SHOP_FRONT".
func EnvPrefix(name string) string {
	return cases.Upper(language.Und).String(strings.Join(words(name), "_"))
}

// Database returns the database base name, e.g. "shop-front" -> "shop_front".
func Database(name string) string {
	return strings.Join(words(name), "_")
}
