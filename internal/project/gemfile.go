package project

import (
	"fmt"
	"regexp"
	"strings"
)

// GemfilePath is the package manifest of a Rails project.
const GemfilePath = "Gemfile"

// Gem is one dependency declaration.
type Gem struct {
	Name    string
	Version string   // optional requirement, e.g. "~> 3.1"
	Groups  []string // rendered as a groups: option on the single line
}

func (g Gem) line() string {
	var b strings.Builder
	fmt.Fprintf(&b, "gem '%s'", g.Name)
	if g.Version != "" {
		fmt.Fprintf(&b, ", '%s'", g.Version)
	}
	if len(g.Groups) > 0 {
		fmt.Fprintf(&b, ", groups: %%i[%s]", strings.Join(g.Groups, " "))
	}
	return b.String()
}

var gemDecl = regexp.MustCompile(`(?m)^[ \t]*gem[ \t]+['"]([^'"]+)['"]`)

func declaredGems(content string) map[string]bool {
	names := make(map[string]bool)
	for _, m := range gemDecl.FindAllStringSubmatch(content, -1) {
		names[m[1]] = true
	}
	return names
}

// DeclareGems appends gem lines to the Gemfile. Gems that are already
// declared are skipped. It returns the names that were added.
func (t *Tree) DeclareGems(gems ...Gem) ([]string, error) {
	content, err := t.Read(GemfilePath)
	if err != nil {
		return nil, err
	}
	have := declaredGems(content)

	var b strings.Builder
	var added []string
	for _, g := range gems {
		if g.Name == "" {
			return nil, fmt.Errorf("declare gem: empty name")
		}
		if have[g.Name] {
			continue
		}
		have[g.Name] = true
		b.WriteString(g.line())
		b.WriteString("\n")
		added = append(added, g.Name)
	}
	if len(added) == 0 {
		return nil, nil
	}
	return added, t.commit(GemfilePath, withTrailingNewline(content)+b.String())
}

// DeclareGemGroup appends a group block holding the gems not yet declared.
// Nothing is written when every gem is already present.
func (t *Tree) DeclareGemGroup(groups []string, gems ...Gem) ([]string, error) {
	if len(groups) == 0 {
		return t.DeclareGems(gems...)
	}
	content, err := t.Read(GemfilePath)
	if err != nil {
		return nil, err
	}
	have := declaredGems(content)

	var body strings.Builder
	var added []string
	for _, g := range gems {
		if g.Name == "" {
			return nil, fmt.Errorf("declare gem: empty name")
		}
		if have[g.Name] {
			continue
		}
		have[g.Name] = true
		g.Groups = nil
		body.WriteString("  ")
		body.WriteString(g.line())
		body.WriteString("\n")
		added = append(added, g.Name)
	}
	if len(added) == 0 {
		return nil, nil
	}

	syms := make([]string, len(groups))
	for i, g := range groups {
		syms[i] = ":" + g
	}
	block := fmt.Sprintf("\ngroup %s do\n%send\n", strings.Join(syms, ", "), body.String())
	return added, t.commit(GemfilePath, withTrailingNewline(content)+block)
}
