package project

import "strings"

// Marker names exposed by the framework skeleton once it has been adopted.
const (
	MarkerApplicationController = "controller.application"
	MarkerApplicationMailer     = "mailer.application"
	MarkerApplicationConfig     = "config.application"
	MarkerDevelopmentEnv        = "env.development"
	MarkerProductionEnv         = "env.production"
	MarkerRoutes                = "routes.draw"
	MarkerDotenvDevelopment     = "dotenv.development"
	MarkerProcfile              = "procfile.dev"
	MarkerUserModel             = "model.user"
)

const markerPrefix = "# boxcar:marker "

// Position selects where an adopted marker goes relative to its anchor.
type Position int

const (
	// After places the marker on the line following the anchor.
	After Position = iota
	// Before places the marker on the line preceding the anchor.
	Before
)

// Anchor describes a marker to plant next to anchor text in an existing file.
type Anchor struct {
	Name     string
	Path     string
	Text     string // empty appends the marker at the end of the file
	Position Position
	Indent   string
}

// MarkerLine renders the marker line for name.
func MarkerLine(name, indent string) string {
	return indent + markerPrefix + name + "\n"
}

type markerLoc struct {
	name   string
	indent string
	start  int
	end    int
}

func findMarkers(content string) []markerLoc {
	var locs []markerLoc
	pos := 0
	for pos < len(content) {
		next := len(content)
		line := content[pos:]
		if nl := strings.IndexByte(line, '\n'); nl >= 0 {
			line = line[:nl]
			next = pos + nl + 1
		}
		trimmed := strings.TrimLeft(line, " \t")
		if strings.HasPrefix(trimmed, markerPrefix) {
			name := strings.TrimSpace(trimmed[len(markerPrefix):])
			if validMarkerName(name) {
				locs = append(locs, markerLoc{
					name:   name,
					indent: line[:len(line)-len(trimmed)],
					start:  pos,
					end:    next,
				})
			}
		}
		pos = next
	}
	return locs
}

func findMarker(content, name string) (markerLoc, bool) {
	for _, loc := range findMarkers(content) {
		if loc.name == name {
			return loc, true
		}
	}
	return markerLoc{}, false
}

func stripMarkerLines(content string) string {
	locs := findMarkers(content)
	if len(locs) == 0 {
		return content
	}
	var b strings.Builder
	last := 0
	for _, loc := range locs {
		b.WriteString(content[last:loc.start])
		last = loc.end
	}
	b.WriteString(content[last:])
	return b.String()
}

func validMarkerName(name string) bool {
	if name == "" {
		return false
	}
	for _, r := range name {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9', r == '.', r == '_', r == '-':
		default:
			return false
		}
	}
	return true
}
