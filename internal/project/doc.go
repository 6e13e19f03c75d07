// Package project models the application tree a composition run mutates.
//
// A Tree is rooted in the target directory. Every path handed to it is
// slash-separated and relative to that root; paths that would escape the
// root are rejected with ErrOutsideRoot. Writes go through a temp file and a
// rename, so a failed operation never leaves a half-written file behind.
//
// # Insertion markers
//
// Files expose named insertion points as whole comment lines:
//
//	  # boxcar:marker controller.application
//
// InsertAt places text immediately before the marker line, indented like
// the marker, so successive insertions accumulate in call order. Markers are
// registered when a file containing them is written through the Tree, and
// Adopt plants a marker next to anchor text in a file the Tree did not
// create (the framework skeleton). Marker names are unique across the tree.
// StripMarkers removes every marker line once a run is over.
package project
