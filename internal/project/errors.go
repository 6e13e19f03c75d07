package project

import (
	"errors"
	"fmt"
)

// ErrOutsideRoot is returned for paths that would resolve outside the project root.
var ErrOutsideRoot = errors.New("path escapes project root")

// MarkerNotFoundError is returned when an insertion names a marker that no
// file in the tree currently exposes.
type MarkerNotFoundError struct {
	Name string
}

func (e *MarkerNotFoundError) Error() string {
	return fmt.Sprintf("insertion marker %q not found", e.Name)
}

// AnchorNotFoundError is returned when anchor text is missing from a file.
type AnchorNotFoundError struct {
	Path   string
	Anchor string
}

func (e *AnchorNotFoundError) Error() string {
	return fmt.Sprintf("anchor %q not found in %s", e.Anchor, e.Path)
}

// FileExistsError is returned when a file would be created over an existing one
// without force.
type FileExistsError struct {
	Path string
}

func (e *FileExistsError) Error() string {
	return fmt.Sprintf("%s already exists", e.Path)
}

// DuplicateMarkerError is returned when a marker name is already exposed by
// another file. Marker names are unique across the tree.
type DuplicateMarkerError struct {
	Name     string
	Path     string
	Existing string
}

func (e *DuplicateMarkerError) Error() string {
	if e.Path == e.Existing {
		return fmt.Sprintf("marker %q appears more than once in %s", e.Name, e.Path)
	}
	return fmt.Sprintf("marker %q in %s is already exposed by %s", e.Name, e.Path, e.Existing)
}

// NamespaceFinalizedError is returned when a route namespace is mounted into
// or finalized after it has already been written.
type NamespaceFinalizedError struct {
	Namespace string
}

func (e *NamespaceFinalizedError) Error() string {
	return fmt.Sprintf("route namespace %q is already finalized", e.Namespace)
}

// IsMarkerNotFound reports whether err is, or wraps, a MarkerNotFoundError.
func IsMarkerNotFound(err error) bool {
	var me *MarkerNotFoundError
	return errors.As(err, &me)
}
