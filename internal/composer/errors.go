package composer

import (
	"errors"
	"fmt"
	"strings"
)

// ModuleNotFoundError is returned when a requested module name has no
// registered implementation. Nothing is applied for that step.
type ModuleNotFoundError struct {
	Name string
}

func (e *ModuleNotFoundError) Error() string {
	return fmt.Sprintf("module %q is not registered", e.Name)
}

// ModuleApplicationError wraps the cause of a failed module application.
//
// Causes include:
//   - a missing insertion marker or anchor (project.MarkerNotFoundError,
//     project.AnchorNotFoundError)
//   - a file in an unexpected state (project.FileExistsError)
//   - an unmet requirement (MissingRequirementError)
//   - a variant clash (VariantConflictError)
//   - an external command exiting non-zero (CommandError)
type ModuleApplicationError struct {
	Module string
	Cause  error
}

func (e *ModuleApplicationError) Error() string {
	return fmt.Sprintf("module %q failed: %v", e.Module, e.Cause)
}

func (e *ModuleApplicationError) Unwrap() error {
	return e.Cause
}

// MissingRequirementError is the cause when a module requires modules that
// have not been applied earlier in the run.
type MissingRequirementError struct {
	Module   string
	Requires []string
}

func (e *MissingRequirementError) Error() string {
	return fmt.Sprintf("%s requires %s to be applied first", e.Module, strings.Join(e.Requires, ", "))
}

// VariantConflictError is the cause when two modules of the same variant
// group are applied in one run.
type VariantConflictError struct {
	Variant  string
	Module   string
	Existing string
}

func (e *VariantConflictError) Error() string {
	return fmt.Sprintf("%s and %s are alternative %s modules; apply only one", e.Existing, e.Module, e.Variant)
}

// CommandError is the cause when an external command fails.
type CommandError struct {
	Command string
	Err     error
}

func (e *CommandError) Error() string {
	return fmt.Sprintf("command %q: %v", e.Command, e.Err)
}

func (e *CommandError) Unwrap() error {
	return e.Err
}

// IsModuleNotFound reports whether err is, or wraps, a ModuleNotFoundError.
func IsModuleNotFound(err error) bool {
	var nf *ModuleNotFoundError
	return errors.As(err, &nf)
}

// FailedModule returns the module named by a ModuleApplicationError or
// ModuleNotFoundError in err's chain.
func FailedModule(err error) (string, bool) {
	var ae *ModuleApplicationError
	if errors.As(err, &ae) {
		return ae.Module, true
	}
	var nf *ModuleNotFoundError
	if errors.As(err, &nf) {
		return nf.Name, true
	}
	return "", false
}
