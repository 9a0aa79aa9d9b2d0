package cuba

import (
	"errors"
	"fmt"

	"github.com/numkit/gocuba/internal/bindings"
)

var (
	// ErrInvalidParams flags a malformed request, detected before any native
	// resource is touched. The wrapping message names the offending field.
	ErrInvalidParams = errors.New("cuba: invalid parameters")

	// ErrNotBuilt reports that the native bindings are not implemented for
	// this platform (Windows).
	ErrNotBuilt = bindings.ErrNotBuilt

	// ErrCGONotEnabled signals a build without cgo support; the binding
	// cannot reach the native library on such builds.
	ErrCGONotEnabled = bindings.ErrCGONotEnabled
)

// LoadError reports that libcuba could not be resolved. Attempted lists every
// location handed to the dynamic loader in order; Override is the EnvLibrary
// value in effect, empty when unset. The failure is sticky: once loading has
// failed, every later call fails the same way.
type LoadError struct {
	Attempted []string
	Override  string
	Err       error
}

func (e *LoadError) Error() string { return e.Err.Error() }

func (e *LoadError) Unwrap() error { return e.Err }

// CallbackError reports that the integrand or peak finder failed while the
// named routine was running. The native call was aborted at the earliest
// point the library supports; the process stays usable for further calls.
type CallbackError struct {
	Routine string
	Err     error
}

func (e *CallbackError) Error() string {
	return fmt.Sprintf("cuba: %s: callback failed: %v", e.Routine, e.Err)
}

func (e *CallbackError) Unwrap() error { return e.Err }

// remapError converts bindings-layer errors to public API errors.
func remapError(routine string, err error) error {
	if err == nil {
		return nil
	}
	var le *bindings.LoadError
	if errors.As(err, &le) {
		return &LoadError{Attempted: le.Attempted, Override: le.Override, Err: le}
	}
	var cf *bindings.CallbackFailure
	if errors.As(err, &cf) {
		return &CallbackError{Routine: routine, Err: cf.Err}
	}
	return err
}
