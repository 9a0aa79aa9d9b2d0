package cuba

import (
	"github.com/numkit/gocuba/internal/bindings"
)

// Environment variables the binding reads at first use. EnvLibrary overrides
// where libcuba is looked up; EnvCores is Cuba's worker-count control, forced
// to "0" before the library is loaded.
const (
	EnvLibrary = bindings.EnvLibrary
	EnvCores   = bindings.EnvCores
)

// Integrand evaluates the function being integrated. x holds ndim coordinates
// for each of the (up to NVec) batched points in row order; the integrand
// must write ncomp values per point into f, same order. userData is the
// request's UserData, passed through verbatim and never interpreted.
//
// Returning an error aborts the native run; the error resurfaces from the
// routine call wrapped in *CallbackError.
type Integrand func(ndim, ncomp int, x, f []float64, userData any) error

// Bounds describes one dimension's integration bounds as handed to a peak
// finder. The field layout matches the native two-double record.
type Bounds struct {
	Lower float64
	Upper float64
}

// PeakFinder suggests extra sampling points for Divonne: given the region
// bounds, it returns up to max points as flat rows of len(bounds) coordinates.
// Returning an error aborts the run the same way an integrand error does.
type PeakFinder func(bounds []Bounds, max int) ([]float64, error)

// Flags bits shared by all routines. The low two bits of the Flags field set
// the verbosity level 0-3; the remaining bits select library options.
const (
	// FlagLastSamples bases the final result only on the last, largest set of
	// samples (Vegas and Suave).
	FlagLastSamples = 1 << 2
)

// Available loads the native library if that has not happened yet and reports
// whether the four entry points are usable. Resolution failures are returned
// as *LoadError; non-cgo builds report ErrCGONotEnabled, Windows builds
// ErrNotBuilt.
func Available() error {
	return remapError("Load", bindings.Load())
}

// LibrarySource reports where libcuba was found: the bare library name when
// the system search path resolved it, otherwise the opened path. Empty before
// a successful load.
func LibrarySource() string {
	return bindings.Source()
}
