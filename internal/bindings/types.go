package bindings

import (
	"errors"
	"fmt"
	"strings"
	"unsafe"
)

// Environment variables understood by the loader. EnvLibrary overrides the
// library location; EnvCores is Cuba's worker-count control, forced to "0"
// before the first load.
const (
	EnvLibrary = "LIBCUBA"
	EnvCores   = "CUBACORES"
)

var (
	// ErrNotBuilt reports that the native bindings are not implemented for
	// the current platform (Windows, where the dlopen loader is absent).
	ErrNotBuilt = errors.New("gocuba/internal/bindings: native bindings not built")

	// ErrCGONotEnabled signals that the package was compiled without cgo and
	// therefore cannot talk to the native library.
	ErrCGONotEnabled = errors.New("gocuba/internal/bindings: cgo not enabled")
)

// LoadError reports that libcuba could not be resolved from any candidate
// location. Attempted lists every path handed to dlopen in order; Override
// records the LIBCUBA value in effect (empty when unset) so a misconfigured
// override is visible in the message.
type LoadError struct {
	Attempted []string
	Override  string
}

func (e *LoadError) Error() string {
	msg := fmt.Sprintf("gocuba: could not load %s (tried %s)",
		LibraryName(), strings.Join(e.Attempted, ", "))
	if e.Override != "" {
		return msg + fmt.Sprintf("; %s=%s did not resolve", EnvLibrary, e.Override)
	}
	return msg + fmt.Sprintf("; set %s to the library path", EnvLibrary)
}

// CallbackFailure wraps an error raised by a host callback while a native
// routine was running. The public layer remaps it to its own error type.
type CallbackFailure struct {
	Err error
}

func (e *CallbackFailure) Error() string {
	return "gocuba: callback failed during native call: " + e.Err.Error()
}

func (e *CallbackFailure) Unwrap() error { return e.Err }

// IntegrandFunc evaluates a batch of points. x holds nvec*ndim coordinates
// and f must receive nvec*ncomp values, points in row order.
type IntegrandFunc func(ndim, ncomp int, x, f []float64) error

// PeakFinderFunc suggests extra sampling points for Divonne. bounds holds
// ndim (lower, upper) pairs interleaved; the return value is at most max
// points, flat rows of length ndim.
type PeakFinderFunc func(ndim int, bounds []float64, max int) ([]float64, error)

// Report carries the raw outputs of one native call. Integral, Error and Prob
// are parallel per-component arrays of identical length; NRegions is zero for
// Vegas, which has no region concept.
type Report struct {
	NRegions int
	NEval    int
	Fail     int
	Integral []float64
	Error    []float64
	Prob     []float64
}

// VegasArgs is the complete argument set of the native Vegas entry point,
// already validated and defaulted by the caller.
type VegasArgs struct {
	NDim  int
	NComp int

	Integrand IntegrandFunc
	// RawIntegrand, when non-nil, is a pre-bound native function pointer with
	// the Cuba integrand ABI; it bypasses the trampoline and RawUserData is
	// passed through to it verbatim.
	RawIntegrand unsafe.Pointer
	RawUserData  unsafe.Pointer

	NVec      int
	EpsRel    float64
	EpsAbs    float64
	Flags     int
	Seed      int
	MinEval   int
	MaxEval   int
	NStart    int
	NIncrease int
	NBatch    int
	GridNo    int
	StateFile string
}

// SuaveArgs is the argument set of the native Suave entry point.
type SuaveArgs struct {
	NDim  int
	NComp int

	Integrand    IntegrandFunc
	RawIntegrand unsafe.Pointer
	RawUserData  unsafe.Pointer

	NVec     int
	EpsRel   float64
	EpsAbs   float64
	Flags    int
	Seed     int
	MinEval  int
	MaxEval  int
	NNew     int
	NMin     int
	Flatness float64

	StateFile string
}

// DivonneArgs is the argument set of the native Divonne entry point. Given
// holds NGiven rows of LdXGiven coordinates each; nil means no seed points.
type DivonneArgs struct {
	NDim  int
	NComp int

	Integrand    IntegrandFunc
	RawIntegrand unsafe.Pointer
	RawUserData  unsafe.Pointer

	NVec    int
	EpsRel  float64
	EpsAbs  float64
	Flags   int
	Seed    int
	MinEval int
	MaxEval int

	Key1         int
	Key2         int
	Key3         int
	MaxPass      int
	Border       float64
	MaxChisq     float64
	MinDeviation float64

	NGiven   int
	LdXGiven int
	Given    []float64

	NExtra     int
	PeakFinder PeakFinderFunc

	StateFile string
}

// CuhreArgs is the argument set of the native Cuhre entry point. Cuhre is
// deterministic; the ABI carries no seed.
type CuhreArgs struct {
	NDim  int
	NComp int

	Integrand    IntegrandFunc
	RawIntegrand unsafe.Pointer
	RawUserData  unsafe.Pointer

	NVec    int
	EpsRel  float64
	EpsAbs  float64
	Flags   int
	MinEval int
	MaxEval int
	Key     int

	StateFile string
}
