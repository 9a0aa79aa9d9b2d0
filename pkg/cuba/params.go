package cuba

import (
	"fmt"
	"unsafe"

	"github.com/numkit/gocuba/internal/bindings"
)

// Defaults applied to zero-valued optional fields. Mirrors the parameter
// table of the Cuba manual.
const (
	DefaultNComp   = 1
	DefaultNVec    = 1
	DefaultEpsRel  = 1e-3
	DefaultEpsAbs  = 1e-12
	DefaultMinEval = 0
	DefaultMaxEval = 50000

	DefaultNStart    = 1000
	DefaultNIncrease = 500
	DefaultNBatch    = 1000
	DefaultGridNo    = 0

	DefaultNNew     = 1000
	DefaultNMin     = 2
	DefaultFlatness = 50.0

	DefaultKey = 0
)

// Params holds the fields shared by all four routines. A Params value is
// read-only for the duration of one call; zero-valued optional fields receive
// the documented defaults before marshaling.
type Params struct {
	// Integrand evaluates the function being integrated. Exactly one of
	// Integrand and NativeIntegrand must be set.
	Integrand Integrand

	// NativeIntegrand is a pre-bound C function pointer with Cuba's integrand
	// ABI: int (*)(const int *ndim, const double x[], const int *ncomp,
	// double f[], void *userdata). It is handed to the library unchanged,
	// skipping the Go trampoline, so pre-compiled integrands run at full
	// native speed. UserData must then be nil or an unsafe.Pointer, which is
	// forwarded verbatim.
	NativeIntegrand unsafe.Pointer

	// NDim is the number of input coordinates; required, >= 1.
	NDim int

	// NComp is the number of integral components computed simultaneously.
	// Defaults to 1.
	NComp int

	// UserData is never interpreted by the binding; it reaches the integrand
	// exactly as given.
	UserData any

	// NVec batches evaluation points per integrand invocation. 1 (the
	// default) disables batching.
	NVec int

	EpsRel float64 // requested relative accuracy, default 1e-3
	EpsAbs float64 // requested absolute accuracy, default 1e-12

	// Flags carries the verbosity level in its low two bits plus per-routine
	// option bits such as FlagLastSamples.
	Flags int

	// Seed selects the randomness source; 0 (the default) keeps the library's
	// default generator. Cuhre is deterministic and ignores it.
	Seed int

	MinEval int // minimum number of integrand evaluations
	MaxEval int // evaluation budget, default 50000; the only run-time bound

	// StateFile names a checkpoint file Cuba uses to suspend and resume a
	// run. The value is passed through unchanged and never opened here.
	StateFile string
}

func (p Params) withDefaults() Params {
	if p.NComp == 0 {
		p.NComp = DefaultNComp
	}
	if p.NVec == 0 {
		p.NVec = DefaultNVec
	}
	if p.EpsRel == 0 {
		p.EpsRel = DefaultEpsRel
	}
	if p.EpsAbs == 0 {
		p.EpsAbs = DefaultEpsAbs
	}
	if p.MaxEval == 0 {
		p.MaxEval = DefaultMaxEval
	}
	return p
}

// validate runs after withDefaults and before any native resource is touched.
func (p Params) validate() error {
	if p.NDim < 1 {
		return fmt.Errorf("%w: NDim must be >= 1, got %d", ErrInvalidParams, p.NDim)
	}
	if p.NComp < 1 {
		return fmt.Errorf("%w: NComp must be >= 1, got %d", ErrInvalidParams, p.NComp)
	}
	if p.NVec < 1 {
		return fmt.Errorf("%w: NVec must be >= 1, got %d", ErrInvalidParams, p.NVec)
	}
	if p.Integrand == nil && p.NativeIntegrand == nil {
		return fmt.Errorf("%w: an integrand is required", ErrInvalidParams)
	}
	if p.Integrand != nil && p.NativeIntegrand != nil {
		return fmt.Errorf("%w: Integrand and NativeIntegrand are mutually exclusive", ErrInvalidParams)
	}
	if p.NativeIntegrand != nil && p.UserData != nil {
		if _, ok := p.UserData.(unsafe.Pointer); !ok {
			return fmt.Errorf("%w: UserData must be an unsafe.Pointer when NativeIntegrand is set", ErrInvalidParams)
		}
	}
	if p.MinEval < 0 {
		return fmt.Errorf("%w: MinEval must be >= 0, got %d", ErrInvalidParams, p.MinEval)
	}
	if p.MaxEval < 1 {
		return fmt.Errorf("%w: MaxEval must be >= 1, got %d", ErrInvalidParams, p.MaxEval)
	}
	if p.Seed < 0 {
		return fmt.Errorf("%w: Seed must be >= 0, got %d", ErrInvalidParams, p.Seed)
	}
	return nil
}

// integrandFunc splits the request's callable into the form the bindings
// layer takes: either a closure the trampoline dispatches to, or the raw
// native pointer plus its verbatim userdata.
func (p Params) integrandFunc() (fn bindings.IntegrandFunc, raw, rawUD unsafe.Pointer) {
	if p.NativeIntegrand != nil {
		ud, _ := p.UserData.(unsafe.Pointer)
		return nil, p.NativeIntegrand, ud
	}
	integrand := p.Integrand
	userData := p.UserData
	return func(ndim, ncomp int, x, f []float64) error {
		return integrand(ndim, ncomp, x, f, userData)
	}, nil, nil
}
