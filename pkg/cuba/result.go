package cuba

import "github.com/numkit/gocuba/internal/bindings"

// Values of the Fail field shared by all four routines. Negative values
// report an NDim or NComp outside the limits libcuba was compiled with.
const (
	FailOK       = 0 // requested accuracy reached within MaxEval
	FailAccuracy = 1 // accuracy not reached; retry with a larger MaxEval
)

// Component is one of the NComp simultaneously computed integrals.
type Component struct {
	Integral float64
	// Error is the estimated absolute error of Integral, always >= 0.
	Error float64
	// Prob is the chi-square-derived confidence indicator for Error: the
	// probability that Error is NOT a reliable estimate, not a probability
	// that Integral is correct.
	Prob float64
}

// Result is the outcome of a Vegas call. Components has length exactly NComp,
// in the integrand's own write order.
type Result struct {
	// NEval is the total number of integrand evaluations.
	NEval int
	// Fail is the routine's status code: FailOK, FailAccuracy, or negative
	// for unsupported NDim/NComp. It is the caller's to interpret; the
	// binding never converts it to an error.
	Fail       int
	Components []Component
}

// RegionResult extends Result with the final count of adaptive regions, which
// Suave, Divonne and Cuhre maintain. Vegas has no region concept and returns
// a plain Result.
type RegionResult struct {
	Result
	NRegions int
}

func newResult(rep bindings.Report) Result {
	comps := make([]Component, len(rep.Integral))
	for i := range comps {
		comps[i] = Component{
			Integral: rep.Integral[i],
			Error:    rep.Error[i],
			Prob:     rep.Prob[i],
		}
	}
	return Result{NEval: rep.NEval, Fail: rep.Fail, Components: comps}
}

func newRegionResult(rep bindings.Report) RegionResult {
	return RegionResult{Result: newResult(rep), NRegions: rep.NRegions}
}
