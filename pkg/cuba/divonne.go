package cuba

import (
	"fmt"

	"github.com/numkit/gocuba/internal/bindings"
)

// DivonneParams configures the Divonne routine: deterministic partitioning of
// the integration volume followed by Monte-Carlo (or cubature) sampling in
// regions that fail the acceptance criteria.
//
// Key1, Key2, Key3, MaxPass, Border, MaxChisq and MinDeviation have no
// defaults. Divonne's behavior is highly sensitive to them and no safe
// blanket choice exists; callers must pick values for their integrand (the
// Cuba manual discusses the trade-offs).
type DivonneParams struct {
	Params

	// Key1 selects the sampling rule for the partitioning phase, Key2 for the
	// final integration phase, Key3 for the refinement phase.
	Key1 int
	Key2 int
	Key3 int
	// MaxPass bounds the number of partitioning passes after which a region's
	// subdivision stops improving.
	MaxPass int
	// Border is the width of the border of the integration region in which
	// points are not sampled directly but extrapolated from inside.
	Border float64
	// MaxChisq is the maximum chi-square value a region's samples may have to
	// be accepted in the final phase.
	MaxChisq float64
	// MinDeviation is the fraction of the requested error below which a
	// region's deviation is considered negligible during refinement.
	MinDeviation float64

	// Given supplies starting points the partitioning should take into
	// account (known peaks and other troublesome spots), flat rows of
	// LdXGiven coordinates each.
	Given []float64
	// LdXGiven is the row length of Given, >= NDim; 0 means NDim.
	LdXGiven int

	// NExtra is the maximum number of points PeakFinder may suggest per
	// region; 0 disables peak finding and the callback is never invoked.
	NExtra int
	// PeakFinder is consulted for each region to inject additional sample
	// points. Optional.
	PeakFinder PeakFinder
}

func (p DivonneParams) withDefaults() DivonneParams {
	p.Params = p.Params.withDefaults()
	if p.LdXGiven == 0 {
		p.LdXGiven = p.NDim
	}
	return p
}

// nGiven is the number of starting-point rows in Given.
func (p DivonneParams) nGiven() int {
	if p.LdXGiven == 0 {
		return 0
	}
	return len(p.Given) / p.LdXGiven
}

// validate runs after withDefaults; the Params checks run first so LdXGiven
// errors report against a sane NDim.
func (p DivonneParams) validate() error {
	if err := p.Params.validate(); err != nil {
		return err
	}
	if p.LdXGiven < p.NDim {
		return fmt.Errorf("%w: LdXGiven must be >= NDim, got %d < %d", ErrInvalidParams, p.LdXGiven, p.NDim)
	}
	if len(p.Given)%p.LdXGiven != 0 {
		return fmt.Errorf("%w: len(Given)=%d is not a multiple of LdXGiven=%d", ErrInvalidParams, len(p.Given), p.LdXGiven)
	}
	if p.NExtra < 0 {
		return fmt.Errorf("%w: NExtra must be >= 0, got %d", ErrInvalidParams, p.NExtra)
	}
	if p.NExtra > 0 && p.PeakFinder == nil {
		return fmt.Errorf("%w: NExtra > 0 requires a PeakFinder", ErrInvalidParams)
	}
	return nil
}

// Divonne integrates over the unit hypercube with hybrid deterministic /
// Monte-Carlo subdivision. The call blocks until the native routine returns.
func Divonne(p DivonneParams) (*RegionResult, error) {
	p = p.withDefaults()
	if err := p.validate(); err != nil {
		return nil, err
	}

	fn, raw, rawUD := p.integrandFunc()

	var peak bindings.PeakFinderFunc
	if p.PeakFinder != nil {
		finder := p.PeakFinder
		peak = func(ndim int, bounds []float64, max int) ([]float64, error) {
			bs := make([]Bounds, ndim)
			for i := range bs {
				bs[i] = Bounds{Lower: bounds[2*i], Upper: bounds[2*i+1]}
			}
			return finder(bs, max)
		}
	}

	rep, err := bindings.Divonne(bindings.DivonneArgs{
		NDim:         p.NDim,
		NComp:        p.NComp,
		Integrand:    fn,
		RawIntegrand: raw,
		RawUserData:  rawUD,
		NVec:         p.NVec,
		EpsRel:       p.EpsRel,
		EpsAbs:       p.EpsAbs,
		Flags:        p.Flags,
		Seed:         p.Seed,
		MinEval:      p.MinEval,
		MaxEval:      p.MaxEval,
		Key1:         p.Key1,
		Key2:         p.Key2,
		Key3:         p.Key3,
		MaxPass:      p.MaxPass,
		Border:       p.Border,
		MaxChisq:     p.MaxChisq,
		MinDeviation: p.MinDeviation,
		NGiven:       p.nGiven(),
		LdXGiven:     p.LdXGiven,
		Given:        p.Given,
		NExtra:       p.NExtra,
		PeakFinder:   peak,
		StateFile:    p.StateFile,
	})
	if err != nil {
		return nil, remapError("Divonne", err)
	}

	r := newRegionResult(rep)
	return &r, nil
}
