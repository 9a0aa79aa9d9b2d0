package cuba

import "github.com/numkit/gocuba/internal/bindings"

// SuaveParams configures the Suave routine: Vegas-style importance sampling
// inside regions that are adaptively split, a region being accepted once its
// chi-square probability and relative error clear the requested accuracy.
type SuaveParams struct {
	Params

	// NNew is the number of new integrand evaluations per subdivision.
	// Default 1000.
	NNew int
	// NMin is the minimum number of samples a former pass must contribute to
	// a region for its value to be considered. Default 2.
	NMin int
	// Flatness is the exponent weighting how prominently outliers figure in
	// the fluctuation measure; larger values suit flatter integrands.
	// Default 50.
	Flatness float64
}

func (p SuaveParams) withDefaults() SuaveParams {
	p.Params = p.Params.withDefaults()
	if p.NNew == 0 {
		p.NNew = DefaultNNew
	}
	if p.NMin == 0 {
		p.NMin = DefaultNMin
	}
	if p.Flatness == 0 {
		p.Flatness = DefaultFlatness
	}
	return p
}

// Suave integrates over the unit hypercube with subregion-adaptive
// Monte-Carlo sampling. The call blocks until the native routine returns.
func Suave(p SuaveParams) (*RegionResult, error) {
	p = p.withDefaults()
	if err := p.Params.validate(); err != nil {
		return nil, err
	}

	fn, raw, rawUD := p.integrandFunc()
	rep, err := bindings.Suave(bindings.SuaveArgs{
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
		NNew:         p.NNew,
		NMin:         p.NMin,
		Flatness:     p.Flatness,
		StateFile:    p.StateFile,
	})
	if err != nil {
		return nil, remapError("Suave", err)
	}

	r := newRegionResult(rep)
	return &r, nil
}
