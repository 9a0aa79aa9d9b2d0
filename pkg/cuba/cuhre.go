package cuba

import "github.com/numkit/gocuba/internal/bindings"

// CuhreParams configures the Cuhre routine: deterministic subdivision with
// fixed-degree cubature rules. Cuhre has no stochastic elements; the embedded
// Seed field is ignored.
type CuhreParams struct {
	Params

	// Key selects the cubature rule's degree. 0 picks the library default for
	// the dimension; 7, 9, 11 and 13 select specific rules where available.
	Key int
}

// Cuhre integrates over the unit hypercube with deterministic cubature-rule
// subdivision. The call blocks until the native routine returns.
func Cuhre(p CuhreParams) (*RegionResult, error) {
	p.Params = p.Params.withDefaults()
	if err := p.Params.validate(); err != nil {
		return nil, err
	}

	fn, raw, rawUD := p.integrandFunc()
	rep, err := bindings.Cuhre(bindings.CuhreArgs{
		NDim:         p.NDim,
		NComp:        p.NComp,
		Integrand:    fn,
		RawIntegrand: raw,
		RawUserData:  rawUD,
		NVec:         p.NVec,
		EpsRel:       p.EpsRel,
		EpsAbs:       p.EpsAbs,
		Flags:        p.Flags,
		MinEval:      p.MinEval,
		MaxEval:      p.MaxEval,
		Key:          p.Key,
		StateFile:    p.StateFile,
	})
	if err != nil {
		return nil, remapError("Cuhre", err)
	}

	r := newRegionResult(rep)
	return &r, nil
}
