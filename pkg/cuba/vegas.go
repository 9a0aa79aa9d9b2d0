package cuba

import "github.com/numkit/gocuba/internal/bindings"

// VegasParams configures the Vegas routine: Monte-Carlo sampling on an
// importance grid that adapts between iterations.
type VegasParams struct {
	Params

	// NStart is the number of evaluations in the first iteration. Default 1000.
	NStart int
	// NIncrease is the evaluation increase per iteration. Default 500.
	NIncrease int
	// NBatch is the number of points sampled per internal batch. Default 1000.
	NBatch int
	// GridNo selects one of the library's internal grid slots for reuse
	// across calls; 0, the default, uses a fresh grid. Negative values keep
	// the grid for the next call in the same slot.
	GridNo int
}

func (p VegasParams) withDefaults() VegasParams {
	p.Params = p.Params.withDefaults()
	if p.NStart == 0 {
		p.NStart = DefaultNStart
	}
	if p.NIncrease == 0 {
		p.NIncrease = DefaultNIncrease
	}
	if p.NBatch == 0 {
		p.NBatch = DefaultNBatch
	}
	return p
}

// Vegas integrates over the unit hypercube with stratified Monte-Carlo
// sampling. The call blocks until the native routine returns. Fail is -1 when
// NDim or -2 when NComp exceeds what libcuba was compiled for.
func Vegas(p VegasParams) (*Result, error) {
	p = p.withDefaults()
	if err := p.Params.validate(); err != nil {
		return nil, err
	}

	fn, raw, rawUD := p.integrandFunc()
	rep, err := bindings.Vegas(bindings.VegasArgs{
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
		NStart:       p.NStart,
		NIncrease:    p.NIncrease,
		NBatch:       p.NBatch,
		GridNo:       p.GridNo,
		StateFile:    p.StateFile,
	})
	if err != nil {
		return nil, remapError("Vegas", err)
	}

	r := newResult(rep)
	return &r, nil
}
