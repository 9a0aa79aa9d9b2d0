//go:build cgo && !windows

package bindings

/*
#include "cubacall.h"
*/
import "C"

// Vegas invokes the native Vegas entry point synchronously. The returned
// Report never has a region count; Vegas has no region concept.
func Vegas(a VegasArgs) (Report, error) {
	if err := Load(); err != nil {
		return Report{}, err
	}

	c := begin(callSpec{
		ncomp:     a.NComp,
		nvec:      a.NVec,
		fn:        a.Integrand,
		raw:       a.RawIntegrand,
		rawUD:     a.RawUserData,
		statefile: a.StateFile,
	})

	C.gocuba_vegas(lib.vegas,
		C.int(a.NDim), C.int(a.NComp), c.integrand, c.userdata, C.int(a.NVec),
		C.double(a.EpsRel), C.double(a.EpsAbs), C.int(a.Flags), C.int(a.Seed),
		C.int(a.MinEval), C.int(a.MaxEval),
		C.int(a.NStart), C.int(a.NIncrease), C.int(a.NBatch), C.int(a.GridNo),
		c.statefile,
		&c.neval, &c.fail,
		doublePtr(c.integral), doublePtr(c.errors), doublePtr(c.probs))

	if err := c.finish(); err != nil {
		return Report{}, err
	}
	return c.report(false), nil
}
