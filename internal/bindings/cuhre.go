//go:build cgo && !windows

package bindings

/*
#include "cubacall.h"
*/
import "C"

// Cuhre invokes the native Cuhre entry point synchronously. The routine is
// fully deterministic; the ABI carries no seed argument.
func Cuhre(a CuhreArgs) (Report, error) {
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

	C.gocuba_cuhre(lib.cuhre,
		C.int(a.NDim), C.int(a.NComp), c.integrand, c.userdata, C.int(a.NVec),
		C.double(a.EpsRel), C.double(a.EpsAbs), C.int(a.Flags),
		C.int(a.MinEval), C.int(a.MaxEval), C.int(a.Key),
		c.statefile,
		&c.nregions, &c.neval, &c.fail,
		doublePtr(c.integral), doublePtr(c.errors), doublePtr(c.probs))

	if err := c.finish(); err != nil {
		return Report{}, err
	}
	return c.report(true), nil
}
