//go:build cgo && !windows

package bindings

/*
#include "cubacall.h"
*/
import "C"

import "unsafe"

// Divonne invokes the native Divonne entry point synchronously. Given points
// bias the initial partitioning; the peak-finder trampoline is handed over
// only when a Go peak finder is present, otherwise Cuba sees a NULL pointer.
func Divonne(a DivonneArgs) (Report, error) {
	if err := Load(); err != nil {
		return Report{}, err
	}

	c := begin(callSpec{
		ncomp:     a.NComp,
		nvec:      a.NVec,
		fn:        a.Integrand,
		peak:      a.PeakFinder,
		raw:       a.RawIntegrand,
		rawUD:     a.RawUserData,
		statefile: a.StateFile,
	})

	var given *C.double
	if a.NGiven > 0 {
		given = doublePtr(a.Given)
	}
	var peakfinder unsafe.Pointer
	if a.PeakFinder != nil {
		peakfinder = C.gocuba_peakfinder_tramp()
	}

	C.gocuba_divonne(lib.divonne,
		C.int(a.NDim), C.int(a.NComp), c.integrand, c.userdata, C.int(a.NVec),
		C.double(a.EpsRel), C.double(a.EpsAbs), C.int(a.Flags), C.int(a.Seed),
		C.int(a.MinEval), C.int(a.MaxEval),
		C.int(a.Key1), C.int(a.Key2), C.int(a.Key3), C.int(a.MaxPass),
		C.double(a.Border), C.double(a.MaxChisq), C.double(a.MinDeviation),
		C.int(a.NGiven), C.int(a.LdXGiven), given,
		C.int(a.NExtra), peakfinder,
		c.statefile,
		&c.nregions, &c.neval, &c.fail,
		doublePtr(c.integral), doublePtr(c.errors), doublePtr(c.probs))

	if err := c.finish(); err != nil {
		return Report{}, err
	}
	return c.report(true), nil
}
