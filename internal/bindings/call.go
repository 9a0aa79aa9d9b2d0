//go:build cgo && !windows

package bindings

/*
#include <stdlib.h>
#include "cubacall.h"
*/
import "C"

import (
	"sync"
	"unsafe"
)

// callMu serializes native calls. Cuba's own parallelism is disabled at load
// time, and the peak-finder callback has no userdata channel, so one call at
// a time is both the safety model and what makes peak dispatch possible.
var callMu sync.Mutex

// activePeak is the call state the peak-finder trampoline dispatches to.
// Written under callMu before the native call starts, cleared after it
// returns.
var (
	peakMu     sync.Mutex
	activePeak *callState
)

func setActivePeak(s *callState) {
	peakMu.Lock()
	activePeak = s
	peakMu.Unlock()
}

func activePeakState() *callState {
	peakMu.Lock()
	defer peakMu.Unlock()
	return activePeak
}

// callSpec is the trampoline-relevant subset of a routine's arguments.
type callSpec struct {
	ncomp     int
	nvec      int
	fn        IntegrandFunc
	peak      PeakFinderFunc
	raw       unsafe.Pointer
	rawUD     unsafe.Pointer
	statefile string
}

// nativeCall owns the marshaled callback pointers and output buffers of one
// synchronous native invocation.
type nativeCall struct {
	state     *callState
	h         handle
	integrand unsafe.Pointer
	userdata  unsafe.Pointer
	statefile *C.char

	integral []float64
	errors   []float64
	probs    []float64

	nregions C.int
	neval    C.int
	fail     C.int
}

// begin acquires the call lock and marshals the callback arguments. Every
// begin must be paired with finish.
func begin(spec callSpec) *nativeCall {
	callMu.Lock()

	c := &nativeCall{
		integral: make([]float64, spec.ncomp),
		errors:   make([]float64, spec.ncomp),
		probs:    make([]float64, spec.ncomp),
	}

	if spec.fn != nil || spec.peak != nil {
		c.state = &callState{fn: spec.fn, peak: spec.peak, nvec: spec.nvec}
	}
	if spec.fn != nil {
		c.h, c.userdata = put(c.state)
		c.integrand = C.gocuba_integrand_tramp()
	} else {
		// Pre-bound native integrand: passed through verbatim, full speed.
		c.integrand = spec.raw
		c.userdata = spec.rawUD
	}
	if spec.peak != nil {
		setActivePeak(c.state)
	}
	if spec.statefile != "" {
		c.statefile = C.CString(spec.statefile)
	}
	return c
}

// finish releases everything begin set up and surfaces a callback failure
// captured while the native routine was running.
func (c *nativeCall) finish() error {
	if c.statefile != nil {
		C.free(unsafe.Pointer(c.statefile))
		c.statefile = nil
	}

	var err error
	if c.state != nil {
		if c.state.peak != nil {
			setActivePeak(nil)
		}
		if c.h != 0 {
			del(c.h)
		}
		if cbErr := c.state.failure(); cbErr != nil {
			err = &CallbackFailure{Err: cbErr}
		}
	}

	callMu.Unlock()
	return err
}

func (c *nativeCall) report(withRegions bool) Report {
	r := Report{
		NEval:    int(c.neval),
		Fail:     int(c.fail),
		Integral: c.integral,
		Error:    c.errors,
		Prob:     c.probs,
	}
	if withRegions {
		r.NRegions = int(c.nregions)
	}
	return r
}

func doublePtr(s []float64) *C.double {
	if len(s) == 0 {
		return nil
	}
	return (*C.double)(unsafe.Pointer(&s[0]))
}
