//go:build cgo && !windows

package bindings

import "C"

import (
	"fmt"
	"unsafe"
)

// abortCode is the integrand return value on which Cuba aborts the run
// immediately rather than after the current iteration.
const abortCode = -999

// gocubaIntegrand is the fixed-signature entry point Cuba invokes on every
// evaluation. userdata carries the registry handle of the current call; the
// x and f views are valid only for the duration of this invocation. A host
// failure is recorded on the call state and converted to an abort code;
// nothing is allowed to unwind through the native frames.
//
//export gocubaIntegrand
func gocubaIntegrand(ndim *C.int, x *C.double, ncomp *C.int, f *C.double, userdata unsafe.Pointer) C.int {
	s, ok := get(userdata)
	if !ok || s.fn == nil {
		return abortCode
	}

	nd := int(*ndim)
	nc := int(*ncomp)
	xs := unsafe.Slice((*float64)(unsafe.Pointer(x)), nd*s.nvec)
	fs := unsafe.Slice((*float64)(unsafe.Pointer(f)), nc*s.nvec)

	if err := invokeIntegrand(s, nd, nc, xs, fs); err != nil {
		s.fail(err)
		return abortCode
	}
	return 0
}

func invokeIntegrand(s *callState, ndim, ncomp int, x, f []float64) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("integrand panic: %v", r)
		}
	}()
	return s.fn(ndim, ncomp, x, f)
}

// gocubaPeakFinder is Divonne's peak-finder entry point. The Cuba signature
// carries no userdata, so dispatch goes through the call slot published while
// the native call is running (calls are serialized, see call.go). b holds
// ndim (lower, upper) pairs; n is in/out: capacity on entry, the number of
// suggested points on return.
//
//export gocubaPeakFinder
func gocubaPeakFinder(ndim *C.int, b *C.double, n *C.int, x *C.double) {
	s := activePeakState()
	if s == nil || s.peak == nil {
		*n = 0
		return
	}

	nd := int(*ndim)
	max := int(*n)
	if max <= 0 {
		*n = 0
		return
	}

	bounds := unsafe.Slice((*float64)(unsafe.Pointer(b)), 2*nd)
	pts, err := invokePeakFinder(s, nd, bounds, max)
	if err != nil {
		s.fail(err)
		*n = 0
		return
	}
	if len(pts)%nd != 0 {
		s.fail(fmt.Errorf("peak finder returned %d values, not a multiple of ndim=%d", len(pts), nd))
		*n = 0
		return
	}
	if len(pts) > max*nd {
		pts = pts[:max*nd]
	}

	out := unsafe.Slice((*float64)(unsafe.Pointer(x)), max*nd)
	copy(out, pts)
	*n = C.int(len(pts) / nd)
}

func invokePeakFinder(s *callState, ndim int, bounds []float64, max int) (pts []float64, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("peak finder panic: %v", r)
		}
	}()
	return s.peak(ndim, bounds, max)
}
