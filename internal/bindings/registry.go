package bindings

import (
	"sync"
	"unsafe"
)

// callState is the per-call context the trampolines dispatch to. Cuba carries
// its registry handle in the opaque userdata argument, so the callbacks can
// recover the Go closures without native code knowing anything about Go.
type callState struct {
	fn   IntegrandFunc
	peak PeakFinderFunc
	nvec int

	mu  sync.Mutex
	err error
}

// fail records the first boundary failure; later ones are dropped so the
// error surfaced to the caller is the one that triggered the abort.
func (s *callState) fail(err error) {
	s.mu.Lock()
	if s.err == nil {
		s.err = err
	}
	s.mu.Unlock()
}

func (s *callState) failure() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.err
}

type handle uintptr

var (
	regMu sync.Mutex
	next  handle = 1
	reg          = map[handle]*callState{}
)

func put(s *callState) (handle, unsafe.Pointer) {
	regMu.Lock()
	h := next
	next++
	reg[h] = s
	regMu.Unlock()
	return h, unsafe.Pointer(uintptr(h))
}

func get(ptr unsafe.Pointer) (*callState, bool) {
	h := handle(uintptr(ptr))
	regMu.Lock()
	s, ok := reg[h]
	regMu.Unlock()
	return s, ok
}

func del(h handle) {
	regMu.Lock()
	delete(reg, h)
	regMu.Unlock()
}
