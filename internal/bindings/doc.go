// Package bindings is the only package that talks to libcuba. It isolates
// every cgo construct behind a plain-Go API so the rest of the module stays
// free of C types and pointer arithmetic.
//
// The library is not linked at build time. Load resolves it with dlopen at
// first use, trying the system search path, the LIBCUBA override and a dist/
// directory next to the executable, then binds the four entry points with
// dlsym. The outcome is sticky for the life of the process.
//
// Callbacks cross the boundary through exported trampolines with Cuba's fixed
// C signatures. The integrand trampoline recovers its Go closure from a
// handle registry via the userdata argument; the peak-finder ABI carries no
// userdata, so its trampoline reads a package-level slot that is only valid
// while a native call is in flight. Native calls are serialized and Cuba's
// worker-process fork is disabled (CUBACORES=0) before the first load, which
// is what makes that slot sound.
//
// Callback errors and panics never unwind through native frames: they are
// recorded on the call state, the run is aborted with a negative return
// value, and the failure resurfaces as *CallbackFailure after the native
// routine returns.
//
// Non-cgo and Windows builds compile against stubs: non-cgo builds report
// ErrCGONotEnabled, Windows builds ErrNotBuilt.
package bindings
