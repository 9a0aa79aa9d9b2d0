// Package cuba wraps the Cuba library's four routines for multidimensional
// numerical integration over the unit hypercube: Vegas, Suave, Divonne and
// Cuhre. The algorithms run inside libcuba, which is resolved at runtime; this
// package owns the boundary: translating Go integrands into native-callable
// entry points, marshaling each routine's positional argument list, and
// unpacking the fixed-layout output buffers into per-component results.
//
// A call is synchronous and blocking. The library's internal parallelism is
// disabled unconditionally before first load (CUBACORES=0): Go integrands are
// arbitrary closures and concurrent native invocation would race on whatever
// they capture. Bound long runs with MaxEval; there is no cancellation.
//
// The Fail field of a result is data, not an error: 0 means the requested
// accuracy was reached, 1 means it was not within MaxEval, and negative
// values report dimension or component counts the library does not support.
package cuba
