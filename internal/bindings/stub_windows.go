//go:build cgo && windows

package bindings

// The dlopen loader is not implemented on Windows.
var errStub = ErrNotBuilt
