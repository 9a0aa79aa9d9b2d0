//go:build !cgo

package bindings

var errStub = ErrCGONotEnabled
