//go:build !cgo || windows

package bindings

// Stub implementations for builds without native support. The package
// compiles everywhere; every native operation reports errStub, which names
// the reason: ErrCGONotEnabled on non-cgo builds, ErrNotBuilt on Windows.

func Load() error { return errStub }

func Source() string { return "" }

func Vegas(VegasArgs) (Report, error) { return Report{}, errStub }

func Suave(SuaveArgs) (Report, error) { return Report{}, errStub }

func Divonne(DivonneArgs) (Report, error) { return Report{}, errStub }

func Cuhre(CuhreArgs) (Report, error) { return Report{}, errStub }
