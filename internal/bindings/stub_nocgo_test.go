//go:build !cgo

package bindings

import (
	"errors"
	"testing"
)

func TestStubsReportCGONotEnabled(t *testing.T) {
	if err := Load(); !errors.Is(err, ErrCGONotEnabled) {
		t.Fatalf("Load = %v, want ErrCGONotEnabled", err)
	}
	if _, err := Vegas(VegasArgs{}); !errors.Is(err, ErrCGONotEnabled) {
		t.Fatalf("Vegas = %v, want ErrCGONotEnabled", err)
	}
	if _, err := Cuhre(CuhreArgs{}); !errors.Is(err, ErrCGONotEnabled) {
		t.Fatalf("Cuhre = %v, want ErrCGONotEnabled", err)
	}
	if src := Source(); src != "" {
		t.Fatalf("Source = %q, want empty without a loaded library", src)
	}
}
