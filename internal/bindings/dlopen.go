//go:build cgo && !windows

package bindings

/*
#cgo LDFLAGS: -ldl
#include <dlfcn.h>
#include <stdlib.h>

static void *gocuba_dlopen(const char *path) {
	return dlopen(path, RTLD_NOW | RTLD_LOCAL);
}
*/
import "C"

import (
	"fmt"
	"os"
	"sync"
	"unsafe"
)

// library holds the resolved entry points. Read-only after a successful Load;
// reused by every subsequent call. Cuba documents no unload protocol, so the
// handle lives for the rest of the process.
type library struct {
	vegas   unsafe.Pointer
	suave   unsafe.Pointer
	divonne unsafe.Pointer
	cuhre   unsafe.Pointer
	source  string
}

var (
	loadOnce sync.Once
	loadErr  error
	lib      library
)

// Load resolves libcuba and binds the four entry points. Idempotent; the
// first outcome, success or failure, is sticky. CUBACORES is forced to 0
// before the library is opened so the setting takes effect before Cuba can
// spawn worker threads that would call the Go integrand concurrently.
func Load() error {
	loadOnce.Do(func() {
		_ = os.Setenv(EnvCores, "0")

		paths, override := candidatePaths()
		h, source, err := openFirst(paths, override)
		if err != nil {
			loadErr = err
			return
		}
		lib.source = source

		for _, ep := range []struct {
			name string
			dst  *unsafe.Pointer
		}{
			{"Vegas", &lib.vegas},
			{"Suave", &lib.suave},
			{"Divonne", &lib.divonne},
			{"Cuhre", &lib.cuhre},
		} {
			*ep.dst, err = symbol(h, ep.name)
			if err != nil {
				loadErr = err
				return
			}
		}
	})
	return loadErr
}

// Source reports which dlopen candidate resolved libcuba, or "" before a
// successful Load.
func Source() string { return lib.source }

// openFirst tries each candidate in order and keeps the first handle dlopen
// accepts. All candidates failing is a *LoadError naming every attempt.
func openFirst(paths []string, override string) (unsafe.Pointer, string, error) {
	for _, p := range paths {
		cp := C.CString(p)
		h := C.gocuba_dlopen(cp)
		C.free(unsafe.Pointer(cp))
		if h != nil {
			return h, p, nil
		}
	}
	return nil, "", &LoadError{Attempted: paths, Override: override}
}

func symbol(h unsafe.Pointer, name string) (unsafe.Pointer, error) {
	cn := C.CString(name)
	defer C.free(unsafe.Pointer(cn))

	C.dlerror() // clear any stale error
	sym := C.dlsym(h, cn)
	if e := C.dlerror(); e != nil {
		return nil, fmt.Errorf("gocuba: bind %s: %s", name, C.GoString(e))
	}
	if sym == nil {
		return nil, fmt.Errorf("gocuba: bind %s: symbol not found", name)
	}
	return sym, nil
}
