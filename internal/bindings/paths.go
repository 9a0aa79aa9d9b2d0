package bindings

import (
	"os"
	"path/filepath"
	"runtime"
)

// LibraryName returns the platform file name of the Cuba shared library.
func LibraryName() string {
	if runtime.GOOS == "darwin" {
		return "libcuba.dylib"
	}
	return "libcuba.so"
}

// candidatePaths returns the dlopen candidates in resolution order: the bare
// library name (system search path), the LIBCUBA override when set, and a
// dist/ directory next to the running executable. The override is returned
// separately so load failures can call it out.
func candidatePaths() (paths []string, override string) {
	paths = append(paths, LibraryName())

	override = os.Getenv(EnvLibrary)
	if override != "" {
		paths = append(paths, override)
	}

	if exe, err := os.Executable(); err == nil {
		paths = append(paths, filepath.Join(filepath.Dir(exe), "dist", LibraryName()))
	}
	return paths, override
}
