package bindings

import (
	"runtime"
	"strings"
	"testing"
)

func TestLibraryName(t *testing.T) {
	name := LibraryName()
	if runtime.GOOS == "darwin" {
		if name != "libcuba.dylib" {
			t.Fatalf("expected libcuba.dylib, got %s", name)
		}
		return
	}
	if name != "libcuba.so" {
		t.Fatalf("expected libcuba.so, got %s", name)
	}
}

func TestCandidatePathsWithoutOverride(t *testing.T) {
	t.Setenv(EnvLibrary, "")

	paths, override := candidatePaths()
	if override != "" {
		t.Fatalf("expected no override, got %q", override)
	}
	if len(paths) == 0 || paths[0] != LibraryName() {
		t.Fatalf("expected bare library name first, got %v", paths)
	}
	for _, p := range paths[1:] {
		if p == LibraryName() {
			t.Fatalf("bare name listed twice: %v", paths)
		}
	}
}

func TestCandidatePathsWithOverride(t *testing.T) {
	t.Setenv(EnvLibrary, "/opt/cuba/libcuba.so")

	paths, override := candidatePaths()
	if override != "/opt/cuba/libcuba.so" {
		t.Fatalf("override not reported: %q", override)
	}
	if len(paths) < 2 || paths[1] != "/opt/cuba/libcuba.so" {
		t.Fatalf("override must be the second candidate, got %v", paths)
	}
	if paths[0] != LibraryName() {
		t.Fatalf("system search path must stay first, got %v", paths)
	}
}

func TestLoadErrorMessage(t *testing.T) {
	err := &LoadError{
		Attempted: []string{LibraryName(), "/opt/cuba/libcuba.so"},
		Override:  "/opt/cuba/libcuba.so",
	}
	msg := err.Error()
	if !strings.Contains(msg, "/opt/cuba/libcuba.so") {
		t.Fatalf("message must name the override path: %s", msg)
	}
	if !strings.Contains(msg, EnvLibrary) {
		t.Fatalf("message must name the override variable: %s", msg)
	}

	noOverride := &LoadError{Attempted: []string{LibraryName()}}
	if !strings.Contains(noOverride.Error(), EnvLibrary) {
		t.Fatalf("message must point at %s when unset: %s", EnvLibrary, noOverride.Error())
	}
}
