// Package golden compares test output against checked-in fixture files.
// Run tests with -update to rewrite the fixtures from current output.
package golden

import (
	"flag"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

var update = flag.Bool("update", false, "update golden files")

// Dir returns the testdata directory next to the calling test file.
func Dir(t *testing.T) string {
	t.Helper()
	_, filename, _, ok := runtime.Caller(1)
	if !ok {
		t.Fatalf("runtime.Caller failed")
	}
	return filepath.Join(filepath.Dir(filename), "testdata")
}

// Check compares got against the golden file <dir>/<name>.golden and fails
// with a line diff on mismatch. With -update it rewrites the file instead.
func Check(t *testing.T, dir, name, got string) {
	t.Helper()
	if *update {
		write(t, dir, name, got)
		return
	}
	want := read(t, dir, name)
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("%s.golden mismatch (-want +got):\n%s", name, diff)
	}
}

func read(t *testing.T, dir, name string) string {
	t.Helper()
	safeName(t, name)

	path := filepath.Join(dir, name+".golden")
	data, err := os.ReadFile(path) //nolint:gosec // testdata path controlled by test
	if err != nil {
		if os.IsNotExist(err) {
			return ""
		}
		t.Fatalf("read golden %s: %v", path, err)
	}
	return string(data)
}

func write(t *testing.T, dir, name, content string) {
	t.Helper()
	safeName(t, name)

	if err := os.MkdirAll(dir, 0o750); err != nil {
		t.Fatalf("mkdir testdata: %v", err)
	}
	path := filepath.Join(dir, name+".golden")
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("write golden %s: %v", path, err)
	}
}

func safeName(t *testing.T, name string) {
	t.Helper()
	if strings.Contains(name, "..") || strings.ContainsAny(name, `/\`) {
		t.Fatalf("invalid golden name %q", name)
	}
}
