package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/ibnicena/pycppgen/internal/config"
)

func writeFile(t *testing.T, contents string) string {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, "pycppgen.yaml")
	if err := os.WriteFile(path, []byte(contents), 0o644); err != nil {
		t.Fatalf("failed to write fixture: %v", err)
	}
	return path
}

func TestLoadMissingPathReturnsDefaults(t *testing.T) {
	dir := t.TempDir()
	wd, err := os.Getwd()
	if err != nil {
		t.Fatalf("Getwd: %v", err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatalf("Chdir: %v", err)
	}
	defer os.Chdir(wd)

	opts, err := config.Load("")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if opts.IndentWidth != 4 || opts.FallbackType != "int" {
		t.Errorf("expected defaults, got %+v", opts)
	}
}

func TestLoadOverridesDefaults(t *testing.T) {
	path := writeFile(t, "indent_width: 2\nfallback_type: auto\nnumpy_alias: npy\n")

	opts, err := config.Load(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if opts.IndentWidth != 2 {
		t.Errorf("expected indent_width override, got %d", opts.IndentWidth)
	}
	if opts.FallbackType != "auto" {
		t.Errorf("expected fallback_type override, got %q", opts.FallbackType)
	}
	if opts.NumpyAlias != "npy" {
		t.Errorf("expected numpy_alias override, got %q", opts.NumpyAlias)
	}
}

func TestLoadPartialOverrideKeepsOtherDefaults(t *testing.T) {
	path := writeFile(t, "fallback_type: auto\n")

	opts, err := config.Load(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if opts.IndentWidth != 4 {
		t.Errorf("expected default indent_width to survive a partial override, got %d", opts.IndentWidth)
	}
	if opts.FallbackType != "auto" {
		t.Errorf("expected fallback_type override, got %q", opts.FallbackType)
	}
}

func TestLoadRejectsInvalidIndentWidth(t *testing.T) {
	path := writeFile(t, "indent_width: 0\n")

	if _, err := config.Load(path); err == nil {
		t.Fatal("expected an error for indent_width: 0")
	}
}

func TestLoadRejectsMissingFile(t *testing.T) {
	if _, err := config.Load(filepath.Join(t.TempDir(), "does-not-exist.yaml")); err == nil {
		t.Fatal("expected an error for a missing config file")
	}
}
