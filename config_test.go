package main

import (
	"os"
	"path/filepath"
	"testing"
)

func TestEnvDefaults(t *testing.T) {
	t.Setenv(envTicks, "")
	t.Setenv(envViewW, "wide")
	if got := envInt(envTicks, 7); got != 7 {
		t.Fatalf("unset int = %d, want 7", got)
	}
	if got := envFloat(envViewW, 1000); got != 1000 {
		t.Fatalf("bad float = %v, want 1000", got)
	}
	if _, err := getEnvVariable(""); err == nil {
		t.Fatalf("expected error for empty name")
	}
}

func TestInitConfigLoadsFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "test.env")
	if err := os.WriteFile(path, []byte(envTicks+"=42\n"+envPNGDir+"=frames\n"), 0644); err != nil {
		t.Fatal(err)
	}
	t.Setenv(envTicks, "")
	t.Setenv(envPNGDir, "")
	os.Unsetenv(envTicks)
	os.Unsetenv(envPNGDir)

	initConfig(path)
	if got := envInt(envTicks, 0); got != 42 {
		t.Fatalf("ticks = %d, want 42", got)
	}
	if got := envString(envPNGDir, ""); got != "frames" {
		t.Fatalf("png dir = %q, want frames", got)
	}
}

func TestInitConfigMissingFile(t *testing.T) {
	initConfig(filepath.Join(t.TempDir(), "nope.env"))
}
