package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestResourceDir(t *testing.T) {
	t.Setenv(ResourceDirEnv, "")
	if got := ResourceDir(); got != DefaultResourceDir {
		t.Errorf("Expected %q, got %q", DefaultResourceDir, got)
	}

	t.Setenv(ResourceDirEnv, "/opt/math-defense")
	if got := ResourceDir(); got != "/opt/math-defense" {
		t.Errorf("Expected env override, got %q", got)
	}
}

func TestLoadEnvMissingFileIsNotAnError(t *testing.T) {
	if err := LoadEnv(filepath.Join(t.TempDir(), "absent.env")); err != nil {
		t.Fatalf("LoadEnv failed: %v", err)
	}
}

func TestLoadEnvSetsResourceDir(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".env")
	if err := os.WriteFile(path, []byte(ResourceDirEnv+"=/tmp/res\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	t.Setenv(ResourceDirEnv, "")
	os.Unsetenv(ResourceDirEnv)

	if err := LoadEnv(path); err != nil {
		t.Fatalf("LoadEnv failed: %v", err)
	}
	if got := ResourceDir(); got != "/tmp/res" {
		t.Errorf("Expected /tmp/res, got %q", got)
	}
}

func TestSeed(t *testing.T) {
	tests := []struct {
		raw     string
		want    int64
		wantErr bool
	}{
		{"", 0, false},
		{"42", 42, false},
		{"-7", -7, false},
		{"abc", 0, true},
	}
	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			t.Setenv(SeedEnv, tt.raw)
			got, err := Seed()
			if (err != nil) != tt.wantErr || got != tt.want {
				t.Errorf("Seed() = %d, %v; want %d, error %v", got, err, tt.want, tt.wantErr)
			}
		})
	}
}
