package config

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestResourceFilesIncludesBackgrounds(t *testing.T) {
	files := ResourceFiles([]string{"earth", "moon"})
	want := []string{"earth.png", "moon.png", "turret.png", "title.ttf", "music.mp3", "clap.ogg"}
	for _, w := range want {
		found := false
		for _, f := range files {
			if f == w {
				found = true
			}
		}
		if !found {
			t.Errorf("ResourceFiles missing %s", w)
		}
	}
}

func TestCheckResources(t *testing.T) {
	dir := t.TempDir()
	for _, f := range ResourceFiles([]string{"earth"}) {
		if err := os.WriteFile(filepath.Join(dir, f), nil, 0o644); err != nil {
			t.Fatal(err)
		}
	}
	if err := CheckResources(dir, []string{"earth"}); err != nil {
		t.Fatalf("Complete directory rejected: %v", err)
	}

	err := CheckResources(dir, []string{"earth", "nebula"})
	if !errors.Is(err, ErrMissingResource) {
		t.Fatalf("Expected ErrMissingResource, got %v", err)
	}
	if !strings.Contains(err.Error(), "nebula.png") {
		t.Errorf("Error does not name the missing file: %v", err)
	}
}
