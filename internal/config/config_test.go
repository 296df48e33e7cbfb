package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
)

func writeFile(t *testing.T, name, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
	return path
}

var blinker = Scenario{
	Name:        "blinker",
	Width:       5,
	Height:      5,
	Wrap:        true,
	Generations: 10,
	TickRate:    Duration(100 * time.Millisecond),
	LogLevel:    "debug",
	Pattern:     []string{".....", "..#..", "..#..", "..#.."},
}

func TestLoadYAML(t *testing.T) {
	path := writeFile(t, "blinker.yaml", `
name: blinker
width: 5
height: 5
wrap: true
generations: 10
tick_rate: 100ms
log_level: debug
pattern:
  - "....."
  - "..#.."
  - "..#.."
  - "..#.."
`)
	s, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if diff := cmp.Diff(blinker, *s); diff != "" {
		t.Errorf("scenario mismatch (-want +got):\n%s", diff)
	}
}

func TestLoadTOML(t *testing.T) {
	path := writeFile(t, "blinker.toml", `
name = "blinker"
width = 5
height = 5
wrap = true
generations = 10
tick_rate = "100ms"
log_level = "debug"
pattern = [".....", "..#..", "..#..", "..#.."]
`)
	s, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if diff := cmp.Diff(blinker, *s); diff != "" {
		t.Errorf("scenario mismatch (-want +got):\n%s", diff)
	}
}

func TestLoadDefaultsName(t *testing.T) {
	path := writeFile(t, "glider.yml", "width: 3\nheight: 3\npattern: [\".#.\"]\n")
	s, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if s.Name != "glider" {
		t.Errorf("expected name from file, got %q", s.Name)
	}
}

func TestLoadErrors(t *testing.T) {
	tests := []struct {
		name, file, body string
	}{
		{"extension", "x.json", "{}"},
		{"bad yaml", "x.yaml", "width: [1"},
		{"bad toml", "x.toml", "width = "},
		{"bad size", "x.yaml", "width: 0\nheight: 3\n"},
		{"wide row", "x.yaml", "width: 2\nheight: 2\npattern: [\"###\"]\n"},
		{"bad duration", "x.yaml", "width: 2\nheight: 2\ntick_rate: soon\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := Load(writeFile(t, tt.file, tt.body)); err == nil {
				t.Error("expected error")
			}
		})
	}

	if _, err := Load(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("expected error for missing file")
	}
}

func TestScenarioGrid(t *testing.T) {
	g, err := blinker.Grid()
	if err != nil {
		t.Fatalf("Grid: %v", err)
	}
	if g.Population() != 3 || !g.Wrap {
		t.Errorf("unexpected grid %+v", g)
	}
}
