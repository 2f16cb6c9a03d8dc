package media

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/olivier-w/epicycles/internal/fourier"
)

func TestParsePointsAcceptsMixedSeparators(t *testing.T) {
	input := "# outline\n0,0\n\n10 0  # right\n10;5\n\t0\t5\n-25 , 0.1\n"
	got, err := ParsePoints(strings.NewReader(input))
	if err != nil {
		t.Fatalf("ParsePoints() error = %v", err)
	}
	want := fourier.Path{{X: 0, Y: 0}, {X: 10, Y: 0}, {X: 10, Y: 5}, {X: 0, Y: 5}, {X: -25, Y: 0.1}}
	if diff := cmp.Diff(want, got, cmpopts.EquateApprox(0, 1e-12)); diff != "" {
		t.Fatalf("ParsePoints() mismatch (-want +got):\n%s", diff)
	}
}

func TestParsePointsReportsLine(t *testing.T) {
	for _, input := range []string{"0,0\n1,2,3\n", "0,0\nx,1\n", "0,0\nNaN,1\n"} {
		_, err := ParsePoints(strings.NewReader(input))
		if err == nil || !strings.Contains(err.Error(), "line 2") {
			t.Fatalf("ParsePoints(%q) error = %v, want line 2", input, err)
		}
	}
}

func TestSaveSketchRoundTripsAndRefusesOverwrite(t *testing.T) {
	dir := t.TempDir()
	pts := fourier.Path{{X: 0, Y: 0}, {X: 12.5, Y: -3}, {X: 4, Y: 8}}

	path, err := SaveSketch(dir, "  my: sketch? ", pts)
	if err != nil {
		t.Fatalf("SaveSketch() error = %v", err)
	}
	if filepath.Base(path) != "my sketch.yaml" {
		t.Fatalf("unexpected file name %q", filepath.Base(path))
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(data), "- [12.5, -3]") {
		t.Fatalf("expected flow-style points, got:\n%s", data)
	}

	s, err := Load(path, 100)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if s.Title != "my: sketch?" || !s.Fit || s.Source != path {
		t.Fatalf("unexpected sketch %+v", s)
	}
	if diff := cmp.Diff(pts, s.Points); diff != "" {
		t.Fatalf("points mismatch (-want +got):\n%s", diff)
	}

	if _, err := SaveSketch(dir, "my sketch", pts); err == nil || !strings.Contains(err.Error(), "already exists") {
		t.Fatalf("expected overwrite to be refused, got %v", err)
	}
	if _, err := SaveSketch(dir, "empty", nil); !errors.Is(err, ErrNoPoints) {
		t.Fatalf("expected ErrNoPoints, got %v", err)
	}
}

func TestSaveSketchFailureLeavesNoFile(t *testing.T) {
	dir := t.TempDir()
	pts := fourier.Path{{X: 0, Y: 0}, {X: 1, Y: 1}}

	orig := openSketchFile
	t.Cleanup(func() { openSketchFile = orig })
	openSketchFile = func(path string) (*os.File, error) {
		f, err := orig(path)
		if err != nil {
			return nil, err
		}
		// Writes to a closed file fail.
		f.Close()
		return f, nil
	}

	if _, err := SaveSketch(dir, "retry", pts); err == nil {
		t.Fatal("expected write to a closed file to fail")
	}
	if _, err := os.Stat(filepath.Join(dir, "retry.yaml")); !errors.Is(err, os.ErrNotExist) {
		t.Fatalf("expected partial file to be removed, stat error = %v", err)
	}

	openSketchFile = orig
	if _, err := SaveSketch(dir, "retry", pts); err != nil {
		t.Fatalf("expected retry to succeed, got %v", err)
	}
}

func TestLoadTextAndErrors(t *testing.T) {
	dir := t.TempDir()
	write := func(name, content string) string {
		p := filepath.Join(dir, name)
		if err := os.WriteFile(p, []byte(content), 0o644); err != nil {
			t.Fatal(err)
		}
		return p
	}

	s, err := Load(write("tri.csv", "0,0\n4,0\n2,3\n"), 100)
	if err != nil {
		t.Fatalf("Load(csv) error = %v", err)
	}
	if s.Title != "tri" || len(s.Points) != 3 {
		t.Fatalf("unexpected sketch %+v", s)
	}

	if _, err := Load(write("blank.txt", "# nothing\n"), 100); !errors.Is(err, ErrNoPoints) {
		t.Fatalf("expected ErrNoPoints, got %v", err)
	}
	if _, err := Load(write("bad.yaml", "points:\n  - [1, 2, 3]\n"), 100); err == nil {
		t.Fatal("expected error for 3-coordinate point")
	}
	if _, err := Load(write("notes.md", "0,0\n"), 100); err == nil {
		t.Fatal("expected error for unsupported extension")
	}
}

func TestScanSketchesFiltersAndSorts(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"b.yaml", "A.txt", "c.wav", "readme.md", ".hidden.csv"} {
		if err := os.WriteFile(filepath.Join(dir, name), []byte("x"), 0o644); err != nil {
			t.Fatal(err)
		}
	}
	if err := os.Mkdir(filepath.Join(dir, "d.yaml"), 0o755); err != nil {
		t.Fatal(err)
	}

	got, err := ScanSketches(dir)
	if err != nil {
		t.Fatalf("ScanSketches() error = %v", err)
	}
	want := []string{filepath.Join(dir, "A.txt"), filepath.Join(dir, "b.yaml"), filepath.Join(dir, "c.wav")}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("ScanSketches() mismatch (-want +got):\n%s", diff)
	}
}

func TestBuiltinsAreClosedShapes(t *testing.T) {
	b := Builtins()
	names := make([]string, len(b))
	for i, s := range b {
		names[i] = s.Title
		if len(s.Points) < 4 || !s.Fit {
			t.Fatalf("builtin %q is not usable: %d points, fit=%v", s.Title, len(s.Points), s.Fit)
		}
		lo, hi, _ := s.Points.Bounds()
		if hi.X-lo.X < 40 || hi.X-lo.X > 100 {
			t.Fatalf("builtin %q has unexpected width %v", s.Title, hi.X-lo.X)
		}
	}
	want := []string{"square", "circle", "star", "heart", "trefoil"}
	if diff := cmp.Diff(want, names); diff != "" {
		t.Fatalf("builtin order mismatch (-want +got):\n%s", diff)
	}
}
