package media

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"math"
	"os"
	"path/filepath"
	"regexp"
	"sort"
	"strings"

	"github.com/olivier-w/epicycles/internal/fourier"
	"github.com/olivier-w/epicycles/internal/player"
	"github.com/spf13/cast"
	"gopkg.in/yaml.v3"
)

// ErrNoPoints is returned when a sketch file holds no points.
var ErrNoPoints = errors.New("sketch has no points")

// Sketch is a named path ready to be decomposed.
type Sketch struct {
	Title  string
	Points fourier.Path
	// Source is the file the sketch was loaded from; empty for drawn and
	// built-in sketches.
	Source string
	// Fit scales the sketch to the screen instead of drawing it in cell units.
	Fit bool
}

// sketchFile is the YAML layout of a saved sketch:
//
//	title: Star
//	points:
//	  - [0, -40]
//	  - [9.4, -12.9]
type sketchFile struct {
	Title  string      `yaml:"title,omitempty"`
	Points []yamlPoint `yaml:"points"`
}

type yamlPoint fourier.Point

func (p yamlPoint) MarshalYAML() (any, error) {
	var n yaml.Node
	if err := n.Encode([]float64{p.X, p.Y}); err != nil {
		return nil, err
	}
	n.Style = yaml.FlowStyle
	return &n, nil
}

func (p *yamlPoint) UnmarshalYAML(value *yaml.Node) error {
	var xy []float64
	if err := value.Decode(&xy); err != nil {
		return err
	}
	if len(xy) != 2 {
		return fmt.Errorf("line %d: point needs 2 coordinates, got %d", value.Line, len(xy))
	}
	if !finite(xy[0]) || !finite(xy[1]) {
		return fmt.Errorf("line %d: point is not finite", value.Line)
	}
	p.X, p.Y = xy[0], xy[1]
	return nil
}

// Load reads a sketch from a point file, a YAML sketch or a stereo audio file.
// Audio is decoded into at most maxPoints points.
func Load(path string, maxPoints int) (Sketch, error) {
	ext := strings.ToLower(filepath.Ext(path))
	base := filepath.Base(path)
	s := Sketch{
		Title:  strings.TrimSuffix(base, filepath.Ext(base)),
		Source: path,
		Fit:    true,
	}

	switch {
	case ext == ".yaml" || ext == ".yml":
		f, err := os.Open(path)
		if err != nil {
			return Sketch{}, err
		}
		defer f.Close()
		var sf sketchFile
		if err := yaml.NewDecoder(f).Decode(&sf); err != nil && !errors.Is(err, io.EOF) {
			return Sketch{}, fmt.Errorf("parsing %s: %w", base, err)
		}
		if sf.Title != "" {
			s.Title = sf.Title
		}
		s.Points = make(fourier.Path, len(sf.Points))
		for i, p := range sf.Points {
			s.Points[i] = fourier.Point(p)
		}
	case IsSketchExt(ext):
		f, err := os.Open(path)
		if err != nil {
			return Sketch{}, err
		}
		defer f.Close()
		pts, err := ParsePoints(f)
		if err != nil {
			return Sketch{}, fmt.Errorf("parsing %s: %w", base, err)
		}
		s.Points = pts
	case IsAudioExt(ext):
		pts, err := player.ReadXY(path, maxPoints)
		if err != nil {
			return Sketch{}, fmt.Errorf("reading %s: %w", base, err)
		}
		s.Title = player.ReadMetadata(path).Name()
		s.Points = pts
	default:
		return Sketch{}, fmt.Errorf("unsupported format %s (supported: %s)", ext, SupportedExtsList())
	}

	if len(s.Points) == 0 {
		return Sketch{}, fmt.Errorf("%s: %w", base, ErrNoPoints)
	}
	return s, nil
}

// ParsePoints reads one "x,y" point per line. Coordinates may be separated by
// commas, semicolons or whitespace; blank lines and text after '#' are ignored.
func ParsePoints(r io.Reader) (fourier.Path, error) {
	var pts fourier.Path
	scanner := bufio.NewScanner(r)
	line := 0
	for scanner.Scan() {
		line++
		text := scanner.Text()
		if i := strings.IndexByte(text, '#'); i >= 0 {
			text = text[:i]
		}
		fields := strings.FieldsFunc(text, func(r rune) bool {
			return r == ',' || r == ';' || r == ' ' || r == '\t'
		})
		if len(fields) == 0 {
			continue
		}
		if len(fields) != 2 {
			return nil, fmt.Errorf("line %d: expected 2 coordinates, got %d", line, len(fields))
		}
		x, err := cast.ToFloat64E(fields[0])
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}
		y, err := cast.ToFloat64E(fields[1])
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}
		if !finite(x) || !finite(y) {
			return nil, fmt.Errorf("line %d: point is not finite", line)
		}
		pts = append(pts, fourier.Point{X: x, Y: y})
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return pts, nil
}

var invalidFilenameChars = regexp.MustCompile(`[\\/:*?"<>|]`)

// SanitizeFilename strips characters invalid in filenames and trims whitespace.
// Falls back to "sketch" if the result is empty.
func SanitizeFilename(name string) string {
	name = invalidFilenameChars.ReplaceAllString(name, "")
	name = strings.TrimSpace(name)
	if name == "" {
		return "sketch"
	}
	return name
}

// openSketchFile creates a sketch file, failing if it already exists.
var openSketchFile = func(path string) (*os.File, error) {
	return os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
}

// SaveSketch writes points as a YAML sketch named after title in dir and
// returns the file path. Existing files are never overwritten, and a failed
// write leaves no file behind.
func SaveSketch(dir, title string, points fourier.Path) (string, error) {
	if len(points) == 0 {
		return "", ErrNoPoints
	}
	name := SanitizeFilename(title) + ".yaml"
	dest := filepath.Join(dir, name)

	f, err := openSketchFile(dest)
	if err != nil {
		if errors.Is(err, fs.ErrExist) {
			return "", fmt.Errorf("file %q already exists", name)
		}
		return "", err
	}

	sf := sketchFile{Title: strings.TrimSpace(title), Points: make([]yamlPoint, len(points))}
	for i, p := range points {
		sf.Points[i] = yamlPoint(p)
	}
	if err := writeSketchFile(f, sf); err != nil {
		os.Remove(dest)
		return "", fmt.Errorf("writing %s: %w", name, err)
	}
	return dest, nil
}

// writeSketchFile encodes sf into f and closes f.
func writeSketchFile(f *os.File, sf sketchFile) error {
	enc := yaml.NewEncoder(f)
	enc.SetIndent(2)
	if err := enc.Encode(sf); err != nil {
		f.Close()
		return err
	}
	if err := enc.Close(); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

// ScanSketches lists the loadable files in dir, sorted by name.
func ScanSketches(dir string) ([]string, error) {
	absDir, err := filepath.Abs(dir)
	if err != nil {
		absDir = dir
	}
	entries, err := os.ReadDir(absDir)
	if err != nil {
		return nil, err
	}

	var files []string
	for _, e := range entries {
		if e.IsDir() || strings.HasPrefix(e.Name(), ".") {
			continue
		}
		if IsSupportedExt(filepath.Ext(e.Name())) {
			files = append(files, filepath.Join(absDir, e.Name()))
		}
	}

	sort.Slice(files, func(i, j int) bool {
		return strings.ToLower(filepath.Base(files[i])) < strings.ToLower(filepath.Base(files[j]))
	})
	return files, nil
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
