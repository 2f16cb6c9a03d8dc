package player

import (
	"errors"
	"fmt"
	"io"
	"math"
	"os"

	"github.com/olivier-w/epicycles/internal/fourier"
)

// XYScale maps full-scale samples to sketch units.
const XYScale = 100.0

// silenceFloor is the level under which leading frames are skipped.
const silenceFloor = 1.0 / 512

var (
	ErrNotStereo = errors.New("audio must have at least two channels")
	ErrSilent    = errors.New("audio contains only silence")
)

// ReadXY decodes an oscilloscope-style audio file into a path: the left
// channel drives x and the right channel drives y, upward. Leading silence is
// skipped and at most maxPoints frames are read after it.
func ReadXY(path string, maxPoints int) (fourier.Path, error) {
	if maxPoints <= 0 {
		return nil, fmt.Errorf("max points must be positive, got %d", maxPoints)
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	src, err := newSource(f)
	if err != nil {
		return nil, err
	}
	return readXY(src, maxPoints)
}

func readXY(src sampleSource, maxPoints int) (fourier.Path, error) {
	channels := src.channelCount()
	if channels < 2 {
		return nil, fmt.Errorf("%w: got %d", ErrNotStereo, channels)
	}

	buf := make([]float64, 4096)
	frame := make([]float64, channels)
	pos := 0
	path := make(fourier.Path, 0, min(maxPoints, 4096))
	for len(path) < maxPoints {
		n, err := src.read(buf)
		for _, v := range buf[:n] {
			frame[pos] = v
			pos++
			if pos < channels {
				continue
			}
			pos = 0
			l, r := frame[0], frame[1]
			if len(path) == 0 && math.Abs(l) < silenceFloor && math.Abs(r) < silenceFloor {
				continue
			}
			path = append(path, fourier.Point{X: l * XYScale, Y: -r * XYScale})
			if len(path) == maxPoints {
				break
			}
		}
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("decoding audio: %w", err)
		}
		if n == 0 {
			break
		}
	}

	if len(path) == 0 {
		return nil, ErrSilent
	}
	return path, nil
}
