package player

import (
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-audio/audio"
	"github.com/go-audio/wav"
	"github.com/hajimehoshi/go-mp3"
	"github.com/jfreymuth/oggvorbis"
	"github.com/mewkiz/flac"
)

// sampleSource is implemented by all format-specific decoders. Samples are
// interleaved and scaled to [-1, 1].
type sampleSource interface {
	read(dst []float64) (int, error)
	sampleRate() int
	channelCount() int
}

// newSource detects format by file extension and returns the matching decoder.
func newSource(f *os.File) (sampleSource, error) {
	ext := strings.ToLower(filepath.Ext(f.Name()))
	switch ext {
	case ".mp3":
		return newMP3Source(f)
	case ".wav":
		return newWAVSource(f)
	case ".flac":
		return newFLACSource(f)
	case ".ogg":
		return newOGGSource(f)
	default:
		return nil, fmt.Errorf("unsupported format: %s", ext)
	}
}

// --- MP3 ---

// go-mp3 always produces 16-bit little-endian stereo.
type mp3Source struct {
	dec *mp3.Decoder
	raw []byte
}

func newMP3Source(f *os.File) (*mp3Source, error) {
	dec, err := mp3.NewDecoder(f)
	if err != nil {
		return nil, fmt.Errorf("decoding MP3: %w", err)
	}
	return &mp3Source{dec: dec}, nil
}

func (s *mp3Source) read(dst []float64) (int, error) {
	want := len(dst) * 2
	if cap(s.raw) < want {
		s.raw = make([]byte, want)
	}
	n, err := io.ReadFull(s.dec, s.raw[:want])
	samples := n / 2
	for i := range samples {
		dst[i] = float64(int16(binary.LittleEndian.Uint16(s.raw[i*2:]))) / 32768
	}
	if errors.Is(err, io.ErrUnexpectedEOF) {
		err = nil
	}
	return samples, err
}

func (s *mp3Source) sampleRate() int   { return s.dec.SampleRate() }
func (s *mp3Source) channelCount() int { return 2 }

// --- WAV ---

type wavSource struct {
	dec      *wav.Decoder
	buf      *audio.IntBuffer
	bitDepth int
	channels int
	rate     int
}

func newWAVSource(f *os.File) (*wavSource, error) {
	dec := wav.NewDecoder(f)
	if !dec.IsValidFile() {
		return nil, fmt.Errorf("invalid WAV file")
	}
	if err := dec.FwdToPCM(); err != nil {
		return nil, fmt.Errorf("reading WAV PCM data: %w", err)
	}
	if dec.BitDepth < 8 || dec.BitDepth > 32 {
		return nil, fmt.Errorf("unsupported WAV bit depth %d", dec.BitDepth)
	}
	return &wavSource{
		dec:      dec,
		buf:      &audio.IntBuffer{},
		bitDepth: int(dec.BitDepth),
		channels: int(dec.NumChans),
		rate:     int(dec.SampleRate),
	}, nil
}

func (s *wavSource) read(dst []float64) (int, error) {
	if cap(s.buf.Data) < len(dst) {
		s.buf.Data = make([]int, len(dst))
	}
	s.buf.Data = s.buf.Data[:len(dst)]
	n, err := s.dec.PCMBuffer(s.buf)
	if err != nil {
		return 0, fmt.Errorf("reading WAV samples: %w", err)
	}
	if n == 0 {
		return 0, io.EOF
	}

	full := float64(int(1) << (s.bitDepth - 1))
	for i := range n {
		v := s.buf.Data[i]
		if s.bitDepth == 8 {
			// 8-bit WAV is unsigned
			v -= 128
		}
		dst[i] = float64(v) / full
	}
	return n, nil
}

func (s *wavSource) sampleRate() int   { return s.rate }
func (s *wavSource) channelCount() int { return s.channels }

// --- FLAC ---

type flacSource struct {
	stream  *flac.Stream
	pending []float64
}

func newFLACSource(f *os.File) (*flacSource, error) {
	stream, err := flac.New(f)
	if err != nil {
		return nil, fmt.Errorf("decoding FLAC: %w", err)
	}
	return &flacSource{stream: stream}, nil
}

func (s *flacSource) read(dst []float64) (int, error) {
	if len(s.pending) == 0 {
		frame, err := s.stream.ParseNext()
		if err != nil {
			return 0, err
		}
		channels := len(frame.Subframes)
		nSamples := int(frame.Subframes[0].NSamples)
		full := float64(int64(1) << (s.stream.Info.BitsPerSample - 1))
		s.pending = make([]float64, 0, nSamples*channels)
		for i := range nSamples {
			for ch := range channels {
				s.pending = append(s.pending, float64(frame.Subframes[ch].Samples[i])/full)
			}
		}
	}
	n := copy(dst, s.pending)
	s.pending = s.pending[n:]
	return n, nil
}

func (s *flacSource) sampleRate() int   { return int(s.stream.Info.SampleRate) }
func (s *flacSource) channelCount() int { return int(s.stream.Info.NChannels) }

// --- OGG Vorbis ---

type oggSource struct {
	reader *oggvorbis.Reader
	buf    []float32
}

func newOGGSource(f *os.File) (*oggSource, error) {
	reader, err := oggvorbis.NewReader(f)
	if err != nil {
		return nil, fmt.Errorf("decoding OGG: %w", err)
	}
	return &oggSource{reader: reader}, nil
}

func (s *oggSource) read(dst []float64) (int, error) {
	if cap(s.buf) < len(dst) {
		s.buf = make([]float32, len(dst))
	}
	n, err := s.reader.Read(s.buf[:len(dst)])
	for i := range n {
		dst[i] = float64(s.buf[i])
	}
	if n > 0 && err == io.EOF {
		err = nil
	}
	return n, err
}

func (s *oggSource) sampleRate() int   { return s.reader.SampleRate() }
func (s *oggSource) channelCount() int { return s.reader.Channels() }
