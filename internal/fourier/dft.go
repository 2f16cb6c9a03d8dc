package fourier

import (
	"fmt"
	"math"

	dsp "gonum.org/v1/gonum/dsp/fourier"
)

// directLimit is the largest sample count transformed with the direct sum.
// Larger inputs go through gonum's mixed-radix FFT, which accepts any length.
const directLimit = 512

// DFT computes the forward discrete Fourier transform of the complex sequence
// re + i·im:
//
//	X[k] = Σ (re[n] + i·im[n]) · e^(−2πi·k·n/N)
//
// The transform is unnormalized. Empty input yields empty output.
func DFT(re, im []float64) (fre, fim []float64, err error) {
	if len(re) != len(im) {
		return nil, nil, fmt.Errorf("%w: %d != %d", ErrLengthMismatch, len(re), len(im))
	}
	if len(re) > directLimit {
		fre, fim = fftTransform(re, im, false)
		return fre, fim, nil
	}
	fre, fim = directTransform(re, im, -1)
	return fre, fim, nil
}

// InverseDFT computes the inverse transform of DFT, scaled by 1/N so that
// InverseDFT(DFT(x)) reproduces x.
func InverseDFT(fre, fim []float64) (re, im []float64, err error) {
	if len(fre) != len(fim) {
		return nil, nil, fmt.Errorf("%w: %d != %d", ErrLengthMismatch, len(fre), len(fim))
	}
	if len(fre) > directLimit {
		re, im = fftTransform(fre, fim, true)
	} else {
		re, im = directTransform(fre, fim, 1)
	}
	n := float64(len(re))
	for i := range re {
		re[i] /= n
		im[i] /= n
	}
	return re, im, nil
}

// directTransform evaluates the O(N²) sum with the given exponent sign.
func directTransform(re, im []float64, sign float64) ([]float64, []float64) {
	n := len(re)
	outRe := make([]float64, n)
	outIm := make([]float64, n)
	if n == 0 {
		return outRe, outIm
	}

	// Twiddle factors repeat with period N, so index them by (k*j) mod N.
	cos := make([]float64, n)
	sin := make([]float64, n)
	for i := range n {
		angle := sign * 2 * math.Pi * float64(i) / float64(n)
		cos[i] = math.Cos(angle)
		sin[i] = math.Sin(angle)
	}

	for k := range n {
		var sumRe, sumIm float64
		idx := 0
		for j := range n {
			c, s := cos[idx], sin[idx]
			sumRe += re[j]*c - im[j]*s
			sumIm += re[j]*s + im[j]*c
			idx += k
			if idx >= n {
				idx %= n
			}
		}
		outRe[k] = sumRe
		outIm[k] = sumIm
	}
	return outRe, outIm
}

// fftTransform runs the unnormalized gonum complex FFT in either direction.
func fftTransform(re, im []float64, inverse bool) ([]float64, []float64) {
	n := len(re)
	seq := make([]complex128, n)
	for i := range n {
		seq[i] = complex(re[i], im[i])
	}

	fft := dsp.NewCmplxFFT(n)
	var out []complex128
	if inverse {
		out = fft.Sequence(nil, seq)
	} else {
		out = fft.Coefficients(nil, seq)
	}

	outRe := make([]float64, n)
	outIm := make([]float64, n)
	for i, c := range out {
		outRe[i] = real(c)
		outIm[i] = imag(c)
	}
	return outRe, outIm
}
