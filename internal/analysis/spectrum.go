package analysis

import (
	"math/cmplx"

	"github.com/mjibson/go-dsp/fft"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// PowerSpectrum returns |X_k| for the non-negative frequencies of the
// mean-removed signal.
func PowerSpectrum(values []float64) []float64 {
	if len(values) < 2 {
		return nil
	}
	centred := make([]float64, len(values))
	copy(centred, values)
	floats.AddConst(-stat.Mean(values, nil), centred)

	coeffs := fft.FFTReal(centred)
	ps := make([]float64, len(coeffs)/2+1)
	for i := range ps {
		ps[i] = cmplx.Abs(coeffs[i])
	}
	return ps
}

// Spectrum pairs each power bin with its frequency in Hz.
func Spectrum(values []float64, sampleRate float64) (freqs, power []float64) {
	power = PowerSpectrum(values)
	freqs = make([]float64, len(power))
	for i := range freqs {
		freqs[i] = float64(i) * sampleRate / float64(len(values))
	}
	return freqs, power
}

// DominantFrequency is the strongest non-zero frequency in Hz, or 0 when
// there is none.
func DominantFrequency(values []float64, sampleRate float64) float64 {
	freqs, power := Spectrum(values, sampleRate)
	if len(power) < 2 {
		return 0
	}
	best := floats.MaxIdx(power[1:]) + 1
	if power[best] == 0 {
		return 0
	}
	return freqs[best]
}
