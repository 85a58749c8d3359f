package hyser

import "gonum.org/v1/gonum/mat"

// Recording couples a channels-by-samples signal matrix with the
// sampling frequency of its acquisition.
type Recording struct {
	// Data holds the signal, one row per channel.
	Data *mat.Dense
	// SampleRate is the sampling frequency in Hz.
	SampleRate float64
}

// Channels returns the number of channels in the recording.
func (r Recording) Channels() int {
	if r.Data == nil {
		return 0
	}
	nChannels, _ := r.Data.Dims()
	return nChannels
}

// Samples returns the number of time samples in the recording.
func (r Recording) Samples() int {
	if r.Data == nil {
		return 0
	}
	_, nSamples := r.Data.Dims()
	return nSamples
}

// Duration returns the length of the recording in seconds.
func (r Recording) Duration() float64 {
	if r.SampleRate <= 0 {
		return 0
	}
	return float64(r.Samples()) / r.SampleRate
}
