// Package signal generates deterministic test waveforms as time/value series.
//
// Waveforms are sampled on the uniform time axis described by
// [core.SamplingConfig]. They cover the signal shapes the frequency estimator
// distinguishes: smooth (sine, triangle), jumping (square, sawtooth),
// amplitude modulated (AM) and noisy (AddNoise, AddDither).
package signal
