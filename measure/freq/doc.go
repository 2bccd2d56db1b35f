// Package freq estimates the dominant oscillation frequency of a sampled series.
//
// Estimation is a heuristic in two stages. [Classify] inspects a prefix of the
// series and decides whether the signal is noisy, jumps (has discontinuities
// larger than a third of its amplitude range) or is superposed (amplitude
// modulated or a mix of frequencies). From the same prefix it derives the
// minimum per-sample change that counts as a real direction change.
//
// [EstimateWith] then optionally smooths the series with a sliding median
// followed by a sliding average and counts fall onsets: the first sample of
// each run in which the signal drops by more than the tolerance. For jumping
// signals that rise abruptly, rise onsets are counted instead. The frequency
// is the number of intervals between the first and last onset divided by the
// time between them.
//
// Frequencies are in events per source time unit; with times in seconds the
// result is in Hz.
package freq
