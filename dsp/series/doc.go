// Package series holds sampled time/value series and their CSV encoding.
//
// A CSV series file starts with one header line followed by data lines of the
// form "time,value". Additional fields on a data line are ignored and empty
// lines are skipped. Any line with a missing or non-numeric field aborts
// loading, so a partially parsed file is never returned.
package series
