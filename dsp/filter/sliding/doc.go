// Package sliding provides fixed-size sliding-window smoothers.
//
// [Average] is a streaming simple moving average with O(1) cost per pushed
// value. [Median] is a windowed median over an external value sequence that
// re-sorts its window on every call; it is meant for short windows.
//
// Both filters report "no output yet" through a boolean rather than a
// reserved numeric value, so a genuine zero output is never ambiguous.
package sliding
