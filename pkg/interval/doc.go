// Package interval provides the half-open minute range used to position
// scheduled items on a single-day timeline.
//
// # Overview
//
// Every scheduled item occupies an [Interval] of whole minutes inside one
// 24-hour window, expressed as minutes since the day boundary. Intervals
// are half-open: [Lower, Upper) contains Lower but not Upper, so an item
// ending at the exact minute another begins does not overlap it.
//
// # Classification
//
// Overlap between two intervals is never a plain boolean. [Interval.Classify]
// answers "where does the other interval sit relative to this one" with a
// three-way [Position]: PositionLeading (the other appears before this one in
// the visual layout), PositionTrailing (it appears after), or PositionNone
// (no temporal intersection). The predicate is deliberately asymmetric:
// a.Classify(b) and b.Classify(a) usually differ, and together they decide
// which adjacency list of the overlap graph receives the edge. Do not
// replace it with a symmetric overlap test.
//
// # Day boundaries
//
// Conversion from wall-clock times uses an explicit reference-day boundary
// passed by the caller ([MinuteOfDay], [FromClock]); the package never reads
// ambient calendar or time-zone state. An end time at or before the start
// time is clamped to the last representable minute of the day (23:59) rather
// than rejected, so all operations are total over their input domain.
package interval
