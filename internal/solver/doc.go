// Package solver implements the two calculation engines behind the trainer:
// the Pythagorean side solver and the trigonometric ratio solver.
//
// Both entry points are pure functions. They never touch UI state, never
// retry, and produce a fresh result on every call. Each result carries the
// raw double-precision values together with an ordered derivation trace that
// reads top to bottom as a worked solution.
//
// Insufficient input is not an error: when a caller has not yet supplied
// enough values, the solvers return (nil, nil) and the caller keeps whatever
// it was showing before. Genuine rejections (an impossible hypotenuse, an
// angle outside the open interval 0°..90°) come back as *apperr.Error with
// CodeInvalidGeometry or CodeInvalidAngle and a message fit for direct
// display.
package solver
