// Package hold reconstructs a continuous signal from discrete samples.
//
// Two classical hold circuits are provided:
//
//   - [ZeroOrder]:  step reconstruction, each sample held until the next
//   - [FirstOrder]: piecewise-linear reconstruction between samples
//
// Both evaluate the reconstruction on a caller-supplied ascending time grid
// and return one output value per grid point.
package hold
