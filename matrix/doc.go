// Package matrix provides the dense numeric storage used by the dominosort
// solver stack.
//
// The matrix package provides:
//
//   - Dense, a row-major float64 matrix with bounds-checked At/Set that
//     return errors instead of panicking.
//   - Row stacking (VStack, AppendRow) used to compose linear constraint
//     blocks over the flattened link-variable space.
//   - FloydWarshall, an in-place all-pairs shortest path closure used to
//     detect cycles in integral link matrices.
//
// Numeric policy: NaN is always rejected by Set. ±Inf is rejected unless the
// matrix was created as a distance matrix (NewDistance), where +Inf means
// "no path".
//
// All loops run in a fixed row-major order so results are deterministic.
package matrix
