// SPDX-License-Identifier: MIT

// Package matrix provides a dense, row-major matrix of exact decimals and the
// classic kernels on it.
//
// The matrix package provides:
//
//   - Dense with bounds-checked At/Set, FromRows for literal input and Identity.
//   - Kernels Add, Sub, Mul, Transpose, Scale, MatVec and Inverse
//     (Gauss–Jordan with partial pivoting).
//   - Validators shared by every kernel (ValidateNotNil, ValidateSameShape,
//     ValidateSquare, ValidateMulCompatible).
//   - Float64 interop with gonum (ToGonum, FromGonum) for cross-checks and
//     float64 solvers.
//
// A linear system's augmented matrix [A | b] is a Dense; see linsys.System.AugmentedMatrix.
//
// Errors are package sentinels wrapped with an operation tag; match them with errors.Is.
package matrix
