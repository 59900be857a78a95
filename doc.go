// Package linsys is an exact-decimal toolkit for systems of linear equations,
// from scalar arithmetic up to a Gaussian-elimination solver that classifies
// and parametrizes solution sets.
//
// 🚀 What is linsys?
//
//	A small, deterministic library that brings together:
//		• Scalars: 30-digit decimals with one near-zero policy (|x| < 1e-10)
//		• Vectors: arithmetic, dot/cross products, angles, projections
//		• Equations: lines, planes and hyperplanes (normal·x = k) + predicates
//		• Systems: row operations, triangular form, RREF, solution sets
//		• Matrices: dense decimal kernels, inverse, gonum interop
//
// ✨ Why choose linsys?
//
//   - Exact: decimal arithmetic, no binary floating-point drift in pivots
//   - Reproducible: free variables always enumerated in ascending column order
//   - Honest results: no solution, a unique point, or a parametrization
//
// Under the hood, everything is organized under these subpackages:
//
//	scalar/       decimal values and the near-zero predicate
//	vector/       coordinate vectors and geometry
//	equation/     single linear equations, parsing and geometric predicates
//	linsys/       the elimination engine (System, Solve, Parametrization)
//	matrix/       dense decimal matrices and augmented-matrix interop
//	cmd/linsolve  command-line front end
//
// Quick example:
//
//	y + z = 1
//	x - y + z = 2        ⇒   x = 23/9, y = 7/9, z = 2/9
//	x + 2y - 5z = 3
//
//	go get github.com/katalvlaran/linsys
package linsys
