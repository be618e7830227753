// Package common defines the operator vocabulary shared by the math modules.
//
// The calculator never passes closures around: every operator is a value of
// the Op enumeration and is evaluated by the pure functions in the
// operations package.
//
// Families:
//   - Binary: add, subtract, multiply, divide, modulo, power
//   - Unary algebraic: neg, inv, abs, square, sqrt, cube, cbrt, exp, ln, log2, log10
//   - Unary trigonometric: sin, cos, tan and their inverse and hyperbolic forms
//
// All operators follow IEEE 754 semantics: NaN and ±Inf propagate and no
// operator ever reports an error.
package common
