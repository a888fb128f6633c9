// Package cplot parses and evaluates mathematical expressions of one-letter
// variables over a choice of numeric domains.
//
// An expression is written the way you would type it into a calculator:
// "2*x^2 - sin(x)/3". Multiplication is always explicit, variables are single
// ASCII letters, and function names are immediately followed by their opening
// bracket. Parsing converts the expression to postfix form once; the result
// can then be evaluated any number of times, concurrently if desired, with
// different variable values.
//
// The numeric domain is chosen at parse time: Real for float64, Complex for
// complex128 (where i is always the imaginary unit), or BigReal for
// arbitrary-precision *big.Float.
//
package cplot
