// Package core holds small numeric helpers shared by the transform engine and
// the low-pass pipeline: power-of-two sizing, half-up rounding, byte
// saturation and in-place complex slice operations.
package core
