// Package spectrum provides helpers over complex spectrum bins: magnitude,
// power, band energy and the centroid/rolloff shape descriptors.
//
// The package does not implement a transform itself. It operates on the
// bins produced by package fft and is used by the low-pass pipeline to
// report how much spectral energy a truncation keeps.
package spectrum
