package core

// ReverseTail reverses buf[1:] in place, leaving buf[0] fixed.
func ReverseTail(buf []complex128) {
	if len(buf) < 3 {
		return
	}

	for i, j := 1, len(buf)-1; i < j; i, j = i+1, j-1 {
		buf[i], buf[j] = buf[j], buf[i]
	}
}

// ScaleComplex divides every element of buf by n in place.
func ScaleComplex(buf []complex128, n int) {
	if n == 0 {
		return
	}

	d := float64(n)
	for i, c := range buf {
		buf[i] = complex(real(c)/d, imag(c)/d)
	}
}

// ZeroComplex sets every element of buf to 0.
func ZeroComplex(buf []complex128) {
	for i := range buf {
		buf[i] = 0
	}
}

// Conjugate replaces every element of buf with its complex conjugate.
func Conjugate(buf []complex128) {
	for i, c := range buf {
		buf[i] = complex(real(c), -imag(c))
	}
}
