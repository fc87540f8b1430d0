package utils

// RoundUp2 - Returns the nearest value that is a power of 2 and not less than a.
// Values less than 1 are rounded up to 1.
func RoundUp2(a int64) int64 {
	if a <= 1 {
		return 1
	}

	r := int64(1)
	for r < a {
		r <<= 1
	}

	return r
}

// PowMod - Returns base to the power of exp modulo m, using unsigned arithmetic that never overflows for m < 2^32.
func PowMod(base, exp, m uint64) uint64 {
	if m == 1 {
		return 0
	}

	result := uint64(1)
	base %= m
	for exp > 0 {
		if exp&1 == 1 {
			result = result * base % m
		}
		base = base * base % m
		exp >>= 1
	}

	return result
}
