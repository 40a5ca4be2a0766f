package mathutil

import (
	"math/bits"
	"unsafe"
)

var (
	decimalFactorTable = [...]uint64{ // up to 1e19
		1, 10, 100, 1000, 10000,
		100000, 1000000, 10000000, 100000000, 1000000000, 10000000000,
		100000000000, 1000000000000, 10000000000000, 100000000000000,
		1000000000000000, 10000000000000000, 100000000000000000,
		1000000000000000000, 10000000000000000000,
	}

	bitsInUint64 = int64(8 * unsafe.Sizeof(uint64(0)))
)

// Pow10 returns 10^pow, or 0 if it does not fit uint64.
func Pow10(pow int64) uint64 {
	if pow < 0 || pow >= int64(len(decimalFactorTable)) {
		return 0
	}
	return decimalFactorTable[pow]
}

// Pow2 returns 2^pow, or 0 if it does not fit uint64.
func Pow2(pow int64) uint64 {
	if pow < 0 || pow >= bitsInUint64 {
		return 0
	}
	return 1 << uint(pow)
}

// Pow returns base^pow.
// ok is false if the result does not fit uint64.
func Pow(base uint64, pow int64) (result uint64, ok bool) {
	if pow < 0 {
		return 0, false
	}
	switch base {
	case 2:
		result = Pow2(pow)
		return result, result != 0
	case 10:
		result = Pow10(pow)
		return result, result != 0
	}
	result = 1
	for ; pow > 0; pow-- {
		hi, lo := bits.Mul64(result, base)
		if hi != 0 {
			return 0, false
		}
		result = lo
	}
	return result, true
}

// WrapPow returns base^pow modulo 2^64.
func WrapPow(base uint64, pow int64) uint64 {
	if p, ok := Pow(base, pow); ok {
		return p
	}
	result := uint64(1)
	for pow > 0 && base != 0 {
		if pow&1 == 1 {
			result *= base
		}
		base *= base
		pow >>= 1
	}
	if pow > 0 {
		return 0
	}
	return result
}

// AbsInt64 returns the magnitude of val as an unsigned number,
// so that math.MinInt64 does not overflow.
func AbsInt64(val int64) uint64 {
	mask := val >> (bitsInUint64 - 1)
	return uint64((val + mask) ^ mask)
}

// Int64Sign returns -1, 0 or 1.
func Int64Sign(v int64) int {
	if v == 0 {
		return 0
	}
	return [...]int{1, -1}[uint64(v)>>63]
}
