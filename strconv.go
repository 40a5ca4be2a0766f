package fixedpoint

import (
	"fmt"
	"io"
	"math"
	"math/big"
	"strconv"
	"strings"
	"unicode"

	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
)

// String returns a decimal representation of Get().
// Values, which do not fit float64 precisely, will be rounded. See StringExact.
func (f FixedPoint[R, X]) String() string {
	return strconv.FormatFloat(f.Get(), 'f', -1, 64)
}

// GoString returns debug string representation.
func (f FixedPoint[R, X]) GoString() string {
	return f.String() + fmt.Sprintf(" {%v, %v}", f.value, f.scale)
}

// WriteTo writes the string representation of f into w.
func (f FixedPoint[R, X]) WriteTo(w io.Writer) (int64, error) {
	n, err := io.WriteString(w, f.String())
	return int64(n), err
}

// StringExact returns the exact decimal representation of f.
// See Decimal for the cost of binary values with large scales.
func (f FixedPoint[R, X]) StringExact() string {
	return f.Decimal().String()
}

// Decimal returns the exact value of f as a decimal.
// Binary values are exact too, as 2^-n == 5^n * 10^-n.
// For binary values the coefficient has about |scale| bits,
// so scales far from zero produce very large decimals.
func (f FixedPoint[R, X]) Decimal() decimal.Decimal {
	v, s := int64(f.value), f.scale.s
	if radixOf[X]() == Radix10 {
		return decimal.New(v, s)
	}
	i := big.NewInt(v)
	if s >= 0 {
		return decimal.NewFromBigInt(i.Lsh(i, uint(s)), 0)
	}
	five := new(big.Int).Exp(big.NewInt(5), big.NewInt(-int64(s)), nil)
	return decimal.NewFromBigInt(i.Mul(i, five), s)
}

// Parse parses a decimal number, like "-12.345" or "1.2e-3", and converts it
// to a fixed-point number with given scale, truncating extra digits toward zero.
// Unlike New, no floating-point arithmetic is involved.
// Returns ErrRange if the value does not fit R.
func Parse[R Rep, X RadixTag](s string, scale Scale) (FixedPoint[R, X], error) {
	d, err := parseDecimal(s)
	if err != nil {
		return FixedPoint[R, X]{}, err
	}
	return FromDecimal[R, X](d, scale)
}

func parseDecimal(s string) (decimal.Decimal, error) {
	d, err := decimal.NewFromString(prepareString(s))
	if err != nil {
		return decimal.Decimal{}, errors.Wrap(err, "parsing failed")
	}
	return d, nil
}

// MustParse is like Parse, but panics on error.
func MustParse[R Rep, X RadixTag](s string, scale Scale) FixedPoint[R, X] {
	f, err := Parse[R, X](s, scale)
	if err != nil {
		panic(err)
	}
	return f
}

// maxBinaryDecimalExponent bounds the decimal exponent FromDecimal accepts
// for binary scales, where the power of ten can not be folded into the scale.
const maxBinaryDecimalExponent = 1 << 12

// FromDecimal converts d to a fixed-point number with given scale,
// truncating extra digits toward zero.
// Returns ErrRange if the value does not fit R.
// The magnitude is estimated before any big number is built,
// so the cost depends on the number of digits of d, not on its exponent.
func FromDecimal[R Rep, X RadixTag](d decimal.Decimal, scale Scale) (FixedPoint[R, X], error) {
	var zero FixedPoint[R, X]
	coef, exp := d.Coefficient(), int64(d.Exponent())
	if coef.Sign() == 0 {
		return fromScaled[R, X](0, scale), nil
	}
	radix := radixOf[X]()
	// the result is coef * 10^exp * radix^m.
	m := -int64(scale.s)
	log2 := float64(exp)*math.Log2(10) + float64(m)*math.Log2(float64(radix))
	bitLen := float64(coef.BitLen())
	switch {
	case bitLen-1+log2 > 65: // |result| >= 2^65.
		return zero, rangeError(coef, exp, scale)
	case bitLen+log2 < -2: // |result| < 1/4.
		return fromScaled[R, X](0, scale), nil
	}
	num, den := new(big.Int).Set(coef), big.NewInt(1)
	if radix == Radix10 {
		// exp + m is bounded by the checks above.
		if t := exp + m; t >= 0 {
			num.Mul(num, bigPow(10, t))
		} else {
			den = bigPow(10, -t)
		}
	} else {
		if exp > maxBinaryDecimalExponent || exp < -maxBinaryDecimalExponent {
			return zero, errors.Wrapf(ErrRange, "decimal exponent %d at binary scale %v", exp, scale)
		}
		if exp >= 0 {
			num.Mul(num, bigPow(10, exp))
		} else {
			den = bigPow(10, -exp)
		}
		if m >= 0 {
			num.Lsh(num, uint(m))
		} else {
			den.Lsh(den, uint(-m))
		}
	}
	i := num.Quo(num, den)
	lo, hi := Limits[R]()
	if !i.IsInt64() || i.Int64() < int64(lo) || i.Int64() > int64(hi) {
		return zero, rangeError(coef, exp, scale)
	}
	return fromScaled[R, X](R(i.Int64()), scale), nil
}

func bigPow(base, n int64) *big.Int {
	return new(big.Int).Exp(big.NewInt(base), big.NewInt(n), nil)
}

// rangeError reports coef*10^exp, shortening long coefficients.
func rangeError(coef *big.Int, exp int64, scale Scale) error {
	const maxDigits = 24
	s := coef.String()
	if len(s) > maxDigits {
		s = s[:maxDigits] + "..."
	}
	return errors.Wrapf(ErrRange, "%se%d at scale %v", s, exp, scale)
}

// prepareString cleans the string from " symbols and spaces.
func prepareString(s string) string {
	s = strings.TrimFunc(s, unicode.IsSpace)
	if len(s) >= 2 && s[0] == '"' && s[len(s)-1] == '"' {
		s = strings.TrimFunc(s[1:len(s)-1], unicode.IsSpace)
	}
	return s
}
