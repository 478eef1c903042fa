// Package armstrong finds Armstrong numbers: integers equal to the sum of
// their decimal digits, each raised to the power of the digit count.
//
// Digit counting runs only while the value is positive, so every n <= 0 has
// a digit count and power sum of zero. Zero therefore always qualifies and
// negative numbers never do.
package armstrong

import "math"

// Bounds is an inclusive scan range with Low <= High.
type Bounds struct {
	Low  int
	High int
}

// Normalize orders a and b so the smaller one becomes Low.
func Normalize(a, b int) Bounds {
	if a > b {
		a, b = b, a
	}
	return Bounds{Low: a, High: b}
}

// Span returns High-Low as an unsigned value so it cannot overflow.
func (b Bounds) Span() uint64 {
	return uint64(b.High) - uint64(b.Low)
}

// DigitCount returns the number of decimal digits in n, or 0 when n <= 0.
func DigitCount(n int) int {
	count := 0
	for n > 0 {
		count++
		n /= 10
	}
	return count
}

// PowerSum returns the sum of each digit of n raised to DigitCount(n).
// It returns 0 when n <= 0. ok is false if the sum does not fit in an int.
func PowerSum(n int) (sum int, ok bool) {
	return powerSum(n, math.MaxInt)
}

// IsArmstrong reports whether n equals its power sum.
func IsArmstrong(n int) bool {
	if n < 0 {
		return false
	}
	sum, ok := powerSum(n, n)
	return ok && sum == n
}

// powerSum accumulates digit powers of n, stopping with ok=false as soon
// as the sum would exceed limit.
func powerSum(n, limit int) (sum int, ok bool) {
	count := DigitCount(n)
	for n > 0 {
		term := ipow(n%10, count)
		if term > limit-sum {
			return sum, false
		}
		sum += term
		n /= 10
	}
	return sum, true
}

// ipow is integer exponentiation by squaring. Digit bases and counts up to
// 19 stay within int64.
func ipow(base, exp int) int {
	result := 1
	for exp > 0 {
		if exp&1 == 1 {
			result *= base
		}
		exp >>= 1
		if exp > 0 {
			base *= base
		}
	}
	return result
}

// Each calls fn for every Armstrong number in b in ascending order and
// stops at the first error fn returns.
func Each(b Bounds, fn func(int) error) error {
	if b.Low > b.High {
		return nil
	}
	for i := b.Low; ; i++ {
		if IsArmstrong(i) {
			if err := fn(i); err != nil {
				return err
			}
		}
		if i == b.High {
			return nil
		}
	}
}

// Scan returns every Armstrong number in b in ascending order.
func Scan(b Bounds) []int {
	var found []int
	_ = Each(b, func(n int) error {
		found = append(found, n)
		return nil
	})
	return found
}
