package fraction

import (
	"fmt"
	"math"
)

// The helpers below are the only places where numerators and denominators
// are combined. Each one checks the operands against the int32 bounds before
// operating, so a result is either exact or an ErrOverflow.

func safeAdd(a, b int32) (int32, error) {
	if (b > 0 && a > math.MaxInt32-b) || (b < 0 && a < math.MinInt32-b) {
		return 0, fmt.Errorf("%d + %d: %w", a, b, ErrOverflow)
	}
	return a + b, nil
}

func safeSub(a, b int32) (int32, error) {
	if (b < 0 && a > math.MaxInt32+b) || (b > 0 && a < math.MinInt32+b) {
		return 0, fmt.Errorf("%d - %d: %w", a, b, ErrOverflow)
	}
	return a - b, nil
}

func safeMul(a, b int32) (int32, error) {
	if a == 0 || b == 0 {
		return 0, nil
	}
	var overflow bool
	switch {
	case a > 0 && b > 0:
		overflow = a > math.MaxInt32/b
	case a > 0 && b < 0:
		overflow = b < math.MinInt32/a
	case a < 0 && b > 0:
		overflow = a < math.MinInt32/b
	default:
		overflow = a < math.MaxInt32/b
	}
	if overflow {
		return 0, fmt.Errorf("%d * %d: %w", a, b, ErrOverflow)
	}
	return a * b, nil
}
