// Copyright (c) 2023 Colin McRae

package ring

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Int64 is the ring of machine integers. Results that do not fit in an
// int64 cause a panic whose value is an error wrapping ErrOverflow, since
// the arithmetic methods of a Ring have no error return. It is intended for
// small inputs and for cross-checking the arbitrary-precision ring.
type Int64 struct{}

var _ Ring[int64] = Int64{}

func overflow(op string, x, y int64) {
	panic(fmt.Errorf("Int64.%s(%d, %d): %w", op, x, y, ErrOverflow))
}

func (Int64) Zero() int64 { return 0 }

func (Int64) One() int64 { return 1 }

func (Int64) FromInt64(x int64) int64 { return x }

func (Int64) FromString(s string) (int64, error) {
	x, err := strconv.ParseInt(strings.TrimSpace(s), 10, 64)
	if err != nil {
		return 0, fmt.Errorf("Int64.FromString: could not parse %q: %w", s, err)
	}
	return x, nil
}

func (Int64) Add(x, y int64) int64 {
	s := x + y
	if (x > 0 && y > 0 && s < 0) || (x < 0 && y < 0 && s >= 0) {
		overflow("Add", x, y)
	}
	return s
}

func (Int64) Sub(x, y int64) int64 {
	d := x - y
	if (x >= 0 && y < 0 && d < 0) || (x < 0 && y > 0 && d >= 0) {
		overflow("Sub", x, y)
	}
	return d
}

func (Int64) Mul(x, y int64) int64 {
	if x == 0 || y == 0 {
		return 0
	}
	if (x == -1 && y == math.MinInt64) || (y == -1 && x == math.MinInt64) {
		overflow("Mul", x, y)
	}
	p := x * y
	if p/y != x {
		overflow("Mul", x, y)
	}
	return p
}

func (Int64) Neg(x int64) int64 {
	if x == math.MinInt64 {
		overflow("Neg", x, 0)
	}
	return -x
}

func (r Int64) Abs(x int64) int64 {
	if x < 0 {
		return r.Neg(x)
	}
	return x
}

func (Int64) Cmp(x, y int64) int {
	switch {
	case x < y:
		return -1
	case x > y:
		return 1
	}
	return 0
}

func (r Int64) Sign(x int64) int {
	return r.Cmp(x, 0)
}

func (Int64) DivMod(x, y int64) (int64, int64, error) {
	if y == 0 {
		return 0, 0, fmt.Errorf("Int64.DivMod(%d, 0): %w", x, ErrDivisionByZero)
	}
	if x == math.MinInt64 && y == -1 {
		overflow("DivMod", x, y)
	}
	q, m := x/y, x%y
	if m < 0 {
		if y > 0 {
			q--
			m += y
		} else {
			q++
			m -= y
		}
	}
	return q, m, nil
}

func (r Int64) GCD(x, y int64) int64 {
	x, y = r.Abs(x), r.Abs(y)
	for y != 0 {
		x, y = y, x%y
	}
	return x
}

func (Int64) Float64(x int64) float64 { return float64(x) }

func (Int64) String(x int64) string { return strconv.FormatInt(x, 10) }
