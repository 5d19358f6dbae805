package bignumber

import (
	"fmt"

	"github.com/predrag3141/canonform/ring"
)

// Ring is the ring of arbitrary-precision integers. It never modifies its
// operands and always returns a freshly allocated BigNumber.
type Ring struct{}

var (
	_ ring.Ring[*BigNumber]       = Ring{}
	_ ring.BezoutRing[*BigNumber] = Ring{}
)

func (Ring) Zero() *BigNumber { return NewFromInt64(0) }

func (Ring) One() *BigNumber { return NewFromInt64(1) }

func (Ring) FromInt64(x int64) *BigNumber { return NewFromInt64(x) }

func (Ring) FromString(s string) (*BigNumber, error) {
	return NewFromDecimalString(s)
}

func (Ring) Add(x, y *BigNumber) *BigNumber { return new(BigNumber).Add(x, y) }

func (Ring) Sub(x, y *BigNumber) *BigNumber { return new(BigNumber).Sub(x, y) }

func (Ring) Mul(x, y *BigNumber) *BigNumber { return new(BigNumber).Mul(x, y) }

func (Ring) Neg(x *BigNumber) *BigNumber { return new(BigNumber).Neg(x) }

func (Ring) Abs(x *BigNumber) *BigNumber { return new(BigNumber).Abs(x) }

func (Ring) Cmp(x, y *BigNumber) int { return x.Cmp(y) }

func (Ring) Sign(x *BigNumber) int { return x.Sign() }

func (Ring) DivMod(x, y *BigNumber) (*BigNumber, *BigNumber, error) {
	q, m, err := new(BigNumber).DivMod(x, y, new(BigNumber))
	if err != nil {
		return nil, nil, fmt.Errorf("%s: %w", err.Error(), ring.ErrDivisionByZero)
	}
	return q, m, nil
}

func (Ring) GCD(x, y *BigNumber) *BigNumber { return new(BigNumber).GCD(x, y) }

func (Ring) Bezout(a, b *BigNumber) (*BigNumber, *BigNumber, *BigNumber) {
	return new(BigNumber).GCDEx(a, b, new(BigNumber), new(BigNumber))
}

func (Ring) Float64(x *BigNumber) float64 { return x.AsFloat64() }

func (Ring) String(x *BigNumber) string { return x.String() }
