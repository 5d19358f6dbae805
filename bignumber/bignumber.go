package bignumber

import (
	"fmt"
	"math/big"
	"strings"
)

// BigNumber is an arbitrary-precision integer.
//
// Its methods follow the math/big convention: the receiver is set to the
// result and returned, so calls can be chained and intermediate results can
// reuse storage. Values handed out by Ring are never modified afterwards,
// which is what lets matrices share them.
type BigNumber struct {
	value big.Int
}

// NewFromInt64 constructs an instance equal to the provided int64
func NewFromInt64(input int64) *BigNumber {
	bn := &BigNumber{}
	bn.value.SetInt64(input)
	return bn
}

// NewFromInt returns a BigNumber with the value of the provided big.Int
func NewFromInt(input *big.Int) *BigNumber {
	bn := &BigNumber{}
	bn.value.Set(input)
	return bn
}

// NewFromDecimalString parses an optionally signed decimal integer.
// Surrounding white space is ignored; anything else that is not a digit is
// an error.
func NewFromDecimalString(input string) (*BigNumber, error) {
	input = strings.TrimSpace(input)
	if len(input) == 0 {
		return nil, fmt.Errorf("NewFromDecimalString: input must have length > 0")
	}
	digits := strings.TrimLeft(input, "+-")
	if len(input)-len(digits) > 1 {
		return nil, fmt.Errorf("NewFromDecimalString: input has extraneous signs")
	}
	if strings.ContainsAny(digits, "+-_") {
		return nil, fmt.Errorf("NewFromDecimalString: input has extraneous signs")
	}
	bn := &BigNumber{}
	if _, ok := bn.value.SetString(input, 10); !ok {
		return nil, fmt.Errorf("NewFromDecimalString: could not parse %q as an integer", input)
	}
	return bn, nil
}

// NewFromBigNumber returns a BigNumber with the value of the provided input
func NewFromBigNumber(input *BigNumber) *BigNumber {
	return NewFromInt(&input.value)
}

// Set sets bn to x and returns bn. This is a deep copy
func (bn *BigNumber) Set(x *BigNumber) *BigNumber {
	bn.value.Set(&x.value)
	return bn
}

// Int returns a copy of the value of bn as a big.Int
func (bn *BigNumber) Int() *big.Int {
	return big.NewInt(0).Set(&bn.value)
}

// AsInt64 returns bn as an int64, if possible; otherwise 0 with an error
// message.
func (bn *BigNumber) AsInt64() (int64, error) {
	if bn.value.IsInt64() {
		return bn.value.Int64(), nil
	}
	return 0, fmt.Errorf("AsInt64: could not represent bn = %q as an int64", bn.value.String())
}

// AsFloat64 returns the float64 nearest to bn
func (bn *BigNumber) AsFloat64() float64 {
	f, _ := new(big.Float).SetInt(&bn.value).Float64()
	return f
}

// Cmp compares bn and y and returns:
//
// -1 if bn <  y
//
//	0 if bn == y
//
// +1 if bn >  y
func (bn *BigNumber) Cmp(y *BigNumber) int {
	return bn.value.Cmp(&y.value)
}

// Sign returns -1, 0 or +1 according to the sign of bn
func (bn *BigNumber) Sign() int {
	return bn.value.Sign()
}

// String formats bn in decimal
func (bn *BigNumber) String() string {
	return bn.value.String()
}

// Abs sets bn to |x| (the absolute value of x) and returns bn
func (bn *BigNumber) Abs(x *BigNumber) *BigNumber {
	bn.value.Abs(&x.value)
	return bn
}

// Neg sets bn to -x and returns bn
func (bn *BigNumber) Neg(x *BigNumber) *BigNumber {
	bn.value.Neg(&x.value)
	return bn
}

// Add sets bn to the sum x+y and returns bn
func (bn *BigNumber) Add(x *BigNumber, y *BigNumber) *BigNumber {
	bn.value.Add(&x.value, &y.value)
	return bn
}

// Sub sets bn to the difference x-y and returns bn
func (bn *BigNumber) Sub(x *BigNumber, y *BigNumber) *BigNumber {
	bn.value.Sub(&x.value, &y.value)
	return bn
}

// Mul sets bn to the product x*y and returns bn
func (bn *BigNumber) Mul(x *BigNumber, y *BigNumber) *BigNumber {
	bn.value.Mul(&x.value, &y.value)
	return bn
}

// MulAdd sets bn to bn + xy and returns bn.
//
// # Tested only on distinct bn, x and y
func (bn *BigNumber) MulAdd(x *BigNumber, y *BigNumber) *BigNumber {
	var xy big.Int
	xy.Mul(&x.value, &y.value)
	bn.value.Add(&bn.value, &xy)
	return bn
}

// Int64Mul sets bn to the product of int64 x and BigNumber y, and returns bn
func (bn *BigNumber) Int64Mul(x int64, y *BigNumber) *BigNumber {
	bn.value.Mul(big.NewInt(x), &y.value)
	return bn
}

// Int64MulAdd sets bn to bn + xy and returns bn.
func (bn *BigNumber) Int64MulAdd(x int64, y *BigNumber) *BigNumber {
	var xy big.Int
	xy.Mul(big.NewInt(x), &y.value)
	bn.value.Add(&bn.value, &xy)
	return bn
}

// DivMod sets bn to the quotient of the Euclidean division x/y, sets m to
// the remainder in {0,...,|y|-1} and returns bn and m. Unlike big.Int.DivMod,
// division by 0 is reported as an error rather than a panic.
func (bn *BigNumber) DivMod(x *BigNumber, y *BigNumber, m *BigNumber) (*BigNumber, *BigNumber, error) {
	if y.value.Sign() == 0 {
		return nil, nil, fmt.Errorf("BigNumber.DivMod: division by zero")
	}
	bn.value.DivMod(&x.value, &y.value, &m.value)
	return bn, m, nil
}

// Quo sets bn to x/y, which must be exact, and returns bn. If y == 0 or y
// does not divide x, an error is returned and bn is unchanged.
func (bn *BigNumber) Quo(x *BigNumber, y *BigNumber) (*BigNumber, error) {
	if y.value.Sign() == 0 {
		return nil, fmt.Errorf("BigNumber.Quo: division by zero")
	}
	var q, r big.Int
	q.QuoRem(&x.value, &y.value, &r)
	if r.Sign() != 0 {
		return nil, fmt.Errorf("BigNumber.Quo: %s does not divide %s", y.String(), x.String())
	}
	bn.value.Set(&q)
	return bn, nil
}

// GCD sets bn to the non-negative greatest common divisor of x and y and
// returns bn. GCD(0, 0) is 0.
func (bn *BigNumber) GCD(x *BigNumber, y *BigNumber) *BigNumber {
	bn.value.GCD(nil, nil, &x.value, &y.value)
	return bn
}

// GCDEx sets bn to g = GCD(x, y) and sets u and v so that u*x + v*y = g.
// It returns bn, u and v.
func (bn *BigNumber) GCDEx(x, y, u, v *BigNumber) (*BigNumber, *BigNumber, *BigNumber) {
	// big.Int.GCD accepts zero and negative operands and returns g >= 0
	var g, a, b big.Int
	g.GCD(&a, &b, &x.value, &y.value)
	bn.value.Set(&g)
	u.value.Set(&a)
	v.value.Set(&b)
	return bn, u, v
}

// IsZero reports whether bn is equal to 0
func (bn *BigNumber) IsZero() bool {
	return bn.value.Sign() == 0
}

// IsNegative reports whether bn is less than 0
func (bn *BigNumber) IsNegative() bool {
	return bn.value.Sign() < 0
}

// IsNonNegative reports whether bn is greater than or equal to 0
func (bn *BigNumber) IsNonNegative() bool {
	return bn.value.Sign() >= 0
}

// Equals reports whether bn is equal to x
func (bn *BigNumber) Equals(x *BigNumber) bool {
	return bn.value.Cmp(&x.value) == 0
}

// BitLen returns the length of |bn| in bits
func (bn *BigNumber) BitLen() int {
	return bn.value.BitLen()
}
