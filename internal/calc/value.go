package calc

import (
	"math"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// Value is a number produced by the interpreter, either an integer or a
// float. A literal without a decimal point or exponent evaluates to an
// integer, any other literal evaluates to a float. Arithmetic keeps integer
// operands integral, except for division which always yields a float.
type Value struct {
	isInt bool
	i     int64
	f     float64
}

// NewInt creates an integer value
func NewInt(i int64) Value {
	return Value{isInt: true, i: i}
}

// NewFloat creates a float value
func NewFloat(f float64) Value {
	return Value{isInt: false, f: f}
}

// IsInt returns true if the value is an integer
func (v Value) IsInt() bool {
	return v.isInt
}

// Int returns the value as an integer, truncating a float
func (v Value) Int() int64 {
	if v.isInt {
		return v.i
	}
	return int64(v.f)
}

// Float returns the value as a float
func (v Value) Float() float64 {
	if v.isInt {
		return float64(v.i)
	}
	return v.f
}

// IsZero returns true if the value equals zero in either representation
func (v Value) IsZero() bool {
	if v.isInt {
		return v.i == 0
	}
	return v.f == 0
}

// Add returns the sum of the two values
func (v Value) Add(other Value) Value {
	if v.isInt && other.isInt {
		return NewInt(v.i + other.i)
	}
	return NewFloat(v.Float() + other.Float())
}

// Sub returns the difference of the two values
func (v Value) Sub(other Value) Value {
	if v.isInt && other.isInt {
		return NewInt(v.i - other.i)
	}
	return NewFloat(v.Float() - other.Float())
}

// Mul returns the product of the two values
func (v Value) Mul(other Value) Value {
	if v.isInt && other.isInt {
		return NewInt(v.i * other.i)
	}
	return NewFloat(v.Float() * other.Float())
}

// Div returns the quotient of the two values. The result is always a float,
// regardless of the operand types. The caller must reject a zero divisor.
func (v Value) Div(other Value) Value {
	return NewFloat(v.Float() / other.Float())
}

// Pow raises the value to the given exponent. An integer base with a
// non-negative integer exponent yields an integer, any other combination
// yields a float.
func (v Value) Pow(other Value) Value {
	if v.isInt && other.isInt && other.i >= 0 {
		return NewInt(ipow(v.i, other.i))
	}
	return NewFloat(math.Pow(v.Float(), other.Float()))
}

// Neg returns the value with its sign flipped
func (v Value) Neg() Value {
	if v.isInt {
		return NewInt(-v.i)
	}
	return NewFloat(-v.f)
}

func (v Value) String() string {
	if v.isInt {
		return strconv.FormatInt(v.i, 10)
	}
	s := strconv.FormatFloat(v.f, 'g', -1, 64)
	// an integral float still displays with a decimal point
	if !strings.ContainsAny(s, ".eE") && v.f == math.Trunc(v.f) {
		s += ".0"
	}
	return s
}

// MarshalYAML keeps the integer/float distinction when the value is written
// to a session file. An integral float is emitted through its display form
// ("5.0"), otherwise the scalar would read back as an integer.
func (v Value) MarshalYAML() (interface{}, error) {
	if v.isInt {
		return v.i, nil
	}
	return &yaml.Node{
		Kind:  yaml.ScalarNode,
		Tag:   "!!float",
		Value: v.String(),
	}, nil
}

// UnmarshalYAML restores a value from a session file, reading an integer
// scalar as an integer and anything else as a float.
func (v *Value) UnmarshalYAML(node *yaml.Node) error {
	if node.Tag == "!!int" {
		var i int64
		if err := node.Decode(&i); err != nil {
			return err
		}
		*v = NewInt(i)
		return nil
	}
	var f float64
	if err := node.Decode(&f); err != nil {
		return err
	}
	*v = NewFloat(f)
	return nil
}

// ipow computes base**exp for exp >= 0 by squaring
func ipow(base, exp int64) int64 {
	result := int64(1)
	for exp > 0 {
		if exp&1 == 1 {
			result *= base
		}
		base *= base
		exp >>= 1
	}
	return result
}
