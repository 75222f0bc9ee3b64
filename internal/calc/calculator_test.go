package calc

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEvaluate(t *testing.T) {
	testCases := []struct {
		src string
		val Value
	}{
		{"3 + 5", NewInt(8)},
		{"10 - 4 * 2", NewInt(2)},
		{"(2 + 3) * 4", NewInt(20)},
		{"2 + 3 * 4", NewInt(14)},
		// power is right-associative
		{"2^3^2", NewInt(512)},
		{"2**3**2", NewInt(512)},
		// unary operators bind tighter than binary operators
		{"-5 + 3", NewInt(-2)},
		{"+(10 - 5)", NewInt(5)},
		{"-2^2", NewInt(4)},
		// division always yields a float
		{"10 / 2", NewFloat(5)},
		{"10 / 3", NewFloat(10.0 / 3.0)},
		{"3.14 * 2", NewFloat(6.28)},
		{"1e2", NewFloat(100)},
		{"5e-1", NewFloat(0.5)},
	}

	assert := assert.New(t)
	for _, tc := range testCases {
		calculator := NewCalculator()
		val, err := calculator.Evaluate(tc.src)

		assert.NoError(err, tc.src)
		assert.Equal(tc.val, val, tc.src)
	}
}

func TestEvaluateIsPureWithoutAssignment(t *testing.T) {
	calculator := NewCalculator()

	assert := assert.New(t)
	for i := 0; i < 3; i++ {
		val, err := calculator.Evaluate("(2 + 3) * 4")
		assert.NoError(err)
		assert.Equal(NewInt(20), val)
	}
	assert.Empty(calculator.Variables())
}

func TestEvaluateVariablesPersistAcrossCalls(t *testing.T) {
	calculator := NewCalculator()

	assert := assert.New(t)

	val, err := calculator.Evaluate("x = 5")
	assert.NoError(err)
	assert.Equal(NewInt(5), val)

	val, err = calculator.Evaluate("y = x * 2")
	assert.NoError(err)
	assert.Equal(NewInt(10), val)

	val, err = calculator.Evaluate("x + y")
	assert.NoError(err)
	assert.Equal(NewInt(15), val)

	val, err = calculator.Evaluate("(x + y) / 2")
	assert.NoError(err)
	assert.Equal(NewFloat(7.5), val)

	assert.Equal(
		map[string]Value{"x": NewInt(5), "y": NewInt(10)},
		calculator.Variables(),
	)
}

func TestEvaluateErrors(t *testing.T) {
	testCases := []struct {
		src     string
		errType error
		message string
	}{
		{"3 $ 4", &LexError{}, "Invalid character '$'."},
		{"2 +", &ParseError{}, "Expect expression."},
		{"(2 + 3", &ParseError{}, "Expect ')' after expression."},
		{"2 3", &ParseError{}, "Expect end of expression."},
		{"10 / 0", &EvalError{}, "Division by zero."},
		{"x + 1", &EvalError{}, "Undefined variable 'x'."},
	}

	assert := assert.New(t)
	for _, tc := range testCases {
		calculator := NewCalculator()
		_, err := calculator.Evaluate(tc.src)

		assert.IsType(tc.errType, err, tc.src)
		assert.Contains(err.Error(), tc.message, tc.src)
	}
}

func TestEvaluateFailureKeepsEnvironment(t *testing.T) {
	calculator := NewCalculator()

	assert := assert.New(t)

	_, err := calculator.Evaluate("x = 1")
	assert.NoError(err)

	// the right-hand side fails before the store
	_, err = calculator.Evaluate("x = y + 1")
	assert.IsType(&EvalError{}, err)

	_, err = calculator.Evaluate("z = 1 / 0")
	assert.IsType(&EvalError{}, err)

	assert.Equal(map[string]Value{"x": NewInt(1)}, calculator.Variables())
}

func TestClearVariables(t *testing.T) {
	calculator := NewCalculator()

	assert := assert.New(t)

	_, err := calculator.Evaluate("x = 5")
	assert.NoError(err)
	assert.Len(calculator.Variables(), 1)

	calculator.ClearVariables()
	assert.Empty(calculator.Variables())

	_, err = calculator.Evaluate("x")
	assert.IsType(&EvalError{}, err)
}

func TestVariablesReturnsCopy(t *testing.T) {
	calculator := NewCalculator()

	assert := assert.New(t)

	_, err := calculator.Evaluate("x = 5")
	assert.NoError(err)

	// mutating the snapshot must not affect the session
	variables := calculator.Variables()
	variables["x"] = NewInt(99)

	val, err := calculator.Evaluate("x")
	assert.NoError(err)
	assert.Equal(NewInt(5), val)
}
