package calc

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSimpleReporter(t *testing.T) {
	var out strings.Builder
	reporter := NewSimpleReporter(&out)

	assert := assert.New(t)
	assert.False(reporter.HadError())

	reporter.Report(NewLexError(0, "Invalid character '@'."))
	assert.True(reporter.HadError())
	assert.Equal("错误: [offset 0] Error: Invalid character '@'.\n", out.String())

	reporter.Reset()
	assert.False(reporter.HadError())
}

func TestColorReporter(t *testing.T) {
	var out strings.Builder
	reporter := NewColorReporter(&out)

	assert := assert.New(t)
	assert.False(reporter.HadError())

	reporter.Report(NewEvalError(
		NewToken(SLASH, "/", 3),
		"Division by zero.",
	))
	assert.True(reporter.HadError())
	assert.Contains(out.String(), "错误: [offset 3] Error at '/': Division by zero.")

	reporter.Reset()
	assert.False(reporter.HadError())
}
