package calc

import (
	"fmt"
	"io"

	"github.com/fatih/color"
)

// Reporter defines the interface for structures that can display errors to
// the user. A reporter separates error reporting code from error displaying
// code, so the evaluation pipeline never prints on its own.
type Reporter interface {
	Report(err error)
	HadError() bool
	Reset()
}

// SimpleReporter writes errors as-is to the inner writer
type SimpleReporter struct {
	writer io.Writer
	hadErr bool
}

func NewSimpleReporter(writer io.Writer) Reporter {
	return &SimpleReporter{writer, false}
}

func (reporter *SimpleReporter) Report(err error) {
	reporter.hadErr = true
	fmt.Fprintf(reporter.writer, "错误: %v\n", err)
}

func (reporter *SimpleReporter) HadError() bool {
	return reporter.hadErr
}

func (reporter *SimpleReporter) Reset() {
	reporter.hadErr = false
}

// ColorReporter writes errors in red to the inner writer
type ColorReporter struct {
	writer io.Writer
	red    *color.Color
	hadErr bool
}

func NewColorReporter(writer io.Writer) Reporter {
	return &ColorReporter{writer, color.New(color.FgRed), false}
}

func (reporter *ColorReporter) Report(err error) {
	reporter.hadErr = true
	reporter.red.Fprintf(reporter.writer, "错误: %v\n", err)
}

func (reporter *ColorReporter) HadError() bool {
	return reporter.hadErr
}

func (reporter *ColorReporter) Reset() {
	reporter.hadErr = false
}
