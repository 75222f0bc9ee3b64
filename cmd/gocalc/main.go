package main

// gocalc is an interactive arithmetic calculator with variables, built on a
// lexer, a recursive-descent parser, and a tree-walking interpreter.

import (
	"bufio"
	"fmt"
	"os"
	"sort"
	"strings"

	"git.sr.ht/~sircmpwn/getopt"

	"github.com/letung3105/calc/gocalc/internal/calc"
)

func main() {
	opts, optind, err := getopt.Getopts(os.Args, "te:")
	if err != nil {
		usage()
		os.Exit(64)
	}
	trace := false
	oneShot := ""
	for _, opt := range opts {
		switch opt.Option {
		case 't':
			trace = true
		case 'e':
			oneShot = opt.Value
		}
	}
	args := os.Args[optind:]
	if len(args) > 1 {
		usage()
		os.Exit(64)
	}

	reporter := calc.NewColorReporter(os.Stderr)
	calculator := calc.NewCalculator()
	if trace {
		calculator.SetTrace(os.Stderr)
	}

	switch {
	case oneShot != "":
		evaluate(oneShot, calculator, reporter, trace)
		exitIf(reporter.HadError(), 65)
	case len(args) == 1:
		runFile(args[0], calculator, reporter, trace)
	default:
		runPrompt(calculator, reporter, trace)
	}
}

func usage() {
	fmt.Println("Usage: gocalc [-t] [-e expression] [script]")
}

// evaluate runs one expression and prints its value
func evaluate(line string, calculator *calc.Calculator, reporter calc.Reporter, trace bool) {
	if trace {
		printAst(line)
	}
	val, err := calculator.Evaluate(line)
	if err != nil {
		reporter.Report(err)
		return
	}
	fmt.Printf("= %s\n", val)
}

// printAst dumps the expression's syntax tree to stderr, parse failures are
// left for the evaluation to report
func printAst(line string) {
	lexer := calc.NewLexer([]rune(line))
	tokens, err := lexer.Scan()
	if err != nil {
		return
	}
	expr, err := calc.NewParser(tokens).Parse()
	if err != nil {
		return
	}
	printer := new(calc.AstPrinter)
	fmt.Fprintf(os.Stderr, "ast: %s\n", printer.Print(expr))
}

// Run the calculator in REPL mode. Evaluation failures are reported and the
// loop continues without losing the session's variables.
func runPrompt(calculator *calc.Calculator, reporter calc.Reporter, trace bool) {
	s := bufio.NewScanner(os.Stdin)
	s.Split(bufio.ScanLines)
	for {
		fmt.Print(">>> ")
		if !s.Scan() {
			break
		}
		line := strings.TrimSpace(s.Text())
		if line == "" {
			continue
		}
		if runMeta(line, calculator, reporter, trace) {
			break
		}
		reporter.Reset()
	}
	exitOnError(s.Err(), 1)
}

// runMeta handles the REPL meta-commands, returning true when the session
// should terminate
func runMeta(line string, calculator *calc.Calculator, reporter calc.Reporter, trace bool) bool {
	fields := strings.Fields(line)
	switch strings.ToLower(fields[0]) {
	case "quit", "exit", "q":
		return true
	case "vars":
		printVariables(calculator)
	case "clear":
		calculator.ClearVariables()
		fmt.Println("变量已清空")
	case "save":
		if len(fields) != 2 {
			fmt.Println("用法: save <文件>")
			break
		}
		if err := calculator.SaveVariables(fields[1]); err != nil {
			reporter.Report(err)
		}
	case "load":
		if len(fields) != 2 {
			fmt.Println("用法: load <文件>")
			break
		}
		if err := calculator.LoadVariables(fields[1]); err != nil {
			reporter.Report(err)
		}
	default:
		evaluate(line, calculator, reporter, trace)
	}
	return false
}

func printVariables(calculator *calc.Calculator) {
	variables := calculator.Variables()
	names := make([]string, 0, len(variables))
	for name := range variables {
		names = append(names, name)
	}
	sort.Strings(names)
	fmt.Println("变量:")
	for _, name := range names {
		fmt.Printf("  %s = %s\n", name, variables[name])
	}
}

// Run the given file as a script, evaluating one expression per line
func runFile(fpath string, calculator *calc.Calculator, reporter calc.Reporter, trace bool) {
	bytes, err := os.ReadFile(fpath)
	exitOnError(err, 1)

	hadError := false
	for _, line := range strings.Split(string(bytes), "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		if trace {
			printAst(line)
		}
		val, err := calculator.Evaluate(line)
		if err != nil {
			reporter.Report(err)
			hadError = true
			continue
		}
		fmt.Printf("%s = %s\n", line, val)
	}
	exitIf(hadError, 65)
}

func exitOnError(err error, status int) {
	if err != nil {
		fmt.Fprintf(os.Stderr, "%v", err)
		os.Exit(status)
	}
}

func exitIf(cond bool, status int) {
	if cond {
		os.Exit(status)
	}
}
