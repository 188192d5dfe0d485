// Package calc implements the arithmetic operations of the calculator.
package calc

import (
	"fmt"
	"math"

	"github.com/etnz/workbook"
)

// Errors of the operations. They all wrap workbook.ErrInvalidArgument.
var (
	// ErrDivisionByZero is returned by Divide when y is 0.
	ErrDivisionByZero = fmt.Errorf("%w: division by zero", workbook.ErrInvalidArgument)
	// ErrNegativeRoot is returned by Sqrt for a negative x.
	ErrNegativeRoot = fmt.Errorf("%w: square root of a negative number", workbook.ErrInvalidArgument)
	// ErrZeroBaseNegativePow is returned by Pow for 0 raised to a negative power.
	ErrZeroBaseNegativePow = fmt.Errorf("%w: zero raised to a negative power", workbook.ErrInvalidArgument)
)

// Add returns x + y.
func Add(x, y float64) float64 { return x + y }

// Subtract returns x - y.
func Subtract(x, y float64) float64 { return x - y }

// Multiply returns x * y.
func Multiply(x, y float64) float64 { return x * y }

// Sqr returns x squared.
func Sqr(x float64) float64 { return x * x }

// Divide returns x / y.
func Divide(x, y float64) (float64, error) {
	if y == 0 {
		return 0, ErrDivisionByZero
	}
	return x / y, nil
}

// Sqrt returns the square root of x.
func Sqrt(x float64) (float64, error) {
	if x < 0 {
		return 0, fmt.Errorf("%w: %g", ErrNegativeRoot, x)
	}
	return math.Sqrt(x), nil
}

// Pow returns x**y.
func Pow(x, y float64) (float64, error) {
	if x == 0 && y < 0 {
		return 0, ErrZeroBaseNegativePow
	}
	return math.Pow(x, y), nil
}

// Operation is a calculator operation taking one or two operands.
type Operation struct {
	Name  string
	Arity int
	Func  func(x, y float64) (float64, error)
}

// Operations lists the operations by their command line name.
var Operations = map[string]Operation{
	"add":  {"add", 2, func(x, y float64) (float64, error) { return Add(x, y), nil }},
	"sub":  {"sub", 2, func(x, y float64) (float64, error) { return Subtract(x, y), nil }},
	"mul":  {"mul", 2, func(x, y float64) (float64, error) { return Multiply(x, y), nil }},
	"div":  {"div", 2, Divide},
	"sqrt": {"sqrt", 1, func(x, _ float64) (float64, error) { return Sqrt(x) }},
	"sqr":  {"sqr", 1, func(x, _ float64) (float64, error) { return Sqr(x), nil }},
	"pow":  {"pow", 2, Pow},
}

// Eval applies the named operation to args.
func Eval(name string, args ...float64) (float64, error) {
	op, ok := Operations[name]
	if !ok {
		return 0, fmt.Errorf("%w: unknown operation %q", workbook.ErrInvalidArgument, name)
	}
	if len(args) != op.Arity {
		return 0, fmt.Errorf("%w: %s takes %d operand(s), got %d", workbook.ErrInvalidArgument, name, op.Arity, len(args))
	}
	var y float64
	if op.Arity == 2 {
		y = args[1]
	}
	return op.Func(args[0], y)
}
