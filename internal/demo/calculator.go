package demo

import (
	"context"
	"fmt"
	"io"
	"strconv"

	"github.com/aretw0/clif/pkg/domain"
)

// CalculatorName is the display name of the calculator pool.
const CalculatorName = "Calculator"

// Calculator keeps a running total. A fresh total starts on every push.
type Calculator struct {
	domain.NopHooks
	total float64
}

// NewCalculator creates a calculator pool.
func NewCalculator() *Calculator {
	return &Calculator{}
}

func (c *Calculator) Name() string { return CalculatorName }

// Total returns the running total.
func (c *Calculator) Total() float64 { return c.total }

func (c *Calculator) Commands() []domain.Command {
	return []domain.Command{
		domain.NewArgsCommand("add", c.apply(func(acc, v float64) float64 { return acc + v }),
			domain.WithHelp("Adds the numbers to the total"), domain.WithArguments("<Numbers>")),
		domain.NewArgsCommand("sub", c.apply(func(acc, v float64) float64 { return acc - v }),
			domain.WithHelp("Subtracts the numbers from the total"), domain.WithArguments("<Numbers>")),
		domain.NewArgsCommand("mul", c.apply(func(acc, v float64) float64 { return acc * v }),
			domain.WithHelp("Multiplies the total by the numbers"), domain.WithArguments("<Numbers>")),
		domain.NewCommand("total", func(ctx context.Context, inv domain.Invocation) error {
			c.print(inv.Controller.Output())
			return nil
		}, domain.WithHelp("Prints the total")),
		domain.NewCommand("clear", func(ctx context.Context, inv domain.Invocation) error {
			c.total = 0
			c.print(inv.Controller.Output())
			return nil
		}, domain.WithHelp("Resets the total to zero")),
	}
}

func (c *Calculator) OnStart(ctx context.Context, ctl domain.Controller) {
	c.total = 0
	fmt.Fprintln(ctl.Output(), "Calculator ready. Total is 0")
}

func (c *Calculator) OnExit(ctx context.Context, ctl domain.Controller) {
	fmt.Fprintln(ctl.Output(), "Final total: "+format(c.total))
}

// apply parses every operand before touching the total, so a bad number
// leaves the total unchanged.
func (c *Calculator) apply(op func(acc, v float64) float64) domain.Handler {
	return func(ctx context.Context, inv domain.Invocation) error {
		values := make([]float64, 0, len(inv.Args))
		for _, a := range inv.Args {
			if a == "" {
				continue
			}
			v, err := strconv.ParseFloat(a, 64)
			if err != nil {
				return fmt.Errorf("not a number: %q", a)
			}
			values = append(values, v)
		}
		for _, v := range values {
			c.total = op(c.total, v)
		}
		c.print(inv.Controller.Output())
		return nil
	}
}

func (c *Calculator) print(w io.Writer) {
	fmt.Fprintln(w, "Total: "+format(c.total))
}

func format(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}
