package armstrong

import (
	"bufio"
	"fmt"
	"io"
)

// Prompts written before each number is read.
const (
	PromptFirst  = "Enter first number: "
	PromptSecond = "Enter second number: "
)

// Printer writes Armstrong numbers in a range to Out.
type Printer struct {
	Out io.Writer

	// MaxSpan limits High-Low. Zero means unlimited.
	MaxSpan uint64
}

// NewPrinter creates a Printer writing to out. A maxSpan of zero disables
// the span check.
func NewPrinter(out io.Writer, maxSpan uint64) *Printer {
	return &Printer{Out: out, MaxSpan: maxSpan}
}

// Run prompts for two integers on in and prints the matches between them.
func (p *Printer) Run(in io.Reader) error {
	scanner := bufio.NewScanner(in)
	scanner.Split(bufio.ScanWords)

	if _, err := io.WriteString(p.Out, PromptFirst); err != nil {
		return err
	}
	first, err := readInt(scanner, "first number")
	if err != nil {
		return err
	}

	if _, err := io.WriteString(p.Out, PromptSecond); err != nil {
		return err
	}
	second, err := readInt(scanner, "second number")
	if err != nil {
		return err
	}

	_, err = p.Print(first, second)
	return err
}

// Print writes the header and every match between a and b, and returns the
// number of matches written.
func (p *Printer) Print(a, b int) (int, error) {
	bounds := Normalize(a, b)
	if p.MaxSpan > 0 && bounds.Span() > p.MaxSpan {
		return 0, &SpanError{Bounds: bounds, MaxSpan: p.MaxSpan}
	}

	if _, err := fmt.Fprintf(p.Out, "Armstrong numbers between %d and %d are: \n", bounds.Low, bounds.High); err != nil {
		return 0, err
	}

	matches := 0
	err := Each(bounds, func(n int) error {
		if _, err := fmt.Fprintf(p.Out, "%d, ", n); err != nil {
			return err
		}
		matches++
		return nil
	})
	return matches, err
}

func readInt(scanner *bufio.Scanner, field string) (int, error) {
	if !scanner.Scan() {
		err := scanner.Err()
		if err == nil {
			err = io.ErrUnexpectedEOF
		}
		return 0, &InputError{Field: field, Err: err}
	}
	return ParseInt(field, scanner.Text())
}
