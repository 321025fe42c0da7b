package stdio

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"strings"

	"github.com/benbjohnson/clock"

	"github.com/ormanli/interest-te/internal/app/interest"
)

// Service defines the interface for computing account balances.
type Service interface {
	Compute(input interest.Input) (interest.Result, error)
}

// Transport runs the interactive prompt loop over a pair of text streams.
type Transport struct {
	service Service
	cfg     interest.Config
	scanner *bufio.Scanner
	out     io.Writer
	clock   clock.Clock
}

// NewTransport creates a new Transport reading prompts from in and writing to out.
func NewTransport(cfg interest.Config, service Service, clock clock.Clock, in io.Reader, out io.Writer) *Transport {
	return &Transport{
		cfg:     cfg,
		service: service,
		scanner: bufio.NewScanner(in),
		out:     out,
		clock:   clock,
	}
}

// Start prompts for the number of accounts and then collects, computes and
// reports each account in turn. Parse and validation errors abort the run.
func (t *Transport) Start(ctx context.Context) error {
	accounts, err := t.promptInt("\nHow many accounts do you want to calculate? ")
	if err != nil {
		return err
	}

	start := t.clock.Now()

	for i := 0; i < accounts; i++ {
		if err := ctx.Err(); err != nil {
			return err
		}

		input, err := t.promptInput()
		if err != nil {
			return fmt.Errorf("account %d: %w", i+1, err)
		}

		result, err := t.service.Compute(input)
		if err != nil {
			return fmt.Errorf("account %d: %w", i+1, err)
		}

		t.writeReport(input, result)
	}

	slog.Info("Batch finished", "accounts", accounts, "elapsed", t.clock.Since(start))

	return nil
}

// promptInput collects the four account parameters in fixed order.
func (t *Transport) promptInput() (interest.Input, error) {
	principal, err := t.promptFloat("What is the principal amount? ")
	if err != nil {
		return interest.Input{}, err
	}

	rate, err := t.promptFloat("What is the annual interest rate (in decimal format)? ")
	if err != nil {
		return interest.Input{}, err
	}

	years, err := t.promptInt("What is the duration in years? ")
	if err != nil {
		return interest.Input{}, err
	}

	compoundings, err := t.promptInt("How many times will interest be compounded each year? (Note: minimum is 1): ")
	if err != nil {
		return interest.Input{}, err
	}

	return interest.Input{
		Principal:           principal,
		AnnualRate:          rate,
		Years:               years,
		CompoundingsPerYear: compoundings,
	}, nil
}

// writeReport echoes the parsed inputs and prints the computed final value.
func (t *Transport) writeReport(input interest.Input, result interest.Result) {
	const indent = "     "

	fmt.Fprintf(t.out, "\n\n%sFINAL VALUES...\n", indent)
	fmt.Fprintf(t.out, "\n\n%sPrincipal = %v\n", indent, input.Principal)
	fmt.Fprintf(t.out, "%sInterest rate = %v\n", indent, input.AnnualRate)
	fmt.Fprintf(t.out, "%sYears = %d\n", indent, input.Years)
	fmt.Fprintf(t.out, "%sCompounding = %d time(s) per year\n\n", indent, input.CompoundingsPerYear)
	fmt.Fprintf(t.out, "Your total is: %v\n\n", result.FinalValue)
}

func (t *Transport) promptInt(prompt string) (int, error) {
	line, err := t.readLine(prompt)
	if err != nil {
		return 0, err
	}

	return strconv.Atoi(line)
}

func (t *Transport) promptFloat(prompt string) (float64, error) {
	line, err := t.readLine(prompt)
	if err != nil {
		return 0, err
	}

	return strconv.ParseFloat(line, 64)
}

func (t *Transport) readLine(prompt string) (string, error) {
	fmt.Fprint(t.out, prompt)

	if !t.scanner.Scan() {
		if err := t.scanner.Err(); err != nil {
			return "", err
		}

		return "", io.ErrUnexpectedEOF
	}

	return strings.TrimSpace(t.scanner.Text()), nil
}
