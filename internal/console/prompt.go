package console

import (
	"fmt"
	"math"
	"strings"

	"github.com/shopspring/decimal"
	"github.com/spf13/cast"

	"github.com/shashiranjanraj/stockroom/app/controllers"
	"github.com/shashiranjanraj/stockroom/app/models"
	"github.com/shashiranjanraj/stockroom/pkg/validate"
)

const (
	msgLetters     = "Invalid input. Letters and spaces only."
	msgNonNegative = "Enter a non-negative integer."
	msgPositive    = "Enter a positive number."
	msgEmpty       = "Input cannot be empty."
	msgYesNo       = "Please answer y or n."
	msgItemNumber  = "Item number must be exactly 4 digits and positive (e.g., 0001)."
)

// line prints prompt and returns the next trimmed input line. At end of
// input it returns io.EOF.
func (s *Session) line(prompt string) (string, error) {
	fmt.Fprint(s.out, prompt)
	if !s.in.Scan() {
		fmt.Fprintln(s.out)
		if err := s.in.Err(); err != nil {
			return "", fmt.Errorf("console: read input: %w", err)
		}
		return "", errEOF
	}
	return strings.TrimSpace(s.in.Text()), nil
}

// ask re-prompts until the answer passes rules, printing hint after every
// rejected answer.
func (s *Session) ask(prompt, field, rules, hint string) (string, error) {
	for {
		in, err := s.line(prompt)
		if err != nil {
			return "", err
		}
		if msg := validate.Value(field, in, rules); msg != "" {
			s.log.Debug("input rejected", "field", field, "reason", msg)
			fmt.Fprintln(s.out, hint)
			continue
		}
		return in, nil
	}
}

func (s *Session) askText(prompt, field string) (string, error) {
	return s.ask(prompt, field, "required,alpha_space", msgLetters)
}

func (s *Session) askAny(prompt, field string) (string, error) {
	return s.ask(prompt, field, "required", msgEmpty)
}

// askInt reads an integer in [lo, hi]; hi < 0 means unbounded.
func (s *Session) askInt(prompt, field string, lo, hi int) (int, error) {
	rules := fmt.Sprintf("required,integer,gte=%d", lo)
	hint := msgNonNegative
	if hi >= 0 {
		rules += fmt.Sprintf(",lte=%d", hi)
		hint = fmt.Sprintf("Invalid input. Enter number between %d and %d.", lo, hi)
	}
	for {
		in, err := s.ask(prompt, field, rules, hint)
		if err != nil {
			return 0, err
		}
		n, err := atoi(in)
		if err != nil {
			s.log.Debug("input rejected", "field", field, "error", err)
			fmt.Fprintln(s.out, hint)
			continue
		}
		return n, nil
	}
}

func (s *Session) askNonNegative(prompt, field string) (int, error) {
	return s.askInt(prompt, field, 0, -1)
}

// askPositive reads a positive decimal and hands it to accept, re-prompting
// while accept reports false.
func (s *Session) askPositive(prompt, field string, accept func(decimal.Decimal) bool) (decimal.Decimal, error) {
	for {
		in, err := s.ask(prompt, field, "required,numeric,gt=0", msgPositive)
		if err != nil {
			return decimal.Zero, err
		}
		d, err := decimal.NewFromString(in)
		if err != nil || !accept(d) {
			s.log.Debug("input rejected", "field", field, "input", in)
			fmt.Fprintln(s.out, msgPositive)
			continue
		}
		return d, nil
	}
}

func (s *Session) askPositiveFloat(prompt, field string) (float64, error) {
	var f float64
	_, err := s.askPositive(prompt, field, func(d decimal.Decimal) bool {
		f = d.InexactFloat64()
		return f > 0 && !math.IsInf(f, 0)
	})
	return f, err
}

func (s *Session) askPrice() (decimal.Decimal, error) {
	return s.askPositive("Enter price: ", "price", func(d decimal.Decimal) bool { return d.IsPositive() })
}

func (s *Session) askYesNo(prompt, field string) (bool, error) {
	in, err := s.ask(prompt, field, "required,yes_no", msgYesNo)
	if err != nil {
		return false, err
	}
	return strings.EqualFold(in, "y"), nil
}

// askItemNumber reads a 4-digit positive item number not yet in use.
func (s *Session) askItemNumber() (models.ItemNumber, error) {
	for {
		in, err := s.ask("Enter item number: ", "item number", "required,digits=4,gt=0", msgItemNumber)
		if err != nil {
			return 0, err
		}
		n, err := atoi(in)
		if err != nil {
			return 0, err
		}
		if s.inv.IsItemNumberUsed(models.ItemNumber(n)) {
			fmt.Fprintln(s.out, controllers.MsgItemNumberUsed)
			continue
		}
		return models.ItemNumber(n), nil
	}
}

// atoi parses a validated decimal integer. The sign and leading zeros are
// split off first so "0042" and "-010" are never read as octal.
func atoi(s string) (int, error) {
	neg := strings.HasPrefix(s, "-")
	t := strings.TrimLeft(strings.TrimLeft(s, "+-"), "0")
	if t == "" {
		return 0, nil
	}
	n, err := cast.ToIntE(t)
	if neg {
		n = -n
	}
	return n, err
}
