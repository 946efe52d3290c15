// Package validate checks console input against comma-separated rules.
//
// Supported rules:
//
//	required            input must not be blank
//	yes_no              "y" or "n", any case
//	alpha_space         ASCII letters and spaces only
//	numeric             plain decimal number such as 12 or 9.99
//	integer             whole decimal number, optional leading minus
//	gt=N                number > N
//	gte=N               number >= N
//	lte=N               number <= N
//	digits=N            exactly N decimal digits
//
// Example:
//
//	if msg := validate.Value("item number", in, "required,digits=4,gt=0"); msg != "" { ... }
package validate

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

var (
	digitsOnlyRE = regexp.MustCompile(`^\d+$`)
	alphaSpaceRE = regexp.MustCompile(`^[A-Za-z ]+$`)
	integerRE    = regexp.MustCompile(`^-?\d+$`)
	numericRE    = regexp.MustCompile(`^-?\d+(\.\d+)?$`)
)

// Value validates in against tag and returns the first failing rule's
// message, or "" when in passes. Surrounding whitespace is ignored.
func Value(name, in, tag string) string {
	raw := strings.TrimSpace(in)
	for _, rule := range strings.Split(tag, ",") {
		if msg := apply(strings.TrimSpace(rule), name, raw); msg != "" {
			return msg
		}
	}
	return ""
}

func apply(rule, field, raw string) string {
	key, param, _ := strings.Cut(rule, "=")

	switch key {
	case "required":
		if raw == "" {
			return fmt.Sprintf("The %s field is required.", field)
		}
	case "yes_no":
		if lower := strings.ToLower(raw); lower != "y" && lower != "n" {
			return fmt.Sprintf("The %s field must be y or n.", field)
		}
	case "alpha_space":
		if !alphaSpaceRE.MatchString(raw) {
			return fmt.Sprintf("The %s field must contain only letters and spaces.", field)
		}
	case "numeric":
		if !numericRE.MatchString(raw) {
			return fmt.Sprintf("The %s field must be a number.", field)
		}
	case "integer":
		if !integerRE.MatchString(raw) {
			return fmt.Sprintf("The %s field must be an integer.", field)
		}
	case "gt":
		if d, ok := number(raw); !ok || !d.GreaterThan(bound(param)) {
			return fmt.Sprintf("The %s must be greater than %s.", field, param)
		}
	case "gte":
		if d, ok := number(raw); !ok || d.LessThan(bound(param)) {
			return fmt.Sprintf("The %s must be greater than or equal to %s.", field, param)
		}
	case "lte":
		if d, ok := number(raw); !ok || d.GreaterThan(bound(param)) {
			return fmt.Sprintf("The %s must be less than or equal to %s.", field, param)
		}
	case "digits":
		n, _ := strconv.Atoi(param)
		if !digitsOnlyRE.MatchString(raw) || len(raw) != n {
			return fmt.Sprintf("The %s must be %s digits.", field, param)
		}
	}
	return ""
}

// number reads raw as an exact decimal. Anything numericRE rejects is not
// a number, so comparisons never see inf, NaN or hex input.
func number(raw string) (decimal.Decimal, bool) {
	if !numericRE.MatchString(raw) {
		return decimal.Zero, false
	}
	d, err := decimal.NewFromString(raw)
	return d, err == nil
}

func bound(param string) decimal.Decimal {
	d, _ := decimal.NewFromString(strings.TrimSpace(param))
	return d
}
