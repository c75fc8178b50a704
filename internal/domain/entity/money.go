package entity

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	errs "github.com/amirhossein-jamali/payledger/internal/domain/error"
)

// CurrencySymbol prefixes every display amount
const CurrencySymbol = "₹"

// ValidateAmount checks that an amount is a positive whole number of currency units
func ValidateAmount(amount int64) error {
	if amount <= 0 {
		return errs.NewValidationError("amount", amount, errs.ErrInvalidAmount)
	}
	return nil
}

// ParseAmount converts user input such as "300", "₹2,500" or " 1000 " into whole units.
// Fractions, signs and anything that is not a digit are rejected.
func ParseAmount(raw string) (int64, error) {
	s := strings.TrimSpace(raw)
	s = strings.TrimSpace(strings.TrimPrefix(s, CurrencySymbol))
	s = strings.ReplaceAll(s, ",", "")
	if s == "" {
		return 0, errs.NewValidationError("amount", raw, fmt.Errorf("%w: empty value", errs.ErrInvalidAmount))
	}

	for _, r := range s {
		if r < '0' || r > '9' {
			return 0, errs.NewValidationError("amount", raw, errs.ErrInvalidAmount)
		}
	}

	value, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		if errors.Is(err, strconv.ErrRange) {
			return 0, errs.NewValidationError("amount", raw, errs.ErrAmountOverflow)
		}
		return 0, errs.NewValidationError("amount", raw, fmt.Errorf("%w: %s", errs.ErrInvalidAmount, err.Error()))
	}

	if err := ValidateAmount(value); err != nil {
		return 0, err
	}
	return value, nil
}

// FormatAmount renders an amount with the currency symbol and Indian digit grouping.
// For example:
// - 300 becomes "₹300"
// - 225925 becomes "₹2,25,925"
func FormatAmount(amount int64) string {
	digits := strconv.FormatInt(amount, 10)
	sign := ""
	if strings.HasPrefix(digits, "-") {
		sign = "-"
		digits = digits[1:]
	}
	return sign + CurrencySymbol + groupDigits(digits)
}

// groupDigits keeps the last three digits together and groups the rest in pairs
func groupDigits(digits string) string {
	if len(digits) <= 3 {
		return digits
	}

	head, tail := digits[:len(digits)-3], digits[len(digits)-3:]
	var groups []string
	for len(head) > 2 {
		groups = append([]string{head[len(head)-2:]}, groups...)
		head = head[:len(head)-2]
	}
	if head != "" {
		groups = append([]string{head}, groups...)
	}

	return strings.Join(groups, ",") + "," + tail
}
