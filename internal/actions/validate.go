package actions

import (
	"strings"
	"unicode/utf8"

	"github.com/shopspring/decimal"
)

// maxNameLength matches the VARCHAR(30) columns of the schema
const maxNameLength = 30

// validateName accepts any non-blank name that fits the schema
func validateName(input string) error {
	name := strings.TrimSpace(input)
	if name == "" {
		return ErrEmptyName
	}
	if utf8.RuneCountInString(name) > maxNameLength {
		return ErrNameTooLong
	}
	return nil
}

// parseSalary reads a non-negative decimal amount, allowing "$" and "," for readability
func parseSalary(input string) (decimal.Decimal, error) {
	cleaned := strings.NewReplacer("$", "", ",", "", "_", "").Replace(strings.TrimSpace(input))
	if cleaned == "" {
		return decimal.Decimal{}, ErrInvalidSalary
	}

	salary, err := decimal.NewFromString(cleaned)
	if err != nil {
		return decimal.Decimal{}, ErrInvalidSalary
	}
	if salary.IsNegative() {
		return decimal.Decimal{}, ErrNegativeSalary
	}
	return salary, nil
}

func validateSalary(input string) error {
	_, err := parseSalary(input)
	return err
}
