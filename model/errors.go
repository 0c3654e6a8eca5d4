package model

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrInvalidInput is returned for unparseable or malformed input such as a bad date
	ErrInvalidInput = errors.New("invalid input")
	// ErrValidation is returned when a contract breaks one of its rules
	ErrValidation = errors.New("validation failed")
)

// FieldError describes one broken rule
type FieldError struct {
	Field string `json:"field"`
	Rule  string `json:"rule"`
}

// ValidationError lists the rules a contract breaks. It matches ErrValidation.
type ValidationError struct {
	ContractID int          `json:"contract_id,omitempty"`
	Fields     []FieldError `json:"fields"`
}

func (e *ValidationError) Error() string {
	parts := make([]string, len(e.Fields))
	for i, f := range e.Fields {
		parts[i] = f.Field + ": " + f.Rule
	}
	if e.ContractID != 0 {
		return fmt.Sprintf("contract %d: %s: %s", e.ContractID, ErrValidation, strings.Join(parts, ", "))
	}
	return fmt.Sprintf("%s: %s", ErrValidation, strings.Join(parts, ", "))
}

func (e *ValidationError) Is(target error) bool { return target == ErrValidation }
