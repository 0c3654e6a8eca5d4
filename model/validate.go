package model

import (
	"errors"
	"reflect"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
)

var (
	validate     *validator.Validate
	validateOnce sync.Once
)

func contractValidator() *validator.Validate {
	validateOnce.Do(func() {
		validate = validator.New(validator.WithRequiredStructEnabled())
		validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
			name, _, _ := strings.Cut(fld.Tag.Get("json"), ",")
			if name == "-" {
				return ""
			}
			return name
		})
		validate.RegisterStructValidation(contractRules, Contract{})
	})
	return validate
}

// contractRules covers the rules that tags cannot express on date.Date and decimal.Decimal
func contractRules(sl validator.StructLevel) {
	c := sl.Current().Interface().(Contract)

	// The required tag only catches "", so whitespace-only text is reported here
	if c.Subject != "" && strings.TrimSpace(c.Subject) == "" {
		sl.ReportError(c.Subject, "subject", "Subject", "required", "")
	}
	if c.Contractor != "" && strings.TrimSpace(c.Contractor) == "" {
		sl.ReportError(c.Contractor, "contractor", "Contractor", "required", "")
	}
	if c.Value.IsNegative() {
		sl.ReportError(c.Value, "value", "Value", "nonnegative", "")
	}
	if c.StartDate.IsZero() {
		sl.ReportError(c.StartDate, "start_date", "StartDate", "required", "")
	}
	if c.EndDate.IsZero() {
		sl.ReportError(c.EndDate, "end_date", "EndDate", "required", "")
	}
	if !c.StartDate.IsZero() && !c.EndDate.IsZero() && c.EndDate.Before(c.StartDate) {
		sl.ReportError(c.EndDate, "end_date", "EndDate", "gte_start_date", "")
	}
}

// Normalize trims the free-text fields and lower-cases the category
func (c *Contract) Normalize() {
	c.Subject = strings.TrimSpace(c.Subject)
	c.Contractor = strings.TrimSpace(c.Contractor)
	c.Inspector = strings.TrimSpace(c.Inspector)
	c.Category = Category(strings.ToLower(strings.TrimSpace(string(c.Category))))
}

// Validate checks c against the contract rules. A non-nil error is a *ValidationError.
func (c Contract) Validate() error {
	err := contractValidator().Struct(c)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err
	}

	ve := &ValidationError{ContractID: c.ID}
	for _, fe := range verrs {
		ve.Fields = append(ve.Fields, FieldError{Field: fe.Field(), Rule: fe.Tag()})
	}
	return ve
}
