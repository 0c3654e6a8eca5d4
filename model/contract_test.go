package model

import (
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"github.com/sgc-amambai/contracts/date"
)

func validContract() Contract {
	return Contract{
		ID:         1,
		Subject:    "Pavimentação Asfáltica Vila Limeira",
		Contractor: "Construtora MS Ltda",
		Value:      decimal.NewFromInt(1500000),
		StartDate:  date.MustParse("2023-01-10"),
		EndDate:    date.MustParse("2024-05-15"),
		Category:   CategoryWorks,
		Inspector:  "João Silva",
	}
}

func TestValidateAcceptsValidContract(t *testing.T) {
	if err := validContract().Validate(); err != nil {
		t.Fatalf("Expected valid contract, got %v", err)
	}

	c := validContract()
	c.Inspector = ""
	c.Value = decimal.Zero
	c.EndDate = c.StartDate
	if err := c.Validate(); err != nil {
		t.Errorf("Expected optional inspector, zero value and same-day end to be valid, got %v", err)
	}
}

func TestValidateRejects(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(c *Contract)
		field  string
		rule   string
	}{
		{"empty subject", func(c *Contract) { c.Subject = "" }, "subject", "required"},
		{"empty contractor", func(c *Contract) { c.Contractor = "" }, "contractor", "required"},
		{"blank subject", func(c *Contract) { c.Subject = "   " }, "subject", "required"},
		{"blank contractor", func(c *Contract) { c.Contractor = "\t\n" }, "contractor", "required"},
		{"unknown category", func(c *Contract) { c.Category = "donation" }, "category", "oneof"},
		{"negative value", func(c *Contract) { c.Value = decimal.NewFromInt(-1) }, "value", "nonnegative"},
		{"missing start", func(c *Contract) { c.StartDate = date.Date{} }, "start_date", "required"},
		{"missing end", func(c *Contract) { c.EndDate = date.Date{} }, "end_date", "required"},
		{"end before start", func(c *Contract) { c.EndDate = c.StartDate.Add(-1) }, "end_date", "gte_start_date"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := validContract()
			tt.mutate(&c)

			err := c.Validate()
			if !errors.Is(err, ErrValidation) {
				t.Fatalf("Expected ErrValidation, got %v", err)
			}

			var ve *ValidationError
			if !errors.As(err, &ve) {
				t.Fatalf("Expected *ValidationError, got %T", err)
			}
			if ve.ContractID != 1 {
				t.Errorf("Expected contract id 1, got %d", ve.ContractID)
			}
			if len(ve.Fields) != 1 || ve.Fields[0].Field != tt.field || ve.Fields[0].Rule != tt.rule {
				t.Errorf("Expected %s/%s, got %+v", tt.field, tt.rule, ve.Fields)
			}
		})
	}
}

func TestNormalize(t *testing.T) {
	c := validContract()
	c.Subject = "  Locação de Impressoras "
	c.Contractor = "\tTech Print\n"
	c.Category = " Lease "
	c.Normalize()

	if c.Subject != "Locação de Impressoras" || c.Contractor != "Tech Print" {
		t.Errorf("Expected trimmed text, got %q / %q", c.Subject, c.Contractor)
	}
	if c.Category != CategoryLease {
		t.Errorf("Expected category %q, got %q", CategoryLease, c.Category)
	}

	c.Subject = "   "
	c.Normalize()
	if err := c.Validate(); !errors.Is(err, ErrValidation) {
		t.Errorf("Expected blank subject to be rejected, got %v", err)
	}
}

func TestTierAndCategoryConstants(t *testing.T) {
	tiers := []Tier{TierCurrent, TierAttention, TierCritical, TierExpired}
	expected := []string{"current", "attention", "critical", "expired"}
	for i, tier := range tiers {
		if string(tier) != expected[i] || Tiers[i] != tier {
			t.Errorf("Expected '%s', got '%s'", expected[i], tier)
		}
	}
	if len(Categories) != 5 {
		t.Errorf("Expected 5 categories, got %d", len(Categories))
	}
}

func TestMonthCountJSON(t *testing.T) {
	data, err := json.Marshal(MonthCount{Year: 2024, Month: time.May, Count: 2})
	if err != nil {
		t.Fatalf("Failed to marshal: %v", err)
	}
	if string(data) != `{"month":"2024-05","count":2}` {
		t.Errorf("Unexpected JSON: %s", data)
	}

	if !(MonthCount{Year: 2023, Month: time.December}).Before(MonthCount{Year: 2024, Month: time.January}) {
		t.Error("Expected 2023-12 before 2024-01")
	}
}

func TestContractJSON(t *testing.T) {
	body := `{"subject":"Merenda","contractor":"Alimentos S.A.","value":800000.5,
		"start_date":"2023-05-01","end_date":"2026-02-28","category":"purchases"}`

	var c Contract
	if err := json.Unmarshal([]byte(body), &c); err != nil {
		t.Fatalf("Failed to unmarshal: %v", err)
	}
	if !c.Value.Equal(decimal.RequireFromString("800000.5")) {
		t.Errorf("Expected value 800000.5, got %s", c.Value)
	}
	if c.EndDate != date.MustParse("2026-02-28") {
		t.Errorf("Expected end date 2026-02-28, got %s", c.EndDate)
	}
	if err := c.Validate(); err != nil {
		t.Errorf("Expected valid contract, got %v", err)
	}
}
