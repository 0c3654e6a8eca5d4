package model

import (
	"github.com/shopspring/decimal"

	"github.com/sgc-amambai/contracts/date"
)

// Contract represents a government contract held in a session portfolio
type Contract struct {
	ID         int             `json:"id"`
	Subject    string          `json:"subject" validate:"required"`
	Contractor string          `json:"contractor" validate:"required"`
	Value      decimal.Decimal `json:"value"`
	StartDate  date.Date       `json:"start_date"`
	EndDate    date.Date       `json:"end_date"`
	Category   Category        `json:"category" validate:"oneof=works services purchases lease accreditation"`
	Inspector  string          `json:"inspector,omitempty"`
}

// Category is the kind of instrument a contract is
type Category string

// Category constants
const (
	CategoryWorks         Category = "works"
	CategoryServices      Category = "services"
	CategoryPurchases     Category = "purchases"
	CategoryLease         Category = "lease"
	CategoryAccreditation Category = "accreditation"
)

// Categories lists every category in display order
var Categories = []Category{
	CategoryWorks,
	CategoryServices,
	CategoryPurchases,
	CategoryLease,
	CategoryAccreditation,
}

// Tier is the risk category derived from the days left until a contract ends
type Tier string

// Tier constants
const (
	TierCurrent   Tier = "current"
	TierAttention Tier = "attention"
	TierCritical  Tier = "critical"
	TierExpired   Tier = "expired"
)

// Tiers lists every tier in display order
var Tiers = []Tier{TierCurrent, TierAttention, TierCritical, TierExpired}

// StatusResult is the classification of a single end date
type StatusResult struct {
	Tier          Tier `json:"tier"`
	DaysRemaining int  `json:"days_remaining"`
}

// Entry pairs a contract with its status
type Entry struct {
	Contract Contract     `json:"contract"`
	Status   StatusResult `json:"status"`
}
