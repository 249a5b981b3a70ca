package domain

import (
	"time"

	"github.com/clubelmeta/CEM-SalonService/pkg/money"
)

// AddOnService is a catalog entry for an optional extra (catering,
// staffing, equipment) priced per unit. The catalog price is only a
// template: reservations snapshot it into their line items.
type AddOnService struct {
	ID             int64
	Name           string
	Description    string
	UnitPriceCents money.Cents
	UnitLabel      string // e.g. "per person", "per server"
	Active         bool

	CreatedAt time.Time
	UpdatedAt time.Time
}

// MembershipCode validates a claimed MEMBER classification at
// submission time. Inactive codes never validate.
type MembershipCode struct {
	ID         int64
	Code       string
	HolderName string
	Email      *string
	Active     bool

	CreatedAt time.Time
}
