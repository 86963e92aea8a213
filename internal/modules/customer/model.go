// README: Customer and product records plus the joined view used for responses.
package customer

import (
	"errors"
	"time"
)

var ErrNotFound = errors.New("customer not found")

type Plan string

const (
	PlanBasic    Plan = "Basic"
	PlanStandard Plan = "Standard"
	PlanPremium  Plan = "Premium"
)

type Customer struct {
	ID              int64
	Name            string
	Email           string
	ProductID       int64
	WarrantyExpiry  time.Time
	LastServiceDate *time.Time
	MaintenancePlan Plan
	Sentiment       string
}

// Product is immutable after seeding; category is constrained to "Refrigerator".
type Product struct {
	ID             int64
	Name           string
	Category       string
	WarrantyMonths int
	Price          float64
}

// View is the read-only Customer+Product projection handed to the chat layer.
type View struct {
	CustomerID      int64
	Name            string
	Email           string
	ProductModel    string
	WarrantyExpiry  time.Time
	LastServiceDate *time.Time
	MaintenancePlan Plan
}
