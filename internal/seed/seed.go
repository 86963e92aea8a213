// README: YAML seed manifest; sample products, customers, agents, and offers.
package seed

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

type Product struct {
	ID             int64   `yaml:"id"`
	Name           string  `yaml:"name"`
	Category       string  `yaml:"category"`
	WarrantyMonths int     `yaml:"warranty_months"`
	Price          float64 `yaml:"price"`
}

type Customer struct {
	Name            string `yaml:"name"`
	Email           string `yaml:"email"`
	ProductID       int64  `yaml:"product_id"`
	WarrantyExpiry  string `yaml:"warranty_expiry"`
	LastServiceDate string `yaml:"last_service_date"`
	MaintenancePlan string `yaml:"maintenance_plan"`
	Sentiment       string `yaml:"sentiment"`
}

type Agent struct {
	Name  string `yaml:"name"`
	Email string `yaml:"email"`
	Phone string `yaml:"phone"`
}

type Offer struct {
	Details    string `yaml:"details"`
	ValidUntil string `yaml:"valid_until"`
}

type Feedback struct {
	CustomerEmail string `yaml:"customer_email"`
	Text          string `yaml:"text"`
	Sentiment     string `yaml:"sentiment"`
}

type Manifest struct {
	Products  []Product  `yaml:"products"`
	Customers []Customer `yaml:"customers"`
	Agents    []Agent    `yaml:"agents"`
	Offers    []Offer    `yaml:"offers"`
	Feedback  []Feedback `yaml:"feedback"`
}

// Load reads and validates a seed manifest.
func Load(path string) (*Manifest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("seed: read %s: %w", path, err)
	}

	var m Manifest
	if err := yaml.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("seed: parse %s: %w", path, err)
	}
	if err := m.validate(); err != nil {
		return nil, fmt.Errorf("seed: %s: %w", path, err)
	}
	return &m, nil
}

func (m *Manifest) validate() error {
	if len(m.Products) == 0 {
		return fmt.Errorf("no products defined")
	}
	ids := make(map[int64]bool, len(m.Products))
	for _, p := range m.Products {
		if p.Category != "Refrigerator" {
			return fmt.Errorf("product %q: category must be Refrigerator, got %q", p.Name, p.Category)
		}
		ids[p.ID] = true
	}
	seen := make(map[string]bool, len(m.Customers))
	for _, c := range m.Customers {
		if c.Email == "" {
			return fmt.Errorf("customer %q: email is required", c.Name)
		}
		if seen[c.Email] {
			return fmt.Errorf("duplicate customer email %q", c.Email)
		}
		seen[c.Email] = true
		if !ids[c.ProductID] {
			return fmt.Errorf("customer %q: unknown product id %d", c.Name, c.ProductID)
		}
	}
	return nil
}
