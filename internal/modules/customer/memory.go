// README: In-memory customer store for tests and the no-database demo mode.
package customer

import (
	"context"
	"sync"
	"time"
)

// MemoryStore implements the same operations as Store without a database.
type MemoryStore struct {
	mu        sync.Mutex
	customers []Customer
	products  map[int64]Product
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{products: make(map[int64]Product)}
}

func (m *MemoryStore) AddProduct(p Product) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.products[p.ID] = p
}

func (m *MemoryStore) AddCustomer(c Customer) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.customers = append(m.customers, c)
}

func (m *MemoryStore) FindByEmail(_ context.Context, email string) (*Customer, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for i := range m.customers {
		if m.customers[i].Email == email {
			c := m.customers[i]
			return &c, nil
		}
	}
	return nil, ErrNotFound
}

func (m *MemoryStore) FindViewByEmail(_ context.Context, email string) (*View, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for i := range m.customers {
		if m.customers[i].Email != email {
			continue
		}
		c := m.customers[i]
		p, ok := m.products[c.ProductID]
		if !ok {
			return nil, ErrNotFound
		}
		return &View{
			CustomerID:      c.ID,
			Name:            c.Name,
			Email:           c.Email,
			ProductModel:    p.Name,
			WarrantyExpiry:  c.WarrantyExpiry,
			LastServiceDate: c.LastServiceDate,
			MaintenancePlan: c.MaintenancePlan,
		}, nil
	}
	return nil, ErrNotFound
}

func (m *MemoryStore) UpdateLastServiceDate(_ context.Context, email string, date time.Time) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for i := range m.customers {
		if m.customers[i].Email == email {
			d := date
			m.customers[i].LastServiceDate = &d
			return nil
		}
	}
	return ErrNotFound
}
