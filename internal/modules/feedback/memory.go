// README: In-memory feedback store for tests and the no-database demo mode.
package feedback

import (
	"context"
	"sync"
	"time"
)

type MemoryStore struct {
	mu        sync.Mutex
	nextID    int64
	records   []Record
	agents    []Agent
	offers    []Offer
	sentiment map[int64]Sentiment
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{nextID: 1, sentiment: make(map[int64]Sentiment)}
}

func (m *MemoryStore) AddAgent(a Agent) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.agents = append(m.agents, a)
}

func (m *MemoryStore) AddOffer(o Offer) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.offers = append(m.offers, o)
}

func (m *MemoryStore) InsertFeedback(_ context.Context, customerID int64, text string, sentiment Sentiment) (*Record, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	rec := Record{
		ID:         m.nextID,
		CustomerID: customerID,
		Text:       text,
		Sentiment:  sentiment,
		CreatedAt:  time.Now().UTC(),
	}
	m.nextID++
	m.records = append(m.records, rec)
	out := rec
	return &out, nil
}

func (m *MemoryStore) ListByCustomer(_ context.Context, customerID int64) ([]Record, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []Record
	for _, r := range m.records {
		if r.CustomerID == customerID {
			out = append(out, r)
		}
	}
	return out, nil
}

func (m *MemoryStore) ListAll(_ context.Context) ([]Record, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]Record, len(m.records))
	copy(out, m.records)
	return out, nil
}

func (m *MemoryStore) FindOneAgent(_ context.Context) (*Agent, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if len(m.agents) == 0 {
		return nil, ErrNoAgent
	}
	a := m.agents[0]
	return &a, nil
}

func (m *MemoryStore) ListOffers(_ context.Context) ([]Offer, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]Offer, len(m.offers))
	copy(out, m.offers)
	return out, nil
}

func (m *MemoryStore) UpdateCustomerSentiment(_ context.Context, customerID int64, sentiment Sentiment) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.sentiment[customerID] = sentiment
	return nil
}

// CustomerSentiment exposes the mirrored per-customer sentiment for assertions.
func (m *MemoryStore) CustomerSentiment(customerID int64) (Sentiment, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	s, ok := m.sentiment[customerID]
	return s, ok
}
