// README: Feedback store backed by PostgreSQL; also serves agents and offers.
package feedback

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type Store struct {
	db *pgxpool.Pool
}

func NewStore(db *pgxpool.Pool) *Store {
	return &Store{db: db}
}

func (s *Store) InsertFeedback(ctx context.Context, customerID int64, text string, sentiment Sentiment) (*Record, error) {
	row := s.db.QueryRow(ctx, `
		INSERT INTO feedback (customer_id, feedback_text, sentiment, created_at)
		VALUES ($1, $2, $3, $4)
		RETURNING id, created_at`,
		customerID, text, string(sentiment), time.Now().UTC(),
	)
	rec := Record{CustomerID: customerID, Text: text, Sentiment: sentiment}
	if err := row.Scan(&rec.ID, &rec.CreatedAt); err != nil {
		return nil, err
	}
	return &rec, nil
}

func (s *Store) ListByCustomer(ctx context.Context, customerID int64) ([]Record, error) {
	rows, err := s.db.Query(ctx, `
		SELECT id, customer_id, feedback_text, sentiment, created_at
		FROM feedback
		WHERE customer_id = $1
		ORDER BY id`, customerID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanRecords(rows)
}

func (s *Store) ListAll(ctx context.Context) ([]Record, error) {
	rows, err := s.db.Query(ctx, `
		SELECT id, customer_id, feedback_text, sentiment, created_at
		FROM feedback
		ORDER BY id`,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanRecords(rows)
}

// FindOneAgent returns any single agent for escalation.
func (s *Store) FindOneAgent(ctx context.Context) (*Agent, error) {
	row := s.db.QueryRow(ctx, `
		SELECT id, name, email, phone FROM agents ORDER BY id LIMIT 1`,
	)
	var a Agent
	err := row.Scan(&a.ID, &a.Name, &a.Email, &a.Phone)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNoAgent
	}
	if err != nil {
		return nil, err
	}
	return &a, nil
}

func (s *Store) ListOffers(ctx context.Context) ([]Offer, error) {
	rows, err := s.db.Query(ctx, `
		SELECT id, offer_details, valid_until FROM offers ORDER BY id`,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var offers []Offer
	for rows.Next() {
		var o Offer
		if err := rows.Scan(&o.ID, &o.Details, &o.ValidUntil); err != nil {
			return nil, err
		}
		offers = append(offers, o)
	}
	return offers, rows.Err()
}

func (s *Store) UpdateCustomerSentiment(ctx context.Context, customerID int64, sentiment Sentiment) error {
	_, err := s.db.Exec(ctx, `
		UPDATE customers SET sentiment = $1 WHERE id = $2`,
		string(sentiment), customerID,
	)
	return err
}

func scanRecords(rows pgx.Rows) ([]Record, error) {
	var out []Record
	for rows.Next() {
		var r Record
		var sentiment string
		if err := rows.Scan(&r.ID, &r.CustomerID, &r.Text, &sentiment, &r.CreatedAt); err != nil {
			return nil, err
		}
		r.Sentiment = Sentiment(sentiment)
		out = append(out, r)
	}
	return out, rows.Err()
}
