// README: Customer store backed by PostgreSQL.
package customer

import (
	"context"
	"database/sql"
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

// FindByEmail looks up a customer by exact, case-sensitive email equality.
// Email is the sole identity key; there is no session or token concept.
func (s *Store) FindByEmail(ctx context.Context, email string) (*Customer, error) {
	row := s.db.QueryRow(ctx, `
		SELECT id, name, email, product_id, warranty_expiry, last_service_date,
		       maintenance_plan, sentiment
		FROM customers
		WHERE email = $1`, email,
	)

	var c Customer
	var plan string
	var lastService sql.NullTime
	err := row.Scan(
		&c.ID, &c.Name, &c.Email, &c.ProductID, &c.WarrantyExpiry, &lastService,
		&plan, &c.Sentiment,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	c.MaintenancePlan = Plan(plan)
	c.LastServiceDate = toTimePtr(lastService)
	return &c, nil
}

// FindViewByEmail joins the customer to its product for the response view.
func (s *Store) FindViewByEmail(ctx context.Context, email string) (*View, error) {
	row := s.db.QueryRow(ctx, `
		SELECT c.id, c.name, c.email, p.name, c.warranty_expiry, c.last_service_date,
		       c.maintenance_plan
		FROM customers c
		JOIN products p ON c.product_id = p.id
		WHERE c.email = $1`, email,
	)

	var v View
	var plan string
	var lastService sql.NullTime
	err := row.Scan(
		&v.CustomerID, &v.Name, &v.Email, &v.ProductModel, &v.WarrantyExpiry, &lastService,
		&plan,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	v.MaintenancePlan = Plan(plan)
	v.LastServiceDate = toTimePtr(lastService)
	return &v, nil
}

func (s *Store) UpdateLastServiceDate(ctx context.Context, email string, date time.Time) error {
	tag, err := s.db.Exec(ctx, `
		UPDATE customers SET last_service_date = $1 WHERE email = $2`,
		date, email,
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func toTimePtr(v sql.NullTime) *time.Time {
	if !v.Valid {
		return nil
	}
	t := v.Time
	return &t
}
