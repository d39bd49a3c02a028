package repository

import (
	"context"
	"fmt"

	"acme_dashboard/internal/model"
)

// CustomerRepository defines operations for customer reference data
type CustomerRepository interface {
	List(ctx context.Context) ([]model.Customer, error)
}

type customerRepository struct {
	db DB
}

// NewCustomerRepository creates a new CustomerRepository
func NewCustomerRepository(db DB) CustomerRepository {
	return &customerRepository{db: db}
}

// List retrieves all customers for the invoice form picklist
func (r *customerRepository) List(ctx context.Context) ([]model.Customer, error) {
	sql := `SELECT id, name, email, image_url FROM customers ORDER BY name`
	rows, err := r.db.Query(ctx, sql)
	if err != nil {
		return nil, fmt.Errorf("failed to query customers: %w", err)
	}
	defer rows.Close()

	var customers []model.Customer
	for rows.Next() {
		var c model.Customer
		if err := rows.Scan(&c.ID, &c.Name, &c.Email, &c.ImageURL); err != nil {
			return nil, fmt.Errorf("failed to scan customer row: %w", err)
		}
		customers = append(customers, c)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating customer rows: %w", err)
	}
	return customers, nil
}
