package repository

import (
	"context"
	"errors"
	"fmt"

	"acme_dashboard/internal/model"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// InvoiceRepository defines operations for invoice data
type InvoiceRepository interface {
	Create(ctx context.Context, invoice *model.Invoice) error
	Update(ctx context.Context, invoice *model.Invoice) error
	Delete(ctx context.Context, id string) error
	FindByID(ctx context.Context, id string) (*model.Invoice, error)
	FindFiltered(ctx context.Context, query string, limit, offset int) ([]model.InvoiceRow, error)
	CountFiltered(ctx context.Context, query string) (int, error)
}

type invoiceRepository struct {
	db DB
}

// NewInvoiceRepository creates a new InvoiceRepository
func NewInvoiceRepository(db DB) InvoiceRepository {
	return &invoiceRepository{db: db}
}

// Create inserts a new invoice, generating its id server-side.
func (r *invoiceRepository) Create(ctx context.Context, invoice *model.Invoice) error {
	invoice.ID = uuid.NewString()
	sql := `INSERT INTO invoices (id, customer_id, amount, status, date)
            VALUES ($1, $2, $3, $4, $5)`
	_, err := r.db.Exec(ctx, sql, invoice.ID, invoice.CustomerID, invoice.Amount, invoice.Status, invoice.Date)
	if err != nil {
		return fmt.Errorf("failed to create invoice: %w", err)
	}
	return nil
}

// Update replaces customer, amount and status of an invoice. Date is not
// modified.
func (r *invoiceRepository) Update(ctx context.Context, invoice *model.Invoice) error {
	sql := `UPDATE invoices
            SET customer_id = $1, amount = $2, status = $3
            WHERE id = $4`
	_, err := r.db.Exec(ctx, sql, invoice.CustomerID, invoice.Amount, invoice.Status, invoice.ID)
	if err != nil {
		return fmt.Errorf("failed to update invoice: %w", err)
	}
	return nil
}

// Delete removes an invoice. Deleting an id that matches no row is not an
// error; the statement still succeeds.
func (r *invoiceRepository) Delete(ctx context.Context, id string) error {
	sql := `DELETE FROM invoices WHERE id = $1`
	_, err := r.db.Exec(ctx, sql, id)
	if err != nil {
		return fmt.Errorf("failed to delete invoice: %w", err)
	}
	return nil
}

// FindByID retrieves an invoice by its id
func (r *invoiceRepository) FindByID(ctx context.Context, id string) (*model.Invoice, error) {
	invoice := &model.Invoice{}
	sql := `SELECT id, customer_id, amount, status, date::text FROM invoices WHERE id = $1`
	err := r.db.QueryRow(ctx, sql, id).Scan(
		&invoice.ID, &invoice.CustomerID, &invoice.Amount, &invoice.Status, &invoice.Date,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil // Not found, service layer handles it
		}
		return nil, fmt.Errorf("failed to find invoice by id: %w", err)
	}
	return invoice, nil
}

// FindFiltered retrieves a page of invoices joined with their customers,
// matching the search term against customer name, email, amount, date and
// status the way the dashboard table search does.
func (r *invoiceRepository) FindFiltered(ctx context.Context, query string, limit, offset int) ([]model.InvoiceRow, error) {
	sql := `SELECT i.id, i.customer_id, i.amount, i.status, i.date::text, c.name, c.email, c.image_url
            FROM invoices i JOIN customers c ON i.customer_id = c.id
            WHERE c.name ILIKE $1 OR c.email ILIKE $1
               OR i.amount::text ILIKE $1 OR i.date::text ILIKE $1 OR i.status ILIKE $1
            ORDER BY i.date DESC
            LIMIT $2 OFFSET $3`
	rows, err := r.db.Query(ctx, sql, "%"+query+"%", limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to query invoices: %w", err)
	}
	defer rows.Close()

	var invoices []model.InvoiceRow
	for rows.Next() {
		var inv model.InvoiceRow
		if err := rows.Scan(
			&inv.ID, &inv.CustomerID, &inv.Amount, &inv.Status, &inv.Date,
			&inv.CustomerName, &inv.CustomerEmail, &inv.ImageURL,
		); err != nil {
			return nil, fmt.Errorf("failed to scan invoice row: %w", err)
		}
		invoices = append(invoices, inv)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating invoice rows: %w", err)
	}
	return invoices, nil
}

// CountFiltered counts the invoices matching the search term, for the
// pagination control.
func (r *invoiceRepository) CountFiltered(ctx context.Context, query string) (int, error) {
	sql := `SELECT COUNT(*)
            FROM invoices i JOIN customers c ON i.customer_id = c.id
            WHERE c.name ILIKE $1 OR c.email ILIKE $1
               OR i.amount::text ILIKE $1 OR i.date::text ILIKE $1 OR i.status ILIKE $1`
	var count int
	if err := r.db.QueryRow(ctx, sql, "%"+query+"%").Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count invoices: %w", err)
	}
	return count, nil
}
