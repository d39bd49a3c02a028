package repository

import (
	"context"
	"errors"
	"regexp"
	"testing"

	"acme_dashboard/internal/model"

	"github.com/jackc/pgx/v5"
	pgxmock "github.com/pashagolub/pgxmock/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInvoiceRepository_Create(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	mock.ExpectExec(regexp.QuoteMeta(`INSERT INTO invoices (id, customer_id, amount, status, date)`)).
		WithArgs(pgxmock.AnyArg(), "cust-1", int64(1250), "pending", "2026-08-31").
		WillReturnResult(pgxmock.NewResult("INSERT", 1))

	repo := NewInvoiceRepository(mock)
	invoice := &model.Invoice{CustomerID: "cust-1", Amount: 1250, Status: "pending", Date: "2026-08-31"}

	err = repo.Create(context.Background(), invoice)

	assert.NoError(t, err)
	assert.NotEmpty(t, invoice.ID, "create must generate an id")
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestInvoiceRepository_Create_DBError(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	mock.ExpectExec(regexp.QuoteMeta(`INSERT INTO invoices`)).
		WithArgs(pgxmock.AnyArg(), "cust-1", int64(1250), "pending", "2026-08-31").
		WillReturnError(errors.New("connection refused"))

	repo := NewInvoiceRepository(mock)
	invoice := &model.Invoice{CustomerID: "cust-1", Amount: 1250, Status: "pending", Date: "2026-08-31"}

	err = repo.Create(context.Background(), invoice)

	assert.Error(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestInvoiceRepository_Update(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	mock.ExpectExec(regexp.QuoteMeta(`UPDATE invoices`)).
		WithArgs("cust-2", int64(990), "paid", "inv-1").
		WillReturnResult(pgxmock.NewResult("UPDATE", 1))

	repo := NewInvoiceRepository(mock)
	invoice := &model.Invoice{ID: "inv-1", CustomerID: "cust-2", Amount: 990, Status: "paid"}

	err = repo.Update(context.Background(), invoice)

	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestInvoiceRepository_Delete(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	mock.ExpectExec(regexp.QuoteMeta(`DELETE FROM invoices WHERE id = $1`)).
		WithArgs("inv-1").
		WillReturnResult(pgxmock.NewResult("DELETE", 1))

	repo := NewInvoiceRepository(mock)

	err = repo.Delete(context.Background(), "inv-1")

	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestInvoiceRepository_Delete_NoMatchingRowIsNotAnError(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	mock.ExpectExec(regexp.QuoteMeta(`DELETE FROM invoices WHERE id = $1`)).
		WithArgs("missing").
		WillReturnResult(pgxmock.NewResult("DELETE", 0))

	repo := NewInvoiceRepository(mock)

	err = repo.Delete(context.Background(), "missing")

	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestInvoiceRepository_FindByID_NotFound(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT id, customer_id, amount, status, date::text FROM invoices WHERE id = $1`)).
		WithArgs("missing").
		WillReturnError(pgx.ErrNoRows)

	repo := NewInvoiceRepository(mock)

	invoice, err := repo.FindByID(context.Background(), "missing")

	assert.NoError(t, err)
	assert.Nil(t, invoice)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestInvoiceRepository_FindFiltered(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	rows := pgxmock.NewRows([]string{"id", "customer_id", "amount", "status", "date", "name", "email", "image_url"}).
		AddRow("inv-1", "cust-1", int64(1250), "pending", "2026-08-31", "Delba", "delba@example.com", "/customers/delba.png")

	mock.ExpectQuery(regexp.QuoteMeta(`FROM invoices i JOIN customers c ON i.customer_id = c.id`)).
		WithArgs("%delba%", 6, 0).
		WillReturnRows(rows)

	repo := NewInvoiceRepository(mock)

	invoices, err := repo.FindFiltered(context.Background(), "delba", 6, 0)

	assert.NoError(t, err)
	assert.Len(t, invoices, 1)
	assert.Equal(t, "Delba", invoices[0].CustomerName)
	assert.Equal(t, int64(1250), invoices[0].Amount)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestInvoiceRepository_CountFiltered(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT COUNT(*)`)).
		WithArgs("%%").
		WillReturnRows(pgxmock.NewRows([]string{"count"}).AddRow(13))

	repo := NewInvoiceRepository(mock)

	count, err := repo.CountFiltered(context.Background(), "")

	assert.NoError(t, err)
	assert.Equal(t, 13, count)
	assert.NoError(t, mock.ExpectationsWereMet())
}
