package repository

import (
	"context"
	"errors"
	"regexp"
	"testing"

	pgxmock "github.com/pashagolub/pgxmock/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCustomerRepository_List(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	rows := pgxmock.NewRows([]string{"id", "name", "email", "image_url"}).
		AddRow("cust-1", "Delba de Oliveira", "delba@example.com", "/customers/delba.png").
		AddRow("cust-2", "Lee Robinson", "lee@example.com", "/customers/lee.png")

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT id, name, email, image_url FROM customers ORDER BY name`)).
		WillReturnRows(rows)

	repo := NewCustomerRepository(mock)

	customers, err := repo.List(context.Background())

	assert.NoError(t, err)
	assert.Len(t, customers, 2)
	assert.Equal(t, "Lee Robinson", customers[1].Name)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCustomerRepository_List_DBError(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT id, name, email, image_url FROM customers`)).
		WillReturnError(errors.New("connection reset"))

	repo := NewCustomerRepository(mock)

	customers, err := repo.List(context.Background())

	assert.Error(t, err)
	assert.Nil(t, customers)
	assert.NoError(t, mock.ExpectationsWereMet())
}
