package repo

import (
	"context"
	"database/sql/driver"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rogerio-castellano/inventory-dashboard/internal/apperr"
	"github.com/rogerio-castellano/inventory-dashboard/internal/models"
)

const testProductID = "3f2b8f0e-9c1a-4c55-9a7e-2d5b7f6c1a10"

var (
	recordSaleSQL = regexp.QuoteMeta("UPDATE products SET quantity_available = quantity_available - $1")
	selectByIDSQL = regexp.QuoteMeta("SELECT " + productColumns + " FROM products WHERE id = $1")
	columns       = []string{"id", "title", "summary", "department", "unit_price", "quantity_available",
		"units_sold", "status", "images", "sales", "created_at", "updated_at"}
	created = time.Date(2025, 2, 1, 8, 0, 0, 0, time.UTC)
)

func productRow(qty, sold int, sales string) []driver.Value {
	return []driver.Value{testProductID, "Pen", nil, "stationary", 10.0, int64(qty), int64(sold),
		"active", []byte(`["pen.png"]`), []byte(sales), created, created}
}

func newMockRepo(t *testing.T) (*PostgresProductRepository, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return NewPostgresProductRepository(db, time.Second), mock
}

func TestPostgresRecordSale_Success(t *testing.T) {
	r, mock := newMockRepo(t)
	at := time.Date(2025, 2, 3, 14, 5, 0, 0, time.UTC)

	mock.ExpectQuery(recordSaleSQL).
		WithArgs(30, at.Format(time.RFC3339Nano), at, testProductID).
		WillReturnRows(sqlmock.NewRows(columns).AddRow(
			productRow(70, 30, `[{"date":"2025-02-03T14:05:00Z","quantity":30,"price_at_sale":10}]`)...))

	p, err := r.RecordSale(context.Background(), testProductID, 30, at)
	require.NoError(t, err)
	assert.Equal(t, 70, p.QuantityAvailable)
	assert.Equal(t, 30, p.UnitsSold)
	require.Len(t, p.Sales, 1)
	assert.Equal(t, models.Sale{Date: at, Quantity: 30, PriceAtSale: 10}, p.Sales[0])
	assert.Equal(t, []string{"pen.png"}, p.Images)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresRecordSale_InsufficientStock(t *testing.T) {
	r, mock := newMockRepo(t)

	mock.ExpectQuery(recordSaleSQL).
		WithArgs(6, sqlmock.AnyArg(), sqlmock.AnyArg(), testProductID).
		WillReturnRows(sqlmock.NewRows(columns))
	mock.ExpectQuery(selectByIDSQL).
		WithArgs(testProductID).
		WillReturnRows(sqlmock.NewRows(columns).AddRow(productRow(5, 0, `[]`)...))

	p, err := r.RecordSale(context.Background(), testProductID, 6, time.Now())
	assert.ErrorIs(t, err, ErrInsufficientStock)
	assert.Equal(t, 5, p.QuantityAvailable)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresRecordSale_NotFound(t *testing.T) {
	r, mock := newMockRepo(t)

	mock.ExpectQuery(recordSaleSQL).WillReturnRows(sqlmock.NewRows(columns))
	mock.ExpectQuery(selectByIDSQL).WithArgs(testProductID).WillReturnRows(sqlmock.NewRows(columns))

	_, err := r.RecordSale(context.Background(), testProductID, 1, time.Now())
	assert.ErrorIs(t, err, ErrProductNotFound)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresRecordSale_MalformedID(t *testing.T) {
	r, mock := newMockRepo(t)

	_, err := r.RecordSale(context.Background(), "42", 1, time.Now())
	assert.ErrorIs(t, err, ErrProductNotFound)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresRecordSale_DriverError(t *testing.T) {
	r, mock := newMockRepo(t)
	boom := errors.New("connection reset by peer")

	mock.ExpectQuery(recordSaleSQL).WillReturnError(boom)

	_, err := r.RecordSale(context.Background(), testProductID, 1, time.Now())
	assert.ErrorIs(t, err, boom)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresGetByID_RejectsInconsistentLedger(t *testing.T) {
	r, mock := newMockRepo(t)

	mock.ExpectQuery(selectByIDSQL).
		WithArgs(testProductID).
		WillReturnRows(sqlmock.NewRows(columns).AddRow(productRow(5, 4, `[{"date":"2025-02-03T14:05:00Z","quantity":3,"price_at_sale":10}]`)...))

	_, err := r.GetByID(context.Background(), testProductID)
	require.Error(t, err)
	assert.True(t, apperr.IsValidation(err))
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresGetByID_RejectsMalformedFields(t *testing.T) {
	tests := []struct {
		name  string
		col   int
		value driver.Value
		field string
	}{
		{"short title", 1, "P", "title"},
		{"blank title", 1, "  ", "title"},
		{"empty department", 3, "", "department"},
		{"unknown status", 7, "sold-out", "status"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, mock := newMockRepo(t)
			row := productRow(5, 0, `[]`)
			row[tt.col] = tt.value
			mock.ExpectQuery(selectByIDSQL).
				WithArgs(testProductID).
				WillReturnRows(sqlmock.NewRows(columns).AddRow(row...))

			_, err := r.GetByID(context.Background(), testProductID)
			var ve *apperr.ValidationError
			require.True(t, errors.As(err, &ve))
			assert.Equal(t, tt.field, ve.Field)
			require.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestPostgresGetByID_RejectsBadSalesJSON(t *testing.T) {
	r, mock := newMockRepo(t)

	mock.ExpectQuery(selectByIDSQL).
		WithArgs(testProductID).
		WillReturnRows(sqlmock.NewRows(columns).AddRow(productRow(5, 0, `{"not":"a list"}`)...))

	_, err := r.GetByID(context.Background(), testProductID)
	assert.True(t, apperr.IsValidation(err))
}

func TestPostgresDelete(t *testing.T) {
	r, mock := newMockRepo(t)
	deleteSQL := regexp.QuoteMeta("DELETE FROM products WHERE id = $1")

	mock.ExpectExec(deleteSQL).WithArgs(testProductID).WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(deleteSQL).WithArgs(testProductID).WillReturnResult(sqlmock.NewResult(0, 0))

	require.NoError(t, r.Delete(context.Background(), testProductID))
	assert.ErrorIs(t, r.Delete(context.Background(), testProductID), ErrProductNotFound)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresCreate_DuplicateID(t *testing.T) {
	r, mock := newMockRepo(t)

	mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO products")).
		WillReturnError(&pgconn.PgError{Code: "23505"})

	_, err := r.Create(context.Background(), models.Product{ID: testProductID, Title: "Pen", Department: "stationary", UnitPrice: 1, Status: models.StatusActive})
	assert.ErrorIs(t, err, ErrDuplicatedValueUnique)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresFilter(t *testing.T) {
	r, mock := newMockRepo(t)
	limit := 10
	title := "pen"

	mock.ExpectQuery(regexp.QuoteMeta("SELECT COUNT(*) FROM products WHERE 1=1")).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))
	mock.ExpectQuery(regexp.QuoteMeta("SELECT " + productColumns + " FROM products WHERE 1=1")).
		WillReturnRows(sqlmock.NewRows(columns).AddRow(productRow(5, 0, `[]`)...))

	products, total, err := r.Filter(context.Background(), ProductFilter{Title: title, Limit: &limit})
	require.NoError(t, err)
	assert.Equal(t, 1, total)
	require.Len(t, products, 1)
	assert.Equal(t, "Pen", products[0].Title)
	require.NoError(t, mock.ExpectationsWereMet())
}
