package repo

import (
	"context"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rogerio-castellano/inventory-dashboard/internal/models"
)

func TestPostgresUserRepository(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()
	r := NewPostgresUserRepository(db, time.Second)
	ctx := context.Background()
	now := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)

	selectSQL := regexp.QuoteMeta("SELECT id, username, password_hash, role, created_at, updated_at FROM users WHERE username = $1")
	insertSQL := regexp.QuoteMeta("INSERT INTO users (username, password_hash, role, created_at, updated_at)")

	mock.ExpectQuery(selectSQL).WithArgs("admin").
		WillReturnRows(sqlmock.NewRows([]string{"id", "username", "password_hash", "role", "created_at", "updated_at"}).
			AddRow(1, "admin", "hash", models.RoleAdmin, now, now))
	mock.ExpectQuery(selectSQL).WithArgs("ghost").
		WillReturnRows(sqlmock.NewRows([]string{"id", "username", "password_hash", "role", "created_at", "updated_at"}))
	mock.ExpectQuery(insertSQL).WithArgs("clerk", "hash", models.RoleStaff, sqlmock.AnyArg()).
		WillReturnRows(sqlmock.NewRows([]string{"id", "created_at", "updated_at"}).AddRow(2, now, now))
	mock.ExpectQuery(insertSQL).WithArgs("clerk", "hash", models.RoleStaff, sqlmock.AnyArg()).
		WillReturnError(&pgconn.PgError{Code: "23505"})

	u, err := r.GetByUsername(ctx, "admin")
	require.NoError(t, err)
	assert.Equal(t, models.RoleAdmin, u.Role)

	_, err = r.GetByUsername(ctx, "ghost")
	assert.ErrorIs(t, err, ErrUserNotFound)

	created, err := r.CreateUser(ctx, models.User{Username: "clerk", PasswordHash: "hash", Role: models.RoleStaff})
	require.NoError(t, err)
	assert.Equal(t, 2, created.ID)

	_, err = r.CreateUser(ctx, models.User{Username: "clerk", PasswordHash: "hash", Role: models.RoleStaff})
	assert.ErrorIs(t, err, ErrDuplicatedValueUnique)

	require.NoError(t, mock.ExpectationsWereMet())
}
