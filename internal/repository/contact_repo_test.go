package repository

import (
	"context"
	"testing"
	"time"

	"spam_detector/internal/model"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pashagolub/pgxmock/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestContactRepository_Create_Duplicate(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewContactRepository(mock)

	mock.ExpectQuery(`INSERT INTO contacts`).
		WithArgs(pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg()).
		WillReturnError(&pgconn.PgError{Code: pgerrcode.UniqueViolation})

	err = repo.Create(context.Background(), &model.Contact{UserID: 1, Name: "Bob", PhoneNumber: "+15551234567"})

	assert.ErrorIs(t, err, ErrDuplicate)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestContactRepository_CreateAll_CommitsOnSuccess(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewContactRepository(mock)
	now := time.Now()
	contacts := []*model.Contact{
		{UserID: 1, Name: "A", PhoneNumber: "+15550000001", CreatedAt: now},
		{UserID: 1, Name: "B", PhoneNumber: "+15550000002", CreatedAt: now},
	}

	mock.ExpectBegin()
	mock.ExpectQuery(`INSERT INTO contacts`).
		WithArgs(1, "A", "+15550000001", now).
		WillReturnRows(pgxmock.NewRows([]string{"id"}).AddRow(10))
	mock.ExpectQuery(`INSERT INTO contacts`).
		WithArgs(1, "B", "+15550000002", now).
		WillReturnRows(pgxmock.NewRows([]string{"id"}).AddRow(11))
	mock.ExpectCommit()

	err = repo.CreateAll(context.Background(), contacts)

	assert.NoError(t, err)
	assert.Equal(t, 10, contacts[0].ID)
	assert.Equal(t, 11, contacts[1].ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestContactRepository_CreateAll_RollsBackOnDuplicate(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewContactRepository(mock)
	now := time.Now()
	contacts := []*model.Contact{
		{UserID: 1, Name: "A", PhoneNumber: "+15550000001", CreatedAt: now},
		{UserID: 1, Name: "B", PhoneNumber: "+15550000001", CreatedAt: now},
	}

	mock.ExpectBegin()
	mock.ExpectQuery(`INSERT INTO contacts`).
		WithArgs(1, "A", "+15550000001", now).
		WillReturnRows(pgxmock.NewRows([]string{"id"}).AddRow(10))
	mock.ExpectQuery(`INSERT INTO contacts`).
		WithArgs(1, "B", "+15550000001", now).
		WillReturnError(&pgconn.PgError{Code: pgerrcode.UniqueViolation})
	mock.ExpectRollback()

	err = repo.CreateAll(context.Background(), contacts)

	assert.ErrorIs(t, err, ErrDuplicate)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestContactRepository_FindUnregisteredByNameContains(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewContactRepository(mock)
	now := time.Now()

	mock.ExpectQuery(`phone_number NOT IN \(SELECT phone_number FROM users\)`).
		WithArgs("spam").
		WillReturnRows(pgxmock.NewRows([]string{"id", "user_id", "name", "phone_number", "created_at"}).
			AddRow(3, 2, "Spammer", "+16665554444", now))

	contacts, err := repo.FindUnregisteredByNameContains(context.Background(), "spam")

	assert.NoError(t, err)
	require.Len(t, contacts, 1)
	assert.Equal(t, "Spammer", contacts[0].Name)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestContactRepository_FindUnregisteredByNameContains_EscapesWildcards(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewContactRepository(mock)

	// A bare % must not act as a match-everything wildcard
	mock.ExpectQuery(`ILIKE '%' \|\| \$1 \|\| '%' ESCAPE`).
		WithArgs(`\%`).
		WillReturnRows(pgxmock.NewRows([]string{"id", "user_id", "name", "phone_number", "created_at"}))

	contacts, err := repo.FindUnregisteredByNameContains(context.Background(), `%`)

	assert.NoError(t, err)
	assert.Empty(t, contacts)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestContactRepository_ExistsForOwnerAndPhone(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewContactRepository(mock)

	mock.ExpectQuery(`SELECT EXISTS`).
		WithArgs(2, "+15551234567").
		WillReturnRows(pgxmock.NewRows([]string{"exists"}).AddRow(true))

	exists, err := repo.ExistsForOwnerAndPhone(context.Background(), 2, "+15551234567")

	assert.NoError(t, err)
	assert.True(t, exists)
	assert.NoError(t, mock.ExpectationsWereMet())
}
