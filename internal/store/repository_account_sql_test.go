// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-gym-keeper/internal/config"
	"github.com/MKhiriev/go-gym-keeper/internal/logger"
	"github.com/MKhiriev/go-gym-keeper/models"
)

func newTestAccountRepo(t *testing.T) (AccountRepository, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	l := logger.Nop()
	repo := NewAccountRepository(&DB{DB: db, dialect: config.DriverPostgres, logger: l}, l)
	return repo, mock
}

func pgError(code, constraint string) error {
	return &pgconn.PgError{Code: code, ConstraintName: constraint}
}

func accountRows() *sqlmock.Rows {
	return sqlmock.NewRows(accountColumns)
}

func testAccount() models.Account {
	return models.Account{
		FullName:         "Jane Doe",
		Email:            "Jane@Example.com",
		Phone:            "+1 555 0100",
		PasswordHash:     "$2a$10$hash",
		HeightCm:         165,
		WeightKg:         60,
		AgeYears:         25,
		Gender:           "female",
		DesiredPackage:   "premium",
		FitnessGoals:     "strength",
		RegistrationDate: "2026-10-17",
	}
}

func TestAccountRepository_CreateAccount_Success(t *testing.T) {
	repo, mock := newTestAccountRepo(t)
	acc := testAccount()

	mock.ExpectQuery(`INSERT INTO accounts .*\(SELECT COALESCE\(MAX\(id\), 0\) \+ 1 FROM accounts\).* RETURNING id`).
		WithArgs(acc.FullName, acc.Email, "jane@example.com", acc.Phone, acc.PasswordHash,
			acc.HeightCm, acc.WeightKg, acc.AgeYears, acc.Gender,
			acc.DesiredPackage, acc.FitnessGoals, acc.RegistrationDate, acc.ProfilePicture).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(3))

	created, err := repo.CreateAccount(context.Background(), acc)
	require.NoError(t, err)
	assert.Equal(t, int64(3), created.ID)
	assert.Equal(t, acc.Email, created.Email)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAccountRepository_CreateAccount_UniqueViolation(t *testing.T) {
	repo, mock := newTestAccountRepo(t)

	mock.ExpectQuery("INSERT INTO accounts").
		WillReturnError(pgError(pgerrcode.UniqueViolation, emailKeyConstraint))

	_, err := repo.CreateAccount(context.Background(), testAccount())
	assert.ErrorIs(t, err, ErrEmailAlreadyExists)
}

// TestAccountRepository_CreateAccount_IDConflictRetried verifies that an
// insert losing the MAX(id)+1 race to a concurrent registration with another
// email is retried instead of failing.
func TestAccountRepository_CreateAccount_IDConflictRetried(t *testing.T) {
	repo, mock := newTestAccountRepo(t)

	mock.ExpectQuery("INSERT INTO accounts").
		WillReturnError(pgError(pgerrcode.UniqueViolation, idKeyConstraint))
	mock.ExpectQuery("INSERT INTO accounts").
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(8))

	created, err := repo.CreateAccount(context.Background(), testAccount())
	require.NoError(t, err)
	assert.Equal(t, int64(8), created.ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAccountRepository_CreateAccount_IDConflictExhausted(t *testing.T) {
	repo, mock := newTestAccountRepo(t)

	for range maxInsertAttempts {
		mock.ExpectQuery("INSERT INTO accounts").
			WillReturnError(pgError(pgerrcode.UniqueViolation, idKeyConstraint))
	}

	_, err := repo.CreateAccount(context.Background(), testAccount())
	assert.NotErrorIs(t, err, ErrEmailAlreadyExists)
	assert.ErrorIs(t, err, ErrExecutingQuery)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAccountRepository_CreateAccount_OtherErrorNotRetried(t *testing.T) {
	repo, mock := newTestAccountRepo(t)

	mock.ExpectQuery("INSERT INTO accounts").
		WillReturnError(pgError(pgerrcode.NotNullViolation, ""))

	_, err := repo.CreateAccount(context.Background(), testAccount())
	assert.ErrorIs(t, err, ErrExecutingQuery)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAccountRepository_FindAccountByEmail_CaseInsensitive(t *testing.T) {
	repo, mock := newTestAccountRepo(t)
	acc := testAccount()

	mock.ExpectQuery(`SELECT id, full_name, .* FROM accounts WHERE email_key = \$1`).
		WithArgs("jane@example.com").
		WillReturnRows(accountRows().AddRow(1, acc.FullName, acc.Email, acc.Phone, acc.PasswordHash,
			acc.HeightCm, acc.WeightKg, acc.AgeYears, acc.Gender,
			acc.DesiredPackage, acc.FitnessGoals, acc.RegistrationDate, acc.ProfilePicture))

	found, err := repo.FindAccountByEmail(context.Background(), "  JANE@example.COM ")
	require.NoError(t, err)
	assert.Equal(t, int64(1), found.ID)
	assert.Equal(t, acc.PasswordHash, found.PasswordHash)
	assert.Equal(t, "Jane@Example.com", found.Email)
}

func TestAccountRepository_FindAccountByEmail_NotFound(t *testing.T) {
	repo, mock := newTestAccountRepo(t)

	mock.ExpectQuery("SELECT id").
		WithArgs("nobody@example.com").
		WillReturnRows(accountRows())

	_, err := repo.FindAccountByEmail(context.Background(), "nobody@example.com")
	assert.ErrorIs(t, err, ErrAccountNotFound)
}

func TestAccountRepository_FindAccountByID_DBError(t *testing.T) {
	repo, mock := newTestAccountRepo(t)

	mock.ExpectQuery(`SELECT id.* WHERE id = \$1`).
		WithArgs(int64(7)).
		WillReturnError(sql.ErrConnDone)

	_, err := repo.FindAccountByID(context.Background(), 7)
	require.Error(t, err)
	assert.True(t, errors.Is(err, sql.ErrConnDone))
	assert.NotErrorIs(t, err, ErrAccountNotFound)
}

func TestAccountRepository_ListAccounts_Ordered(t *testing.T) {
	repo, mock := newTestAccountRepo(t)

	mock.ExpectQuery(`SELECT id.* FROM accounts ORDER BY id`).
		WillReturnRows(accountRows().
			AddRow(1, "A", "a@x.com", "", "h1", 0.0, 0.0, 0, "", "", "", "2026-01-01", "").
			AddRow(2, "B", "b@x.com", "", "h2", 180.0, 80.0, 30, "male", "", "", "2026-01-02", ""))

	accounts, err := repo.ListAccounts(context.Background())
	require.NoError(t, err)
	require.Len(t, accounts, 2)
	assert.Equal(t, int64(1), accounts[0].ID)
	assert.Equal(t, "b@x.com", accounts[1].Email)
	assert.Equal(t, 30, accounts[1].AgeYears)
}

func TestAccountRepository_ListAccounts_Empty(t *testing.T) {
	repo, mock := newTestAccountRepo(t)

	mock.ExpectQuery("SELECT id").WillReturnRows(accountRows())

	accounts, err := repo.ListAccounts(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, accounts)
	assert.Empty(t, accounts)
}

func TestAccountRepository_UpdatePasswordHash(t *testing.T) {
	repo, mock := newTestAccountRepo(t)

	mock.ExpectExec(`UPDATE accounts SET password_hash = \$1 WHERE id = \$2`).
		WithArgs("new-hash", int64(1)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, repo.UpdatePasswordHash(context.Background(), 1, "new-hash"))
}

func TestAccountRepository_UpdatePasswordHash_NotFound(t *testing.T) {
	repo, mock := newTestAccountRepo(t)

	mock.ExpectExec("UPDATE accounts").
		WillReturnResult(sqlmock.NewResult(0, 0))

	assert.ErrorIs(t, repo.UpdatePasswordHash(context.Background(), 99, "h"), ErrAccountNotFound)
}

// TestAccountRepository_SQLite runs against a real SQLite file, covering
// the goose migration and the SQLite unique violation.
func TestAccountRepository_SQLite(t *testing.T) {
	ctx := context.Background()
	l := logger.Nop()

	db, err := NewConnectSQLite(ctx, config.DB{Driver: config.DriverSQLite, DSN: t.TempDir() + "/gym.db"}, l)
	if err != nil {
		t.Skipf("sqlite unavailable: %v", err)
	}
	defer db.Close()
	require.NoError(t, db.Migrate(ctx))

	repo := NewAccountRepository(db, l)

	first, err := repo.CreateAccount(ctx, testAccount())
	require.NoError(t, err)
	assert.Equal(t, int64(1), first.ID)

	dup := testAccount()
	dup.Email = "JANE@example.com"
	_, err = repo.CreateAccount(ctx, dup)
	assert.ErrorIs(t, err, ErrEmailAlreadyExists)

	second := testAccount()
	second.Email = "john@example.com"
	created, err := repo.CreateAccount(ctx, second)
	require.NoError(t, err)
	assert.Equal(t, int64(2), created.ID)

	require.NoError(t, repo.UpdatePasswordHash(ctx, 2, "rotated"))
	found, err := repo.FindAccountByID(ctx, 2)
	require.NoError(t, err)
	assert.Equal(t, "rotated", found.PasswordHash)

	all, err := repo.ListAccounts(ctx)
	require.NoError(t, err)
	require.Len(t, all, 2)
	assert.Equal(t, "Jane@Example.com", all[0].Email)
}
