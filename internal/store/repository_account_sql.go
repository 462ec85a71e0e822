// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-gym-keeper/internal/logger"
	"github.com/MKhiriev/go-gym-keeper/models"
)

const (
	accountsTable      = "accounts"
	emailKeyConstraint = "accounts_email_key_unique"
	idKeyConstraint    = "accounts_pkey"
)

var accountColumns = []string{
	"id", "full_name", "email", "phone", "password_hash",
	"height_cm", "weight_kg", "age_years", "gender",
	"desired_package", "fitness_goals", "registration_date", "profile_picture",
}

// accountRepository is the SQL implementation of [AccountRepository] for
// PostgreSQL and SQLite. Uniqueness is enforced by the email_key index.
type accountRepository struct {
	db      *DB
	builder sq.StatementBuilderType
	logger  *logger.Logger
}

// NewAccountRepository constructs a SQL-backed [AccountRepository].
func NewAccountRepository(db *DB, logger *logger.Logger) AccountRepository {
	logger.Debug().Str("dialect", db.dialect).Msg("creating sql account repository")
	return &accountRepository{
		db:      db,
		builder: db.statementBuilder(),
		logger:  logger,
	}
}

// maxInsertAttempts bounds the retries of an insert that lost the
// MAX(id)+1 race to a concurrent registration.
const maxInsertAttempts = 5

// CreateAccount inserts the account with id = MAX(id)+1. Two concurrent
// inserts may read the same MAX(id); the loser hits the primary key and is
// retried with a fresh id.
//
// Error handling:
//   - unique violation on the email key → [ErrEmailAlreadyExists].
//   - primary key collision after maxInsertAttempts → wrapped [ErrExecutingQuery].
//   - any other driver-level error → wrapped [ErrExecutingQuery].
func (r *accountRepository) CreateAccount(ctx context.Context, account models.Account) (models.Account, error) {
	log := logger.FromContext(ctx)

	query, args, err := r.builder.
		Insert(accountsTable).
		Columns(
			"id", "full_name", "email", "email_key", "phone", "password_hash",
			"height_cm", "weight_kg", "age_years", "gender",
			"desired_package", "fitness_goals", "registration_date", "profile_picture",
		).
		Values(
			sq.Expr("(SELECT COALESCE(MAX(id), 0) + 1 FROM "+accountsTable+")"),
			account.FullName, account.Email, models.EmailKey(account.Email), account.Phone, account.PasswordHash,
			account.HeightCm, account.WeightKg, account.AgeYears, account.Gender,
			account.DesiredPackage, account.FitnessGoals, account.RegistrationDate, account.ProfilePicture,
		).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		return models.Account{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	for attempt := 1; ; attempt++ {
		err = r.db.QueryRowContext(ctx, query, args...).Scan(&account.ID)
		if err == nil {
			return account, nil
		}
		if isEmailUniqueViolation(err) {
			return models.Account{}, ErrEmailAlreadyExists
		}
		if !isIDUniqueViolation(err) || attempt == maxInsertAttempts || ctx.Err() != nil {
			break
		}
		log.Debug().Int("attempt", attempt).Msg("account id taken by a concurrent insert, retrying")
	}

	log.Err(err).Str("func", "*accountRepository.CreateAccount").Msg("error inserting account")
	return models.Account{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
}

func (r *accountRepository) FindAccountByEmail(ctx context.Context, email string) (models.Account, error) {
	return r.findOne(ctx, sq.Eq{"email_key": models.EmailKey(email)})
}

func (r *accountRepository) FindAccountByID(ctx context.Context, id int64) (models.Account, error) {
	return r.findOne(ctx, sq.Eq{"id": id})
}

func (r *accountRepository) findOne(ctx context.Context, where sq.Eq) (models.Account, error) {
	query, args, err := r.builder.
		Select(accountColumns...).
		From(accountsTable).
		Where(where).
		ToSql()
	if err != nil {
		return models.Account{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	account, err := scanAccount(r.db.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return models.Account{}, ErrAccountNotFound
	}
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*accountRepository.findOne").Msg("error selecting account")
		return models.Account{}, err
	}

	return account, nil
}

func (r *accountRepository) ListAccounts(ctx context.Context) ([]models.Account, error) {
	log := logger.FromContext(ctx)

	query, args, err := r.builder.
		Select(accountColumns...).
		From(accountsTable).
		OrderBy("id").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*accountRepository.ListAccounts").Msg("error selecting accounts")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	accounts := make([]models.Account, 0)
	for rows.Next() {
		account, err := scanAccount(rows)
		if err != nil {
			return nil, err
		}
		accounts = append(accounts, account)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return accounts, nil
}

func (r *accountRepository) UpdatePasswordHash(ctx context.Context, id int64, passwordHash string) error {
	query, args, err := r.builder.
		Update(accountsTable).
		Set("password_hash", passwordHash).
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	res, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*accountRepository.UpdatePasswordHash").Msg("error updating password")
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	if affected == 0 {
		return ErrAccountNotFound
	}

	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanAccount(row rowScanner) (models.Account, error) {
	var a models.Account
	err := row.Scan(
		&a.ID, &a.FullName, &a.Email, &a.Phone, &a.PasswordHash,
		&a.HeightCm, &a.WeightKg, &a.AgeYears, &a.Gender,
		&a.DesiredPackage, &a.FitnessGoals, &a.RegistrationDate, &a.ProfilePicture,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return models.Account{}, err
	}
	if err != nil {
		return models.Account{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}
	return a, nil
}
