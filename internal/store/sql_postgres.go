// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	_ "github.com/jackc/pgx/v5/stdlib"

	"github.com/MKhiriev/go-gym-keeper/internal/config"
	"github.com/MKhiriev/go-gym-keeper/internal/logger"
)

// NewConnectPostgres opens and pings a PostgreSQL connection through the
// pgx database/sql driver.
func NewConnectPostgres(ctx context.Context, cfg config.DB, log *logger.Logger) (*DB, error) {
	conn, err := sql.Open("pgx", cfg.DSN)
	if err != nil {
		log.Err(err).Str("func", "NewConnectPostgres").Msg("error occurred during database connection")
		return nil, fmt.Errorf("error occurred during database connection: %w", err)
	}

	conn.SetMaxOpenConns(10)
	conn.SetMaxIdleConns(4)

	if err = conn.PingContext(ctx); err != nil {
		log.Err(err).Str("func", "NewConnectPostgres").Msg("error connecting database (ping)")
		conn.Close()
		return nil, err
	}
	log.Info().Str("func", "NewConnectPostgres").Msg("connected to database successfully")

	return &DB{
		DB:      conn,
		dialect: config.DriverPostgres,
		logger:  log,
	}, nil
}

func postgresError(err error) *pgconn.PgError {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr
	}
	return nil
}

// isEmailUniqueViolation reports whether err is a unique violation of the
// accounts email key in either supported dialect.
func isEmailUniqueViolation(err error) bool {
	if pgErr := postgresError(err); pgErr != nil {
		return pgErr.Code == pgerrcode.UniqueViolation && pgErr.ConstraintName == emailKeyConstraint
	}
	return isSQLiteEmailUniqueViolation(err)
}

// isIDUniqueViolation reports whether err is a primary key collision on the
// accounts table in either supported dialect.
func isIDUniqueViolation(err error) bool {
	if pgErr := postgresError(err); pgErr != nil {
		return pgErr.Code == pgerrcode.UniqueViolation && pgErr.ConstraintName == idKeyConstraint
	}
	return isSQLiteIDUniqueViolation(err)
}
