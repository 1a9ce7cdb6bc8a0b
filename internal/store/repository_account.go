// SPDX-License-Identifier: Apache-2.0

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/ndmitry/go-note-keeper/internal/logger"
	"github.com/ndmitry/go-note-keeper/models"
)

// AccountRepo is the SQL implementation of [AccountRepository].
type AccountRepo struct {
	db  *DB
	log *logger.Logger
}

// NewAccountRepo constructs an [AccountRepo] on top of an open database.
func NewAccountRepo(db *DB, log *logger.Logger) *AccountRepo {
	log.Debug().Msg("creating account repository")
	return &AccountRepo{db: db, log: log}
}

// CreateAccount implements [AccountRepository].
func (r *AccountRepo) CreateAccount(ctx context.Context, account models.Account) error {
	log := logger.FromContext(ctx)

	query, args, err := r.db.insertAccountQuery(account)
	if err != nil {
		log.Error().Err(err).Msg("failed to build insert account query")
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err = r.db.conn.ExecContext(ctx, query, args...); err != nil {
		if r.db.isUniqueViolation(err) {
			return ErrAccountAlreadyExists
		}
		log.Error().Err(err).
			Bool("retryable", r.db.classify(err) == Retryable).
			Msg("failed to insert account")
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return nil
}

// FindAccountByExternalID implements [AccountRepository].
func (r *AccountRepo) FindAccountByExternalID(ctx context.Context, externalID string) (models.Account, error) {
	log := logger.FromContext(ctx)

	query, args, err := r.db.selectAccountByExternalIDQuery(externalID)
	if err != nil {
		log.Error().Err(err).Msg("failed to build select account query")
		return models.Account{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var account models.Account
	row := r.db.conn.QueryRowContext(ctx, query, args...)
	err = row.Scan(&account.ID, &account.ExternalID, &account.DisplayName, &account.PasswordHash, &account.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Account{}, ErrAccountNotFound
		}
		log.Error().Err(err).
			Bool("retryable", r.db.classify(err) == Retryable).
			Msg("failed to scan account")
		return models.Account{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return account, nil
}

// CompleteAccount implements [AccountRepository].
func (r *AccountRepo) CompleteAccount(ctx context.Context, account models.Account) error {
	log := logger.FromContext(ctx)

	query, args, err := r.db.completeAccountQuery(account)
	if err != nil {
		log.Error().Err(err).Msg("failed to build complete account query")
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	result, err := r.db.conn.ExecContext(ctx, query, args...)
	if err != nil {
		log.Error().Err(err).
			Bool("retryable", r.db.classify(err) == Retryable).
			Msg("failed to update account")
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	if affected == 0 {
		return ErrAccountNotFound
	}

	return nil
}
