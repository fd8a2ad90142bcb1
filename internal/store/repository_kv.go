// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-doc-archive/internal/logger"
)

type kvRepository struct {
	db     *DB
	logger *logger.Logger
}

// NewKeyValueRepository returns a [KeyValueRepository] backed by the
// kv_store table.
func NewKeyValueRepository(db *DB, logger *logger.Logger) KeyValueRepository {
	return &kvRepository{
		db:     db,
		logger: logger,
	}
}

func (r *kvRepository) Get(ctx context.Context, key string) ([]byte, error) {
	value, found, err := r.get(ctx, r.db, key)
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, ErrKeyNotFound
	}
	return value, nil
}

func (r *kvRepository) Set(ctx context.Context, key string, value []byte) error {
	return r.set(ctx, r.db, key, value)
}

func (r *kvRepository) Delete(ctx context.Context, key string) error {
	log := logger.FromContext(ctx)

	query, args, err := buildDeleteValueQuery(key)
	if err != nil {
		log.Err(err).Str("func", "kvRepository.Delete").Str("key", key).Msg("failed to build delete query")
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err = r.db.ExecContext(ctx, query, args...); err != nil {
		log.Err(err).Str("func", "kvRepository.Delete").Str("key", key).Msg("failed to delete value")
		return fmt.Errorf("%w: delete %s: %w", ErrExecutingStatement, key, err)
	}

	return nil
}

// Update runs fn on the current value of key and stores its result, all in
// one transaction. fn receives nil when the key is absent.
func (r *kvRepository) Update(ctx context.Context, key string, fn func(current []byte) ([]byte, error)) (err error) {
	log := logger.FromContext(ctx)

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		log.Err(err).Str("func", "kvRepository.Update").Str("key", key).Msg("failed to begin transaction")
		return fmt.Errorf("%w: %w", ErrBeginningTransaction, err)
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback()
		}
	}()

	current, _, err := r.get(ctx, tx, key)
	if err != nil {
		return err
	}

	next, err := fn(current)
	if err != nil {
		return err
	}

	if err = r.set(ctx, tx, key, next); err != nil {
		return err
	}

	if err = tx.Commit(); err != nil {
		log.Err(err).Str("func", "kvRepository.Update").Str("key", key).Msg("failed to commit transaction")
		return fmt.Errorf("%w: %w", ErrCommitingTransaction, err)
	}

	return nil
}

func (r *kvRepository) get(ctx context.Context, q querier, key string) ([]byte, bool, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildSelectValueQuery(key)
	if err != nil {
		log.Err(err).Str("func", "kvRepository.get").Str("key", key).Msg("failed to build select query")
		return nil, false, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var value []byte
	err = q.QueryRowContext(ctx, query, args...).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, false, nil
	}
	if err != nil {
		log.Err(err).Str("func", "kvRepository.get").Str("key", key).Msg("failed to read value")
		return nil, false, fmt.Errorf("%w: get %s: %w", ErrExecutingQuery, key, err)
	}

	return value, true, nil
}

func (r *kvRepository) set(ctx context.Context, q querier, key string, value []byte) error {
	log := logger.FromContext(ctx)

	query, args, err := buildUpsertValueQuery(key, value)
	if err != nil {
		log.Err(err).Str("func", "kvRepository.set").Str("key", key).Msg("failed to build upsert query")
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err = q.ExecContext(ctx, query, args...); err != nil {
		log.Err(err).Str("func", "kvRepository.set").Str("key", key).Msg("failed to write value")
		return fmt.Errorf("%w: set %s: %w", ErrExecutingStatement, key, err)
	}

	return nil
}

// decodeList decodes a stored JSON array. Absent and unreadable values both
// yield an empty list; the latter is logged so a corrupt value gets replaced
// on the next write instead of blocking the feature.
func decodeList[T any](ctx context.Context, key string, raw []byte) []T {
	if len(raw) == 0 {
		return []T{}
	}

	var list []T
	if err := json.Unmarshal(raw, &list); err != nil {
		logger.FromContext(ctx).Warn().Err(err).
			Str("func", "decodeList").
			Str("key", key).
			Msg("stored list is not valid JSON, treating as empty")
		return []T{}
	}
	if list == nil {
		return []T{}
	}
	return list
}

func encodeList[T any](list []T) ([]byte, error) {
	if list == nil {
		list = []T{}
	}
	payload, err := json.Marshal(list)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrEncodingValue, err)
	}
	return payload, nil
}

// loadList reads and decodes the JSON array stored under key.
func loadList[T any](ctx context.Context, kv KeyValueRepository, key string) ([]T, error) {
	raw, err := kv.Get(ctx, key)
	if errors.Is(err, ErrKeyNotFound) {
		return []T{}, nil
	}
	if err != nil {
		return nil, err
	}
	return decodeList[T](ctx, key, raw), nil
}

// updateList applies fn to the JSON array stored under key inside one
// transaction.
func updateList[T any](ctx context.Context, kv KeyValueRepository, key string, fn func(list []T) ([]T, error)) error {
	return kv.Update(ctx, key, func(current []byte) ([]byte, error) {
		next, err := fn(decodeList[T](ctx, key, current))
		if err != nil {
			return nil, err
		}
		return encodeList(next)
	})
}
