// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/MKhiriev/gumi-collection/internal/logger"
	"github.com/MKhiriev/gumi-collection/models"
)

// itemRepository is the PostgreSQL-backed implementation of
// [ItemRepository] over the "collection_items" table.
//
// Every public method obtains a context-scoped logger via
// [logger.FromContext] so that database interactions are traced with the
// request's fields.
type itemRepository struct {
	*DB
	logger *logger.Logger
}

// NewItemRepository constructs an [ItemRepository] backed by db.
func NewItemRepository(db *DB, logger *logger.Logger) ItemRepository {
	return &itemRepository{
		DB:     db,
		logger: logger,
	}
}

// rowScanner is satisfied by *sql.Row and *sql.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}

func scanItem(row rowScanner) (models.CollectionItem, error) {
	var item models.CollectionItem
	err := row.Scan(
		&item.ID,
		&item.UserID,
		&item.Name,
		&item.IP,
		&item.Character,
		&item.Category,
		&item.SourceType,
		&item.Price,
		&item.Quantity,
		&item.PaymentStatus,
		&item.DepositAmount,
		&item.FinalPaymentAmount,
		&item.Status,
		&item.SoldPrice,
		&item.SoldQuantity,
		&item.PurchaseDate,
		&item.Notes,
		&item.ImageURL,
		&item.IsPinned,
		&item.IsReminderEnabled,
		&item.CreatedAt,
	)
	return item, err
}

// GetPage returns one page of the owner's items. With req.WithCount the
// exact number of items is queried as well. HasMore is false once a page
// comes back short; the total is informational and never decides it.
func (r *itemRepository) GetPage(ctx context.Context, req models.PageRequest) (models.ItemPage, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildItemPageQuery(req)
	if err != nil {
		log.Err(err).
			Str("func", "itemRepository.GetPage").
			Int64("user_id", req.UserID).
			Msg("failed to create query")
		return models.ItemPage{}, err
	}

	items, err := r.queryItems(ctx, "itemRepository.GetPage", req.UserID, query, args)
	if err != nil {
		return models.ItemPage{}, err
	}

	page := models.ItemPage{
		Items:   items,
		HasMore: len(items) >= req.Limit && req.Limit > 0,
	}

	if req.WithCount {
		var total int
		if err := r.DB.QueryRowContext(ctx, countItems, req.UserID).Scan(&total); err != nil {
			log.Err(err).
				Str("func", "itemRepository.GetPage").
				Int64("user_id", req.UserID).
				Msg("failed to count items")
			return models.ItemPage{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
		}
		page.Total = &total
	}

	return page, nil
}

// GetAllItems returns the whole collection in page order.
func (r *itemRepository) GetAllItems(ctx context.Context, userID int64) ([]models.CollectionItem, error) {
	query, args, err := buildAllItemsQuery(userID)
	if err != nil {
		return nil, err
	}
	return r.queryItems(ctx, "itemRepository.GetAllItems", userID, query, args)
}

func (r *itemRepository) GetItem(ctx context.Context, userID int64, id string) (models.CollectionItem, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildItemQuery(userID, id)
	if err != nil {
		return models.CollectionItem{}, err
	}

	item, err := scanItem(r.DB.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return models.CollectionItem{}, ErrItemNotFound
	}
	if err != nil {
		log.Err(err).
			Str("func", "itemRepository.GetItem").
			Int64("user_id", userID).
			Str("id", id).
			Msg("failed to get item")
		return models.CollectionItem{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return item, nil
}

// UpsertItem inserts the item or overwrites the stored one with the same id.
// An id owned by another account is never overwritten; [ErrItemNotSaved] is
// returned instead.
func (r *itemRepository) UpsertItem(ctx context.Context, item models.CollectionItem) (models.CollectionItem, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildUpsertItemQuery(item)
	if err != nil {
		log.Err(err).
			Str("func", "itemRepository.UpsertItem").
			Int64("user_id", item.UserID).
			Msg("failed to create query")
		return models.CollectionItem{}, err
	}

	err = r.withRetry(ctx, func() error {
		return r.DB.QueryRowContext(ctx, query, args...).Scan(&item.CreatedAt)
	})
	if errors.Is(err, sql.ErrNoRows) {
		log.Warn().
			Str("func", "itemRepository.UpsertItem").
			Int64("user_id", item.UserID).
			Str("id", item.ID).
			Msg("item id belongs to another user")
		return models.CollectionItem{}, ErrItemNotSaved
	}
	if err != nil {
		log.Err(err).
			Str("func", "itemRepository.UpsertItem").
			Int64("user_id", item.UserID).
			Str("id", item.ID).
			Msg("failed to upsert item")
		return models.CollectionItem{}, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return item, nil
}

// PatchItem updates the flags set in patch. Unknown ids yield [ErrItemNotFound].
func (r *itemRepository) PatchItem(ctx context.Context, patch models.ItemPatch) error {
	log := logger.FromContext(ctx)

	query, args, err := buildPatchItemQuery(patch)
	if err != nil {
		return err
	}

	var result sql.Result
	err = r.withRetry(ctx, func() error {
		var execErr error
		result, execErr = r.DB.ExecContext(ctx, query, args...)
		return execErr
	})
	if err != nil {
		log.Err(err).
			Str("func", "itemRepository.PatchItem").
			Int64("user_id", patch.UserID).
			Str("id", patch.ID).
			Msg("failed to patch item")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	if affected == 0 {
		return ErrItemNotFound
	}

	return nil
}

// DeleteAllItems removes the whole collection of userID and reports how many
// items were deleted.
func (r *itemRepository) DeleteAllItems(ctx context.Context, userID int64) (int64, error) {
	log := logger.FromContext(ctx)

	var result sql.Result
	err := r.withRetry(ctx, func() error {
		var execErr error
		result, execErr = r.DB.ExecContext(ctx, deleteAllItems, userID)
		return execErr
	})
	if err != nil {
		log.Err(err).
			Str("func", "itemRepository.DeleteAllItems").
			Int64("user_id", userID).
			Msg("failed to delete items")
		return 0, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	log.Info().Int64("user_id", userID).Int64("deleted", affected).Msg("collection cleared")

	return affected, nil
}

// GetFacets lists the distinct IPs and characters of the collection.
func (r *itemRepository) GetFacets(ctx context.Context, userID int64) (models.FilterFacets, error) {
	ips, err := r.distinct(ctx, userID, "ip")
	if err != nil {
		return models.FilterFacets{}, err
	}
	characters, err := r.distinct(ctx, userID, "character_name")
	if err != nil {
		return models.FilterFacets{}, err
	}
	return models.FilterFacets{IPs: ips, Characters: characters}, nil
}

func (r *itemRepository) distinct(ctx context.Context, userID int64, column string) ([]string, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildFacetQuery(userID, column)
	if err != nil {
		return nil, err
	}

	rows, err := r.DB.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", "itemRepository.distinct").
			Int64("user_id", userID).
			Str("column", column).
			Msg("failed to query facet values")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	values := make([]string, 0)
	for rows.Next() {
		var v string
		if err := rows.Scan(&v); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, err)
		}
		values = append(values, v)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return values, nil
}

func (r *itemRepository) queryItems(ctx context.Context, fn string, userID int64, query string, args []any) ([]models.CollectionItem, error) {
	log := logger.FromContext(ctx)

	rows, err := r.DB.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", fn).
			Int64("user_id", userID).
			Msg("failed to execute query")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	items := make([]models.CollectionItem, 0, models.PageSize)
	for rows.Next() {
		item, scanErr := scanItem(rows)
		if scanErr != nil {
			log.Err(scanErr).
				Str("func", fn).
				Int64("user_id", userID).
				Msg("failed to scan item row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, scanErr)
		}
		items = append(items, item)
	}

	if rowsErr := rows.Err(); rowsErr != nil {
		log.Err(rowsErr).
			Str("func", fn).
			Int64("user_id", userID).
			Msg("error occurred during rows iteration")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, rowsErr)
	}

	return items, nil
}
