package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/gumi-collection/internal/logger"
	"github.com/MKhiriev/gumi-collection/models"
)

// summaryRepository is the SQLite-backed [LocalSummaryRepository]. The cache
// holds the summaries of one account at a time.
type summaryRepository struct {
	*DB
	logger *logger.Logger
}

// NewLocalSummaryRepository constructs a [LocalSummaryRepository] backed by
// the client SQLite database.
func NewLocalSummaryRepository(db *DB, logger *logger.Logger) LocalSummaryRepository {
	return &summaryRepository{
		DB:     db,
		logger: logger,
	}
}

// ReplaceSummaries drops the cache and writes summaries in list order.
func (r *summaryRepository) ReplaceSummaries(ctx context.Context, userID int64, summaries []models.ItemSummary) error {
	log := logger.FromContext(ctx)

	tx, err := r.DB.BeginTx(ctx, nil)
	if err != nil {
		log.Err(err).Str("func", "summaryRepository.ReplaceSummaries").Msg("failed to begin transaction")
		return fmt.Errorf("%w: %w", ErrBeginningTransaction, err)
	}
	defer tx.Rollback()

	if _, err = tx.ExecContext(ctx, clearSummaries); err != nil {
		log.Err(err).Str("func", "summaryRepository.ReplaceSummaries").Msg("failed to clear summaries")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	if len(summaries) > 0 {
		query, args, err := buildInsertSummariesQuery(userID, 0, summaries)
		if err != nil {
			return err
		}
		if _, err = tx.ExecContext(ctx, query, args...); err != nil {
			log.Err(err).
				Str("func", "summaryRepository.ReplaceSummaries").
				Int("count", len(summaries)).
				Msg("failed to insert summaries")
			return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
		}
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("%w: %w", ErrCommitingTransaction, err)
	}

	return nil
}

// AppendSummaries writes summaries after the last cached position.
func (r *summaryRepository) AppendSummaries(ctx context.Context, userID int64, summaries []models.ItemSummary) error {
	if len(summaries) == 0 {
		return nil
	}
	log := logger.FromContext(ctx)

	tx, err := r.DB.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBeginningTransaction, err)
	}
	defer tx.Rollback()

	var last int
	if err = tx.QueryRowContext(ctx, maxSummaryPosition).Scan(&last); err != nil {
		log.Err(err).Str("func", "summaryRepository.AppendSummaries").Msg("failed to read last position")
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	query, args, err := buildInsertSummariesQuery(userID, last+1, summaries)
	if err != nil {
		return err
	}
	if _, err = tx.ExecContext(ctx, query, args...); err != nil {
		log.Err(err).Str("func", "summaryRepository.AppendSummaries").Msg("failed to insert summaries")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("%w: %w", ErrCommitingTransaction, err)
	}

	return nil
}

func (r *summaryRepository) LoadSummaries(ctx context.Context, userID int64) ([]models.ItemSummary, error) {
	rows, err := r.DB.QueryContext(ctx, loadSummaries, userID)
	if err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "summaryRepository.LoadSummaries").
			Int64("user_id", userID).
			Msg("failed to load summaries")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	summaries := make([]models.ItemSummary, 0, models.PageSize)
	for rows.Next() {
		var s models.ItemSummary
		if err := rows.Scan(&s.ID, &s.Name, &s.IP, &s.Character, &s.Category, &s.Status, &s.PurchaseDate); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, err)
		}
		summaries = append(summaries, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return summaries, nil
}

func (r *summaryRepository) ClearSummaries(ctx context.Context) error {
	if _, err := r.DB.ExecContext(ctx, clearSummaries); err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "summaryRepository.ClearSummaries").Msg("failed to clear summaries")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	return nil
}
