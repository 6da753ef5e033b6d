package postgres

import (
	"context"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
	"github.com/listing-service/internal/domain"
	"github.com/listing-service/internal/domain/repository"
	"github.com/listing-service/internal/pkg/errors"
	"go.uber.org/zap"
)

type tagRepository struct {
	db     *sqlx.DB
	logger *zap.Logger
}

func NewTagRepository(db *DB) repository.TagRepository {
	return &tagRepository{
		db:     db.DB,
		logger: db.logger,
	}
}

func (r *tagRepository) GetByListingID(ctx context.Context, listingID int64) ([]string, error) {
	query := `SELECT tag FROM tags WHERE listing_id = $1 ORDER BY position, tag`

	tags := make([]string, 0)
	if err := r.db.SelectContext(ctx, &tags, query, listingID); err != nil {
		r.logger.Error("Failed to get tags", zap.Int64("listing_id", listingID), zap.Error(err))
		return nil, errors.ErrDatabaseError
	}

	return tags, nil
}

func (r *tagRepository) GetByListingIDs(ctx context.Context, listingIDs []int64) (map[int64][]string, error) {
	result := make(map[int64][]string, len(listingIDs))
	if len(listingIDs) == 0 {
		return result, nil
	}

	query := `
		SELECT listing_id, tag, position
		FROM tags
		WHERE listing_id = ANY($1)
		ORDER BY listing_id, position, tag
	`

	var rows []domain.Tag
	if err := r.db.SelectContext(ctx, &rows, query, pq.Array(listingIDs)); err != nil {
		r.logger.Error("Failed to get tags for listings", zap.Int("count", len(listingIDs)), zap.Error(err))
		return nil, errors.ErrDatabaseError
	}

	for _, t := range rows {
		result[t.ListingID] = append(result[t.ListingID], t.Tag)
	}
	return result, nil
}

func (r *tagRepository) ReplaceForListing(ctx context.Context, listingID int64, tags []string) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		r.logger.Error("Failed to begin transaction", zap.Error(err))
		return errors.ErrDatabaseError
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.ExecContext(ctx, `DELETE FROM tags WHERE listing_id = $1`, listingID); err != nil {
		r.logger.Error("Failed to clear tags", zap.Int64("listing_id", listingID), zap.Error(err))
		return errors.ErrDatabaseError
	}

	if len(tags) > 0 {
		query := `
			INSERT INTO tags (listing_id, tag, position)
			SELECT $1, t.tag, t.ord
			FROM unnest($2::text[]) WITH ORDINALITY AS t(tag, ord)
			ON CONFLICT (listing_id, tag) DO NOTHING
		`
		if _, err := tx.ExecContext(ctx, query, listingID, pq.Array(tags)); err != nil {
			r.logger.Error("Failed to insert tags", zap.Int64("listing_id", listingID), zap.Error(err))
			return errors.ErrDatabaseError
		}
	}

	if err := tx.Commit(); err != nil {
		r.logger.Error("Failed to commit tags", zap.Int64("listing_id", listingID), zap.Error(err))
		return errors.ErrDatabaseError
	}

	return nil
}
