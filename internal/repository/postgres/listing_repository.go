package postgres

import (
	"context"
	"database/sql"
	stderrors "errors"
	"fmt"
	"strings"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
	"github.com/listing-service/internal/domain"
	"github.com/listing-service/internal/domain/repository"
	"github.com/listing-service/internal/pkg/errors"
	"go.uber.org/zap"
)

const listingColumns = `listing_id, title, description, pickup_instructions, stock_num,
	user_id, place_id, created_at, updated_at`

const qualifiedListingColumns = `l.listing_id, l.title, l.description, l.pickup_instructions, l.stock_num,
	l.user_id, l.place_id, l.created_at, l.updated_at`

type listingRepository struct {
	db     *sqlx.DB
	logger *zap.Logger
}

func NewListingRepository(db *DB) repository.ListingRepository {
	return &listingRepository{
		db:     db.DB,
		logger: db.logger,
	}
}

func (r *listingRepository) Create(ctx context.Context, listing *domain.Listing) error {
	query := `
		INSERT INTO listings (title, description, pickup_instructions, stock_num, user_id, place_id)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING listing_id, created_at, updated_at
	`

	err := r.db.QueryRowxContext(ctx, query,
		listing.Title, listing.Description, listing.PickupInstructions,
		listing.StockNum, listing.UserID, listing.PlaceID,
	).Scan(&listing.ID, &listing.CreatedAt, &listing.UpdatedAt)
	if err != nil {
		r.logger.Error("Failed to create listing",
			zap.Int64("user_id", listing.UserID),
			zap.String("place_id", listing.PlaceID),
			zap.Error(err))
		return errors.ErrDatabaseError
	}

	return nil
}

func (r *listingRepository) GetByID(ctx context.Context, id int64) (*domain.Listing, error) {
	query := `SELECT ` + listingColumns + ` FROM listings WHERE listing_id = $1`

	var listing domain.Listing
	err := r.db.GetContext(ctx, &listing, query, id)
	if stderrors.Is(err, sql.ErrNoRows) {
		return nil, errors.ErrListingNotFound
	}
	if err != nil {
		r.logger.Error("Failed to get listing by ID", zap.Int64("id", id), zap.Error(err))
		return nil, errors.ErrDatabaseError
	}

	return &listing, nil
}

func (r *listingRepository) GetByPlaceIDs(ctx context.Context, placeIDs []string) ([]*domain.Listing, error) {
	if len(placeIDs) == 0 {
		return []*domain.Listing{}, nil
	}

	query := `SELECT ` + listingColumns + ` FROM listings WHERE place_id = ANY($1) ORDER BY listing_id`

	listings := make([]*domain.Listing, 0)
	if err := r.db.SelectContext(ctx, &listings, query, pq.Array(placeIDs)); err != nil {
		r.logger.Error("Failed to get listings by place IDs", zap.Int("count", len(placeIDs)), zap.Error(err))
		return nil, errors.ErrDatabaseError
	}

	return listings, nil
}

func (r *listingRepository) Search(ctx context.Context, filter domain.ListingFilter) ([]*domain.Listing, error) {
	query, args := buildSearchQuery(filter)

	listings := make([]*domain.Listing, 0)
	if err := r.db.SelectContext(ctx, &listings, query, args...); err != nil {
		r.logger.Error("Failed to search listings",
			zap.Strings("tags", filter.Tags),
			zap.Strings("keywords", filter.Keywords),
			zap.Error(err))
		return nil, errors.ErrDatabaseError
	}

	return listings, nil
}

// buildSearchQuery собирает один запрос: метки через EXISTS (без дублей строк),
// ключевые слова через ILIKE ANY, область через JOIN адресов с BETWEEN
func buildSearchQuery(filter domain.ListingFilter) (string, []interface{}) {
	var (
		b     strings.Builder
		where []string
		args  []interface{}
	)
	arg := func(v interface{}) string {
		args = append(args, v)
		return fmt.Sprintf("$%d", len(args))
	}

	b.WriteString(`SELECT ` + qualifiedListingColumns + ` FROM listings l`)

	if filter.Box != nil {
		fmt.Fprintf(&b, ` JOIN addresses a ON a.place_id = l.place_id
			AND a.lat BETWEEN %s AND %s AND a.lon BETWEEN %s AND %s`,
			arg(filter.Box.MinLat), arg(filter.Box.MaxLat),
			arg(filter.Box.MinLon), arg(filter.Box.MaxLon))
	}

	if len(filter.Tags) > 0 {
		where = append(where, fmt.Sprintf(
			`EXISTS (SELECT 1 FROM tags t WHERE t.listing_id = l.listing_id AND t.tag = ANY(%s))`,
			arg(pq.Array(filter.Tags))))
	}

	if len(filter.Keywords) > 0 {
		patterns := make([]string, len(filter.Keywords))
		for i, kw := range filter.Keywords {
			patterns[i] = "%" + escapeLike(kw) + "%"
		}
		p := arg(pq.Array(patterns))
		where = append(where, fmt.Sprintf(`(l.title ILIKE ANY(%s) OR l.description ILIKE ANY(%s))`, p, p))
	}

	if len(where) > 0 {
		b.WriteString(` WHERE ` + strings.Join(where, ` AND `))
	}

	b.WriteString(` ORDER BY l.listing_id`)
	if filter.Limit > 0 {
		b.WriteString(` LIMIT ` + arg(filter.Limit))
	}

	return b.String(), args
}

func (r *listingRepository) Update(ctx context.Context, id int64, patch domain.ListingPatch) (*domain.Listing, error) {
	sets := make([]string, 0, 5)
	args := make([]interface{}, 0, 5)
	argIdx := 1

	add := func(column string, value interface{}) {
		sets = append(sets, fmt.Sprintf("%s = $%d", column, argIdx))
		args = append(args, value)
		argIdx++
	}

	if patch.Title != nil {
		add("title", *patch.Title)
	}
	if patch.Description != nil {
		add("description", *patch.Description)
	}
	if patch.PickupInstructions != nil {
		add("pickup_instructions", *patch.PickupInstructions)
	}
	if patch.StockNum != nil {
		add("stock_num", *patch.StockNum)
	}
	sets = append(sets, "updated_at = NOW()")

	query := fmt.Sprintf(
		"UPDATE listings SET %s WHERE listing_id = $%d RETURNING %s",
		strings.Join(sets, ", "), argIdx, listingColumns,
	)
	args = append(args, id)

	var listing domain.Listing
	err := r.db.GetContext(ctx, &listing, query, args...)
	if stderrors.Is(err, sql.ErrNoRows) {
		return nil, errors.ErrListingNotFound
	}
	if err != nil {
		r.logger.Error("Failed to update listing", zap.Int64("id", id), zap.Error(err))
		return nil, errors.ErrDatabaseError
	}

	return &listing, nil
}

func (r *listingRepository) Delete(ctx context.Context, id int64) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM listings WHERE listing_id = $1`, id)
	if err != nil {
		r.logger.Error("Failed to delete listing", zap.Int64("id", id), zap.Error(err))
		return errors.ErrDatabaseError
	}

	affected, err := res.RowsAffected()
	if err != nil {
		r.logger.Error("Failed to read affected rows", zap.Int64("id", id), zap.Error(err))
		return errors.ErrDatabaseError
	}
	if affected == 0 {
		return errors.ErrListingNotFound
	}

	return nil
}

// escapeLike экранирует спецсимволы LIKE, чтобы ключевое слово сравнивалось буквально
func escapeLike(s string) string {
	r := strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)
	return r.Replace(s)
}
