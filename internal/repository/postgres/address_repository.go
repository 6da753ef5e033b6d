package postgres

import (
	"context"
	"database/sql"
	stderrors "errors"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
	"github.com/listing-service/internal/domain"
	"github.com/listing-service/internal/domain/repository"
	"github.com/listing-service/internal/pkg/errors"
	"go.uber.org/zap"
)

const addressColumns = `place_id, lat, lon, street_no, street_name, town_city, country, unit_no, postcode`

type addressRepository struct {
	db     *sqlx.DB
	logger *zap.Logger
}

func NewAddressRepository(db *DB) repository.AddressRepository {
	return &addressRepository{
		db:     db.DB,
		logger: db.logger,
	}
}

func (r *addressRepository) FindByPlaceID(ctx context.Context, placeID string) (*domain.Address, error) {
	query := `SELECT ` + addressColumns + ` FROM addresses WHERE place_id = $1`

	var address domain.Address
	err := r.db.GetContext(ctx, &address, query, placeID)
	if stderrors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		r.logger.Error("Failed to get address", zap.String("place_id", placeID), zap.Error(err))
		return nil, errors.ErrDatabaseError
	}

	return &address, nil
}

func (r *addressRepository) GetByPlaceIDs(ctx context.Context, placeIDs []string) (map[string]*domain.Address, error) {
	result := make(map[string]*domain.Address, len(placeIDs))
	if len(placeIDs) == 0 {
		return result, nil
	}

	query := `SELECT ` + addressColumns + ` FROM addresses WHERE place_id = ANY($1)`

	var addresses []*domain.Address
	if err := r.db.SelectContext(ctx, &addresses, query, pq.Array(placeIDs)); err != nil {
		r.logger.Error("Failed to get addresses by place IDs", zap.Int("count", len(placeIDs)), zap.Error(err))
		return nil, errors.ErrDatabaseError
	}

	for _, a := range addresses {
		result[a.PlaceID] = a
	}
	return result, nil
}

func (r *addressRepository) FindInBoundingBox(ctx context.Context, box domain.BoundingBox) ([]*domain.Address, error) {
	query := `
		SELECT ` + addressColumns + `
		FROM addresses
		WHERE lat BETWEEN $1 AND $2
		  AND lon BETWEEN $3 AND $4
		ORDER BY place_id
	`

	var addresses []*domain.Address
	err := r.db.SelectContext(ctx, &addresses, query, box.MinLat, box.MaxLat, box.MinLon, box.MaxLon)
	if err != nil {
		r.logger.Error("Failed to find addresses in bounding box",
			zap.Float64("min_lat", box.MinLat),
			zap.Float64("min_lon", box.MinLon),
			zap.Error(err))
		return nil, errors.ErrDatabaseError
	}

	return addresses, nil
}

func (r *addressRepository) Create(ctx context.Context, address *domain.Address) error {
	query := `
		INSERT INTO addresses (` + addressColumns + `)
		VALUES (:place_id, :lat, :lon, :street_no, :street_name, :town_city, :country, :unit_no, :postcode)
		ON CONFLICT (place_id) DO NOTHING
	`

	if _, err := r.db.NamedExecContext(ctx, query, address); err != nil {
		r.logger.Error("Failed to create address", zap.String("place_id", address.PlaceID), zap.Error(err))
		return errors.ErrDatabaseError
	}

	return nil
}
