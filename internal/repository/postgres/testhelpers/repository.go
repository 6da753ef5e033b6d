//go:build integration

package testhelpers

import (
	"github.com/jmoiron/sqlx"
	"github.com/listing-service/internal/domain/repository"
	"github.com/listing-service/internal/repository/postgres"
	"go.uber.org/zap"
)

// NewDBForTest creates a postgres.DB with test database and logger
func NewDBForTest(db *sqlx.DB, logger *zap.Logger) *postgres.DB {
	return postgres.NewDBForTest(db, logger)
}

// NewUserRepositoryForTest creates a user repository with test database and logger
func NewUserRepositoryForTest(db *sqlx.DB, logger *zap.Logger) repository.UserRepository {
	return postgres.NewUserRepository(NewDBForTest(db, logger))
}

// NewAddressRepositoryForTest creates an address repository with test database and logger
func NewAddressRepositoryForTest(db *sqlx.DB, logger *zap.Logger) repository.AddressRepository {
	return postgres.NewAddressRepository(NewDBForTest(db, logger))
}

// NewListingRepositoryForTest creates a listing repository with test database and logger
func NewListingRepositoryForTest(db *sqlx.DB, logger *zap.Logger) repository.ListingRepository {
	return postgres.NewListingRepository(NewDBForTest(db, logger))
}

// NewTagRepositoryForTest creates a tag repository with test database and logger
func NewTagRepositoryForTest(db *sqlx.DB, logger *zap.Logger) repository.TagRepository {
	return postgres.NewTagRepository(NewDBForTest(db, logger))
}
