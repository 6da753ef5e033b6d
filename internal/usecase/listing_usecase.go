package usecase

import (
	"context"

	"github.com/jonboulle/clockwork"
	"github.com/listing-service/internal/domain"
	"github.com/listing-service/internal/domain/repository"
	"github.com/listing-service/internal/pkg/errors"
	"github.com/listing-service/internal/pkg/sanitize"
	"github.com/listing-service/internal/pkg/validator"
	"github.com/listing-service/internal/usecase/dto"
	"go.uber.org/zap"
)

type ListingUseCase struct {
	listingRepo repository.ListingRepository
	addressRepo repository.AddressRepository
	tagRepo     repository.TagRepository
	cacheRepo   repository.CacheRepository
	streamRepo  repository.StreamRepository
	geocoder    repository.GeocoderRepository
	search      *SearchUseCase
	clock       clockwork.Clock
	logger      *zap.Logger
}

func NewListingUseCase(
	listingRepo repository.ListingRepository,
	addressRepo repository.AddressRepository,
	tagRepo repository.TagRepository,
	cacheRepo repository.CacheRepository,
	streamRepo repository.StreamRepository,
	geocoder repository.GeocoderRepository,
	search *SearchUseCase,
	clock clockwork.Clock,
	logger *zap.Logger,
) *ListingUseCase {
	if clock == nil {
		clock = clockwork.NewRealClock()
	}
	return &ListingUseCase{
		listingRepo: listingRepo,
		addressRepo: addressRepo,
		tagRepo:     tagRepo,
		cacheRepo:   cacheRepo,
		streamRepo:  streamRepo,
		geocoder:    geocoder,
		search:      search,
		clock:       clock,
		logger:      logger,
	}
}

// Create геокодирует адрес, при необходимости сохраняет его и создает объявление с метками
func (uc *ListingUseCase) Create(ctx context.Context, userID int64, req dto.CreateListingRequest) (*dto.CreatedListingResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	title := sanitize.Text(req.Title)
	description := sanitize.Text(req.Description)
	pickup := sanitize.Text(req.PickupInstructions)
	if title == "" || description == "" || pickup == "" {
		return nil, errors.ErrMissingListingComponent
	}

	address, err := uc.resolveAddress(ctx, sanitize.Text(req.Address))
	if err != nil {
		return nil, err
	}

	listing := &domain.Listing{
		Title:              title,
		Description:        description,
		PickupInstructions: pickup,
		StockNum:           req.StockNum,
		UserID:             userID,
		PlaceID:            address.PlaceID,
	}
	if err := uc.listingRepo.Create(ctx, listing); err != nil {
		return nil, err
	}

	// Метки добавляются после объявления; сбой не отменяет созданное объявление
	if tags := sanitizeTags(req.Tags); len(tags) > 0 {
		if err := uc.tagRepo.ReplaceForListing(ctx, listing.ID, tags); err != nil {
			uc.logger.Error("Failed to add listing tags",
				zap.Int64("listing_id", listing.ID),
				zap.Error(err))
		}
	}

	uc.publish(ctx, domain.ListingCreated, listing)

	uc.logger.Info("Listing created",
		zap.Int64("listing_id", listing.ID),
		zap.Int64("user_id", userID),
		zap.String("place_id", listing.PlaceID))

	return &dto.CreatedListingResponse{ListingID: listing.ID}, nil
}

// Update меняет переданные поля объявления; доступно только автору
func (uc *ListingUseCase) Update(ctx context.Context, userID, id int64, req dto.UpdateListingRequest) (*dto.ListingDetail, error) {
	if err := validator.Validate(req); err != nil {
		return nil, err
	}

	listing, err := uc.ownedListing(ctx, userID, id)
	if err != nil {
		return nil, err
	}

	patch := domain.ListingPatch{
		Title:              sanitize.TextPtr(req.Title),
		Description:        sanitize.TextPtr(req.Description),
		PickupInstructions: sanitize.TextPtr(req.PickupInstructions),
		StockNum:           req.StockNum,
	}
	for _, field := range []*string{patch.Title, patch.Description, patch.PickupInstructions} {
		if field != nil && *field == "" {
			return nil, errors.ErrMissingListingComponent
		}
	}

	if !patch.IsEmpty() {
		if listing, err = uc.listingRepo.Update(ctx, id, patch); err != nil {
			return nil, err
		}
	}

	if req.Tags != nil {
		if err := uc.tagRepo.ReplaceForListing(ctx, id, sanitizeTags(req.Tags)); err != nil {
			return nil, err
		}
	}

	uc.dropListingCache(ctx, id)
	uc.publish(ctx, domain.ListingUpdated, listing)

	return uc.search.GetOne(ctx, id)
}

// Delete удаляет объявление; доступно только автору
func (uc *ListingUseCase) Delete(ctx context.Context, userID, id int64) error {
	listing, err := uc.ownedListing(ctx, userID, id)
	if err != nil {
		return err
	}

	if err := uc.listingRepo.Delete(ctx, id); err != nil {
		return err
	}

	uc.dropListingCache(ctx, id)
	uc.publish(ctx, domain.ListingDeleted, listing)

	uc.logger.Info("Listing deleted", zap.Int64("listing_id", id), zap.Int64("user_id", userID))
	return nil
}

func (uc *ListingUseCase) ownedListing(ctx context.Context, userID, id int64) (*domain.Listing, error) {
	if id <= 0 {
		return nil, errors.ErrInvalidListingID
	}

	listing, err := uc.listingRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if listing.UserID != userID {
		return nil, errors.ErrForbidden
	}
	return listing, nil
}

// resolveAddress геокодирует адрес и возвращает сохраненную запись для place_id,
// создавая ее при первом появлении
func (uc *ListingUseCase) resolveAddress(ctx context.Context, raw string) (*domain.Address, error) {
	geo, err := uc.geocoder.Geocode(ctx, raw)
	if err != nil {
		if appErr, ok := errors.As(err); ok {
			return nil, appErr
		}
		uc.logger.Error("Geocoder failed", zap.Error(err))
		return nil, errors.ErrGeocoderUnavailable
	}

	address, err := uc.addressRepo.FindByPlaceID(ctx, geo.PlaceID)
	if err != nil {
		return nil, err
	}
	if address != nil {
		return address, nil
	}

	address = geo.ToAddress()
	if err := uc.addressRepo.Create(ctx, address); err != nil {
		return nil, err
	}
	return address, nil
}

func (uc *ListingUseCase) dropListingCache(ctx context.Context, id int64) {
	if err := uc.cacheRepo.Delete(ctx, ListingCacheKey(id)); err != nil {
		uc.logger.Warn("Failed to drop listing cache", zap.Int64("listing_id", id), zap.Error(err))
	}
}

func (uc *ListingUseCase) publish(ctx context.Context, eventType domain.ListingEventType, listing *domain.Listing) {
	event := domain.NewListingEvent(eventType, listing, uc.clock.Now())
	if err := uc.streamRepo.PublishToStream(ctx, domain.StreamListingEvents, event); err != nil {
		uc.logger.Error("Failed to publish listing event",
			zap.String("type", string(eventType)),
			zap.Int64("listing_id", listing.ID),
			zap.Error(err))
	}
}

func sanitizeTags(tags []string) []string {
	cleaned := make([]string, len(tags))
	for i, t := range tags {
		cleaned[i] = sanitize.Text(t)
	}
	return domain.NormalizeTags(cleaned)
}
