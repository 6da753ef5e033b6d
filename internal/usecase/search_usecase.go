package usecase

import (
	"context"
	"encoding/json"
	stderrors "errors"
	"sort"
	"strings"
	"time"

	"github.com/listing-service/internal/domain"
	"github.com/listing-service/internal/domain/repository"
	"github.com/listing-service/internal/pkg/errors"
	"github.com/listing-service/internal/pkg/metrics"
	"github.com/listing-service/internal/pkg/utils"
	"github.com/listing-service/internal/usecase/dto"
	"go.uber.org/zap"
)

// SearchOptions - параметры поиска и кеширования
type SearchOptions struct {
	BBoxDelta  float64
	Limit      int
	ListingTTL time.Duration
	NearbyTTL  time.Duration
}

type SearchUseCase struct {
	listingRepo repository.ListingRepository
	addressRepo repository.AddressRepository
	tagRepo     repository.TagRepository
	userRepo    repository.UserRepository
	cacheRepo   repository.CacheRepository
	metrics     *metrics.Metrics
	opts        SearchOptions
	logger      *zap.Logger
}

func NewSearchUseCase(
	listingRepo repository.ListingRepository,
	addressRepo repository.AddressRepository,
	tagRepo repository.TagRepository,
	userRepo repository.UserRepository,
	cacheRepo repository.CacheRepository,
	m *metrics.Metrics,
	opts SearchOptions,
	logger *zap.Logger,
) *SearchUseCase {
	if opts.BBoxDelta <= 0 {
		opts.BBoxDelta = domain.DefaultBBoxDelta
	}
	if opts.Limit <= 0 {
		opts.Limit = 100
	}
	return &SearchUseCase{
		listingRepo: listingRepo,
		addressRepo: addressRepo,
		tagRepo:     tagRepo,
		userRepo:    userRepo,
		cacheRepo:   cacheRepo,
		metrics:     m,
		opts:        opts,
		logger:      logger,
	}
}

// Nearby возвращает объявления, адрес которых попадает в квадрат вокруг точки.
// Пустой результат - ErrNoListingsNearby
func (uc *SearchUseCase) Nearby(ctx context.Context, lat, lon float64) ([]dto.NearbyListing, error) {
	if !utils.ValidateCoordinates(lat, lon) {
		return nil, errors.ErrInvalidCoordinates
	}

	cacheKey := nearbyCacheKey(uc.nearbyGeneration(ctx), lat, lon, uc.opts.BBoxDelta)
	var cached []dto.NearbyListing
	if uc.getCached(ctx, cacheKey, &cached) {
		uc.metrics.ObserveSearch("nearby", len(cached))
		return cached, nil
	}

	box := domain.BoundingBoxAround(domain.Point{Lat: lat, Lon: lon}, uc.opts.BBoxDelta)

	addresses, err := uc.addressRepo.FindInBoundingBox(ctx, box)
	if err != nil {
		uc.logger.Error("Failed to find addresses nearby", zap.Error(err))
		return nil, err
	}
	if len(addresses) == 0 {
		uc.metrics.ObserveSearch("nearby", 0)
		return nil, errors.ErrNoListingsNearby
	}

	byPlace := make(map[string]*domain.Address, len(addresses))
	placeIDs := make([]string, 0, len(addresses))
	for _, a := range addresses {
		byPlace[a.PlaceID] = a
		placeIDs = append(placeIDs, a.PlaceID)
	}

	listings, err := uc.listingRepo.GetByPlaceIDs(ctx, placeIDs)
	if err != nil {
		uc.logger.Error("Failed to get listings for addresses", zap.Error(err))
		return nil, err
	}
	listings = uniqueSortedListings(listings)
	if len(listings) == 0 {
		uc.metrics.ObserveSearch("nearby", 0)
		return nil, errors.ErrNoListingsNearby
	}

	tags, err := uc.tagRepo.GetByListingIDs(ctx, listingIDs(listings))
	if err != nil {
		uc.logger.Error("Failed to get tags for listings", zap.Error(err))
		return nil, err
	}

	result := make([]dto.NearbyListing, 0, len(listings))
	for _, l := range listings {
		item := dto.NearbyListing{Listing: *l, Tags: tags[l.ID]}
		if item.Tags == nil {
			item.Tags = []string{}
		}
		if a, ok := byPlace[l.PlaceID]; ok {
			item.Lat, item.Lon = a.Lat, a.Lon
		}
		result = append(result, item)
	}

	uc.metrics.ObserveSearch("nearby", len(result))
	uc.setCached(ctx, cacheKey, result, uc.opts.NearbyTTL)

	return result, nil
}

// GetOne возвращает карточку объявления
func (uc *SearchUseCase) GetOne(ctx context.Context, id int64) (*dto.ListingDetail, error) {
	if id <= 0 {
		return nil, errors.ErrInvalidListingID
	}

	cacheKey := ListingCacheKey(id)
	var cached dto.ListingDetail
	if uc.getCached(ctx, cacheKey, &cached) {
		return &cached, nil
	}

	listing, err := uc.listingRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	tags, err := uc.tagRepo.GetByListingID(ctx, id)
	if err != nil {
		uc.logger.Error("Failed to get listing tags", zap.Int64("listing_id", id), zap.Error(err))
		return nil, err
	}

	address, err := uc.addressRepo.FindByPlaceID(ctx, listing.PlaceID)
	if err != nil {
		uc.logger.Error("Failed to get listing address", zap.Int64("listing_id", id), zap.Error(err))
		return nil, err
	}
	if address == nil {
		uc.logger.Warn("Listing references unknown address",
			zap.Int64("listing_id", id),
			zap.String("place_id", listing.PlaceID))
	}

	creator, err := uc.userRepo.GetByID(ctx, listing.UserID)
	if err != nil && !stderrors.Is(err, errors.ErrUserNotFound) {
		uc.logger.Error("Failed to get listing creator", zap.Int64("listing_id", id), zap.Error(err))
		return nil, err
	}
	if creator == nil {
		uc.logger.Warn("Listing references unknown user",
			zap.Int64("listing_id", id),
			zap.Int64("user_id", listing.UserID))
	}

	detail := buildDetail(listing, tags, address, creator)
	uc.setCached(ctx, cacheKey, detail, uc.opts.ListingTTL)

	return &detail, nil
}

// Search ищет объявления по меткам и/или ключевым словам.
// При обоих критериях объявление должно удовлетворять каждому из них
func (uc *SearchUseCase) Search(ctx context.Context, q dto.SearchQuery) ([]dto.ListingDetail, error) {
	keywords := domain.SplitTerms(q.Keywords)
	tags := domain.SplitTerms(q.Tags)
	if len(keywords) == 0 && len(tags) == 0 {
		return nil, errors.ErrMissingSearchTerms
	}

	var box *domain.BoundingBox
	if q.Lat != nil || q.Lon != nil {
		if q.Lat == nil || q.Lon == nil || !utils.ValidateCoordinates(*q.Lat, *q.Lon) {
			return nil, errors.ErrInvalidCoordinates
		}
		b := domain.BoundingBoxAround(domain.Point{Lat: *q.Lat, Lon: *q.Lon}, uc.opts.BBoxDelta)
		box = &b
	}

	listings, err := uc.listingRepo.Search(ctx, domain.ListingFilter{
		Tags:     tags,
		Keywords: keywords,
		Box:      box,
		Limit:    uc.opts.Limit,
	})
	if err != nil {
		uc.logger.Error("Failed to search listings", zap.Error(err))
		return nil, err
	}
	listings = uniqueSortedListings(listings)
	if len(listings) > uc.opts.Limit {
		listings = listings[:uc.opts.Limit]
	}

	result := make([]dto.ListingDetail, 0, len(listings))
	if len(listings) == 0 {
		uc.metrics.ObserveSearch("search", 0)
		return result, nil
	}

	placeIDs := make([]string, 0, len(listings))
	userIDs := make([]int64, 0, len(listings))
	seenPlaces := make(map[string]struct{}, len(listings))
	seenUsers := make(map[int64]struct{}, len(listings))
	for _, l := range listings {
		if _, ok := seenPlaces[l.PlaceID]; !ok {
			seenPlaces[l.PlaceID] = struct{}{}
			placeIDs = append(placeIDs, l.PlaceID)
		}
		if _, ok := seenUsers[l.UserID]; !ok {
			seenUsers[l.UserID] = struct{}{}
			userIDs = append(userIDs, l.UserID)
		}
	}

	addresses, err := uc.addressRepo.GetByPlaceIDs(ctx, placeIDs)
	if err != nil {
		uc.logger.Error("Failed to load addresses for search", zap.Error(err))
		return nil, err
	}

	tagsByListing, err := uc.tagRepo.GetByListingIDs(ctx, listingIDs(listings))
	if err != nil {
		uc.logger.Error("Failed to load tags for search", zap.Error(err))
		return nil, err
	}

	creators, err := uc.userRepo.GetByIDs(ctx, userIDs)
	if err != nil {
		uc.logger.Error("Failed to load listing creators for search", zap.Error(err))
		return nil, err
	}

	for _, l := range listings {
		result = append(result, buildDetail(l, tagsByListing[l.ID], addresses[l.PlaceID], creators[l.UserID]))
	}

	uc.metrics.ObserveSearch("search", len(result))
	return result, nil
}

func (uc *SearchUseCase) nearbyGeneration(ctx context.Context) int64 {
	gen, err := uc.cacheRepo.GetCounter(ctx, NearbyGenerationKey)
	if err != nil {
		uc.logger.Warn("Failed to read nearby cache generation", zap.Error(err))
		return 0
	}
	return gen
}

func (uc *SearchUseCase) getCached(ctx context.Context, key string, dest interface{}) bool {
	data, err := uc.cacheRepo.Get(ctx, key)
	if err != nil || len(data) == 0 {
		return false
	}
	if err := json.Unmarshal(data, dest); err != nil {
		uc.logger.Warn("Failed to decode cached value", zap.String("key", key), zap.Error(err))
		return false
	}
	uc.logger.Debug("Cache hit", zap.String("key", key))
	return true
}

func (uc *SearchUseCase) setCached(ctx context.Context, key string, value interface{}, ttl time.Duration) {
	data, err := json.Marshal(value)
	if err != nil {
		uc.logger.Warn("Failed to encode value for cache", zap.String("key", key), zap.Error(err))
		return
	}
	if err := uc.cacheRepo.Set(ctx, key, data, ttl); err != nil {
		uc.logger.Warn("Failed to cache value", zap.String("key", key), zap.Error(err))
	}
}

// buildDetail - producerID берется у загруженного создателя, при его отсутствии из listing.UserID
func buildDetail(listing *domain.Listing, tags []string, address *domain.Address, creator *domain.User) dto.ListingDetail {
	detail := dto.ListingDetail{
		Listing:    *listing,
		Tags:       strings.Join(tags, ","),
		ProducerID: listing.UserID,
	}
	if creator != nil {
		detail.ProducerID = creator.ID
	}
	if address != nil {
		detail.Address = address.Line()
		detail.Lat, detail.Lon = address.Lat, address.Lon
	}
	return detail
}

func uniqueSortedListings(listings []*domain.Listing) []*domain.Listing {
	seen := make(map[int64]struct{}, len(listings))
	out := make([]*domain.Listing, 0, len(listings))
	for _, l := range listings {
		if _, ok := seen[l.ID]; ok {
			continue
		}
		seen[l.ID] = struct{}{}
		out = append(out, l)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

func listingIDs(listings []*domain.Listing) []int64 {
	ids := make([]int64, len(listings))
	for i, l := range listings {
		ids[i] = l.ID
	}
	return ids
}
