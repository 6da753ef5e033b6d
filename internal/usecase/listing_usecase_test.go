package usecase_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/listing-service/internal/domain"
	apperrors "github.com/listing-service/internal/pkg/errors"
	"github.com/listing-service/internal/usecase"
	"github.com/listing-service/internal/usecase/dto"
)

type listingMocks struct {
	*searchMocks
	stream   *MockStreamRepository
	geocoder *MockGeocoderRepository
}

func newListingUseCase() (*usecase.ListingUseCase, *listingMocks) {
	search, sm := newSearchUseCase(usecase.SearchOptions{})
	m := &listingMocks{
		searchMocks: sm,
		stream:      &MockStreamRepository{},
		geocoder:    &MockGeocoderRepository{},
	}
	clock := clockwork.NewFakeClockAt(time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC))
	uc := usecase.NewListingUseCase(
		m.listings, m.addresses, m.tags, m.cache, m.stream, m.geocoder, search, clock, zap.NewNop(),
	)
	return uc, m
}

func geocodeResult() *domain.GeocodeResult {
	return &domain.GeocodeResult{
		PlaceID:  "ChIJ-smith",
		Location: domain.Point{Lat: -37.8, Lon: 144.98},
		Components: domain.AddressComponents{
			StreetNo: "12",
			Street:   "Smith Street",
			City:     "Fitzroy",
			Country:  "AU",
		},
	}
}

func createRequest() dto.CreateListingRequest {
	return dto.CreateListingRequest{
		Address:            "12 Smith St Fitzroy",
		Title:              "Fresh <b>eggs</b>",
		Description:        "A dozen",
		PickupInstructions: "Front porch",
		StockNum:           ptrInt(12),
		Tags:               []string{"Eggs", "organic", "eggs"},
	}
}

func eventOfType(eventType domain.ListingEventType) interface{} {
	return mock.MatchedBy(func(e domain.ListingEvent) bool {
		return e.Type == eventType
	})
}

func TestListingUseCase_Create(t *testing.T) {
	ctx := context.Background()

	t.Run("new address is stored", func(t *testing.T) {
		uc, m := newListingUseCase()

		m.geocoder.On("Geocode", mock.Anything, "12 Smith St Fitzroy").Return(geocodeResult(), nil)
		m.addresses.On("FindByPlaceID", mock.Anything, "ChIJ-smith").Return(nil, nil)
		m.addresses.On("Create", mock.Anything, mock.MatchedBy(func(a *domain.Address) bool {
			return a.PlaceID == "ChIJ-smith" && *a.StreetName == "Smith Street" && *a.Country == "AU" && a.Lat == -37.8
		})).Return(nil)
		m.listings.On("Create", mock.Anything, mock.MatchedBy(func(l *domain.Listing) bool {
			return l.Title == "Fresh eggs" && l.UserID == 3 && l.PlaceID == "ChIJ-smith" && *l.StockNum == 12
		})).Run(func(args mock.Arguments) {
			args.Get(1).(*domain.Listing).ID = 42
		}).Return(nil)
		m.tags.On("ReplaceForListing", mock.Anything, int64(42), []string{"eggs", "organic"}).Return(nil)
		m.stream.On("PublishToStream", mock.Anything, domain.StreamListingEvents, mock.MatchedBy(func(e domain.ListingEvent) bool {
			return e.Type == domain.ListingCreated && e.ListingID == 42 && e.UserID == 3 &&
				e.OccurredAt.Equal(time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC))
		})).Return(nil)

		resp, err := uc.Create(ctx, 3, createRequest())

		require.NoError(t, err)
		assert.Equal(t, int64(42), resp.ListingID)
		m.addresses.AssertExpectations(t)
		m.stream.AssertExpectations(t)
	})

	t.Run("existing address is reused", func(t *testing.T) {
		uc, m := newListingUseCase()

		m.geocoder.On("Geocode", mock.Anything, mock.Anything).Return(geocodeResult(), nil)
		m.addresses.On("FindByPlaceID", mock.Anything, "ChIJ-smith").Return(&domain.Address{PlaceID: "ChIJ-smith"}, nil)
		m.listings.On("Create", mock.Anything, mock.Anything).Return(nil)
		m.tags.On("ReplaceForListing", mock.Anything, mock.Anything, mock.Anything).Return(nil)
		m.stream.On("PublishToStream", mock.Anything, mock.Anything, mock.Anything).Return(nil)

		_, err := uc.Create(ctx, 3, createRequest())

		require.NoError(t, err)
		m.addresses.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("multi-word tags are stored as searchable terms", func(t *testing.T) {
		uc, m := newListingUseCase()
		req := createRequest()
		req.Tags = []string{"Free Range", "eggs"}

		m.geocoder.On("Geocode", mock.Anything, mock.Anything).Return(geocodeResult(), nil)
		m.addresses.On("FindByPlaceID", mock.Anything, mock.Anything).Return(&domain.Address{PlaceID: "ChIJ-smith"}, nil)
		m.listings.On("Create", mock.Anything, mock.Anything).Run(func(args mock.Arguments) {
			args.Get(1).(*domain.Listing).ID = 43
		}).Return(nil)
		m.tags.On("ReplaceForListing", mock.Anything, int64(43), []string{"free", "range", "eggs"}).Return(nil)
		m.stream.On("PublishToStream", mock.Anything, mock.Anything, mock.Anything).Return(nil)

		_, err := uc.Create(ctx, 3, req)

		require.NoError(t, err)
		m.tags.AssertExpectations(t)
	})

	t.Run("tag and publish failures do not fail creation", func(t *testing.T) {
		uc, m := newListingUseCase()

		m.geocoder.On("Geocode", mock.Anything, mock.Anything).Return(geocodeResult(), nil)
		m.addresses.On("FindByPlaceID", mock.Anything, mock.Anything).Return(&domain.Address{PlaceID: "ChIJ-smith"}, nil)
		m.listings.On("Create", mock.Anything, mock.Anything).Return(nil)
		m.tags.On("ReplaceForListing", mock.Anything, mock.Anything, mock.Anything).Return(apperrors.ErrDatabaseError)
		m.stream.On("PublishToStream", mock.Anything, mock.Anything, mock.Anything).Return(errors.New("redis down"))

		_, err := uc.Create(ctx, 3, createRequest())

		assert.NoError(t, err)
	})

	t.Run("missing address", func(t *testing.T) {
		uc, m := newListingUseCase()
		req := createRequest()
		req.Address = ""

		_, err := uc.Create(ctx, 3, req)

		assert.ErrorIs(t, err, apperrors.ErrMissingAddress)
		m.geocoder.AssertNotCalled(t, "Geocode", mock.Anything, mock.Anything)
	})

	t.Run("title that is only markup", func(t *testing.T) {
		uc, _ := newListingUseCase()
		req := createRequest()
		req.Title = "<script></script>"

		_, err := uc.Create(ctx, 3, req)

		assert.ErrorIs(t, err, apperrors.ErrMissingListingComponent)
	})

	t.Run("address not found", func(t *testing.T) {
		uc, m := newListingUseCase()
		m.geocoder.On("Geocode", mock.Anything, mock.Anything).Return(nil, apperrors.ErrAddressNotFound)

		_, err := uc.Create(ctx, 3, createRequest())

		assert.ErrorIs(t, err, apperrors.ErrAddressNotFound)
		m.listings.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("geocoder unavailable", func(t *testing.T) {
		uc, m := newListingUseCase()
		m.geocoder.On("Geocode", mock.Anything, mock.Anything).Return(nil, errors.New("connection refused"))

		_, err := uc.Create(ctx, 3, createRequest())

		assert.ErrorIs(t, err, apperrors.ErrGeocoderUnavailable)
	})
}

func TestListingUseCase_Update(t *testing.T) {
	ctx := context.Background()
	owned := &domain.Listing{ID: 7, Title: "Eggs", UserID: 3, PlaceID: "place-a"}

	t.Run("owner updates fields and tags", func(t *testing.T) {
		uc, m := newListingUseCase()
		updated := *owned
		updated.Title = "Duck eggs"

		m.listings.On("GetByID", mock.Anything, int64(7)).Return(owned, nil).Once()
		m.listings.On("Update", mock.Anything, int64(7), domain.ListingPatch{Title: ptrString("Duck eggs")}).Return(&updated, nil)
		m.tags.On("ReplaceForListing", mock.Anything, int64(7), []string{"duck"}).Return(nil)
		m.cache.On("Delete", mock.Anything, "listing:7").Return(nil)
		m.stream.On("PublishToStream", mock.Anything, domain.StreamListingEvents, eventOfType(domain.ListingUpdated)).Return(nil)

		// detail reload
		m.cache.On("Get", mock.Anything, "listing:7").Return(nil, nil)
		m.listings.On("GetByID", mock.Anything, int64(7)).Return(&updated, nil)
		m.tags.On("GetByListingID", mock.Anything, int64(7)).Return([]string{"duck"}, nil)
		m.addresses.On("FindByPlaceID", mock.Anything, "place-a").Return(fitzroyAddress(), nil)
		m.users.On("GetByID", mock.Anything, owned.UserID).Return(&domain.User{ID: owned.UserID}, nil)
		m.cache.On("Set", mock.Anything, "listing:7", mock.Anything, mock.Anything).Return(nil)

		detail, err := uc.Update(ctx, 3, 7, dto.UpdateListingRequest{
			Title: ptrString("Duck eggs"),
			Tags:  []string{" Duck "},
		})

		require.NoError(t, err)
		assert.Equal(t, "Duck eggs", detail.Title)
		assert.Equal(t, "duck", detail.Tags)
		m.cache.AssertCalled(t, "Delete", mock.Anything, "listing:7")
	})

	t.Run("other user is forbidden", func(t *testing.T) {
		uc, m := newListingUseCase()
		m.listings.On("GetByID", mock.Anything, int64(7)).Return(owned, nil)

		_, err := uc.Update(ctx, 99, 7, dto.UpdateListingRequest{Title: ptrString("Mine now")})

		assert.ErrorIs(t, err, apperrors.ErrForbidden)
		m.listings.AssertNotCalled(t, "Update", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("blank title rejected", func(t *testing.T) {
		uc, m := newListingUseCase()
		m.listings.On("GetByID", mock.Anything, int64(7)).Return(owned, nil)

		_, err := uc.Update(ctx, 3, 7, dto.UpdateListingRequest{Title: ptrString("   ")})

		assert.ErrorIs(t, err, apperrors.ErrMissingListingComponent)
	})

	t.Run("missing listing", func(t *testing.T) {
		uc, m := newListingUseCase()
		m.listings.On("GetByID", mock.Anything, int64(8)).Return(nil, apperrors.ErrListingNotFound)

		_, err := uc.Update(ctx, 3, 8, dto.UpdateListingRequest{Title: ptrString("x")})

		assert.ErrorIs(t, err, apperrors.ErrListingNotFound)
	})
}

func TestListingUseCase_Delete(t *testing.T) {
	ctx := context.Background()
	owned := &domain.Listing{ID: 7, UserID: 3, PlaceID: "place-a"}

	t.Run("owner deletes", func(t *testing.T) {
		uc, m := newListingUseCase()
		m.listings.On("GetByID", mock.Anything, int64(7)).Return(owned, nil)
		m.listings.On("Delete", mock.Anything, int64(7)).Return(nil)
		m.cache.On("Delete", mock.Anything, "listing:7").Return(nil)
		m.stream.On("PublishToStream", mock.Anything, domain.StreamListingEvents, eventOfType(domain.ListingDeleted)).Return(nil)

		err := uc.Delete(ctx, 3, 7)

		require.NoError(t, err)
		m.listings.AssertExpectations(t)
		m.stream.AssertExpectations(t)
	})

	t.Run("other user is forbidden", func(t *testing.T) {
		uc, m := newListingUseCase()
		m.listings.On("GetByID", mock.Anything, int64(7)).Return(owned, nil)

		err := uc.Delete(ctx, 4, 7)

		assert.ErrorIs(t, err, apperrors.ErrForbidden)
		m.listings.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
	})

	t.Run("cache failure is tolerated", func(t *testing.T) {
		uc, m := newListingUseCase()
		m.listings.On("GetByID", mock.Anything, int64(7)).Return(owned, nil)
		m.listings.On("Delete", mock.Anything, int64(7)).Return(nil)
		m.cache.On("Delete", mock.Anything, "listing:7").Return(errors.New("redis down"))
		m.stream.On("PublishToStream", mock.Anything, mock.Anything, mock.Anything).Return(nil)

		assert.NoError(t, uc.Delete(ctx, 3, 7))
	})
}
