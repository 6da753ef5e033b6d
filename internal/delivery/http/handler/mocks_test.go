package handler_test

import (
	"context"
	"errors"

	"github.com/stretchr/testify/mock"

	"github.com/listing-service/internal/pkg/token"
	"github.com/listing-service/internal/usecase/dto"
)

type MockListingSearcher struct {
	mock.Mock
}

func (m *MockListingSearcher) Nearby(ctx context.Context, lat, lon float64) ([]dto.NearbyListing, error) {
	args := m.Called(ctx, lat, lon)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]dto.NearbyListing), args.Error(1)
}

func (m *MockListingSearcher) GetOne(ctx context.Context, id int64) (*dto.ListingDetail, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.ListingDetail), args.Error(1)
}

func (m *MockListingSearcher) Search(ctx context.Context, q dto.SearchQuery) ([]dto.ListingDetail, error) {
	args := m.Called(ctx, q)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]dto.ListingDetail), args.Error(1)
}

type MockListingManager struct {
	mock.Mock
}

func (m *MockListingManager) Create(ctx context.Context, userID int64, req dto.CreateListingRequest) (*dto.CreatedListingResponse, error) {
	args := m.Called(ctx, userID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.CreatedListingResponse), args.Error(1)
}

func (m *MockListingManager) Update(ctx context.Context, userID, id int64, req dto.UpdateListingRequest) (*dto.ListingDetail, error) {
	args := m.Called(ctx, userID, id, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.ListingDetail), args.Error(1)
}

func (m *MockListingManager) Delete(ctx context.Context, userID, id int64) error {
	args := m.Called(ctx, userID, id)
	return args.Error(0)
}

type MockAuthService struct {
	mock.Mock
}

func (m *MockAuthService) Signup(ctx context.Context, req dto.SignupRequest) (*token.Issued, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*token.Issued), args.Error(1)
}

func (m *MockAuthService) Login(ctx context.Context, req dto.LoginRequest) (*token.Issued, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*token.Issued), args.Error(1)
}

type MockUserService struct {
	mock.Mock
}

func (m *MockUserService) EditUser(ctx context.Context, userID int64, req dto.EditUserRequest) error {
	args := m.Called(ctx, userID, req)
	return args.Error(0)
}

func (m *MockUserService) GetMe(ctx context.Context, userID int64) (*dto.UserProfile, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.UserProfile), args.Error(1)
}

type stubChecker struct {
	err error
}

func (s stubChecker) Health(context.Context) error {
	return s.err
}

type stubAuthenticator struct{}

// Authenticate accepts "user-3" and "user-4"
func (stubAuthenticator) Authenticate(tokenString string) (*token.Claims, error) {
	switch tokenString {
	case "user-3":
		return &token.Claims{UserID: 3}, nil
	case "user-4":
		return &token.Claims{UserID: 4}, nil
	}
	return nil, errors.New("bad token")
}
