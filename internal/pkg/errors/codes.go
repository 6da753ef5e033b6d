package errors

import "net/http"

var (
	ErrListingNotFound = New(
		"LISTING_NOT_FOUND",
		"No listings found.",
		http.StatusNotFound,
	)

	ErrNoListingsNearby = New(
		"NO_LISTINGS_NEARBY",
		"No listings found near those coordinates.",
		http.StatusNotFound,
	)

	ErrMissingAddress = New(
		"MISSING_ADDRESS",
		"missing address",
		http.StatusBadRequest,
	)

	ErrMissingListingComponent = New(
		"MISSING_LISTING_COMPONENT",
		"missing listing component",
		http.StatusBadRequest,
	)

	ErrAddressNotFound = New(
		"ADDRESS_NOT_FOUND",
		"address not found",
		http.StatusBadRequest,
	)

	ErrMissingSearchTerms = New(
		"MISSING_SEARCH_TERMS",
		"Must be searching by at least one tag or keyword.",
		http.StatusBadRequest,
	)

	ErrInvalidCoordinates = New(
		"INVALID_COORDINATES",
		"Invalid coordinates provided",
		http.StatusBadRequest,
	)

	ErrInvalidListingID = New(
		"INVALID_LISTING_ID",
		"Invalid listing ID",
		http.StatusBadRequest,
	)

	ErrMissingToken = New(
		"MISSING_TOKEN",
		"Missing token",
		http.StatusForbidden,
	)

	ErrMalformedToken = New(
		"MALFORMED_TOKEN",
		"Failed to read token",
		http.StatusBadRequest,
	)

	ErrInvalidToken = New(
		"INVALID_TOKEN",
		"Invalid Token",
		http.StatusUnauthorized,
	)

	ErrInvalidCredentials = New(
		"INVALID_CREDENTIALS",
		"Invalid email or password",
		http.StatusUnauthorized,
	)

	ErrEmailTaken = New(
		"EMAIL_TAKEN",
		"Email is already registered",
		http.StatusConflict,
	)

	ErrForbidden = New(
		"FORBIDDEN",
		"Only the producer of a listing may change it",
		http.StatusForbidden,
	)

	ErrUserNotFound = New(
		"USER_NOT_FOUND",
		"User not found",
		http.StatusNotFound,
	)

	ErrGeocoderUnavailable = New(
		"GEOCODER_UNAVAILABLE",
		"Address lookup is temporarily unavailable",
		http.StatusServiceUnavailable,
	)

	ErrDatabaseError = New(
		"DATABASE_ERROR",
		"Database operation failed",
		http.StatusInternalServerError,
	)

	ErrCacheError = New(
		"CACHE_ERROR",
		"Cache operation failed",
		http.StatusInternalServerError,
	)

	ErrInvalidRequest = New(
		"INVALID_REQUEST",
		"Invalid request parameters",
		http.StatusBadRequest,
	)

	ErrInternalServer = New(
		"INTERNAL_SERVER_ERROR",
		"Internal server error",
		http.StatusInternalServerError,
	)
)
