package utils

import (
	"strconv"

	"github.com/listing-service/internal/pkg/errors"
)

// ValidateCoordinates проверяет валидность координат
func ValidateCoordinates(lat, lon float64) bool {
	return lat >= -90 && lat <= 90 && lon >= -180 && lon <= 180
}

// ParseCoordinates разбирает пару lat/lon из строковых параметров запроса
func ParseCoordinates(rawLat, rawLon string) (float64, float64, error) {
	lat, err := strconv.ParseFloat(rawLat, 64)
	if err != nil {
		return 0, 0, errors.ErrInvalidCoordinates
	}
	lon, err := strconv.ParseFloat(rawLon, 64)
	if err != nil {
		return 0, 0, errors.ErrInvalidCoordinates
	}
	if !ValidateCoordinates(lat, lon) {
		return 0, 0, errors.ErrInvalidCoordinates
	}
	return lat, lon, nil
}
