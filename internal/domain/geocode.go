package domain

import "unicode/utf8"

// GeocodeResult - первый результат геокодера для адреса
type GeocodeResult struct {
	PlaceID          string
	FormattedAddress string
	Location         Point
	Components       AddressComponents
}

// AddressComponents - разобранные компоненты адреса геокодера
type AddressComponents struct {
	StreetNo string
	Street   string
	Region   string
	City     string
	Country  string
	Postcode string
}

// Ширина колонок addresses в символах
const (
	maxStreetNoLen   = 20
	maxStreetNameLen = 100
	maxTownCityLen   = 50
	maxCountryLen    = 50
	maxPostcodeLen   = 10
)

// ToAddress строит Address из результата геокодирования.
// Значения обрезаются до ширины колонок
func (r *GeocodeResult) ToAddress() *Address {
	return &Address{
		PlaceID:    r.PlaceID,
		Lat:        r.Location.Lat,
		Lon:        r.Location.Lon,
		StreetNo:   optional(r.Components.StreetNo, maxStreetNoLen),
		StreetName: optional(r.Components.Street, maxStreetNameLen),
		TownCity:   optional(r.Components.City, maxTownCityLen),
		Country:    optional(r.Components.Country, maxCountryLen),
		Postcode:   optional(r.Components.Postcode, maxPostcodeLen),
	}
}

func optional(s string, maxLen int) *string {
	if s == "" {
		return nil
	}
	s = truncateRunes(s, maxLen)
	return &s
}

func truncateRunes(s string, maxLen int) string {
	if utf8.RuneCountInString(s) <= maxLen {
		return s
	}
	return string([]rune(s)[:maxLen])
}
