package domain

import "strings"

// Address - адрес, найденный геокодером; place_id - его первичный ключ
type Address struct {
	PlaceID    string  `json:"place_ID" db:"place_id"`
	Lat        float64 `json:"lat" db:"lat"`
	Lon        float64 `json:"lon" db:"lon"`
	StreetNo   *string `json:"street_no,omitempty" db:"street_no"`
	StreetName *string `json:"street_name,omitempty" db:"street_name"`
	TownCity   *string `json:"town_city,omitempty" db:"town_city"`
	Country    *string `json:"country,omitempty" db:"country"`
	UnitNo     *string `json:"unit_no,omitempty" db:"unit_no"`
	Postcode   *string `json:"postcode,omitempty" db:"postcode"`
}

func (a *Address) Point() Point {
	return Point{Lat: a.Lat, Lon: a.Lon}
}

// Line собирает адрес в одну строку: unit_no, street_no, street_name, town_city
// через одиночный пробел, пропуская отсутствующие части
func (a *Address) Line() string {
	parts := make([]string, 0, 4)
	for _, p := range []*string{a.UnitNo, a.StreetNo, a.StreetName, a.TownCity} {
		if p != nil && *p != "" {
			parts = append(parts, *p)
		}
	}
	return strings.Join(parts, " ")
}
