package domain

type Point struct {
	Lat float64 `json:"lat" db:"lat"`
	Lon float64 `json:"lon" db:"lon"`
}

type BoundingBox struct {
	MinLat float64 `json:"min_lat" db:"min_lat"`
	MinLon float64 `json:"min_lon" db:"min_lon"`
	MaxLat float64 `json:"max_lat" db:"max_lat"`
	MaxLon float64 `json:"max_lon" db:"max_lon"`
}

// DefaultBBoxDelta - полуразмер квадрата поиска в градусах (сторона ~22 км)
const DefaultBBoxDelta = 0.1

// BoundingBoxAround строит квадрат со стороной 2*delta вокруг центра.
// Перехода через антимеридиан и ограничения у полюсов нет.
func BoundingBoxAround(center Point, delta float64) BoundingBox {
	return BoundingBox{
		MinLat: center.Lat - delta,
		MinLon: center.Lon - delta,
		MaxLat: center.Lat + delta,
		MaxLon: center.Lon + delta,
	}
}

// Contains - попадание точки в квадрат, границы включительно (как BETWEEN в SQL)
func (b BoundingBox) Contains(p Point) bool {
	return p.Lat >= b.MinLat && p.Lat <= b.MaxLat &&
		p.Lon >= b.MinLon && p.Lon <= b.MaxLon
}
