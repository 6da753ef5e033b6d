package usecase

import (
	"fmt"
	"strconv"
)

// NearbyGenerationKey - счетчик поколений кеша nearby; его увеличение
// делает недействительными все закешированные выборки сразу
const NearbyGenerationKey = "nearby:generation"

// ListingCacheKey - ключ кеша карточки объявления
func ListingCacheKey(id int64) string {
	return fmt.Sprintf("listing:%d", id)
}

func nearbyCacheKey(generation int64, lat, lon, delta float64) string {
	return fmt.Sprintf("nearby:v%d:%s:%s:%s",
		generation,
		strconv.FormatFloat(lat, 'f', -1, 64),
		strconv.FormatFloat(lon, 'f', -1, 64),
		strconv.FormatFloat(delta, 'f', -1, 64),
	)
}
