package dto

import "github.com/listing-service/internal/domain"

// CreatedListingResponse - ответ на создание объявления
type CreatedListingResponse struct {
	ListingID int64 `json:"listing_ID"`
}

// NearbyListing - объявление рядом с точкой: поля объявления, координаты адреса и метки
type NearbyListing struct {
	domain.Listing
	Lat  float64  `json:"lat"`
	Lon  float64  `json:"lon"`
	Tags []string `json:"tags"`
}

// ListingDetail - полное представление объявления
type ListingDetail struct {
	domain.Listing
	Tags       string  `json:"tags"`
	Address    string  `json:"address"`
	Lat        float64 `json:"lat"`
	Lon        float64 `json:"lon"`
	ProducerID int64   `json:"producerID"`
}

// UserProfile - профиль пользователя без хеша пароля
type UserProfile struct {
	UserID   int64   `json:"user_ID"`
	Username *string `json:"username"`
	Email    string  `json:"email"`
	Phone    *string `json:"phone_num"`
}

// HealthResponse - состояние зависимостей сервиса
type HealthResponse struct {
	Status   string            `json:"status"`
	Services map[string]string `json:"services"`
}
