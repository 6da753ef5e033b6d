package domain

import (
	"strings"
	"time"
	"unicode"
)

// Listing - объявление
type Listing struct {
	ID                 int64     `json:"listing_ID" db:"listing_id"`
	Title              string    `json:"title" db:"title"`
	Description        string    `json:"description" db:"description"`
	PickupInstructions string    `json:"pickup_instructions" db:"pickup_instructions"`
	StockNum           *int      `json:"stock_num" db:"stock_num"`
	UserID             int64     `json:"user_ID" db:"user_id"`
	PlaceID            string    `json:"place_ID" db:"place_id"`
	CreatedAt          time.Time `json:"createdAt" db:"created_at"`
	UpdatedAt          time.Time `json:"updatedAt" db:"updated_at"`
}

// Tag - метка объявления
type Tag struct {
	ListingID int64  `json:"listing_ID" db:"listing_id"`
	Tag       string `json:"tag" db:"tag"`
	Position  int    `json:"-" db:"position"`
}

// MaxTagLength - ограничение длины метки (tag VARCHAR(20))
const MaxTagLength = 20

// NormalizeTags приводит метки к нижнему регистру, убирает пустые и повторы,
// сохраняя порядок первого появления. Метка с разделителями поиска ("free range")
// разбивается на отдельные метки, иначе ее нельзя найти через SplitTerms
func NormalizeTags(tags []string) []string {
	fields := make([]string, 0, len(tags))
	for _, t := range tags {
		fields = append(fields, strings.FieldsFunc(t, isTermSeparator)...)
	}
	return normalizeTerms(fields)
}

// SplitTerms разбивает строку поиска на термы. Разделители - '+' и пробельные
// символы (в query string '+' приходит уже раскодированным в пробел)
func SplitTerms(raw string) []string {
	return normalizeTerms(strings.FieldsFunc(raw, isTermSeparator))
}

func isTermSeparator(r rune) bool {
	return r == '+' || unicode.IsSpace(r)
}

func normalizeTerms(in []string) []string {
	out := make([]string, 0, len(in))
	seen := make(map[string]struct{}, len(in))
	for _, t := range in {
		t = strings.ToLower(strings.TrimSpace(t))
		if t == "" {
			continue
		}
		if _, ok := seen[t]; ok {
			continue
		}
		seen[t] = struct{}{}
		out = append(out, t)
	}
	return out
}

// ListingFilter - условия поиска объявлений. Пустые Tags или Keywords не ограничивают
// выборку; при обоих объявление должно подходить под каждое условие
type ListingFilter struct {
	Tags     []string
	Keywords []string
	Box      *BoundingBox
	Limit    int
}

// ListingPatch - частичное обновление объявления; nil означает "не менять"
type ListingPatch struct {
	Title              *string
	Description        *string
	PickupInstructions *string
	StockNum           *int
}

// IsEmpty - нет ни одного изменяемого поля
func (p ListingPatch) IsEmpty() bool {
	return p.Title == nil && p.Description == nil && p.PickupInstructions == nil && p.StockNum == nil
}
