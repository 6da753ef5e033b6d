package handler

import (
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/listing-service/internal/delivery/http/middleware"
	"github.com/listing-service/internal/pkg/errors"
	"github.com/listing-service/internal/pkg/utils"
	"github.com/listing-service/internal/usecase/dto"
	"go.uber.org/zap"
)

// ListingHandler - поиск и управление объявлениями
type ListingHandler struct {
	searchUC  ListingSearcher
	listingUC ListingManager
	logger    *zap.Logger
}

func NewListingHandler(searchUC ListingSearcher, listingUC ListingManager, logger *zap.Logger) *ListingHandler {
	return &ListingHandler{
		searchUC:  searchUC,
		listingUC: listingUC,
		logger:    logger,
	}
}

// Nearby godoc
// @Summary Объявления рядом с точкой
// @Description Объявления, адрес которых попадает в квадрат вокруг точки. Без повторов, по возрастанию listing_ID
// @Tags Listings
// @Produce json
// @Param lat query number true "Широта"
// @Param lon query number true "Долгота"
// @Success 200 {object} utils.SuccessResponse{data=[]dto.NearbyListing}
// @Failure 400 {object} utils.ErrorResponse
// @Failure 404 {object} utils.ErrorResponse
// @Router /api/v1/listings/nearby [get]
func (h *ListingHandler) Nearby(c *fiber.Ctx) error {
	lat, lon, err := utils.ParseCoordinates(c.Query("lat"), c.Query("lon"))
	if err != nil {
		return utils.SendError(c, err)
	}

	result, err := h.searchUC.Nearby(c.Context(), lat, lon)
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendList(c, result)
}

// Search godoc
// @Summary Поиск объявлений
// @Description Поиск по меткам и/или ключевым словам (термы разделяются "+"). При обоих критериях объявление должно подходить под каждый
// @Tags Listings
// @Produce json
// @Param keywords query string false "Ключевые слова, например eggs+organic"
// @Param tags query string false "Метки, например fruit+veg"
// @Param lat query number false "Широта для ограничения по области"
// @Param lon query number false "Долгота для ограничения по области"
// @Success 200 {object} utils.SuccessResponse{data=[]dto.ListingDetail}
// @Failure 400 {object} utils.ErrorResponse
// @Router /api/v1/listings/search [get]
func (h *ListingHandler) Search(c *fiber.Ctx) error {
	query := dto.SearchQuery{
		Keywords: c.Query("keywords"),
		Tags:     c.Query("tags"),
	}

	rawLat, rawLon := c.Query("lat"), c.Query("lon")
	if rawLat != "" || rawLon != "" {
		lat, lon, err := utils.ParseCoordinates(rawLat, rawLon)
		if err != nil {
			return utils.SendError(c, err)
		}
		query.Lat, query.Lon = &lat, &lon
	}

	result, err := h.searchUC.Search(c.Context(), query)
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendList(c, result)
}

// GetOne godoc
// @Summary Объявление по ID (параметр запроса)
// @Tags Listings
// @Produce json
// @Param id query int true "ID объявления"
// @Success 200 {object} utils.SuccessResponse{data=dto.ListingDetail}
// @Failure 400 {object} utils.ErrorResponse
// @Failure 404 {object} utils.ErrorResponse
// @Router /api/v1/listings [get]
func (h *ListingHandler) GetOne(c *fiber.Ctx) error {
	return h.sendListing(c, c.Query("id"))
}

// GetByID godoc
// @Summary Объявление по ID
// @Tags Listings
// @Produce json
// @Param id path int true "ID объявления"
// @Success 200 {object} utils.SuccessResponse{data=dto.ListingDetail}
// @Failure 400 {object} utils.ErrorResponse
// @Failure 404 {object} utils.ErrorResponse
// @Router /api/v1/listings/{id} [get]
func (h *ListingHandler) GetByID(c *fiber.Ctx) error {
	return h.sendListing(c, c.Params("id"))
}

func (h *ListingHandler) sendListing(c *fiber.Ctx, rawID string) error {
	id, err := parseListingID(rawID)
	if err != nil {
		return utils.SendError(c, err)
	}

	detail, err := h.searchUC.GetOne(c.Context(), id)
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, detail, nil)
}

// Create godoc
// @Summary Создание объявления
// @Description Адрес геокодируется; метки приводятся к нижнему регистру без повторов
// @Tags Listings
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.CreateListingRequest true "Объявление"
// @Success 201 {object} utils.SuccessResponse{data=dto.CreatedListingResponse}
// @Failure 400 {object} utils.ErrorResponse
// @Failure 401 {object} utils.ErrorResponse
// @Failure 403 {object} utils.ErrorResponse
// @Failure 503 {object} utils.ErrorResponse
// @Router /api/v1/listings [post]
func (h *ListingHandler) Create(c *fiber.Ctx) error {
	userID, ok := middleware.UserID(c)
	if !ok {
		return utils.SendError(c, errors.ErrMissingToken)
	}

	var req dto.CreateListingRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.SendError(c, errors.ErrInvalidRequest)
	}

	result, err := h.listingUC.Create(c.Context(), userID, req)
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendCreated(c, result)
}

// Update godoc
// @Summary Изменение объявления
// @Description Меняет переданные поля; доступно только автору
// @Tags Listings
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "ID объявления"
// @Param request body dto.UpdateListingRequest true "Поля объявления"
// @Success 200 {object} utils.SuccessResponse{data=dto.ListingDetail}
// @Failure 400 {object} utils.ErrorResponse
// @Failure 403 {object} utils.ErrorResponse
// @Failure 404 {object} utils.ErrorResponse
// @Router /api/v1/listings/{id} [patch]
func (h *ListingHandler) Update(c *fiber.Ctx) error {
	userID, ok := middleware.UserID(c)
	if !ok {
		return utils.SendError(c, errors.ErrMissingToken)
	}

	id, err := parseListingID(c.Params("id"))
	if err != nil {
		return utils.SendError(c, err)
	}

	var req dto.UpdateListingRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.SendError(c, errors.ErrInvalidRequest)
	}

	detail, err := h.listingUC.Update(c.Context(), userID, id, req)
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, detail, nil)
}

// Delete godoc
// @Summary Удаление объявления
// @Tags Listings
// @Security BearerAuth
// @Param id path int true "ID объявления"
// @Success 204
// @Failure 403 {object} utils.ErrorResponse
// @Failure 404 {object} utils.ErrorResponse
// @Router /api/v1/listings/{id} [delete]
func (h *ListingHandler) Delete(c *fiber.Ctx) error {
	userID, ok := middleware.UserID(c)
	if !ok {
		return utils.SendError(c, errors.ErrMissingToken)
	}

	id, err := parseListingID(c.Params("id"))
	if err != nil {
		return utils.SendError(c, err)
	}

	if err := h.listingUC.Delete(c.Context(), userID, id); err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendNoContent(c)
}

func parseListingID(raw string) (int64, error) {
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, errors.ErrInvalidListingID
	}
	return id, nil
}
