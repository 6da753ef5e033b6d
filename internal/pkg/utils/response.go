package utils

import (
	"github.com/gofiber/fiber/v2"
	"github.com/listing-service/internal/pkg/errors"
)

// SuccessResponse - конверт успешного ответа API
type SuccessResponse struct {
	Data interface{} `json:"data"`
	Meta *Meta       `json:"meta,omitempty"`
}

// ErrorResponse - конверт ошибки: {"error": {"code", "message"}}
type ErrorResponse struct {
	Error *errors.AppError `json:"error"`
}

type Meta struct {
	Total int `json:"total"`
}

func SendSuccess(c *fiber.Ctx, data interface{}, meta *Meta) error {
	return c.JSON(SuccessResponse{Data: data, Meta: meta})
}

// SendList отдает коллекцию вместе с количеством элементов
func SendList[T any](c *fiber.Ctx, items []T) error {
	if items == nil {
		items = []T{}
	}
	return SendSuccess(c, items, &Meta{Total: len(items)})
}

func SendCreated(c *fiber.Ctx, data interface{}) error {
	return c.Status(fiber.StatusCreated).JSON(SuccessResponse{Data: data})
}

func SendNoContent(c *fiber.Ctx) error {
	return c.SendStatus(fiber.StatusNoContent)
}

// SendError отдает AppError с его статусом, остальные ошибки скрываются за 500
func SendError(c *fiber.Ctx, err error) error {
	appErr, ok := errors.As(err)
	if !ok {
		appErr = errors.ErrInternalServer
	}
	return c.Status(appErr.StatusCode).JSON(ErrorResponse{Error: appErr})
}
