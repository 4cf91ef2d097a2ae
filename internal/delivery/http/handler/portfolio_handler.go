package handler

import (
	"errors"

	"career-compass/internal/delivery/http/dto"
	"career-compass/internal/delivery/http/middleware"
	"career-compass/internal/pkg/response"
	"career-compass/internal/usecase"

	"github.com/gofiber/fiber/v3"
)

type PortfolioHandler struct {
	uc usecase.PortfolioUsecase
}

func NewPortfolioHandler(uc usecase.PortfolioUsecase) *PortfolioHandler {
	return &PortfolioHandler{uc: uc}
}

func (h *PortfolioHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}

	r.Post("/generate", h.Generate)
	r.Get("/", h.Get)
	r.Get("/preview", h.Preview)
}

func (h *PortfolioHandler) Generate(c fiber.Ctx) error {
	userID, err := userIDFromCtx(c)
	if err != nil {
		return err
	}

	var req dto.GeneratePortfolioRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}
	if fields := dto.Validate(req); fields != nil {
		return middleware.NewAppError(fiber.StatusUnprocessableEntity, "Validation failed", fields, nil)
	}

	rec, err := h.uc.Generate(c.Context(), userID, usecase.GeneratePortfolioInput{
		Theme:    req.Theme,
		Phone:    req.Phone,
		Location: req.Location,
	})
	if err != nil {
		return mapPortfolioUsecaseError(err)
	}
	return response.Success(c, fiber.StatusCreated, "Portfolio generated", dto.FromPortfolio(rec))
}

func (h *PortfolioHandler) Get(c fiber.Ctx) error {
	userID, err := userIDFromCtx(c)
	if err != nil {
		return err
	}

	rec, err := h.uc.Get(c.Context(), userID)
	if err != nil {
		return mapPortfolioUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.FromPortfolio(rec))
}

// Preview serves the stored page as raw HTML for in-browser viewing.
func (h *PortfolioHandler) Preview(c fiber.Ctx) error {
	userID, err := userIDFromCtx(c)
	if err != nil {
		return err
	}

	rec, err := h.uc.Get(c.Context(), userID)
	if err != nil {
		return mapPortfolioUsecaseError(err)
	}

	c.Set(fiber.HeaderContentType, fiber.MIMETextHTMLCharsetUTF8)
	return c.Status(fiber.StatusOK).SendString(rec.HTML)
}

func mapPortfolioUsecaseError(err error) error {
	if err == nil {
		return nil
	}

	switch {
	case errors.Is(err, usecase.ErrPortfolioNotFound):
		return middleware.NewAppError(fiber.StatusNotFound, "Portfolio not found", nil, err)
	case errors.Is(err, usecase.ErrUnauthorized):
		return middleware.NewAppError(fiber.StatusUnauthorized, "Unauthorized", nil, err)
	default:
		return middleware.NewAppError(fiber.StatusInternalServerError, response.MessageInternalServerError, nil, err)
	}
}
