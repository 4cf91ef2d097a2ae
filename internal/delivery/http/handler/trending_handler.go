package handler

import (
	"strconv"

	"career-compass/internal/delivery/http/middleware"
	"career-compass/internal/pkg/response"
	"career-compass/internal/usecase"

	"github.com/gofiber/fiber/v3"
)

type TrendingHandler struct {
	uc usecase.TrendingUsecase
}

func NewTrendingHandler(uc usecase.TrendingUsecase) *TrendingHandler {
	return &TrendingHandler{uc: uc}
}

func (h *TrendingHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}

	r.Get("/", h.List)
}

func (h *TrendingHandler) List(c fiber.Ctx) error {
	language := c.Query("language")
	limit := 0
	if raw := c.Query("limit"); raw != "" {
		v, err := strconv.Atoi(raw)
		if err != nil || v < 0 {
			return middleware.NewAppError(fiber.StatusBadRequest, "Invalid limit", nil, err)
		}
		limit = v
	}

	repos, err := h.uc.List(c.Context(), language, limit)
	if err != nil {
		return middleware.NewAppError(fiber.StatusInternalServerError, response.MessageInternalServerError, nil, err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, repos)
}
