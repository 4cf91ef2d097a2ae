package handler

import (
	"errors"

	"career-compass/internal/delivery/http/dto"
	"career-compass/internal/delivery/http/middleware"
	"career-compass/internal/pkg/response"
	"career-compass/internal/usecase"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"
)

type RoadmapHandler struct {
	uc usecase.RoadmapUsecase
}

func NewRoadmapHandler(uc usecase.RoadmapUsecase) *RoadmapHandler {
	return &RoadmapHandler{uc: uc}
}

func (h *RoadmapHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}

	r.Post("/generate", h.Generate)
	r.Get("/", h.List)
	r.Get("/:id", h.Get)
	r.Patch("/:id/progress", h.UpdateProgress)
	r.Delete("/:id", h.Delete)
}

func (h *RoadmapHandler) Generate(c fiber.Ctx) error {
	userID, err := userIDFromCtx(c)
	if err != nil {
		return err
	}

	var req dto.GenerateRoadmapRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}
	if fields := dto.Validate(req); fields != nil {
		return middleware.NewAppError(fiber.StatusUnprocessableEntity, "Validation failed", fields, nil)
	}

	rec, err := h.uc.Generate(c.Context(), userID, usecase.GenerateRoadmapInput{
		Goal:            req.CareerGoal,
		CurrentSkills:   req.CurrentSkills,
		YearsExperience: req.YearsExperience,
	})
	if err != nil {
		return mapRoadmapUsecaseError(err)
	}
	return response.Success(c, fiber.StatusCreated, "Roadmap generated", dto.FromRoadmapRecord(rec))
}

func (h *RoadmapHandler) List(c fiber.Ctx) error {
	userID, err := userIDFromCtx(c)
	if err != nil {
		return err
	}

	records, err := h.uc.List(c.Context(), userID)
	if err != nil {
		return mapRoadmapUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.FromRoadmapRecords(records))
}

func (h *RoadmapHandler) Get(c fiber.Ctx) error {
	userID, err := userIDFromCtx(c)
	if err != nil {
		return err
	}
	roadmapID, err := roadmapIDFromParams(c)
	if err != nil {
		return err
	}

	rec, err := h.uc.Get(c.Context(), userID, roadmapID)
	if err != nil {
		return mapRoadmapUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.FromRoadmapRecord(rec))
}

func (h *RoadmapHandler) UpdateProgress(c fiber.Ctx) error {
	userID, err := userIDFromCtx(c)
	if err != nil {
		return err
	}
	roadmapID, err := roadmapIDFromParams(c)
	if err != nil {
		return err
	}

	var req dto.UpdateProgressRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}
	if fields := dto.Validate(req); fields != nil {
		return middleware.NewAppError(fiber.StatusUnprocessableEntity, "Validation failed", fields, nil)
	}

	rec, err := h.uc.UpdateProgress(c.Context(), userID, roadmapID, req.CompletedPhases)
	if err != nil {
		return mapRoadmapUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, "Progress updated", dto.FromRoadmapRecord(rec))
}

func (h *RoadmapHandler) Delete(c fiber.Ctx) error {
	userID, err := userIDFromCtx(c)
	if err != nil {
		return err
	}
	roadmapID, err := roadmapIDFromParams(c)
	if err != nil {
		return err
	}

	if err := h.uc.Delete(c.Context(), userID, roadmapID); err != nil {
		return mapRoadmapUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, "Roadmap deleted", nil)
}

func roadmapIDFromParams(c fiber.Ctx) (uuid.UUID, error) {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return uuid.Nil, middleware.NewAppError(fiber.StatusBadRequest, "Invalid roadmap id", nil, err)
	}
	return id, nil
}

func mapRoadmapUsecaseError(err error) error {
	if err == nil {
		return nil
	}

	switch {
	case errors.Is(err, usecase.ErrInvalidInput):
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	case errors.Is(err, usecase.ErrRoadmapNotFound):
		return middleware.NewAppError(fiber.StatusNotFound, "Roadmap not found", nil, err)
	case errors.Is(err, usecase.ErrForbidden):
		return middleware.NewAppError(fiber.StatusForbidden, "Forbidden", nil, err)
	default:
		return middleware.NewAppError(fiber.StatusInternalServerError, response.MessageInternalServerError, nil, err)
	}
}
