package handler

import (
	"errors"

	"career-compass/internal/delivery/http/dto"
	"career-compass/internal/delivery/http/middleware"
	"career-compass/internal/pkg/response"
	"career-compass/internal/usecase"

	"github.com/gofiber/fiber/v3"
)

// CareerHandler exposes the pure analysis endpoints: gap detection,
// trajectory, goal matching, and recommendations.
type CareerHandler struct {
	uc usecase.CareerUsecase
}

func NewCareerHandler(uc usecase.CareerUsecase) *CareerHandler {
	return &CareerHandler{uc: uc}
}

func (h *CareerHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}

	r.Post("/analyze-gaps", h.AnalyzeGaps)
	r.Get("/trajectory/:goal", h.Trajectory)
	r.Post("/match", h.Match)
	r.Post("/projects", h.RecommendProjects)
	r.Get("/resources/:skill", h.RecommendResources)
}

func (h *CareerHandler) AnalyzeGaps(c fiber.Ctx) error {
	var req dto.AnalyzeGapsRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}
	if fields := dto.Validate(req); fields != nil {
		return middleware.NewAppError(fiber.StatusUnprocessableEntity, "Validation failed", fields, nil)
	}

	report, err := h.uc.AnalyzeGaps(req.CareerGoal, req.CurrentSkills)
	if err != nil {
		return mapCareerUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.FromGapReport(report))
}

func (h *CareerHandler) Trajectory(c fiber.Ctx) error {
	goal := c.Params("goal")

	trajectory, err := h.uc.Trajectory(goal)
	if err != nil {
		return mapCareerUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.FromTrajectory(trajectory))
}

func (h *CareerHandler) Match(c fiber.Ctx) error {
	var req dto.MatchRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}
	if fields := dto.Validate(req); fields != nil {
		return middleware.NewAppError(fiber.StatusUnprocessableEntity, "Validation failed", fields, nil)
	}

	report, err := h.uc.Match(req.CareerGoal, req.Skills)
	if err != nil {
		return mapCareerUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.FromMatchReport(report))
}

func (h *CareerHandler) RecommendProjects(c fiber.Ctx) error {
	var req dto.RecommendProjectsRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}
	if fields := dto.Validate(req); fields != nil {
		return middleware.NewAppError(fiber.StatusUnprocessableEntity, "Validation failed", fields, nil)
	}

	projects := h.uc.RecommendProjects(req.Skills, req.CareerGoal)
	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.FromProjects(projects))
}

func (h *CareerHandler) RecommendResources(c fiber.Ctx) error {
	skillName := c.Params("skill")

	resources, err := h.uc.RecommendResources(skillName)
	if err != nil {
		return mapCareerUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.FromResources(resources))
}

func mapCareerUsecaseError(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, usecase.ErrInvalidInput) {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}
	return middleware.NewAppError(fiber.StatusInternalServerError, response.MessageInternalServerError, nil, err)
}
