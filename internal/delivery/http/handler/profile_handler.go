package handler

import (
	"errors"

	"career-compass/internal/delivery/http/dto"
	"career-compass/internal/delivery/http/middleware"
	"career-compass/internal/pkg/response"
	"career-compass/internal/usecase"

	"github.com/gofiber/fiber/v3"
)

type ProfileHandler struct {
	uc       usecase.ProfileUsecase
	insights usecase.InsightUsecase
}

func NewProfileHandler(uc usecase.ProfileUsecase, insights usecase.InsightUsecase) *ProfileHandler {
	return &ProfileHandler{uc: uc, insights: insights}
}

func (h *ProfileHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}

	r.Get("/", h.Get)
	r.Put("/", h.Upsert)
	r.Post("/linkedin-insights", h.LinkedInInsights)
}

func (h *ProfileHandler) Get(c fiber.Ctx) error {
	userID, err := userIDFromCtx(c)
	if err != nil {
		return err
	}

	profile, err := h.uc.Get(c.Context(), userID)
	if err != nil {
		if errors.Is(err, usecase.ErrProfileNotFound) {
			return middleware.NewAppError(fiber.StatusNotFound, "Profile not found", nil, err)
		}
		return middleware.NewAppError(fiber.StatusInternalServerError, response.MessageInternalServerError, nil, err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.FromProfile(profile))
}

func (h *ProfileHandler) Upsert(c fiber.Ctx) error {
	userID, err := userIDFromCtx(c)
	if err != nil {
		return err
	}

	var req dto.UpsertProfileRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}
	if fields := dto.Validate(req); fields != nil {
		return middleware.NewAppError(fiber.StatusUnprocessableEntity, "Validation failed", fields, nil)
	}

	profile, err := h.uc.Upsert(c.Context(), userID, usecase.UpsertProfileInput{
		CareerGoal:      req.CareerGoal,
		CurrentSkills:   req.CurrentSkills,
		YearsExperience: req.YearsExperience,
		LinkedInURL:     req.LinkedInURL,
		GitHubURL:       req.GitHubURL,
		Bio:             req.Bio,
	})
	if err != nil {
		if errors.Is(err, usecase.ErrInvalidInput) {
			return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
		}
		return middleware.NewAppError(fiber.StatusInternalServerError, response.MessageInternalServerError, nil, err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.FromProfile(profile))
}

func (h *ProfileHandler) LinkedInInsights(c fiber.Ctx) error {
	if _, err := userIDFromCtx(c); err != nil {
		return err
	}

	var req dto.LinkedInInsightsRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}
	if fields := dto.Validate(req); fields != nil {
		return middleware.NewAppError(fiber.StatusUnprocessableEntity, "Validation failed", fields, nil)
	}

	insights, err := h.insights.AnalyzeLinkedIn(c.Context(), req.ProfileURL)
	if err != nil {
		if errors.Is(err, usecase.ErrInvalidInput) {
			return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
		}
		return middleware.NewAppError(fiber.StatusInternalServerError, response.MessageInternalServerError, nil, err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, insights)
}
