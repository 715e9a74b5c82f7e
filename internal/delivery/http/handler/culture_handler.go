package handler

import (
	"errors"
	"strings"

	"liftout/internal/delivery/http/dto"
	"liftout/internal/delivery/http/middleware"
	"liftout/internal/pkg/response"
	"liftout/internal/usecase"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"
)

type CultureHandler struct {
	uc usecase.CultureUsecase
}

func NewCultureHandler(uc usecase.CultureUsecase) *CultureHandler {
	return &CultureHandler{uc: uc}
}

func (h *CultureHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}
	r.Get("/compatibility", h.Compatibility)
	r.Get("/profile", h.Profile)
}

func (h *CultureHandler) Compatibility(c fiber.Ctx) error {
	teamID, err := uuid.Parse(strings.TrimSpace(c.Query("team_id")))
	if err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Invalid team_id", err)
	}
	companyID, err := uuid.Parse(strings.TrimSpace(c.Query("company_id")))
	if err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Invalid company_id", err)
	}

	assessment, err := h.uc.AssessCompatibility(c.Context(), teamID, companyID)
	if err != nil {
		return mapCultureUsecaseError(err)
	}

	return response.Success(c, fiber.StatusOK, dto.NewCultureCompatibilityResponse(assessment))
}

func (h *CultureHandler) Profile(c fiber.Ctx) error {
	entityType := strings.ToLower(strings.TrimSpace(c.Query("entity_type")))
	entityID, err := uuid.Parse(strings.TrimSpace(c.Query("entity_id")))
	if err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Invalid entity_id", err)
	}

	profile, err := h.uc.GetProfile(c.Context(), entityType, entityID)
	if err != nil {
		return mapCultureUsecaseError(err)
	}

	return response.Success(c, fiber.StatusOK, dto.NewCultureProfileResponse(profile))
}

func mapCultureUsecaseError(err error) error {
	switch {
	case errors.Is(err, usecase.ErrInvalidInput):
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", err)
	case errors.Is(err, usecase.ErrTeamNotFound):
		return middleware.NewAppError(fiber.StatusNotFound, "Team not found", err)
	case errors.Is(err, usecase.ErrCompanyNotFound):
		return middleware.NewAppError(fiber.StatusNotFound, "Company not found", err)
	default:
		return middleware.NewAppError(fiber.StatusInternalServerError, response.MessageInternalServerError, err)
	}
}
