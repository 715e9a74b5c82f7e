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

type TeamHandler struct {
	uc usecase.TeamUsecase
}

func NewTeamHandler(uc usecase.TeamUsecase) *TeamHandler {
	return &TeamHandler{uc: uc}
}

func (h *TeamHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}
	r.Get("/:team_id", h.GetTeam)
}

func (h *TeamHandler) GetTeam(c fiber.Ctx) error {
	teamID, err := uuid.Parse(strings.TrimSpace(c.Params("team_id")))
	if err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Invalid team_id", err)
	}

	detail, err := h.uc.GetTeam(c.Context(), teamID)
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrInvalidInput):
			return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", err)
		case errors.Is(err, usecase.ErrTeamNotFound):
			return middleware.NewAppError(fiber.StatusNotFound, "Team not found", err)
		default:
			return middleware.NewAppError(fiber.StatusInternalServerError, response.MessageInternalServerError, err)
		}
	}

	return response.Success(c, fiber.StatusOK, dto.NewTeamResponse(detail))
}
