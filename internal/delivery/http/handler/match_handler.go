package handler

import (
	"errors"
	"strconv"
	"strings"

	"liftout/internal/delivery/http/dto"
	"liftout/internal/delivery/http/middleware"
	"liftout/internal/pkg/response"
	"liftout/internal/usecase"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"
)

type MatchHandler struct {
	uc usecase.MatchingUsecase
}

func NewMatchHandler(uc usecase.MatchingUsecase) *MatchHandler {
	return &MatchHandler{uc: uc}
}

func (h *MatchHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}
	r.Get("/teams", h.ListTeams)
}

func (h *MatchHandler) ListTeams(c fiber.Ctx) error {
	opportunityID, err := uuid.Parse(strings.TrimSpace(c.Query("opportunity_id")))
	if err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Invalid opportunity_id", err)
	}

	minScore, err := queryInt(c, "min_score", usecase.DefaultMinScore)
	if err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Invalid min_score", err)
	}
	limit, err := queryInt(c, "limit", usecase.DefaultLimit)
	if err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Invalid limit", err)
	}

	params := usecase.MatchListParams{
		OpportunityID: opportunityID,
		MinScore:      minScore,
		Limit:         limit,
	}

	matches, err := h.uc.ListMatches(c.Context(), params)
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrInvalidInput):
			return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", err)
		case errors.Is(err, usecase.ErrOpportunityNotFound):
			return middleware.NewAppError(fiber.StatusNotFound, "Opportunity not found", err)
		default:
			return middleware.NewAppError(fiber.StatusInternalServerError, response.MessageInternalServerError, err)
		}
	}

	return response.Success(c, fiber.StatusOK, dto.NewMatchListResponse(params, matches))
}

func queryInt(c fiber.Ctx, key string, def int) (int, error) {
	raw := strings.TrimSpace(c.Query(key))
	if raw == "" {
		return def, nil
	}
	return strconv.Atoi(raw)
}
