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

type OpportunityHandler struct {
	uc usecase.OpportunityUsecase
}

func NewOpportunityHandler(uc usecase.OpportunityUsecase) *OpportunityHandler {
	return &OpportunityHandler{uc: uc}
}

func (h *OpportunityHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}
	r.Get("/:opportunity_id", h.GetOpportunity)
}

func (h *OpportunityHandler) GetOpportunity(c fiber.Ctx) error {
	opportunityID, err := uuid.Parse(strings.TrimSpace(c.Params("opportunity_id")))
	if err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Invalid opportunity_id", err)
	}

	o, err := h.uc.GetOpportunity(c.Context(), opportunityID)
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

	return response.Success(c, fiber.StatusOK, dto.NewOpportunityResponse(o))
}
