package usecase

import (
	"context"
	"errors"

	"liftout/internal/domain/opportunity"
	"liftout/internal/repository"

	"github.com/google/uuid"
)

type OpportunityUsecase interface {
	GetOpportunity(ctx context.Context, opportunityID uuid.UUID) (opportunity.Opportunity, error)
}

type Opportunities struct {
	opportunities repository.OpportunityRepository
}

func NewOpportunityUsecase(opportunities repository.OpportunityRepository) *Opportunities {
	return &Opportunities{opportunities: opportunities}
}

func (u *Opportunities) GetOpportunity(ctx context.Context, opportunityID uuid.UUID) (opportunity.Opportunity, error) {
	if opportunityID == uuid.Nil {
		return opportunity.Opportunity{}, ErrInvalidInput
	}

	o, err := u.opportunities.GetByID(ctx, opportunityID)
	if err != nil {
		if errors.Is(err, repository.ErrOpportunityNotFound) {
			return opportunity.Opportunity{}, ErrOpportunityNotFound
		}
		return opportunity.Opportunity{}, ErrInternal
	}
	return o, nil
}
