package usecase

import (
	"context"

	"github.com/xavierca1/ligue-outreach/internal/entity"
)

type CreateCampaignUseCase struct {
	Repo CampaignRepositoryInterface
}

func NewCreateCampaignUseCase(repo CampaignRepositoryInterface) *CreateCampaignUseCase {
	return &CreateCampaignUseCase{Repo: repo}
}

func (uc *CreateCampaignUseCase) Execute(ctx context.Context, userID string, input CreateCampaignInput) (*CreateCampaignOutput, error) {
	validationErrors := ValidateCreateCampaignInput(input)
	if len(validationErrors) > 0 {
		errMsg := "validation failed: "
		for _, e := range validationErrors {
			errMsg += e.Field + " (" + e.Message + "), "
		}
		return nil, NewDomainError("VALIDATION_ERROR", errMsg)
	}

	campaign, err := entity.NewCampaign(userID, input.Name, input.Offer, input.CalendarLink, input.Goal)
	if err != nil {
		return nil, NewDomainError("VALIDATION_ERROR", err.Error())
	}

	if err := uc.Repo.Create(ctx, campaign); err != nil {
		return nil, &TechnicalError{Code: "DATABASE_ERROR", Message: err.Error()}
	}

	return &CreateCampaignOutput{
		ID:     campaign.ID,
		Name:   campaign.Name,
		Status: campaign.Status,
	}, nil
}
