package usecase

import (
	"context"

	"portfolia/internal/domain/entity"
	"portfolia/internal/domain/repository"
)

type ProfileUseCase struct {
	profileRepo repository.ProfileRepository
}

func NewProfileUseCase(profileRepo repository.ProfileRepository) *ProfileUseCase {
	return &ProfileUseCase{
		profileRepo: profileRepo,
	}
}

type ProfileInput struct {
	Name     string
	Tagline  string
	Summary  string
	Location string
	Email    string
	Phone    string
	Resume   string
	Social   entity.SocialLinks
}

func (uc *ProfileUseCase) Save(ctx context.Context, input ProfileInput) (*entity.Profile, error) {
	profile := &entity.Profile{
		Name:     input.Name,
		Tagline:  input.Tagline,
		Summary:  input.Summary,
		Location: input.Location,
		Email:    input.Email,
		Phone:    input.Phone,
		Resume:   input.Resume,
		Social:   input.Social,
	}

	if err := uc.profileRepo.Save(ctx, profile); err != nil {
		return nil, err
	}

	return profile, nil
}
