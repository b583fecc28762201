package handler

import (
	"portfolia/internal/content"
	"portfolia/internal/domain/entity"
	"portfolia/internal/usecase"
	"portfolia/pkg/response"

	"github.com/labstack/echo/v4"
)

type ProfileHandler struct {
	profileUseCase *usecase.ProfileUseCase
	store          *content.Store
}

func NewProfileHandler(profileUseCase *usecase.ProfileUseCase, store *content.Store) *ProfileHandler {
	return &ProfileHandler{
		profileUseCase: profileUseCase,
		store:          store,
	}
}

type socialLinksRequest struct {
	Github   string `json:"github" validate:"omitempty,url"`
	Linkedin string `json:"linkedin" validate:"omitempty,url"`
	Website  string `json:"website" validate:"omitempty,url"`
	Email    string `json:"email" validate:"omitempty,email"`
}

type profileRequest struct {
	Name     string             `json:"name" validate:"required"`
	Tagline  string             `json:"tagline" validate:"required"`
	Summary  string             `json:"summary" validate:"required"`
	Location string             `json:"location"`
	Email    string             `json:"email" validate:"required,email"`
	Phone    string             `json:"phone"`
	Resume   string             `json:"resume" validate:"omitempty,url"`
	Social   socialLinksRequest `json:"social"`
}

func (h *ProfileHandler) GetProfile(c echo.Context) error {
	return response.Success(c, map[string]interface{}{
		"profile": h.store.Profile.Value(),
		"loading": h.store.Profile.Loading(),
	})
}

func (h *ProfileHandler) UpdateProfile(c echo.Context) error {
	var req profileRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}
	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	profile, err := h.profileUseCase.Save(c.Request().Context(), usecase.ProfileInput{
		Name:     req.Name,
		Tagline:  req.Tagline,
		Summary:  req.Summary,
		Location: req.Location,
		Email:    req.Email,
		Phone:    req.Phone,
		Resume:   req.Resume,
		Social: entity.SocialLinks{
			Github:   req.Social.Github,
			Linkedin: req.Social.Linkedin,
			Website:  req.Social.Website,
			Email:    req.Social.Email,
		},
	})
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, profile)
}
