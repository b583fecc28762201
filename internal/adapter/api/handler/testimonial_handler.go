package handler

import (
	"portfolia/internal/content"
	"portfolia/internal/usecase"
	"portfolia/pkg/response"

	"github.com/labstack/echo/v4"
)

type TestimonialHandler struct {
	testimonialUseCase *usecase.TestimonialUseCase
	store              *content.Store
}

func NewTestimonialHandler(testimonialUseCase *usecase.TestimonialUseCase, store *content.Store) *TestimonialHandler {
	return &TestimonialHandler{
		testimonialUseCase: testimonialUseCase,
		store:              store,
	}
}

type submitTestimonialRequest struct {
	Name    string `json:"name" validate:"required"`
	Role    string `json:"role" validate:"required"`
	Message string `json:"message" validate:"required"`
	Rating  int    `json:"rating" validate:"required,min=1,max=5"`
}

type updateTestimonialRequest struct {
	Name     string `json:"name" validate:"required"`
	Role     string `json:"role" validate:"required"`
	Message  string `json:"message" validate:"required"`
	Rating   int    `json:"rating" validate:"required,min=1,max=5"`
	Approved bool   `json:"approved"`
}

type approvalRequest struct {
	Approved bool `json:"approved"`
}

// ListApproved serves the public wall: approved entries only.
func (h *TestimonialHandler) ListApproved(c echo.Context) error {
	return response.Success(c, map[string]interface{}{
		"items":   h.store.ApprovedTestimonials.Value(),
		"loading": h.store.ApprovedTestimonials.Loading(),
	})
}

// ListAll serves the admin review queue, pending entries included.
func (h *TestimonialHandler) ListAll(c echo.Context) error {
	return response.Success(c, map[string]interface{}{
		"items":   h.store.AllTestimonials.Value(),
		"loading": h.store.AllTestimonials.Loading(),
	})
}

// Submit is the public submission path; new entries are never visible
// until approved.
func (h *TestimonialHandler) Submit(c echo.Context) error {
	var req submitTestimonialRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}
	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	testimonial, err := h.testimonialUseCase.Submit(c.Request().Context(), usecase.TestimonialInput{
		Name:    req.Name,
		Role:    req.Role,
		Message: req.Message,
		Rating:  req.Rating,
	})
	if err != nil {
		return response.Error(c, err)
	}

	return response.Created(c, testimonial)
}

func (h *TestimonialHandler) UpdateTestimonial(c echo.Context) error {
	var req updateTestimonialRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}
	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	testimonial, err := h.testimonialUseCase.Save(c.Request().Context(), c.Param("id"), usecase.TestimonialInput{
		Name:    req.Name,
		Role:    req.Role,
		Message: req.Message,
		Rating:  req.Rating,
	}, req.Approved)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, testimonial)
}

func (h *TestimonialHandler) SetApproval(c echo.Context) error {
	var req approvalRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}

	if err := h.testimonialUseCase.SetApproved(c.Request().Context(), c.Param("id"), req.Approved); err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, map[string]interface{}{
		"id":       c.Param("id"),
		"approved": req.Approved,
	})
}

func (h *TestimonialHandler) DeleteTestimonial(c echo.Context) error {
	if err := h.testimonialUseCase.Delete(c.Request().Context(), c.Param("id")); err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, map[string]interface{}{
		"message": "Testimonial deleted successfully",
	})
}

func (h *TestimonialHandler) BulkDeleteTestimonials(c echo.Context) error {
	var req bulkDeleteRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}
	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	outcomes := h.testimonialUseCase.BulkDelete(c.Request().Context(), req.IDs)

	return response.Success(c, map[string]interface{}{
		"results": outcomes,
	})
}
