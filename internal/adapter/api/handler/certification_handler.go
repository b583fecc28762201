package handler

import (
	"portfolia/internal/content"
	"portfolia/internal/usecase"
	"portfolia/pkg/response"

	"github.com/labstack/echo/v4"
)

type CertificationHandler struct {
	certificationUseCase *usecase.CertificationUseCase
	store                *content.Store
}

func NewCertificationHandler(certificationUseCase *usecase.CertificationUseCase, store *content.Store) *CertificationHandler {
	return &CertificationHandler{
		certificationUseCase: certificationUseCase,
		store:                store,
	}
}

type certificationRequest struct {
	Name   string `json:"name" validate:"required"`
	Issuer string `json:"issuer" validate:"required"`
	Date   string `json:"date" validate:"required"`
	Link   string `json:"link" validate:"omitempty,url"`
	Image  string `json:"image" validate:"omitempty,url"`
}

func (h *CertificationHandler) ListCertifications(c echo.Context) error {
	return response.Success(c, map[string]interface{}{
		"items":   h.store.Certifications.Value(),
		"loading": h.store.Certifications.Loading(),
	})
}

func (h *CertificationHandler) CreateCertification(c echo.Context) error {
	return h.save(c, "")
}

func (h *CertificationHandler) UpdateCertification(c echo.Context) error {
	return h.save(c, c.Param("id"))
}

func (h *CertificationHandler) save(c echo.Context, id string) error {
	var req certificationRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}
	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	certification, err := h.certificationUseCase.Save(c.Request().Context(), id, usecase.CertificationInput{
		Name:   req.Name,
		Issuer: req.Issuer,
		Date:   req.Date,
		Link:   req.Link,
		Image:  req.Image,
	})
	if err != nil {
		return response.Error(c, err)
	}

	if id == "" {
		return response.Created(c, certification)
	}
	return response.Success(c, certification)
}

func (h *CertificationHandler) DeleteCertification(c echo.Context) error {
	if err := h.certificationUseCase.Delete(c.Request().Context(), c.Param("id")); err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, map[string]interface{}{
		"message": "Certification deleted successfully",
	})
}

func (h *CertificationHandler) BulkDeleteCertifications(c echo.Context) error {
	var req bulkDeleteRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}
	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	outcomes := h.certificationUseCase.BulkDelete(c.Request().Context(), req.IDs)

	return response.Success(c, map[string]interface{}{
		"results": outcomes,
	})
}
