package usecase

import (
	"context"

	"portfolia/internal/domain/entity"
	"portfolia/internal/domain/repository"
)

type CertificationUseCase struct {
	certificationRepo repository.CertificationRepository
}

func NewCertificationUseCase(certificationRepo repository.CertificationRepository) *CertificationUseCase {
	return &CertificationUseCase{
		certificationRepo: certificationRepo,
	}
}

type CertificationInput struct {
	Name   string
	Issuer string
	Date   string
	Link   string
	Image  string
}

func (uc *CertificationUseCase) Save(ctx context.Context, id string, input CertificationInput) (*entity.Certification, error) {
	certification := &entity.Certification{
		ID:     id,
		Name:   input.Name,
		Issuer: input.Issuer,
		Date:   input.Date,
		Link:   input.Link,
		Image:  input.Image,
	}

	if err := uc.certificationRepo.Save(ctx, certification); err != nil {
		return nil, err
	}

	return certification, nil
}

func (uc *CertificationUseCase) Delete(ctx context.Context, id string) error {
	return uc.certificationRepo.Delete(ctx, id)
}

func (uc *CertificationUseCase) BulkDelete(ctx context.Context, ids []string) []DeleteOutcome {
	return bulkDelete(ctx, ids, uc.certificationRepo.Delete)
}
