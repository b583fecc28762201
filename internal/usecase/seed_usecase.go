package usecase

import (
	"context"
	"fmt"

	"portfolia/internal/domain/repository"
	"portfolia/internal/seed"
	"portfolia/pkg/logger"
)

// SeedUseCase imports the static seed content into the live store as real
// documents. Seed ids are placeholders, so every import creates fresh
// documents; running it twice duplicates content by design.
type SeedUseCase struct {
	projectRepo       repository.ProjectRepository
	skillGroupRepo    repository.SkillGroupRepository
	experienceRepo    repository.ExperienceRepository
	educationRepo     repository.EducationRepository
	certificationRepo repository.CertificationRepository
	profileRepo       repository.ProfileRepository
}

func NewSeedUseCase(
	projectRepo repository.ProjectRepository,
	skillGroupRepo repository.SkillGroupRepository,
	experienceRepo repository.ExperienceRepository,
	educationRepo repository.EducationRepository,
	certificationRepo repository.CertificationRepository,
	profileRepo repository.ProfileRepository,
) *SeedUseCase {
	return &SeedUseCase{
		projectRepo:       projectRepo,
		skillGroupRepo:    skillGroupRepo,
		experienceRepo:    experienceRepo,
		educationRepo:     educationRepo,
		certificationRepo: certificationRepo,
		profileRepo:       profileRepo,
	}
}

type SeedResult struct {
	Imported map[string]int `json:"imported"`
	Errors   []string       `json:"errors,omitempty"`
}

// Import writes every seed entity through the normal save path. Failures
// are collected, not fatal: a partially seeded site is still better than
// an empty one.
func (uc *SeedUseCase) Import(ctx context.Context) *SeedResult {
	result := &SeedResult{Imported: make(map[string]int)}

	for _, project := range seed.Projects() {
		if err := uc.projectRepo.Save(ctx, project); err != nil {
			result.Errors = append(result.Errors, fmt.Sprintf("project %q: %v", project.Title, err))
			continue
		}
		result.Imported["projects"]++
	}

	for _, group := range seed.SkillGroups() {
		if err := uc.skillGroupRepo.Save(ctx, group); err != nil {
			result.Errors = append(result.Errors, fmt.Sprintf("skill group %q: %v", group.Title, err))
			continue
		}
		result.Imported["skill_groups"]++
	}

	for _, experience := range seed.Experiences() {
		if err := uc.experienceRepo.Save(ctx, experience); err != nil {
			result.Errors = append(result.Errors, fmt.Sprintf("experience %q: %v", experience.Company, err))
			continue
		}
		result.Imported["experiences"]++
	}

	for _, education := range seed.Educations() {
		if err := uc.educationRepo.Save(ctx, education); err != nil {
			result.Errors = append(result.Errors, fmt.Sprintf("education %q: %v", education.School, err))
			continue
		}
		result.Imported["educations"]++
	}

	for _, certification := range seed.Certifications() {
		if err := uc.certificationRepo.Save(ctx, certification); err != nil {
			result.Errors = append(result.Errors, fmt.Sprintf("certification %q: %v", certification.Name, err))
			continue
		}
		result.Imported["certifications"]++
	}

	if err := uc.profileRepo.Save(ctx, seed.Profile()); err != nil {
		result.Errors = append(result.Errors, fmt.Sprintf("profile: %v", err))
	} else {
		result.Imported["profile"] = 1
	}

	if len(result.Errors) > 0 {
		logger.Warn("Seed import finished with %d errors", len(result.Errors))
	}

	return result
}
