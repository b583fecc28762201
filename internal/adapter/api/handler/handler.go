package handler

import (
	"portfolia/internal/content"
	"portfolia/internal/usecase"
)

var (
	authHandler          *AuthHandler
	projectHandler       *ProjectHandler
	skillHandler         *SkillHandler
	experienceHandler    *ExperienceHandler
	educationHandler     *EducationHandler
	certificationHandler *CertificationHandler
	testimonialHandler   *TestimonialHandler
	profileHandler       *ProfileHandler
	contactHandler       *ContactHandler
	githubHandler        *GithubHandler
	seedHandler          *SeedHandler
)

func Setup(
	store *content.Store,
	authUseCase *usecase.AuthUseCase,
	projectUseCase *usecase.ProjectUseCase,
	skillUseCase *usecase.SkillUseCase,
	experienceUseCase *usecase.ExperienceUseCase,
	educationUseCase *usecase.EducationUseCase,
	certificationUseCase *usecase.CertificationUseCase,
	testimonialUseCase *usecase.TestimonialUseCase,
	profileUseCase *usecase.ProfileUseCase,
	contactUseCase *usecase.ContactUseCase,
	githubUseCase *usecase.GithubUseCase,
	seedUseCase *usecase.SeedUseCase,
) {
	authHandler = NewAuthHandler(authUseCase)
	projectHandler = NewProjectHandler(projectUseCase, store)
	skillHandler = NewSkillHandler(skillUseCase, store)
	experienceHandler = NewExperienceHandler(experienceUseCase, store)
	educationHandler = NewEducationHandler(educationUseCase, store)
	certificationHandler = NewCertificationHandler(certificationUseCase, store)
	testimonialHandler = NewTestimonialHandler(testimonialUseCase, store)
	profileHandler = NewProfileHandler(profileUseCase, store)
	contactHandler = NewContactHandler(contactUseCase)
	githubHandler = NewGithubHandler(githubUseCase)
	seedHandler = NewSeedHandler(seedUseCase)
}

func GetAuthHandler() *AuthHandler                   { return authHandler }
func GetProjectHandler() *ProjectHandler             { return projectHandler }
func GetSkillHandler() *SkillHandler                 { return skillHandler }
func GetExperienceHandler() *ExperienceHandler       { return experienceHandler }
func GetEducationHandler() *EducationHandler         { return educationHandler }
func GetCertificationHandler() *CertificationHandler { return certificationHandler }
func GetTestimonialHandler() *TestimonialHandler     { return testimonialHandler }
func GetProfileHandler() *ProfileHandler             { return profileHandler }
func GetContactHandler() *ContactHandler             { return contactHandler }
func GetGithubHandler() *GithubHandler               { return githubHandler }
func GetSeedHandler() *SeedHandler                   { return seedHandler }
