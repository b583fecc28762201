package content

import (
	"context"

	"portfolia/internal/domain/entity"
	"portfolia/internal/domain/repository"
	"portfolia/internal/seed"
)

// Store aggregates one live feed per entity type. Public surfaces read the
// filtered testimonial feed; the admin review queue reads the unfiltered one.
type Store struct {
	Projects       *Feed[[]*entity.Project]
	SkillGroups    *Feed[[]*entity.SkillGroup]
	Experiences    *Feed[[]*entity.Experience]
	Educations     *Feed[[]*entity.Education]
	Certifications *Feed[[]*entity.Certification]
	Profile        *Feed[*entity.Profile]

	ApprovedTestimonials *Feed[[]*entity.Testimonial]
	AllTestimonials      *Feed[[]*entity.Testimonial]
}

type StoreRepositories struct {
	Projects       repository.ProjectRepository
	SkillGroups    repository.SkillGroupRepository
	Experiences    repository.ExperienceRepository
	Educations     repository.EducationRepository
	Certifications repository.CertificationRepository
	Profile        repository.ProfileRepository
	Testimonials   repository.TestimonialRepository
}

func NewStore(repos StoreRepositories, pub Publisher) *Store {
	return &Store{
		Projects:       NewFeed("projects", seed.Projects(), repos.Projects.Watch, pub),
		SkillGroups:    NewFeed("skill_groups", seed.SkillGroups(), repos.SkillGroups.Watch, pub),
		Experiences:    NewFeed("experiences", seed.Experiences(), repos.Experiences.Watch, pub),
		Educations:     NewFeed("educations", seed.Educations(), repos.Educations.Watch, pub),
		Certifications: NewFeed("certifications", seed.Certifications(), repos.Certifications.Watch, pub),
		Profile:        NewFeed("profile", seed.Profile(), repos.Profile.Watch, pub),

		// No testimonial seeds: an empty public wall is honest, fabricated
		// praise is not.
		ApprovedTestimonials: NewFeed("testimonials", []*entity.Testimonial{}, repos.Testimonials.WatchApproved, pub),
		// The unfiltered feed stays off the public hub so pending entries
		// never leak outside the admin surface.
		AllTestimonials: NewFeed("testimonials_all", []*entity.Testimonial{}, repos.Testimonials.Watch, nil),
	}
}

func (s *Store) Start(ctx context.Context) {
	s.Projects.Start(ctx)
	s.SkillGroups.Start(ctx)
	s.Experiences.Start(ctx)
	s.Educations.Start(ctx)
	s.Certifications.Start(ctx)
	s.Profile.Start(ctx)
	s.ApprovedTestimonials.Start(ctx)
	s.AllTestimonials.Start(ctx)
}

func (s *Store) Stop() {
	s.Projects.Stop()
	s.SkillGroups.Stop()
	s.Experiences.Stop()
	s.Educations.Stop()
	s.Certifications.Stop()
	s.Profile.Stop()
	s.ApprovedTestimonials.Stop()
	s.AllTestimonials.Stop()
}
