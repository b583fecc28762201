// Package seed holds compile-time fallback content. Every surface renders
// from this data until (or in absence of) a live Firestore snapshot, and the
// admin can import it as a starting point for real documents.
package seed

import (
	"strings"

	"portfolia/internal/domain/entity"
)

// IDPrefix marks seed identifiers. Firestore never assigns ids with this
// prefix, so seed entities can never be mistaken for stored documents; a
// save of a seed-id entity must become a create.
const IDPrefix = "seed-"

func IsSeedID(id string) bool {
	return strings.HasPrefix(id, IDPrefix)
}

func Projects() []*entity.Project {
	return []*entity.Project{
		{
			ID:          IDPrefix + "project-1",
			Title:       "Pasar Kode",
			Description: "A marketplace backend for digital goods with escrow-style checkout, realtime chat, and a Firestore data layer.",
			Tags:        []string{"Go", "Echo", "Firestore", "WebSocket"},
			Github:      "https://github.com/rakapradana/pasar-kode",
			Live:        "https://pasarkode.dev",
			AIHint:      "marketplace dashboard screenshot",
			Order:       1,
		},
		{
			ID:          IDPrefix + "project-2",
			Title:       "Lintas Rute",
			Description: "Commute planner for Jakarta's transit network. GTFS ingestion, route graph search, and a lightweight PWA frontend.",
			Tags:        []string{"Go", "PostgreSQL", "GTFS", "PWA"},
			Github:      "https://github.com/rakapradana/lintas-rute",
			Live:        "https://lintasrute.id",
			AIHint:      "transit map with highlighted route",
			Order:       2,
		},
		{
			ID:          IDPrefix + "project-3",
			Title:       "Catatan API",
			Description: "Markdown note service with full-text search, file attachments, and server-sent live updates.",
			Tags:        []string{"Go", "SQLite", "FTS5", "SSE"},
			Github:      "https://github.com/rakapradana/catatan-api",
			Live:        "",
			AIHint:      "terminal style notes interface",
			Order:       3,
		},
	}
}

func SkillGroups() []*entity.SkillGroup {
	return []*entity.SkillGroup{
		{
			ID:     IDPrefix + "skills-1",
			Title:  "Backend",
			Icon:   "server",
			Skills: []string{"Go", "Node.js", "PostgreSQL", "Firestore", "Redis"},
		},
		{
			ID:     IDPrefix + "skills-2",
			Title:  "Frontend",
			Icon:   "layout",
			Skills: []string{"TypeScript", "React", "Next.js", "Tailwind CSS"},
		},
		{
			ID:     IDPrefix + "skills-3",
			Title:  "Infrastructure",
			Icon:   "cloud",
			Skills: []string{"Google Cloud", "Docker", "GitHub Actions", "Terraform"},
		},
	}
}

func Experiences() []*entity.Experience {
	return []*entity.Experience{
		{
			ID:          IDPrefix + "exp-1",
			Company:     "Nusantara Digital",
			Role:        "Senior Backend Engineer",
			Start:       "Mar 2022",
			End:         "Present",
			Description: "Own the payments and marketplace services. Led the migration from a PHP monolith to Go services backed by Firestore and Pub/Sub.",
			Order:       3,
		},
		{
			ID:          IDPrefix + "exp-2",
			Company:     "Kode Studio",
			Role:        "Backend Engineer",
			Start:       "Jun 2019",
			End:         "Feb 2022",
			Description: "Built client APIs for logistics and e-commerce customers; introduced CI pipelines and integration test tooling.",
			Order:       2,
		},
		{
			ID:          IDPrefix + "exp-3",
			Company:     "Freelance",
			Role:        "Full-stack Developer",
			Start:       "2017",
			End:         "May 2019",
			Description: "Delivered web applications for small businesses across Jakarta and Bandung.",
			Order:       1,
		},
	}
}

func Educations() []*entity.Education {
	return []*entity.Education{
		{
			ID:          IDPrefix + "edu-1",
			School:      "Institut Teknologi Bandung",
			Degree:      "B.Sc. Computer Science",
			Year:        "2013 - 2017",
			Description: "Thesis on distributed consensus protocols.",
			Order:       1,
		},
	}
}

func Certifications() []*entity.Certification {
	return []*entity.Certification{
		{
			ID:     IDPrefix + "cert-1",
			Name:   "Professional Cloud Developer",
			Issuer: "Google Cloud",
			Date:   "2023",
			Link:   "https://cloud.google.com/learn/certification/cloud-developer",
		},
		{
			ID:     IDPrefix + "cert-2",
			Name:   "Certified Kubernetes Application Developer",
			Issuer: "CNCF",
			Date:   "2021",
			Link:   "https://www.cncf.io/training/certification/ckad/",
		},
	}
}

func Profile() *entity.Profile {
	return &entity.Profile{
		ID:       IDPrefix + "profile",
		Name:     "Raka Pradana",
		Tagline:  "Backend engineer who ships reliable systems in Go",
		Summary:  "Eight years building APIs, data pipelines, and realtime services. I care about boring reliability, observable systems, and documentation people actually read.",
		Location: "Jakarta, Indonesia",
		Email:    "raka@rakapradana.dev",
		Phone:    "+62 812 0000 0000",
		Social: entity.SocialLinks{
			Github:   "https://github.com/rakapradana",
			Linkedin: "https://linkedin.com/in/rakapradana",
			Website:  "https://rakapradana.dev",
			Email:    "raka@rakapradana.dev",
		},
	}
}
