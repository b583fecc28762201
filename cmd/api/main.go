package main

import (
	"context"
	"log"
	"os"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"google.golang.org/api/option"

	fbapp "firebase.google.com/go/v4"

	"portfolia/internal/adapter/api"
	"portfolia/internal/adapter/api/handler"
	apimiddleware "portfolia/internal/adapter/api/middleware"
	"portfolia/internal/adapter/api/router"
	"portfolia/internal/adapter/repository"
	"portfolia/internal/content"
	"portfolia/internal/infrastructure/github"
	"portfolia/internal/infrastructure/mail"
	"portfolia/internal/infrastructure/storage"
	"portfolia/internal/infrastructure/websocket"
	"portfolia/internal/showcase"
	"portfolia/internal/usecase"
	"portfolia/pkg/config"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	ctx := context.Background()

	var opt option.ClientOption
	credentialsPath := ""

	// Service account JSON in the environment wins; a file path is the
	// local development fallback.
	serviceAccountJSON := os.Getenv("FIREBASE_SERVICE_ACCOUNT_JSON")
	if serviceAccountJSON != "" {
		opt = option.WithCredentialsJSON([]byte(serviceAccountJSON))
	} else {
		credentialsPath = os.Getenv("FIREBASE_SERVICE_ACCOUNT_PATH")
		if credentialsPath == "" {
			credentialsPath = "./service-account.json"
		}

		if _, err := os.Stat(credentialsPath); os.IsNotExist(err) {
			log.Fatalf("Service account file does not exist: %s", credentialsPath)
		}

		opt = option.WithCredentialsFile(credentialsPath)
	}

	firebaseApp, err := fbapp.NewApp(ctx, &fbapp.Config{ProjectID: cfg.FirebaseProject}, opt)
	if err != nil {
		log.Fatalf("Failed to initialize Firebase: %v", err)
	}

	firestoreClient, err := firebaseApp.Firestore(ctx)
	if err != nil {
		log.Fatalf("Failed to create Firestore client: %v", err)
	}
	defer firestoreClient.Close()

	storageClient, err := storage.NewCloudStorageClient(ctx, cfg.StorageBucket, cfg.MaxUploadBytes, credentialsPath)
	if err != nil {
		log.Fatalf("Failed to initialize Cloud Storage: %v", err)
	}
	defer storageClient.Close()

	projectRepo := repository.NewFirestoreProjectRepository(firestoreClient)
	skillGroupRepo := repository.NewFirestoreSkillGroupRepository(firestoreClient)
	experienceRepo := repository.NewFirestoreExperienceRepository(firestoreClient)
	educationRepo := repository.NewFirestoreEducationRepository(firestoreClient)
	certificationRepo := repository.NewFirestoreCertificationRepository(firestoreClient)
	testimonialRepo := repository.NewFirestoreTestimonialRepository(firestoreClient)
	profileRepo := repository.NewFirestoreProfileRepository(firestoreClient)
	contactRepo := repository.NewFirestoreContactMessageRepository(firestoreClient)
	fileMetadataRepo := repository.NewFirestoreFileMetadataRepository(firestoreClient)

	wsManager := websocket.NewManager()
	wsManager.Start(ctx)

	store := content.NewStore(content.StoreRepositories{
		Projects:       projectRepo,
		SkillGroups:    skillGroupRepo,
		Experiences:    experienceRepo,
		Educations:     educationRepo,
		Certifications: certificationRepo,
		Profile:        profileRepo,
		Testimonials:   testimonialRepo,
	}, wsManager)
	store.Start(ctx)
	defer store.Stop()

	githubClient := github.NewClient(cfg.GithubUsername, cfg.GithubToken)
	mailer := mail.NewSMTPMailer(cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPUser, cfg.SMTPPassword, cfg.ContactRecipient)

	authUseCase := usecase.NewAuthUseCase(cfg.AdminAccessCode, time.Duration(cfg.SessionTTLMinutes)*time.Minute)
	projectUseCase := usecase.NewProjectUseCase(projectRepo)
	skillUseCase := usecase.NewSkillUseCase(skillGroupRepo)
	experienceUseCase := usecase.NewExperienceUseCase(experienceRepo)
	educationUseCase := usecase.NewEducationUseCase(educationRepo)
	certificationUseCase := usecase.NewCertificationUseCase(certificationRepo)
	testimonialUseCase := usecase.NewTestimonialUseCase(testimonialRepo)
	profileUseCase := usecase.NewProfileUseCase(profileRepo)
	contactUseCase := usecase.NewContactUseCase(contactRepo, mailer)
	githubUseCase := usecase.NewGithubUseCase(githubClient, showcase.Config{
		Exclusions:         cfg.GithubExclusions,
		ExcludeArchived:    cfg.GithubExcludeArchived,
		RequireDescription: cfg.GithubRequireDescription,
		RequireTopics:      cfg.GithubRequireTopics,
		MinSizeKB:          int(cfg.GithubMinSizeKB),
		MinStars:           int(cfg.GithubMinStars),
		MaxAgeDays:         int(cfg.GithubMaxAgeDays),
	})
	seedUseCase := usecase.NewSeedUseCase(projectRepo, skillGroupRepo, experienceRepo, educationRepo, certificationRepo, profileRepo)

	handler.Setup(
		store,
		authUseCase,
		projectUseCase,
		skillUseCase,
		experienceUseCase,
		educationUseCase,
		certificationUseCase,
		testimonialUseCase,
		profileUseCase,
		contactUseCase,
		githubUseCase,
		seedUseCase,
	)
	handler.SetupFileHandler(storageClient, fileMetadataRepo, cfg.MaxUploadBytes)
	handler.SetupWebSocketHandler(wsManager)
	handler.SetupHealthHandler()

	e := echo.New()

	e.Use(middleware.Logger())
	e.Use(middleware.Recover())
	e.Use(middleware.CORS())

	e.Validator = api.NewValidator()

	sessionMiddleware := apimiddleware.NewSessionMiddleware(authUseCase)
	uploadMiddleware := apimiddleware.NewUploadMiddleware(cfg.UploadSecret)
	rateLimitMiddleware := apimiddleware.NewRateLimitMiddleware()
	rateLimitMiddleware.StartCleanup(ctx)

	router.Setup(e, sessionMiddleware, uploadMiddleware, rateLimitMiddleware)

	log.Printf("Starting server on port %s...", cfg.ServerPort)
	if err := e.Start(":" + cfg.ServerPort); err != nil {
		log.Fatalf("Server stopped: %v", err)
	}
}
