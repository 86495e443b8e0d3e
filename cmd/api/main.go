package main

import (
	"context"
	"log"
	"os"

	"cloud.google.com/go/firestore"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"google.golang.org/api/option"

	fbapp "firebase.google.com/go/v4"

	"toromarket/internal/adapter/api"
	"toromarket/internal/adapter/api/handler"
	apimiddleware "toromarket/internal/adapter/api/middleware"
	"toromarket/internal/adapter/api/router"
	"toromarket/internal/adapter/repository"
	"toromarket/internal/domain/service"
	"toromarket/internal/infrastructure/channel"
	"toromarket/internal/infrastructure/firebase"
	"toromarket/internal/infrastructure/storage"
	"toromarket/internal/usecase"
	"toromarket/pkg/config"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	ctx := context.Background()

	var opt option.ClientOption
	credentialsPath := ""

	if serviceAccountJSON := os.Getenv("FIREBASE_SERVICE_ACCOUNT_JSON"); serviceAccountJSON != "" {
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

	fbAuth, err := firebaseApp.Auth(ctx)
	if err != nil {
		log.Fatalf("Failed to initialize Firebase Auth: %v", err)
	}

	firestoreClient, err := firestore.NewClient(ctx, cfg.FirebaseProject, opt)
	if err != nil {
		log.Fatalf("Failed to create Firestore client: %v", err)
	}
	defer firestoreClient.Close()

	storageClient, err := storage.NewCloudStorageClient(ctx, cfg.StorageBucket, credentialsPath)
	if err != nil {
		log.Fatalf("Failed to initialize Cloud Storage: %v", err)
	}
	defer storageClient.Close()

	userRepo := repository.NewFirestoreUserRepository(firestoreClient)
	listingRepo := repository.NewFirestoreListingRepository(firestoreClient)
	favoriteRepo := repository.NewFirestoreFavoriteRepository(firestoreClient)
	categoryRepo := repository.NewFirestoreCategoryRepository(firestoreClient)
	tagRepo := repository.NewFirestoreTagRepository(firestoreClient)
	paymentMethodRepo := repository.NewFirestorePaymentMethodRepository(firestoreClient)
	offeringRepo := repository.NewFirestoreOfferingRepository(firestoreClient)
	messageRepo := repository.NewFirestoreMessageRepository(firestoreClient)
	notificationRepo := repository.NewFirestoreNotificationRepository(firestoreClient)
	orderRepo := repository.NewFirestoreOrderRepository(firestoreClient)
	eventRepo := repository.NewFirestoreEventRepository(firestoreClient)
	reminderRepo := repository.NewFirestoreReminderRepository(firestoreClient)
	resourceRepo := repository.NewFirestoreResourceRepository(firestoreClient)

	authClient := firebase.NewAuthClient(fbAuth)

	hub := channel.NewHub()
	var broadcaster channel.Broadcaster = hub
	if cfg.ChannelBackend == "redis" {
		redisOpts, err := redis.ParseURL(cfg.RedisURL)
		if err != nil {
			log.Fatalf("Invalid REDIS_URL: %v", err)
		}
		redisBroadcaster := channel.NewRedisBroadcaster(redis.NewClient(redisOpts), hub)
		redisBroadcaster.Start(ctx)
		broadcaster = redisBroadcaster
	}

	paymentService := service.NewStripePaymentService(cfg.StripeSecretKey, cfg.FrontendBaseURL)

	var emailService service.EmailService
	if cfg.ResendAPIKey != "" {
		emailService = service.NewResendEmailService(cfg.ResendAPIKey, cfg.FromEmail)
	}

	authUseCase := usecase.NewAuthUseCase(userRepo, authClient)
	userUseCase := usecase.NewUserUseCase(userRepo)
	listingUseCase := usecase.NewListingUseCase(listingRepo, categoryRepo)
	catalogUseCase := usecase.NewCatalogUseCase(categoryRepo, tagRepo, paymentMethodRepo, offeringRepo, listingRepo)
	favoriteUseCase := usecase.NewFavoriteUseCase(favoriteRepo, listingRepo)
	notificationUseCase := usecase.NewNotificationUseCase(notificationRepo)
	chatUseCase := usecase.NewChatUseCase(messageRepo, userRepo, listingRepo, notificationUseCase, broadcaster)
	orderUseCase := usecase.NewOrderUseCase(orderRepo, listingRepo, paymentMethodRepo, offeringRepo, userRepo, notificationUseCase, emailService)
	paymentUseCase := usecase.NewPaymentUseCase(paymentService, listingRepo)
	analyticsUseCase := usecase.NewAnalyticsUseCase(listingRepo, orderRepo, messageRepo, categoryRepo)
	eventUseCase := usecase.NewEventUseCase(eventRepo)
	reminderUseCase := usecase.NewReminderUseCase(reminderRepo)
	resourceUseCase := usecase.NewResourceUseCase(resourceRepo, storageClient)

	handler.Setup(
		authUseCase,
		userUseCase,
		listingUseCase,
		catalogUseCase,
		favoriteUseCase,
		chatUseCase,
		notificationUseCase,
		orderUseCase,
		paymentUseCase,
		analyticsUseCase,
		eventUseCase,
		reminderUseCase,
		resourceUseCase,
	)
	handler.SetupDevTokenHandler(authClient, userRepo)

	e := echo.New()

	e.Use(echomiddleware.Logger())
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.CORS())

	e.Validator = api.NewValidator()

	authMiddleware := apimiddleware.NewAuthMiddleware(authUseCase)
	adminMiddleware := apimiddleware.NewAdminMiddleware()

	wsHandler := handler.NewWebSocketHandler(authUseCase, chatUseCase, broadcaster)

	router.Setup(e, authMiddleware, adminMiddleware)
	router.SetupWebSocketRouter(e, wsHandler)
	router.SetupDevRouter(e, cfg.Environment)

	log.Printf("Starting server on port %s...", cfg.ServerPort)
	e.Logger.Fatal(e.Start(":" + cfg.ServerPort))
}
