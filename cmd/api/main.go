package main

import (
	"context"
	"log"
	"net/http"
	"os"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/xavierca1/ligue-outreach/internal/infra/database"
	"github.com/xavierca1/ligue-outreach/internal/infra/http/handlers"
	"github.com/xavierca1/ligue-outreach/internal/infra/http/middleware"
	"github.com/xavierca1/ligue-outreach/internal/infra/integration/automation"
	"github.com/xavierca1/ligue-outreach/internal/infra/integration/identity"
	"github.com/xavierca1/ligue-outreach/internal/infra/integration/whatsapp"
	"github.com/xavierca1/ligue-outreach/internal/infra/mail"
	"github.com/xavierca1/ligue-outreach/internal/infra/queue"
	"github.com/xavierca1/ligue-outreach/internal/infra/worker"
	"github.com/xavierca1/ligue-outreach/internal/usecase"
)

func main() {
	godotenv.Load()

	db, err := database.NewDBConnection(os.Getenv("DATABASE_URL"))
	if err != nil {
		log.Fatal(err)
	}
	defer db.Close()

	rabbitMQ, err := queue.NewRabbitMQ(
		os.Getenv("RABBITMQ_USER"), os.Getenv("RABBITMQ_PASS"),
		os.Getenv("RABBITMQ_HOST"), os.Getenv("RABBITMQ_PORT"),
	)
	if err != nil {
		log.Fatal(err)
	}
	defer rabbitMQ.Conn.Close()
	defer rabbitMQ.Ch.Close()

	// 1. Repositories
	campaignRepo := database.NewCampaignRepository(db)
	sequenceRepo := database.NewSequenceRepository(db)
	leadRepo := database.NewLeadRepository(db)
	progressRepo := database.NewProgressRepository(db)
	bookingRepo := database.NewBookingRepository(db)
	conversationRepo := database.NewConversationRepository(db)
	trainingRepo := database.NewTrainingRepository(db)
	membershipRepo := database.NewMembershipRepository(db)
	historyRepo := database.NewImportHistoryRepository(db)
	settingsRepo := database.NewSettingsRepository(db)

	// 2. Integrations and adapters
	identityClient := identity.NewClient(os.Getenv("IDENTITY_URL"), os.Getenv("IDENTITY_API_KEY"))
	automationClient := automation.NewClient(
		os.Getenv("AUTOMATION_START_URL"),
		os.Getenv("AUTOMATION_ENGINE_URL"),
		os.Getenv("AUTOMATION_TOKEN"),
	)
	whatsappClient := whatsapp.NewClient(os.Getenv("WHATSAPP_ACCESS_TOKEN"), os.Getenv("WHATSAPP_PHONE_ID"))
	mailSender := mail.NewEmailSender(
		os.Getenv("MAIL_HOST"), 587, os.Getenv("MAIL_USER"), os.Getenv("MAIL_PASS"), os.Getenv("MAIL_FROM"),
	)
	producer := queue.NewProducer(rabbitMQ.Conn, rabbitMQ.Ch)

	// 3. Background workers
	startWorker := queue.NewWorker(rabbitMQ.Ch, automationClient)
	go startWorker.Start(queue.QueueName)

	bookingSweep := worker.NewBookingExpirationWorker(db)
	go bookingSweep.Start(context.Background())

	// 4. Use cases
	createCampaignUC := usecase.NewCreateCampaignUseCase(campaignRepo)
	startCampaignUC := usecase.NewStartCampaignUseCase(campaignRepo, leadRepo, automationClient, producer)
	triggerEngineUC := usecase.NewTriggerEngineUseCase(campaignRepo, trainingRepo, automationClient)
	importLeadsUC := usecase.NewImportLeadsUseCase(campaignRepo, leadRepo, progressRepo, historyRepo)
	testStepUC := usecase.NewSendTestStepUseCase(campaignRepo, sequenceRepo, mailSender, whatsappClient)
	channelEventUC := usecase.NewRecordChannelEventUseCase(leadRepo, progressRepo, sequenceRepo)

	// 5. Handlers
	campaignHandler := handlers.NewCampaignHandler(createCampaignUC, startCampaignUC, triggerEngineUC, campaignRepo)
	sequenceHandler := handlers.NewSequenceHandler(sequenceRepo, campaignRepo, testStepUC)
	leadHandler := handlers.NewLeadHandler(importLeadsUC, leadRepo, historyRepo)
	bookingHandler := handlers.NewBookingHandler(bookingRepo, campaignRepo)
	conversationHandler := handlers.NewConversationHandler(conversationRepo, leadRepo)
	trainingHandler := handlers.NewTrainingHandler(trainingRepo, campaignRepo)
	settingsHandler := handlers.NewSettingsHandler(settingsRepo)
	membershipHandler := handlers.NewMembershipHandler(membershipRepo)
	healthHandler := handlers.NewHealthHandler(db, rabbitMQ.Conn)
	engineWebhookHandler := handlers.NewEngineWebhookHandler(channelEventUC, os.Getenv("ENGINE_WEBHOOK_TOKEN"))

	auth := middleware.NewAuthMiddleware(identityClient, membershipRepo)

	// 6. Router
	r := chi.NewRouter()
	r.Use(chimiddleware.Logger)
	r.Use(middleware.Metrics)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"http://localhost:5173", "*"},
		AllowedMethods: []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Authorization", "Content-Type"},
	}))

	r.Get("/health", healthHandler.Handle)
	r.Handle("/metrics", promhttp.Handler())
	r.Post("/webhooks/engine/events", engineWebhookHandler.HandleEvent)

	r.Group(func(r chi.Router) {
		r.Use(auth.Handler)

		r.Route("/campaigns", func(r chi.Router) {
			r.Post("/", campaignHandler.HandleCreate)
			r.Get("/", campaignHandler.HandleList)

			r.Route("/{campaignId}", func(r chi.Router) {
				r.Get("/", campaignHandler.HandleGet)
				r.Put("/", campaignHandler.HandleUpdate)
				r.Patch("/status", campaignHandler.HandleUpdateStatus)
				r.Delete("/", campaignHandler.HandleDelete)
				r.Post("/start", campaignHandler.HandleStart)
				r.Post("/engine/trigger", campaignHandler.HandleTriggerEngine)

				r.Get("/sequence", sequenceHandler.HandleGet)
				r.Put("/sequence", sequenceHandler.HandleReplace)
				r.Post("/sequence/test", sequenceHandler.HandleTestSend)

				r.Post("/leads/preview", leadHandler.HandlePreview)
				r.Post("/leads/import", leadHandler.HandleImport)
				r.Get("/leads", leadHandler.HandleList)
				r.Get("/leads/imports", leadHandler.HandleImportHistory)

				r.Post("/bookings", bookingHandler.HandleCreate)
				r.Get("/bookings", bookingHandler.HandleList)

				r.Post("/training", trainingHandler.HandleCreate)
				r.Get("/training", trainingHandler.HandleList)
			})
		})

		r.Delete("/leads/{leadId}", leadHandler.HandleDelete)
		r.Get("/leads/{leadId}/conversation", conversationHandler.HandleList)
		r.Post("/leads/{leadId}/conversation", conversationHandler.HandleAppend)

		r.Patch("/bookings/{bookingId}/status", bookingHandler.HandleUpdateStatus)
		r.Delete("/bookings/{bookingId}", bookingHandler.HandleDelete)

		r.Put("/training/{resourceId}", trainingHandler.HandleUpdate)
		r.Delete("/training/{resourceId}", trainingHandler.HandleDelete)

		r.Get("/settings", settingsHandler.HandleGet)
		r.Put("/settings", settingsHandler.HandleUpdate)

		r.Group(func(r chi.Router) {
			r.Use(middleware.RequireAdmin)
			r.Get("/members", membershipHandler.HandleList)
			r.Put("/members/role", membershipHandler.HandleUpdateRole)
		})
	})

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	log.Printf("🔥 Outreach API listening on :%s", port)
	http.ListenAndServe(":"+port, r)
}
