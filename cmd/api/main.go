package main

import (
	"log"
	"net/http"
	"os"
	"strconv"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/commonmodel/sync-engine/internal/infra/checkpoint"
	"github.com/commonmodel/sync-engine/internal/infra/database"
	"github.com/commonmodel/sync-engine/internal/infra/http/handlers"
	"github.com/commonmodel/sync-engine/internal/infra/http/middleware"
	"github.com/commonmodel/sync-engine/internal/infra/integration"
	"github.com/commonmodel/sync-engine/internal/infra/integration/salesforce"
	"github.com/commonmodel/sync-engine/internal/infra/mail"
	"github.com/commonmodel/sync-engine/internal/infra/queue"
	"github.com/commonmodel/sync-engine/internal/usecase"
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
	watermarkRepo := database.NewWatermarkRepository(db)
	stagingRepo := database.NewStagingRepository(db)
	store := database.NewStore(db)

	// 2. Mapper registry
	registry := integration.NewRegistry()
	salesforce.Register(registry)

	// 3. UseCase
	transformUC := usecase.NewTransformSyncUseCase(watermarkRepo, stagingRepo, store, registry)

	// 4. Alerts (optional, only when SMTP is configured)
	var alerts queue.AlertSender
	if host := os.Getenv("ALERT_SMTP_HOST"); host != "" {
		port, _ := strconv.Atoi(os.Getenv("ALERT_SMTP_PORT"))
		if port == 0 {
			port = 587
		}
		alerts = mail.NewEmailSender(
			host, port,
			os.Getenv("ALERT_SMTP_USER"), os.Getenv("ALERT_SMTP_PASS"),
			os.Getenv("ALERT_FROM"), os.Getenv("ALERT_TO"),
		)
	}

	// 5. Worker (consumes trigger events, runs the transform)
	checkpoints := checkpoint.NewStore()
	producer := queue.NewProducer(rabbitMQ.Conn, rabbitMQ.Ch)
	worker := queue.NewWorker(rabbitMQ.Ch, transformUC, checkpoints, alerts)
	go worker.Start(queue.QueueName)

	// 6. Handlers
	webhookHandler := handlers.NewWebhookHandler(producer)
	healthHandler := handlers.NewHealthHandler(db, rabbitMQ.Conn)

	// 7. Router
	r := chi.NewRouter()
	r.Use(chimiddleware.Logger)
	r.Use(middleware.Metrics)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "OPTIONS"},
	}))

	r.Post("/webhook/supaglue", webhookHandler.Handle)
	r.Get("/healthz", healthHandler.Handle)
	r.Handle("/metrics", promhttp.Handler())

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	log.Printf("🔥 Sync engine listening on :%s", port)
	http.ListenAndServe(":"+port, r)
}
