package main

import (
	"fmt"
	"log"

	"github.com/inflink/inflink-escrow-service/internal/config"
	"github.com/inflink/inflink-escrow-service/internal/delivery/http/handlers"
	publisher "github.com/inflink/inflink-escrow-service/internal/infrastructure/kafka"
	"github.com/inflink/inflink-escrow-service/internal/infrastructure/logger"
	"github.com/inflink/inflink-escrow-service/internal/infrastructure/metrics"
	"github.com/inflink/inflink-escrow-service/internal/infrastructure/migrate"
	"github.com/inflink/inflink-escrow-service/internal/infrastructure/openai"
	"github.com/inflink/inflink-escrow-service/internal/infrastructure/postgres"
	"github.com/inflink/inflink-escrow-service/internal/infrastructure/postgres/repository"
	"github.com/inflink/inflink-escrow-service/internal/usecase"
	escrowusecase "github.com/inflink/inflink-escrow-service/internal/usecase/escrow"
	"github.com/joho/godotenv"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("failed to load .env")
	}
	// Reading config
	cfg := config.MustLoad()
	// Init database
	db := postgres.MustInitDB(cfg)

	if cfg.EscrowDB.MigrationsPath != "" {
		if err := migrate.RunMigrations(db, cfg.EscrowDB.MigrationsPath); err != nil {
			log.Fatalf("failed to run migrations: %v", err)
		}
	}

	// Kafka publisher for contract and escrow events
	brokers := []string{fmt.Sprintf("%s:%s", cfg.KafkaService.Host, cfg.KafkaService.Port)}
	kafkaPublisher := publisher.NewKafkaPublisher(brokers, cfg.KafkaService.ContractTopic, cfg.KafkaService.EscrowTopic)

	// Init metrics
	escrowMetrics := metrics.NewEscrowMetrics()
	// Audit trail of status transitions
	eventLog := logger.NewPGStatusEventLogger(db)

	// Init repositories
	contractRepo := repository.NewDefaultContractRepository(db)
	escrowRepo := repository.NewDefaultEscrowRepository(db)

	// Init chat-completion client
	chatClient := openai.NewChatClient(openai.Config{
		APIKey:      cfg.OpenAIService.APIKey,
		Model:       cfg.OpenAIService.Model,
		Temperature: cfg.OpenAIService.Temperature,
		MaxTokens:   cfg.OpenAIService.MaxTokens,
	})

	// Init usecases
	contractUsecase := usecase.NewDefaultContractUsecase(contractRepo, kafkaPublisher, escrowMetrics, eventLog)
	escrowUC := escrowusecase.NewDefaultEscrowUsecase(escrowRepo, contractRepo, kafkaPublisher, escrowMetrics, eventLog)
	negotiationUsecase := usecase.NewDefaultNegotiationUsecase(chatClient, contractUsecase, escrowMetrics)

	router := handlers.NewRouter(contractUsecase, escrowUC, negotiationUsecase)

	addr := fmt.Sprintf("%s:%s", cfg.HTTPServer.Host, cfg.HTTPServer.Port)
	log.Printf("HTTP server started on %s\n", addr)
	if err := router.Run(addr); err != nil {
		log.Fatalf("failed to serve: %v\n", err)
	}
}
