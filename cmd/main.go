package main

import (
	"context"
	"net/http"

	_ "github.com/go-sql-driver/mysql"
	"github.com/jmoiron/sqlx"
	"github.com/pressly/goose/v3"
	"github.com/rs/cors"
	authapp "github.com/takatrack/waste-monitoring/application/auth"
	collectionapp "github.com/takatrack/waste-monitoring/application/collection"
	"github.com/takatrack/waste-monitoring/cmd/config"
	_ "github.com/takatrack/waste-monitoring/docs"
	"github.com/takatrack/waste-monitoring/migrations"
	collectionRepo "github.com/takatrack/waste-monitoring/repository/collection"
	userRepo "github.com/takatrack/waste-monitoring/repository/user"
	"github.com/takatrack/waste-monitoring/thirdparty/rabbitmq"
	"github.com/takatrack/waste-monitoring/transport"
	"github.com/takatrack/waste-monitoring/utils/logger"
	"go.uber.org/zap"
)

// @title Waste Collection Monitoring API
// @version 1.0
// @description Municipal waste-collection monitoring API Documentation
// @host localhost:8080
// @BasePath /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	// Load configuration from environment variables
	cfg := config.Load()

	// Initialize global logger
	if err := logger.Init(cfg.Environment); err != nil {
		// fallback to standard log if zap init fails
		panic(err)
	}
	defer logger.Close()

	logger.Info("Starting server", zap.String("env", cfg.Environment))

	// Connect to database
	db, err := sqlx.Connect("mysql", cfg.GetDSN())
	if err != nil {
		logger.Fatal("err connect db", zap.Error(err))
	}

	// Set database connection pool settings
	db.SetMaxOpenConns(cfg.Database.MaxOpenConns)
	db.SetMaxIdleConns(cfg.Database.MaxIdleConns)
	db.SetConnMaxLifetime(cfg.Database.ConnMaxLifetime)

	// Apply schema migrations
	goose.SetBaseFS(migrations.Migrations)
	if err := goose.SetDialect("mysql"); err != nil {
		logger.Fatal("err goose dialect", zap.Error(err))
	}
	if err := goose.UpContext(context.Background(), db.DB, "."); err != nil {
		logger.Fatal("err run migrations", zap.Error(err))
	}

	// Initialize the submission-event publisher when enabled
	var publisher collectionapp.EventPublisher
	if cfg.AMQP.Enabled {
		amqpPublisher, err := rabbitmq.NewPublisher(cfg.AMQP.Host, cfg.AMQP.Port, cfg.AMQP.User, cfg.AMQP.Password)
		if err != nil {
			logger.Fatal("err connect rabbitmq", zap.Error(err))
		}
		defer func() {
			_ = amqpPublisher.Close()
		}()
		publisher = amqpPublisher
	}

	// Initialize repositories
	UserRepo := userRepo.NewUserRepository(db)
	CollectionRepo := collectionRepo.NewCollectionRepository(db)

	// Initialize application layers
	AuthApp := authapp.NewAuthApp(cfg, UserRepo)
	CollectionApp := collectionapp.NewCollectionApp(cfg, CollectionRepo, publisher)

	httpTransport := transport.NewTransport(AuthApp, CollectionApp)

	// The dashboard client is served from another origin
	corsHandler := cors.New(cors.Options{
		AllowedOrigins: cfg.CORS.AllowedOrigins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowedHeaders: []string{"Authorization", "Content-Type"},
	}).Handler(httpTransport)

	// Create HTTP server
	server := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      corsHandler,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	logger.Info("HTTP server running", zap.String("port", cfg.Server.Port))
	err = server.ListenAndServe()
	if err != nil {
		logger.Fatal("failed server", zap.Error(err))
	}
}
