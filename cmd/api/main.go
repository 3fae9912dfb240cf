package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	"github.com/nats-io/nats.go"
	"github.com/redis/go-redis/v9"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"autokeep/api/internal/config"
	"autokeep/api/internal/model"
	"autokeep/api/internal/server"

	_ "autokeep/api/docs"
)

// @title AutoKeep API
// @version 1.0
// @description AutoKeep - Personal vehicle maintenance tracking API
// @termsOfService http://swagger.io/terms/

// @contact.name API Support
// @contact.url https://github.com/autokeep/autokeep/issues
// @contact.email support@autokeep.local

// @license.name Apache 2.0
// @license.url http://www.apache.org/licenses/LICENSE-2.0.html

// @host localhost:3000
// @BasePath /api/v1

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.

func main() {
	log.Println("[API] Starting AutoKeep API Server...")

	// Load configuration
	cfg := config.Load()

	// Run SQL migrations before opening the gorm connection
	if err := runMigrations(cfg); err != nil {
		log.Fatalf("[API] Failed to run migrations: %v", err)
	}
	log.Println("[API] Migrations applied")

	// Connect to database
	db, err := gorm.Open(postgres.Open(cfg.DatabaseURL), &gorm.Config{})
	if err != nil {
		log.Fatalf("[API] Failed to connect to database: %v", err)
	}
	log.Println("[API] Connected to database")

	// Auto migrate picks up columns added after the last SQL migration
	if err := autoMigrate(db); err != nil {
		log.Fatalf("[API] Failed to migrate database: %v", err)
	}
	log.Println("[API] Database migrated")

	// Connect to Redis
	redisClient := redis.NewClient(&redis.Options{
		Addr: cfg.RedisURL,
		DB:   0,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := redisClient.Ping(ctx).Err(); err != nil {
		log.Fatalf("[API] Failed to connect to Redis: %v", err)
	}
	log.Println("[API] Connected to Redis")
	defer redisClient.Close()

	// Connect to NATS
	natsConn, err := nats.Connect(cfg.NATSURL)
	if err != nil {
		log.Fatalf("[API] Failed to connect to NATS: %v", err)
	}
	log.Println("[API] Connected to NATS")
	defer natsConn.Close()

	// Create and setup server
	srv := server.NewServer(cfg, db, redisClient, natsConn)
	srv.Setup()

	// Start HTTP server
	addr := fmt.Sprintf(":%d", cfg.APIPort)
	go func() {
		if err := srv.Run(addr); err != nil {
			log.Fatalf("[API] Failed to start server: %v", err)
		}
	}()

	log.Printf("[API] Server ready on %s", addr)

	// Wait for interrupt signal
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	<-sigChan
	log.Println("[API] Shutting down...")

	// Graceful shutdown
	srv.Shutdown()
	log.Println("[API] Server stopped")
}

func runMigrations(cfg *config.Config) error {
	m, err := migrate.New("file://"+cfg.MigrationsPath, cfg.DatabaseURL)
	if err != nil {
		return err
	}
	defer m.Close()

	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return err
	}
	return nil
}

func autoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&model.User{},
		&model.Vehicle{},
		&model.MaintenanceItem{},
		&model.MaintenanceLog{},
		&model.LoginLog{},
	)
}
