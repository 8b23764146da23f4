package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/redis/go-redis/v9"

	"github.com/Pooja-Gajula/home-made/internal/config"
	"github.com/Pooja-Gajula/home-made/internal/handlers"
	"github.com/Pooja-Gajula/home-made/internal/notify"
	"github.com/Pooja-Gajula/home-made/internal/routes"
	"github.com/Pooja-Gajula/home-made/internal/session"
	"github.com/Pooja-Gajula/home-made/internal/store"
)

func main() {
	logger := log.New(os.Stdout, "[home-made] ", log.LstdFlags)

	// --- Configuration ---
	if err := godotenv.Load(); err != nil {
		logger.Println("WARNING: Could not find or load .env file. Relying on system environment variables.")
	}

	cfg, err := config.Load()
	if err != nil {
		logger.Fatalf("Failed to load configuration: %v", err)
	}

	// --- Database ---
	db, err := store.OpenDB(cfg.DBDSN)
	if err != nil {
		logger.Fatalf("Failed to connect to database: %v", err)
	}
	defer db.Close()

	if err := store.RunMigrations(db); err != nil {
		logger.Fatalf("Failed to run migrations: %v", err)
	}

	// --- Session Store (Redis) ---
	redisClient := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
	})
	defer redisClient.Close()

	pingCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	if err := redisClient.Ping(pingCtx).Err(); err != nil {
		cancel()
		logger.Fatalf("Failed to connect to Redis: %v", err)
	}
	cancel()

	sessions := session.NewStore(redisClient, []byte(cfg.SessionSecret))

	// --- Push Notifications (RabbitMQ) ---
	amqpConn, err := amqp.Dial(cfg.AMQPURL)
	if err != nil {
		logger.Fatalf("Failed to connect to RabbitMQ: %v", err)
	}
	defer amqpConn.Close()

	push, err := notify.NewPushPublisher(amqpConn)
	if err != nil {
		logger.Fatalf("Failed to set up push publisher: %v", err)
	}
	defer push.Close()

	// --- Application Setup ---
	// Inject all dependencies into the Handlers struct.
	app := &handlers.Handlers{
		Users:      store.NewUserStore(db),
		Orders:     store.NewOrderStore(db),
		Sessions:   sessions,
		Mailer:     notify.NewSMTPMailer(cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPUser, cfg.SMTPPassword, cfg.MailFrom),
		Push:       push,
		OrderTopic: cfg.OrderTopic,
	}

	router := routes.SetupRouter(app, sessions)

	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      router,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 10 * time.Second,
	}

	go func() {
		logger.Printf("Starting storefront server on port %s...", cfg.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatalf("Server error: %v", err)
		}
	}()

	// --- Graceful Shutdown ---
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	<-stop
	logger.Println("Shutting down...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()
	_ = srv.Shutdown(shutdownCtx)
}
