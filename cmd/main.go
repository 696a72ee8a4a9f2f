package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/askaruly/dastarhan/internal/adapter/cache"
	"github.com/askaruly/dastarhan/internal/adapter/logger"
	"github.com/askaruly/dastarhan/internal/adapter/postgres"
	"github.com/askaruly/dastarhan/internal/adapter/rabbitmq"
	"github.com/askaruly/dastarhan/internal/app/customer"
	"github.com/askaruly/dastarhan/internal/app/employee"
	"github.com/askaruly/dastarhan/internal/app/fulfillment"
	"github.com/askaruly/dastarhan/internal/app/menu"
	"github.com/askaruly/dastarhan/internal/app/order"
	"github.com/askaruly/dastarhan/internal/app/tracking"
	"github.com/askaruly/dastarhan/internal/config"

	amqpAdapter "github.com/askaruly/dastarhan/internal/adapter/amqp"
	httpAdapter "github.com/askaruly/dastarhan/internal/adapter/http"
)

func main() {
	mode := flag.String("mode", "", "Service mode: api-service, fulfillment-worker")
	port := flag.Int("port", 3000, "HTTP port (for api-service)")
	workerName := flag.String("worker-name", "", "Worker name (for fulfillment-worker)")
	configPath := flag.String("config", "config.yaml", "Path to config file")
	flag.Parse()

	if *mode == "" {
		log.Fatal("--mode flag is required")
	}

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	ctx := context.Background()

	lgr := logger.New(*mode)

	db, err := postgres.Connect(ctx, cfg.Database)
	if err != nil {
		log.Fatalf("Failed to connect to PostgreSQL: %v", err)
	}
	defer db.Close()

	lgr.Info("db_connected", "Connected to PostgreSQL database", "startup", map[string]interface{}{
		"host": cfg.Database.Host,
		"db":   cfg.Database.Database,
	})

	mqConn, err := rabbitmq.Connect(cfg.RabbitMQ)
	if err != nil {
		log.Fatalf("Failed to connect to RabbitMQ: %v", err)
	}
	defer mqConn.Close()

	lgr.Info("rabbitmq_connected", "Connected to RabbitMQ", "startup", map[string]interface{}{
		"host": cfg.RabbitMQ.Host,
	})

	switch *mode {
	case "api-service":
		runAPIService(db, mqConn, cfg, lgr, *port)

	case "fulfillment-worker":
		if *workerName == "" {
			log.Fatal("--worker-name is required for fulfillment-worker mode")
		}
		runFulfillmentWorker(ctx, db, mqConn, cfg, lgr, *workerName)

	default:
		log.Fatalf("Invalid mode: %s", *mode)
	}
}

func runAPIService(db postgres.DB, mqConn rabbitmq.Connection, cfg *config.Config, lgr logger.Logger, port int) {
	orderRepo := postgres.NewOrderRepository(db)
	customerRepo := postgres.NewCustomerRepository(db)
	employeeRepo := postgres.NewEmployeeRepository(db)
	menuRepo := postgres.NewMenuItemRepository(db)
	workerRepo := postgres.NewWorkerRepository(db)

	publisher := rabbitmq.NewPublisher(mqConn)

	var menuCache cache.Cache
	if cfg.Redis.Enabled() {
		menuCache = cache.NewRedisCache(cfg.Redis, "api-service")
		lgr.Info("redis_connected", "Menu cache enabled", "startup", map[string]interface{}{
			"host": cfg.Redis.Host,
		})
	}

	orderService := order.NewService(orderRepo, customerRepo, menuRepo, publisher, lgr)
	customerService := customer.NewService(customerRepo, lgr)
	employeeService := employee.NewService(employeeRepo, lgr)
	menuService := menu.NewService(menuRepo, menuCache, lgr)
	// Workers missing two heartbeats are reported offline.
	trackingService := tracking.NewService(workerRepo, 2*cfg.Fulfillment.HeartbeatInterval())

	handler := httpAdapter.NewRouter(httpAdapter.Handlers{
		Orders:    httpAdapter.NewOrderHandler(orderService, lgr),
		Customers: httpAdapter.NewCustomerHandler(customerService, lgr),
		Employees: httpAdapter.NewEmployeeHandler(employeeService, lgr),
		Menu:      httpAdapter.NewMenuHandler(menuService, lgr),
		Summary:   httpAdapter.NewSummaryHandler(orderService, lgr),
		Workers:   httpAdapter.NewWorkerHandler(trackingService),
	}, lgr)

	server := &http.Server{
		Addr:         fmt.Sprintf(":%d", port),
		Handler:      handler,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	lgr.Info("service_started", fmt.Sprintf("API Service started on port %d", port), "startup", map[string]interface{}{
		"port": port,
	})

	go func() {
		sigint := make(chan os.Signal, 1)
		signal.Notify(sigint, os.Interrupt, syscall.SIGTERM)
		<-sigint

		lgr.Info("shutdown_initiated", "Shutting down API Service", "shutdown", nil)

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		if err := server.Shutdown(shutdownCtx); err != nil {
			lgr.Error("shutdown_error", "Error during shutdown", "shutdown", nil, err)
		}
	}()

	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		lgr.Error("server_error", "Server error", "runtime", nil, err)
	}
}

func runFulfillmentWorker(ctx context.Context, db postgres.DB, mqConn rabbitmq.Connection, cfg *config.Config, lgr logger.Logger, workerName string) {
	orderRepo := postgres.NewOrderRepository(db)
	workerRepo := postgres.NewWorkerRepository(db)

	consumer := rabbitmq.NewConsumer(mqConn, cfg.Fulfillment.Prefetch, cfg.Fulfillment.JobTimeout())

	scheduler := fulfillment.NewService(
		orderRepo,
		workerRepo,
		lgr,
		workerName,
		cfg.Fulfillment.HeartbeatInterval(),
		cfg.Fulfillment.AckDelay(),
		time.Minute,
	)

	jobHandler := amqpAdapter.NewFulfillmentHandler(scheduler, lgr)

	workerCtx, cancel := context.WithCancel(ctx)
	defer cancel()

	if err := scheduler.Start(workerCtx); err != nil {
		log.Fatalf("Failed to start fulfillment worker: %v", err)
	}

	lgr.Info("service_started", fmt.Sprintf("Fulfillment Worker %s started", workerName), "startup", map[string]interface{}{
		"worker_name": workerName,
		"prefetch":    cfg.Fulfillment.Prefetch,
		"job_timeout": cfg.Fulfillment.JobTimeoutSeconds,
	})

	go func() {
		if err := consumer.ConsumeFulfillment(workerCtx, jobHandler.HandleJob); err != nil {
			lgr.Error("consumer_error", "Error consuming fulfillment jobs", "runtime", nil, err)
		}
	}()

	sigint := make(chan os.Signal, 1)
	signal.Notify(sigint, os.Interrupt, syscall.SIGTERM)
	<-sigint

	lgr.Info("graceful_shutdown", "Shutting down Fulfillment Worker", "shutdown", nil)

	if err := scheduler.Shutdown(context.Background()); err != nil {
		lgr.Error("shutdown_error", "Error during shutdown", "shutdown", nil, err)
	}
	cancel()
}
