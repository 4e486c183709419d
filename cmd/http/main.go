package main

import (
	"context"
	"medibook-service/internal/app/config"
	"medibook-service/internal/app/delivery/http/middlewares"
	"medibook-service/internal/app/delivery/http/routers"
	"medibook-service/internal/app/drivers/database"
	"medibook-service/internal/app/drivers/logger"
	"medibook-service/internal/app/drivers/messaging"
	"medibook-service/internal/app/services/core/availability"
	"medibook-service/internal/app/services/core/bookings"
	"medibook-service/internal/app/services/core/providers"
	"medibook-service/internal/app/services/shared/clock"
	"medibook-service/internal/app/services/shared/locker"
	"medibook-service/internal/app/services/shared/notificationqueue"
	"medibook-service/internal/app/services/shared/redis"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
)

func main() {
	driverConfig := config.NewDriverConfig()
	internalConfig := config.NewInternalConfig()

	log := logger.NewLogrusLogger(internalConfig)

	location, err := time.LoadLocation(internalConfig.App.Timezone)
	if err != nil {
		log.Fatalf("Error loading location: %v", err)
	}
	time.Local = location

	mongoDB := database.NewMongoDB(driverConfig)
	redisClient := database.NewRedisClient(driverConfig)
	rabbitMQ := messaging.NewRabbitMQ(driverConfig)
	zapLogger := logger.NewZapLogger(driverConfig, internalConfig)
	chiRouter := chi.NewRouter()

	bootstrap := config.Bootstrap{
		Router:         chiRouter,
		MongoDB:        mongoDB,
		Redis:          redisClient,
		RabbitMQ:       rabbitMQ,
		Logger:         zapLogger,
		DriverConfig:   driverConfig,
		InternalConfig: internalConfig,
	}

	if err := bootstrapingTheApp(bootstrap); err != nil {
		log.Fatalf("Failed to bootstrap the app: %v", err)
	}

	server := &http.Server{
		Addr:    internalConfig.App.Port,
		Handler: chiRouter,
	}

	go func() {
		err := server.ListenAndServe()
		if err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server failed to start: %v", err)
		}
	}()

	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)

	<-c

	log.Println("Waiting for pending requests that already received by server to be processed..")

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		time.Second*time.Duration(internalConfig.App.ShutdownTimeoutInSeconds),
	)
	defer cancel()

	err = server.Shutdown(shutdownCtx)
	if err != nil {
		log.Fatalf("Server forced to shutdown: %v", err)
	}

	if err := bootstrap.Shutdown(shutdownCtx); err != nil {
		log.Fatalf("Error while closing connections: %v", err)
	}

	log.Println("Server exiting")
}

func bootstrapingTheApp(bootstrap config.Bootstrap) error {
	// Shared services
	redisRepository := redis.NewRedisRepository(bootstrap.Redis)
	lockService := locker.NewLockService(redisRepository, bootstrap.Logger)
	systemClock := clock.NewSystemClock()

	notificationQueue, err := notificationqueue.NewService(
		bootstrap.RabbitMQ,
		bootstrap.Logger,
		bootstrap.InternalConfig.RabbitMQ.NotificationQueue,
		bootstrap.InternalConfig.RabbitMQ.QueueDurable,
	)
	if err != nil {
		return err
	}

	// Middlewares
	middlewares := middlewares.NewMiddlewares(bootstrap.Logger, bootstrap.InternalConfig)

	// Provider
	providerRepository := providers.NewProviderMongoRepository(
		bootstrap.MongoDB,
		bootstrap.InternalConfig.MongoDB.DbName,
	)
	unavailabilityRepository := providers.NewUnavailabilityMongoRepository(
		bootstrap.MongoDB,
		bootstrap.InternalConfig.MongoDB.DbName,
	)
	providerUsecase := providers.NewProviderUsecase(providerRepository, unavailabilityRepository, redisRepository, bootstrap.Logger)
	providerController := providers.NewProviderController(bootstrap.Logger, providerUsecase, bootstrap.InternalConfig)

	// Booking
	bookingRepository := bookings.NewBookingMongoRepository(
		bootstrap.MongoDB,
		bootstrap.InternalConfig.MongoDB.DbName,
	)

	indexCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := bookingRepository.EnsureIndexes(indexCtx); err != nil {
		return err
	}

	conflictIndex := bookings.NewBookingConflictIndex(bookingRepository, bootstrap.Logger)
	bookingUsecase := bookings.NewBookingUsecase(
		bookingRepository,
		conflictIndex,
		providerRepository,
		lockService,
		notificationQueue,
		systemClock,
		bootstrap.InternalConfig,
		bootstrap.Logger,
	)
	bookingController := bookings.NewBookingController(bootstrap.Logger, bookingUsecase, bootstrap.InternalConfig)

	// Availability
	availabilityUsecase := availability.NewAvailabilityUsecase(conflictIndex, unavailabilityRepository, bootstrap.Logger)
	availabilityController := availability.NewAvailabilityController(bootstrap.Logger, availabilityUsecase, systemClock, bootstrap.InternalConfig)

	routers.SetupRoutes(
		bootstrap.Router,
		bootstrap.InternalConfig,
		bootstrap.Logger,
		middlewares,
		providerController,
		availabilityController,
		bookingController,
	)

	return nil
}
