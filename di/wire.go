//go:build wireinject
// +build wireinject

package di

import (
	"drivio/config"
	"drivio/infras/jwt"
	"drivio/infras/kafka"
	"drivio/infras/otel"
	"drivio/infras/postgres"
	"drivio/infras/redis"
	"drivio/infras/s3"
	"drivio/internal/jobs"
	"drivio/internal/scheduler"
	"drivio/permissions"
	"drivio/shared/cache"
	"drivio/transport/http"
	"drivio/transport/http/middleware"
	"drivio/transport/http/router"

	rentalEvents "drivio/internal/events/rental"

	authService "drivio/internal/domains/auth/service"
	carRepository "drivio/internal/domains/car/repository"
	carService "drivio/internal/domains/car/service"
	maintenanceRepository "drivio/internal/domains/maintenance/repository"
	maintenanceService "drivio/internal/domains/maintenance/service"
	notificationRepository "drivio/internal/domains/notification/repository"
	notificationService "drivio/internal/domains/notification/service"
	rentalRepository "drivio/internal/domains/rental/repository"
	rentalService "drivio/internal/domains/rental/service"
	reviewRepository "drivio/internal/domains/review/repository"
	reviewService "drivio/internal/domains/review/service"
	userRepository "drivio/internal/domains/user/repository"
	userService "drivio/internal/domains/user/service"

	authHandler "drivio/internal/handlers/auth"
	carHandler "drivio/internal/handlers/car"
	maintenanceHandler "drivio/internal/handlers/maintenance"
	notificationHandler "drivio/internal/handlers/notification"
	rentalHandler "drivio/internal/handlers/rental"
	reviewHandler "drivio/internal/handlers/review"
	userHandler "drivio/internal/handlers/user"

	"github.com/google/wire"
)

var configurations = wire.NewSet(
	config.Get,
	permissions.Get,
)

var infrastructures = wire.NewSet(
	postgres.New,
	otel.New,
	redis.New,
	jwt.New,
	kafka.New,
	s3.New,
)

var middlewares = wire.NewSet(
	middleware.NewAppMiddleware,
	middleware.NewAuthRoleMiddleware,
)

var sharedHelpers = wire.NewSet(
	cache.NewRedisCache,
)

var authDomain = wire.NewSet(
	authService.New,
)

var userDomain = wire.NewSet(
	userRepository.New,
	userService.New,
)

var carDomain = wire.NewSet(
	carRepository.New,
	carService.New,
)

var rentalDomain = wire.NewSet(
	rentalRepository.New,
	rentalService.New,
)

var maintenanceDomain = wire.NewSet(
	maintenanceRepository.New,
	maintenanceService.New,
)

var reviewDomain = wire.NewSet(
	reviewRepository.New,
	reviewService.New,
)

var notificationDomain = wire.NewSet(
	notificationRepository.New,
	notificationService.New,
)

var domains = wire.NewSet(
	authDomain,
	userDomain,
	carDomain,
	rentalDomain,
	maintenanceDomain,
	reviewDomain,
	notificationDomain,
)

var background = wire.NewSet(
	jobs.NewRunner,
	scheduler.New,
	rentalEvents.NewConsumer,
)

var routing = wire.NewSet(
	wire.Struct(new(router.DomainHandlers), "*"),
	authHandler.New,
	userHandler.New,
	carHandler.New,
	rentalHandler.New,
	maintenanceHandler.New,
	reviewHandler.New,
	notificationHandler.New,
	router.New,
)

func InitializeApp() *App {
	wire.Build(
		configurations,
		infrastructures,
		middlewares,
		sharedHelpers,
		domains,
		background,
		routing,
		http.New,
		wire.Struct(new(App), "*"),
	)

	return &App{}
}
