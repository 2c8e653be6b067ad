//go:build wireinject
// +build wireinject

package di

import (
	"cinetix/config"
	"cinetix/infras/jwt"
	"cinetix/infras/kafka"
	"cinetix/infras/otel"
	"cinetix/infras/postgres"
	"cinetix/infras/redis"
	"cinetix/infras/s3"
	"cinetix/internal/events"
	"cinetix/internal/metrics"
	"cinetix/permissions"
	"cinetix/shared/cache"
	"cinetix/transport/http"
	"cinetix/transport/http/middleware"
	"cinetix/transport/http/router"

	authService "cinetix/internal/domains/auth/service"
	bookingRepository "cinetix/internal/domains/booking/repository"
	bookingService "cinetix/internal/domains/booking/service"
	movieRepository "cinetix/internal/domains/movie/repository"
	movieService "cinetix/internal/domains/movie/service"
	userRepository "cinetix/internal/domains/user/repository"

	authHandler "cinetix/internal/handlers/auth"
	bookingHandler "cinetix/internal/handlers/booking"
	movieHandler "cinetix/internal/handlers/movie"

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
	events.NewPublisher,
	metrics.New,
)

var movieDomain = wire.NewSet(
	movieRepository.New,
	movieService.New,
)

var bookingDomain = wire.NewSet(
	bookingRepository.New,
	bookingService.New,
)

var authDomain = wire.NewSet(
	userRepository.New,
	authService.New,
)

var domains = wire.NewSet(
	movieDomain,
	bookingDomain,
	authDomain,
)

var routing = wire.NewSet(
	wire.Struct(new(router.DomainHandlers), "*"),
	authHandler.New,
	movieHandler.New,
	bookingHandler.New,
	router.New,
)

func InitializeService() *http.HTTP {
	wire.Build(
		configurations,
		infrastructures,
		middlewares,
		sharedHelpers,
		domains,
		routing,
		http.New,
	)

	return &http.HTTP{}
}
