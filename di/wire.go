//go:build wireinject
// +build wireinject

package di

import (
	"medistay/config"
	"medistay/infras/jwt"
	"medistay/infras/kafka"
	"medistay/infras/mailer"
	"medistay/infras/otel"
	"medistay/infras/payment"
	"medistay/infras/postgres"
	"medistay/infras/redis"
	"medistay/infras/s3"
	"medistay/permissions"
	"medistay/shared/cache"
	"medistay/transport/http"
	"medistay/transport/http/middleware"
	"medistay/transport/http/router"

	"github.com/google/wire"

	authService "medistay/internal/domains/auth/service"
	bookingRepository "medistay/internal/domains/booking/repository"
	bookingService "medistay/internal/domains/booking/service"
	fileRepository "medistay/internal/domains/file/repository"
	fileService "medistay/internal/domains/file/service"
	locationRepository "medistay/internal/domains/location/repository"
	locationService "medistay/internal/domains/location/service"
	propertyRepository "medistay/internal/domains/property/repository"
	propertyService "medistay/internal/domains/property/service"
	roomRepository "medistay/internal/domains/room/repository"
	roomService "medistay/internal/domains/room/service"
	tagRepository "medistay/internal/domains/tag/repository"
	tagService "medistay/internal/domains/tag/service"
	userRepository "medistay/internal/domains/user/repository"
	userService "medistay/internal/domains/user/service"
	wizardRepository "medistay/internal/domains/wizard/repository"
	wizardService "medistay/internal/domains/wizard/service"

	authHandler "medistay/internal/handlers/auth"
	bookingHandler "medistay/internal/handlers/booking"
	fileHandler "medistay/internal/handlers/file"
	locationHandler "medistay/internal/handlers/location"
	propertyHandler "medistay/internal/handlers/property"
	roomHandler "medistay/internal/handlers/room"
	tagHandler "medistay/internal/handlers/tag"
	userHandler "medistay/internal/handlers/user"
	wizardHandler "medistay/internal/handlers/wizard"
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
	s3.New,
	kafka.New,
	payment.New,
	mailer.New,
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
	wire.Bind(new(wizardService.ProviderRegistrar), new(userService.User)),
)

var tagDomain = wire.NewSet(
	tagRepository.New,
	tagService.New,
)

var locationDomain = wire.NewSet(
	locationRepository.New,
	locationService.New,
)

var propertyDomain = wire.NewSet(
	propertyRepository.New,
	propertyService.New,
	wire.Bind(new(wizardService.PropertyCreator), new(propertyService.Property)),
)

var roomDomain = wire.NewSet(
	roomRepository.New,
	roomService.New,
	wire.Bind(new(wizardService.RoomCreator), new(roomService.Room)),
)

var wizardDomain = wire.NewSet(
	wizardRepository.NewStore,
	wizardService.New,
)

var bookingDomain = wire.NewSet(
	bookingRepository.New,
	bookingService.New,
)

var fileDomain = wire.NewSet(
	fileRepository.New,
	fileService.New,
)

var domains = wire.NewSet(
	authDomain,
	userDomain,
	tagDomain,
	locationDomain,
	propertyDomain,
	roomDomain,
	wizardDomain,
	bookingDomain,
	fileDomain,
)

var routing = wire.NewSet(
	wire.Struct(new(router.DomainHandlers), "*"),
	authHandler.New,
	userHandler.New,
	tagHandler.New,
	locationHandler.New,
	propertyHandler.New,
	roomHandler.New,
	wizardHandler.New,
	bookingHandler.New,
	fileHandler.New,
	router.New,
)

func InitializeService() (*http.HTTP, error) {
	wire.Build(
		configurations,
		infrastructures,
		middlewares,
		sharedHelpers,
		domains,
		routing,
		http.New,
	)

	return &http.HTTP{}, nil
}
