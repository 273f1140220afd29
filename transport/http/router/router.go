package router

import (
	"medistay/internal/handlers/auth"
	"medistay/internal/handlers/booking"
	"medistay/internal/handlers/file"
	"medistay/internal/handlers/location"
	"medistay/internal/handlers/property"
	"medistay/internal/handlers/room"
	"medistay/internal/handlers/tag"
	"medistay/internal/handlers/user"
	"medistay/internal/handlers/wizard"

	"github.com/go-chi/chi/v5"
)

type DomainHandlers struct {
	Auth     auth.Handler
	User     user.Handler
	Tag      tag.Handler
	Location location.Handler
	Property property.Handler
	Room     room.Handler
	Wizard   wizard.Handler
	Booking  booking.Handler
	File     file.Handler
}

type Router struct {
	DomainHandlers DomainHandlers
}

func (r *Router) SetupRoutes(router chi.Router) {
	router.Route("/v1", func(routerGroup chi.Router) {
		r.DomainHandlers.Auth.Router(routerGroup)
		r.DomainHandlers.User.Router(routerGroup)
		r.DomainHandlers.Tag.Router(routerGroup)
		r.DomainHandlers.Location.Router(routerGroup)
		r.DomainHandlers.Property.Router(routerGroup)
		r.DomainHandlers.Room.Router(routerGroup)
		r.DomainHandlers.Wizard.Router(routerGroup)
		r.DomainHandlers.Booking.Router(routerGroup)
		r.DomainHandlers.File.Router(routerGroup)
	})
}

func New(domainHandlers DomainHandlers) Router {
	return Router{
		DomainHandlers: domainHandlers,
	}
}
