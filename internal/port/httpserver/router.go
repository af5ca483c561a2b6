package httpserver

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/landsetu/landsetu/internal/platform/logger"
	"github.com/landsetu/landsetu/internal/port/httpserver/handler"
	"github.com/landsetu/landsetu/internal/port/httpserver/middleware"
	"github.com/landsetu/landsetu/internal/repository"
)

type RouterDeps struct {
	Lands     *handler.LandHandler
	Contacts  *handler.ContactHandler
	Users     *handler.UserHandler
	Sessions  repository.SessionRepository
	JWTSecret string
	Log       logger.Logger
}

func NewRouter(deps RouterDeps) http.Handler {
	r := chi.NewRouter()

	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(middleware.RequestLogger(deps.Log))
	r.Use(chimiddleware.Recoverer)

	auth := middleware.Auth(deps.JWTSecret, deps.Sessions, deps.Log)

	r.Route("/api", func(r chi.Router) {
		r.Post("/auth/register", deps.Users.Register)
		r.Post("/auth/login", deps.Users.Login)

		r.Get("/lands", deps.Lands.Search)
		r.Get("/lands/featured", deps.Lands.GetFeatured)
		r.Get("/lands/{id}", deps.Lands.GetByID)

		r.Post("/contacts", deps.Contacts.Create)

		r.Group(func(r chi.Router) {
			r.Use(auth)

			r.Post("/auth/logout", deps.Users.Logout)

			r.Post("/lands", deps.Lands.Create)
			r.Put("/lands/{id}", deps.Lands.Update)
			r.Delete("/lands/{id}", deps.Lands.Delete)
			r.Post("/lands/{id}/photos", deps.Lands.AddPhoto)
			r.Get("/my/lands", deps.Lands.GetMine)

			r.Get("/contacts", deps.Contacts.ListForSeller)
			r.Patch("/contacts/{id}/status", deps.Contacts.UpdateStatus)
		})
	})

	return r
}
