package api

import (
	chimiddleware "github.com/go-chi/chi/v5/middleware"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"

	"github.com/daap14/authprofile/internal/api/handler"
	"github.com/daap14/authprofile/internal/api/middleware"
	"github.com/daap14/authprofile/internal/auth"
	"github.com/daap14/authprofile/internal/chat"
)

// RouterDeps holds all dependencies needed by the router.
type RouterDeps struct {
	DBPinger        handler.DBPinger
	Version         string
	APIPrefix       string
	AuthService     *auth.Service
	Chat            chat.Replier
	ChatRequireAuth bool
	CORSOrigins     []string

	// DevAdmin mounts /dev/create-admin when non-nil. Only set in the dev environment.
	DevAdmin *handler.DevAdmin
}

// NewRouter creates and configures a Chi router with all middleware and routes.
func NewRouter(deps RouterDeps) *chi.Mux {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.Recovery)
	r.Use(chimiddleware.Logger)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   deps.CORSOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Content-Type", "Authorization", "X-Request-ID"},
		ExposedHeaders:   []string{"X-Request-ID"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	healthHandler := handler.NewHealthHandler(deps.DBPinger, deps.Version)
	r.Get("/health", healthHandler.ServeHTTP)

	mountAPI := func(r chi.Router) {
		if deps.AuthService != nil {
			authenticate := middleware.Authenticate(deps.AuthService)

			authHandler := handler.NewAuthHandler(deps.AuthService)
			r.Route("/auth", func(r chi.Router) {
				r.Post("/signup", authHandler.Signup)
				r.Post("/login", authHandler.Login)
			})

			userHandler := handler.NewUserHandler(deps.AuthService)
			r.Route("/users", func(r chi.Router) {
				r.Use(authenticate)
				r.Get("/me", userHandler.Me)
				r.With(middleware.RequireRole(auth.RoleAdmin)).Put("/me", userHandler.UpdateMe)
			})

			if deps.Chat != nil {
				chatHandler := handler.NewChatHandler(deps.Chat)
				if deps.ChatRequireAuth {
					r.With(authenticate).Post("/chat", chatHandler.Reply)
				} else {
					r.Post("/chat", chatHandler.Reply)
				}
			}

			if deps.DevAdmin != nil {
				devHandler := handler.NewDevHandler(deps.AuthService, *deps.DevAdmin)
				r.Post("/dev/create-admin", devHandler.CreateAdmin)
			}
		}
	}

	if deps.APIPrefix == "" || deps.APIPrefix == "/" {
		r.Group(mountAPI)
	} else {
		r.Route(deps.APIPrefix, mountAPI)
	}

	return r
}
