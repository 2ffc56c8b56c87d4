package routes

import (
	"github.com/Dosada05/league-signups/handlers"
	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
)

func SetupRoutes(
	router *chi.Mux,
	signupHandler *handlers.SignupHandler,
	sessionHandler *handlers.SessionHandler,
	rosterHandler *handlers.RosterHandler,
	webSocketHandler *handlers.WebSocketHandler,
) {
	router.Use(chiMiddleware.Logger)
	router.Use(chiMiddleware.Recoverer)
	router.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Content-Type"},
		AllowCredentials: false,
	}))

	// Поток создания через модальное окно: открыть сессию, затем отправить поля.
	router.Route("/sessions", func(r chi.Router) {
		r.Post("/", sessionHandler.OpenSessionHandler)
		r.Post("/{sessionID}", sessionHandler.SubmitSessionHandler)
	})

	router.Route("/signups", func(r chi.Router) {
		r.Post("/", signupHandler.CreateSignupHandler)
		r.Get("/{signupID}", signupHandler.GetSignupHandler)
	})

	// Кнопочные события от поверхности взаимодействия.
	router.Post("/interactions", rosterHandler.ComponentEventHandler)

	router.Route("/games/{gameID}/roster", func(r chi.Router) {
		r.Get("/", rosterHandler.GameRosterHandler)
		r.Post("/{role}/claim", rosterHandler.ClaimRoleHandler)
		r.Post("/{role}/release", rosterHandler.ReleaseRoleHandler)
	})

	router.Get("/ws/signups/{signupID}", webSocketHandler.ServeWs)
}
