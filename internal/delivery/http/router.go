package http

import (
	"net/http"

	httpSwagger "github.com/swaggo/http-swagger"

	"eventrsvp/internal/delivery/http/controllers"
	"eventrsvp/internal/delivery/http/middleware"
	"eventrsvp/internal/domain"
)

// NewRouter initializes the HTTP router with all application routes.
// Register and login are the only routes that run without a verified token.
func NewRouter(
	verifier domain.TokenVerifier,
	authController *controllers.AuthController,
	userController *controllers.UserController,
	rsvpController *controllers.RSVPController,
) *http.ServeMux {
	mux := http.NewServeMux()
	requireAuth := middleware.RequireAuth(verifier)

	// Auth
	mux.HandleFunc("POST /auth/register", authController.Register)
	mux.HandleFunc("POST /auth/login", authController.Login)

	// RSVP
	mux.HandleFunc("POST /rsvp", requireAuth(rsvpController.Submit))
	mux.HandleFunc("PATCH /rsvp", requireAuth(rsvpController.Edit))
	mux.HandleFunc("GET /rsvp", requireAuth(rsvpController.Get))

	// Users
	mux.HandleFunc("GET /users/me", requireAuth(userController.GetMe))
	mux.HandleFunc("GET /users", requireAuth(userController.List))
	mux.HandleFunc("GET /users/{userID}", requireAuth(userController.GetByID))
	mux.HandleFunc("PATCH /users/{userID}", requireAuth(userController.Update))
	mux.HandleFunc("GET /users/{userID}/rsvp", requireAuth(rsvpController.GetForUser))

	// Swagger
	mux.Handle("/swagger/", httpSwagger.WrapHandler)

	return mux
}
