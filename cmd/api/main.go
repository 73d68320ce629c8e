// @title Event RSVP API
// @version 1.0
// @description Invitation-only event RSVP backend: registration, login, and the single-RSVP lifecycle.
// @BasePath /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
package main

import (
	"database/sql"
	"net/http"
	"os"

	_ "github.com/lib/pq"

	"eventrsvp/config"
	_ "eventrsvp/docs"
	"eventrsvp/internal/adapters/auth"
	"eventrsvp/internal/adapters/invite"
	httpdelivery "eventrsvp/internal/delivery/http"
	"eventrsvp/internal/delivery/http/controllers"
	"eventrsvp/internal/delivery/http/middleware"
	"eventrsvp/internal/domain"
	"eventrsvp/internal/repository/postgres"
	"eventrsvp/internal/services"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		os.Stderr.WriteString("config: " + err.Error() + "\n")
		os.Exit(1)
	}

	logger := config.NewLogger()

	db, err := sql.Open("postgres", cfg.DBUrl)
	if err != nil {
		logger.Error("failed to open database", "err", err)
		os.Exit(1)
	}
	defer db.Close()
	if err := db.Ping(); err != nil {
		logger.Error("failed to ping database", "err", err)
		os.Exit(1)
	}

	userRepo := postgres.NewUserRepository(db)
	rsvpRepo := postgres.NewRSVPRepository(db)

	var registry domain.InviteRegistry
	if cfg.InvitesFromDB {
		registry = postgres.NewInvitationRepository(db)
	} else {
		registry = invite.NewStaticRegistry(cfg.InvitedEmails)
	}

	tokenAuthority := auth.NewJWTAuthority(cfg.JWTSecret)
	hasher := auth.NewBcryptHasher(cfg.BcryptCost)

	accountSvc := services.NewAccountService(userRepo, hasher, tokenAuthority, cfg.JWTExpiry)
	rsvpSvc := services.NewRSVPService(rsvpRepo, userRepo, registry)
	userSvc := services.NewUserService(userRepo)

	authController := controllers.NewAuthController(logger, accountSvc)
	userController := controllers.NewUserController(logger, userSvc)
	rsvpController := controllers.NewRSVPController(logger, rsvpSvc)

	mux := httpdelivery.NewRouter(tokenAuthority, authController, userController, rsvpController)
	handler := middleware.Logging(logger, middleware.CORS(cfg.CORSAllowedOrigins, mux))

	addr := ":" + cfg.Port
	logger.Info("server listening", "addr", addr, "env", cfg.Environment)
	if err := http.ListenAndServe(addr, handler); err != nil {
		logger.Error("server stopped", "err", err)
		os.Exit(1)
	}
}
