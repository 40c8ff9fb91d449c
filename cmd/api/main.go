package main

import (
	"log"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"sportfy/internal/config"
	"sportfy/internal/database"
	"sportfy/internal/middleware"
	"sportfy/internal/modules/auth"
	"sportfy/internal/modules/booking"
	"sportfy/internal/modules/courts"
	"sportfy/internal/modules/matchfeed"
	"sportfy/internal/modules/payment"
	jwtsvc "sportfy/internal/pkg/jwt"
	"sportfy/internal/repository"
)

func main() {
	_ = godotenv.Load()
	cfg := config.Load()

	if cfg.JWTSecret == "" {
		log.Fatal("JWT_SECRET is empty")
	}

	db, err := database.Connect(cfg.DatabaseURL)
	if err != nil {
		log.Fatal(err)
	}
	if err := database.Migrate(db); err != nil {
		log.Fatal(err)
	}

	userRepo := repository.NewUserRepository(db)
	courtRepo := repository.NewCourtRepository(db)
	bookingRepo := repository.NewBookingRepository(db)

	j := jwtsvc.New(cfg.JWTSecret, cfg.JWTTTL)

	hub := matchfeed.NewHub()
	defer hub.Close()
	feedHandler := matchfeed.NewHandler(hub)

	authService := auth.NewService(userRepo, j)
	authHandler := auth.NewHandler(authService)

	courtService := courts.NewService(courtRepo)
	courtHandler := courts.NewHandler(courtService)

	bookingService := booking.NewService(bookingRepo, courtRepo, userRepo, hub)
	bookingHandler := booking.NewHandler(bookingService)

	snap := payment.NewSnapClient(cfg.SnapServerKey, cfg.SnapBaseURL)
	paymentService := payment.NewService(
		bookingRepo,
		bookingRepo,
		courtRepo,
		snap,
		hub,
		log.Printf,
		cfg.FrontendBaseURL,
		cfg.SandboxAutoPaid,
	)
	paymentHandler := payment.NewHandler(paymentService, log.Printf)

	r := gin.Default()
	r.Use(middleware.CORS())
	r.Use(middleware.ErrorLogger())

	v1 := r.Group("/api/v1")
	{
		// public
		authHandler.RegisterRoutes(v1)
		courtHandler.RegisterPublicRoutes(v1)
		bookingHandler.RegisterPublicRoutes(v1)
		paymentHandler.RegisterPublicRoutes(v1)
		feedHandler.RegisterRoutes(v1)

		// protected
		protected := v1.Group("/")
		protected.Use(middleware.Auth(j))
		{
			bookingHandler.RegisterProtectedRoutes(protected)
			paymentHandler.RegisterProtectedRoutes(protected)
		}

		// admin
		admin := v1.Group("/admin")
		admin.Use(middleware.Auth(j), middleware.AdminOnly())
		{
			bookingHandler.RegisterAdminRoutes(admin)
			courtHandler.RegisterAdminRoutes(admin)
		}
	}

	if err := r.Run(cfg.ListenAddr); err != nil {
		log.Fatal(err)
	}
}
