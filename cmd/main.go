package main

import (
	"context"
	"net/http"

	"github.com/gorilla/mux"
	cron "github.com/robfig/cron/v3"
	"github.com/rs/cors"

	"github.com/joanna-bieganowska/Profilaktykarz/internal/app"
	"github.com/joanna-bieganowska/Profilaktykarz/internal/config"
	"github.com/joanna-bieganowska/Profilaktykarz/internal/controllers"
	"github.com/joanna-bieganowska/Profilaktykarz/internal/middleware"
	"github.com/joanna-bieganowska/Profilaktykarz/internal/repositories"
	"github.com/joanna-bieganowska/Profilaktykarz/internal/routes"
	"github.com/joanna-bieganowska/Profilaktykarz/internal/services"
	"github.com/joanna-bieganowska/Profilaktykarz/internal/utils"
)

// newRouter mounts all endpoints. Protected paths live on their own
// subrouter of the API prefix so the auth gate runs only for them; paths
// registered on a subrouter are relative to its prefix.
func newRouter(
	authController *controllers.AuthController,
	userController *controllers.UserController,
	factorController *controllers.FactorController,
	healthController *controllers.HealthController,
	authGate mux.MiddlewareFunc,
) *mux.Router {
	router := mux.NewRouter()

	// Health
	router.HandleFunc(routes.Health, healthController.HealthCheckHandler).Methods("GET")

	// Public endpoints
	api := router.PathPrefix(routes.API).Subrouter()
	api.HandleFunc(routes.UsersRegister, authController.Register).Methods("POST")
	api.HandleFunc(routes.UsersLogin, authController.Login).Methods("POST")

	// Protected endpoints require a valid token
	protected := router.PathPrefix(routes.API).Subrouter()
	protected.Use(authGate)
	protected.HandleFunc(routes.UsersLogout, authController.Logout).Methods("POST")
	protected.HandleFunc(routes.UsersEdit, userController.EditUser).Methods("POST")
	protected.HandleFunc(routes.Factors, factorController.GetFactors).Methods("GET")
	protected.HandleFunc(routes.Factors, factorController.UpdateFactors).Methods("POST")

	return router
}

func main() {
	utils.InitLogger(config.AppName)
	cfg := config.LoadConfig()

	application, err := app.NewApp(cfg)
	if err != nil {
		utils.Logger.Fatal("Failed to initialize application:", err)
	}
	defer application.Close()

	//----------------------------------------------------------------------
	// Repositories
	//----------------------------------------------------------------------
	userRepo := repositories.NewUserRepository(application.DB)
	blocklistRepo := repositories.NewTokenBlocklistRepository(application.DB)
	factorRepo := repositories.NewFactorRepository(application.DB)
	medicalInfoRepo := repositories.NewMedicalInfoRepository(application.DB)

	//----------------------------------------------------------------------
	// Services
	//----------------------------------------------------------------------
	jwtService := services.NewJWTService(cfg.JWTSecret, cfg.TokenExpiry)
	authService := services.NewAuthService(userRepo, blocklistRepo, jwtService)
	factorService := services.NewFactorService(factorRepo, medicalInfoRepo)
	blocklistCleanupService := services.NewBlocklistCleanupService(blocklistRepo, config.BlocklistRetention)

	//----------------------------------------------------------------------
	// Controllers
	//----------------------------------------------------------------------
	authController := controllers.NewAuthController(authService)
	userController := controllers.NewUserController(authService)
	factorController := controllers.NewFactorController(factorService)
	healthController := controllers.NewHealthController(application.DB)

	//----------------------------------------------------------------------
	// Router & Endpoints
	//----------------------------------------------------------------------
	router := newRouter(
		authController,
		userController,
		factorController,
		healthController,
		middleware.AuthMiddleware(cfg.JWTSecret, userRepo, blocklistRepo),
	)

	//----------------------------------------------------------------------
	// Setup daily blocklist cleanup via cron
	//----------------------------------------------------------------------
	c := cron.New()

	_, schErr := c.AddFunc("5 3 * * *", func() {
		if e := blocklistCleanupService.CleanupDaily(context.Background()); e != nil {
			utils.Logger.WithError(e).Error("Scheduled token blocklist cleanup failed")
		}
	})
	if schErr != nil {
		utils.Logger.WithError(schErr).Fatal("Failed to schedule token blocklist cleanup job")
	}

	c.Start()

	co := cors.New(cors.Options{
		AllowedOrigins:   []string{cfg.AppUrl},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Authorization", "Content-Type"},
		AllowCredentials: true,
	})

	utils.Logger.Infof("Starting %s on port: %s", cfg.AppName, cfg.AppPort)
	if err := http.ListenAndServe(":"+cfg.AppPort, co.Handler(router)); err != nil {
		utils.Logger.Fatal("Failed to start server:", err)
	}
}
