package main

import (
	"context"
	"net/http"
	"time"

	"echoprep/config"
	"echoprep/database"
	_ "echoprep/docs" // Swagger docs - auto-generated
	"echoprep/internal/controller"
	"echoprep/internal/logger"
	"echoprep/internal/model"
	"echoprep/internal/progression"
	"echoprep/internal/prompts"
	"echoprep/internal/repository"
	"echoprep/internal/service"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/fx"
	"gorm.io/gorm"
)

// @title EchoPrep API
// @version 1.0
// @description Mock-interview coaching API: configure an interview, answer AI-generated questions one at a time and receive a structured performance report.
// @host localhost:8080
// @BasePath /api/v1
// @schemes http https
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	logger.Init()

	app := fx.New(
		// Core application components
		fx.Provide(
			config.NewConfig,
			database.NewDatabase, // Provides *gorm.DB
			NewGinEngine,         // Provides *gin.Engine
			prompts.NewManager,
			progression.NewRegistry,
		),

		// Repositories layer
		fx.Provide(
			repository.NewUserRepository,
			repository.NewInterviewRepository,
			repository.NewSessionRepository,
		),

		// Services layer
		fx.Provide(
			service.NewAuthService,
			service.NewGeminiLLMService,
			service.NewInterviewService,
			service.NewSessionService,
			service.NewSpeechService,
		),

		// API controllers layer
		fx.Provide(
			controller.NewAuthController,
			controller.NewInterviewController,
			controller.NewSessionController,
			controller.NewSpeechController,
		),

		fx.Invoke(RegisterRoutesAndStartServer),
		fx.Invoke(AutoMigrateDB),
	)

	if err := app.Start(context.Background()); err != nil {
		log.Fatal().Err(err).Msg("Failed to start application")
	}

	<-app.Done()
	log.Info().Msg("Application shutting down gracefully...")
}

func NewGinEngine() *gin.Engine {
	r := gin.New()

	// Funnel gin request logs through zerolog
	r.Use(gin.LoggerWithFormatter(func(param gin.LogFormatterParams) string {
		log.Info().
			Str("client_ip", param.ClientIP).
			Str("method", param.Method).
			Str("path", param.Path).
			Int("status_code", param.StatusCode).
			Dur("latency", param.Latency).
			Str("error_message", param.ErrorMessage).
			Msg("gin_request")
		return ""
	}))
	r.Use(gin.Recovery())

	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"}, // Be more specific in production
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	// Swagger UI at /swagger/index.html
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	return r
}

// RegisterRoutesAndStartServer configures API routes and manages server lifecycle.
func RegisterRoutesAndStartServer(
	lc fx.Lifecycle,
	router *gin.Engine,
	cfg *config.Config,
	authService service.AuthService,
	authCtrl *controller.AuthController,
	interviewCtrl *controller.InterviewController,
	sessionCtrl *controller.SessionController,
	speechCtrl *controller.SpeechController,
) {
	api := router.Group("/api/v1")
	{
		authGroup := api.Group("/auth")
		authGroup.POST("/register", authCtrl.Register)
		authGroup.POST("/login", authCtrl.Login)

		authed := api.Group("")
		authed.Use(controller.RequireAuth(authService))
		{
			authed.POST("/interviews", interviewCtrl.Create)
			authed.GET("/interviews", interviewCtrl.List)
			authed.GET("/interviews/:interview_id", interviewCtrl.Get)
			authed.GET("/stats", interviewCtrl.Stats)
			authed.POST("/setup-chat", interviewCtrl.SetupChat)

			authed.POST("/interviews/:interview_id/session/start", sessionCtrl.Start)
			authed.GET("/interviews/:interview_id/session/current", sessionCtrl.Current)
			authed.POST("/interviews/:interview_id/session/answer", sessionCtrl.Answer)
			authed.POST("/interviews/:interview_id/session/skip", sessionCtrl.Skip)
			authed.GET("/interviews/:interview_id/report", sessionCtrl.Report)

			authed.POST("/speech/synthesize", speechCtrl.Synthesize)
			authed.POST("/speech/transcribe", speechCtrl.Transcribe)
		}
	}

	server := &http.Server{
		Addr:    ":" + cfg.Server.Port,
		Handler: router,
	}

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			log.Info().Msgf("EchoPrep API server starting on port %s", cfg.Server.Port)
			go func() {
				if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
					log.Fatal().Err(err).Msg("Server ListenAndServe failed")
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			log.Info().Msg("Server shutting down...")
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
			defer cancel()
			return server.Shutdown(shutdownCtx)
		},
	})
}

func AutoMigrateDB(db *gorm.DB) error {
	log.Info().Msg("Running database migrations...")
	err := db.AutoMigrate(
		&model.User{},
		&model.Interview{},
		&model.InterviewSession{},
	)
	if err != nil {
		log.Error().Err(err).Msg("Database migration failed")
		return err
	}
	log.Info().Msg("Database migration completed successfully.")
	return nil
}
