package main

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
	"github.com/saripudin14/siwate/config"
	"github.com/saripudin14/siwate/database"
	_ "github.com/saripudin14/siwate/docs" // Swagger docs
	accountctrl "github.com/saripudin14/siwate/internal/controller/account"
	adminctrl "github.com/saripudin14/siwate/internal/controller/admin"
	userctrl "github.com/saripudin14/siwate/internal/controller/user"
	"github.com/saripudin14/siwate/internal/logger"
	"github.com/saripudin14/siwate/internal/middleware"
	"github.com/saripudin14/siwate/internal/model"
	"github.com/saripudin14/siwate/internal/repository"
	"github.com/saripudin14/siwate/internal/service"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/fx"
	"gorm.io/gorm"
)

// @title Siwate Interview Practice API
// @version 1.0
// @description Mock job-interview practice with AI-scored answers and a trainable local model.
// @host localhost:8080
// @BasePath /api/v1
// @schemes http https
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	logger.Init()

	app := fx.New(
		fx.Provide(
			config.NewConfig,
			database.NewDatabase,
			NewGinEngine,
		),

		fx.Provide(
			repository.NewUserRepository,
			repository.NewQuestionRepository,
			repository.NewResultRepository,
			repository.NewDatasetRepository,
		),

		fx.Provide(
			service.NewAuthService,
			service.NewQuestionService,
			service.NewLocalRegressorService,
			service.NewDatasetService,
			// The active scoring backend is chosen once at startup. The
			// local regressor is always constructed so the admin training
			// endpoints work regardless of which backend scores answers.
			func(cfg *config.Config, local service.LocalRegressorService) service.ScoringService {
				if cfg.Scoring.Backend == "local" {
					log.Info().Msg("Scoring backend: local regression model")
					return local
				}
				log.Info().Msg("Scoring backend: Gemini")
				return service.NewGeminiJudgeService(cfg)
			},
			func(
				questionRepo repository.QuestionRepository,
				resultRepo repository.ResultRepository,
				scorer service.ScoringService,
				db *gorm.DB,
			) service.InterviewService {
				return service.NewInterviewService(questionRepo, resultRepo, scorer, db)
			},
		),

		fx.Provide(
			accountctrl.NewAccountController,
			userctrl.NewInterviewController,
			adminctrl.NewAdminController,
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
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	// URL: http://localhost:PORT/swagger/index.html
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	return r
}

// RegisterRoutesAndStartServer configures API routes and manages server lifecycle.
func RegisterRoutesAndStartServer(
	lc fx.Lifecycle,
	router *gin.Engine,
	cfg *config.Config,
	accountCtrl *accountctrl.AccountController,
	interviewCtrl *userctrl.InterviewController,
	adminCtrl *adminctrl.AdminController,
) {
	api := router.Group("/api/v1")
	{
		api.POST("/register", accountCtrl.Register)
		api.POST("/login", accountCtrl.Login)
	}

	authed := api.Group("")
	authed.Use(middleware.JWTProtected(cfg.Auth.JWTSecret))
	{
		authed.GET("/questions", interviewCtrl.GetAllQuestions)
		authed.GET("/questions/random", interviewCtrl.GetRandomQuestion)

		authed.POST("/interviews", interviewCtrl.SubmitAnswer)
		authed.GET("/interviews", interviewCtrl.GetHistory)
		authed.GET("/interviews/:id", interviewCtrl.GetResult)
		authed.DELETE("/interviews/:id", interviewCtrl.DeleteResult)
	}

	adminGroup := api.Group("/admin")
	adminGroup.Use(middleware.JWTProtected(cfg.Auth.JWTSecret), middleware.RequireRole(model.RoleAdmin))
	{
		adminGroup.POST("/questions", adminCtrl.CreateQuestion)
		adminGroup.GET("/questions", adminCtrl.GetAllQuestions)
		adminGroup.DELETE("/questions/:id", adminCtrl.DeleteQuestion)

		adminGroup.POST("/dataset", adminCtrl.CreateDatasetExample)
		adminGroup.GET("/dataset", adminCtrl.GetAllDatasetExamples)
		adminGroup.DELETE("/dataset/:id", adminCtrl.DeleteDatasetExample)
		adminGroup.POST("/dataset/train", adminCtrl.TrainModel)
	}

	server := &http.Server{
		Addr:    ":" + cfg.Server.Port,
		Handler: router,
	}

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			log.Info().Msgf("Interview API server starting on port %s", cfg.Server.Port)
			log.Info().Msgf("Swagger UI available at http://localhost:%s/swagger/index.html", cfg.Server.Port)
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
		&model.Question{},
		&model.Answer{},
		&model.InterviewResult{},
		&model.Dataset{},
	)
	if err != nil {
		log.Error().Err(err).Msg("Database migration failed")
		return err
	}
	log.Info().Msg("Database migration completed successfully.")
	return nil
}
