package main

import (
	"context"
	"net/http"
	"time"

	"github.com/dang-hang/CheckPointAI/config"
	"github.com/dang-hang/CheckPointAI/database"
	_ "github.com/dang-hang/CheckPointAI/docs" // Swagger docs
	adminctrl "github.com/dang-hang/CheckPointAI/internal/controller/admin"
	teacherctrl "github.com/dang-hang/CheckPointAI/internal/controller/teacher"
	userctrl "github.com/dang-hang/CheckPointAI/internal/controller/user"
	"github.com/dang-hang/CheckPointAI/internal/logger"
	"github.com/dang-hang/CheckPointAI/internal/model"
	"github.com/dang-hang/CheckPointAI/internal/repository"
	"github.com/dang-hang/CheckPointAI/internal/service"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/fx"
	"gorm.io/gorm"
)

// @title CheckPoint AI Education API
// @version 1.0
// @description Test practice, AI writing feedback, and class management for Cambridge curriculum students.
// @contact.name API Support
// @contact.email support@example.com
// @host localhost:8080
// @BasePath /api/v1
// @schemes http https
func main() {
	logger.Init()

	app := fx.New(
		// Core application components
		fx.Provide(
			config.NewConfig,
			database.NewDatabase,
			NewGinEngine,
		),

		// Repositories layer
		fx.Provide(
			repository.NewTestRepository,
			repository.NewPrivilegedTestRepository,
			repository.NewTestResultRepository,
			repository.NewWritingPromptRepository,
			repository.NewWritingSubmissionRepository,
			repository.NewClassRepository,
		),

		// Services layer
		fx.Provide(
			service.NewGeminiLLMService,
			service.NewValidationService,
			service.NewTestService,
			service.NewResultService,
			service.NewWritingService,
			service.NewClassService,
			service.NewReportService,
			service.NewAdminTestService,
		),

		// API controllers layer
		fx.Provide(
			userctrl.NewTestController,
			userctrl.NewResultController,
			userctrl.NewWritingController,
			teacherctrl.NewTeacherController,
			adminctrl.NewAdminTestController,
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

	// Route gin's request log through zerolog.
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

	// Swagger UI at /swagger/index.html
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	return r
}

// RegisterRoutesAndStartServer configures API routes and manages the server lifecycle.
func RegisterRoutesAndStartServer(
	lc fx.Lifecycle,
	router *gin.Engine,
	cfg *config.Config,
	testCtrl *userctrl.TestController,
	resultCtrl *userctrl.ResultController,
	writingCtrl *userctrl.WritingController,
	teacherCtrl *teacherctrl.TeacherController,
	adminTestCtrl *adminctrl.AdminTestController,
) {
	apiV1 := router.Group("/api/v1")
	{
		testCtrl.RegisterRoutes(apiV1)
		resultCtrl.RegisterRoutes(apiV1)
		writingCtrl.RegisterRoutes(apiV1)
		teacherCtrl.RegisterRoutes(apiV1)
		adminTestCtrl.RegisterRoutes(apiV1)
	}

	server := &http.Server{
		Addr:    ":" + cfg.Server.Port,
		Handler: router,
	}

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			log.Info().Msgf("CheckPoint AI server starting on port %s", cfg.Server.Port)
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
		&model.Test{},
		&model.TestResult{},
		&model.WritingPrompt{},
		&model.WritingSubmission{},
		&model.Class{},
		&model.Profile{},
		&model.StudentClass{},
		&model.TeacherClass{},
	)
	if err != nil {
		log.Error().Err(err).Msg("Database migration failed")
		return err
	}
	log.Info().Msg("Database migration completed successfully.")
	return nil
}
