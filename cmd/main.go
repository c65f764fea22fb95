package main

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/hireai/hireai/config"
	"github.com/hireai/hireai/database"
	_ "github.com/hireai/hireai/docs" // Swagger docs
	candidatectrl "github.com/hireai/hireai/internal/controller/candidate"
	hrctrl "github.com/hireai/hireai/internal/controller/hr"
	vpctrl "github.com/hireai/hireai/internal/controller/vp"
	"github.com/hireai/hireai/internal/logger"
	"github.com/hireai/hireai/internal/middleware"
	"github.com/hireai/hireai/internal/model"
	"github.com/hireai/hireai/internal/repository"
	"github.com/hireai/hireai/internal/service"
	"github.com/rs/zerolog/log"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/fx"
	"gorm.io/gorm"
)

// @title HireAI Recruiting API
// @version 1.0
// @description AI-assisted recruiting pipeline: resume screening, proctored interviews, aptitude exams and offer management.
// @contact.name API Support
// @license.name Apache 2.0
// @license.url http://www.apache.org/licenses/LICENSE-2.0.html
// @host localhost:8080
// @BasePath /api/v1
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @schemes http https
func main() {
	logger.Init()

	app := fx.New(
		fx.Provide(
			config.NewConfig,
			database.NewDatabase,
			NewGinEngine,
		),

		fx.Provide(
			NewCandidateStore,
			repository.NewUserRepository,
		),

		fx.Provide(
			service.NewGeminiAIService,
			service.NewMailerService,
			service.NewAuthService,
			service.NewScreeningService,
			service.NewPipelineService,
			service.NewAccessService,
			service.NewProctorService,
		),

		fx.Provide(
			candidatectrl.NewCandidateController,
			hrctrl.NewHRController,
			vpctrl.NewVPController,
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

// NewCandidateStore selects the candidate store backend from config. The
// postgres store is the default; file and remote stores serve single-node
// and hosted-JSON deployments.
func NewCandidateStore(cfg *config.Config, db *gorm.DB) repository.CandidateRepository {
	switch cfg.Store.Backend {
	case "file":
		log.Info().Str("path", cfg.Store.FilePath).Msg("Using file candidate store")
		return repository.NewFileCandidateRepository(cfg.Store.FilePath)
	case "remote":
		log.Info().Str("url", cfg.Store.RemoteURL).Msg("Using remote candidate store")
		return repository.NewRemoteCandidateRepository(cfg.Store.RemoteURL, cfg.Store.RemoteToken)
	default:
		return repository.NewCandidateRepository(db)
	}
}

func NewGinEngine() *gin.Engine {
	gin.SetMode(gin.DebugMode)

	r := gin.New()

	r.Use(gin.LoggerWithFormatter(func(param gin.LogFormatterParams) string {
		log.Info().
			Str("client_ip", param.ClientIP).
			Str("method", param.Method).
			Str("path", param.Path).
			Int("status_code", param.StatusCode).
			Dur("latency", param.Latency).
			Str("user_agent", param.Request.UserAgent()).
			Str("error_message", param.ErrorMessage).
			Msg("gin_request")
		return ""
	}))
	r.Use(gin.Recovery())

	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	return r
}

// RegisterRoutesAndStartServer configures API routes and manages server lifecycle.
func RegisterRoutesAndStartServer(
	lc fx.Lifecycle,
	router *gin.Engine,
	cfg *config.Config,
	authSvc service.AuthService,
	candidateCtrl *candidatectrl.CandidateController,
	hrCtrl *hrctrl.HRController,
	vpCtrl *vpctrl.VPController,
) {
	apiV1 := router.Group("/api/v1")
	{
		apiV1.POST("/auth/login", hrCtrl.Login)
		apiV1.POST("/candidates/apply", candidateCtrl.Apply)
		apiV1.POST("/access/verify", candidateCtrl.VerifyAccess)
		apiV1.POST("/candidates/:id/offer/accept", candidateCtrl.AcceptOffer)

		sessions := apiV1.Group("/sessions")
		sessions.POST("", candidateCtrl.CreateSession)
		sessions.POST("/:id/start", candidateCtrl.StartSession)
		sessions.GET("/:id", candidateCtrl.GetSession)
		sessions.POST("/:id/answers", candidateCtrl.SubmitAnswer)
		sessions.POST("/:id/events", candidateCtrl.ReportEvent)
		sessions.POST("/:id/aptitude", candidateCtrl.SubmitAptitude)
	}

	hrGroup := router.Group("/api/v1", middleware.RequireAuth(authSvc, model.RoleHR, model.RoleVP))
	{
		hrGroup.GET("/candidates", hrCtrl.ListCandidates)
		hrGroup.GET("/candidates/:id", hrCtrl.GetCandidate)
		hrGroup.PATCH("/candidates/:id", hrCtrl.UpdateCandidate)
		hrGroup.POST("/screening/batch", hrCtrl.BatchScreen)
		hrGroup.POST("/candidates/:id/schedule-aptitude", hrCtrl.ScheduleAptitude)
		hrGroup.POST("/candidates/:id/schedule-round2", hrCtrl.ScheduleRoundTwo)
		hrGroup.POST("/candidates/:id/advance", hrCtrl.Advance)
		hrGroup.GET("/leaderboard", hrCtrl.Leaderboard)
	}

	vpGroup := router.Group("/api/v1/vp", middleware.RequireAuth(authSvc, model.RoleVP))
	{
		vpGroup.GET("/pending", vpCtrl.PendingApproval)
		vpGroup.POST("/candidates/:id/sign", vpCtrl.SignOffer)
	}

	server := &http.Server{
		Addr:    ":" + cfg.Server.Port,
		Handler: router,
	}

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			log.Info().Msgf("HireAI API server starting on port %s", cfg.Server.Port)
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

// AutoMigrateDB migrates the relational models and seeds the portal
// accounts. Users always live in postgres, even when the candidate store
// runs on the file or remote backend.
func AutoMigrateDB(db *gorm.DB, authSvc service.AuthService) error {
	log.Info().Msg("Running database migrations...")
	if err := db.AutoMigrate(
		&model.Candidate{},
		&model.User{},
	); err != nil {
		log.Error().Err(err).Msg("Database migration failed")
		return err
	}
	log.Info().Msg("Database migration completed successfully.")
	authSvc.SeedDefaultUsers()
	return nil
}
