package main

import (
	"context"
	"database/sql"
	"fmt"
	"log"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"mise.backend/internal/config"
	"mise.backend/internal/domain/matching"
	"mise.backend/internal/infrastructure/datasources/postgres"
	"mise.backend/internal/infrastructure/models"
	"mise.backend/internal/infrastructure/repositories"
	"mise.backend/internal/interfaces/http/handlers"
	"mise.backend/internal/interfaces/http/middleware"
	"mise.backend/internal/usecases"
	"mise.backend/pkg/jwt"
	"mise.backend/pkg/logger"
	"mise.backend/pkg/redis"
)

var (
	loadDotenv = godotenv.Load
	loadCfg    = config.Load
	initLog    = logger.Init
	initRedis  = redis.Init
	openDB     = postgres.NewConnection
	migrateDB  = func(db *gorm.DB) error { return db.AutoMigrate(models.All()...) }
	runServer  = func(r *gin.Engine, port string) error { return r.Run(":" + port) }
	getStdDB   = func(db *gorm.DB) (*sql.DB, error) { return db.DB() }
)

func main() {
	if err := runMainProcess(); err != nil {
		log.Fatal(err)
	}
}

func runMainProcess() error {
	// Load .env file
	if err := loadDotenv(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	cfg := loadCfg()

	initLog(cfg.Server.Env)
	logger.Info(context.Background(), "Logger initialized", zap.String("env", cfg.Server.Env))

	if err := initRedis(cfg.Redis.URL, cfg.Redis.PASSWORD); err != nil {
		logger.Error(context.Background(), "Failed to initialize Redis", zap.Error(err))
		return fmt.Errorf("failed to initialize redis: %w", err)
	}
	defer redis.Close()
	logger.Info(context.Background(), "Redis initialized")

	if cfg.Server.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	db, err := openDB(cfg.Database)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	sqlDB, err := getStdDB(db)
	if err != nil {
		return fmt.Errorf("failed to get generic database object: %w", err)
	}
	defer sqlDB.Close()

	if cfg.Database.AutoMigrate {
		if err := migrateDB(db); err != nil {
			return fmt.Errorf("failed to migrate database: %w", err)
		}
		logger.Info(context.Background(), "Database schema migrated")
	}

	r := newRouter(cfg, db)

	logger.Info(context.Background(), "Server starting",
		zap.String("port", cfg.Server.Port),
		zap.Int("routes", len(r.Routes())),
	)

	if err := runServer(r, cfg.Server.Port); err != nil {
		return fmt.Errorf("failed to start server: %w", err)
	}
	return nil
}

func buildRouteDeps(cfg *config.Config, db *gorm.DB) routeDeps {
	talentRepo := repositories.NewTalentRepository(db)
	skillRepo := repositories.NewSkillRepository(db)
	languageRepo := repositories.NewLanguageRepository(db)
	teamRepo := repositories.NewTeamRepository(db)
	memberRepo := repositories.NewTeamMemberRepository(db)
	postingRepo := repositories.NewJobPostingRepository(db)
	appRepo := repositories.NewApplicationRepository(db)
	matchRepo := repositories.NewMatchRepository(db)
	optionRepo := repositories.NewPredefinedOptionRepository(db)
	uow := repositories.NewUnitOfWork(db)

	policy := usecases.LifecyclePolicy{
		AllowReapply:             cfg.Lifecycle.AllowReapply,
		TalentTerminationCleanup: cfg.Lifecycle.TalentTerminationCleanup,
	}
	optionCache := redis.NewJSONCache("options", cfg.Options.CacheTTL)

	talentUsecase := usecases.NewTalentUsecase(talentRepo, skillRepo, languageRepo, memberRepo, appRepo, matchRepo, uow)
	searchUsecase := usecases.NewTalentSearchUsecase(talentRepo, skillRepo, languageRepo, memberRepo)
	teamUsecase := usecases.NewTeamUsecase(teamRepo, memberRepo, talentRepo, postingRepo, appRepo, matchRepo, uow)
	postingUsecase := usecases.NewJobPostingUsecase(postingRepo, teamRepo, skillRepo, talentRepo, memberRepo, matching.NewScorer())
	appUsecase := usecases.NewApplicationUsecase(appRepo, matchRepo, postingRepo, teamRepo, memberRepo, talentRepo, skillRepo, languageRepo, uow, policy)
	matchUsecase := usecases.NewMatchUsecase(matchRepo, teamRepo, postingRepo, memberRepo, talentRepo, uow, policy)
	optionUsecase := usecases.NewPredefinedOptionUsecase(optionRepo, uow, optionCache)

	jwtService := jwt.NewJWTService(cfg.Auth.Secret, cfg.Auth.Issuer, cfg.Auth.TokenExpiry)

	return routeDeps{
		talentHandler:      handlers.NewTalentHandler(talentUsecase, searchUsecase),
		teamHandler:        handlers.NewTeamHandler(teamUsecase),
		jobPostingHandler:  handlers.NewJobPostingHandler(postingUsecase),
		applicationHandler: handlers.NewApplicationHandler(appUsecase),
		matchHandler:       handlers.NewMatchHandler(matchUsecase),
		optionHandler:      handlers.NewOptionHandler(optionUsecase),
		identity:           middleware.IdentityMiddleware(jwtService),
		adminKey:           middleware.AdminKeyMiddleware(cfg.Admin.KeyHash),
	}
}
