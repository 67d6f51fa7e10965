package main

import (
	"errors"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"mise.backend/internal/config"
	plog "mise.backend/pkg/logger"
)

func withMainHooks(t *testing.T) {
	t.Helper()
	origLoadDotenv := loadDotenv
	origLoadCfg := loadCfg
	origInitLog := initLog
	origInitRedis := initRedis
	origOpenDB := openDB
	origMigrateDB := migrateDB
	origRunServer := runServer
	origGetStdDB := getStdDB

	t.Cleanup(func() {
		loadDotenv = origLoadDotenv
		loadCfg = origLoadCfg
		initLog = origInitLog
		initRedis = origInitRedis
		openDB = origOpenDB
		migrateDB = origMigrateDB
		runServer = origRunServer
		getStdDB = origGetStdDB
	})

	loadDotenv = func(...string) error { return nil }
	loadCfg = baseTestConfig
	initLog = plog.Init
	initRedis = func(string, string) error { return nil }
}

func baseTestConfig() *config.Config {
	return &config.Config{
		Server: config.ServerConfig{
			Port:        "18080",
			Env:         "development",
			CORSOrigins: []string{"*"},
		},
		Database: config.DatabaseConfig{
			Host:        "localhost",
			Port:        5432,
			User:        "postgres",
			Password:    "postgres",
			DBName:      "mise",
			SSLMode:     "disable",
			AutoMigrate: true,
		},
		Redis: config.RedisConfig{
			URL: "redis://localhost:6379",
		},
		Auth: config.AuthConfig{
			Secret:      "test-secret",
			Issuer:      "https://auth.mise.test",
			TokenExpiry: time.Hour,
		},
		Options: config.OptionsConfig{
			CacheTTL: time.Minute,
		},
	}
}

func openSQLite(t *testing.T) func(config.DatabaseConfig) (*gorm.DB, error) {
	name := strings.NewReplacer("/", "_", " ", "_").Replace(t.Name())
	dsn := fmt.Sprintf("file:%s_%d?mode=memory&cache=shared", name, time.Now().UnixNano())
	return func(config.DatabaseConfig) (*gorm.DB, error) {
		return gorm.Open(sqlite.Open(dsn), &gorm.Config{TranslateError: true})
	}
}

func TestRunMainProcess_RedisInitError(t *testing.T) {
	withMainHooks(t)
	initRedis = func(string, string) error { return errors.New("redis down") }

	err := runMainProcess()
	if err == nil || !strings.Contains(err.Error(), "failed to initialize redis") {
		t.Fatalf("expected redis init error, got %v", err)
	}
}

func TestRunMainProcess_DBOpenError(t *testing.T) {
	withMainHooks(t)
	openDB = func(config.DatabaseConfig) (*gorm.DB, error) { return nil, errors.New("db open failed") }

	err := runMainProcess()
	if err == nil || !strings.Contains(err.Error(), "failed to connect to database") {
		t.Fatalf("expected db open error, got %v", err)
	}
}

func TestRunMainProcess_MigrateError(t *testing.T) {
	withMainHooks(t)
	openDB = openSQLite(t)
	migrateDB = func(*gorm.DB) error { return errors.New("bad schema") }
	runServer = func(*gin.Engine, string) error {
		t.Fatal("server must not start")
		return nil
	}

	err := runMainProcess()
	if err == nil || !strings.Contains(err.Error(), "failed to migrate database") {
		t.Fatalf("expected migrate error, got %v", err)
	}
}

func TestRunMainProcess_SkipsMigrationWhenDisabled(t *testing.T) {
	withMainHooks(t)
	loadCfg = func() *config.Config {
		cfg := baseTestConfig()
		cfg.Database.AutoMigrate = false
		return cfg
	}
	openDB = openSQLite(t)
	migrateDB = func(*gorm.DB) error { return errors.New("should not run") }
	runServer = func(*gin.Engine, string) error { return nil }

	if err := runMainProcess(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestRunMainProcess_ServerRunError(t *testing.T) {
	withMainHooks(t)
	openDB = openSQLite(t)
	runServer = func(*gin.Engine, string) error { return errors.New("listen failed") }

	err := runMainProcess()
	if err == nil || !strings.Contains(err.Error(), "failed to start server") {
		t.Fatalf("expected server run error, got %v", err)
	}
}

func TestRunMainProcess_SuccessPath(t *testing.T) {
	withMainHooks(t)
	openDB = openSQLite(t)

	var port string
	var routes int
	runServer = func(r *gin.Engine, p string) error {
		port = p
		routes = len(r.Routes())
		return nil
	}

	if err := runMainProcess(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if port != "18080" {
		t.Fatalf("unexpected port %q", port)
	}
	if routes < 30 {
		t.Fatalf("expected the full route table, got %d routes", routes)
	}
}
