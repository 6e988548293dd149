package main

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"strconv"
	"time"

	"parcelcarrier/cmd"
	httpadapter "parcelcarrier/internal/adapters/in/http"
	"parcelcarrier/internal/adapters/out/postgres/accountrepo"
	"parcelcarrier/internal/adapters/out/postgres/parcelrepo"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/labstack/gommon/log"
	_ "github.com/lib/pq"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func main() {
	configs := getConfigs()

	createDbIfNotExists(configs.DBHost, configs.DBPort, configs.DBUser,
		configs.DBPassword, configs.DBName, configs.DBSslMode)

	gormDB := mustConnectDB(configs)
	migrateDB(gormDB)

	app, err := cmd.NewCompositionRoot(configs, gormDB)
	if err != nil {
		log.Fatalf("Failed to build composition root: %v", err)
	}

	if err := app.SeedDefaultAdmin(context.Background()); err != nil {
		log.Fatalf("Failed to seed default admin: %v", err)
	}

	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	jobManager := app.CreateJobManager(configs.StaleParcelThreshold, logger)
	if err := jobManager.StartAll(); err != nil {
		log.Fatalf("Failed to start background jobs: %v", err)
	}
	defer jobManager.StopAll()

	startWebServer(&app, configs.HTTPPort)
}

func getConfigs() cmd.Config {
	config := cmd.Config{
		HTTPPort:             goDotEnvVariable("HTTP_PORT"),
		DBHost:               goDotEnvVariable("DB_HOST"),
		DBPort:               goDotEnvVariable("DB_PORT"),
		DBUser:               goDotEnvVariable("DB_USER"),
		DBPassword:           goDotEnvVariable("DB_PASSWORD"),
		DBName:               goDotEnvVariable("DB_NAME"),
		DBSslMode:            goDotEnvVariable("DB_SSLMODE"),
		JWTSecret:            goDotEnvVariable("JWT_SECRET"),
		JWTIssuer:            goDotEnvVariable("JWT_ISSUER"),
		JWTTTL:               durationEnvVariable("JWT_TTL_MINUTES", 24*60) * time.Minute,
		DefaultAdminLogin:    goDotEnvVariable("DEFAULT_ADMIN_LOGIN"),
		DefaultAdminPassword: goDotEnvVariable("DEFAULT_ADMIN_PASSWORD"),
		StaleParcelThreshold: durationEnvVariable("STALE_PARCEL_THRESHOLD_HOURS", 24) * time.Hour,
	}
	return config
}

func goDotEnvVariable(key string) string {
	err := godotenv.Load(".env")
	if err != nil {
		log.Fatalf("Error loading .env file")
	}
	return os.Getenv(key)
}

func durationEnvVariable(key string, fallback int64) time.Duration {
	raw := goDotEnvVariable(key)
	if raw == "" {
		return time.Duration(fallback)
	}

	value, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		log.Fatalf("Invalid value for %s: %v", key, err)
	}
	return time.Duration(value)
}

func createDbIfNotExists(host, port, user, password, dbName, sslMode string) {
	dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=postgres sslmode=%s",
		host, port, user, password, sslMode)

	db, err := sql.Open("postgres", dsn)
	if err != nil {
		log.Fatalf("Failed to connect to postgres: %v", err)
	}
	defer db.Close()

	var exists bool
	err = db.QueryRow("SELECT EXISTS(SELECT 1 FROM pg_database WHERE datname = $1)", dbName).Scan(&exists)
	if err != nil {
		log.Fatalf("Failed to check database existence: %v", err)
	}

	if !exists {
		_, err = db.Exec(fmt.Sprintf("CREATE DATABASE %s", dbName))
		if err != nil {
			log.Fatalf("Failed to create database: %v", err)
		}
	}
}

func mustConnectDB(configs cmd.Config) *gorm.DB {
	dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		configs.DBHost, configs.DBPort, configs.DBUser,
		configs.DBPassword, configs.DBName, configs.DBSslMode)

	gormDB, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	return gormDB
}

func migrateDB(gormDB *gorm.DB) {
	err := gormDB.AutoMigrate(&parcelrepo.ParcelDTO{}, &accountrepo.AccountDTO{})
	if err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}
}

func startWebServer(app *cmd.CompositionRoot, port string) {
	e := echo.New()
	e.Use(middleware.Logger())
	e.Use(middleware.Recover())

	e.GET("/health", func(c echo.Context) error {
		return c.String(http.StatusOK, "Healthy")
	})

	server := httpadapter.NewServer(
		app.CreateAuthenticateCommandHandler(),
		app.CreateCreateParcelCommandHandler(),
		app.CreateUpdateParcelCommandHandler(),
		app.CreateAssignParcelCommandHandler(),
		app.CreateChangeParcelStatusCommandHandler(),
		app.CreateDeleteParcelCommandHandler(),
		app.CreateCreateTransporterCommandHandler(),
		app.CreateUpdateTransporterCommandHandler(),
		app.CreateDeactivateTransporterCommandHandler(),
		app.CreateActivateAccountCommandHandler(),
		app.CreateGetParcelsQueryHandler(),
		app.CreateGetUsersQueryHandler(),
		app.TokenProvider(),
	)
	server.RegisterRoutes(e)

	e.Logger.Fatal(e.Start(fmt.Sprintf("0.0.0.0:%s", port)))
}
