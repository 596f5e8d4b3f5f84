package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"

	"pedidos/cmd"
	"pedidos/internal/adapters/out/postgres/fornecedorrepo"
	"pedidos/internal/adapters/out/postgres/pedidorepo"
	"pedidos/internal/adapters/out/postgres/userrepo"
	"pedidos/internal/jobs"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/gommon/log"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func main() {
	configs := getConfigs()
	logger := slog.New(slog.NewTextHandler(os.Stdout, nil))

	gormDB := mustConnectDB(configs)

	app, err := cmd.NewCompositionRoot(configs, gormDB)
	if err != nil {
		log.Fatalf("Failed to build composition root: %v", err)
	}

	ctx := context.Background()
	if err = app.SeedDefaultUsers(ctx); err != nil {
		log.Fatalf("Failed to seed default users: %v", err)
	}

	purged, err := app.PurgeExpiredPedidos(ctx)
	if err != nil {
		log.Fatalf("Failed to purge expired pedidos: %v", err)
	}
	logger.Info("Expired pedidos purged on start", "removed", purged)

	jobManager := jobs.NewJobManager(app.CreatePedidoPurgeJob(logger))
	if err = jobManager.StartAll(); err != nil {
		log.Fatalf("Failed to start jobs: %v", err)
	}
	defer jobManager.StopAll()

	startWebServer(&app, purged, logger, configs.HTTPPort)
}

func getConfigs() cmd.Config {
	config := cmd.Config{
		HTTPPort:        goDotEnvVariable("HTTP_PORT"),
		DBHost:          goDotEnvVariable("DB_HOST"),
		DBPort:          goDotEnvVariable("DB_PORT"),
		DBUser:          goDotEnvVariable("DB_USER"),
		DBPassword:      goDotEnvVariable("DB_PASSWORD"),
		DBName:          goDotEnvVariable("DB_NAME"),
		DBSslMode:       goDotEnvVariable("DB_SSLMODE"),
		ArtifactDir:     goDotEnvVariable("ARTIFACT_DIR"),
		ServerURL:       goDotEnvVariable("SERVER_URL"),
		RefreshSchedule: goDotEnvVariable("REFRESH_SCHEDULE"),
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

func mustConnectDB(configs cmd.Config) *gorm.DB {
	dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		configs.DBHost, configs.DBPort, configs.DBUser,
		configs.DBPassword, configs.DBName, configs.DBSslMode)

	gormDB, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	err = gormDB.AutoMigrate(
		&pedidorepo.PedidoDTO{},
		&pedidorepo.PedidoItemDTO{},
		&fornecedorrepo.FornecedorDTO{},
		&userrepo.UserDTO{},
	)
	if err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}

	return gormDB
}

func startWebServer(app *cmd.CompositionRoot, purged int64, logger *slog.Logger, port string) {
	e := echo.New()
	e.GET("/health", func(c echo.Context) error {
		return c.String(http.StatusOK, "Healthy")
	})

	server := app.CreateHTTPServer(purged, logger)
	server.RegisterRoutes(e)

	e.Logger.Fatal(e.Start(fmt.Sprintf("0.0.0.0:%s", port)))
}
