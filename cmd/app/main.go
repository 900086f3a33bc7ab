package main

import (
	"fmt"
	"log/slog"
	"os"

	"docflow/cmd"
	"docflow/internal/adapters/in/http"
	"docflow/internal/adapters/out/pgnotify"
	"docflow/internal/adapters/out/postgres"

	"github.com/joho/godotenv"
	"github.com/labstack/gommon/log"
	gormpostgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func main() {
	configs := getConfigs()
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	gormDB, err := gorm.Open(gormpostgres.Open(makeConnectionString(configs)), &gorm.Config{})
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	if err = postgres.AutoMigrate(gormDB); err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}

	app, err := cmd.NewCompositionRoot(configs, gormDB, logger)
	if err != nil {
		log.Fatalf("Failed to build application: %v", err)
	}

	jobManager, err := app.CreateJobManager()
	if err != nil {
		log.Fatalf("Failed to create jobs: %v", err)
	}
	if err = jobManager.StartAll(); err != nil {
		log.Fatalf("Failed to start jobs: %v", err)
	}
	defer jobManager.StopAll()

	startWebServer(app, configs)
}

func getConfigs() cmd.Config {
	if err := godotenv.Load(".env"); err != nil {
		log.Fatalf("Error loading .env file")
	}

	config := cmd.Config{
		HTTPPort:                     os.Getenv("HTTP_PORT"),
		DBHost:                       os.Getenv("DB_HOST"),
		DBPort:                       os.Getenv("DB_PORT"),
		DBUser:                       os.Getenv("DB_USER"),
		DBPassword:                   os.Getenv("DB_PASSWORD"),
		DBName:                       os.Getenv("DB_NAME"),
		DBSslMode:                    os.Getenv("DB_SSLMODE"),
		NotifyChannel:                envOrDefault("NOTIFY_CHANNEL", pgnotify.DefaultChannel),
		NotificationDispatchSchedule: os.Getenv("NOTIFICATION_DISPATCH_SCHEDULE"),
		MetricsNamespace:             envOrDefault("METRICS_NAMESPACE", "docflow"),
	}
	return config
}

func envOrDefault(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func makeConnectionString(c cmd.Config) string {
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.DBHost, c.DBPort, c.DBUser, c.DBPassword, c.DBName, c.DBSslMode)
}

func startWebServer(app *cmd.CompositionRoot, configs cmd.Config) {
	metrics, err := http.NewMetrics(configs.MetricsNamespace)
	if err != nil {
		log.Fatalf("Failed to create metrics: %v", err)
	}

	e, err := http.NewRouter(app.CreateHTTPServer(metrics), metrics)
	if err != nil {
		log.Fatalf("Failed to create router: %v", err)
	}

	e.Logger.Fatal(e.Start(fmt.Sprintf("0.0.0.0:%s", configs.HTTPPort)))
}
