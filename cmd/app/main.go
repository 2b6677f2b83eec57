package main

import (
	"fmt"
	"log/slog"
	"os"

	"logistics/cmd"
	"logistics/internal/adapters/out/postgres/customerrepo"
	"logistics/internal/adapters/out/postgres/notificationlog"
	"logistics/internal/adapters/out/postgres/orderrepo"
	"logistics/internal/adapters/out/postgres/trackingrepo"
	"logistics/internal/core/ports"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/gommon/log"
	gormpostgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func main() {
	configs := getConfigs()

	gormDB := mustOpenDatabase(configs)

	app := cmd.NewCompositionRoot(configs, gormDB)

	signalSource := app.CreateSignalSource()

	jobManager := app.CreateJobManager(signalSource, slog.Default())
	if err := jobManager.StartAll(); err != nil {
		log.Fatalf("Failed to start monitoring jobs: %v", err)
	}
	defer jobManager.StopAll()

	startWebServer(&app, signalSource, configs.HTTPPort)
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
		SMSGatewayURL:   goDotEnvVariable("SMS_GATEWAY_URL"),
		EmailGatewayURL: goDotEnvVariable("EMAIL_GATEWAY_URL"),
		WeatherSchedule: goDotEnvVariable("WEATHER_CRON_SCHEDULE"),
		TrafficSchedule: goDotEnvVariable("TRAFFIC_CRON_SCHEDULE"),
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

func mustOpenDatabase(configs cmd.Config) *gorm.DB {
	dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		configs.DBHost, configs.DBPort, configs.DBUser, configs.DBPassword,
		configs.DBName, configs.DBSslMode)

	gormDB, err := gorm.Open(gormpostgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	err = gormDB.AutoMigrate(
		&orderrepo.OrderDTO{},
		&trackingrepo.TrackingRecordDTO{},
		&customerrepo.CustomerDTO{},
		&notificationlog.EntryDTO{},
	)
	if err != nil {
		log.Fatalf("Failed to migrate database schema: %v", err)
	}

	return gormDB
}

func startWebServer(app *cmd.CompositionRoot, signalSource ports.SignalSource, port string) {
	e := echo.New()

	server := app.CreateHTTPServer(signalSource)
	server.RegisterRoutes(e)

	e.Logger.Fatal(e.Start(fmt.Sprintf("0.0.0.0:%s", port)))
}
