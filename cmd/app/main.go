package main

import (
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"strconv"

	"railmail/cmd"
	httpin "railmail/internal/adapters/in/http"
	"railmail/internal/adapters/out/postgres/linerepo"
	"railmail/internal/adapters/out/postgres/parcelrepo"
	"railmail/internal/adapters/out/postgres/shipmentrepo"
	"railmail/internal/adapters/out/postgres/trainrepo"
	"railmail/internal/jobs"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/gommon/log"
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func main() {
	configs := getConfigs()

	db := openDatabase(configs)
	migrateDatabase(db)

	app := cmd.NewCompositionRoot(configs, db)

	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	if configs.FleetPlanCronEnabled {
		jobManager := jobs.NewJobManager(app.CreatePlanFleetScheduleQueryHandler(), logger)
		if err := jobManager.StartAll(); err != nil {
			log.Fatalf("Failed to start jobs: %v", err)
		}
		defer jobManager.StopAll()
	}

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
		TrainTransitHours:    goDotEnvInt("TRAIN_TRANSIT_HOURS"),
		ProfitMargin:         goDotEnvFloat("PROFIT_MARGIN"),
		OptimizerProblemName: goDotEnvVariable("OPTIMIZER_PROBLEM_NAME"),
		OptimizerShiftHours:  goDotEnvInt("OPTIMIZER_SHIFT_HOURS"),
		FleetPlanCronEnabled: goDotEnvVariable("FLEET_PLAN_CRON_ENABLED") == "true",
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

func goDotEnvInt(key string) int {
	value, err := strconv.Atoi(goDotEnvVariable(key))
	if err != nil {
		log.Fatalf("Environment variable %s must be an integer: %v", key, err)
	}
	return value
}

func goDotEnvFloat(key string) float64 {
	value, err := strconv.ParseFloat(goDotEnvVariable(key), 64)
	if err != nil {
		log.Fatalf("Environment variable %s must be a number: %v", key, err)
	}
	return value
}

func openDatabase(configs cmd.Config) *gorm.DB {
	dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		configs.DBHost,
		configs.DBPort,
		configs.DBUser,
		configs.DBPassword,
		configs.DBName,
		configs.DBSslMode,
	)

	db, err := gorm.Open(gorm_postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	return db
}

func migrateDatabase(db *gorm.DB) {
	err := db.AutoMigrate(
		&linerepo.LineDTO{},
		&trainrepo.TrainDTO{},
		&trainrepo.TrainLineDTO{},
		&parcelrepo.ParcelDTO{},
		&shipmentrepo.ShipmentDTO{},
	)
	if err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}
}

func startWebServer(app *cmd.CompositionRoot, port string) {
	e := echo.New()
	e.GET("/health", func(c echo.Context) error {
		return c.String(http.StatusOK, "Healthy")
	})

	server := httpin.NewServer(
		app.CreateCreateLineCommandHandler(),
		app.CreateBidTrainCommandHandler(),
		app.CreateWithdrawTrainCommandHandler(),
		app.CreateDepositParcelCommandHandler(),
		app.CreateWithdrawParcelCommandHandler(),
		app.CreateShipTrainCommandHandler(),
		app.CreateGetAllLinesQueryHandler(),
		app.CreateGetAllTrainsQueryHandler(),
		app.CreateGetAllParcelsQueryHandler(),
		app.CreatePlanFleetScheduleQueryHandler(),
	)
	server.RegisterRoutes(e)

	e.Logger.Fatal(e.Start(fmt.Sprintf("0.0.0.0:%s", port)))
}
