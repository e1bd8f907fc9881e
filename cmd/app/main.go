package main

import (
	"fmt"
	"net/http"
	"os"
	"strconv"

	"printshop/cmd"
	httpin "printshop/internal/adapters/in/http"
	"printshop/internal/adapters/out/postgres/customerrepo"
	"printshop/internal/adapters/out/postgres/orderrepo"
	"printshop/internal/adapters/out/postgres/printerrepo"
	"printshop/internal/adapters/out/postgres/printjobrepo"
	"printshop/internal/adapters/out/postgres/saleschannelrepo"
	"printshop/internal/jobs"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/gommon/log"
	gormpostgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func main() {
	configs := getConfigs()

	gormDB := mustOpenDB(configs)

	app := cmd.NewCompositionRoot(configs, gormDB)

	jobManager := startJobs(&app, configs)
	defer jobManager.StopAll()

	startWebServer(&app, configs.HTTPPort)
}

func getConfigs() cmd.Config {
	config := cmd.Config{
		HTTPPort:                goDotEnvVariable("HTTP_PORT"),
		DBHost:                  goDotEnvVariable("DB_HOST"),
		DBPort:                  goDotEnvVariable("DB_PORT"),
		DBUser:                  goDotEnvVariable("DB_USER"),
		DBPassword:              goDotEnvVariable("DB_PASSWORD"),
		DBName:                  goDotEnvVariable("DB_NAME"),
		DBSslMode:               goDotEnvVariable("DB_SSLMODE"),
		PrinterPollSeconds:      goDotEnvVariable("PRINTER_POLL_SECONDS"),
		PrinterProbeTimeoutSecs: goDotEnvVariable("PRINTER_PROBE_TIMEOUT_SECONDS"),
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

func mustOpenDB(configs cmd.Config) *gorm.DB {
	dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		configs.DBHost, configs.DBPort, configs.DBUser, configs.DBPassword,
		configs.DBName, configs.DBSslMode)

	gormDB, err := gorm.Open(gormpostgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatalf("Error connecting to database: %v", err)
	}

	err = gormDB.AutoMigrate(
		&customerrepo.CustomerDTO{},
		&saleschannelrepo.SalesChannelDTO{},
		&orderrepo.OrderDTO{},
		&orderrepo.ItemDTO{},
		&printerrepo.PrinterDTO{},
		&printjobrepo.PrintJobDTO{},
	)
	if err != nil {
		log.Fatalf("Error migrating database schema: %v", err)
	}

	return gormDB
}

func startJobs(app *cmd.CompositionRoot, configs cmd.Config) *jobs.JobManager {
	pollSeconds, _ := strconv.Atoi(configs.PrinterPollSeconds)

	jobManager := jobs.NewJobManager(
		app.CreatePrinterUoWFactory(),
		app.CreateRefreshPrinterStatusCommandHandler(),
		pollSeconds,
		app.Logger(),
	)

	if err := jobManager.StartAll(); err != nil {
		log.Fatalf("Error starting background jobs: %v", err)
	}

	return jobManager
}

func startWebServer(app *cmd.CompositionRoot, port string) {
	e := echo.New()
	e.GET("/health", func(c echo.Context) error {
		return c.String(http.StatusOK, "Healthy")
	})

	server := httpin.NewServer(
		app.CreateCreateCustomerCommandHandler(),
		app.CreateCreatePrinterCommandHandler(),
		app.CreateCreateOrderCommandHandler(),
		app.CreateUpdateOrderStatusCommandHandler(),
		app.CreateUpdatePaymentStatusCommandHandler(),
		app.CreateCreatePrintJobCommandHandler(),
		app.CreateTrackPrintProgressCommandHandler(),
		app.CreateDeletePrinterCommandHandler(),
		app.CreateGetPrinterOperatingHoursQueryHandler(),
		app.CreateGetActivePrintJobsQueryHandler(),
		app.CreateGetOpenOrdersQueryHandler(),
		app.CreateGetAllPrintersQueryHandler(),
		app.CreateGetAllCustomersQueryHandler(),
	)
	server.RegisterRoutes(e)

	e.Logger.Fatal(e.Start(fmt.Sprintf("0.0.0.0:%s", port)))
}
