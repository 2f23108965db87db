package main

import (
	"database/sql"
	"fmt"
	"log/slog"
	"net/http"
	"os"

	"gooddelivery/cmd"
	httpin "gooddelivery/internal/adapters/in/http"
	postgresout "gooddelivery/internal/adapters/out/postgres"
	"gooddelivery/internal/jobs"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/gommon/log"
	_ "github.com/lib/pq"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func main() {
	configs := getConfigs()

	gormDB := mustConnectDB(configs)
	mustMigrateDB(gormDB)

	app, err := cmd.NewCompositionRoot(configs, gormDB)
	if err != nil {
		log.Fatalf("Error creating composition root: %v", err)
	}

	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	jobManager := jobs.NewJobManager(app.CreateExpireCampaignsCommandHandler(), logger)
	if err := jobManager.StartAll(); err != nil {
		log.Fatalf("Error starting jobs: %v", err)
	}
	defer jobManager.StopAll()

	startWebServer(app, configs.HTTPPort)
}

func getConfigs() cmd.Config {
	config := cmd.Config{
		HTTPPort:          goDotEnvVariable("HTTP_PORT"),
		DBHost:            goDotEnvVariable("DB_HOST"),
		DBPort:            goDotEnvVariable("DB_PORT"),
		DBUser:            goDotEnvVariable("DB_USER"),
		DBPassword:        goDotEnvVariable("DB_PASSWORD"),
		DBName:            goDotEnvVariable("DB_NAME"),
		DBSslMode:         goDotEnvVariable("DB_SSLMODE"),
		ReceiptSigningKey: goDotEnvVariable("RECEIPT_SIGNING_KEY"),
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
		configs.DBHost, configs.DBPort, configs.DBUser, configs.DBPassword, configs.DBName, configs.DBSslMode)

	sqlDB, err := sql.Open("postgres", dsn)
	if err != nil {
		log.Fatalf("Error opening database connection: %v", err)
	}

	gormDB, err := gorm.Open(postgres.New(postgres.Config{Conn: sqlDB}), &gorm.Config{})
	if err != nil {
		log.Fatalf("Error connecting to database: %v", err)
	}
	return gormDB
}

func mustMigrateDB(gormDB *gorm.DB) {
	if err := postgresout.Migrate(gormDB); err != nil {
		log.Fatalf("Error migrating database: %v", err)
	}
}

func startWebServer(app cmd.CompositionRoot, port string) {
	e := echo.New()
	e.GET("/health", func(c echo.Context) error {
		return c.String(http.StatusOK, "Healthy")
	})

	server := httpin.NewServer(
		app.CreateCreateCampaignCommandHandler(),
		app.CreateCreateDeliveryPointCommandHandler(),
		app.CreateCreateAgreementCommandHandler(),
		app.CreateAssignOperatorCommandHandler(),
		app.CreateAssignUserCommandHandler(),
		app.CreateCreateCategoryCommandHandler(),
		app.CreateCreateGoodCommandHandler(),
		app.CreateCreateStockCommandHandler(),
		app.CreateAddStockIdentifierCommandHandler(),
		app.CreateCreateDeliveryCommandHandler(),
		app.CreateUpdateDeliveryCommandHandler(),
		app.CreateMarkDeliveredCommandHandler(),
		app.CreateConfirmDeliveryCommandHandler(),
		app.CreateReturnDeliveryCommandHandler(),
		app.CreateDisableDeliveryCommandHandler(),
		app.CreateDeleteDeliveryCommandHandler(),
		app.CreateGetUserDeliveriesQueryHandler(),
		app.CreateGetPointStockBalanceQueryHandler(),
		app.CreateGetDeliveryReceiptQueryHandler(),
	)
	server.RegisterRoutes(e)

	e.Logger.Fatal(e.Start(fmt.Sprintf("0.0.0.0:%s", port)))
}
