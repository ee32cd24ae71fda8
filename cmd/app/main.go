package main

import (
	"fmt"
	"os"

	"shiporders/cmd"
	adapter_http "shiporders/internal/adapters/in/http"
	"shiporders/internal/adapters/out/postgres/addressrepo"
	"shiporders/internal/adapters/out/postgres/jobrepo"
	"shiporders/internal/adapters/out/postgres/orderrepo"
	"shiporders/internal/adapters/out/postgres/packrepo"
	"shiporders/internal/adapters/out/postgres/partyrepo"
	"shiporders/internal/adapters/out/postgres/providerrepo"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/gommon/log"
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func main() {
	configs := getConfigs()

	db := connectDB(configs)

	app, err := cmd.NewCompositionRoot(configs, db)
	if err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	startWebServer(&app, configs.HTTPPort)
}

func getConfigs() cmd.Config {
	config := cmd.Config{
		HTTPPort:                  goDotEnvVariable("HTTP_PORT"),
		DBHost:                    goDotEnvVariable("DB_HOST"),
		DBPort:                    goDotEnvVariable("DB_PORT"),
		DBUser:                    goDotEnvVariable("DB_USER"),
		DBPassword:                goDotEnvVariable("DB_PASSWORD"),
		DBName:                    goDotEnvVariable("DB_NAME"),
		DBSslMode:                 goDotEnvVariable("DB_SSLMODE"),
		DefaultShippingProviderID: goDotEnvVariable("DEFAULT_SHIPPING_PROVIDER_ID"),
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

func connectDB(configs cmd.Config) *gorm.DB {
	dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		configs.DBHost, configs.DBPort, configs.DBUser, configs.DBPassword,
		configs.DBName, configs.DBSslMode)

	db, err := gorm.Open(gorm_postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatalf("Error connecting to database: %v", err)
	}

	err = db.AutoMigrate(
		&jobrepo.JobDTO{},
		&partyrepo.PartyDTO{},
		&addressrepo.AddressDTO{},
		&packrepo.PackageDTO{},
		&providerrepo.ProviderDTO{},
		&orderrepo.OrderDTO{},
	)
	if err != nil {
		log.Fatalf("Error migrating database schema: %v", err)
	}

	return db
}

func startWebServer(app *cmd.CompositionRoot, port string) {
	e := echo.New()

	server := adapter_http.NewServer(
		app.CreateImportOrdersCommandHandler(),
		app.CreateGetJobCostQueryHandler(),
	)
	server.RegisterRoutes(e)

	e.Logger.Fatal(e.Start(fmt.Sprintf("0.0.0.0:%s", port)))
}
