package app

import (
	"go-bank-ledger/audit"
	"go-bank-ledger/cli"
	"go-bank-ledger/config"
	"go-bank-ledger/db"
	"go-bank-ledger/logger"
	"go-bank-ledger/repository"
	"go-bank-ledger/service"
)

const migrationsPath = "file://db/migrations"

func Run() {
	config.LoadConfig(".")
	logger.Init()
	logger.Log.Info("Logger initialized")
	logger.Log.Info("Configuration loaded successfully")

	database, err := db.Connect()
	if err != nil {
		logger.Log.Fatalf("Error connecting to the database: %v", err)
	}
	defer database.Close()

	if err := db.RunMigrations(config.DatabaseURL(), migrationsPath); err != nil {
		logger.Log.Fatalf("Error running migrations: %v", err)
	}

	// The cache is an optimization; the ledger works without it.
	var cache service.ICacheClient
	if redisClient, err := db.ConnectRedis(); err != nil {
		logger.Log.WithError(err).Warn("Redis unavailable, continuing without cache")
	} else {
		cache = redisClient
		defer redisClient.Close()
	}

	auditPath := config.AppConfig.Audit.FilePath
	if auditPath == "" {
		auditPath = "transactions.csv"
	}
	trail, err := audit.NewCSVLogger(auditPath)
	if err != nil {
		logger.Log.Fatalf("Error opening audit file: %v", err)
	}

	// --- Wiring All Layers Together ---
	accountRepo := repository.NewAccountRepository(database)
	transactionRepo := repository.NewTransactionRepository(database)

	accountService := service.NewAccountService(accountRepo, transactionRepo, trail, cache)
	transferService := service.NewTransferService(accountRepo, transactionRepo, trail, cache)
	adminService := service.NewAdminService(accountRepo, transactionRepo, cache)

	console := cli.New(accountService, transferService, adminService)
	console.Run()

	logger.Log.Info("Session ended")
}
