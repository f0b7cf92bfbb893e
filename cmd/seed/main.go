package main

import (
	"os"

	"github.com/sirupsen/logrus"

	"snp-mealhub/internal/adapters/persistence/models"
	"snp-mealhub/internal/config"
	"snp-mealhub/internal/logger"
)

// Seed CLI: migrates the schema and loads the default accounts plus sample
// reference data. Safe to run repeatedly; a populated database is left
// untouched.
func main() {
	cfg, err := config.Load()
	if err != nil {
		logrus.Fatalf("❌ Failed to load configuration: %v", err)
	}

	logger.Setup(cfg.IsDev())

	db, err := config.ConnectDatabase(cfg)
	if err != nil {
		logrus.Errorf("❌ Failed to connect to database: %v", err)
		os.Exit(1)
	}
	defer config.CloseDatabase()

	if err := models.AutoMigrate(db); err != nil {
		logrus.Errorf("❌ Failed to auto migrate: %v", err)
		os.Exit(1)
	}

	if err := config.NewSeeder(db).Run(); err != nil {
		logrus.Errorf("❌ Seeding failed: %v", err)
		os.Exit(1)
	}

	logrus.Info("🌱 Seeding completed")
}
