package main

import (
	"fmt"
	"os"

	"fc-ssoa-api/config"
	"fc-ssoa-api/fixtures"
	"fc-ssoa-api/pkg/logger"

	"github.com/joho/godotenv"
)

func main() {
	logger.Init(true)

	if err := godotenv.Load(); err != nil {
		logger.Log.Info().Msg("no .env file found, using environment variables")
	}

	cfg, err := config.Load()
	if err != nil {
		logger.Log.Fatal().Err(err).Msg("failed to load configuration")
	}

	db, err := config.ConnectDatabase(cfg)
	if err != nil {
		logger.Log.Fatal().Err(err).Msg("failed to connect to database")
	}

	fixtureManager := fixtures.NewFixtures(db)

	if len(os.Args) < 2 {
		printUsage()
		return
	}

	switch os.Args[1] {
	case "generate":
		if err := fixtureManager.GenerateSeedData(); err != nil {
			logger.Log.Fatal().Err(err).Msg("failed to generate seed data")
		}
		fmt.Println("Seed data generated successfully")
	case "clear":
		if err := fixtureManager.ClearAllData(); err != nil {
			logger.Log.Fatal().Err(err).Msg("failed to clear seed data")
		}
		fmt.Println("All seed data cleared")
	case "regenerate":
		if err := fixtureManager.ClearAllData(); err != nil {
			logger.Log.Fatal().Err(err).Msg("failed to clear seed data")
		}
		if err := fixtureManager.GenerateSeedData(); err != nil {
			logger.Log.Fatal().Err(err).Msg("failed to generate seed data")
		}
		fmt.Println("Seed data regenerated successfully")
	default:
		fmt.Printf("Unknown command: %s\n", os.Args[1])
		printUsage()
	}
}

func printUsage() {
	fmt.Println("Usage:")
	fmt.Println("  go run ./cmd/fixtures generate    - Seed welcome announcements and a sample schedule")
	fmt.Println("  go run ./cmd/fixtures clear       - Clear all seeded data")
	fmt.Println("  go run ./cmd/fixtures regenerate  - Clear and reseed")
}
