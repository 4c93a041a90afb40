package main

import (
	"fmt"
	"log"
	"os"

	"github.com/pkg/errors"

	"github.com/sheikhrachel/go-gol-window/utils"
)

const configFile = "config.json"

func main() {
	// Load configuration - fallback to defaults if file doesn't exist
	config, err := utils.LoadConfig(configFile)
	if err != nil {
		if !os.IsNotExist(errors.Cause(err)) {
			log.Fatalf("Failed to load configuration: %+v", err)
		}
		fmt.Println("Using default configuration (config.json not found)")
		config = utils.DefaultConfig()
	}
	if err = config.Validate(); err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	// Initialize game
	grid, stats, err := initializeGame(config)
	if err != nil {
		log.Fatalf("Failed to initialize game: %v", err)
	}
	displayGameInfo(config, grid)

	loop, err := runDisplay(config, grid, stats)
	if err != nil {
		log.Fatalf("Display failed: %+v", err)
	}

	displayFinalStats(loop, stats)
}
