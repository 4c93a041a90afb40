package main

import (
	"fmt"

	"github.com/pkg/errors"

	"github.com/sheikhrachel/go-gol-window/display/terminal"
	"github.com/sheikhrachel/go-gol-window/display/window"
	"github.com/sheikhrachel/go-gol-window/engine"
	"github.com/sheikhrachel/go-gol-window/model"
	"github.com/sheikhrachel/go-gol-window/utils"
)

// initializeGame builds the starting grid from the configured seed set
func initializeGame(config utils.Config) (*model.Grid, *utils.Stats, error) {
	grid, err := model.NewSeededGrid(config.Width, config.Height, config.SeedSet)
	if err != nil {
		return nil, nil, errors.Wrap(err, "[initializeGame]")
	}

	return grid, utils.NewStats(), nil
}

// displayGameInfo shows the initial game information
func displayGameInfo(config utils.Config, grid *model.Grid) {
	fmt.Printf("Grid: %dx%d | Seed: %s | Initial living cells: %d\n",
		grid.GetWidth(), grid.GetHeight(), config.SeedSet, grid.CountLivingCells())
	fmt.Printf("Display: %s | Frame delay: %v\n", config.Display, config.FrameDelay)
	fmt.Println("Press Esc to exit")
}

// runDisplay opens the configured display and runs the simulation until it stops
func runDisplay(config utils.Config, grid *model.Grid, stats *utils.Stats) (*engine.Loop, error) {
	switch config.Display {
	case utils.DisplayTerminal:
		term, err := terminal.NewScreen(config.Title)
		if err != nil {
			return nil, err
		}
		loop := engine.NewLoop(term, grid, config, stats)
		runErr := loop.Run()
		if err = term.Close(); err != nil && runErr == nil {
			runErr = errors.Wrap(err, "[runDisplay] failed to close terminal")
		}
		return loop, runErr

	default:
		win := window.New(config.Title, config.WindowWidth, config.WindowHeight)
		loop := engine.NewLoop(win, grid, config, stats)
		return loop, win.Run(loop)
	}
}

// displayFinalStats prints the run summary
func displayFinalStats(loop *engine.Loop, stats *utils.Stats) {
	fmt.Printf("Final stats: %d generations in %.1f seconds\n",
		loop.Generation(), stats.Runtime().Seconds())
	fmt.Printf("Average: %.1f gen/sec, %.1f avg population, %d living cells at exit\n",
		stats.GenerationsPerSecond, stats.AveragePopulation, loop.Grid().CountLivingCells())
}
