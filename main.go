package main

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/df07/go-ppm-raytracer/cmd"
	"github.com/joho/godotenv"
)

func main() {
	if err := loadEnv(".env"); err != nil {
		fmt.Fprintf(os.Stderr, "warning: %v\n", err)
	}

	app := cmd.NewApp()
	if err := app.Run(os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

// loadEnv reads flag defaults from an optional .env file. Variables already
// set in the environment win.
func loadEnv(path string) error {
	if err := godotenv.Load(path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("loading %s: %w", path, err)
	}
	return nil
}
