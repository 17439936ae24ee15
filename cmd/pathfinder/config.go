package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"

	"github.com/katalvlaran/astargrid/gridgraph"
)

// Config holds the driver's settings.
type Config struct {
	Rows    int             // Side length of the board
	Width   int             // Pixel width of the window the board maps onto
	Start   gridgraph.Coord // Start cell
	End     gridgraph.Coord // End cell
	Density float64         // Probability that a free cell becomes a barrier
	Seed    uint64          // Seed for the barrier scatter
	Delay   time.Duration   // Pause between animation frames
	Timeout time.Duration   // Search deadline; zero means none
	Animate bool            // Redraw the board after every step
	Color   bool            // Use ANSI colours
}

// loadConfig reads .env (if present), then PATHFINDER_* environment
// variables, then command-line flags, each layer overriding the last.
func loadConfig(args []string) (Config, error) {
	if err := godotenv.Load(); err != nil {
		log.Printf("[APP] [INFO] .env file not found or could not be loaded: %v", err)
	}

	rows, err := getEnvAsInt("PATHFINDER_ROWS", gridgraph.DefaultRows)
	if err != nil {
		return Config{}, err
	}
	width, err := getEnvAsInt("PATHFINDER_WIDTH", gridgraph.DefaultWidth)
	if err != nil {
		return Config{}, err
	}
	density, err := getEnvAsFloat("PATHFINDER_DENSITY", 0.25)
	if err != nil {
		return Config{}, err
	}
	seed, err := getEnvAsInt("PATHFINDER_SEED", 1)
	if err != nil {
		return Config{}, err
	}
	delay, err := getEnvAsDuration("PATHFINDER_DELAY", 0)
	if err != nil {
		return Config{}, err
	}
	timeout, err := getEnvAsDuration("PATHFINDER_TIMEOUT", 0)
	if err != nil {
		return Config{}, err
	}

	fs := flag.NewFlagSet("pathfinder", flag.ContinueOnError)
	fs.IntVar(&rows, "rows", rows, "board side length")
	fs.IntVar(&width, "width", width, "window width in pixels")
	fs.Float64Var(&density, "density", density, "barrier probability per free cell")
	fs.IntVar(&seed, "seed", seed, "barrier scatter seed")
	fs.DurationVar(&delay, "delay", delay, "pause between animation frames")
	fs.DurationVar(&timeout, "timeout", timeout, "search deadline (0 = none)")
	start := fs.String("start", getEnvWithDefault("PATHFINDER_START", ""), "start cell as row,col (default top-left)")
	end := fs.String("end", getEnvWithDefault("PATHFINDER_END", ""), "end cell as row,col (default bottom-right)")
	animate := fs.Bool("animate", getEnvWithDefault("PATHFINDER_ANIMATE", "") == "1", "redraw after every step")
	noColor := fs.Bool("no-color", os.Getenv("NO_COLOR") != "", "disable ANSI colours")
	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}

	cfg := Config{
		Rows:    rows,
		Width:   width,
		Start:   gridgraph.Coord{Row: 0, Col: 0},
		End:     gridgraph.Coord{Row: rows - 1, Col: rows - 1},
		Density: density,
		Delay:   delay,
		Timeout: timeout,
		Animate: *animate,
		Color:   !*noColor,
	}
	if seed < 0 {
		return Config{}, fmt.Errorf("seed must be non-negative, got %d", seed)
	}
	cfg.Seed = uint64(seed)

	if *start != "" {
		if cfg.Start, err = parseCoord(*start); err != nil {
			return Config{}, fmt.Errorf("start: %w", err)
		}
	}
	if *end != "" {
		if cfg.End, err = parseCoord(*end); err != nil {
			return Config{}, fmt.Errorf("end: %w", err)
		}
	}
	if cfg.Rows < 2 {
		return Config{}, fmt.Errorf("rows must be at least 2, got %d", cfg.Rows)
	}
	return cfg, nil
}

// parseCoord parses "row,col".
func parseCoord(s string) (gridgraph.Coord, error) {
	parts := strings.Split(s, ",")
	if len(parts) != 2 {
		return gridgraph.Coord{}, fmt.Errorf("want row,col, got %q", s)
	}
	row, err := strconv.Atoi(strings.TrimSpace(parts[0]))
	if err != nil {
		return gridgraph.Coord{}, fmt.Errorf("row in %q: %w", s, err)
	}
	col, err := strconv.Atoi(strings.TrimSpace(parts[1]))
	if err != nil {
		return gridgraph.Coord{}, fmt.Errorf("col in %q: %w", s, err)
	}
	return gridgraph.Coord{Row: row, Col: col}, nil
}

// getEnvWithDefault retrieves the value of an environment variable or returns a default value if not set.
func getEnvWithDefault(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) (int, error) {
	value, exists := os.LookupEnv(key)
	if !exists {
		return defaultValue, nil
	}
	n, err := strconv.Atoi(value)
	if err != nil {
		return 0, fmt.Errorf("environment variable %s must be an integer: %w", key, err)
	}
	return n, nil
}

func getEnvAsFloat(key string, defaultValue float64) (float64, error) {
	value, exists := os.LookupEnv(key)
	if !exists {
		return defaultValue, nil
	}
	f, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return 0, fmt.Errorf("environment variable %s must be a number: %w", key, err)
	}
	return f, nil
}

func getEnvAsDuration(key string, defaultValue time.Duration) (time.Duration, error) {
	value, exists := os.LookupEnv(key)
	if !exists {
		return defaultValue, nil
	}
	d, err := time.ParseDuration(value)
	if err != nil {
		return 0, fmt.Errorf("environment variable %s must be a duration: %w", key, err)
	}
	return d, nil
}
