package config

import (
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config holds the application's configuration values.
type Config struct {
	Host     string // Interface the gate's gRPC control surface binds to
	GrpcPort int    // Port for the gRPC server

	MazeSize   int   // Odd side length of the maze
	MazeDecoys int   // Extra random openings added after carving
	MazeSeed   int64 // Fixed generator seed, 0 for random mazes

	TimeBudget       int // Countdown start (in seconds)
	TickMillis       int // Countdown period (in milliseconds)
	MoveRepeatMillis int // Held-key move cadence (in milliseconds)

	EventBufferSize int // Pending events per stream subscriber
}

// Envs holds the application's configuration loaded from environment variables.
var Envs = initConfig()

// initConfig initializes and returns the application configuration.
// It loads environment variables from a .env file.
func initConfig() Config {
	// Load .env file if available
	if err := godotenv.Load(); err != nil {
		log.Printf("[APP] [INFO] .env file not found or could not be loaded: %v", err)
	}

	return Config{
		Host:     getEnv("GATE_HOST", "127.0.0.1"),
		GrpcPort: getEnvAsInt("GATE_PORT", 50051),

		MazeSize:   getEnvAsInt("MAZE_SIZE", 33),
		MazeDecoys: getEnvAsInt("MAZE_DECOYS", 0),
		MazeSeed:   int64(getEnvAsInt("MAZE_SEED", 0)),

		TimeBudget:       getEnvAsInt("GAME_TIME_BUDGET", 25),
		TickMillis:       getEnvAsInt("GAME_TICK_MS", 1000),
		MoveRepeatMillis: getEnvAsInt("GAME_MOVE_REPEAT_MS", 110),

		EventBufferSize: getEnvAsInt("EVENT_BUFFER_SIZE", 64),
	}
}

// TickPeriod returns the countdown period.
func (c Config) TickPeriod() time.Duration {
	return time.Duration(c.TickMillis) * time.Millisecond
}

// MoveRepeatDelay returns the held-key move cadence.
func (c Config) MoveRepeatDelay() time.Duration {
	return time.Duration(c.MoveRepeatMillis) * time.Millisecond
}

// getEnv retrieves the value of an environment variable or returns def if not set.
func getEnv(key, def string) string {
	if value, exists := os.LookupEnv(key); exists && value != "" {
		return value
	}
	return def
}

// getEnvAsInt retrieves the value of an environment variable as an integer, falling back
// to def if not set and logging a fatal error if it cannot be parsed.
func getEnvAsInt(key string, def int) int {
	valueStr, exists := os.LookupEnv(key)
	if !exists || valueStr == "" {
		return def
	}
	value, err := strconv.Atoi(valueStr)
	if err != nil {
		log.Fatalf("%s[APP]%s %s[FATAL]%s Environment variable %s must be an integer: %v", ColorGreen, ColorReset, ColorRed, ColorReset, key, err)
	}
	return value
}
