package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

const (
	// Wheel
	SectorCount    = 10   // Default number of sectors
	MinExtraTurns  = 6    // Fewest full turns added to a spin
	MaxExtraTurns  = 10   // Most full turns added to a spin
	JitterFraction = 0.1  // Landing keeps this fraction of a sector clear at each edge
	DeadZoneRatio  = 0.2  // Hub radius as a fraction of the wheel radius
	LabelRadius    = 0.75 // Sector labels sit at this fraction of the radius

	// Animation
	SpinDuration = 7 * time.Second
	SpinEase     = "power1.inOut"
	TargetFPS    = 30 // Target frames per second

	// Display
	AspectRatio   = 0.5 // Terminal char aspect correction (chars are ~2:1 tall)
	MinLightness  = 40  // Resting sector lightness (HSL %)
	MaxLightness  = 60  // Fully hovered sector lightness (HSL %)
	LightnessStep = 2   // Lightness change per frame while fading
	HistorySize   = 12  // Spins kept in the history panel

	// App
	AppName    = "WHEEL"
	AppVersion = "1.0"
)

// Config holds the runtime settings that can be overridden from the
// environment (or a .env file) and then from command-line flags.
type Config struct {
	Sectors      int
	MinTurns     int
	MaxTurns     int
	SpinDuration time.Duration
	Ease         string
	Seed         int64 // 0 picks a time-based seed
	LogLevel     string
	LogFile      string
	LogPretty    bool
}

// Load reads configuration from WHEEL_* environment variables.
func Load() (*Config, error) {
	// Load .env file if it exists
	_ = godotenv.Load()

	cfg := &Config{
		Sectors:      getEnvAsInt("WHEEL_SECTORS", SectorCount),
		MinTurns:     getEnvAsInt("WHEEL_MIN_TURNS", MinExtraTurns),
		MaxTurns:     getEnvAsInt("WHEEL_MAX_TURNS", MaxExtraTurns),
		SpinDuration: getEnvAsDuration("WHEEL_SPIN_DURATION", SpinDuration),
		Ease:         getEnv("WHEEL_EASE", SpinEase),
		Seed:         int64(getEnvAsInt("WHEEL_SEED", 0)),
		LogLevel:     getEnv("WHEEL_LOG_LEVEL", "info"),
		LogFile:      getEnv("WHEEL_LOG_FILE", ""),
		LogPretty:    getEnvAsBool("WHEEL_LOG_PRETTY", false),
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate checks that the settings describe a spinnable wheel.
func (c *Config) Validate() error {
	if c.Sectors < 1 {
		return fmt.Errorf("sector count must be at least 1, got %d", c.Sectors)
	}
	if c.MinTurns < 1 {
		return fmt.Errorf("minimum extra turns must be at least 1, got %d", c.MinTurns)
	}
	if c.MaxTurns < c.MinTurns {
		return fmt.Errorf("maximum extra turns (%d) is below minimum (%d)", c.MaxTurns, c.MinTurns)
	}
	if c.SpinDuration <= 0 {
		return fmt.Errorf("spin duration must be positive, got %s", c.SpinDuration)
	}
	return nil
}

// Helper functions
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultValue
}

func getEnvAsBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if boolVal, err := strconv.ParseBool(value); err == nil {
			return boolVal
		}
	}
	return defaultValue
}

func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if d, err := time.ParseDuration(value); err == nil {
			return d
		}
	}
	return defaultValue
}
