// File: utils/config.go
package utils

import (
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"math"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/joho/godotenv"
)

// ErrInvalidConfig is wrapped by every validation failure.
var ErrInvalidConfig = errors.New("invalid config")

// Config holds every tunable of a session. It is fixed once the game is constructed.
type Config struct {
	// Timing
	TickPeriod      time.Duration `json:"tickPeriod"`      // Host frame pacing; the core itself counts ticks, not time
	MaxCatchUpTicks int           `json:"maxCatchUpTicks"` // Fixed-step accumulator: max ticks run per Advance

	// Arena
	ArenaWidth  int `json:"arenaWidth"`
	ArenaHeight int `json:"arenaHeight"`

	// Paddle Properties
	PaddleWidth           int `json:"paddleWidth"`
	PaddleHeight          int `json:"paddleHeight"`
	PaddleWallPadding     int `json:"paddleWallPadding"`     // Gap between a side wall and its paddle
	PrimaryPaddleStartY   int `json:"primaryPaddleStartY"`   // Top ordinate before the first input arrives
	SecondaryPaddleStartY int `json:"secondaryPaddleStartY"` // Top ordinate before the first tick

	// Ball Physics & Properties
	BallBreadth        int     `json:"ballBreadth"`        // Side of the square ball
	BallSpeed          float64 `json:"ballSpeed"`          // Pixels per tick
	LaunchAngleDegrees float64 `json:"launchAngleDegrees"` // Travel direction at round start, y axis pointing down

	// Colours
	PaddleColor     [3]int `json:"paddleColor"`
	BallColor       [3]int `json:"ballColor"`
	BackgroundColor [3]int `json:"backgroundColor"`

	// Server
	ServerAddr     string        `json:"serverAddr"`
	AllowedOrigins []string      `json:"allowedOrigins"`
	AskTimeout     time.Duration `json:"askTimeout"`     // How long HTTP handlers wait on the game actor
	AsciiColumns   int           `json:"asciiColumns"`   // Spectator ASCII frame width in characters
	AsciiRows      int           `json:"asciiRows"`      // Spectator ASCII frame height in characters
	TargetStep     int           `json:"targetStep"`     // Keyboard hosts move the target this many pixels per key press
	Environment    string        `json:"environment"`    // "production" switches gin to release mode

	// Storage
	RedisURL      string `json:"redisURL"` // Empty disables point history
	HistoryLength int    `json:"historyLength"`
}

// DefaultConfig returns a Config struct with default values.
func DefaultConfig() Config {
	return Config{
		// Timing
		TickPeriod:      16 * time.Millisecond, // ~60 ticks per second
		MaxCatchUpTicks: 5,

		// Arena
		ArenaWidth:  800,
		ArenaHeight: 600,

		// Paddle Properties
		PaddleWidth:           12,
		PaddleHeight:          64,
		PaddleWallPadding:     10,
		PrimaryPaddleStartY:   280,
		SecondaryPaddleStartY: 10,

		// Ball Physics & Properties
		BallBreadth:        8,
		BallSpeed:          10,
		LaunchAngleDegrees: 45,

		// Colours
		PaddleColor:     [3]int{255, 255, 255},
		BallColor:       [3]int{175, 175, 175},
		BackgroundColor: [3]int{0, 0, 0},

		// Server
		ServerAddr:   ":3001",
		AskTimeout:   50 * time.Millisecond,
		AsciiColumns: 80,
		AsciiRows:    30,
		TargetStep:   24,
		Environment:  "development",

		// Storage
		RedisURL:      "",
		HistoryLength: 100,
	}
}

// LaunchAngle is the round-start travel direction in radians.
func (c Config) LaunchAngle() float64 {
	return ToRadians(c.LaunchAngleDegrees)
}

// Validate reports every violated precondition at once.
func (c Config) Validate() error {
	var errs []error
	positive := func(name string, value int) {
		if value <= 0 {
			errs = append(errs, fmt.Errorf("%w: %s must be positive, got %d", ErrInvalidConfig, name, value))
		}
	}

	positive("arenaWidth", c.ArenaWidth)
	positive("arenaHeight", c.ArenaHeight)
	positive("paddleWidth", c.PaddleWidth)
	positive("paddleHeight", c.PaddleHeight)
	positive("ballBreadth", c.BallBreadth)

	if c.PaddleWallPadding < 0 {
		errs = append(errs, fmt.Errorf("%w: paddleWallPadding must not be negative, got %d", ErrInvalidConfig, c.PaddleWallPadding))
	}
	if c.BallSpeed <= 0 || math.IsNaN(c.BallSpeed) || math.IsInf(c.BallSpeed, 0) {
		errs = append(errs, fmt.Errorf("%w: ballSpeed must be a positive number, got %v", ErrInvalidConfig, c.BallSpeed))
	}
	if math.IsNaN(c.LaunchAngleDegrees) || math.IsInf(c.LaunchAngleDegrees, 0) {
		errs = append(errs, fmt.Errorf("%w: launchAngleDegrees must be finite", ErrInvalidConfig))
	}
	if c.ArenaWidth > 0 && c.ArenaHeight > 0 {
		if c.PaddleHeight > c.ArenaHeight {
			errs = append(errs, fmt.Errorf("%w: paddleHeight %d exceeds arenaHeight %d", ErrInvalidConfig, c.PaddleHeight, c.ArenaHeight))
		}
		if c.BallBreadth > c.ArenaHeight || c.BallBreadth > c.ArenaWidth {
			errs = append(errs, fmt.Errorf("%w: ballBreadth %d does not fit the arena", ErrInvalidConfig, c.BallBreadth))
		}
		if 2*(c.PaddleWallPadding+c.PaddleWidth)+c.BallBreadth >= c.ArenaWidth {
			errs = append(errs, fmt.Errorf("%w: arenaWidth %d leaves no room between the paddles", ErrInvalidConfig, c.ArenaWidth))
		}
	}
	if c.TickPeriod <= 0 {
		errs = append(errs, fmt.Errorf("%w: tickPeriod must be positive, got %s", ErrInvalidConfig, c.TickPeriod))
	}
	if c.MaxCatchUpTicks <= 0 {
		errs = append(errs, fmt.Errorf("%w: maxCatchUpTicks must be positive, got %d", ErrInvalidConfig, c.MaxCatchUpTicks))
	}
	for name, color := range map[string][3]int{"paddleColor": c.PaddleColor, "ballColor": c.BallColor, "backgroundColor": c.BackgroundColor} {
		for _, channel := range color {
			if channel < 0 || channel > 255 {
				errs = append(errs, fmt.Errorf("%w: %s channel %d outside 0..255", ErrInvalidConfig, name, channel))
				break
			}
		}
	}
	for _, origin := range c.AllowedOrigins {
		if !strings.HasPrefix(origin, "http://") && !strings.HasPrefix(origin, "https://") {
			errs = append(errs, fmt.Errorf("%w: allowedOrigins entry %q needs an http(s) scheme", ErrInvalidConfig, origin))
		}
	}

	return errors.Join(errs...)
}

// LoadConfig layers defaults, an optional JSON or TOML file and environment overrides,
// then validates the result. A .env file in the working directory is honoured.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()

	if path != "" {
		raw, err := os.ReadFile(path)
		if err != nil {
			return cfg, fmt.Errorf("reading config %s: %w", path, err)
		}
		if err := decodeFile(path, raw, &cfg); err != nil {
			return cfg, fmt.Errorf("parsing config %s: %w", path, err)
		}
	}

	// Missing .env is the normal case outside development.
	_ = godotenv.Load()
	cfg = applyEnv(cfg)

	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// decodeFile picks the format from the extension: .toml, anything else is JSON.
func decodeFile(path string, raw []byte, cfg *Config) error {
	if filepath.Ext(path) != ".toml" {
		return json.Unmarshal(raw, cfg)
	}
	meta, err := toml.Decode(string(raw), cfg)
	if err != nil {
		return err
	}
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		log.Printf("[CONFIG] WARN: ignoring unknown keys in %s: %v", path, undecoded)
	}
	return nil
}

func applyEnv(cfg Config) Config {
	cfg.ServerAddr = getEnv("PONGO_ADDR", cfg.ServerAddr)
	cfg.Environment = getEnv("APP_ENV", cfg.Environment)
	cfg.RedisURL = getEnv("REDIS_URL", cfg.RedisURL)
	if origins := getEnv("PONGO_ALLOWED_ORIGINS", ""); origins != "" {
		cfg.AllowedOrigins = strings.Split(origins, ",")
	}
	cfg.HistoryLength = getEnvInt("PONGO_HISTORY_LENGTH", cfg.HistoryLength)

	cfg.ArenaWidth = getEnvInt("PONGO_ARENA_WIDTH", cfg.ArenaWidth)
	cfg.ArenaHeight = getEnvInt("PONGO_ARENA_HEIGHT", cfg.ArenaHeight)
	cfg.PaddleWidth = getEnvInt("PONGO_PADDLE_WIDTH", cfg.PaddleWidth)
	cfg.PaddleHeight = getEnvInt("PONGO_PADDLE_HEIGHT", cfg.PaddleHeight)
	cfg.PaddleWallPadding = getEnvInt("PONGO_PADDLE_WALL_PADDING", cfg.PaddleWallPadding)
	cfg.BallBreadth = getEnvInt("PONGO_BALL_BREADTH", cfg.BallBreadth)
	cfg.BallSpeed = getEnvFloat("PONGO_BALL_SPEED", cfg.BallSpeed)
	cfg.LaunchAngleDegrees = getEnvFloat("PONGO_LAUNCH_ANGLE", cfg.LaunchAngleDegrees)

	if ms := getEnvInt("PONGO_TICK_MS", 0); ms > 0 {
		cfg.TickPeriod = time.Duration(ms) * time.Millisecond
	}
	return cfg
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultValue
}

func getEnvFloat(key string, defaultValue float64) float64 {
	if value := os.Getenv(key); value != "" {
		if floatVal, err := strconv.ParseFloat(value, 64); err == nil {
			return floatVal
		}
	}
	return defaultValue
}
