package tetris

import (
	"errors"
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

const (
	DefaultRows          = 20
	DefaultCols          = 10
	DefaultTickPeriod    = 500 * time.Millisecond
	DefaultPointsPerLine = 100
	DefaultBlockSize     = 30
)

// ErrInvalidConfig is wrapped by every error returned from Config.Validate.
var ErrInvalidConfig = errors.New("invalid config")

// Config holds the tunable constants of a game. The zero value is not usable;
// start from DefaultConfig.
type Config struct {
	Rows          int           `yaml:"rows"`
	Cols          int           `yaml:"cols"`
	TickPeriod    time.Duration `yaml:"tick_period"`
	PointsPerLine int           `yaml:"points_per_line"`
	BlockSize     int           `yaml:"block_size"`
	Picker        string        `yaml:"picker"`
}

// DefaultConfig returns the classic 20x10 board with a 500ms gravity tick.
func DefaultConfig() Config {
	return Config{
		Rows:          DefaultRows,
		Cols:          DefaultCols,
		TickPeriod:    DefaultTickPeriod,
		PointsPerLine: DefaultPointsPerLine,
		BlockSize:     DefaultBlockSize,
		Picker:        PickerUniform,
	}
}

// LoadConfig reads a YAML file on top of DefaultConfig. Keys missing from the
// file keep their default values.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("read config %s: %w", path, err)
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config %s: %w", path, err)
	}

	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// Validate reports the first field that cannot produce a playable board.
func (c Config) Validate() error {
	if c.Rows < 4 {
		return fmt.Errorf("%w: rows must be at least 4, got %d", ErrInvalidConfig, c.Rows)
	}
	// every catalog shape must fit at the spawn column
	if c.Cols < 6 {
		return fmt.Errorf("%w: cols must be at least 6, got %d", ErrInvalidConfig, c.Cols)
	}
	if c.TickPeriod < 0 {
		return fmt.Errorf("%w: tick period must not be negative, got %s", ErrInvalidConfig, c.TickPeriod)
	}
	if c.PointsPerLine < 0 {
		return fmt.Errorf("%w: points per line must not be negative, got %d", ErrInvalidConfig, c.PointsPerLine)
	}
	if c.BlockSize <= 0 {
		return fmt.Errorf("%w: block size must be positive, got %d", ErrInvalidConfig, c.BlockSize)
	}
	if !validPicker(c.Picker) {
		return fmt.Errorf("%w: %w %q", ErrInvalidConfig, ErrUnknownPicker, c.Picker)
	}
	return nil
}

// SpawnColumn is the anchor column of every freshly spawned piece.
func (c Config) SpawnColumn() int {
	return c.Cols/2 - 1
}
