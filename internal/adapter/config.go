package adapter

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"time"

	"github.com/spf13/viper"
	"go.uber.org/multierr"

	"github.com/mmcdole/fittrack/internal/domain"
)

// Config holds all application configuration
type Config struct {
	Ring       RingConfig       `mapstructure:"ring"`
	Pagination PaginationConfig `mapstructure:"pagination"`
	CheckIn    CheckInConfig    `mapstructure:"checkin"`
	UI         UIConfig         `mapstructure:"ui"`
	Store      StoreConfig      `mapstructure:"store"`
	Logging    LoggingConfig    `mapstructure:"logging"`
	Plan       PlanConfig       `mapstructure:"plan"`
}

// RingConfig holds progress ring geometry defaults
type RingConfig struct {
	Size        float64 `mapstructure:"size"`         // diameter in pixels
	StrokeWidth float64 `mapstructure:"stroke_width"` // pixels
	CellWidth   float64 `mapstructure:"cell_width"`   // pixels per terminal column
	CellHeight  float64 `mapstructure:"cell_height"`  // pixels per terminal row
}

// PaginationConfig holds card list paging
type PaginationConfig struct {
	PerPage int `mapstructure:"per_page"`
}

// CheckInConfig holds the weight check-in prompt settings
type CheckInConfig struct {
	Enabled     bool          `mapstructure:"enabled"`
	DefaultUnit string        `mapstructure:"default_unit"` // "kg" or "lbs"
	Delay       time.Duration `mapstructure:"delay"`        // re-prompt after "later"
}

// UIConfig holds UI configuration
type UIConfig struct {
	ShowHero   bool          `mapstructure:"show_hero"`
	HeroFrame  time.Duration `mapstructure:"hero_frame"`
	CardWidth  int           `mapstructure:"card_width"`
	AltScreen  bool          `mapstructure:"alt_screen"`
	MouseInput bool          `mapstructure:"mouse"`
}

// StoreConfig holds the local database location
type StoreConfig struct {
	Path string `mapstructure:"path"` // empty = memory only
}

// LoggingConfig holds logging configuration
type LoggingConfig struct {
	File       string `mapstructure:"file"`
	Level      string `mapstructure:"level"`
	MaxSizeMB  int    `mapstructure:"max_size_mb"`
	MaxBackups int    `mapstructure:"max_backups"`
}

// PlanConfig seeds a new day's plan when nothing is stored for it
type PlanConfig struct {
	Exercises []domain.Exercise `mapstructure:"exercises"`
	Meals     []domain.Meal     `mapstructure:"meals"`
}

// DefaultConfig returns the default configuration
func DefaultConfig() *Config {
	return &Config{
		Ring: RingConfig{
			Size:        120,
			StrokeWidth: 10,
			CellWidth:   8,
			CellHeight:  16,
		},
		Pagination: PaginationConfig{
			PerPage: 4,
		},
		CheckIn: CheckInConfig{
			Enabled:     true,
			DefaultUnit: string(domain.UnitKg),
			Delay:       30 * time.Minute,
		},
		UI: UIConfig{
			ShowHero:   true,
			HeroFrame:  80 * time.Millisecond,
			CardWidth:  44,
			AltScreen:  true,
			MouseInput: true,
		},
		Store: StoreConfig{
			Path: filepath.Join(defaultDataPath(), "fittrack.db"),
		},
		Logging: LoggingConfig{
			File:       filepath.Join(defaultDataPath(), "fittrack.log"),
			Level:      "INFO",
			MaxSizeMB:  10,
			MaxBackups: 3,
		},
	}
}

// DefaultPlan is the starter plan used until the user configures one
func DefaultPlan() PlanConfig {
	return PlanConfig{
		Exercises: []domain.Exercise{
			{ID: "warmup", Name: "Jump Rope", MuscleGroup: "cardio", Duration: 5 * time.Minute},
			{ID: "squat", Name: "Back Squat", MuscleGroup: "legs", Sets: 5, Reps: 5, WeightKg: 80},
			{ID: "bench", Name: "Bench Press", MuscleGroup: "chest", Sets: 4, Reps: 8, WeightKg: 60},
			{ID: "row", Name: "Barbell Row", MuscleGroup: "back", Sets: 4, Reps: 10, WeightKg: 50},
			{ID: "plank", Name: "Plank", MuscleGroup: "core", Sets: 3, Duration: 45 * time.Second},
		},
		Meals: []domain.Meal{
			{
				ID: "breakfast", Name: "Overnight Oats", Slot: domain.MealSlotBreakfast, Time: "07:30",
				Calories: 450, ProteinG: 25, CarbsG: 60, FatG: 12,
				Ingredients: []string{"rolled oats", "greek yogurt", "blueberries", "chia seeds"},
			},
			{
				ID: "lunch", Name: "Chicken Rice Bowl", Slot: domain.MealSlotLunch, Time: "12:30",
				Calories: 640, ProteinG: 45, CarbsG: 70, FatG: 16,
				Ingredients: []string{"chicken breast", "jasmine rice", "broccoli", "soy sauce"},
			},
			{
				ID: "snack", Name: "Protein Shake", Slot: domain.MealSlotSnack, Time: "16:00",
				Calories: 220, ProteinG: 30, CarbsG: 8, FatG: 4,
				Ingredients: []string{"whey", "almond milk"},
			},
			{
				ID: "dinner", Name: "Salmon & Potatoes", Slot: domain.MealSlotDinner, Time: "19:00",
				Calories: 720, ProteinG: 40, CarbsG: 55, FatG: 32,
				Ingredients: []string{"salmon fillet", "baby potatoes", "asparagus", "olive oil"},
			},
		},
	}
}

// defaultDataPath returns the default data directory for the current OS
func defaultDataPath() string {
	switch runtime.GOOS {
	case "windows":
		return filepath.Join(os.Getenv("APPDATA"), "fittrack")
	default:
		home, _ := os.UserHomeDir()
		return filepath.Join(home, ".local", "share", "fittrack")
	}
}

// defaultConfigPath returns the default config directory for the current OS
func defaultConfigPath() string {
	switch runtime.GOOS {
	case "windows":
		return filepath.Join(os.Getenv("APPDATA"), "fittrack")
	default:
		home, _ := os.UserHomeDir()
		return filepath.Join(home, ".config", "fittrack")
	}
}

// LoadConfig loads configuration from file and environment.
// An explicit path overrides the search path.
func LoadConfig(path string) (*Config, error) {
	return loadConfig(viper.New(), path)
}

func loadConfig(v *viper.Viper, path string) (*Config, error) {
	cfg := DefaultConfig()

	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(defaultConfigPath())
		v.AddConfigPath(".")
	}

	// Environment variable overrides
	v.SetEnvPrefix("FITTRACK")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
		// Config file not found is OK, use defaults
	}

	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("error parsing config: %w", err)
	}

	// Seed the starter plan only when the file defines none
	if len(cfg.Plan.Exercises) == 0 && len(cfg.Plan.Meals) == 0 {
		cfg.Plan = DefaultPlan()
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return cfg, nil
}

// Validate reports every problem with the configuration at once
func (c *Config) Validate() error {
	var err error

	if c.Ring.Size <= 0 {
		err = multierr.Append(err, fmt.Errorf("ring.size must be > 0, got %g", c.Ring.Size))
	}
	if c.Ring.StrokeWidth <= 0 || c.Ring.StrokeWidth >= c.Ring.Size {
		err = multierr.Append(err, fmt.Errorf("ring.stroke_width must be in (0, ring.size), got %g", c.Ring.StrokeWidth))
	}
	if c.Ring.CellWidth <= 0 || c.Ring.CellHeight <= 0 {
		err = multierr.Append(err, errors.New("ring.cell_width and ring.cell_height must be > 0"))
	}
	if c.Pagination.PerPage <= 0 {
		err = multierr.Append(err, fmt.Errorf("pagination.per_page must be > 0, got %d", c.Pagination.PerPage))
	}
	if !domain.WeightUnit(c.CheckIn.DefaultUnit).Valid() {
		err = multierr.Append(err, fmt.Errorf("checkin.default_unit: %w", domain.ErrInvalidUnit))
	}
	if c.CheckIn.Delay < 0 {
		err = multierr.Append(err, errors.New("checkin.delay must not be negative"))
	}
	if c.UI.HeroFrame <= 0 {
		err = multierr.Append(err, errors.New("ui.hero_frame must be > 0"))
	}

	seen := make(map[string]bool)
	for _, e := range c.Plan.Exercises {
		if e.ID == "" || seen["e:"+e.ID] {
			err = multierr.Append(err, fmt.Errorf("plan.exercises: missing or duplicate id %q", e.ID))
		}
		seen["e:"+e.ID] = true
	}
	for _, m := range c.Plan.Meals {
		if m.ID == "" || seen["m:"+m.ID] {
			err = multierr.Append(err, fmt.Errorf("plan.meals: missing or duplicate id %q", m.ID))
		}
		seen["m:"+m.ID] = true
	}

	return err
}

// SaveConfig saves the current configuration to file
func SaveConfig(cfg *Config) error {
	configPath := defaultConfigPath()

	if err := os.MkdirAll(configPath, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	return writeConfig(viper.New(), cfg, filepath.Join(configPath, "config.yaml"))
}

func writeConfig(v *viper.Viper, cfg *Config, file string) error {
	// Set fields individually to ensure correct key names (snake_case)
	v.Set("ring.size", cfg.Ring.Size)
	v.Set("ring.stroke_width", cfg.Ring.StrokeWidth)
	v.Set("ring.cell_width", cfg.Ring.CellWidth)
	v.Set("ring.cell_height", cfg.Ring.CellHeight)

	v.Set("pagination.per_page", cfg.Pagination.PerPage)

	v.Set("checkin.enabled", cfg.CheckIn.Enabled)
	v.Set("checkin.default_unit", cfg.CheckIn.DefaultUnit)
	v.Set("checkin.delay", cfg.CheckIn.Delay.String())

	v.Set("ui.show_hero", cfg.UI.ShowHero)
	v.Set("ui.hero_frame", cfg.UI.HeroFrame.String())
	v.Set("ui.card_width", cfg.UI.CardWidth)
	v.Set("ui.alt_screen", cfg.UI.AltScreen)
	v.Set("ui.mouse", cfg.UI.MouseInput)

	v.Set("store.path", cfg.Store.Path)

	v.Set("logging.file", cfg.Logging.File)
	v.Set("logging.level", cfg.Logging.Level)
	v.Set("logging.max_size_mb", cfg.Logging.MaxSizeMB)
	v.Set("logging.max_backups", cfg.Logging.MaxBackups)

	if err := v.WriteConfigAs(file); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}
