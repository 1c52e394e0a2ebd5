package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"
	"github.com/sirupsen/logrus"

	"hearsay/internal/domain"
	"hearsay/internal/eventbus"
	"hearsay/internal/logging"
)

// Config represents the application configuration
type Config struct {
	Version   int            `toml:"version"`
	InboxDir  string         `toml:"inbox_dir"`
	OutputDir string         `toml:"output_dir"`
	Engine    EngineSettings `toml:"engine"`
	UI        UISettings     `toml:"ui"`
}

// EngineSettings configures the external transcription command. Args entries
// may reference {input}, {output}, {model} and {language} placeholders.
type EngineSettings struct {
	Command     string   `toml:"command"`
	Args        []string `toml:"args"`
	Model       string   `toml:"model"`
	Language    string   `toml:"language"`
	Workers     int      `toml:"workers"`
	MaxFileSize int64    `toml:"max_file_size"`
}

// UISettings represents UI-related configuration
type UISettings struct {
	Mouse       bool `toml:"mouse"`        // terminal mouse reporting (gestures need it)
	HapticsBell bool `toml:"haptics_bell"` // terminal bell on feedback pulses
	HapticsTone bool `toml:"haptics_tone"` // synthesized tone on feedback pulses
	ShowHints   bool `toml:"show_hints"`   // key hint line at the bottom
}

// Service handles configuration management
type Service interface {
	Load() (*Config, error)
	Save(config *Config) error
	LoadFromPath(path string) (*Config, error)
	SaveToPath(config *Config, path string) error
	Path() string
}

// service is the concrete implementation
type service struct {
	bus      eventbus.EventBus
	filePath string
	log      *logrus.Entry
}

// NewService creates a config service rooted at the user config directory.
func NewService() Service {
	configDir, err := os.UserConfigDir()
	if err != nil {
		configDir, err = os.UserHomeDir()
		if err != nil {
			configDir = "."
		}
		configDir = filepath.Join(configDir, ".config")
	}

	dir := filepath.Join(configDir, "hearsay")
	os.MkdirAll(dir, 0755)

	return &service{
		filePath: filepath.Join(dir, "config.toml"),
		log:      logging.NewLogger("config"),
	}
}

// NewServiceWithBus creates a config service that announces loads and saves
// on the event bus.
func NewServiceWithBus(bus eventbus.EventBus) Service {
	cs := NewService().(*service)
	cs.bus = bus
	return cs
}

// NewServiceAtPath creates a config service pinned to an explicit file.
func NewServiceAtPath(path string, bus eventbus.EventBus) Service {
	os.MkdirAll(filepath.Dir(path), 0755)
	return &service{
		bus:      bus,
		filePath: path,
		log:      logging.NewLogger("config"),
	}
}

// Path returns the file the service reads and writes.
func (cs *service) Path() string {
	return cs.filePath
}

// Load loads the configuration. On first run the defaults are written out as
// a starter file; when that write fails the in-memory defaults still apply.
func (cs *service) Load() (*Config, error) {
	if _, err := os.Stat(cs.filePath); os.IsNotExist(err) {
		cfg := DefaultConfig()
		if err := cs.SaveToPath(cfg, cs.filePath); err != nil {
			cs.log.Warnf("Failed to write starter config: %v", err)
		}
		cs.announceLoaded()
		return cfg, nil
	}

	cfg, err := cs.LoadFromPath(cs.filePath)
	if err != nil {
		return nil, err
	}
	cs.announceLoaded()
	return cfg, nil
}

// Save saves the configuration to the service path.
func (cs *service) Save(config *Config) error {
	if err := cs.SaveToPath(config, cs.filePath); err != nil {
		return err
	}
	if cs.bus != nil {
		cs.bus.Publish(domain.ConfigSavedEvent{Path: cs.filePath})
	}
	return nil
}

// LoadFromPath loads configuration from a specific path
func (cs *service) LoadFromPath(path string) (*Config, error) {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return nil, fmt.Errorf("config file not found: %s", path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var cfg Config
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	applyFallbacks(&cfg)
	return &cfg, nil
}

// SaveToPath saves configuration to a specific path
func (cs *service) SaveToPath(config *Config, path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := toml.Marshal(config)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}
	return nil
}

func (cs *service) announceLoaded() {
	if cs.bus != nil {
		cs.bus.Publish(domain.ConfigLoadedEvent{Path: cs.filePath})
	}
}

// applyFallbacks fills fields a hand-edited file may have dropped.
func applyFallbacks(cfg *Config) {
	def := DefaultConfig()
	if cfg.InboxDir == "" {
		cfg.InboxDir = def.InboxDir
	}
	if cfg.OutputDir == "" {
		cfg.OutputDir = def.OutputDir
	}
	if cfg.Engine.Command == "" {
		cfg.Engine = def.Engine
	}
	if cfg.Engine.Workers <= 0 {
		cfg.Engine.Workers = def.Engine.Workers
	}
	if cfg.Engine.MaxFileSize <= 0 {
		cfg.Engine.MaxFileSize = def.Engine.MaxFileSize
	}
}

// DefaultConfig returns the default configuration
func DefaultConfig() *Config {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		homeDir = "."
	}

	return &Config{
		Version:   1,
		InboxDir:  filepath.Join(homeDir, "hearsay", "inbox"),
		OutputDir: filepath.Join(homeDir, "hearsay", "transcripts"),
		Engine: EngineSettings{
			Command:     "whisper-cli",
			Args:        []string{"-m", "{model}", "-l", "{language}", "-f", "{input}", "-of", "{output}", "-otxt", "--print-progress"},
			Model:       "models/ggml-base.en.bin",
			Language:    "en",
			Workers:     2,
			MaxFileSize: 512 << 20,
		},
		UI: UISettings{
			Mouse:       true,
			HapticsBell: true,
			HapticsTone: false,
			ShowHints:   true,
		},
	}
}
