package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"time"

	"go.yaml.in/yaml/v3"

	"github.com/ruminaider/selectv2/internal/item"
	"github.com/ruminaider/selectv2/internal/source"
	"github.com/ruminaider/selectv2/internal/store"
)

// DefaultPageSize is the page size of the demo's paginated source.
const DefaultPageSize = 20

// ErrInvalidConfig is wrapped by every validation failure in Parse.
var ErrInvalidConfig = errors.New("invalid config")

// Config represents ~/.selectv2/config.yaml.
type Config struct {
	Multiple        bool          `yaml:"multiple"`
	CreationEnabled bool          `yaml:"creation_enabled"`
	Debounce        time.Duration `yaml:"debounce,omitempty"`
	CloseDelay      time.Duration `yaml:"close_delay,omitempty"`
	PageSize        int           `yaml:"page_size,omitempty"`
	Source          string        `yaml:"source,omitempty"`
}

// Default returns a Config with default values.
func Default() Config {
	return Config{
		Debounce:   store.DefaultDebounceWindow,
		CloseDelay: store.DefaultCloseDelay,
		PageSize:   DefaultPageSize,
		Source:     source.KindStatic.String(),
	}
}

// Parse parses config.yaml bytes into a Config. Omitted keys keep their
// defaults.
func Parse(data []byte) (Config, error) {
	cfg := Default()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("parsing config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks value ranges and the source name.
func (c Config) Validate() error {
	if c.Debounce < 0 {
		return fmt.Errorf("%w: negative debounce %s", ErrInvalidConfig, c.Debounce)
	}
	if c.CloseDelay < 0 {
		return fmt.Errorf("%w: negative close_delay %s", ErrInvalidConfig, c.CloseDelay)
	}
	if c.PageSize < 0 {
		return fmt.Errorf("%w: negative page_size %d", ErrInvalidConfig, c.PageSize)
	}
	if _, ok := source.ParseKind(c.Source); !ok {
		return fmt.Errorf("%w: unknown source %q", ErrInvalidConfig, c.Source)
	}
	return nil
}

// Marshal serializes a Config to YAML bytes.
func Marshal(cfg Config) ([]byte, error) {
	return yaml.Marshal(cfg)
}

// Load reads and parses the config file at path. A missing file yields the
// defaults.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return Default(), nil
	}
	if err != nil {
		return Config{}, fmt.Errorf("reading config: %w", err)
	}
	return Parse(data)
}

// Kind returns the configured source shape.
func (c Config) Kind() source.Kind {
	k, _ := source.ParseKind(c.Source)
	return k
}

// StoreOptions maps the file settings onto store options. Source and the
// callbacks are left for the caller.
func (c Config) StoreOptions() store.Options {
	return store.Options{
		Multiple:        c.Multiple,
		CreationEnabled: c.CreationEnabled,
		DebounceWindow:  c.Debounce,
		CloseDelay:      c.CloseDelay,
	}
}

// ItemsFile is the layout of an items file.
type ItemsFile struct {
	Items []item.Item `yaml:"items"`
}

// ParseItems parses an items file and validates every entry.
func ParseItems(data []byte) ([]item.Item, error) {
	var f ItemsFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parsing items: %w", err)
	}
	seen := make(map[item.Value]bool, len(f.Items))
	for i, it := range f.Items {
		if err := item.Validate(it); err != nil {
			return nil, fmt.Errorf("item %d: %w", i, err)
		}
		if seen[it.Value] {
			return nil, fmt.Errorf("item %d: duplicate value %s", i, item.Key(it.Value))
		}
		seen[it.Value] = true
	}
	return f.Items, nil
}

// LoadItems reads and parses the items file at path.
func LoadItems(path string) ([]item.Item, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading items: %w", err)
	}
	return ParseItems(data)
}
