package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"

	"findpanel/internal/domain"
	"findpanel/internal/eventbus"
)

// Config represents the application configuration
type Config struct {
	Version   int               `toml:"version"`
	Panel     PanelSettings     `toml:"panel"`
	UI        UISettings        `toml:"ui"`
	Discovery DiscoverySettings `toml:"discovery"`
}

// PanelSettings is the search panel state kept between sessions
type PanelSettings struct {
	Regex         bool   `toml:"regex"`
	CaseSensitive bool   `toml:"case_sensitive"`
	WholeWord     bool   `toml:"whole_word"`
	Backward      bool   `toml:"backward"`
	Highlight     bool   `toml:"highlight"`
	SearchText    string `toml:"search_text"`
	ReplaceText   string `toml:"replace_text"`
}

// UISettings represents UI-related configuration
type UISettings struct {
	ResultsHeight   int  `toml:"results_height"`
	ShowLineNumbers bool `toml:"show_line_numbers"`
	SaveOnExit      bool `toml:"save_on_exit"`
}

// DiscoverySettings controls which files are opened from directory arguments
type DiscoverySettings struct {
	Extensions []string `toml:"extensions"`
	MaxDepth   int      `toml:"max_depth"`
}

// Value returns the setting for an option identifier
func (p PanelSettings) Value(id domain.OptionID) (any, error) {
	switch id {
	case domain.OptionSearchText:
		return p.SearchText, nil
	case domain.OptionReplaceText:
		return p.ReplaceText, nil
	}
	return p.options().Flag(id)
}

// Set stores the setting for an option identifier
func (p *PanelSettings) Set(id domain.OptionID, value any) error {
	if id.IsFlag() {
		on, ok := value.(bool)
		if !ok {
			return fmt.Errorf("%w: %s wants bool, got %T", domain.ErrInvalidOptionValue, id, value)
		}
		opts := p.options()
		if err := opts.SetFlag(id, on); err != nil {
			return err
		}
		p.Regex, p.CaseSensitive, p.WholeWord = opts.Regex, opts.CaseSensitive, opts.WholeWord
		p.Backward, p.Highlight = opts.Backward, opts.Highlight
		return nil
	}

	text, ok := value.(string)
	switch {
	case id != domain.OptionSearchText && id != domain.OptionReplaceText:
		return fmt.Errorf("%w: %s", domain.ErrUnknownOption, id)
	case !ok:
		return fmt.Errorf("%w: %s wants string, got %T", domain.ErrInvalidOptionValue, id, value)
	case id == domain.OptionSearchText:
		p.SearchText = text
	default:
		p.ReplaceText = text
	}
	return nil
}

func (p PanelSettings) options() domain.SearchOptions {
	return domain.SearchOptions{
		Regex:         p.Regex,
		CaseSensitive: p.CaseSensitive,
		WholeWord:     p.WholeWord,
		Backward:      p.Backward,
		Highlight:     p.Highlight,
	}
}

// ConfigService handles configuration management
type ConfigService interface {
	Load() (*Config, error)
	Save(config *Config) error
	LoadFromPath(path string) (*Config, error)
	SaveToPath(config *Config, path string) error
	Path() string
}

// configService is the concrete implementation
type configService struct {
	bus      eventbus.EventBus
	filePath string
}

// DefaultPath returns the config file location in the user config directory
func DefaultPath() string {
	configDir, err := os.UserConfigDir()
	if err != nil {
		// Fallback to home directory
		configDir, err = os.UserHomeDir()
		if err != nil {
			configDir = "."
		}
		configDir = filepath.Join(configDir, ".config")
	}
	return filepath.Join(configDir, "findpanel", "config.toml")
}

// NewConfigService creates a config service for path, or DefaultPath when
// path is empty. bus may be nil.
func NewConfigService(path string, bus eventbus.EventBus) ConfigService {
	if path == "" {
		path = DefaultPath()
	}
	return &configService{
		bus:      bus,
		filePath: path,
	}
}

// Path returns the file the service reads and writes
func (cs *configService) Path() string {
	return cs.filePath
}

// Load loads the configuration from file, falling back to defaults when
// the file does not exist yet
func (cs *configService) Load() (*Config, error) {
	var cfg *Config
	if _, err := os.Stat(cs.filePath); os.IsNotExist(err) {
		cfg = DefaultConfig()
	} else {
		cfg, err = cs.LoadFromPath(cs.filePath)
		if err != nil {
			return nil, err
		}
	}

	if cs.bus != nil {
		cs.bus.Publish(domain.ConfigLoadedEvent{Path: cs.filePath})
	}
	return cfg, nil
}

// Save saves the configuration to file
func (cs *configService) Save(config *Config) error {
	if err := cs.SaveToPath(config, cs.filePath); err != nil {
		return err
	}

	if cs.bus != nil {
		cs.bus.Publish(domain.ConfigSavedEvent{Path: cs.filePath})
	}
	return nil
}

// LoadFromPath loads configuration from a specific path
func (cs *configService) LoadFromPath(path string) (*Config, error) {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return nil, fmt.Errorf("config file not found: %s", path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	// Start from defaults so missing keys keep sensible values
	cfg := DefaultConfig()
	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	cfg.normalize()

	return cfg, nil
}

// SaveToPath saves configuration to a specific path
func (cs *configService) SaveToPath(config *Config, path string) error {
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

func (c *Config) normalize() {
	if c.UI.ResultsHeight < 3 {
		c.UI.ResultsHeight = 3
	}
	if c.Discovery.MaxDepth < 0 {
		c.Discovery.MaxDepth = 0
	}
}

// DefaultConfig returns the default configuration
func DefaultConfig() *Config {
	return &Config{
		Version: 1,
		Panel: PanelSettings{
			Highlight: true,
		},
		UI: UISettings{
			ResultsHeight:   8,
			ShowLineNumbers: true,
			SaveOnExit:      true,
		},
		Discovery: DiscoverySettings{
			Extensions: []string{".lua", ".py", ".js", ".sh", ".go", ".txt", ".md"},
			MaxDepth:   5,
		},
	}
}
