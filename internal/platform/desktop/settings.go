package desktop

import (
	"fmt"
	"io"

	"github.com/charmbracelet/log"
	"github.com/quasilyte/gdata/v2"
	"gopkg.in/yaml.v3"
)

// AppName is the gdata application name the settings live under.
const AppName = "quizbreak"

const (
	settingsObject   = "settings"
	settingsProperty = "window"
)

// Settings are the desktop preferences kept between runs.
type Settings struct {
	Fullscreen  bool    `yaml:"fullscreen"`
	WindowScale float64 `yaml:"window_scale"`
	LastCatalog string  `yaml:"last_catalog,omitempty"`
}

// DefaultSettings returns the settings used before anything was saved.
func DefaultSettings() Settings {
	return Settings{WindowScale: 1}
}

// normalize clamps the scale to a usable range.
func (s Settings) normalize() Settings {
	if s.WindowScale < 0.5 {
		s.WindowScale = 1
	}
	if s.WindowScale > 4 {
		s.WindowScale = 4
	}
	return s
}

// SettingsStore persists Settings through gdata. A store without a manager
// keeps settings in memory only.
type SettingsStore struct {
	manager *gdata.Manager
	current Settings
	logger  *log.Logger
}

// OpenSettings opens the gdata store for appName. When the data directory is
// unavailable the returned store works in memory and the failure is logged.
func OpenSettings(appName string, logger *log.Logger) *SettingsStore {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	m, err := gdata.Open(gdata.Config{AppName: appName})
	if err != nil {
		logger.Warn("settings will not be saved", "error", err)
		m = nil
	}
	return NewSettingsStore(m, logger)
}

// NewSettingsStore wraps an existing manager, which may be nil, and loads
// whatever was saved before. Unreadable data falls back to defaults.
func NewSettingsStore(m *gdata.Manager, logger *log.Logger) *SettingsStore {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	s := &SettingsStore{manager: m, current: DefaultSettings(), logger: logger}
	if err := s.Load(); err != nil {
		logger.Warn("using default settings", "error", err)
	}
	return s
}

// Persistent reports whether settings reach disk.
func (s *SettingsStore) Persistent() bool {
	return s.manager != nil
}

// Get returns the current settings.
func (s *SettingsStore) Get() Settings {
	return s.current
}

// Load reads the saved settings, keeping defaults when nothing was saved.
func (s *SettingsStore) Load() error {
	if s.manager == nil {
		return nil
	}
	if !s.manager.ObjectPropExists(settingsObject, settingsProperty) {
		return nil
	}
	data, err := s.manager.LoadObjectProp(settingsObject, settingsProperty)
	if err != nil {
		return fmt.Errorf("desktop: load settings: %w", err)
	}
	loaded := DefaultSettings()
	if err := yaml.Unmarshal(data, &loaded); err != nil {
		return fmt.Errorf("desktop: parse settings: %w", err)
	}
	s.current = loaded.normalize()
	return nil
}

// Save replaces the current settings and writes them out.
func (s *SettingsStore) Save(settings Settings) error {
	s.current = settings.normalize()
	if s.manager == nil {
		return nil
	}
	data, err := yaml.Marshal(s.current)
	if err != nil {
		return fmt.Errorf("desktop: encode settings: %w", err)
	}
	if err := s.manager.SaveObjectProp(settingsObject, settingsProperty, data); err != nil {
		return fmt.Errorf("desktop: save settings: %w", err)
	}
	return nil
}
