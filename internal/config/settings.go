// internal/config/settings.go
package config

import (
	"fmt"

	"github.com/charmbracelet/log"
	"github.com/quasilyte/gdata/v2"
	"gopkg.in/yaml.v3"
)

// AppName is the gdata storage namespace for viewer settings.
const AppName = "go_tile_defense"

// Settings — пользовательские настройки просмотрщика.
type Settings struct {
	SpeedMultiplier int    `yaml:"speedMultiplier"` // 1, 2 or 4
	ShowRanges      bool   `yaml:"showRanges"`
	LastStage       string `yaml:"lastStage"`
}

func DefaultSettings() *Settings {
	return &Settings{SpeedMultiplier: 1, ShowRanges: true, LastStage: "1"}
}

// SpeedSteps — множители скорости, по которым ходит кнопка.
var SpeedSteps = []int{1, 2, 4}

const (
	settingsObject   = "settings"
	settingsProperty = "viewer"
)

// SettingsManager loads and stores Settings through gdata. A nil gdata
// manager keeps the settings in memory only.
type SettingsManager struct {
	store    *gdata.Manager
	settings *Settings
}

// OpenSettings opens the gdata store for AppName. Failing to open it is not
// fatal: the returned manager works in memory.
func OpenSettings() *SettingsManager {
	store, err := gdata.Open(gdata.Config{AppName: AppName})
	if err != nil {
		log.Warn("settings storage unavailable, using memory", "err", err)
		store = nil
	}
	return NewSettingsManager(store)
}

func NewSettingsManager(store *gdata.Manager) *SettingsManager {
	sm := &SettingsManager{store: store, settings: DefaultSettings()}
	if err := sm.Load(); err != nil {
		log.Warn("failed to load settings, using defaults", "err", err)
	}
	return sm
}

// Load reads the saved settings. Missing data leaves the defaults in place.
func (sm *SettingsManager) Load() error {
	sm.settings = DefaultSettings()
	if sm.store == nil || !sm.store.ObjectPropExists(settingsObject, settingsProperty) {
		return nil
	}
	data, err := sm.store.LoadObjectProp(settingsObject, settingsProperty)
	if err != nil {
		return fmt.Errorf("failed to load settings: %w", err)
	}
	loaded := DefaultSettings()
	if err := yaml.Unmarshal(data, loaded); err != nil {
		return fmt.Errorf("failed to unmarshal settings: %w", err)
	}
	loaded.SpeedMultiplier = normalizeSpeed(loaded.SpeedMultiplier)
	sm.settings = loaded
	log.Debug("settings loaded", "speed", loaded.SpeedMultiplier, "ranges", loaded.ShowRanges)
	return nil
}

// Save persists the current settings. It is a no-op in memory mode.
func (sm *SettingsManager) Save() error {
	if sm.store == nil {
		return nil
	}
	data, err := yaml.Marshal(sm.settings)
	if err != nil {
		return fmt.Errorf("failed to marshal settings: %w", err)
	}
	if err := sm.store.SaveObjectProp(settingsObject, settingsProperty, data); err != nil {
		return fmt.Errorf("failed to save settings: %w", err)
	}
	return nil
}

func (sm *SettingsManager) Settings() *Settings {
	return sm.settings
}

// CycleSpeed переключает на следующую скорость и возвращает её.
func (sm *SettingsManager) CycleSpeed() int {
	cur := normalizeSpeed(sm.settings.SpeedMultiplier)
	for i, s := range SpeedSteps {
		if s == cur {
			sm.settings.SpeedMultiplier = SpeedSteps[(i+1)%len(SpeedSteps)]
			break
		}
	}
	return sm.settings.SpeedMultiplier
}

func (sm *SettingsManager) ToggleRanges() bool {
	sm.settings.ShowRanges = !sm.settings.ShowRanges
	return sm.settings.ShowRanges
}

func (sm *SettingsManager) SetLastStage(id string) {
	sm.settings.LastStage = id
}

// SpeedIndex returns the position of the current speed in SpeedSteps.
func (sm *SettingsManager) SpeedIndex() int {
	cur := normalizeSpeed(sm.settings.SpeedMultiplier)
	for i, s := range SpeedSteps {
		if s == cur {
			return i
		}
	}
	return 0
}

func normalizeSpeed(v int) int {
	for _, s := range SpeedSteps {
		if s == v {
			return v
		}
	}
	return SpeedSteps[0]
}
