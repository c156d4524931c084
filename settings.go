package main

import (
	"fmt"
	"log"

	"github.com/quasilyte/gdata/v2"
	"gopkg.in/yaml.v3"
)

const (
	settingsObject   = "viewer"
	settingsProperty = "settings"
)

// ViewerSettings is what the viewer remembers between runs.
type ViewerSettings struct {
	Entity string  `yaml:"entity"`
	Tween  string  `yaml:"tween"`
	Speed  float64 `yaml:"speed"`
}

func DefaultSettings() ViewerSettings {
	return ViewerSettings{Entity: "card", Tween: "pop_in", Speed: 1}
}

// SettingsStore loads and saves ViewerSettings through gdata. A nil manager
// keeps settings in memory only.
type SettingsStore struct {
	manager  *gdata.Manager
	settings ViewerSettings
}

func OpenSettings(appName string) *SettingsStore {
	m, err := gdata.Open(gdata.Config{AppName: appName})
	if err != nil {
		log.Printf("settings: gdata unavailable, not persisting: %v", err)
		m = nil
	}
	return NewSettingsStore(m)
}

func NewSettingsStore(m *gdata.Manager) *SettingsStore {
	s := &SettingsStore{manager: m, settings: DefaultSettings()}
	if err := s.Load(); err != nil {
		log.Printf("settings: %v (using defaults)", err)
	}
	return s
}

func (s *SettingsStore) Load() error {
	s.settings = DefaultSettings()
	if s.manager == nil || !s.manager.ObjectPropExists(settingsObject, settingsProperty) {
		return nil
	}

	data, err := s.manager.LoadObjectProp(settingsObject, settingsProperty)
	if err != nil {
		return fmt.Errorf("load settings: %w", err)
	}
	var loaded ViewerSettings
	if err := yaml.Unmarshal(data, &loaded); err != nil {
		return fmt.Errorf("unmarshal settings: %w", err)
	}
	s.settings = loaded.withDefaults()
	return nil
}

func (s *SettingsStore) Save() error {
	if s.manager == nil {
		return nil
	}
	data, err := yaml.Marshal(s.settings)
	if err != nil {
		return fmt.Errorf("marshal settings: %w", err)
	}
	if err := s.manager.SaveObjectProp(settingsObject, settingsProperty, data); err != nil {
		return fmt.Errorf("save settings: %w", err)
	}
	return nil
}

func (s *SettingsStore) Settings() ViewerSettings { return s.settings }

func (s *SettingsStore) Update(fn func(*ViewerSettings)) {
	fn(&s.settings)
	s.settings = s.settings.withDefaults()
	if err := s.Save(); err != nil {
		log.Printf("settings: %v", err)
	}
}

func (v ViewerSettings) withDefaults() ViewerSettings {
	def := DefaultSettings()
	if v.Entity == "" {
		v.Entity = def.Entity
	}
	if v.Tween == "" {
		v.Tween = def.Tween
	}
	if v.Speed <= 0 {
		v.Speed = def.Speed
	}
	return v
}
