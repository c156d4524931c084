package main

import (
	"testing"

	"github.com/quasilyte/gdata/v2"
)

func TestSettingsWithoutManager(t *testing.T) {
	s := NewSettingsStore(nil)
	if got := s.Settings(); got != DefaultSettings() {
		t.Fatalf("settings = %+v, want defaults", got)
	}
	s.Update(func(v *ViewerSettings) { v.Tween = "slide"; v.Speed = -2 })
	got := s.Settings()
	if got.Tween != "slide" || got.Speed != 1 {
		t.Fatalf("settings = %+v, want tween slide with default speed", got)
	}
}

func TestSettingsPersist(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	t.Setenv("XDG_DATA_HOME", "")

	m, err := gdata.Open(gdata.Config{AppName: "tweens_viewer_test"})
	if err != nil {
		t.Skipf("gdata unavailable: %v", err)
	}

	s := NewSettingsStore(m)
	s.Update(func(v *ViewerSettings) {
		v.Entity = "banner"
		v.Tween = "fill_bar"
		v.Speed = 0.5
	})

	reloaded := NewSettingsStore(m)
	want := ViewerSettings{Entity: "banner", Tween: "fill_bar", Speed: 0.5}
	if got := reloaded.Settings(); got != want {
		t.Fatalf("reloaded = %+v, want %+v", got, want)
	}
}
