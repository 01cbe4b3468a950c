package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"findpanel/internal/domain"
	"findpanel/internal/eventbus"
)

func TestLoadMissingFileReturnsDefaults(t *testing.T) {
	bus := eventbus.New()
	var loaded string
	bus.Subscribe(eventbus.EventConfigLoaded, func(e eventbus.DomainEvent) {
		loaded = e.(domain.ConfigLoadedEvent).Path
	})

	path := filepath.Join(t.TempDir(), "config.toml")
	cfg, err := NewConfigService(path, bus).Load()
	require.NoError(t, err)

	assert.Equal(t, DefaultConfig(), cfg)
	assert.Equal(t, path, loaded)
}

func TestSaveAndLoad(t *testing.T) {
	bus := eventbus.New()
	saved := false
	bus.Subscribe(eventbus.EventConfigSaved, func(eventbus.DomainEvent) { saved = true })

	path := filepath.Join(t.TempDir(), "nested", "config.toml")
	svc := NewConfigService(path, bus)

	cfg := DefaultConfig()
	cfg.Panel.Regex = true
	cfg.Panel.SearchText = "f(o+)"
	cfg.Panel.ReplaceText = "$1!"
	cfg.UI.ResultsHeight = 12
	cfg.Discovery.Extensions = []string{".lua"}

	require.NoError(t, svc.Save(cfg))
	assert.True(t, saved)

	got, err := svc.Load()
	require.NoError(t, err)
	assert.Equal(t, cfg, got)
}

func TestLoadPartialFileKeepsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	data := "[panel]\nsearch_text = \"needle\"\n\n[ui]\nresults_height = 1\n"
	require.NoError(t, os.WriteFile(path, []byte(data), 0644))

	cfg, err := NewConfigService(path, nil).Load()
	require.NoError(t, err)

	assert.Equal(t, "needle", cfg.Panel.SearchText)
	assert.True(t, cfg.Panel.Highlight)
	assert.Equal(t, 3, cfg.UI.ResultsHeight, "clamped to the minimum")
	assert.Equal(t, 5, cfg.Discovery.MaxDepth)
}

func TestLoadInvalidFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte("panel = [oops"), 0644))

	_, err := NewConfigService(path, nil).Load()
	assert.ErrorContains(t, err, "failed to parse config")
}

func TestLoadFromPathMissing(t *testing.T) {
	_, err := NewConfigService("", nil).LoadFromPath(filepath.Join(t.TempDir(), "nope.toml"))
	assert.ErrorContains(t, err, "config file not found")
}

func TestDefaultPath(t *testing.T) {
	assert.Equal(t, "config.toml", filepath.Base(DefaultPath()))
	assert.Equal(t, DefaultPath(), NewConfigService("", nil).Path())
}

func TestPanelSettingsRoundTrip(t *testing.T) {
	tests := []struct {
		id    domain.OptionID
		value any
	}{
		{domain.OptionRegex, true},
		{domain.OptionCaseSensitive, true},
		{domain.OptionWholeWord, true},
		{domain.OptionBackward, true},
		{domain.OptionHighlight, false},
		{domain.OptionSearchText, "foo"},
		{domain.OptionReplaceText, "bar"},
	}

	for _, tt := range tests {
		t.Run(string(tt.id), func(t *testing.T) {
			p := DefaultConfig().Panel
			require.NoError(t, p.Set(tt.id, tt.value))
			got, err := p.Value(tt.id)
			require.NoError(t, err)
			assert.Equal(t, tt.value, got)
		})
	}
}

func TestPanelSettingsErrors(t *testing.T) {
	var p PanelSettings

	assert.ErrorIs(t, p.Set("nope", "x"), domain.ErrUnknownOption)
	assert.ErrorIs(t, p.Set(domain.OptionHighlight, "yes"), domain.ErrInvalidOptionValue)
	assert.ErrorIs(t, p.Set(domain.OptionReplaceText, 1), domain.ErrInvalidOptionValue)

	_, err := p.Value("nope")
	assert.ErrorIs(t, err, domain.ErrUnknownOption)
}
