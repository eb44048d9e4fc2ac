package storefront

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeSettings(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "settings.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestLoadSettings_MergesOverDefaults(t *testing.T) {
	path := writeSettings(t, `
store_name: Acme Outfitters
search:
  placeholder: Find gear
`)
	s, err := LoadSettings(path)
	require.NoError(t, err)

	assert.Equal(t, "Acme Outfitters", s.StoreName)
	assert.Equal(t, "Find gear", s.Search.Placeholder)
	assert.Equal(t, DefaultSettings.Header.Menu, s.Header.Menu)
	assert.Equal(t, DefaultSettings.Cart.EmptyMessage, s.Cart.EmptyMessage)
	assert.True(t, s.PromobarVisible())
}

func TestLoadSettings_PromobarCanBeDisabled(t *testing.T) {
	path := writeSettings(t, `
header:
  promobar:
    enabled: false
    messages: ["Sale"]
`)
	s, err := LoadSettings(path)
	require.NoError(t, err)
	assert.False(t, s.Header.Promobar.Enabled)
	assert.False(t, s.PromobarVisible())
}

func TestLoadSettings_MenuAndFrames(t *testing.T) {
	path := writeSettings(t, `
header:
  menu:
    - label: Bikes
      url: /collections/bikes
frames:
  - id: video
    title: Product video
`)
	s, err := LoadSettings(path)
	require.NoError(t, err)
	require.Len(t, s.Header.Menu, 1)
	assert.Equal(t, "Bikes", s.Header.Menu[0].Label)
	require.Len(t, s.Frames, 1)
	assert.Equal(t, "video", s.Frames[0].ID)
}

func TestLoadSettings_Errors(t *testing.T) {
	_, err := LoadSettings(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
	assert.ErrorIs(t, err, os.ErrNotExist)

	path := writeSettings(t, "header: [unclosed")
	_, err = LoadSettings(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parse settings")
}

func TestPromobarVisible_RequiresMessages(t *testing.T) {
	s := DefaultSettings
	s.Header.Promobar = PromobarSettings{Enabled: true}
	assert.False(t, s.PromobarVisible())
}

func TestCustomer_DisplayName(t *testing.T) {
	c := NewPreviewCustomer("  jo@example.com ")
	assert.NotEmpty(t, c.ID)
	assert.Equal(t, "jo@example.com", c.DisplayName())

	c.FirstName, c.LastName = "Jo", "Park"
	assert.Equal(t, "Jo Park", c.DisplayName())

	var nilCustomer *Customer
	assert.Equal(t, "", nilCustomer.DisplayName())
}
