// Package storefront holds the root data the UI is built from: site settings
// loaded from YAML, the preview-mode flag, and customer records.
package storefront

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// MenuItem is a navigation link shown in the desktop and mobile menus.
type MenuItem struct {
	Label string `yaml:"label"`
	URL   string `yaml:"url"`
}

// PromobarSettings configures the promo bar above the header.
type PromobarSettings struct {
	Enabled  bool     `yaml:"enabled"`
	Messages []string `yaml:"messages"`
}

// HeaderSettings groups header-level configuration.
type HeaderSettings struct {
	Promobar PromobarSettings `yaml:"promobar"`
	Menu     []MenuItem       `yaml:"menu"`
}

type SearchSettings struct {
	Placeholder string `yaml:"placeholder"`
}

type CartSettings struct {
	EmptyMessage string `yaml:"empty_message"`
}

// FrameSettings names an embedded third-party frame (reviews widget, chat, ...).
type FrameSettings struct {
	ID    string `yaml:"id"`
	Title string `yaml:"title"`
}

// SiteSettings is the site configuration copied into UI state at construction.
type SiteSettings struct {
	StoreName string          `yaml:"store_name"`
	Header    HeaderSettings  `yaml:"header"`
	Search    SearchSettings  `yaml:"search"`
	Cart      CartSettings    `yaml:"cart"`
	Frames    []FrameSettings `yaml:"frames"`
}

// DefaultSettings provides the settings used when no file is given or a file
// leaves a field unset.
var DefaultSettings = SiteSettings{
	StoreName: "Storefront",
	Header: HeaderSettings{
		Promobar: PromobarSettings{
			Enabled:  true,
			Messages: []string{"Free shipping on orders over $50"},
		},
		Menu: []MenuItem{
			{Label: "Shop", URL: "/collections/all"},
			{Label: "New Arrivals", URL: "/collections/new"},
			{Label: "About", URL: "/pages/about"},
		},
	},
	Search: SearchSettings{Placeholder: "Search products"},
	Cart:   CartSettings{EmptyMessage: "Your cart is empty"},
	Frames: []FrameSettings{
		{ID: "reviews", Title: "Reviews widget"},
		{ID: "chat", Title: "Support chat"},
	},
}

// LoadSettings reads a YAML settings file and merges it over DefaultSettings.
// Only fields present in the file override the defaults.
func LoadSettings(path string) (SiteSettings, error) {
	cfg := DefaultSettings
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("read settings %q: %w", path, err)
	}
	if err := mergeSettings(&cfg, data); err != nil {
		return cfg, fmt.Errorf("parse settings %q: %w", path, err)
	}
	return cfg, nil
}

func mergeSettings(cfg *SiteSettings, data []byte) error {
	var file struct {
		StoreName string `yaml:"store_name"`
		Header    struct {
			Promobar *PromobarSettings `yaml:"promobar"`
			Menu     []MenuItem        `yaml:"menu"`
		} `yaml:"header"`
		Search SearchSettings  `yaml:"search"`
		Cart   CartSettings    `yaml:"cart"`
		Frames []FrameSettings `yaml:"frames"`
	}
	if err := yaml.Unmarshal(data, &file); err != nil {
		return err
	}

	if file.StoreName != "" {
		cfg.StoreName = file.StoreName
	}
	// A promobar block replaces the default one wholesale so that
	// "enabled: false" can switch it off.
	if file.Header.Promobar != nil {
		cfg.Header.Promobar = *file.Header.Promobar
	}
	if len(file.Header.Menu) > 0 {
		cfg.Header.Menu = file.Header.Menu
	}
	if file.Search.Placeholder != "" {
		cfg.Search.Placeholder = file.Search.Placeholder
	}
	if file.Cart.EmptyMessage != "" {
		cfg.Cart.EmptyMessage = file.Cart.EmptyMessage
	}
	if len(file.Frames) > 0 {
		cfg.Frames = file.Frames
	}
	return nil
}

// PromobarVisible reports whether the promo bar should start open.
func (s SiteSettings) PromobarVisible() bool {
	return s.Header.Promobar.Enabled && len(s.Header.Promobar.Messages) > 0
}
