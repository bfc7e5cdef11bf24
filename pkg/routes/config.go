package routes

import (
	"fmt"
	"io/fs"

	"gopkg.in/yaml.v3"

	"github.com/glosslab/localeroute/pkg/locale"
)

// Config is the static routing configuration loaded once at startup.
//
//	locales: [en, de, pl]
//	default_locale: en
//	pathnames:
//	  "/about": "/about-us"
//	  "/projects":
//	    en: "/projects"
//	    de: "/projekte"
//	    pl: "/realizacje"
type Config struct {
	Pathnames     Pathnames `yaml:"pathnames"`
	Locales       []string  `yaml:"locales"`
	DefaultLocale string    `yaml:"default_locale"`
}

// LoadConfig reads and parses a YAML routing configuration from fsys.
func LoadConfig(fsys fs.FS, name string) (*Config, error) {
	data, err := fs.ReadFile(fsys, name)
	if err != nil {
		return nil, fmt.Errorf("routes: reading config %q: %w", name, err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedConfig, err)
	}

	return &cfg, nil
}

// Registry builds the locale Registry declared by the configuration.
func (c *Config) Registry() (*locale.Registry, error) {
	opts := []locale.Option{}
	if c.DefaultLocale != "" {
		opts = append(opts, locale.WithDefault(c.DefaultLocale))
	}
	if len(c.Locales) > 0 {
		opts = append(opts, locale.WithLocales(c.Locales...))
	}
	return locale.New(opts...)
}

// Table builds the path Table declared by the configuration, validated
// against reg.
func (c *Config) Table(reg *locale.Registry) (*Table, error) {
	return NewTable(reg, c.Pathnames)
}
