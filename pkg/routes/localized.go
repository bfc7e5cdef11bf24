package routes

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// Localized is the per-locale path configuration for one logical route.
// In YAML it is either a plain string (one concrete path shared by every
// locale) or a mapping of locale to concrete path:
//
//	pathnames:
//	  "/about": "/about-us"
//	  "/projects":
//	    en: "/projects"
//	    de: "/projekte"
//	    pl: "/realizacje"
type Localized struct {
	shared    string
	perLocale map[string]string
}

// Shared returns a Localized using one concrete path for every locale.
func Shared(path string) Localized {
	return Localized{shared: path}
}

// ForLocales returns a Localized with explicit per-locale concrete paths.
func ForLocales(paths map[string]string) Localized {
	return Localized{perLocale: paths}
}

// Pathnames maps logical route patterns to their localized paths.
type Pathnames map[string]Localized

// UnmarshalYAML accepts either a scalar path or a locale-to-path mapping.
func (l *Localized) UnmarshalYAML(node *yaml.Node) error {
	switch node.Kind {
	case yaml.ScalarNode:
		var s string
		if err := node.Decode(&s); err != nil {
			return fmt.Errorf("%w: %v", ErrMalformedConfig, err)
		}
		*l = Localized{shared: s}
		return nil
	case yaml.MappingNode:
		var m map[string]string
		if err := node.Decode(&m); err != nil {
			return fmt.Errorf("%w: %v", ErrMalformedConfig, err)
		}
		*l = Localized{perLocale: m}
		return nil
	default:
		return fmt.Errorf("%w: pathnames entries must be a string or a locale mapping", ErrMalformedConfig)
	}
}
