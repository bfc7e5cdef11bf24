package messages

import (
	"fmt"
	"maps"
	"strings"
)

// Interpolate replaces {{name}} placeholders in the template with values
// from the map. Placeholders without a matching value are left unchanged.
//
// Example:
//
//	template: "Hello, {{name}}! You have {{count}} messages."
//	values:   M{"name": "Ola", "count": 5}
//	returns:  "Hello, Ola! You have 5 messages."
func Interpolate(template string, values M) string {
	if len(values) == 0 {
		return template
	}

	result := template
	for name, value := range values {
		result = strings.ReplaceAll(result, "{{"+name+"}}", fmt.Sprintf("%v", value))
	}

	return result
}

// mergePlaceholders collapses a variadic list of maps into one, with later
// maps overriding earlier ones.
func mergePlaceholders(placeholders ...M) M {
	if len(placeholders) == 0 {
		return nil
	}
	if len(placeholders) == 1 {
		return placeholders[0]
	}

	merged := make(M)
	for _, p := range placeholders {
		maps.Copy(merged, p)
	}
	return merged
}
