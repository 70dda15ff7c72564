package prompt

import (
	_ "embed"
	"fmt"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"
)

//go:embed styles.yaml
var stylesYAML []byte

// Style is one visual style directive set from the catalog.
type Style struct {
	Label          string `yaml:"label"`
	Description    string `yaml:"description"`
	VideoDirective string `yaml:"video_directive"`
	ImageDirective string `yaml:"image_directive"`
}

// DefaultStyle is the catalog fallback.
const DefaultStyle = "realistic"

var styles = loadStyles()

func loadStyles() map[string]Style {
	out := make(map[string]Style)
	if err := yaml.Unmarshal(stylesYAML, &out); err != nil {
		// The catalog is embedded and covered by tests; a parse failure
		// is a build defect, not a runtime condition.
		panic(fmt.Sprintf("prompt: bad embedded style catalog: %v", err))
	}
	return out
}

// GetStyle looks up a style by name, falling back to the default.
func GetStyle(name string) Style {
	if s, ok := styles[name]; ok {
		return s
	}
	return styles[DefaultStyle]
}

// HasStyle reports whether name is a known catalog entry.
func HasStyle(name string) bool {
	_, ok := styles[name]
	return ok
}

// StyleNames returns the catalog names in sorted order for CLI display.
func StyleNames() []string {
	names := make([]string, 0, len(styles))
	for name := range styles {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// ListStyles formats the catalog for terminal display.
func ListStyles() string {
	var sb strings.Builder
	for _, name := range StyleNames() {
		fmt.Fprintf(&sb, "  %-16s %s\n", name, styles[name].Description)
	}
	return strings.TrimRight(sb.String(), "\n")
}
