package recommend

import (
	_ "embed"
	"fmt"

	"stylecurator/internal/models"

	"gopkg.in/yaml.v3"
)

//go:embed descriptions.yaml
var defaultDescriptionsYAML []byte

// Descriptions maps (style type, occasion) pairs to outfit blurbs.
type Descriptions struct {
	Fallback string                       `yaml:"fallback"`
	Styles   map[string]map[string]string `yaml:"styles"`
}

// ParseDescriptions decodes a description table from YAML.
func ParseDescriptions(data []byte) (*Descriptions, error) {
	var d Descriptions
	if err := yaml.Unmarshal(data, &d); err != nil {
		return nil, fmt.Errorf("failed to parse outfit descriptions: %w", err)
	}
	if d.Fallback == "" {
		return nil, fmt.Errorf("outfit descriptions: fallback text is required")
	}
	return &d, nil
}

// DefaultDescriptions returns the table compiled into the binary.
func DefaultDescriptions() *Descriptions {
	d, err := ParseDescriptions(defaultDescriptionsYAML)
	if err != nil {
		panic(err)
	}
	return d
}

// Lookup returns the blurb for the pair, or the fallback when the pair is absent.
func (d *Descriptions) Lookup(style models.StyleType, occasion models.Occasion) string {
	if byOccasion, ok := d.Styles[string(style)]; ok {
		if text, ok := byOccasion[string(occasion)]; ok && text != "" {
			return text
		}
	}
	return d.Fallback
}
