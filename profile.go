package svgico

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Profile is a named conversion preset: the sizes to embed in the icon and
// the density used to interpret the source document.
type Profile struct {
	Name  string  `yaml:"name"`
	Sizes []uint  `yaml:"sizes"`
	DPI   float64 `yaml:"dpi"`
}

// LoadProfile reads a conversion preset from a YAML file. An empty size list
// falls back to DefaultSizes and a missing density to DefaultDPI.
func LoadProfile(path string) (*Profile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("unable to read the profile file: %w", err)
	}

	var p Profile
	if err := yaml.Unmarshal(data, &p); err != nil {
		return nil, fmt.Errorf("unable to parse the profile file: %w", err)
	}

	if len(p.Sizes) == 0 {
		p.Sizes = DefaultSizes
	}
	if err := resolveSizes(p.Sizes); err != nil {
		return nil, err
	}
	if p.DPI <= 0 {
		p.DPI = DefaultDPI
	}
	return &p, nil
}
