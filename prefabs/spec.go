package prefabs

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// LoadSpec reads a prefab file from src and decodes it over a zero T.
func LoadSpec[T any](src Source, filename string) (T, error) {
	var spec T
	if err := DecodeSpec(src, filename, &spec); err != nil {
		var zero T
		return zero, err
	}
	return spec, nil
}

// DecodeSpec reads a prefab file from src and decodes it into out. Fields
// the file does not mention keep their current values.
func DecodeSpec(src Source, filename string, out any) error {
	data, err := src.Load(filename)
	if err != nil {
		return fmt.Errorf("prefabs: load %s: %w", filename, err)
	}
	if err := yaml.Unmarshal(data, out); err != nil {
		return fmt.Errorf("prefabs: unmarshal %s: %w", filename, err)
	}
	return nil
}

// YAMLColor decodes "#rrggbb" or "#rrggbbaa".
type YAMLColor struct {
	color.NRGBA
}

func Hex(rgb uint32) YAMLColor {
	return YAMLColor{color.NRGBA{R: uint8(rgb >> 16), G: uint8(rgb >> 8), B: uint8(rgb), A: 0xff}}
}

func (c *YAMLColor) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind != yaml.ScalarNode {
		return fmt.Errorf("color must be a string")
	}
	parsed, err := ParseColor(value.Value)
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}

func (c YAMLColor) MarshalYAML() (any, error) {
	if c.A == 0xff {
		return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B), nil
	}
	return fmt.Sprintf("#%02x%02x%02x%02x", c.R, c.G, c.B, c.A), nil
}

func ParseColor(raw string) (YAMLColor, error) {
	s := strings.TrimPrefix(strings.TrimSpace(raw), "#")
	if len(s) != 6 && len(s) != 8 {
		return YAMLColor{}, fmt.Errorf("invalid color format: %s", raw)
	}

	parse := func(start int) (uint8, error) {
		v, err := strconv.ParseUint(s[start:start+2], 16, 8)
		return uint8(v), err
	}

	r, err := parse(0)
	if err != nil {
		return YAMLColor{}, err
	}
	g, err := parse(2)
	if err != nil {
		return YAMLColor{}, err
	}
	b, err := parse(4)
	if err != nil {
		return YAMLColor{}, err
	}

	a := uint8(255)
	if len(s) == 8 {
		a, err = parse(6)
		if err != nil {
			return YAMLColor{}, err
		}
	}

	return YAMLColor{color.NRGBA{R: r, G: g, B: b, A: a}}, nil
}
