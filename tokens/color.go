package tokens

import (
	"fmt"
	"strings"
)

// Color is an 8-bit RGBA color value. It serializes as a lowercase
// "#rrggbbaa" hex string, matching the upstream theme JSON format.
type Color struct {
	R uint8
	G uint8
	B uint8
	A uint8
}

// ParseColor parses a hex color string. Accepted forms are #rgb, #rgba,
// #rrggbb, and #rrggbbaa. Alpha defaults to ff when omitted.
func ParseColor(hex string) (Color, error) {
	s := strings.TrimPrefix(strings.ToLower(strings.TrimSpace(hex)), "#")
	if len(hex) == len(s) {
		return Color{}, fmt.Errorf("invalid hex color %q: missing '#' prefix", hex)
	}

	switch len(s) {
	case 3:
		s = expandShort(s) + "ff"
	case 4:
		s = expandShort(s)
	case 6:
		s += "ff"
	case 8:
		// Full form.
	default:
		return Color{}, fmt.Errorf("invalid hex color %q: expected 3, 4, 6 or 8 hex digits", hex)
	}

	var c Color
	parts := [4]*uint8{&c.R, &c.G, &c.B, &c.A}
	for i, p := range parts {
		v, err := parseHexByte(s[i*2 : i*2+2])
		if err != nil {
			return Color{}, fmt.Errorf("invalid hex color %q: %w", hex, err)
		}
		*p = v
	}
	return c, nil
}

// MustColor parses a hex color and panics on failure. Intended for the
// frozen token set literals only.
func MustColor(hex string) Color {
	c, err := ParseColor(hex)
	if err != nil {
		panic(err)
	}
	return c
}

// Hex returns the canonical "#rrggbbaa" representation.
func (c Color) Hex() string {
	return fmt.Sprintf("#%02x%02x%02x%02x", c.R, c.G, c.B, c.A)
}

func (c Color) String() string { return c.Hex() }

// MarshalText implements encoding.TextMarshaler, used by both the JSON
// and YAML encoders.
func (c Color) MarshalText() ([]byte, error) {
	return []byte(c.Hex()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (c *Color) UnmarshalText(text []byte) error {
	parsed, err := ParseColor(string(text))
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}

// MarshalYAML serializes the color as its hex string.
func (c Color) MarshalYAML() (any, error) {
	return c.Hex(), nil
}

// UnmarshalYAML parses the color from a hex string scalar.
func (c *Color) UnmarshalYAML(unmarshal func(any) error) error {
	var s string
	if err := unmarshal(&s); err != nil {
		return err
	}
	return c.UnmarshalText([]byte(s))
}

// expandShort doubles each digit of a #rgb / #rgba short form.
func expandShort(s string) string {
	var b strings.Builder
	for _, r := range s {
		b.WriteRune(r)
		b.WriteRune(r)
	}
	return b.String()
}

func parseHexByte(s string) (uint8, error) {
	var v uint8
	for i := 0; i < 2; i++ {
		d, ok := hexDigit(s[i])
		if !ok {
			return 0, fmt.Errorf("non-hex digit %q", s[i])
		}
		v = v<<4 | d
	}
	return v, nil
}

func hexDigit(b byte) (uint8, bool) {
	switch {
	case b >= '0' && b <= '9':
		return b - '0', true
	case b >= 'a' && b <= 'f':
		return b - 'a' + 10, true
	case b >= 'A' && b <= 'F':
		return b - 'A' + 10, true
	}
	return 0, false
}
