package layout

import (
	"fmt"
	"strings"

	"github.com/go-gl/mathgl/mgl32"
)

// RGB parses the light color (#RGB or #RRGGBB) into 0..1 components.
func (s SpotLight) RGB() (mgl32.Vec3, error) {
	return ParseHexColor(s.Color)
}

// ParseHexColor parses #RGB or #RRGGBB into 0..1 components.
func ParseHexColor(str string) (mgl32.Vec3, error) {
	str = strings.TrimSpace(str)
	if !strings.HasPrefix(str, "#") {
		return mgl32.Vec3{}, fmt.Errorf("layout: color %q: missing #", str)
	}
	hex := str[1:]
	var rgb [3]uint8
	switch len(hex) {
	case 3:
		for i := 0; i < 3; i++ {
			v, ok := hexDigit(hex[i])
			if !ok {
				return mgl32.Vec3{}, fmt.Errorf("layout: color %q: bad digit", str)
			}
			rgb[i] = v * 17
		}
	case 6:
		for i := 0; i < 3; i++ {
			hi, ok1 := hexDigit(hex[2*i])
			lo, ok2 := hexDigit(hex[2*i+1])
			if !ok1 || !ok2 {
				return mgl32.Vec3{}, fmt.Errorf("layout: color %q: bad digit", str)
			}
			rgb[i] = hi<<4 | lo
		}
	default:
		return mgl32.Vec3{}, fmt.Errorf("layout: color %q: want 3 or 6 hex digits", str)
	}
	return mgl32.Vec3{float32(rgb[0]) / 255, float32(rgb[1]) / 255, float32(rgb[2]) / 255}, nil
}

func hexDigit(c byte) (uint8, bool) {
	switch {
	case c >= '0' && c <= '9':
		return c - '0', true
	case c >= 'a' && c <= 'f':
		return c - 'a' + 10, true
	case c >= 'A' && c <= 'F':
		return c - 'A' + 10, true
	}
	return 0, false
}
