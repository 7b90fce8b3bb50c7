package renderer

import (
	"strconv"
	"strings"

	"github.com/go-gl/mathgl/mgl32"
)

// ParseHexColor parses "#rgb" or "#rrggbb" into an RGB vector in [0,1].
// Color strings come from free-text UI fields and are not validated
// upstream, so callers keep their previous color when ok is false.
func ParseHexColor(s string) (rgb mgl32.Vec3, ok bool) {
	s = strings.TrimPrefix(strings.TrimSpace(s), "#")

	var r, g, b uint64
	var err error
	switch len(s) {
	case 3:
		r, err = strconv.ParseUint(strings.Repeat(s[0:1], 2), 16, 8)
		if err == nil {
			g, err = strconv.ParseUint(strings.Repeat(s[1:2], 2), 16, 8)
		}
		if err == nil {
			b, err = strconv.ParseUint(strings.Repeat(s[2:3], 2), 16, 8)
		}
	case 6:
		r, err = strconv.ParseUint(s[0:2], 16, 8)
		if err == nil {
			g, err = strconv.ParseUint(s[2:4], 16, 8)
		}
		if err == nil {
			b, err = strconv.ParseUint(s[4:6], 16, 8)
		}
	default:
		return mgl32.Vec3{}, false
	}
	if err != nil {
		return mgl32.Vec3{}, false
	}
	return mgl32.Vec3{float32(r) / 255, float32(g) / 255, float32(b) / 255}, true
}
