// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package colors

import (
	"fmt"
	"image/color"
	"strings"

	"golang.org/x/image/colornames"
)

// Parse parses a color from a hex string (#rgb, #rrggbb, #rrggbbaa)
// or a CSS color name. The names "none" and "off" and the empty string
// parse to no color, which is reported through ok = false.
func Parse(s string) (c color.RGBA, ok bool, err error) {
	s = strings.ToLower(strings.TrimSpace(s))
	switch s {
	case "", "none", "off":
		return color.RGBA{}, false, nil
	case "transparent":
		return color.RGBA{}, true, nil
	}
	if strings.HasPrefix(s, "#") {
		c, err = parseHex(s[1:])
		return c, err == nil, err
	}
	nc, has := colornames.Map[s]
	if !has {
		return color.RGBA{}, false, fmt.Errorf("colors.Parse: name not found: %q", s)
	}
	return nc, true, nil
}

func parseHex(x string) (color.RGBA, error) {
	var r, g, b int
	a := 255
	var err error
	switch len(x) {
	case 3:
		_, err = fmt.Sscanf(x, "%1x%1x%1x", &r, &g, &b)
		r |= r << 4
		g |= g << 4
		b |= b << 4
	case 6:
		_, err = fmt.Sscanf(x, "%02x%02x%02x", &r, &g, &b)
	case 8:
		_, err = fmt.Sscanf(x, "%02x%02x%02x%02x", &r, &g, &b, &a)
	default:
		return color.RGBA{}, fmt.Errorf("colors.Parse: could not process hex color: %q", x)
	}
	if err != nil {
		return color.RGBA{}, fmt.Errorf("colors.Parse: could not process hex color %q: %w", x, err)
	}
	return color.RGBA{uint8(r), uint8(g), uint8(b), uint8(a)}, nil
}

// AsHex returns the color as a #rrggbb string, or #rrggbbaa
// when it is not opaque.
func AsHex(c color.RGBA) string {
	if c.A == 255 {
		return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
	}
	return fmt.Sprintf("#%02x%02x%02x%02x", c.R, c.G, c.B, c.A)
}
