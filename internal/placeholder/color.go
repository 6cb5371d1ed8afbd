package placeholder

import "image/color"

// HSVToRGB converts a colour from HSV to RGB. All components are in [0, 1].
// Hue wraps, so 1.0 is the same as 0.0.
func HSVToRGB(h, s, v float64) (r, g, b float64) {
	if s == 0 {
		return v, v, v
	}
	sector := int(h * 6.0)
	f := h*6.0 - float64(sector)
	p := v * (1.0 - s)
	q := v * (1.0 - s*f)
	t := v * (1.0 - s*(1.0-f))
	switch sector % 6 {
	case 0:
		return v, t, p
	case 1:
		return q, v, p
	case 2:
		return p, v, t
	case 3:
		return p, q, v
	case 4:
		return t, p, v
	default:
		return v, p, q
	}
}

// Background returns the canvas colour for slot i of total. Channels are
// truncated, not rounded, when scaled to 8 bits.
func Background(i, total int, s, v float64) color.RGBA {
	r, g, b := HSVToRGB(float64(i)/float64(total), s, v)
	return color.RGBA{R: uint8(r * 255), G: uint8(g * 255), B: uint8(b * 255), A: 255}
}
