package combattext

import "image/color"

// LinearColor is an RGBA color with float channels in the 0..1 range.
type LinearColor struct {
	R, G, B, A float64
}

// Black with the given alpha. Used for drop shadows.
func Black(alpha float64) LinearColor {
	return LinearColor{A: alpha}
}

// NRGBA converts to a non-premultiplied 8-bit color, clamping each channel.
func (c LinearColor) NRGBA() color.NRGBA {
	return color.NRGBA{
		R: toByte(c.R),
		G: toByte(c.G),
		B: toByte(c.B),
		A: toByte(c.A),
	}
}

func toByte(v float64) uint8 {
	if v <= 0 {
		return 0
	}
	if v >= 1 {
		return 255
	}
	return uint8(v*255 + 0.5)
}
