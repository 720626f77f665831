package attrs

import "fmt"

// Color is a packed text color stored as ARGB (0xAARRGGBB): alpha in the
// highest byte, then red, green, and blue in the lowest byte.
type Color uint32

// RGB constructs an opaque Color from red, green, blue bytes.
func RGB(r, g, b uint8) Color {
	return RGBA(r, g, b, 0xFF)
}

// RGBA constructs a Color from red, green, blue, alpha bytes.
func RGBA(r, g, b, a uint8) Color {
	return Color(uint32(a)<<24 | uint32(r)<<16 | uint32(g)<<8 | uint32(b))
}

// R returns the red component.
func (c Color) R() uint8 {
	return uint8(c >> 16)
}

// G returns the green component.
func (c Color) G() uint8 {
	return uint8(c >> 8)
}

// B returns the blue component.
func (c Color) B() uint8 {
	return uint8(c)
}

// A returns the alpha component.
func (c Color) A() uint8 {
	return uint8(c >> 24)
}

// Hex formats the color as #RRGGBB, or #RRGGBBAA when not fully opaque.
func (c Color) Hex() string {
	if c.A() == 0xFF {
		return fmt.Sprintf("#%02X%02X%02X", c.R(), c.G(), c.B())
	}
	return fmt.Sprintf("#%02X%02X%02X%02X", c.R(), c.G(), c.B(), c.A())
}
