package attrs

import "testing"

func TestColor_RoundTrip(t *testing.T) {
	// Every byte value, all channels varying together.
	for v := 0; v <= 255; v++ {
		c := RGBA(uint8(v), uint8(255-v), uint8(v), uint8(255-v))
		if c.R() != uint8(v) || c.G() != uint8(255-v) || c.B() != uint8(v) || c.A() != uint8(255-v) {
			t.Fatalf("round trip failed at %d: (%d,%d,%d,%d)", v, c.R(), c.G(), c.B(), c.A())
		}
	}

	// Stepping by primes keeps the combined sweep cheap.
	for r := 0; r <= 255; r += 7 {
		for g := 0; g <= 255; g += 11 {
			for b := 0; b <= 255; b += 13 {
				for a := 0; a <= 255; a += 17 {
					c := RGBA(uint8(r), uint8(g), uint8(b), uint8(a))
					if c.R() != uint8(r) || c.G() != uint8(g) || c.B() != uint8(b) || c.A() != uint8(a) {
						t.Fatalf("RGBA(%d,%d,%d,%d) round trip = (%d,%d,%d,%d)",
							r, g, b, a, c.R(), c.G(), c.B(), c.A())
					}
				}
			}
		}
	}
}

func TestColor_BitLayout(t *testing.T) {
	c := RGBA(0x12, 0x34, 0x56, 0x78)
	if uint32(c) != 0x78123456 {
		t.Errorf("RGBA(0x12,0x34,0x56,0x78) = 0x%08X, want 0x78123456", uint32(c))
	}
}

func TestColor_RGBImpliesOpaque(t *testing.T) {
	c := RGB(10, 20, 30)
	if c.A() != 0xFF {
		t.Errorf("RGB alpha = %d, want 255", c.A())
	}
}

func TestColor_Hex(t *testing.T) {
	for _, tt := range []struct {
		c    Color
		want string
	}{
		{RGB(0xC0, 0x40, 0x40), "#C04040"},
		{RGBA(0x00, 0xFF, 0x00, 0x80), "#00FF0080"},
	} {
		if got := tt.c.Hex(); got != tt.want {
			t.Errorf("Hex() = %q, want %q", got, tt.want)
		}
	}
}
