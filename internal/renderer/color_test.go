package renderer

import "testing"

func TestParseHexColorLong(t *testing.T) {
	rgb, ok := ParseHexColor("#ff0080")
	if !ok {
		t.Fatal("expected #ff0080 to parse")
	}
	if rgb.X() != 1.0 || rgb.Y() != 0 {
		t.Errorf("unexpected rgb: %v", rgb)
	}
	if rgb.Z() < 0.5 || rgb.Z() > 0.51 {
		t.Errorf("blue channel wrong: %f", rgb.Z())
	}
}

func TestParseHexColorShort(t *testing.T) {
	long, _ := ParseHexColor("#ffaa00")
	short, ok := ParseHexColor("#fa0")
	if !ok {
		t.Fatal("expected #fa0 to parse")
	}
	if long != short {
		t.Errorf("#fa0 should expand to #ffaa00: %v vs %v", short, long)
	}
}

func TestParseHexColorWhitespaceAndCase(t *testing.T) {
	if _, ok := ParseHexColor("  #ABCDEF "); !ok {
		t.Error("uppercase hex with surrounding spaces should parse")
	}
}

func TestParseHexColorRejectsGarbage(t *testing.T) {
	for _, s := range []string{"", "#", "red", "#12345", "#gggggg", "#12 456"} {
		if _, ok := ParseHexColor(s); ok {
			t.Errorf("%q should not parse", s)
		}
	}
}
