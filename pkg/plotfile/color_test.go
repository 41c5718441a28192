package plotfile

import (
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseColor(t *testing.T) {
	tests := []struct {
		in   string
		want color.RGBA
	}{
		{"red", color.RGBA{255, 0, 0, 255}},
		{" White ", color.RGBA{255, 255, 255, 255}},
		{"darkgreen", color.RGBA{0, 128, 0, 255}},
		{"#00ff80", color.RGBA{0, 255, 128, 255}},
		{"#0f0", color.RGBA{0, 255, 0, 255}},
		{"#AA8800", color.RGBA{170, 136, 0, 255}},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			c, err := ParseColor(tt.in)
			require.NoError(t, err)
			assert.Equal(t, tt.want, c)
		})
	}
}

func TestParseColorInvalid(t *testing.T) {
	for _, s := range []string{"", "chartreuse-ish", "#12", "#gggggg", "ff0000"} {
		_, err := ParseColor(s)
		assert.Error(t, err, s)
	}
}

func TestFormatColor(t *testing.T) {
	assert.Equal(t, "#ff0000", FormatColor(color.RGBA{255, 0, 0, 255}))
	assert.Equal(t, "#000000", FormatColor(color.Black))

	c, err := ParseColor("#aa8800")
	require.NoError(t, err)
	assert.Equal(t, "#aa8800", FormatColor(c))
}

func TestPaletteColor(t *testing.T) {
	seen := map[string]bool{}
	for i := 0; i < 8; i++ {
		c := PaletteColor(i)
		_, _, _, a := c.RGBA()
		assert.Equal(t, uint32(0xffff), a)
		seen[FormatColor(c)] = true
	}
	assert.Len(t, seen, 8, "palette colours should be distinct")
	assert.Equal(t, PaletteColor(3), PaletteColor(3))
}
