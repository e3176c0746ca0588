package interaction

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseMode(t *testing.T) {
	tests := []struct {
		in   string
		want Mode
	}{
		{"circle", Circle()},
		{" Line ", Line()},
		{"polygon", Polygon(3)},
		{"polygon:7", Polygon(7)},
		{"poly:19", Polygon(19)},
		{"12", Polygon(12)},
	}
	for _, tc := range tests {
		got, err := ParseMode(tc.in)
		require.NoError(t, err, tc.in)
		assert.Equal(t, tc.want, got, tc.in)
	}
}

func TestParseModeErrors(t *testing.T) {
	for _, in := range []string{"", "square", "polygon:2", "polygon:20", "hexagon:6", "x"} {
		_, err := ParseMode(in)
		assert.Error(t, err, in)
	}
}

func TestModeStringRoundTrip(t *testing.T) {
	for _, m := range Modes() {
		got, err := ParseMode(m.String())
		require.NoError(t, err)
		assert.Equal(t, m, got)
	}
}

func TestModesListsSelectorRange(t *testing.T) {
	modes := Modes()
	assert.Len(t, modes, 2+MaxSides-MinSides+1)
	assert.Equal(t, Circle(), modes[0])
	assert.Equal(t, Line(), modes[1])
	assert.Equal(t, Polygon(3), modes[2])
	assert.Equal(t, Polygon(19), modes[len(modes)-1])
}

func TestDefaultMode(t *testing.T) {
	assert.Equal(t, Mode{Kind: KindPolygon, Sides: 3}, DefaultMode())
	assert.Equal(t, "Polygon (3 sides)", DefaultMode().Label())
}
