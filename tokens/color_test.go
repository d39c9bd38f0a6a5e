package tokens

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseColor(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  Color
	}{
		{"full form", "#74ade8ff", Color{R: 0x74, G: 0xad, B: 0xe8, A: 0xff}},
		{"no alpha defaults to opaque", "#74ade8", Color{R: 0x74, G: 0xad, B: 0xe8, A: 0xff}},
		{"short rgb", "#f00", Color{R: 0xff, A: 0xff}},
		{"short rgba", "#f00a", Color{R: 0xff, A: 0xaa}},
		{"uppercase accepted", "#74ADE8FF", Color{R: 0x74, G: 0xad, B: 0xe8, A: 0xff}},
		{"transparent", "#00000000", Color{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseColor(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseColorInvalid(t *testing.T) {
	for _, input := range []string{"", "not-a-color", "74ade8ff", "#74ade", "#xyzxyz", "#74ade8ff00aa"} {
		t.Run(input, func(t *testing.T) {
			_, err := ParseColor(input)
			assert.Error(t, err)
		})
	}
}

func TestColorHexCanonical(t *testing.T) {
	c, err := ParseColor("#F00")
	require.NoError(t, err)
	assert.Equal(t, "#ff0000ff", c.Hex())
}

func TestColorJSONRoundTrip(t *testing.T) {
	c := MustColor("#74ade83d")

	data, err := json.Marshal(c)
	require.NoError(t, err)
	assert.Equal(t, `"#74ade83d"`, string(data))

	var restored Color
	require.NoError(t, json.Unmarshal(data, &restored))
	assert.Equal(t, c, restored)
}

func TestMustColorPanicsOnInvalid(t *testing.T) {
	assert.Panics(t, func() { MustColor("garbage") })
}
