package layout

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseHexColor(t *testing.T) {
	c, err := ParseHexColor("#ffffff")
	require.NoError(t, err)
	assert.Equal(t, mgl32.Vec3{1, 1, 1}, c)

	c, err = ParseHexColor(" #F00 ")
	require.NoError(t, err)
	assert.Equal(t, mgl32.Vec3{1, 0, 0}, c)

	for _, bad := range []string{"", "fff", "#ff", "#gg0000", "#12345"} {
		_, err := ParseHexColor(bad)
		assert.Error(t, err, bad)
	}
}

func TestDefaultLightColor(t *testing.T) {
	c, err := Default().Light.RGB()
	require.NoError(t, err)
	assert.Equal(t, mgl32.Vec3{1, 1, 1}, c)
}
