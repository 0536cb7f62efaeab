package fonts

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	for _, name := range []string{"embed:go-regular", "go-bold", "embed:GO-ITALIC"} {
		data, err := Load(name)
		require.NoError(t, err, name)
		assert.NotEmpty(t, data, name)
	}
}

func TestLoadUnknown(t *testing.T) {
	_, err := Load("embed:Inter-Regular.ttf")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "go-regular")
}

func TestIsEmbedded(t *testing.T) {
	assert.True(t, IsEmbedded("embed:go-bold"))
	assert.False(t, IsEmbedded("fonts/Inter-Regular.ttf"))
	assert.Equal(t, []string{"go-bold", "go-italic", "go-regular"}, Names())
}
