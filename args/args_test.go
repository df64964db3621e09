package args

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestArgs(t *testing.T) {
	a := Args{
		Positionals: []string{"Green", "Office", "Park", "9"},
		Flags:       map[string]string{"building": "gop9"},
	}

	assert.Equal(t, "Green Office Park 9", a.Joined())
	assert.True(t, a.Has("building"))
	assert.Equal(t, "gop9", a.Get("building"))
	assert.False(t, a.Has("vendor"))
	assert.Empty(t, a.Get("vendor"))
	assert.Contains(t, a.String(), "building:gop9")
}

func TestArgs_Empty(t *testing.T) {
	var a Args
	assert.Empty(t, a.Joined())
	assert.False(t, a.Has("x"))
}
