package goenum

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cmmoran/cppgen/pkg/cpp"
)

func TestRender(t *testing.T) {
	outer := cpp.NewClass(cpp.ClassConfig{Name: "Counter"})
	mode := cpp.NewEnum(cpp.EnumConfig{Name: "Mode", Items: []string{"Idle", "Busy"}})
	require.NoError(t, outer.AddEnum(mode))
	level := cpp.NewEnum(cpp.EnumConfig{Name: "level", Prefix: "LVL_", NoCounter: true, Items: []string{"LOW", "HIGH"}})

	assert.Equal(t, "CounterMode", TypeName(mode))
	assert.Equal(t, "Level", TypeName(level))

	out, err := Render("enums", []*cpp.Enum{mode, level})
	require.NoError(t, err)
	src := string(out)
	assert.Contains(t, src, "// Code generated by cppgen. DO NOT EDIT.")
	assert.Contains(t, src, "package enums")
	assert.Contains(t, src, "// CounterMode mirrors the C++ enum Counter::Mode.")
	assert.Contains(t, src, "type CounterMode int")
	assert.Regexp(t, `CounterModeIdle\s+CounterMode = 0`, src)
	assert.Regexp(t, `CounterModeBusy\s+CounterMode = 1`, src)
	assert.Regexp(t, `CounterModeModeCount\s+CounterMode = 2`, src)
	assert.Regexp(t, `LevelHigh\s+Level\s+= 1`, src)
	assert.NotContains(t, src, "LevelCount")

	_, err = Render("", nil)
	require.Error(t, err)
}
