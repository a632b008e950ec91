package cpp

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cmmoran/cppgen/pkg/source"
)

func TestEnumRender(ttt *testing.T) {
	tests := []struct {
		name string
		cfg  EnumConfig
		want string
	}{
		{
			name: "default prefix with counter",
			cfg:  EnumConfig{Name: "Items", Items: []string{"Chair", "Table", "Shelve"}},
			want: "enum Items\n{\n    eChair = 0,\n    eTable = 1,\n    eShelve = 2,\n    eItemsCount = 3\n};\n",
		},
		{
			name: "custom prefix without counter",
			cfg:  EnumConfig{Name: "Items", Prefix: "Prefix", NoCounter: true, Items: []string{"A", "B", "C"}},
			want: "enum Items\n{\n    PrefixA = 0,\n    PrefixB = 1,\n    PrefixC = 2\n};\n",
		},
		{
			name: "enum class unprefixed",
			cfg:  EnumConfig{Name: "Items", Class: true, Unprefixed: true, Items: []string{"A", "B"}},
			want: "enum class Items\n{\n    A = 0,\n    B = 1,\n    ItemsCount = 2\n};\n",
		},
		{
			name: "no items",
			cfg:  EnumConfig{Name: "Empty", Documentation: "/// nothing yet"},
			want: "/// nothing yet\nenum Empty\n{\n    eEmptyCount = 0\n};\n",
		},
	}
	for _, tt := range tests {
		ttt.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, capture(t, NewEnum(tt.cfg).Render))
		})
	}
}

func TestEnumValues(t *testing.T) {
	e := NewEnum(EnumConfig{Name: "Mode"})
	e.AddItems("Off", "On")
	assert.Equal(t, []EnumValue{{"eOff", 0}, {"eOn", 1}, {"eModeCount", 2}}, e.Values())

	n := NewEnum(EnumConfig{Name: "Mode", NoCounter: true, Items: []string{"Off", "On", "Auto"}})
	require.Len(t, n.Values(), 3)
	assert.Equal(t, EnumValue{Name: "eAuto", Value: 2}, n.Values()[2])
}

func TestEnumValidation(t *testing.T) {
	for _, cfg := range []EnumConfig{
		{Items: []string{"A"}},
		{Name: "E", Items: []string{"A", ""}},
		{Name: "E", Items: []string{"A", "A"}},
	} {
		_, err := source.Capture(source.DefaultLayout(), NewEnum(cfg).Render)
		require.ErrorIs(t, err, ErrConfig)
	}
}
