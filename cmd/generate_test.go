package cmd

import (
	"testing"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cmmoran/cppgen/pkg/generator"
)

func TestLoadOptionsFlagsWin(t *testing.T) {
	t.Cleanup(viper.Reset)
	viper.Set("generate", map[string]any{
		"input":       "from-config.yaml",
		"out_dir":     "cfgout",
		"brace_style": "attached",
		"go_enums":    "enums.go",
	})

	c := &cobra.Command{Use: "generate"}
	options := generator.NewOptions()
	bindOptions(c.Flags(), options)
	require.NoError(t, c.Flags().Parse([]string{"--input", "from-flag.yaml", "--indent", "\t"}))

	require.NoError(t, loadOptions(c, options))
	assert.Equal(t, "from-flag.yaml", options.Input)
	assert.Equal(t, "\t", options.Indent)
	assert.Equal(t, "cfgout", options.OutDir)
	assert.Equal(t, "attached", options.BraceStyle)
	assert.Equal(t, "enums", options.GoPackage)
}

func TestLoadOptionsRejectsBraceStyle(t *testing.T) {
	t.Cleanup(viper.Reset)
	viper.Set("generate", map[string]any{"brace_style": "gnu"})

	c := &cobra.Command{Use: "check"}
	options := generator.NewOptions()
	bindOptions(c.Flags(), options)
	require.Error(t, loadOptions(c, options))
}
