package textparser

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfig(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		cfg := NewConfig()
		assert.False(t, cfg.GetBool("parser.token_tree"))
		assert.False(t, cfg.GetBool("parser.match_sof"))
		assert.Equal(t, "SKIP", cfg.GetString("lexer.skip_kind"))
		assert.Equal(t, "MISMATCH", cfg.GetString("lexer.mismatch_kind"))
		assert.Equal(t, ">>!<<", cfg.GetString("errors.marker"))
		assert.True(t, cfg.GetBool("errors.hints"))
		assert.Equal(t, 2, cfg.GetInt("errors.hint_distance"))
	})

	t.Run("copies are independent", func(t *testing.T) {
		cfg := NewConfig()
		cp := cfg.Copy()
		cp.SetBool("parser.token_tree", true)
		cp.SetInt("errors.hint_distance", 5)

		assert.False(t, cfg.GetBool("parser.token_tree"))
		assert.Equal(t, 2, cfg.GetInt("errors.hint_distance"))
		assert.True(t, cp.GetBool("parser.token_tree"))
	})

	t.Run("programming errors panic", func(t *testing.T) {
		cfg := NewConfig()
		assert.Panics(t, func() { cfg.GetBool("no.such.setting") })
		assert.Panics(t, func() { cfg.GetInt("parser.token_tree") })
		assert.Panics(t, func() { cfg.GetString("errors.hints") })
		assert.Panics(t, func() { cfg.SetInt("parser.token_tree", 1) })
		assert.Panics(t, func() { cfg.SetBool("errors.marker", true) })
	})

	t.Run("settings keep their type when overwritten", func(t *testing.T) {
		cfg := NewConfig()
		cfg.SetInt("errors.hint_distance", 4)
		cfg.SetString("custom.name", "x")
		cfg.SetString("custom.name", "y")

		assert.Equal(t, 4, cfg.GetInt("errors.hint_distance"))
		assert.Equal(t, "y", cfg.GetString("custom.name"))
	})

	t.Run("Debug lists every setting sorted", func(t *testing.T) {
		var out strings.Builder
		NewConfig().Debug(&out)

		lines := strings.Split(strings.TrimSpace(out.String()), "\n")
		require.Len(t, lines, 8)
		assert.Equal(t, "Configuration", lines[0])
		assert.Equal(t, "errors.hint_distance : 2 (int)", lines[1])
		assert.Equal(t, "parser.token_tree    : false (bool)", lines[7])
	})
}
