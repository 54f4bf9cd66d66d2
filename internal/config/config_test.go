package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vancomm/minesweeper/internal/mines"
)

func TestLoadDefaults(t *testing.T) {
	c, err := Load("mines", nil)
	require.NoError(t, err)

	assert.Equal(t, "beginner", c.Preset)
	assert.Equal(t, time.Second, c.Tick)
	assert.Equal(t, -1, c.Mines)
	assert.False(t, c.Headless)

	p, err := c.Params()
	require.NoError(t, err)
	assert.Equal(t, mines.Params{Size: 9, MineCount: 10}, p)
}

func TestLoadFlags(t *testing.T) {
	c, err := Load("mines", []string{
		"-preset", "expert", "-mines", "50", "-seed", "42", "-tick", "250ms", "-headless",
	})
	require.NoError(t, err)

	assert.Equal(t, uint64(42), c.Seed)
	assert.Equal(t, 250*time.Millisecond, c.Tick)
	assert.True(t, c.Headless)

	p, err := c.Params()
	require.NoError(t, err)
	assert.Equal(t, mines.Params{Size: 24, MineCount: 50}, p)
}

func TestLoadEnv(t *testing.T) {
	t.Setenv("MINES_PRESET", "intermediate")
	t.Setenv("MINES_LOG_FILE", "/tmp/other.log")

	c, err := Load("mines", []string{"-size", "20"})
	require.NoError(t, err)

	assert.Equal(t, "/tmp/other.log", c.LogFile)
	p, err := c.Params()
	require.NoError(t, err)
	assert.Equal(t, mines.Params{Size: 20, MineCount: 40}, p)
}

func TestLoadConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "mines.json")
	require.NoError(t, os.WriteFile(path, []byte(`{
		"preset": "expert",
		"development": true,
		"tick": "2s"
	}`), 0o600))

	c, err := Load("mines", []string{"-config", path, "-tick", "3s"})
	require.NoError(t, err)

	assert.Equal(t, "expert", c.Preset)
	assert.True(t, c.Development)
	assert.Equal(t, 3*time.Second, c.Tick, "flags take priority over the file")
}

func TestLoadRejectsBadInput(t *testing.T) {
	_, err := Load("mines", []string{"-tick", "0s"})
	assert.Error(t, err)

	_, err = Load("mines", []string{"-no-such-flag"})
	assert.Error(t, err)
}

func TestParams(t *testing.T) {
	tests := []struct {
		name   string
		config Config
		want   mines.Params
		ok     bool
	}{
		{"preset", Config{Preset: "Intermediate", Mines: -1}, mines.Params{Size: 16, MineCount: 40}, true},
		{"zero mines", Config{Preset: "beginner", Mines: 0}, mines.Params{Size: 9, MineCount: 0}, true},
		{"custom size", Config{Preset: "beginner", Size: 5, Mines: -1}, mines.Params{Size: 5, MineCount: 10}, true},
		{"game query", Config{Preset: "expert", Game: "size=6&mines=7&unused=1"}, mines.Params{Size: 6, MineCount: 7}, true},
		{"game short form", Config{Preset: "expert", Game: "16x16:40"}, mines.Params{Size: 16, MineCount: 40}, true},
		{"game short form not square", Config{Game: "16x8:10"}, mines.Params{}, false},
		{"game short form too many mines", Config{Game: "3x3:9"}, mines.Params{}, false},
		{"unknown preset", Config{Preset: "insane", Mines: -1}, mines.Params{}, false},
		{"too many mines", Config{Preset: "beginner", Size: 3, Mines: 9}, mines.Params{}, false},
		{"game query missing mines", Config{Game: "size=6"}, mines.Params{}, false},
		{"game query not a number", Config{Game: "size=six&mines=1"}, mines.Params{}, false},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			p, err := test.config.Params()
			if !test.ok {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, test.want, p)
		})
	}
}

func TestParseGameParamsDTO(t *testing.T) {
	dto, err := ParseGameParamsDTO("mines=40&size=16")
	require.NoError(t, err)
	assert.Equal(t, GameParamsDTO{Size: 16, MineCount: 40}, dto)

	_, err = ParseGameParamsDTO("size=%zz")
	assert.Error(t, err)
}

func TestFields(t *testing.T) {
	c := Config{Preset: "expert", Tick: time.Second, Seed: 7}
	fields := c.Fields()
	assert.Equal(t, "expert", fields["preset"])
	assert.Equal(t, "1s", fields["tick"])
	assert.Equal(t, uint64(7), fields["seed"])
}

func TestPresets(t *testing.T) {
	assert.Equal(t, []string{"beginner", "expert", "intermediate"}, Presets())
}
