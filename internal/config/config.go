package config

import (
	"flag"
	"fmt"
	"net/url"
	"sort"
	"strings"
	"time"

	"github.com/gorilla/schema"
	"github.com/peterbourgon/ff/v3"
	"github.com/sirupsen/logrus"

	"github.com/vancomm/minesweeper/internal/mines"
)

// EnvPrefix is prepended to flag names to form environment variables, so
// -log-file may also be set through MINES_LOG_FILE.
const EnvPrefix = "MINES"

var presets = map[string]mines.Params{
	"beginner":     {Size: 9, MineCount: 10},
	"intermediate": {Size: 16, MineCount: 40},
	"expert":       {Size: 24, MineCount: 99},
}

func Presets() []string {
	names := make([]string, 0, len(presets))
	for name := range presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

type Config struct {
	Preset      string
	Size        int
	Mines       int
	Game        string
	Seed        uint64
	Tick        time.Duration
	LogFile     string
	Development bool
	Headless    bool
}

// Load reads the configuration from args, MINES_* environment variables and
// an optional JSON file named by -config, in decreasing order of priority.
func Load(name string, args []string) (*Config, error) {
	var c Config

	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.StringVar(&c.Preset, "preset", "beginner",
		"board preset: "+strings.Join(Presets(), ", "))
	fs.IntVar(&c.Size, "size", 0, "board side length, overrides the preset")
	fs.IntVar(&c.Mines, "mines", -1, "number of mines, overrides the preset")
	fs.StringVar(&c.Game, "game", "",
		`board as "16x16:40" or a query string such as "size=16&mines=40"; overrides everything else`)
	fs.Uint64Var(&c.Seed, "seed", 0, "random seed, 0 picks one at random")
	fs.DurationVar(&c.Tick, "tick", time.Second, "timer refresh interval")
	fs.StringVar(&c.LogFile, "log-file", "mines.log", "log file path, empty disables file logging")
	fs.BoolVar(&c.Development, "development", false, "verbose logging")
	fs.BoolVar(&c.Headless, "headless", false, "read text commands from stdin instead of drawing the board")
	_ = fs.String("config", "", "JSON config file")

	err := ff.Parse(fs, args,
		ff.WithEnvVarPrefix(EnvPrefix),
		ff.WithConfigFileFlag("config"),
		ff.WithConfigFileParser(ff.JSONParser),
		ff.WithAllowMissingConfigFile(true),
	)
	if err != nil {
		return nil, err
	}

	if c.Tick <= 0 {
		return nil, fmt.Errorf("tick must be positive, got %s", c.Tick)
	}

	return &c, nil
}

type GameParamsDTO struct {
	Size      int `schema:"size,required"`
	MineCount int `schema:"mines,required"`
}

func ParseGameParamsDTO(query string) (GameParamsDTO, error) {
	var dto GameParamsDTO
	src, err := url.ParseQuery(query)
	if err != nil {
		return dto, fmt.Errorf("malformed game query: %w", err)
	}
	dec := schema.NewDecoder()
	dec.IgnoreUnknownKeys(true)
	err = dec.Decode(&dto, src)
	return dto, err
}

// Params resolves the board to play: -game wins over -size/-mines, which win
// over -preset.
func (c Config) Params() (mines.Params, error) {
	if c.Game != "" && !strings.Contains(c.Game, "=") {
		return mines.ParseParams(c.Game)
	}
	if c.Game != "" {
		dto, err := ParseGameParamsDTO(c.Game)
		if err != nil {
			return mines.Params{}, err
		}
		p := mines.Params(dto)
		return p, p.Validate()
	}

	p, ok := presets[strings.ToLower(c.Preset)]
	if !ok {
		return mines.Params{}, fmt.Errorf(
			"%w: unknown preset %q", mines.ErrInvalidParams, c.Preset,
		)
	}
	if c.Size > 0 {
		p.Size = c.Size
	}
	if c.Mines >= 0 {
		p.MineCount = c.Mines
	}
	return p, p.Validate()
}

func (c Config) Fields() logrus.Fields {
	return map[string]any{
		"preset":      c.Preset,
		"size":        c.Size,
		"mines":       c.Mines,
		"game":        c.Game,
		"seed":        c.Seed,
		"tick":        c.Tick.String(),
		"log_file":    c.LogFile,
		"development": c.Development,
		"headless":    c.Headless,
	}
}
