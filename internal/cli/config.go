package cli

import (
	"fmt"
	"runtime"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/katalvlaran/meshgeo/mesh"
	"github.com/katalvlaran/meshgeo/segment"
)

// Config holds the defaults a TOML file may set. Command-line flags that
// the user sets explicitly take precedence.
//
//	delta       = 0.8
//	convex_eta  = 0.2
//	concave_eta = 1.0
//	workers     = 8
//	compress    = "zstd"
//	classes     = 2
type Config struct {
	Delta      float64 `toml:"delta"`
	ConvexEta  float64 `toml:"convex_eta"`
	ConcaveEta float64 `toml:"concave_eta"`
	Workers    int     `toml:"workers"`
	Compress   string  `toml:"compress"`
	Classes    int     `toml:"classes"`
}

func defaultConfig() Config {
	m := mesh.DefaultOptions()
	return Config{
		Delta:      m.Delta,
		ConvexEta:  m.ConvexEta,
		ConcaveEta: m.ConcaveEta,
		Workers:    runtime.GOMAXPROCS(0),
		Compress:   string(codecNone),
		Classes:    segment.DefaultOptions().Classes,
	}
}

// loadConfig reads path over the defaults. An empty path yields the
// defaults. Unknown keys are rejected.
func loadConfig(path string) (Config, error) {
	cfg := defaultConfig()
	if path == "" {
		return cfg, nil
	}
	md, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return cfg, fmt.Errorf("config %s: %w", path, err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return cfg, fmt.Errorf("config %s: unknown keys: %s", path, strings.Join(keys, ", "))
	}

	return cfg, cfg.validate()
}

func (c Config) validate() error {
	switch {
	case c.Delta < 0 || c.Delta > 1:
		return fmt.Errorf("config: delta must be within [0,1], got %g", c.Delta)
	case c.ConvexEta < 0 || c.ConcaveEta < 0:
		return fmt.Errorf("config: eta values must be non-negative")
	case c.Workers < 1:
		return fmt.Errorf("config: workers must be >= 1, got %d", c.Workers)
	case c.Classes < 2:
		return fmt.Errorf("config: classes must be >= 2, got %d", c.Classes)
	}
	_, err := parseCodec(c.Compress)
	return err
}

func (c Config) meshOptions() []mesh.Option {
	return []mesh.Option{
		mesh.WithDelta(c.Delta),
		mesh.WithConvexEta(c.ConvexEta),
		mesh.WithConcaveEta(c.ConcaveEta),
	}
}
