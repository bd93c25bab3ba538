// Package config
package config

import (
	"fmt"
	"os"
	"sort"

	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"github.com/amirphl/tastream/internal/core"
	"github.com/amirphl/tastream/internal/indicators"
	"github.com/amirphl/tastream/internal/utils"
)

/*
YAML profile file example:

profiles:
  - indicator: ChandeMomentumOscillator
    params:
      period: "12"
      zone: "0.4"
      source: "hl2"
  - indicator: RelativeStrengthIndex
*/

// Profile names one indicator plus the parameter overrides to apply
// on top of its defaults. Parameter values are strings; they go
// through the indicator's own Set parser, the same path an external
// CLI would use.
type Profile struct {
	Indicator string            `yaml:"indicator"`
	Params    map[string]string `yaml:"params"`
}

// File is the root of a profile file.
type File struct {
	Profiles []Profile `yaml:"profiles"`
}

// Parse decodes YAML profiles and resolves each of them into a
// validated-parseable indicator config. Unknown indicators and
// unparseable parameters fail the whole call; configs are still
// unvalidated (validation belongs to Init).
func Parse(data []byte) ([]core.IndicatorConfig, error) {
	var file File
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("parse profiles: %w", err)
	}

	log := utils.Logger()
	configs := make([]core.IndicatorConfig, 0, len(file.Profiles))
	for _, p := range file.Profiles {
		cfg, err := indicators.New(p.Indicator)
		if err != nil {
			return nil, err
		}
		// Apply params in a stable order so the first error is
		// deterministic.
		names := make([]string, 0, len(p.Params))
		for name := range p.Params {
			names = append(names, name)
		}
		sort.Strings(names)
		for _, name := range names {
			if err := cfg.Set(name, p.Params[name]); err != nil {
				return nil, fmt.Errorf("%s: %w", p.Indicator, err)
			}
		}
		log.Debug("indicator profile loaded",
			zap.String("indicator", cfg.Name()),
			zap.Int("params", len(p.Params)),
		)
		configs = append(configs, cfg)
	}
	return configs, nil
}

// Load reads and parses a profile file from disk.
func Load(path string) ([]core.IndicatorConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read profiles: %w", err)
	}
	return Parse(data)
}
