package indicators

import (
	"fmt"
	"sort"

	"github.com/amirphl/tastream/internal/core"
)

// builders maps indicator names to fresh default configs. Package-level
// and read-only after init; every New call hands out an independent
// config value.
var builders = map[string]func() core.IndicatorConfig{
	"ChandeMomentumOscillator": func() core.IndicatorConfig { return NewChandeMomentumOscillator() },
	"RelativeStrengthIndex":    func() core.IndicatorConfig { return NewRelativeStrengthIndex() },
}

// New returns a fresh config with default parameters for the named
// indicator.
func New(name string) (core.IndicatorConfig, error) {
	build, ok := builders[name]
	if !ok {
		return nil, fmt.Errorf("unknown indicator %q", name)
	}
	return build(), nil
}

// Names lists the registered indicator names, sorted.
func Names() []string {
	names := make([]string, 0, len(builders))
	for name := range builders {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
