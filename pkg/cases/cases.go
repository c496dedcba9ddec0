// Package cases contains named benchmark scenes with known or reference view factors
package cases

import (
	"errors"
	"fmt"
	"maps"
	"sort"

	"github.com/df07/go-viewfactors/pkg/scene"
)

var (
	// ErrUnknownCase is returned when no case is registered under a name
	ErrUnknownCase = errors.New("unknown case")
	// ErrInvalidParams is returned when case parameters are unknown or out of range
	ErrInvalidParams = errors.New("invalid case parameters")
)

// TargetTotal as a Setup target measures the sum of all view factors
const TargetTotal = -1

// Params holds named case parameters
type Params map[string]float64

// Setup is a built case ready for estimation
type Setup struct {
	Scene       *scene.Scene
	Source      int     // Emitting surface id
	Target      int     // Surface id whose view factor is checked, or TargetTotal
	Analytic    float64 // Reference value for the target
	HasAnalytic bool
}

// Measure extracts the checked quantity from an estimated view factor vector
func (s Setup) Measure(viewFactors []float64) float64 {
	if s.Target == TargetTotal {
		total := 0.0
		for _, v := range viewFactors {
			total += v
		}
		return total
	}
	return viewFactors[s.Target]
}

// Case is a named scene builder with default parameters
type Case struct {
	Name        string
	Description string
	Defaults    Params
	build       func(p Params) (Setup, error)
}

// Build creates the case scene with the given parameter overrides applied over the defaults.
// Unknown parameter names and out-of-range values return ErrInvalidParams.
func (c Case) Build(overrides Params) (Setup, error) {
	params := maps.Clone(c.Defaults)
	if params == nil {
		params = Params{}
	}
	for name, value := range overrides {
		if _, ok := c.Defaults[name]; !ok {
			return Setup{}, fmt.Errorf("%w: case %s has no parameter %q (have %v)",
				ErrInvalidParams, c.Name, name, c.ParamNames())
		}
		params[name] = value
	}

	setup, err := c.build(params)
	if err != nil {
		return Setup{}, fmt.Errorf("case %s: %w", c.Name, err)
	}
	return setup, nil
}

// ParamNames returns the case parameter names in sorted order
func (c Case) ParamNames() []string {
	names := make([]string, 0, len(c.Defaults))
	for name := range c.Defaults {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

var registry = map[string]Case{}

func register(c Case) {
	if _, exists := registry[c.Name]; exists {
		panic(fmt.Sprintf("cases: duplicate case %q", c.Name))
	}
	registry[c.Name] = c
}

// Lookup returns the case registered under name
func Lookup(name string) (Case, error) {
	c, ok := registry[name]
	if !ok {
		return Case{}, fmt.Errorf("%w: %q", ErrUnknownCase, name)
	}
	return c, nil
}

// All returns every registered case sorted by name
func All() []Case {
	all := make([]Case, 0, len(registry))
	for _, c := range registry {
		all = append(all, c)
	}
	sort.Slice(all, func(i, j int) bool {
		return all[i].Name < all[j].Name
	})
	return all
}

// check returns an ErrInvalidParams error when cond does not hold
func check(cond bool, format string, args ...any) error {
	if cond {
		return nil
	}
	return fmt.Errorf("%w: %s", ErrInvalidParams, fmt.Sprintf(format, args...))
}
