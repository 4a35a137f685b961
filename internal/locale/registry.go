package locale

import (
	"errors"
	"fmt"
	"sort"
)

// Registry maps supported codes to their configuration. It is immutable
// after construction and safe for concurrent use.
type Registry struct {
	configs  map[Code]Config
	baseline Code
}

// NewRegistry validates every entry and builds a registry. Every entry must
// be complete, codes must be unique, and the baseline language must be present.
func NewRegistry(configs ...Config) (*Registry, error) {
	r := &Registry{
		configs:  make(map[Code]Config, len(configs)),
		baseline: Baseline,
	}

	var errs []error
	for _, c := range configs {
		if err := c.Validate(); err != nil {
			errs = append(errs, err)
			continue
		}
		if _, dup := r.configs[c.Code]; dup {
			errs = append(errs, fmt.Errorf("locale %q registered twice", c.Code))
			continue
		}
		r.configs[c.Code] = c
	}
	if _, ok := r.configs[r.baseline]; !ok {
		errs = append(errs, fmt.Errorf("baseline locale %q is not registered", r.baseline))
	}
	if len(errs) > 0 {
		return nil, errors.Join(errs...)
	}

	return r, nil
}

// Default returns the registry over the built-in table.
func Default() *Registry {
	r, err := NewRegistry(Builtin()...)
	if err != nil {
		panic(fmt.Sprintf("built-in locale table is invalid: %v", err))
	}
	return r
}

// Lookup returns the configuration for code.
func (r *Registry) Lookup(code Code) (Config, bool) {
	c, ok := r.configs[code]
	return c, ok
}

// Baseline returns the fallback language's configuration.
func (r *Registry) Baseline() Config {
	return r.configs[r.baseline]
}

// Codes returns the supported codes in sorted order.
func (r *Registry) Codes() []Code {
	codes := make([]Code, 0, len(r.configs))
	for c := range r.configs {
		codes = append(codes, c)
	}
	sort.Slice(codes, func(i, j int) bool { return codes[i] < codes[j] })
	return codes
}

// Resolve maps a detected language to a supported code. Anything not in the
// registry, including the empty string, resolves to the baseline.
func (r *Registry) Resolve(detected string) Code {
	if _, ok := r.configs[Code(detected)]; ok {
		return Code(detected)
	}
	return r.baseline
}

// Validate reports the first missing field of c.
func (c Config) Validate() error {
	fields := []struct {
		name  string
		value string
	}{
		{"code", string(c.Code)},
		{"filename_prefix", c.FilenamePrefix},
		{"title", c.Title},
		{"headings.summary", c.Headings.Summary},
		{"headings.topics", c.Headings.Topics},
		{"headings.actions", c.Headings.Actions},
		{"headings.transcript", c.Headings.Transcript},
		{"keys.summary", c.Keys.Summary},
		{"keys.topics", c.Keys.Topics},
		{"keys.actions", c.Keys.Actions},
		{"keys.owner", c.Keys.Owner},
		{"keys.task", c.Keys.Task},
	}
	for _, f := range fields {
		if f.value == "" {
			return fmt.Errorf("locale %q: %s is required", c.Code, f.name)
		}
	}
	return nil
}
