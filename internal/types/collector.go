package types

import (
	"sort"

	"github.com/zoobzio/exprql/internal/render"
)

// Collector is the mutable state threaded through one render. It numbers
// positional parameters, gathers their values, records named parameters and
// notes which dialect-gated features the statement used.
//
// A Collector belongs to exactly one render; it is not safe for concurrent use.
type Collector struct {
	placeholder render.Placeholder
	args        []any
	named       []string
	usedNames   map[string]bool
	features    map[render.Feature]bool
}

// NewCollector creates a collector formatting positional parameters with p.
func NewCollector(p render.Placeholder) *Collector {
	if p == nil {
		p = render.DollarPlaceholder
	}
	return &Collector{
		placeholder: p,
		usedNames:   make(map[string]bool),
		features:    make(map[render.Feature]bool),
	}
}

// Bind appends v to the positional arguments and returns its placeholder.
func (c *Collector) Bind(v any) string {
	c.args = append(c.args, v)
	return c.placeholder(len(c.args))
}

// Named records a named parameter and returns its placeholder.
// Names are reported once, in order of first use.
func (c *Collector) Named(name string) string {
	if !c.usedNames[name] {
		c.named = append(c.named, name)
		c.usedNames[name] = true
	}
	return ":" + name
}

// Use records that the statement relies on a dialect-gated feature.
func (c *Collector) Use(f render.Feature) {
	c.features[f] = true
}

// Args returns the positional argument values in placeholder order.
func (c *Collector) Args() []any {
	return c.args
}

// RequiredParams returns the named parameters in order of first use.
func (c *Collector) RequiredParams() []string {
	return c.named
}

// Features returns the recorded features, sorted for deterministic checks.
func (c *Collector) Features() []render.Feature {
	out := make([]render.Feature, 0, len(c.features))
	for f := range c.features {
		out = append(out, f)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}
