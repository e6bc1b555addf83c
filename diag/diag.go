// Package diag collects non-fatal warnings raised during schema translation.
// Translation of one schema must never be aborted by an issue in another, so
// everything that can be skipped is reported here instead of returned as an
// error.
package diag

import "sync"

// Diagnostic is a single warning with free-form context.
type Diagnostic struct {
	// Message is a human-readable description of the issue.
	Message string

	// Context carries key-value pairs identifying where the issue occurred,
	// e.g. {"type": "Components.Schemas.Pet", "property": "tag"}.
	Context map[string]string
}

// Collector is an append-only warning sink.
//
// A single Collector is shared by every translation in a generation pass. The
// append operation is the only synchronization point in the translator, so a
// caller may translate unrelated top-level schemas on separate goroutines
// against the same Collector.
type Collector struct {
	mu    sync.Mutex
	diags []Diagnostic
}

// NewCollector returns an empty Collector.
func NewCollector() *Collector {
	return &Collector{}
}

// Warn appends a diagnostic. The context map is copied.
func (c *Collector) Warn(message string, context map[string]string) {
	var ctx map[string]string
	if len(context) > 0 {
		ctx = make(map[string]string, len(context))
		for k, v := range context {
			ctx[k] = v
		}
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	c.diags = append(c.diags, Diagnostic{Message: message, Context: ctx})
}

// All returns a copy of every diagnostic collected so far, in append order.
func (c *Collector) All() []Diagnostic {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]Diagnostic, len(c.diags))
	copy(out, c.diags)
	return out
}

// Len returns the number of diagnostics collected so far.
func (c *Collector) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.diags)
}
